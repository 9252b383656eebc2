package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon 优惠券
// Status 为派生缓存字段，权威事实是时间窗口与用量计数，校验时需按实时数据重算
type Coupon struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                    // 主键
	Code         string         `gorm:"uniqueIndex;not null" json:"code"`                        // 优惠码
	Type         string         `gorm:"not null" json:"type"`                                    // 类型（fixed/percent）
	Value        Money          `gorm:"type:decimal(20,2);not null" json:"value"`                // 数值（固定金额或百分比）
	MaxDiscount  *Money         `gorm:"type:decimal(20,2)" json:"max_discount"`                  // 百分比券的最大优惠金额（空表示不封顶）
	Quantity     int            `gorm:"not null;default:0" json:"quantity"`                      // 可用总次数
	UsedQuantity int            `gorm:"not null;default:0" json:"used_quantity"`                 // 已使用次数
	Status       string         `gorm:"not null;default:'schedule';index" json:"status"`         // 状态（active/expired/schedule/out_of_used）
	StartsAt     time.Time      `gorm:"index;not null" json:"starts_at"`                         // 生效时间
	EndsAt       time.Time      `gorm:"index;not null" json:"ends_at"`                           // 失效时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                 // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                                 // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                          // 软删除时间
}

// TableName 指定表名
func (Coupon) TableName() string {
	return "coupons"
}
