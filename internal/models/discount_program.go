package models

import (
	"time"

	"gorm.io/gorm"
)

// DiscountProgram 折扣活动
// Status 同样是派生缓存，读路径按实时时间窗口复核
type DiscountProgram struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                             // 主键
	Name               string         `gorm:"not null" json:"name"`                             // 活动名称
	DiscountPercentage int            `gorm:"not null" json:"discount_percentage"`              // 折扣百分比（1-100）
	ApplyType          string         `gorm:"not null" json:"apply_type"`                       // 适用范围（all_products/specific_products）
	ProductIDs         UintArray      `gorm:"type:json" json:"product_ids"`                     // 指定商品ID集合（specific_products 时有效）
	ApplySetting       string         `gorm:"not null" json:"apply_setting"`                    // 覆盖策略（always_apply/apply_with_condition）
	Status             string         `gorm:"not null;default:'scheduled';index" json:"status"` // 状态（scheduled/active/expired/cancelled）
	StartsAt           time.Time      `gorm:"index;not null" json:"starts_at"`                  // 生效时间
	EndsAt             time.Time      `gorm:"index;not null" json:"ends_at"`                    // 失效时间
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`                          // 创建时间
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`                          // 更新时间
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                                   // 软删除时间
}

// TableName 指定表名
func (DiscountProgram) TableName() string {
	return "discount_programs"
}

// AppliesTo 判断活动是否作用于指定商品
func (p *DiscountProgram) AppliesTo(productID uint) bool {
	if p.ApplyType == "all_products" {
		return true
	}
	return p.ProductIDs.Contains(productID)
}
