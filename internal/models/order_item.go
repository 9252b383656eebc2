package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表
// 单价与快照在下单时固化，创建后不再变更
type OrderItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                    // 主键
	OrderID      uint           `gorm:"index;not null" json:"order_id"`                          // 订单ID
	ProductID    uint           `gorm:"index;not null" json:"product_id"`                        // 商品ID
	ProductName  string         `gorm:"not null" json:"product_name"`                            // 商品名称快照
	ProductImage string         `gorm:"type:varchar(500)" json:"product_image"`                  // 商品图片快照
	ColorValue   int            `gorm:"not null" json:"color_value"`                             // 所选颜色枚举值
	Size         string         `gorm:"type:varchar(20)" json:"size"`                            // 所选尺码
	Quantity     int            `gorm:"not null" json:"quantity"`                                // 数量
	UnitPrice    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // 单价快照
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                 // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                              // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                          // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
