package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductColor 商品颜色规格表（库存按颜色维度管理）
type ProductColor struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                              // 主键
	ProductID uint           `gorm:"not null;index;uniqueIndex:idx_product_color_value" json:"product_id"` // 商品ID
	Value     int            `gorm:"not null;uniqueIndex:idx_product_color_value" json:"value"`         // 颜色枚举值（1-9）
	Name      string         `gorm:"type:varchar(60);not null" json:"name"`                             // 颜色名称
	Hex       string         `gorm:"type:varchar(10)" json:"hex"`                                       // 颜色色值
	Images    StringArray    `gorm:"type:json" json:"images"`                                           // 该颜色图片
	Quantity  int            `gorm:"not null;default:0" json:"quantity"`                                // 可售库存
	Sale      int            `gorm:"not null;default:0" json:"sale"`                                    // 累计售出
	CreatedAt time.Time      `json:"created_at"`                                                        // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                                        // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                                    // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (ProductColor) TableName() string {
	return "product_colors"
}
