package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                         // 主键
	Name          string         `gorm:"not null;index" json:"name"`                                   // 商品名称
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`                             // 唯一标识
	Description   string         `gorm:"type:text" json:"description"`                                 // 商品描述
	Brand         string         `gorm:"type:varchar(120);index" json:"brand"`                         // 品牌
	ProductType   int            `gorm:"not null;index" json:"product_type"`                           // 商品类型（鞋/上衣/裤/配件/器材）
	SportType     int            `gorm:"not null;index" json:"sport_type"`                             // 运动类型
	Gender        int            `gorm:"not null;default:3;index" json:"gender"`                       // 适用性别（1男/2女/3通用）
	Visibility    int            `gorm:"not null;default:1;index" json:"visibility"`                   // 可见性（1显示/2隐藏）
	OriginalPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"original_price"`  // 原价
	SalePrice     *Money         `gorm:"type:decimal(20,2)" json:"sale_price"`                         // 促销价（空表示未设促销）
	Images        StringArray    `gorm:"type:json" json:"images"`                                      // 图片数组
	Sizes         StringArray    `gorm:"type:json" json:"sizes"`                                       // 尺码数组
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`                     // 总库存（各颜色库存之和）
	SaleQuantity  int            `gorm:"not null;default:0;index" json:"sale_quantity"`                // 累计销量
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                      // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                                   // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                               // 软删除时间

	// 关联
	Colors []ProductColor `gorm:"foreignKey:ProductID" json:"colors,omitempty"` // 颜色规格列表
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// ColorByValue 按颜色枚举值查找规格
func (p *Product) ColorByValue(value int) *ProductColor {
	for i := range p.Colors {
		if p.Colors[i].Value == value {
			return &p.Colors[i]
		}
	}
	return nil
}
