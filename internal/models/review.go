package models

import (
	"time"

	"gorm.io/gorm"
)

// Review 商品评价表（支持游客评价）
type Review struct {
	ID        uint           `gorm:"primarykey" json:"id"`                 // 主键
	ProductID uint           `gorm:"index;not null" json:"product_id"`     // 商品ID
	UserID    *uint          `gorm:"index" json:"user_id,omitempty"`       // 用户ID（游客为空）
	GuestName string         `gorm:"type:varchar(120)" json:"guest_name"`  // 游客昵称
	Rating    int            `gorm:"not null" json:"rating"`               // 评分（1-5）
	Content   string         `gorm:"type:text" json:"content"`             // 评价内容
	Pinned    bool           `gorm:"default:false;index" json:"pinned"`    // 是否置顶
	CreatedAt time.Time      `gorm:"index" json:"created_at"`              // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                           // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                       // 软删除时间

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"` // 评价用户
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
