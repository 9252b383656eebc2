package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表
type User struct {
	ID                uint           `gorm:"primarykey" json:"id"`              // 主键
	Email             string         `gorm:"uniqueIndex;not null" json:"email"` // 邮箱
	PasswordHash      string         `gorm:"not null" json:"-"`                 // 密码哈希（不返回给前端）
	FullName          string         `gorm:"default:''" json:"full_name"`       // 姓名
	Avatar            string         `gorm:"type:varchar(500)" json:"avatar"`   // 头像
	Phone             string         `gorm:"type:varchar(20)" json:"phone"`     // 电话
	Role              string         `gorm:"default:'user';index" json:"role"`  // 角色（user/admin）
	Status            string         `gorm:"default:'active'" json:"status"`    // 账号状态（active/locked）
	GoogleAccount     bool           `gorm:"default:false" json:"-"`            // 是否由 Google 登录创建
	Locale            string         `gorm:"default:'vi-VN'" json:"locale"`     // 语言偏好
	RecoveryToken     string         `gorm:"index" json:"-"`                    // 找回密码令牌
	RecoveryExpiresAt *time.Time     `json:"-"`                                 // 找回密码令牌过期时间
	LastLoginAt       *time.Time     `json:"last_login_at"`                     // 最后登录时间
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`           // 创建时间
	UpdatedAt         time.Time      `gorm:"index" json:"updated_at"`           // 更新时间
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间

	// 关联
	Favorites []Product `gorm:"many2many:user_favorites" json:"favorites,omitempty"` // 收藏的商品
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// IsAdmin 判断是否管理员
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// IsLocked 判断账号是否被锁定
func (u *User) IsLocked() bool {
	return u.Status == "locked"
}
