package models

import (
	"time"
)

// SearchHistory 搜索历史表
type SearchHistory struct {
	ID        uint      `gorm:"primarykey" json:"id"`            // 主键
	UserID    uint      `gorm:"index;not null" json:"user_id"`   // 用户ID
	Keyword   string    `gorm:"not null" json:"keyword"`         // 搜索关键词
	CreatedAt time.Time `gorm:"index" json:"created_at"`         // 搜索时间
}

// TableName 指定表名
func (SearchHistory) TableName() string {
	return "search_histories"
}
