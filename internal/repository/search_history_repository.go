package repository

import (
	"github.com/lamine-sport/api/internal/models"

	"gorm.io/gorm"
)

// SearchHistoryRepository 搜索历史数据访问接口
type SearchHistoryRepository interface {
	Record(userID uint, keyword string) error
	ListRecent(userID uint, limit int) ([]models.SearchHistory, error)
	Clear(userID uint) error
}

// GormSearchHistoryRepository GORM 实现
type GormSearchHistoryRepository struct {
	db *gorm.DB
}

// NewSearchHistoryRepository 创建搜索历史仓库
func NewSearchHistoryRepository(db *gorm.DB) *GormSearchHistoryRepository {
	return &GormSearchHistoryRepository{db: db}
}

// Record 记录一次搜索，同一关键词先删旧再插新，保持去重
func (r *GormSearchHistoryRepository) Record(userID uint, keyword string) error {
	if err := r.db.Where("user_id = ? AND keyword = ?", userID, keyword).
		Delete(&models.SearchHistory{}).Error; err != nil {
		return err
	}
	return r.db.Create(&models.SearchHistory{UserID: userID, Keyword: keyword}).Error
}

// ListRecent 获取最近搜索记录
func (r *GormSearchHistoryRepository) ListRecent(userID uint, limit int) ([]models.SearchHistory, error) {
	if limit <= 0 {
		limit = 10
	}
	var histories []models.SearchHistory
	if err := r.db.Where("user_id = ?", userID).
		Order("id desc").
		Limit(limit).
		Find(&histories).Error; err != nil {
		return nil, err
	}
	return histories, nil
}

// Clear 清空用户搜索历史
func (r *GormSearchHistoryRepository) Clear(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.SearchHistory{}).Error
}
