package service

import (
	"strings"

	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"
)

const searchHistoryLimit = 10

// SearchHistoryService 搜索历史服务
type SearchHistoryService struct {
	repo repository.SearchHistoryRepository
}

// NewSearchHistoryService 创建搜索历史服务
func NewSearchHistoryService(repo repository.SearchHistoryRepository) *SearchHistoryService {
	return &SearchHistoryService{repo: repo}
}

// Record 记录关键词，空白关键词忽略
func (s *SearchHistoryService) Record(userID uint, keyword string) error {
	trimmed := strings.TrimSpace(keyword)
	if userID == 0 || trimmed == "" {
		return nil
	}
	return s.repo.Record(userID, trimmed)
}

// ListRecent 最近搜索记录
func (s *SearchHistoryService) ListRecent(userID uint) ([]models.SearchHistory, error) {
	if userID == 0 {
		return nil, nil
	}
	return s.repo.ListRecent(userID, searchHistoryLimit)
}

// Clear 清空搜索历史
func (s *SearchHistoryService) Clear(userID uint) error {
	if userID == 0 {
		return nil
	}
	return s.repo.Clear(userID)
}
