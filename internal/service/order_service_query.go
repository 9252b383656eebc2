package service

import (
	"strings"

	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"
)

// GetOrderByUser 按编号查询本人订单
func (s *OrderService) GetOrderByUser(orderCode string, userID uint) (*models.Order, error) {
	code := strings.TrimSpace(orderCode)
	if code == "" || userID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByCodeAndUser(code, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrdersByUser 用户订单列表
func (s *OrderService) ListOrdersByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.UserID == 0 {
		return nil, 0, ErrOrderNotFound
	}
	return s.orderRepo.ListByUser(filter)
}

// GetOrderForAdmin 后台按编号查询订单
func (s *OrderService) GetOrderForAdmin(orderCode string) (*models.Order, error) {
	code := strings.TrimSpace(orderCode)
	if code == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrdersForAdmin 后台订单列表
func (s *OrderService) ListOrdersForAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}
