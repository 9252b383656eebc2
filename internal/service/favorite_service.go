package service

import (
	"time"

	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"
)

// FavoriteService 收藏夹服务
type FavoriteService struct {
	userRepo        repository.UserRepository
	productRepo     repository.ProductRepository
	discountService *DiscountService
}

// NewFavoriteService 创建收藏夹服务
func NewFavoriteService(userRepo repository.UserRepository, productRepo repository.ProductRepository, discountService *DiscountService) *FavoriteService {
	return &FavoriteService{
		userRepo:        userRepo,
		productRepo:     productRepo,
		discountService: discountService,
	}
}

// Add 收藏商品，重复收藏不报错
func (s *FavoriteService) Add(userID, productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	exists, err := s.userRepo.HasFavorite(userID, productID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.userRepo.AddFavorite(userID, productID)
}

// Remove 取消收藏
func (s *FavoriteService) Remove(userID, productID uint) error {
	return s.userRepo.RemoveFavorite(userID, productID)
}

// List 收藏列表，叠加当前折扣活动后返回
func (s *FavoriteService) List(userID uint) ([]models.Product, error) {
	products, err := s.userRepo.ListFavorites(userID)
	if err != nil {
		return nil, err
	}
	if err := s.discountService.ApplyToProducts(products, time.Now()); err != nil {
		return nil, err
	}
	return products, nil
}
