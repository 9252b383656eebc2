package service

import (
	"strings"

	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"
)

// ReviewService 商品评价服务
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService 创建评价服务
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

// CreateReviewInput 创建评价输入
type CreateReviewInput struct {
	ProductID uint
	UserID    uint
	GuestName string
	Rating    int
	Content   string
}

// Create 创建评价，登录用户与游客均可
func (s *ReviewService) Create(input CreateReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if input.ProductID == 0 {
		return nil, ErrProductNotFound
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	review := &models.Review{
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Content:   strings.TrimSpace(input.Content),
	}
	if input.UserID != 0 {
		userID := input.UserID
		review.UserID = &userID
	} else {
		name := strings.TrimSpace(input.GuestName)
		if name == "" {
			name = "Khách"
		}
		review.GuestName = name
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ReviewSummary 商品评分汇总
type ReviewSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// ListByProduct 商品评价列表，置顶在前
func (s *ReviewService) ListByProduct(filter repository.ReviewListFilter) ([]models.Review, int64, *ReviewSummary, error) {
	reviews, total, err := s.reviewRepo.List(filter)
	if err != nil {
		return nil, 0, nil, err
	}
	average, count, err := s.reviewRepo.AverageRating(filter.ProductID)
	if err != nil {
		return nil, 0, nil, err
	}
	return reviews, total, &ReviewSummary{Average: average, Count: count}, nil
}

// SetPinned 后台置顶/取消置顶
func (s *ReviewService) SetPinned(id uint, pinned bool) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	return s.reviewRepo.SetPinned(id, pinned)
}

// Delete 后台删除评价
func (s *ReviewService) Delete(id uint) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	return s.reviewRepo.Delete(id)
}
