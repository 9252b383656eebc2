package service

import (
	"errors"
	"testing"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupReviewServiceTest(t *testing.T) (*ReviewService, *gorm.DB, *models.Product) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.ProductColor{}, &models.Review{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	product := &models.Product{
		Name:          "Giày chạy bộ",
		Slug:          "giay-chay-bo",
		Brand:         "Nike",
		ProductType:   constants.ProductTypeShoes,
		SportType:     constants.SportTypeRunning,
		Gender:        constants.ProductGenderUnisex,
		Visibility:    constants.ProductVisible,
		OriginalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	svc := NewReviewService(repository.NewReviewRepository(db), repository.NewProductRepository(db))
	return svc, db, product
}

func TestCreateReviewForUserAndGuest(t *testing.T) {
	svc, _, product := setupReviewServiceTest(t)

	userReview, err := svc.Create(CreateReviewInput{ProductID: product.ID, UserID: 9, Rating: 5, Content: "  Rất tốt  "})
	if err != nil {
		t.Fatalf("create user review failed: %v", err)
	}
	if userReview.UserID == nil || *userReview.UserID != 9 {
		t.Fatalf("user review should carry user id")
	}
	if userReview.Content != "Rất tốt" {
		t.Fatalf("content should be trimmed, got %q", userReview.Content)
	}

	guestReview, err := svc.Create(CreateReviewInput{ProductID: product.ID, GuestName: "  ", Rating: 4})
	if err != nil {
		t.Fatalf("create guest review failed: %v", err)
	}
	if guestReview.UserID != nil {
		t.Fatalf("guest review must not carry user id")
	}
	if guestReview.GuestName != "Khách" {
		t.Fatalf("blank guest name should default, got %q", guestReview.GuestName)
	}
}

func TestCreateReviewValidatesInput(t *testing.T) {
	svc, _, product := setupReviewServiceTest(t)

	if _, err := svc.Create(CreateReviewInput{ProductID: product.ID, Rating: 0}); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("rating 0 want ErrInvalidRating, got %v", err)
	}
	if _, err := svc.Create(CreateReviewInput{ProductID: product.ID, Rating: 6}); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("rating 6 want ErrInvalidRating, got %v", err)
	}
	if _, err := svc.Create(CreateReviewInput{ProductID: 99999, Rating: 5}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("unknown product want ErrProductNotFound, got %v", err)
	}
}

func TestListByProductPinnedFirstWithSummary(t *testing.T) {
	svc, _, product := setupReviewServiceTest(t)

	first, err := svc.Create(CreateReviewInput{ProductID: product.ID, GuestName: "A", Rating: 2})
	if err != nil {
		t.Fatalf("create review failed: %v", err)
	}
	if _, err := svc.Create(CreateReviewInput{ProductID: product.ID, GuestName: "B", Rating: 4}); err != nil {
		t.Fatalf("create review failed: %v", err)
	}
	if err := svc.SetPinned(first.ID, true); err != nil {
		t.Fatalf("pin review failed: %v", err)
	}

	reviews, total, summary, err := svc.ListByProduct(repository.ReviewListFilter{ProductID: product.ID})
	if err != nil {
		t.Fatalf("list reviews failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("total want 2 got %d", total)
	}
	if reviews[0].ID != first.ID {
		t.Fatalf("pinned review should come first")
	}
	if summary.Count != 2 || summary.Average != 3 {
		t.Fatalf("summary mismatch: %+v", summary)
	}
}

func TestSetPinnedAndDeleteRequireExistingReview(t *testing.T) {
	svc, db, product := setupReviewServiceTest(t)

	if err := svc.SetPinned(424242, true); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("pin missing review want ErrReviewNotFound, got %v", err)
	}
	if err := svc.Delete(424242); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("delete missing review want ErrReviewNotFound, got %v", err)
	}

	review, err := svc.Create(CreateReviewInput{ProductID: product.ID, GuestName: "C", Rating: 3})
	if err != nil {
		t.Fatalf("create review failed: %v", err)
	}
	if err := svc.Delete(review.ID); err != nil {
		t.Fatalf("delete review failed: %v", err)
	}
	var count int64
	db.Model(&models.Review{}).Count(&count)
	if count != 0 {
		t.Fatalf("review should be gone, got %d", count)
	}
}
