package service

import (
	"errors"
	"testing"
	"time"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupFavoriteServiceTest(t *testing.T) (*FavoriteService, *gorm.DB, *models.User, *models.Product) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.ProductColor{}, &models.DiscountProgram{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	user := &models.User{Email: "shopper@example.com", PasswordHash: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
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

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	discountService := NewDiscountService(repository.NewDiscountProgramRepository(db))
	return NewFavoriteService(userRepo, productRepo, discountService), db, user, product
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	svc, db, user, product := setupFavoriteServiceTest(t)

	if err := svc.Add(user.ID, product.ID); err != nil {
		t.Fatalf("add favorite failed: %v", err)
	}
	// 重复收藏静默成功
	if err := svc.Add(user.ID, product.ID); err != nil {
		t.Fatalf("second add should be silent, got %v", err)
	}

	var count int64
	db.Table("user_favorites").Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected single favorite row, got %d", count)
	}
}

func TestAddFavoriteRequiresExistingProduct(t *testing.T) {
	svc, _, user, _ := setupFavoriteServiceTest(t)

	if err := svc.Add(user.ID, 99999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("unknown product want ErrProductNotFound, got %v", err)
	}
}

func TestRemoveFavorite(t *testing.T) {
	svc, db, user, product := setupFavoriteServiceTest(t)

	if err := svc.Add(user.ID, product.ID); err != nil {
		t.Fatalf("add favorite failed: %v", err)
	}
	if err := svc.Remove(user.ID, product.ID); err != nil {
		t.Fatalf("remove favorite failed: %v", err)
	}

	var count int64
	db.Table("user_favorites").Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Fatalf("favorite should be removed, got %d", count)
	}
}

func TestListFavoritesAppliesActiveProgram(t *testing.T) {
	svc, db, user, product := setupFavoriteServiceTest(t)

	if err := svc.Add(user.ID, product.ID); err != nil {
		t.Fatalf("add favorite failed: %v", err)
	}

	program := &models.DiscountProgram{
		Name:               "Tuần lễ chạy bộ",
		DiscountPercentage: 20,
		ApplyType:          constants.ProgramApplyAllProducts,
		ApplySetting:       constants.ProgramSettingAlwaysApply,
		Status:             constants.ProgramStatusActive,
		StartsAt:           time.Now().Add(-time.Hour),
		EndsAt:             time.Now().Add(time.Hour),
	}
	if err := db.Create(program).Error; err != nil {
		t.Fatalf("create program failed: %v", err)
	}

	products, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("list favorites failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(products))
	}
	if products[0].SalePrice == nil || products[0].SalePrice.String() != "80.00" {
		t.Fatalf("favorite should carry discounted price, got %+v", products[0].SalePrice)
	}
}
