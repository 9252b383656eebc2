package service

import (
	"testing"
	"time"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupDiscountServiceTest(t *testing.T) (*DiscountService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.DiscountProgram{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewDiscountService(repository.NewDiscountProgramRepository(db)), db
}

func TestApplyProgramAlwaysApplyOverridesSalePrice(t *testing.T) {
	sale := moneyFromFloat(t, 90)
	product := &models.Product{
		ID:            1,
		OriginalPrice: moneyFromFloat(t, 100),
		SalePrice:     &sale,
	}
	program := &models.DiscountProgram{
		DiscountPercentage: 50,
		ApplyType:          constants.ProgramApplyAllProducts,
		ApplySetting:       constants.ProgramSettingAlwaysApply,
	}

	ApplyProgramToProduct(product, program)
	if product.SalePrice == nil || !product.SalePrice.Decimal.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("always_apply should override sale price, got %v", product.SalePrice)
	}
}

func TestApplyProgramWithConditionNeverRaisesPrice(t *testing.T) {
	sale := moneyFromFloat(t, 40)
	product := &models.Product{
		ID:            1,
		OriginalPrice: moneyFromFloat(t, 100),
		SalePrice:     &sale,
	}
	program := &models.DiscountProgram{
		DiscountPercentage: 10,
		ApplyType:          constants.ProgramApplyAllProducts,
		ApplySetting:       constants.ProgramSettingApplyWithCondition,
	}

	// 折后 90 高于现有促销价 40，不得抬价
	ApplyProgramToProduct(product, program)
	if !product.SalePrice.Decimal.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("apply_with_condition must not raise price, got %s", product.SalePrice.Decimal)
	}

	program.DiscountPercentage = 70
	ApplyProgramToProduct(product, program)
	if !product.SalePrice.Decimal.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("lower discounted price should win, got %s", product.SalePrice.Decimal)
	}
}

func TestApplyProgramWithConditionSetsPriceWhenNoSale(t *testing.T) {
	product := &models.Product{ID: 1, OriginalPrice: moneyFromFloat(t, 200)}
	program := &models.DiscountProgram{
		DiscountPercentage: 25,
		ApplyType:          constants.ProgramApplyAllProducts,
		ApplySetting:       constants.ProgramSettingApplyWithCondition,
	}

	ApplyProgramToProduct(product, program)
	if product.SalePrice == nil || !product.SalePrice.Decimal.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("missing sale price should be set, got %v", product.SalePrice)
	}
}

func TestApplyProgramSkipsProductsOutsideScope(t *testing.T) {
	product := &models.Product{ID: 9, OriginalPrice: moneyFromFloat(t, 100)}
	program := &models.DiscountProgram{
		DiscountPercentage: 50,
		ApplyType:          constants.ProgramApplySpecificProducts,
		ProductIDs:         models.UintArray([]uint{1, 2, 3}),
		ApplySetting:       constants.ProgramSettingAlwaysApply,
	}

	ApplyProgramToProduct(product, program)
	if product.SalePrice != nil {
		t.Fatalf("out-of-scope product should not be discounted")
	}
}

func TestApplyProgramIgnoresInvalidPercentage(t *testing.T) {
	product := &models.Product{ID: 1, OriginalPrice: moneyFromFloat(t, 100)}
	for _, pct := range []int{0, -10, 101} {
		program := &models.DiscountProgram{
			DiscountPercentage: pct,
			ApplyType:          constants.ProgramApplyAllProducts,
			ApplySetting:       constants.ProgramSettingAlwaysApply,
		}
		ApplyProgramToProduct(product, program)
		if product.SalePrice != nil {
			t.Fatalf("percentage %d should be ignored", pct)
		}
	}
}

func TestCurrentProgramPicksNewestOverlapping(t *testing.T) {
	svc, db := setupDiscountServiceTest(t)
	now := time.Now()

	older := models.DiscountProgram{
		Name:               "older",
		DiscountPercentage: 10,
		ApplyType:          constants.ProgramApplyAllProducts,
		ApplySetting:       constants.ProgramSettingAlwaysApply,
		Status:             constants.ProgramStatusActive,
		StartsAt:           now.Add(-2 * time.Hour),
		EndsAt:             now.Add(2 * time.Hour),
	}
	newer := older
	newer.Name = "newer"
	newer.DiscountPercentage = 30
	if err := db.Create(&older).Error; err != nil {
		t.Fatalf("seed older program failed: %v", err)
	}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatalf("seed newer program failed: %v", err)
	}

	program, err := svc.CurrentProgram(now)
	if err != nil {
		t.Fatalf("current program failed: %v", err)
	}
	if program == nil || program.Name != "newer" {
		t.Fatalf("expected newest overlapping program, got %+v", program)
	}
}

func TestCurrentProgramIgnoresCancelledAndOutOfWindow(t *testing.T) {
	svc, db := setupDiscountServiceTest(t)
	now := time.Now()

	seed := []models.DiscountProgram{
		{Name: "cancelled", DiscountPercentage: 10, ApplyType: constants.ProgramApplyAllProducts, ApplySetting: constants.ProgramSettingAlwaysApply, Status: constants.ProgramStatusCancelled, StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour)},
		{Name: "future", DiscountPercentage: 10, ApplyType: constants.ProgramApplyAllProducts, ApplySetting: constants.ProgramSettingAlwaysApply, Status: constants.ProgramStatusActive, StartsAt: now.Add(time.Hour), EndsAt: now.Add(2 * time.Hour)},
		{Name: "past", DiscountPercentage: 10, ApplyType: constants.ProgramApplyAllProducts, ApplySetting: constants.ProgramSettingAlwaysApply, Status: constants.ProgramStatusActive, StartsAt: now.Add(-3 * time.Hour), EndsAt: now.Add(-time.Hour)},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed program %s failed: %v", seed[i].Name, err)
		}
	}

	program, err := svc.CurrentProgram(now)
	if err != nil {
		t.Fatalf("current program failed: %v", err)
	}
	if program != nil {
		t.Fatalf("expected no active program, got %+v", program)
	}
}

func TestEffectivePrice(t *testing.T) {
	product := &models.Product{OriginalPrice: moneyFromFloat(t, 100)}
	if got := EffectivePrice(product); !got.Decimal.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("want original price, got %s", got.Decimal)
	}
	sale := moneyFromFloat(t, 60)
	product.SalePrice = &sale
	if got := EffectivePrice(product); !got.Decimal.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("want sale price, got %s", got.Decimal)
	}
}
