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

func moneyFromFloat(t *testing.T, v float64) models.Money {
	t.Helper()
	return models.NewMoneyFromDecimal(decimal.NewFromFloat(v))
}

func setupCouponServiceTest(t *testing.T) (*CouponService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Coupon{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewCouponService(repository.NewCouponRepository(db), repository.NewOrderRepository(db)), db
}

func TestDeriveCouponStatus(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name   string
		coupon models.Coupon
		want   string
	}{
		{
			name:   "before window",
			coupon: models.Coupon{StartsAt: now.Add(time.Hour), EndsAt: now.Add(48 * time.Hour)},
			want:   constants.CouponStatusSchedule,
		},
		{
			name:   "after window",
			coupon: models.Coupon{StartsAt: now.Add(-48 * time.Hour), EndsAt: now.Add(-time.Hour)},
			want:   constants.CouponStatusExpired,
		},
		{
			name:   "quota exhausted",
			coupon: models.Coupon{StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour), Quantity: 5, UsedQuantity: 5},
			want:   constants.CouponStatusOutOfUsed,
		},
		{
			name:   "expired wins over exhausted",
			coupon: models.Coupon{StartsAt: now.Add(-48 * time.Hour), EndsAt: now.Add(-time.Hour), Quantity: 1, UsedQuantity: 1},
			want:   constants.CouponStatusExpired,
		},
		{
			name:   "active",
			coupon: models.Coupon{StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour), Quantity: 5, UsedQuantity: 4},
			want:   constants.CouponStatusActive,
		},
	}
	for _, tc := range cases {
		if got := DeriveCouponStatus(&tc.coupon, now); got != tc.want {
			t.Fatalf("%s: want %s got %s", tc.name, tc.want, got)
		}
	}
}

func TestComputeDiscountFixedCappedByProductsFee(t *testing.T) {
	coupon := &models.Coupon{Type: constants.CouponTypeFixed, Value: moneyFromFloat(t, 50)}

	got := ComputeDiscount(coupon, moneyFromFloat(t, 200))
	if !got.Decimal.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("fixed discount want 50 got %s", got.Decimal)
	}

	got = ComputeDiscount(coupon, moneyFromFloat(t, 30))
	if !got.Decimal.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("fixed discount should cap at products fee, got %s", got.Decimal)
	}
}

func TestComputeDiscountPercentWithMaxCap(t *testing.T) {
	maxDiscount := moneyFromFloat(t, 15)
	coupon := &models.Coupon{
		Type:        constants.CouponTypePercent,
		Value:       moneyFromFloat(t, 10),
		MaxDiscount: &maxDiscount,
	}

	got := ComputeDiscount(coupon, moneyFromFloat(t, 100))
	if !got.Decimal.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("percent discount want 10 got %s", got.Decimal)
	}

	got = ComputeDiscount(coupon, moneyFromFloat(t, 500))
	if !got.Decimal.Equal(decimal.NewFromInt(15)) {
		t.Fatalf("percent discount should cap at max_discount, got %s", got.Decimal)
	}
}

func TestComputeDiscountPercentUncapped(t *testing.T) {
	coupon := &models.Coupon{Type: constants.CouponTypePercent, Value: moneyFromFloat(t, 25)}
	got := ComputeDiscount(coupon, moneyFromFloat(t, 400))
	if !got.Decimal.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("uncapped percent discount want 100 got %s", got.Decimal)
	}
}

func TestValidateRejectsUnknownAndBlankCode(t *testing.T) {
	svc, _ := setupCouponServiceTest(t)
	now := time.Now()

	if _, err := svc.Validate("   ", 1, now); !errors.Is(err, ErrCouponInvalid) {
		t.Fatalf("blank code want ErrCouponInvalid, got %v", err)
	}
	if _, err := svc.Validate("NOPE", 1, now); !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("unknown code want ErrCouponNotFound, got %v", err)
	}
}

func TestValidateWindowAndQuota(t *testing.T) {
	svc, db := setupCouponServiceTest(t)
	now := time.Now()

	seed := []models.Coupon{
		{Code: "EARLY", Type: constants.CouponTypeFixed, Value: moneyFromFloat(t, 10), Status: constants.CouponStatusSchedule, StartsAt: now.Add(time.Hour), EndsAt: now.Add(48 * time.Hour)},
		{Code: "LATE", Type: constants.CouponTypeFixed, Value: moneyFromFloat(t, 10), Status: constants.CouponStatusActive, StartsAt: now.Add(-48 * time.Hour), EndsAt: now.Add(-time.Hour)},
		{Code: "FULL", Type: constants.CouponTypeFixed, Value: moneyFromFloat(t, 10), Status: constants.CouponStatusActive, Quantity: 2, UsedQuantity: 2, StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour)},
		{Code: "OK", Type: constants.CouponTypeFixed, Value: moneyFromFloat(t, 10), Status: constants.CouponStatusActive, Quantity: 2, UsedQuantity: 1, StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour)},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed coupon %s failed: %v", seed[i].Code, err)
		}
	}

	if _, err := svc.Validate("EARLY", 1, now); !errors.Is(err, ErrCouponNotStarted) {
		t.Fatalf("want ErrCouponNotStarted, got %v", err)
	}
	if _, err := svc.Validate("LATE", 1, now); !errors.Is(err, ErrCouponExpired) {
		t.Fatalf("want ErrCouponExpired, got %v", err)
	}
	if _, err := svc.Validate("FULL", 1, now); !errors.Is(err, ErrCouponExhausted) {
		t.Fatalf("want ErrCouponExhausted, got %v", err)
	}
	coupon, err := svc.Validate("OK", 1, now)
	if err != nil {
		t.Fatalf("valid coupon should pass, got %v", err)
	}
	if coupon.Code != "OK" {
		t.Fatalf("unexpected coupon returned: %s", coupon.Code)
	}
}

func TestValidateCorrectsStaleStatus(t *testing.T) {
	svc, db := setupCouponServiceTest(t)
	now := time.Now()

	stale := models.Coupon{
		Code:     "STALE",
		Type:     constants.CouponTypeFixed,
		Value:    moneyFromFloat(t, 10),
		Status:   constants.CouponStatusActive,
		StartsAt: now.Add(-48 * time.Hour),
		EndsAt:   now.Add(-time.Hour),
	}
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("seed coupon failed: %v", err)
	}

	if _, err := svc.Validate("STALE", 1, now); !errors.Is(err, ErrCouponExpired) {
		t.Fatalf("want ErrCouponExpired, got %v", err)
	}

	var reloaded models.Coupon
	if err := db.Where("code = ?", "STALE").First(&reloaded).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if reloaded.Status != constants.CouponStatusExpired {
		t.Fatalf("stale status should be corrected to expired, got %s", reloaded.Status)
	}
}

func TestValidateRejectsReuseByUser(t *testing.T) {
	svc, db := setupCouponServiceTest(t)
	now := time.Now()

	coupon := models.Coupon{
		Code:     "ONCE",
		Type:     constants.CouponTypeFixed,
		Value:    moneyFromFloat(t, 10),
		Status:   constants.CouponStatusActive,
		Quantity: 10,
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(time.Hour),
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("seed coupon failed: %v", err)
	}

	order := models.Order{
		OrderCode:     "DH_TESTONCE",
		UserID:        7,
		Status:        constants.OrderStatusWaitingConfirm,
		Receiver:      "Nguyen Van A",
		ReceiverEmail: "a@example.com",
		ReceiverPhone: "0900000000",
		Address:       "Hanoi",
		PaymentMethod: constants.PaymentMethodCOD,
		CouponCode:    "ONCE",
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}

	if _, err := svc.Validate("ONCE", 7, now); !errors.Is(err, ErrCouponAlreadyUsed) {
		t.Fatalf("want ErrCouponAlreadyUsed, got %v", err)
	}
	if _, err := svc.Validate("ONCE", 8, now); err != nil {
		t.Fatalf("other user should be allowed, got %v", err)
	}

	// 已取消订单不占用资格
	if err := db.Model(&models.Order{}).Where("order_code = ?", "DH_TESTONCE").
		UpdateColumn("status", constants.OrderStatusCancel).Error; err != nil {
		t.Fatalf("cancel order failed: %v", err)
	}
	if _, err := svc.Validate("ONCE", 7, now); err != nil {
		t.Fatalf("cancelled order should release eligibility, got %v", err)
	}
}
