package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lamine-sport/api/internal/config"
	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T, shipping config.ShippingConfig) (*OrderService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{},
		&models.ProductColor{},
		&models.Coupon{},
		&models.DiscountProgram{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	prevDB := models.DB
	models.DB = db
	t.Cleanup(func() {
		models.DB = prevDB
	})

	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	programRepo := repository.NewDiscountProgramRepository(db)
	couponService := NewCouponService(couponRepo, orderRepo)
	discountService := NewDiscountService(programRepo)
	svc := NewOrderService(orderRepo, productRepo, couponRepo, couponService, discountService, nil, shipping)
	return svc, db
}

func seedOrderTestProduct(t *testing.T, db *gorm.DB, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          "Giày chạy test",
		Slug:          "giay-chay-test",
		ProductType:   constants.ProductTypeShoes,
		SportType:     constants.SportTypeRunning,
		Gender:        constants.ProductGenderUnisex,
		Visibility:    constants.ProductVisible,
		OriginalPrice: moneyFromFloat(t, 100),
		Sizes:         models.StringArray([]string{"40", "41"}),
		StockQuantity: stock,
		Colors: []models.ProductColor{
			{Value: constants.ProductColorBlack, Name: "Đen", Quantity: stock},
		},
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func baseOrderInput(productID uint) CreateOrderInput {
	return CreateOrderInput{
		UserID:        1,
		Receiver:      "Nguyen Van A",
		ReceiverEmail: "a@example.com",
		ReceiverPhone: "0900000000",
		Address:       "123 Hanoi",
		PaymentMethod: constants.PaymentMethodCOD,
		Items: []CreateOrderItem{
			{ProductID: productID, ColorValue: constants.ProductColorBlack, Size: "40", Quantity: 2},
		},
	}
}

func TestCreateOrderDecrementsStockAndComputesTotal(t *testing.T) {
	svc, db := setupOrderServiceTest(t, config.ShippingConfig{FlatFee: 30})
	product := seedOrderTestProduct(t, db, 10)

	order, err := svc.CreateOrder(baseOrderInput(product.ID))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if !strings.HasPrefix(order.OrderCode, "DH_") || len(order.OrderCode) != len("DH_")+orderCodeLength {
		t.Fatalf("unexpected order code: %s", order.OrderCode)
	}
	if order.Status != constants.OrderStatusWaitingConfirm {
		t.Fatalf("new order status want waiting_confirm got %s", order.Status)
	}
	if !order.ProductsFee.Decimal.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("products fee want 200 got %s", order.ProductsFee.Decimal)
	}
	if !order.ShippingFee.Decimal.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("shipping fee want 30 got %s", order.ShippingFee.Decimal)
	}
	if !order.TotalPrice.Decimal.Equal(decimal.NewFromInt(230)) {
		t.Fatalf("total want 230 got %s", order.TotalPrice.Decimal)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected order items: %+v", order.Items)
	}
	if order.Items[0].ProductName != product.Name {
		t.Fatalf("item should snapshot product name, got %s", order.Items[0].ProductName)
	}

	var color models.ProductColor
	if err := db.Where("product_id = ? AND value = ?", product.ID, constants.ProductColorBlack).First(&color).Error; err != nil {
		t.Fatalf("reload color failed: %v", err)
	}
	if color.Quantity != 8 || color.Sale != 2 {
		t.Fatalf("color stock want 8/2 got %d/%d", color.Quantity, color.Sale)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if reloaded.StockQuantity != 8 || reloaded.SaleQuantity != 2 {
		t.Fatalf("product counters want 8/2 got %d/%d", reloaded.StockQuantity, reloaded.SaleQuantity)
	}
}

func TestCreateOrderFreeShippingAboveThreshold(t *testing.T) {
	svc, db := setupOrderServiceTest(t, config.ShippingConfig{FlatFee: 30, FreeShippingAbove: 150})
	product := seedOrderTestProduct(t, db, 10)

	order, err := svc.CreateOrder(baseOrderInput(product.ID))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if !order.ShippingFee.Decimal.IsZero() {
		t.Fatalf("shipping should be free above threshold, got %s", order.ShippingFee.Decimal)
	}
}

func TestCreateOrderMergesDuplicateItems(t *testing.T) {
	svc, db := setupOrderServiceTest(t, config.ShippingConfig{})
	product := seedOrderTestProduct(t, db, 10)

	input := baseOrderInput(product.ID)
	input.Items = []CreateOrderItem{
		{ProductID: product.ID, ColorValue: constants.ProductColorBlack, Size: "40", Quantity: 1},
		{ProductID: product.ID, ColorValue: constants.ProductColorBlack, Size: "40", Quantity: 2},
	}

	order, err := svc.CreateOrder(input)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 3 {
		t.Fatalf("duplicate items should merge, got %+v", order.Items)
	}
}

func TestCreateOrderRejectsInsufficientStock(t *testing.T) {
	svc, db := setupOrderServiceTest(t, config.ShippingConfig{})
	product := seedOrderTestProduct(t, db, 1)

	if _, err := svc.CreateOrder(baseOrderInput(product.ID)); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock, got %v", err)
	}

	// 失败的下单不得留下任何订单或库存变更
	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("failed order should not persist, found %d orders", orderCount)
	}
	var color models.ProductColor
	if err := db.Where("product_id = ?", product.ID).First(&color).Error; err != nil {
		t.Fatalf("reload color failed: %v", err)
	}
	if color.Quantity != 1 {
		t.Fatalf("stock must be untouched, got %d", color.Quantity)
	}
}

func TestCreateOrderValidatesInput(t *testing.T) {
	svc, db := setupOrderServiceTest(t, config.ShippingConfig{})
	product := seedOrderTestProduct(t, db, 10)

	empty := baseOrderInput(product.ID)
	empty.Items = nil
	if _, err := svc.CreateOrder(empty); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}

	badEmail := baseOrderInput(product.ID)
	badEmail.ReceiverEmail = "not-an-email"
	if _, err := svc.CreateOrder(badEmail); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("want ErrInvalidEmail, got %v", err)
	}

	badPayment := baseOrderInput(product.ID)
	badPayment.PaymentMethod = "paypal"
	if _, err := svc.CreateOrder(badPayment); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}

	badColor := baseOrderInput(product.ID)
	badColor.Items[0].ColorValue = constants.ProductColorPink
	if _, err := svc.CreateOrder(badColor); !errors.Is(err, ErrColorNotFound) {
		t.Fatalf("want ErrColorNotFound, got %v", err)
	}

	badSize := baseOrderInput(product.ID)
	badSize.Items[0].Size = "47"
	if _, err := svc.CreateOrder(badSize); !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("want ErrInvalidOrderItem, got %v", err)
	}
}

func TestCreateOrderUsesDiscountedUnitPrice(t *testing.T) {
	svc, db := setupOrderServiceTest(t, config.ShippingConfig{})
	product := seedOrderTestProduct(t, db, 10)

	now := time.Now()
	program := models.DiscountProgram{
		Name:               "sale",
		DiscountPercentage: 20,
		ApplyType:          constants.ProgramApplyAllProducts,
		ApplySetting:       constants.ProgramSettingAlwaysApply,
		Status:             constants.ProgramStatusActive,
		StartsAt:           now.Add(-time.Hour),
		EndsAt:             now.Add(time.Hour),
	}
	if err := db.Create(&program).Error; err != nil {
		t.Fatalf("seed program failed: %v", err)
	}

	order, err := svc.CreateOrder(baseOrderInput(product.ID))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if !order.Items[0].UnitPrice.Decimal.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("unit price want discounted 80 got %s", order.Items[0].UnitPrice.Decimal)
	}
	if !order.ProductsFee.Decimal.Equal(decimal.NewFromInt(160)) {
		t.Fatalf("products fee want 160 got %s", order.ProductsFee.Decimal)
	}
}

func TestCreateOrderConsumesCouponQuota(t *testing.T) {
	svc, db := setupOrderServiceTest(t, config.ShippingConfig{})
	product := seedOrderTestProduct(t, db, 10)

	now := time.Now()
	coupon := models.Coupon{
		Code:     "SAVE50",
		Type:     constants.CouponTypeFixed,
		Value:    moneyFromFloat(t, 50),
		Status:   constants.CouponStatusActive,
		Quantity: 2,
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(time.Hour),
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("seed coupon failed: %v", err)
	}

	input := baseOrderInput(product.ID)
	input.CouponCode = "save50"
	order, err := svc.CreateOrder(input)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.CouponCode != "SAVE50" {
		t.Fatalf("coupon code should normalize to upper, got %s", order.CouponCode)
	}
	if !order.DiscountValue.Decimal.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("discount want 50 got %s", order.DiscountValue.Decimal)
	}
	if !order.TotalPrice.Decimal.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("total want 150 got %s", order.TotalPrice.Decimal)
	}

	var reloaded models.Coupon
	if err := db.First(&reloaded, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if reloaded.UsedQuantity != 1 {
		t.Fatalf("coupon used quantity want 1 got %d", reloaded.UsedQuantity)
	}
}

func TestCancelOrderRestoresStockAndCoupon(t *testing.T) {
	svc, db := setupOrderServiceTest(t, config.ShippingConfig{})
	product := seedOrderTestProduct(t, db, 10)

	now := time.Now()
	coupon := models.Coupon{
		Code:     "BACK10",
		Type:     constants.CouponTypeFixed,
		Value:    moneyFromFloat(t, 10),
		Status:   constants.CouponStatusActive,
		Quantity: 5,
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(time.Hour),
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("seed coupon failed: %v", err)
	}

	input := baseOrderInput(product.ID)
	input.CouponCode = "BACK10"
	order, err := svc.CreateOrder(input)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	cancelled, err := svc.CancelOrder(order.OrderCode, input.UserID)
	if err != nil {
		t.Fatalf("cancel order failed: %v", err)
	}
	if cancelled.Status != constants.OrderStatusCancel {
		t.Fatalf("status want cancel got %s", cancelled.Status)
	}
	if cancelled.CanceledAt == nil {
		t.Fatalf("canceled_at should be set")
	}

	var color models.ProductColor
	if err := db.Where("product_id = ?", product.ID).First(&color).Error; err != nil {
		t.Fatalf("reload color failed: %v", err)
	}
	if color.Quantity != 10 || color.Sale != 0 {
		t.Fatalf("stock should be fully restored, got %d/%d", color.Quantity, color.Sale)
	}

	var reloadedCoupon models.Coupon
	if err := db.First(&reloadedCoupon, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if reloadedCoupon.UsedQuantity != 0 {
		t.Fatalf("coupon quota should be released, got %d", reloadedCoupon.UsedQuantity)
	}

	if _, err := svc.CancelOrder(order.OrderCode, input.UserID); !errors.Is(err, ErrOrderAlreadyCancelled) {
		t.Fatalf("second cancel want ErrOrderAlreadyCancelled, got %v", err)
	}
}

func TestCancelOrderSkipsProductCountersWhenColorRowUnmatched(t *testing.T) {
	svc, db := setupOrderServiceTest(t, config.ShippingConfig{})
	product := seedOrderTestProduct(t, db, 10)

	order, err := svc.CreateOrder(baseOrderInput(product.ID))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// 后台改写销量后颜色行不再满足回补条件，取消订单不应再动商品级计数
	if err := db.Model(&models.ProductColor{}).
		Where("product_id = ?", product.ID).
		Update("sale", 0).Error; err != nil {
		t.Fatalf("tamper sale failed: %v", err)
	}

	if _, err := svc.CancelOrder(order.OrderCode, 1); err != nil {
		t.Fatalf("cancel order failed: %v", err)
	}

	var color models.ProductColor
	if err := db.Where("product_id = ?", product.ID).First(&color).Error; err != nil {
		t.Fatalf("reload color failed: %v", err)
	}
	if color.Quantity != 8 || color.Sale != 0 {
		t.Fatalf("unmatched color row must stay untouched, got %d/%d", color.Quantity, color.Sale)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if reloaded.StockQuantity != 8 {
		t.Fatalf("product stock must match color sum, got %d", reloaded.StockQuantity)
	}
}

func TestCancelOrderOnlyFromWaitingConfirm(t *testing.T) {
	svc, db := setupOrderServiceTest(t, config.ShippingConfig{})
	product := seedOrderTestProduct(t, db, 10)

	order, err := svc.CreateOrder(baseOrderInput(product.ID))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if err := db.Model(&models.Order{}).Where("id = ?", order.ID).
		UpdateColumn("status", constants.OrderStatusProcessing).Error; err != nil {
		t.Fatalf("advance order failed: %v", err)
	}

	if _, err := svc.CancelOrder(order.OrderCode, 1); !errors.Is(err, ErrOrderNotCancellable) {
		t.Fatalf("want ErrOrderNotCancellable, got %v", err)
	}
	if _, err := svc.CancelOrder(order.OrderCode, 99); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("other user's cancel want ErrOrderNotFound, got %v", err)
	}
}

func TestUpdateOrderStatusesBulk(t *testing.T) {
	svc, db := setupOrderServiceTest(t, config.ShippingConfig{})
	product := seedOrderTestProduct(t, db, 10)

	first, err := svc.CreateOrder(baseOrderInput(product.ID))
	if err != nil {
		t.Fatalf("create first order failed: %v", err)
	}
	second, err := svc.CreateOrder(baseOrderInput(product.ID))
	if err != nil {
		t.Fatalf("create second order failed: %v", err)
	}
	if err := db.Model(&models.Order{}).Where("id = ?", second.ID).
		UpdateColumn("status", constants.OrderStatusDelivered).Error; err != nil {
		t.Fatalf("advance second order failed: %v", err)
	}

	result, err := svc.UpdateOrderStatuses([]string{first.OrderCode, second.OrderCode, "DH_MISSING1"}, constants.OrderStatusProcessing)
	if err != nil {
		t.Fatalf("bulk update failed: %v", err)
	}
	if len(result.Updated) != 1 || result.Updated[0].OrderCode != first.OrderCode {
		t.Fatalf("expected only first order updated, got %+v", result.Updated)
	}
	if len(result.Rejected) != 2 {
		t.Fatalf("expected delivered and missing codes rejected, got %v", result.Rejected)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, first.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if reloaded.Status != constants.OrderStatusProcessing {
		t.Fatalf("status want processing got %s", reloaded.Status)
	}
}

func TestUpdateOrderStatusesCancelRestocks(t *testing.T) {
	svc, db := setupOrderServiceTest(t, config.ShippingConfig{})
	product := seedOrderTestProduct(t, db, 10)

	order, err := svc.CreateOrder(baseOrderInput(product.ID))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	result, err := svc.UpdateOrderStatuses([]string{order.OrderCode}, constants.OrderStatusCancel)
	if err != nil {
		t.Fatalf("bulk cancel failed: %v", err)
	}
	if len(result.Updated) != 1 {
		t.Fatalf("expected one updated order, got %+v", result)
	}

	var color models.ProductColor
	if err := db.Where("product_id = ?", product.ID).First(&color).Error; err != nil {
		t.Fatalf("reload color failed: %v", err)
	}
	if color.Quantity != 10 {
		t.Fatalf("bulk cancel should restock, got %d", color.Quantity)
	}
}

func TestUpdateOrderStatusesRejectsUnknownTarget(t *testing.T) {
	svc, _ := setupOrderServiceTest(t, config.ShippingConfig{})
	if _, err := svc.UpdateOrderStatuses([]string{"DH_X"}, "shipped"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
	if _, err := svc.UpdateOrderStatuses(nil, constants.OrderStatusProcessing); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}
