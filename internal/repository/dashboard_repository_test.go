package repository

import (
	"testing"
	"time"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupDashboardRepositoryTest(t *testing.T) (*GormDashboardRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductColor{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewDashboardRepository(db), db
}

func seedDashboardOrder(t *testing.T, db *gorm.DB, code, status string, total int64, createdAt time.Time, items []models.OrderItem) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderCode:     code,
		UserID:        1,
		Status:        status,
		Receiver:      "Nguyễn Văn A",
		ReceiverEmail: "a@example.com",
		ReceiverPhone: "0901234567",
		Address:       "12 Lê Lợi, Quận 1, TP.HCM",
		PaymentMethod: constants.PaymentMethodCOD,
		ProductsFee:   models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
		TotalPrice:    models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
		CreatedAt:     createdAt,
		Items:         items,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestDashboardOverviewCountsAndRevenue(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	inside := start.Add(24 * time.Hour)

	seedDashboardOrder(t, db, "DH_AAA11111", constants.OrderStatusWaitingConfirm, 100, inside, nil)
	seedDashboardOrder(t, db, "DH_BBB22222", constants.OrderStatusDelivered, 250, inside, nil)
	seedDashboardOrder(t, db, "DH_CCC33333", constants.OrderStatusDelivered, 150, inside.Add(time.Hour), nil)
	seedDashboardOrder(t, db, "DH_DDD44444", constants.OrderStatusCancel, 999, inside, nil)
	// 窗口外的订单不计入
	seedDashboardOrder(t, db, "DH_EEE55555", constants.OrderStatusDelivered, 500, start.AddDate(0, 0, -1), nil)

	if err := db.Create(&models.User{
		Email:        "shopper@example.com",
		FullName:     "Người mua",
		Role:         constants.UserRoleUser,
		Status:       constants.UserStatusActive,
		PasswordHash: "x",
	}).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	db.Model(&models.User{}).Where("email = ?", "shopper@example.com").Update("created_at", inside)

	overview, err := repo.GetOverview(start, end)
	if err != nil {
		t.Fatalf("get overview failed: %v", err)
	}
	if overview.OrdersTotal != 4 {
		t.Fatalf("orders total want 4 got %d", overview.OrdersTotal)
	}
	if overview.WaitingOrders != 1 || overview.DeliveredOrders != 2 || overview.CancelledOrders != 1 {
		t.Fatalf("status breakdown mismatch: %+v", overview)
	}
	if overview.Revenue != 400 {
		t.Fatalf("revenue want 400 got %v", overview.Revenue)
	}
	if overview.NewUsers != 1 {
		t.Fatalf("new users want 1 got %d", overview.NewUsers)
	}
}

func TestDashboardOrderTrendsGroupsByDay(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	seedDashboardOrder(t, db, "DH_AAA11111", constants.OrderStatusDelivered, 100, start.Add(2*time.Hour), nil)
	seedDashboardOrder(t, db, "DH_BBB22222", constants.OrderStatusWaitingConfirm, 60, start.Add(3*time.Hour), nil)
	seedDashboardOrder(t, db, "DH_CCC33333", constants.OrderStatusDelivered, 200, start.Add(26*time.Hour), nil)

	trends, err := repo.GetOrderTrends(start, end)
	if err != nil {
		t.Fatalf("get trends failed: %v", err)
	}
	if len(trends) != 2 {
		t.Fatalf("expected 2 trend rows, got %d", len(trends))
	}
	first := trends[0]
	if first.Day != "2026-03-01" {
		t.Fatalf("first day want 2026-03-01 got %s", first.Day)
	}
	if first.OrdersTotal != 2 || first.OrdersDelivered != 1 || first.Revenue != 100 {
		t.Fatalf("first day stats mismatch: %+v", first)
	}
	second := trends[1]
	if second.OrdersTotal != 1 || second.Revenue != 200 {
		t.Fatalf("second day stats mismatch: %+v", second)
	}
}

func TestDashboardTopProductsExcludesCancelled(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	inside := start.Add(24 * time.Hour)

	seedDashboardOrder(t, db, "DH_AAA11111", constants.OrderStatusDelivered, 300, inside, []models.OrderItem{
		{ProductID: 1, ProductName: "Giày chạy bộ", ColorValue: constants.ProductColorBlack, Quantity: 2, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(100))},
		{ProductID: 2, ProductName: "Áo bóng đá", ColorValue: constants.ProductColorBlue, Quantity: 1, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(100))},
	})
	seedDashboardOrder(t, db, "DH_BBB22222", constants.OrderStatusProcessing, 100, inside, []models.OrderItem{
		{ProductID: 1, ProductName: "Giày chạy bộ", ColorValue: constants.ProductColorBlack, Quantity: 1, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(100))},
	})
	// 已取消订单不计入排行
	seedDashboardOrder(t, db, "DH_CCC33333", constants.OrderStatusCancel, 900, inside, []models.OrderItem{
		{ProductID: 2, ProductName: "Áo bóng đá", ColorValue: constants.ProductColorBlue, Quantity: 9, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(100))},
	})

	rows, err := repo.GetTopProducts(start, end, 10)
	if err != nil {
		t.Fatalf("get top products failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 ranked products, got %d", len(rows))
	}
	if rows[0].ProductID != 1 || rows[0].Quantity != 3 || rows[0].Orders != 2 {
		t.Fatalf("top product mismatch: %+v", rows[0])
	}
	if rows[0].Amount != 300 {
		t.Fatalf("top product amount want 300 got %v", rows[0].Amount)
	}
	if rows[1].ProductID != 2 || rows[1].Quantity != 1 {
		t.Fatalf("runner-up mismatch: %+v", rows[1])
	}
}

func TestDashboardLowStockProducts(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)

	productRepo := NewProductRepository(db)
	shoe := createTestProduct(t, productRepo, "giay-sap-het", 100, nil)
	jersey := createTestProduct(t, productRepo, "ao-con-nhieu", 120, nil)
	createTestColor(t, db, shoe.ID, constants.ProductColorBlack, 2, 8)
	createTestColor(t, db, shoe.ID, constants.ProductColorWhite, 0, 10)
	createTestColor(t, db, jersey.ID, constants.ProductColorBlue, 50, 0)

	rows, err := repo.GetLowStockProducts(5, 20)
	if err != nil {
		t.Fatalf("get low stock failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 low stock rows, got %d", len(rows))
	}
	if rows[0].ProductID != shoe.ID || rows[0].ColorValue != constants.ProductColorWhite || rows[0].Quantity != 0 {
		t.Fatalf("lowest stock row mismatch: %+v", rows[0])
	}
	if rows[1].ColorValue != constants.ProductColorBlack || rows[1].Quantity != 2 {
		t.Fatalf("second row mismatch: %+v", rows[1])
	}
}
