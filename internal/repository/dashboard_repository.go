package repository

import (
	"time"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 仪表盘聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type DashboardRepository interface {
	GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error)
	GetOrderTrends(startAt, endAt time.Time) ([]DashboardOrderTrendRow, error)
	GetTopProducts(startAt, endAt time.Time, limit int) ([]DashboardProductRankingRow, error)
	GetLowStockProducts(threshold int, limit int) ([]DashboardLowStockRow, error)
}

// DashboardOverviewRow 仪表盘总览原始统计结果
type DashboardOverviewRow struct {
	OrdersTotal     int64
	WaitingOrders   int64
	ProcessingOrders int64
	DeliveredOrders int64
	CancelledOrders int64
	Revenue         float64
	NewUsers        int64
	VisibleProducts int64
}

// DashboardOrderTrendRow 订单趋势统计
type DashboardOrderTrendRow struct {
	Day             string
	OrdersTotal     int64
	OrdersDelivered int64
	Revenue         float64
}

// DashboardProductRankingRow 商品排行原始行
type DashboardProductRankingRow struct {
	ProductID uint
	Name      string
	Orders    int64
	Quantity  int64
	Amount    float64
}

// DashboardLowStockRow 低库存商品行
type DashboardLowStockRow struct {
	ProductID  uint
	Name       string
	ColorValue int
	ColorName  string
	Quantity   int
}

// GormDashboardRepository GORM 仪表盘聚合实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建仪表盘仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// GetOverview 获取总览统计
// 营收口径：时间窗口内已送达订单的实付金额合计
func (r *GormDashboardRepository) GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error) {
	result := DashboardOverviewRow{}

	orderBase := func() *gorm.DB {
		return r.db.Model(&models.Order{}).
			Where("created_at >= ? AND created_at < ?", startAt, endAt)
	}

	if err := orderBase().Count(&result.OrdersTotal).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusWaitingConfirm).
		Count(&result.WaitingOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusProcessing).
		Count(&result.ProcessingOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusDelivered).
		Count(&result.DeliveredOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusCancel).
		Count(&result.CancelledOrders).Error; err != nil {
		return result, err
	}

	var revenue struct {
		Total float64
	}
	if err := orderBase().
		Select("COALESCE(SUM(total_price), 0) AS total").
		Where("status = ?", constants.OrderStatusDelivered).
		Take(&revenue).Error; err != nil {
		return result, err
	}
	result.Revenue = revenue.Total

	if err := r.db.Model(&models.User{}).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Count(&result.NewUsers).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Product{}).
		Where("visibility = ?", constants.ProductVisible).
		Count(&result.VisibleProducts).Error; err != nil {
		return result, err
	}

	return result, nil
}

// GetOrderTrends 获取按天的订单趋势
func (r *GormDashboardRepository) GetOrderTrends(startAt, endAt time.Time) ([]DashboardOrderTrendRow, error) {
	var rows []DashboardOrderTrendRow
	err := r.db.Model(&models.Order{}).
		Select(
			dayExpr(r.db, "created_at")+" AS day, "+
				"COUNT(*) AS orders_total, "+
				"SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS orders_delivered, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN total_price ELSE 0 END), 0) AS revenue",
			constants.OrderStatusDelivered,
			constants.OrderStatusDelivered,
		).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Group("day").
		Order("day asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetTopProducts 获取销量排行
func (r *GormDashboardRepository) GetTopProducts(startAt, endAt time.Time, limit int) ([]DashboardProductRankingRow, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []DashboardProductRankingRow
	err := r.db.Model(&models.OrderItem{}).
		Select(
			"order_items.product_id AS product_id, "+
				"order_items.product_name AS name, "+
				"COUNT(DISTINCT order_items.order_id) AS orders, "+
				"SUM(order_items.quantity) AS quantity, "+
				"COALESCE(SUM(order_items.unit_price * order_items.quantity), 0) AS amount",
		).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ? AND orders.created_at < ?", startAt, endAt).
		Where("orders.status <> ?", constants.OrderStatusCancel).
		Group("order_items.product_id, order_items.product_name").
		Order("quantity desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetLowStockProducts 获取低库存颜色规格列表
func (r *GormDashboardRepository) GetLowStockProducts(threshold int, limit int) ([]DashboardLowStockRow, error) {
	if threshold <= 0 {
		threshold = 5
	}
	if limit <= 0 {
		limit = 20
	}
	var rows []DashboardLowStockRow
	err := r.db.Model(&models.ProductColor{}).
		Select(
			"product_colors.product_id AS product_id, "+
				"products.name AS name, "+
				"product_colors.value AS color_value, "+
				"product_colors.name AS color_name, "+
				"product_colors.quantity AS quantity",
		).
		Joins("JOIN products ON products.id = product_colors.product_id").
		Where("product_colors.quantity <= ?", threshold).
		Order("product_colors.quantity asc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
