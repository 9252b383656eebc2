package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lamine-sport/api/internal/cache"
	"github.com/lamine-sport/api/internal/repository"
)

const (
	dashboardCacheTTL       = 45 * time.Second
	dashboardCustomMaxDays  = 90
	dashboardTopProductsMax = 10
	dashboardLowStockLimit  = 20
	lowStockThreshold       = 5
)

// DashboardService 仪表盘服务
// 聚合后台首页核心经营数据
type DashboardService struct {
	repo repository.DashboardRepository
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// DashboardQueryInput 仪表盘查询输入
type DashboardQueryInput struct {
	Range        string
	From         *time.Time
	To           *time.Time
	Timezone     string
	ForceRefresh bool
}

// DashboardOverviewResponse 仪表盘总览响应
type DashboardOverviewResponse struct {
	Range    string               `json:"range"`
	From     string               `json:"from"`
	To       string               `json:"to"`
	Timezone string               `json:"timezone"`
	KPI      DashboardKPI         `json:"kpi"`
	Alerts   []DashboardAlertItem `json:"alerts"`
}

// DashboardKPI 仪表盘核心指标
type DashboardKPI struct {
	OrdersTotal      int64  `json:"orders_total"`
	WaitingOrders    int64  `json:"waiting_orders"`
	ProcessingOrders int64  `json:"processing_orders"`
	DeliveredOrders  int64  `json:"delivered_orders"`
	CancelledOrders  int64  `json:"cancelled_orders"`
	Revenue          string `json:"revenue"`
	CompletionRate   string `json:"completion_rate"`
	NewUsers         int64  `json:"new_users"`
	VisibleProducts  int64  `json:"visible_products"`
}

// DashboardAlertItem 仪表盘告警项
type DashboardAlertItem struct {
	Type  string `json:"type"`
	Level string `json:"level"`
	Value int64  `json:"value"`
}

// DashboardTrendResponse 仪表盘趋势响应
type DashboardTrendResponse struct {
	Range    string                `json:"range"`
	From     string                `json:"from"`
	To       string                `json:"to"`
	Timezone string                `json:"timezone"`
	Points   []DashboardTrendPoint `json:"points"`
}

// DashboardTrendPoint 趋势点
type DashboardTrendPoint struct {
	Date            string `json:"date"`
	OrdersTotal     int64  `json:"orders_total"`
	OrdersDelivered int64  `json:"orders_delivered"`
	Revenue         string `json:"revenue"`
}

// DashboardRankingsResponse 仪表盘排行与库存预警响应
type DashboardRankingsResponse struct {
	Range       string                    `json:"range"`
	From        string                    `json:"from"`
	To          string                    `json:"to"`
	Timezone    string                    `json:"timezone"`
	TopProducts []DashboardProductRanking `json:"top_products"`
	LowStock    []DashboardLowStockItem   `json:"low_stock"`
}

// DashboardProductRanking 商品排行项
type DashboardProductRanking struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Orders    int64  `json:"orders"`
	Quantity  int64  `json:"quantity"`
	Amount    string `json:"amount"`
}

// DashboardLowStockItem 低库存告警项
type DashboardLowStockItem struct {
	ProductID  uint   `json:"product_id"`
	Name       string `json:"name"`
	ColorValue int    `json:"color_value"`
	Quantity   int    `json:"quantity"`
}

type dashboardWindow struct {
	rangeKey string
	timezone string
	startAt  time.Time
	endAt    time.Time
}

// GetOverview 获取仪表盘总览
func (s *DashboardService) GetOverview(ctx context.Context, input DashboardQueryInput) (*DashboardOverviewResponse, error) {
	window, err := resolveDashboardWindow(input, time.Now())
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("dashboard:overview:%s:%d:%d:%s",
		window.rangeKey, window.startAt.Unix(), window.endAt.Unix(), window.timezone)
	if !input.ForceRefresh {
		var cached DashboardOverviewResponse
		hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	overview, err := s.repo.GetOverview(window.startAt, window.endAt)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.repo.GetLowStockProducts(lowStockThreshold, dashboardLowStockLimit)
	if err != nil {
		return nil, err
	}

	completionRate := 0.0
	if overview.OrdersTotal > 0 {
		completionRate = float64(overview.DeliveredOrders) / float64(overview.OrdersTotal) * 100
	}

	response := &DashboardOverviewResponse{
		Range:    window.rangeKey,
		From:     window.startAt.Format(time.RFC3339),
		To:       window.endAt.Add(-time.Second).Format(time.RFC3339),
		Timezone: window.timezone,
		KPI: DashboardKPI{
			OrdersTotal:      overview.OrdersTotal,
			WaitingOrders:    overview.WaitingOrders,
			ProcessingOrders: overview.ProcessingOrders,
			DeliveredOrders:  overview.DeliveredOrders,
			CancelledOrders:  overview.CancelledOrders,
			Revenue:          formatMoneyValue(overview.Revenue),
			CompletionRate:   formatPercentValue(completionRate),
			NewUsers:         overview.NewUsers,
			VisibleProducts:  overview.VisibleProducts,
		},
		Alerts: buildDashboardAlerts(overview, int64(len(lowStock))),
	}

	_ = cache.SetJSON(ctx, cacheKey, response, dashboardCacheTTL)
	return response, nil
}

// GetTrends 获取按日订单趋势
func (s *DashboardService) GetTrends(ctx context.Context, input DashboardQueryInput) (*DashboardTrendResponse, error) {
	window, err := resolveDashboardWindow(input, time.Now())
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("dashboard:trends:%s:%d:%d:%s",
		window.rangeKey, window.startAt.Unix(), window.endAt.Unix(), window.timezone)
	if !input.ForceRefresh {
		var cached DashboardTrendResponse
		hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	rows, err := s.repo.GetOrderTrends(window.startAt, window.endAt)
	if err != nil {
		return nil, err
	}
	rowMap := make(map[string]repository.DashboardOrderTrendRow, len(rows))
	for _, row := range rows {
		rowMap[row.Day] = row
	}

	// 连续补全日期，无数据的天补零
	points := make([]DashboardTrendPoint, 0)
	start := time.Date(window.startAt.Year(), window.startAt.Month(), window.startAt.Day(), 0, 0, 0, 0, window.startAt.Location())
	for cursor := start; cursor.Before(window.endAt); cursor = cursor.AddDate(0, 0, 1) {
		day := cursor.Format("2006-01-02")
		row := rowMap[day]
		points = append(points, DashboardTrendPoint{
			Date:            day,
			OrdersTotal:     row.OrdersTotal,
			OrdersDelivered: row.OrdersDelivered,
			Revenue:         formatMoneyValue(row.Revenue),
		})
	}

	response := &DashboardTrendResponse{
		Range:    window.rangeKey,
		From:     window.startAt.Format(time.RFC3339),
		To:       window.endAt.Add(-time.Second).Format(time.RFC3339),
		Timezone: window.timezone,
		Points:   points,
	}

	_ = cache.SetJSON(ctx, cacheKey, response, dashboardCacheTTL)
	return response, nil
}

// GetRankings 获取热销排行与低库存告警
func (s *DashboardService) GetRankings(ctx context.Context, input DashboardQueryInput) (*DashboardRankingsResponse, error) {
	window, err := resolveDashboardWindow(input, time.Now())
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("dashboard:rankings:%s:%d:%d:%s",
		window.rangeKey, window.startAt.Unix(), window.endAt.Unix(), window.timezone)
	if !input.ForceRefresh {
		var cached DashboardRankingsResponse
		hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	topRows, err := s.repo.GetTopProducts(window.startAt, window.endAt, dashboardTopProductsMax)
	if err != nil {
		return nil, err
	}
	lowRows, err := s.repo.GetLowStockProducts(lowStockThreshold, dashboardLowStockLimit)
	if err != nil {
		return nil, err
	}

	topProducts := make([]DashboardProductRanking, 0, len(topRows))
	for _, row := range topRows {
		topProducts = append(topProducts, DashboardProductRanking{
			ProductID: row.ProductID,
			Name:      row.Name,
			Orders:    row.Orders,
			Quantity:  row.Quantity,
			Amount:    formatMoneyValue(row.Amount),
		})
	}
	lowStock := make([]DashboardLowStockItem, 0, len(lowRows))
	for _, row := range lowRows {
		lowStock = append(lowStock, DashboardLowStockItem{
			ProductID:  row.ProductID,
			Name:       row.Name,
			ColorValue: row.ColorValue,
			Quantity:   row.Quantity,
		})
	}

	response := &DashboardRankingsResponse{
		Range:       window.rangeKey,
		From:        window.startAt.Format(time.RFC3339),
		To:          window.endAt.Add(-time.Second).Format(time.RFC3339),
		Timezone:    window.timezone,
		TopProducts: topProducts,
		LowStock:    lowStock,
	}

	_ = cache.SetJSON(ctx, cacheKey, response, dashboardCacheTTL)
	return response, nil
}

func resolveDashboardWindow(input DashboardQueryInput, now time.Time) (dashboardWindow, error) {
	rangeKey := strings.ToLower(strings.TrimSpace(input.Range))
	if rangeKey == "" {
		rangeKey = "7d"
	}

	timezone := strings.TrimSpace(input.Timezone)
	location := time.Local
	if timezone != "" {
		if parsed, err := time.LoadLocation(timezone); err == nil {
			location = parsed
		} else {
			timezone = ""
		}
	}
	if timezone == "" {
		timezone = location.String()
	}

	localNow := now.In(location)
	todayStart := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, location)
	window := dashboardWindow{rangeKey: rangeKey, timezone: timezone}

	switch rangeKey {
	case "today":
		window.startAt = todayStart
		window.endAt = todayStart.AddDate(0, 0, 1)
	case "7d":
		window.startAt = todayStart.AddDate(0, 0, -6)
		window.endAt = todayStart.AddDate(0, 0, 1)
	case "30d":
		window.startAt = todayStart.AddDate(0, 0, -29)
		window.endAt = todayStart.AddDate(0, 0, 1)
	case "custom":
		if input.From == nil || input.To == nil {
			return dashboardWindow{}, ErrInvalidInput
		}
		startAt := input.From.In(location)
		endAt := input.To.In(location)
		if endAt.Before(startAt) {
			return dashboardWindow{}, ErrInvalidInput
		}
		if endAt.Sub(startAt) > time.Hour*24*dashboardCustomMaxDays {
			return dashboardWindow{}, ErrInvalidInput
		}
		window.startAt = startAt
		window.endAt = endAt.Add(time.Second)
	default:
		return dashboardWindow{}, ErrInvalidInput
	}

	if !window.endAt.After(window.startAt) {
		return dashboardWindow{}, ErrInvalidInput
	}
	return window, nil
}

func formatMoneyValue(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatPercentValue(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func buildDashboardAlerts(overview repository.DashboardOverviewRow, lowStockCount int64) []DashboardAlertItem {
	alerts := make([]DashboardAlertItem, 0, 2)
	if lowStockCount > 0 {
		alerts = append(alerts, DashboardAlertItem{Type: "low_stock_products", Level: "warning", Value: lowStockCount})
	}
	if overview.WaitingOrders > 0 {
		alerts = append(alerts, DashboardAlertItem{Type: "waiting_confirm_orders", Level: "info", Value: overview.WaitingOrders})
	}
	return alerts
}
