package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/lamine-sport/api/internal/config"
	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/logger"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/queue"
	"github.com/lamine-sport/api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo       repository.OrderRepository
	productRepo     repository.ProductRepository
	couponRepo      repository.CouponRepository
	couponService   *CouponService
	discountService *DiscountService
	queueClient     *queue.Client
	shipping        config.ShippingConfig
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, couponRepo repository.CouponRepository, couponService *CouponService, discountService *DiscountService, queueClient *queue.Client, shipping config.ShippingConfig) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		couponRepo:      couponRepo,
		couponService:   couponService,
		discountService: discountService,
		queueClient:     queueClient,
		shipping:        shipping,
	}
}

// CreateOrderInput 创建订单输入
type CreateOrderInput struct {
	UserID        uint
	Receiver      string
	ReceiverEmail string
	ReceiverPhone string
	Address       string
	Note          string
	PaymentMethod string
	CouponCode    string
	Locale        string
	Items         []CreateOrderItem
}

// CreateOrderItem 创建订单项输入
type CreateOrderItem struct {
	ProductID  uint   `json:"product_id"`
	ColorValue int    `json:"color_value"`
	Size       string `json:"size"`
	Quantity   int    `json:"quantity"`
}

// orderItemPlan 订单项计划数据，单价在校验阶段固化
type orderItemPlan struct {
	Product *models.Product
	Item    models.OrderItem
}

const (
	orderCodePrefix   = "DH_"
	orderCodeLength   = 8
	orderCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderCodeAttempts = 10
)

// CreateOrder 创建订单
// 金额与库存校验在事务外预查，扣减在单一事务内以条件更新完成；
// 任一行扣减未命中即整体回滚
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if err := validateOrderContact(&input); err != nil {
		return nil, err
	}

	now := time.Now()

	var coupon *models.Coupon
	couponCode := strings.ToUpper(strings.TrimSpace(input.CouponCode))
	if couponCode != "" {
		validated, err := s.couponService.Validate(couponCode, input.UserID, now)
		if err != nil {
			return nil, err
		}
		coupon = validated
	}

	mergedItems, err := mergeCreateOrderItems(input.Items)
	if err != nil {
		return nil, err
	}

	plans, productsFee, err := s.buildItemPlans(mergedItems, now)
	if err != nil {
		return nil, err
	}

	shippingFee := s.resolveShippingFee(productsFee)
	discountValue := decimal.Zero
	if coupon != nil {
		discountValue = ComputeDiscount(coupon, models.NewMoneyFromDecimal(productsFee)).Decimal
	}
	totalPrice := productsFee.Add(shippingFee).Sub(discountValue).Round(2)
	if totalPrice.LessThan(decimal.Zero) {
		totalPrice = decimal.Zero
	}

	orderCode, err := s.generateOrderCode()
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderCode:     orderCode,
		UserID:        input.UserID,
		Status:        constants.OrderStatusWaitingConfirm,
		Receiver:      strings.TrimSpace(input.Receiver),
		ReceiverEmail: strings.ToLower(strings.TrimSpace(input.ReceiverEmail)),
		ReceiverPhone: strings.TrimSpace(input.ReceiverPhone),
		Address:       strings.TrimSpace(input.Address),
		Note:          strings.TrimSpace(input.Note),
		PaymentMethod: input.PaymentMethod,
		CouponCode:    couponCode,
		ProductsFee:   models.NewMoneyFromDecimal(productsFee),
		ShippingFee:   models.NewMoneyFromDecimal(shippingFee),
		DiscountValue: models.NewMoneyFromDecimal(discountValue),
		TotalPrice:    models.NewMoneyFromDecimal(totalPrice),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	items := make([]models.OrderItem, 0, len(plans))
	for _, plan := range plans {
		items = append(items, plan.Item)
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		if err := orderRepo.Create(order, items); err != nil {
			return err
		}

		for _, plan := range plans {
			affected, err := productRepo.DecrementColorStock(plan.Item.ProductID, plan.Item.ColorValue, plan.Item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInsufficientStock
			}
			if err := productRepo.AdjustStockCounters(plan.Item.ProductID, -plan.Item.Quantity); err != nil {
				return err
			}
		}

		if coupon != nil {
			couponRepo := s.couponRepo.WithTx(tx)
			affected, err := couponRepo.IncrementUsedQuantity(coupon.ID, 1)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrCouponExhausted
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) || errors.Is(err, ErrCouponExhausted) {
			return nil, err
		}
		logger.Errorw("order_create_failed",
			"order_code", orderCode,
			"user_id", input.UserID,
			"error", err,
		)
		return nil, err
	}

	s.notifyStatusChange(order, input.Locale)

	full, err := s.orderRepo.GetByCode(order.OrderCode)
	if err == nil && full != nil {
		return full, nil
	}
	order.Items = items
	return order, nil
}

// buildItemPlans 校验订单项并固化单价快照
// 单价取下单时刻叠加折扣活动后的生效价
func (s *OrderService) buildItemPlans(items []CreateOrderItem, now time.Time) ([]orderItemPlan, decimal.Decimal, error) {
	plans := make([]orderItemPlan, 0, len(items))
	productsFee := decimal.Zero

	for _, item := range items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return nil, decimal.Zero, ErrInvalidOrderItem
		}
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if product == nil || product.Visibility != constants.ProductVisible {
			return nil, decimal.Zero, ErrProductNotFound
		}

		color := product.ColorByValue(item.ColorValue)
		if color == nil {
			return nil, decimal.Zero, ErrColorNotFound
		}
		if color.Quantity < item.Quantity {
			return nil, decimal.Zero, ErrInsufficientStock
		}

		size := strings.TrimSpace(item.Size)
		if size != "" && !product.Sizes.Contains(size) {
			return nil, decimal.Zero, ErrInvalidOrderItem
		}

		if err := s.discountService.ApplyToProduct(product, now); err != nil {
			return nil, decimal.Zero, err
		}
		unitPrice := EffectivePrice(product)

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}

		total := unitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		productsFee = productsFee.Add(total).Round(2)

		plans = append(plans, orderItemPlan{
			Product: product,
			Item: models.OrderItem{
				ProductID:    product.ID,
				ProductName:  product.Name,
				ProductImage: image,
				ColorValue:   item.ColorValue,
				Size:         size,
				Quantity:     item.Quantity,
				UnitPrice:    unitPrice,
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		})
	}
	return plans, productsFee, nil
}

// CancelOrder 用户取消订单
// 仅 waiting_confirm 可取消；回补库存并释放优惠券配额
func (s *OrderService) CancelOrder(orderCode string, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByCodeAndUser(orderCode, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status == constants.OrderStatusCancel {
		return nil, ErrOrderAlreadyCancelled
	}
	if order.Status != constants.OrderStatusWaitingConfirm {
		return nil, ErrOrderNotCancellable
	}

	now := time.Now()
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		if err := orderRepo.UpdateStatus(order.ID, constants.OrderStatusCancel, map[string]interface{}{
			"canceled_at": now,
		}); err != nil {
			return err
		}
		if err := s.restockOrderItems(tx, order.Items); err != nil {
			return err
		}
		return s.releaseCouponUsage(tx, order.CouponCode, 1)
	})
	if err != nil {
		logger.Errorw("order_cancel_failed",
			"order_code", order.OrderCode,
			"user_id", userID,
			"error", err,
		)
		return nil, err
	}

	order.Status = constants.OrderStatusCancel
	order.CanceledAt = &now
	s.notifyStatusChange(order, "")
	return order, nil
}

// BulkUpdateResult 批量改状态结果
type BulkUpdateResult struct {
	Updated  []models.Order `json:"updated"`
	Rejected []string       `json:"rejected"`
}

// UpdateOrderStatuses 后台批量迁移订单状态
// 非法迁移的订单记入 Rejected，不影响其余订单；
// 迁移至取消时统一回补库存与券量
func (s *OrderService) UpdateOrderStatuses(orderCodes []string, targetStatus string) (*BulkUpdateResult, error) {
	target := NormalizeOrderStatus(targetStatus)
	if !IsValidOrderStatus(target) {
		return nil, ErrInvalidTransition
	}
	if len(orderCodes) == 0 {
		return nil, ErrInvalidInput
	}

	orders, err := s.orderRepo.ListByCodes(orderCodes)
	if err != nil {
		return nil, err
	}
	found := make(map[string]*models.Order, len(orders))
	for i := range orders {
		found[orders[i].OrderCode] = &orders[i]
	}

	result := &BulkUpdateResult{}
	var eligible []*models.Order
	for _, code := range orderCodes {
		order, ok := found[code]
		if !ok {
			result.Rejected = append(result.Rejected, code)
			continue
		}
		if !CanTransitionOrderStatus(order.Status, target) {
			result.Rejected = append(result.Rejected, code)
			continue
		}
		eligible = append(eligible, order)
	}
	if len(eligible) == 0 {
		return result, nil
	}

	now := time.Now()
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		couponReleases := map[string]int{}

		for _, order := range eligible {
			updates := map[string]interface{}{}
			switch target {
			case constants.OrderStatusCancel:
				updates["canceled_at"] = now
			case constants.OrderStatusDelivered:
				updates["delivered_at"] = now
			}
			if err := orderRepo.UpdateStatus(order.ID, target, updates); err != nil {
				return err
			}
			if target == constants.OrderStatusCancel {
				if err := s.restockOrderItems(tx, order.Items); err != nil {
					return err
				}
				if order.CouponCode != "" {
					couponReleases[order.CouponCode]++
				}
			}
		}

		for code, count := range couponReleases {
			if err := s.releaseCouponUsage(tx, code, count); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Errorw("order_bulk_update_failed",
			"target_status", target,
			"count", len(eligible),
			"error", err,
		)
		return nil, err
	}

	for _, order := range eligible {
		order.Status = target
		switch target {
		case constants.OrderStatusCancel:
			order.CanceledAt = &now
		case constants.OrderStatusDelivered:
			order.DeliveredAt = &now
		}
		result.Updated = append(result.Updated, *order)
		s.notifyStatusChange(order, "")
	}
	return result, nil
}

// restockOrderItems 回补每个订单项的颜色库存与商品计数
func (s *OrderService) restockOrderItems(tx *gorm.DB, items []models.OrderItem) error {
	productRepo := s.productRepo.WithTx(tx)
	for _, item := range items {
		affected, err := productRepo.RestoreColorStock(item.ProductID, item.ColorValue, item.Quantity)
		if err != nil {
			return err
		}
		if affected == 0 {
			// 颜色行未命中（规格已删或销量被改），跳过商品级计数以免两者失配
			logger.Warnw("order_restock_skipped",
				"product_id", item.ProductID,
				"color_value", item.ColorValue,
				"quantity", item.Quantity,
			)
			continue
		}
		if err := productRepo.AdjustStockCounters(item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// releaseCouponUsage 释放优惠券已用配额，优惠码已被删除时跳过
func (s *OrderService) releaseCouponUsage(tx *gorm.DB, couponCode string, count int) error {
	if couponCode == "" || count <= 0 {
		return nil
	}
	couponRepo := s.couponRepo.WithTx(tx)
	coupon, err := couponRepo.GetByCode(couponCode)
	if err != nil {
		return err
	}
	if coupon == nil {
		return nil
	}
	return couponRepo.DecrementUsedQuantity(coupon.ID, count)
}

func (s *OrderService) resolveShippingFee(productsFee decimal.Decimal) decimal.Decimal {
	flat := decimal.NewFromFloat(s.shipping.FlatFee)
	if s.shipping.FreeShippingAbove > 0 &&
		productsFee.GreaterThanOrEqual(decimal.NewFromFloat(s.shipping.FreeShippingAbove)) {
		return decimal.Zero
	}
	if flat.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return flat
}

// generateOrderCode 生成订单编号，冲突时重试
func (s *OrderService) generateOrderCode() (string, error) {
	for i := 0; i < orderCodeAttempts; i++ {
		code := orderCodePrefix + randOrderSuffix(orderCodeLength)
		exists, err := s.orderRepo.ExistsByCode(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("order code space exhausted after %d attempts", orderCodeAttempts)
}

func randOrderSuffix(length int) string {
	max := big.NewInt(int64(len(orderCodeAlphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			b[i] = orderCodeAlphabet[time.Now().UnixNano()%int64(len(orderCodeAlphabet))]
			continue
		}
		b[i] = orderCodeAlphabet[n.Int64()]
	}
	return string(b)
}

func validateOrderContact(input *CreateOrderInput) error {
	if strings.TrimSpace(input.Receiver) == "" ||
		strings.TrimSpace(input.ReceiverPhone) == "" ||
		strings.TrimSpace(input.Address) == "" {
		return ErrInvalidInput
	}
	email := strings.ToLower(strings.TrimSpace(input.ReceiverEmail))
	if email == "" {
		return ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	switch input.PaymentMethod {
	case constants.PaymentMethodCOD, constants.PaymentMethodTransfer:
	default:
		return ErrInvalidInput
	}
	return nil
}

// mergeCreateOrderItems 合并同商品同颜色同尺码的重复条目
func mergeCreateOrderItems(items []CreateOrderItem) ([]CreateOrderItem, error) {
	type itemKey struct {
		ProductID  uint
		ColorValue int
		Size       string
	}
	index := map[itemKey]int{}
	merged := make([]CreateOrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidOrderItem
		}
		key := itemKey{item.ProductID, item.ColorValue, strings.TrimSpace(item.Size)}
		if pos, ok := index[key]; ok {
			merged[pos].Quantity += item.Quantity
			continue
		}
		index[key] = len(merged)
		merged = append(merged, CreateOrderItem{
			ProductID:  item.ProductID,
			ColorValue: item.ColorValue,
			Size:       strings.TrimSpace(item.Size),
			Quantity:   item.Quantity,
		})
	}
	return merged, nil
}

func (s *OrderService) notifyStatusChange(order *models.Order, locale string) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	if strings.TrimSpace(order.ReceiverEmail) == "" {
		return
	}
	if err := s.queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID: order.ID,
		Status:  order.Status,
		Locale:  locale,
	}); err != nil {
		logger.Warnw("order_status_email_enqueue_failed",
			"order_id", order.ID,
			"order_code", order.OrderCode,
			"status", order.Status,
			"error", err,
		)
	}
}
