package public

import (
	"errors"
	"strconv"
	"strings"

	handlershared "github.com/lamine-sport/api/internal/http/handlers/shared"
	"github.com/lamine-sport/api/internal/http/response"
	"github.com/lamine-sport/api/internal/i18n"
	"github.com/lamine-sport/api/internal/repository"
	"github.com/lamine-sport/api/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderItemRequest 订单项请求
type OrderItemRequest struct {
	ProductID  uint   `json:"product_id" binding:"required"`
	ColorValue int    `json:"color_value" binding:"required"`
	Size       string `json:"size"`
	Quantity   int    `json:"quantity" binding:"required"`
}

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	Receiver      string             `json:"receiver" binding:"required"`
	ReceiverEmail string             `json:"receiver_email"`
	ReceiverPhone string             `json:"receiver_phone" binding:"required"`
	Address       string             `json:"address" binding:"required"`
	Note          string             `json:"note"`
	PaymentMethod string             `json:"payment_method" binding:"required"`
	CouponCode    string             `json:"coupon_code"`
	Items         []OrderItemRequest `json:"items" binding:"required"`
}

// CreateOrder 创建订单并扣减库存
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	items := make([]service.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CreateOrderItem{
			ProductID:  item.ProductID,
			ColorValue: item.ColorValue,
			Size:       item.Size,
			Quantity:   item.Quantity,
		})
	}

	order, err := h.OrderService.CreateOrder(service.CreateOrderInput{
		UserID:        uid,
		Receiver:      req.Receiver,
		ReceiverEmail: req.ReceiverEmail,
		ReceiverPhone: req.ReceiverPhone,
		Address:       req.Address,
		Note:          req.Note,
		PaymentMethod: req.PaymentMethod,
		CouponCode:    req.CouponCode,
		Locale:        i18n.ResolveLocale(c),
		Items:         items,
	})
	if err != nil {
		respondOrderCreateError(c, err)
		return
	}

	response.Success(c, order)
}

// GetMyOrders 获取当前用户订单列表
func (h *Handler) GetMyOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListOrdersByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   uid,
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, orders, pagination)
}

// GetMyOrderDetail 获取当前用户订单详情
func (h *Handler) GetMyOrderDetail(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	orderCode := strings.TrimSpace(c.Param("order_code"))
	if orderCode == "" {
		respondError(c, response.CodeBadRequest, "error.order_code_required", nil)
		return
	}

	order, err := h.OrderService.GetOrderByUser(orderCode, uid)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	response.Success(c, order)
}

// CancelMyOrder 取消订单并回补库存
func (h *Handler) CancelMyOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	orderCode := strings.TrimSpace(c.Param("order_code"))
	if orderCode == "" {
		respondError(c, response.CodeBadRequest, "error.order_code_required", nil)
		return
	}

	order, err := h.OrderService.CancelOrder(orderCode, uid)
	if err != nil {
		respondOrderCancelError(c, err)
		return
	}

	response.Success(c, order)
}
