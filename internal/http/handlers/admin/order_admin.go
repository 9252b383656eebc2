package admin

import (
	"errors"
	"strconv"
	"strings"

	handlershared "github.com/lamine-sport/api/internal/http/handlers/shared"
	"github.com/lamine-sport/api/internal/http/response"
	"github.com/lamine-sport/api/internal/repository"
	"github.com/lamine-sport/api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminOrders 获取订单列表 (Admin)
func (h *Handler) GetAdminOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.OrderListFilter{
		Page:          page,
		PageSize:      pageSize,
		Status:        strings.TrimSpace(c.Query("status")),
		OrderCode:     strings.TrimSpace(c.Query("order_code")),
		ReceiverEmail: strings.TrimSpace(c.Query("receiver_email")),
	}
	if userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64); err == nil && userID > 0 {
		filter.UserID = uint(userID)
	}
	createdFrom, err := parseTimeNullable(strings.TrimSpace(c.Query("created_from")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	createdTo, err := parseTimeNullable(strings.TrimSpace(c.Query("created_to")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	filter.CreatedFrom = createdFrom
	filter.CreatedTo = createdTo

	orders, total, err := h.OrderService.ListOrdersForAdmin(filter)
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

// GetAdminOrder 获取订单详情 (Admin)
func (h *Handler) GetAdminOrder(c *gin.Context) {
	orderCode := strings.TrimSpace(c.Param("order_code"))
	if orderCode == "" {
		respondError(c, response.CodeBadRequest, "error.order_code_required", nil)
		return
	}

	order, err := h.OrderService.GetOrderForAdmin(orderCode)
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

// UpdateOrderStatusRequest 批量更新订单状态请求
type UpdateOrderStatusRequest struct {
	OrderCodes []string `json:"order_codes" binding:"required"`
	Status     string   `json:"status" binding:"required"`
}

// UpdateOrderStatuses 批量流转订单状态，非法流转的订单整单拒绝
func (h *Handler) UpdateOrderStatuses(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	result, err := h.OrderService.UpdateOrderStatuses(req.OrderCodes, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTransition):
			respondError(c, response.CodeBadRequest, "error.order_status_invalid", nil)
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		default:
			respondError(c, response.CodeInternal, "error.order_update_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"updated":  result.Updated,
		"rejected": result.Rejected,
	})
}
