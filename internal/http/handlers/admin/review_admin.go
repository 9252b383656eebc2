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

// GetAdminReviews 获取评价列表 (Admin)
func (h *Handler) GetAdminReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.ReviewListFilter{
		Page:     page,
		PageSize: pageSize,
	}
	if productID, err := strconv.ParseUint(c.Query("product_id"), 10, 64); err == nil && productID > 0 {
		filter.ProductID = uint(productID)
	}
	filter.Rating, _ = strconv.Atoi(c.Query("rating"))
	if raw := strings.TrimSpace(c.Query("pinned")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		filter.Pinned = &parsed
	}

	reviews, total, _, err := h.ReviewService.ListByProduct(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.review_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, reviews, pagination)
}

// PinReviewRequest 置顶评价请求
type PinReviewRequest struct {
	Pinned *bool `json:"pinned" binding:"required"`
}

// PinReview 置顶或取消置顶评价
func (h *Handler) PinReview(c *gin.Context) {
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || reviewID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	var req PinReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.ReviewService.SetPinned(uint(reviewID), *req.Pinned); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			respondError(c, response.CodeNotFound, "error.review_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.review_update_failed", err)
		return
	}

	response.Success(c, gin.H{"pinned": *req.Pinned})
}

// DeleteReview 删除评价
func (h *Handler) DeleteReview(c *gin.Context) {
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || reviewID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.ReviewService.Delete(uint(reviewID)); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			respondError(c, response.CodeNotFound, "error.review_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.review_delete_failed", err)
		return
	}

	response.Success(c, nil)
}
