package public

import (
	"strconv"

	handlershared "github.com/lamine-sport/api/internal/http/handlers/shared"
	"github.com/lamine-sport/api/internal/http/response"
	"github.com/lamine-sport/api/internal/repository"
	"github.com/lamine-sport/api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateReviewRequest 创建评价请求
type CreateReviewRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	GuestName string `json:"guest_name"`
	Rating    int    `json:"rating" binding:"required"`
	Content   string `json:"content"`
}

// CreateReview 创建商品评价，游客亦可提交
func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	review, err := h.ReviewService.Create(service.CreateReviewInput{
		ProductID: req.ProductID,
		UserID:    getOptionalUserID(c),
		GuestName: req.GuestName,
		Rating:    req.Rating,
		Content:   req.Content,
	})
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrInvalidRating, code: response.CodeBadRequest, key: "error.rating_invalid"},
			{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
		}, response.CodeInternal, "error.review_create_failed")
		return
	}

	response.Success(c, review)
}

// GetProductReviews 获取商品评价列表与评分摘要
func (h *Handler) GetProductReviews(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.product_not_found", nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.ReviewListFilter{
		Page:      page,
		PageSize:  pageSize,
		ProductID: uint(productID),
	}
	filter.Rating, _ = strconv.Atoi(c.Query("rating"))

	reviews, total, summary, err := h.ReviewService.ListByProduct(filter)
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
	response.SuccessWithPage(c, gin.H{
		"reviews": reviews,
		"summary": summary,
	}, pagination)
}
