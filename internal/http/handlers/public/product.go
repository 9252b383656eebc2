package public

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

// GetProducts 获取前台商品列表
// 登录用户携带搜索词时顺带记录搜索历史。
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "12"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
		Brand:    strings.TrimSpace(c.Query("brand")),
		SortBy:   strings.TrimSpace(c.Query("sort_by")),
	}
	filter.ProductType, _ = strconv.Atoi(c.Query("product_type"))
	filter.SportType, _ = strconv.Atoi(c.Query("sport_type"))
	filter.Gender, _ = strconv.Atoi(c.Query("gender"))
	filter.ColorValue, _ = strconv.Atoi(c.Query("color_value"))
	if raw := c.Query("price_min"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil && value >= 0 {
			filter.PriceMin = &value
		}
	}
	if raw := c.Query("price_max"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil && value >= 0 {
			filter.PriceMax = &value
		}
	}

	products, total, err := h.ProductService.ListPublic(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	if uid := getOptionalUserID(c); uid != 0 && filter.Search != "" {
		if err := h.SearchHistoryService.Record(uid, filter.Search); err != nil {
			handlershared.RequestLog(c).Warnw("search_history_record_failed", "user_id", uid, "error", err)
		}
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, products, pagination)
}

// GetProductBySlug 获取前台商品详情
func (h *Handler) GetProductBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.product_slug_required", nil)
		return
	}

	product, err := h.ProductService.GetPublicBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	response.Success(c, product)
}

// GetBestSellers 获取热销商品
func (h *Handler) GetBestSellers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	products, err := h.ProductService.BestSellers(limit)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	response.Success(c, products)
}

// GetRelatedProducts 获取同运动类型的相关商品
func (h *Handler) GetRelatedProducts(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.product_slug_required", nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))

	products, err := h.ProductService.Related(slug, limit)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	response.Success(c, products)
}
