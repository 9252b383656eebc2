package admin

import (
	"errors"
	"strconv"
	"strings"

	handlershared "github.com/lamine-sport/api/internal/http/handlers/shared"
	"github.com/lamine-sport/api/internal/http/response"
	"github.com/lamine-sport/api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminBanners 获取 Banner 列表 (Admin)
func (h *Handler) GetAdminBanners(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	var isActive *bool
	if raw := strings.TrimSpace(c.Query("is_active")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		isActive = &parsed
	}

	banners, total, err := h.BannerService.ListAdmin(
		strings.TrimSpace(c.Query("position")),
		strings.TrimSpace(c.Query("search")),
		isActive, page, pageSize,
	)
	if err != nil {
		respondError(c, response.CodeInternal, "error.banner_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, banners, pagination)
}

// GetAdminBanner 获取 Banner 详情 (Admin)
func (h *Handler) GetAdminBanner(c *gin.Context) {
	bannerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bannerID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	banner, err := h.BannerService.GetByID(uint(bannerID))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.banner_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.banner_fetch_failed", err)
		return
	}

	response.Success(c, banner)
}

// CreateBanner 创建 Banner
func (h *Handler) CreateBanner(c *gin.Context) {
	var req service.BannerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	banner, err := h.BannerService.Create(req)
	if err != nil {
		respondBannerSaveError(c, err)
		return
	}

	response.Success(c, banner)
}

// UpdateBanner 更新 Banner
func (h *Handler) UpdateBanner(c *gin.Context) {
	bannerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bannerID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	var req service.BannerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	banner, err := h.BannerService.Update(uint(bannerID), req)
	if err != nil {
		respondBannerSaveError(c, err)
		return
	}

	response.Success(c, banner)
}

// DeleteBanner 删除 Banner
func (h *Handler) DeleteBanner(c *gin.Context) {
	bannerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bannerID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.BannerService.Delete(uint(bannerID)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.banner_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.banner_delete_failed", err)
		return
	}

	response.Success(c, nil)
}

func respondBannerSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.banner_not_found", nil)
	case errors.Is(err, service.ErrInvalidBanner):
		respondError(c, response.CodeBadRequest, "error.banner_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.banner_save_failed", err)
	}
}
