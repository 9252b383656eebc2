package public

import (
	"strconv"

	"github.com/lamine-sport/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPublicBanners 获取首页 Banner 列表
func (h *Handler) GetPublicBanners(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	banners, err := h.BannerService.ListPublic(limit)
	if err != nil {
		respondError(c, response.CodeInternal, "error.banner_fetch_failed", err)
		return
	}

	response.Success(c, banners)
}
