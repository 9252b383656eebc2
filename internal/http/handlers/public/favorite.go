package public

import (
	"errors"
	"strconv"

	"github.com/lamine-sport/api/internal/http/response"
	"github.com/lamine-sport/api/internal/service"

	"github.com/gin-gonic/gin"
)

// FavoriteRequest 收藏请求
type FavoriteRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// AddFavorite 收藏商品，重复收藏视为成功
func (h *Handler) AddFavorite(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.FavoriteService.Add(uid, req.ProductID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.favorite_failed", err)
		return
	}

	response.Success(c, gin.H{"favorite": true})
}

// RemoveFavorite 取消收藏
func (h *Handler) RemoveFavorite(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.product_not_found", nil)
		return
	}

	if err := h.FavoriteService.Remove(uid, uint(productID)); err != nil {
		respondError(c, response.CodeInternal, "error.favorite_failed", err)
		return
	}

	response.Success(c, gin.H{"favorite": false})
}

// GetFavorites 获取收藏列表，价格含当前折扣
func (h *Handler) GetFavorites(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	products, err := h.FavoriteService.List(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.favorite_fetch_failed", err)
		return
	}

	response.Success(c, products)
}
