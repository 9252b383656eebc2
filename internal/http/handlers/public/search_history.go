package public

import (
	"github.com/lamine-sport/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetSearchHistory 获取最近搜索记录
func (h *Handler) GetSearchHistory(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	histories, err := h.SearchHistoryService.ListRecent(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.search_history_fetch_failed", err)
		return
	}

	response.Success(c, histories)
}

// ClearSearchHistory 清空搜索记录
func (h *Handler) ClearSearchHistory(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.SearchHistoryService.Clear(uid); err != nil {
		respondError(c, response.CodeInternal, "error.search_history_clear_failed", err)
		return
	}

	response.Success(c, gin.H{"cleared": true})
}
