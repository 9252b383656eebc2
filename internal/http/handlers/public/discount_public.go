package public

import (
	"time"

	"github.com/lamine-sport/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCurrentProgram 获取当前生效的折扣活动，供前台展示活动横幅与价格说明
// 无生效活动时 data 为 null
func (h *Handler) GetCurrentProgram(c *gin.Context) {
	program, err := h.DiscountService.CurrentProgram(time.Now())
	if err != nil {
		respondError(c, response.CodeInternal, "error.program_fetch_failed", err)
		return
	}

	response.Success(c, program)
}
