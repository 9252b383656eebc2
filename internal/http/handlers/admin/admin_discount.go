package admin

import (
	"errors"
	"strconv"
	"strings"
	"time"

	handlershared "github.com/lamine-sport/api/internal/http/handlers/shared"
	"github.com/lamine-sport/api/internal/http/response"
	"github.com/lamine-sport/api/internal/service"

	"github.com/gin-gonic/gin"
)

// DiscountProgramRequest 折扣活动请求
type DiscountProgramRequest struct {
	Name               string    `json:"name" binding:"required"`
	DiscountPercentage int       `json:"discount_percentage" binding:"required"`
	ApplyType          string    `json:"apply_type" binding:"required"`
	ProductIDs         []uint    `json:"product_ids"`
	ApplySetting       string    `json:"apply_setting"`
	StartsAt           time.Time `json:"starts_at" binding:"required"`
	EndsAt             time.Time `json:"ends_at" binding:"required"`
}

func (r DiscountProgramRequest) toInput() service.DiscountProgramInput {
	return service.DiscountProgramInput{
		Name:               r.Name,
		DiscountPercentage: r.DiscountPercentage,
		ApplyType:          r.ApplyType,
		ProductIDs:         r.ProductIDs,
		ApplySetting:       r.ApplySetting,
		StartsAt:           r.StartsAt,
		EndsAt:             r.EndsAt,
	}
}

// CreateDiscountProgram 创建折扣活动
func (h *Handler) CreateDiscountProgram(c *gin.Context) {
	var req DiscountProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	program, err := h.DiscountAdminService.Create(req.toInput())
	if err != nil {
		respondProgramSaveError(c, err)
		return
	}

	response.Success(c, program)
}

// UpdateDiscountProgram 更新折扣活动
func (h *Handler) UpdateDiscountProgram(c *gin.Context) {
	programID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || programID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	var req DiscountProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	program, err := h.DiscountAdminService.Update(uint(programID), req.toInput())
	if err != nil {
		respondProgramSaveError(c, err)
		return
	}

	response.Success(c, program)
}

// CancelDiscountProgram 提前结束折扣活动
func (h *Handler) CancelDiscountProgram(c *gin.Context) {
	programID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || programID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	program, err := h.DiscountAdminService.Cancel(uint(programID))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProgramNotFound):
			respondError(c, response.CodeNotFound, "error.program_not_found", nil)
		case errors.Is(err, service.ErrProgramNotCancellable):
			respondError(c, response.CodeBadRequest, "error.program_not_cancellable", nil)
		default:
			respondError(c, response.CodeInternal, "error.program_save_failed", err)
		}
		return
	}

	response.Success(c, program)
}

// GetDiscountPrograms 获取折扣活动列表
func (h *Handler) GetDiscountPrograms(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	programs, total, err := h.DiscountAdminService.List(strings.TrimSpace(c.Query("status")), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.program_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, programs, pagination)
}

func respondProgramSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProgramNotFound):
		respondError(c, response.CodeNotFound, "error.program_not_found", nil)
	case errors.Is(err, service.ErrProgramInvalid):
		respondError(c, response.CodeBadRequest, "error.program_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.program_save_failed", err)
	}
}
