package admin

import (
	"errors"
	"strconv"
	"strings"

	handlershared "github.com/lamine-sport/api/internal/http/handlers/shared"
	"github.com/lamine-sport/api/internal/http/response"
	"github.com/lamine-sport/api/internal/logger"
	"github.com/lamine-sport/api/internal/repository"
	"github.com/lamine-sport/api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminUsers 获取用户列表 (Admin)
func (h *Handler) GetAdminUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  strings.TrimSpace(c.Query("keyword")),
		Role:     strings.TrimSpace(c.Query("role")),
		Status:   strings.TrimSpace(c.Query("status")),
	}

	users, total, err := h.UserAdminService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, users, pagination)
}

// GetAdminUser 获取用户详情 (Admin)
func (h *Handler) GetAdminUser(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	user, err := h.UserAdminService.Get(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}

	response.Success(c, user)
}

// LockUser 锁定用户账号
func (h *Handler) LockUser(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	if err := h.UserAdminService.Lock(userID); err != nil {
		respondUserStatusError(c, err)
		return
	}

	logger.Infow("admin_user_locked",
		"operator_admin_id", currentAdminID(c),
		"target_user_id", userID,
	)
	response.Success(c, gin.H{"locked": true})
}

// UnlockUser 解锁用户账号
func (h *Handler) UnlockUser(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	if err := h.UserAdminService.Unlock(userID); err != nil {
		respondUserStatusError(c, err)
		return
	}

	logger.Infow("admin_user_unlocked",
		"operator_admin_id", currentAdminID(c),
		"target_user_id", userID,
	)
	response.Success(c, gin.H{"locked": false})
}

// SetUserRoleRequest 设置用户角色请求
type SetUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SetUserRole 设置用户角色
func (h *Handler) SetUserRole(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	var req SetUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, err := h.UserAdminService.SetRole(userID, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "error.role_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.user_update_failed", err)
		}
		return
	}

	logger.Infow("admin_user_role_updated",
		"operator_admin_id", currentAdminID(c),
		"target_user_id", userID,
		"role", req.Role,
	)
	response.Success(c, user)
}

func respondUserStatusError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		return
	}
	respondError(c, response.CodeInternal, "error.user_update_failed", err)
}

func parseUserIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.user_id_invalid", nil)
		return 0, false
	}
	return uint(id), true
}
