package public

import (
	"errors"

	"github.com/lamine-sport/api/internal/http/response"
	"github.com/lamine-sport/api/internal/i18n"
	"github.com/lamine-sport/api/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRegisterRequest 注册请求
type UserRegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

// UserRegister 用户注册
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	user, pair, err := h.UserAuthService.Register(req.Email, req.Password, req.FullName, locale)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "error.email_invalid", nil)
		case errors.Is(err, service.ErrEmailAlreadyRegistered):
			respondError(c, response.CodeBadRequest, "error.email_exists", nil)
		case errors.Is(err, service.ErrWeakPassword):
			if perr, ok := err.(interface {
				Key() string
				Args() []interface{}
			}); ok {
				msg := i18n.Sprintf(locale, perr.Key(), perr.Args()...)
				respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
				return
			}
			respondError(c, response.CodeBadRequest, "error.password_weak", nil)
		default:
			respondError(c, response.CodeInternal, "error.register_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"user":          user,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"expires_at":    pair.ExpiresAt,
	})
}

// UserLoginRequest 登录请求
type UserLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserLogin 用户登录
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, pair, err := h.UserAuthService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, response.CodeUnauthorized, "error.invalid_credentials", nil)
		case errors.Is(err, service.ErrAccountLocked):
			respondError(c, response.CodeForbidden, "error.account_locked", nil)
		default:
			respondError(c, response.CodeInternal, "error.login_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"user":          user,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"expires_at":    pair.ExpiresAt,
	})
}

// UserGoogleLoginRequest Google 登录请求
type UserGoogleLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
}

// UserGoogleLogin Google 账号登录，首次登录时自动建号
func (h *Handler) UserGoogleLogin(c *gin.Context) {
	var req UserGoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	user, pair, err := h.UserAuthService.GoogleLogin(req.Email, req.FullName, req.Avatar, locale)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGoogleAuthDisabled):
			respondError(c, response.CodeBadRequest, "error.google_auth_disabled", nil)
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "error.email_invalid", nil)
		case errors.Is(err, service.ErrAccountLocked):
			respondError(c, response.CodeForbidden, "error.account_locked", nil)
		default:
			respondError(c, response.CodeInternal, "error.login_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"user":          user,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"expires_at":    pair.ExpiresAt,
	})
}

// UserRefreshRequest 刷新令牌请求
type UserRefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserRefreshToken 刷新访问令牌，旧刷新令牌随即失效
func (h *Handler) UserRefreshToken(c *gin.Context) {
	var req UserRefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, pair, err := h.UserAuthService.Refresh(req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRefreshTokenInvalid):
			respondError(c, response.CodeUnauthorized, "error.refresh_token_invalid", nil)
		case errors.Is(err, service.ErrAccountLocked):
			respondError(c, response.CodeForbidden, "error.account_locked", nil)
		default:
			respondError(c, response.CodeInternal, "error.refresh_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"user":          user,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"expires_at":    pair.ExpiresAt,
	})
}

// UserLogoutRequest 登出请求
type UserLogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UserLogout 用户登出
func (h *Handler) UserLogout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req UserLogoutRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.UserAuthService.Logout(userID, req.RefreshToken); err != nil {
		respondError(c, response.CodeInternal, "error.logout_failed", err)
		return
	}

	response.Success(c, gin.H{"logout": true})
}

// UserForgotPasswordRequest 找回密码请求
type UserForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// UserForgotPassword 发送找回密码邮件
// 未注册邮箱同样返回成功，避免暴露注册状态。
func (h *Handler) UserForgotPassword(c *gin.Context) {
	var req UserForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	if err := h.UserAuthService.ForgotPassword(req.Email, locale); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "error.email_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.forgot_password_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"sent": true})
}

// UserResetPasswordRequest 重置密码请求
type UserResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UserResetPassword 使用找回令牌重置密码
func (h *Handler) UserResetPassword(c *gin.Context) {
	var req UserResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.UserAuthService.ResetPassword(req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrRecoveryTokenInvalid):
			respondError(c, response.CodeBadRequest, "error.recovery_token_invalid", nil)
		case errors.Is(err, service.ErrRecoveryTokenExpired):
			respondError(c, response.CodeBadRequest, "error.recovery_token_expired", nil)
		case errors.Is(err, service.ErrWeakPassword):
			locale := i18n.ResolveLocale(c)
			if perr, ok := err.(interface {
				Key() string
				Args() []interface{}
			}); ok {
				msg := i18n.Sprintf(locale, perr.Key(), perr.Args()...)
				respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
				return
			}
			respondError(c, response.CodeBadRequest, "error.password_weak", nil)
		default:
			respondError(c, response.CodeInternal, "error.reset_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"reset": true})
}

// UserChangePasswordRequest 修改密码请求
type UserChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UserChangePassword 登录态修改密码
func (h *Handler) UserChangePassword(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req UserChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.UserAuthService.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, response.CodeBadRequest, "error.old_password_incorrect", nil)
		case errors.Is(err, service.ErrWeakPassword):
			locale := i18n.ResolveLocale(c)
			if perr, ok := err.(interface {
				Key() string
				Args() []interface{}
			}); ok {
				msg := i18n.Sprintf(locale, perr.Key(), perr.Args()...)
				respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
				return
			}
			respondError(c, response.CodeBadRequest, "error.password_weak", nil)
		default:
			respondError(c, response.CodeInternal, "error.change_password_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"changed": true})
}

// UserProfile 获取当前用户信息
func (h *Handler) UserProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.UserAuthService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.profile_fetch_failed", err)
		return
	}

	response.Success(c, user)
}

// UserUpdateProfileRequest 更新个人资料请求
type UserUpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Avatar   *string `json:"avatar"`
	Locale   *string `json:"locale"`
}

// UserUpdateProfile 更新当前用户资料
func (h *Handler) UserUpdateProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req UserUpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, err := h.UserAuthService.UpdateProfile(userID, req.FullName, req.Phone, req.Avatar, req.Locale)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		default:
			respondError(c, response.CodeInternal, "error.profile_update_failed", err)
		}
		return
	}

	response.Success(c, user)
}
