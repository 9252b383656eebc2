package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/lamine-sport/api/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// UserAuthState 用户鉴权快照
// 仅用于服务端 Redis 缓存，避免每次请求回表
type UserAuthState struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	UpdatedAt int64  `json:"updated_at"`
}

func userAuthStateKey(userID uint) string {
	return fmt.Sprintf("auth:user:%d", userID)
}

func refreshTokenKey(token string) string {
	return fmt.Sprintf("auth:refresh:%s", token)
}

func loginAttemptKey(email string) string {
	return fmt.Sprintf("auth:login_attempts:%s", email)
}

// BuildUserAuthState 从用户模型构建鉴权快照
func BuildUserAuthState(user *models.User) *UserAuthState {
	if user == nil {
		return nil
	}
	return &UserAuthState{
		UserID:    user.ID,
		Role:      user.Role,
		Status:    user.Status,
		UpdatedAt: time.Now().Unix(),
	}
}

// GetUserAuthState 获取用户鉴权快照
func GetUserAuthState(ctx context.Context, userID uint) (*UserAuthState, bool, error) {
	if userID == 0 {
		return nil, false, nil
	}
	var state UserAuthState
	hit, err := GetJSON(ctx, userAuthStateKey(userID), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetUserAuthState 写入用户鉴权快照
func SetUserAuthState(ctx context.Context, state *UserAuthState) error {
	if state == nil || state.UserID == 0 {
		return nil
	}
	return SetJSON(ctx, userAuthStateKey(state.UserID), state, authStateCacheTTL)
}

// DelUserAuthState 删除用户鉴权快照
func DelUserAuthState(ctx context.Context, userID uint) error {
	if userID == 0 {
		return nil
	}
	return Del(ctx, userAuthStateKey(userID))
}

// refreshTokenRecord 刷新令牌与用户的绑定关系
type refreshTokenRecord struct {
	UserID   uint  `json:"user_id"`
	IssuedAt int64 `json:"issued_at"`
}

// StoreRefreshToken 保存刷新令牌
func StoreRefreshToken(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	if token == "" || userID == 0 {
		return nil
	}
	return SetJSON(ctx, refreshTokenKey(token), &refreshTokenRecord{
		UserID:   userID,
		IssuedAt: time.Now().Unix(),
	}, ttl)
}

// ResolveRefreshToken 按刷新令牌取回用户ID，未命中返回 0
func ResolveRefreshToken(ctx context.Context, token string) (uint, error) {
	if token == "" {
		return 0, nil
	}
	var record refreshTokenRecord
	hit, err := GetJSON(ctx, refreshTokenKey(token), &record)
	if err != nil || !hit {
		return 0, err
	}
	return record.UserID, nil
}

// RevokeRefreshToken 作废刷新令牌
func RevokeRefreshToken(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return Del(ctx, refreshTokenKey(token))
}

// IncrLoginAttempts 登录失败计数，窗口固定一分钟
func IncrLoginAttempts(ctx context.Context, email string) (int64, error) {
	if !Enabled() || email == "" {
		return 0, nil
	}
	key := buildKey(loginAttemptKey(email))
	count, err := Client().Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := Client().Expire(ctx, key, time.Minute).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}

// ResetLoginAttempts 清零登录失败计数
func ResetLoginAttempts(ctx context.Context, email string) error {
	if email == "" {
		return nil
	}
	return Del(ctx, loginAttemptKey(email))
}
