package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/lamine-sport/api/internal/cache"
	"github.com/lamine-sport/api/internal/config"
	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/logger"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/queue"
	"github.com/lamine-sport/api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserAuthService 用户认证服务
type UserAuthService struct {
	cfg         *config.Config
	userRepo    repository.UserRepository
	queueClient *queue.Client
}

// NewUserAuthService 创建用户认证服务
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository, queueClient *queue.Client) *UserAuthService {
	return &UserAuthService{
		cfg:         cfg,
		userRepo:    userRepo,
		queueClient: queueClient,
	}
}

// UserJWTClaims 用户 JWT 声明
type UserJWTClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenPair 访问令牌与刷新令牌
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// GenerateUserJWT 生成用户 JWT Token
func (s *UserAuthService) GenerateUserJWT(user *models.User) (string, time.Time, error) {
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(expireHours) * time.Hour)
	claims := UserJWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseUserJWT 解析用户 JWT Token
func (s *UserAuthService) ParseUserJWT(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*UserJWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("无效的 token")
}

// issueTokenPair 签发访问令牌并在 Redis 侧登记刷新令牌
func (s *UserAuthService) issueTokenPair(user *models.User) (*TokenPair, error) {
	accessToken, expiresAt, err := s.GenerateUserJWT(user)
	if err != nil {
		return nil, err
	}

	refreshHours := s.cfg.JWT.RefreshExpireHours
	if refreshHours <= 0 {
		refreshHours = 24 * 7
	}
	refreshToken := uuid.NewString()
	if err := cache.StoreRefreshToken(context.Background(), refreshToken, user.ID,
		time.Duration(refreshHours)*time.Hour); err != nil {
		logger.Warnw("refresh_token_store_failed", "user_id", user.ID, "error", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// Register 用户注册
func (s *UserAuthService) Register(email, password, fullName, locale string) (*models.User, *TokenPair, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, nil, err
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, password); err != nil {
		return nil, nil, err
	}

	exist, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, nil, err
	}
	if exist != nil {
		return nil, nil, ErrEmailAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	name := strings.TrimSpace(fullName)
	if name == "" {
		name = nameFromEmail(normalized)
	}
	user := &models.User{
		Email:        normalized,
		PasswordHash: string(hashedPassword),
		FullName:     name,
		Role:         constants.UserRoleUser,
		Status:       constants.UserStatusActive,
		Locale:       resolveUserLocale(locale),
		LastLoginAt:  &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	_ = cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user))

	s.enqueueWelcomeEmail(user)
	return user, pair, nil
}

// Login 用户登录
func (s *UserAuthService) Login(email, password string) (*models.User, *TokenPair, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, nil, err
	}

	if blocked, err := s.checkLoginRate(normalized); err == nil && blocked {
		return nil, nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}
	if user.IsLocked() {
		return nil, nil, ErrAccountLocked
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	_ = cache.ResetLoginAttempts(context.Background(), normalized)

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, nil, err
	}
	_ = cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user))

	return user, pair, nil
}

// GoogleLogin Google 账号登录，首次登录自动建号
// 邮箱由 Google 侧校验，这里只做归一化
func (s *UserAuthService) GoogleLogin(email, fullName, avatar, locale string) (*models.User, *TokenPair, error) {
	if !s.cfg.Google.Enabled {
		return nil, nil, ErrGoogleAuthDisabled
	}
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	if user == nil {
		name := strings.TrimSpace(fullName)
		if name == "" {
			name = nameFromEmail(normalized)
		}
		// Google 建号无本地密码，生成随机哈希占位
		placeholder, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if err != nil {
			return nil, nil, err
		}
		user = &models.User{
			Email:         normalized,
			PasswordHash:  string(placeholder),
			FullName:      name,
			Avatar:        strings.TrimSpace(avatar),
			Role:          constants.UserRoleUser,
			Status:        constants.UserStatusActive,
			GoogleAccount: true,
			Locale:        resolveUserLocale(locale),
			LastLoginAt:   &now,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, nil, err
		}
		s.enqueueWelcomeEmail(user)
	} else {
		if user.IsLocked() {
			return nil, nil, ErrAccountLocked
		}
		user.LastLoginAt = &now
		if err := s.userRepo.Update(user); err != nil {
			return nil, nil, err
		}
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	_ = cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user))
	return user, pair, nil
}

// Refresh 刷新令牌轮换：旧刷新令牌作废，签发新令牌对
func (s *UserAuthService) Refresh(refreshToken string) (*models.User, *TokenPair, error) {
	token := strings.TrimSpace(refreshToken)
	if token == "" {
		return nil, nil, ErrRefreshTokenInvalid
	}

	userID, err := cache.ResolveRefreshToken(context.Background(), token)
	if err != nil {
		return nil, nil, err
	}
	if userID == 0 {
		return nil, nil, ErrRefreshTokenInvalid
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}
	if user.IsLocked() {
		return nil, nil, ErrAccountLocked
	}

	_ = cache.RevokeRefreshToken(context.Background(), token)

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Logout 注销当前会话
func (s *UserAuthService) Logout(userID uint, refreshToken string) error {
	if token := strings.TrimSpace(refreshToken); token != "" {
		_ = cache.RevokeRefreshToken(context.Background(), token)
	}
	return cache.DelUserAuthState(context.Background(), userID)
}

// ForgotPassword 发起找回密码流程
// 为避免探测注册邮箱，未注册时同样静默返回成功
func (s *UserAuthService) ForgotPassword(email, locale string) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	expireMinutes := s.cfg.Security.RecoveryExpires
	if expireMinutes <= 0 {
		expireMinutes = 30
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(expireMinutes) * time.Minute)

	user.RecoveryToken = uuid.NewString()
	user.RecoveryExpiresAt = &expiresAt
	user.UpdatedAt = now
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	if s.queueClient != nil && s.queueClient.Enabled() {
		if err := s.queueClient.EnqueueRecoveryEmail(queue.RecoveryEmailPayload{
			UserID: user.ID,
			Token:  user.RecoveryToken,
			Locale: resolveUserLocale(locale),
		}); err != nil {
			logger.Warnw("recovery_email_enqueue_failed", "user_id", user.ID, "error", err)
		}
	}
	return nil
}

// ResetPassword 用找回令牌重设密码
func (s *UserAuthService) ResetPassword(token, newPassword string) error {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return ErrRecoveryTokenInvalid
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, newPassword); err != nil {
		return err
	}

	user, err := s.userRepo.GetByRecoveryToken(trimmed)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrRecoveryTokenInvalid
	}
	if user.RecoveryExpiresAt == nil || user.RecoveryExpiresAt.Before(time.Now()) {
		return ErrRecoveryTokenExpired
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	user.RecoveryToken = ""
	user.RecoveryExpiresAt = nil
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(user); err != nil {
		return err
	}
	_ = cache.DelUserAuthState(context.Background(), user.ID)
	return nil
}

// ChangePassword 登录态修改密码
func (s *UserAuthService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	if userID == 0 {
		return ErrUserNotFound
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashedPassword)
	user.UpdatedAt = time.Now()
	return s.userRepo.Update(user)
}

// UpdateProfile 更新用户资料
func (s *UserAuthService) UpdateProfile(userID uint, fullName, phone, avatar, locale *string) (*models.User, error) {
	if userID == 0 {
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	updated := false
	if fullName != nil && strings.TrimSpace(*fullName) != "" {
		user.FullName = strings.TrimSpace(*fullName)
		updated = true
	}
	if phone != nil {
		user.Phone = strings.TrimSpace(*phone)
		updated = true
	}
	if avatar != nil {
		user.Avatar = strings.TrimSpace(*avatar)
		updated = true
	}
	if locale != nil && strings.TrimSpace(*locale) != "" {
		user.Locale = resolveUserLocale(*locale)
		updated = true
	}
	if !updated {
		return user, nil
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID 获取用户信息
func (s *UserAuthService) GetUserByID(id uint) (*models.User, error) {
	if id == 0 {
		return nil, ErrUserNotFound
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserAuthService) checkLoginRate(email string) (bool, error) {
	limit := s.cfg.Security.LoginRateLimit.MaxAttempts
	if limit <= 0 {
		return false, nil
	}
	count, err := cache.IncrLoginAttempts(context.Background(), email)
	if err != nil {
		return false, err
	}
	return count > int64(limit), nil
}

func (s *UserAuthService) enqueueWelcomeEmail(user *models.User) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	if err := s.queueClient.EnqueueWelcomeEmail(queue.WelcomeEmailPayload{
		UserID: user.ID,
		Locale: user.Locale,
	}); err != nil {
		logger.Warnw("welcome_email_enqueue_failed", "user_id", user.ID, "error", err)
	}
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}

// NormalizeEmail 统一邮箱格式
func NormalizeEmail(email string) (string, error) {
	return normalizeEmail(email)
}

func nameFromEmail(email string) string {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) == 2 && strings.TrimSpace(parts[0]) != "" {
		return strings.TrimSpace(parts[0])
	}
	return email
}

func resolveUserLocale(locale string) string {
	switch strings.TrimSpace(locale) {
	case constants.LocaleEnUS:
		return constants.LocaleEnUS
	default:
		return constants.LocaleViVN
	}
}
