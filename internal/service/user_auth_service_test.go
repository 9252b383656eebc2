package service

import (
	"errors"
	"testing"
	"time"

	"github.com/lamine-sport/api/internal/config"
	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserAuthServiceTest(t *testing.T) (*UserAuthService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "unit-test-secret"
	cfg.JWT.ExpireHours = 1
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{MinLength: 6}
	cfg.Google.Enabled = true

	return NewUserAuthService(cfg, repository.NewUserRepository(db), nil), db
}

func TestRegisterCreatesUserAndHashesPassword(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	user, pair, err := svc.Register("  Shopper@Example.com ", "secret123", "Nguyễn Văn A", "vi-VN")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "shopper@example.com" {
		t.Fatalf("email should be normalized, got %s", user.Email)
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash should match password: %v", err)
	}
	if pair == nil || pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected token pair, got %+v", pair)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 user persisted, got %d", count)
	}

	if _, _, err := svc.Register("shopper@example.com", "another123", "", ""); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("duplicate email want ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegisterValidatesEmailAndPassword(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	if _, _, err := svc.Register("not-an-email", "secret123", "", ""); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("bad email want ErrInvalidEmail, got %v", err)
	}
	if _, _, err := svc.Register("ok@example.com", "short", "", ""); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("weak password want ErrWeakPassword, got %v", err)
	}
}

func TestRegisterDerivesNameFromEmail(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	user, _, err := svc.Register("runner@example.com", "secret123", "   ", "en-US")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.FullName != "runner" {
		t.Fatalf("full name should derive from email, got %q", user.FullName)
	}
	if user.Locale != constants.LocaleEnUS {
		t.Fatalf("locale want en-US got %s", user.Locale)
	}
}

func TestLoginChecksCredentialsAndLock(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)
	if _, _, err := svc.Register("shopper@example.com", "secret123", "", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, pair, err := svc.Login("SHOPPER@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if pair == nil || pair.AccessToken == "" {
		t.Fatalf("expected access token")
	}
	if user.LastLoginAt == nil {
		t.Fatalf("last login should be stamped")
	}

	if _, _, err := svc.Login("shopper@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login("ghost@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email want ErrInvalidCredentials, got %v", err)
	}

	db.Model(&models.User{}).Where("id = ?", user.ID).Update("status", constants.UserStatusLocked)
	if _, _, err := svc.Login("shopper@example.com", "secret123"); !errors.Is(err, ErrAccountLocked) {
		t.Fatalf("locked account want ErrAccountLocked, got %v", err)
	}
}

func TestUserJWTRoundTrip(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	user := &models.User{ID: 7, Email: "shopper@example.com", Role: constants.UserRoleUser}
	token, expiresAt, err := svc.GenerateUserJWT(user)
	if err != nil {
		t.Fatalf("generate jwt failed: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("token should expire in the future")
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("parse jwt failed: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "shopper@example.com" || claims.Role != constants.UserRoleUser {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	if _, err := svc.ParseUserJWT(token + "corrupted"); err == nil {
		t.Fatalf("tampered token should fail to parse")
	}
}

func TestGoogleLoginCreatesAccountOnce(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	user, _, err := svc.GoogleLogin("Runner@Gmail.com", "Trần B", "https://lh3.example.com/a.png", "en")
	if err != nil {
		t.Fatalf("google login failed: %v", err)
	}
	if !user.GoogleAccount {
		t.Fatalf("account should be marked as google created")
	}
	if user.Email != "runner@gmail.com" {
		t.Fatalf("email should be normalized, got %s", user.Email)
	}

	again, _, err := svc.GoogleLogin("runner@gmail.com", "", "", "")
	if err != nil {
		t.Fatalf("second google login failed: %v", err)
	}
	if again.ID != user.ID {
		t.Fatalf("second login must reuse the account")
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected single account, got %d", count)
	}
}

func TestGoogleLoginRespectsToggle(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)
	svc.cfg.Google.Enabled = false

	if _, _, err := svc.GoogleLogin("runner@gmail.com", "", "", ""); !errors.Is(err, ErrGoogleAuthDisabled) {
		t.Fatalf("disabled google login want ErrGoogleAuthDisabled, got %v", err)
	}
}

func TestForgotPasswordIssuesRecoveryToken(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)
	if _, _, err := svc.Register("shopper@example.com", "secret123", "", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ForgotPassword("shopper@example.com", "vi"); err != nil {
		t.Fatalf("forgot password failed: %v", err)
	}

	var user models.User
	if err := db.Where("email = ?", "shopper@example.com").First(&user).Error; err != nil {
		t.Fatalf("load user failed: %v", err)
	}
	if user.RecoveryToken == "" || user.RecoveryExpiresAt == nil {
		t.Fatalf("recovery token should be issued")
	}
	if !user.RecoveryExpiresAt.After(time.Now()) {
		t.Fatalf("recovery token should expire in the future")
	}

	// 未注册邮箱静默成功，避免探测
	if err := svc.ForgotPassword("ghost@example.com", ""); err != nil {
		t.Fatalf("unknown email should be silent, got %v", err)
	}
}

func TestResetPasswordConsumesToken(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)
	if _, _, err := svc.Register("shopper@example.com", "secret123", "", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := svc.ForgotPassword("shopper@example.com", ""); err != nil {
		t.Fatalf("forgot password failed: %v", err)
	}

	var user models.User
	if err := db.Where("email = ?", "shopper@example.com").First(&user).Error; err != nil {
		t.Fatalf("load user failed: %v", err)
	}

	if err := svc.ResetPassword(user.RecoveryToken, "renewed456"); err != nil {
		t.Fatalf("reset password failed: %v", err)
	}
	if _, _, err := svc.Login("shopper@example.com", "renewed456"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, err := svc.Login("shopper@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password must stop working, got %v", err)
	}

	// 令牌一次性，二次使用应失效
	if err := svc.ResetPassword(user.RecoveryToken, "another789"); !errors.Is(err, ErrRecoveryTokenInvalid) {
		t.Fatalf("consumed token want ErrRecoveryTokenInvalid, got %v", err)
	}
	if err := svc.ResetPassword("   ", "another789"); !errors.Is(err, ErrRecoveryTokenInvalid) {
		t.Fatalf("blank token want ErrRecoveryTokenInvalid, got %v", err)
	}
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)
	if _, _, err := svc.Register("shopper@example.com", "secret123", "", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := svc.ForgotPassword("shopper@example.com", ""); err != nil {
		t.Fatalf("forgot password failed: %v", err)
	}

	expired := time.Now().Add(-time.Minute)
	db.Model(&models.User{}).Where("email = ?", "shopper@example.com").Update("recovery_expires_at", expired)

	var user models.User
	if err := db.Where("email = ?", "shopper@example.com").First(&user).Error; err != nil {
		t.Fatalf("load user failed: %v", err)
	}
	if err := svc.ResetPassword(user.RecoveryToken, "renewed456"); !errors.Is(err, ErrRecoveryTokenExpired) {
		t.Fatalf("expired token want ErrRecoveryTokenExpired, got %v", err)
	}
}

func TestChangePasswordRequiresOldPassword(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)
	user, _, err := svc.Register("shopper@example.com", "secret123", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong-pass", "renewed456"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong old password want ErrInvalidCredentials, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "secret123", "bad"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("weak new password want ErrWeakPassword, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "secret123", "renewed456"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if _, _, err := svc.Login("shopper@example.com", "renewed456"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}
