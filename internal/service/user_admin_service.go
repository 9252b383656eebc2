package service

import (
	"context"

	"github.com/lamine-sport/api/internal/cache"
	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"
)

// UserAdminService 后台用户管理
type UserAdminService struct {
	userRepo repository.UserRepository
}

// NewUserAdminService 创建后台用户服务
func NewUserAdminService(userRepo repository.UserRepository) *UserAdminService {
	return &UserAdminService{userRepo: userRepo}
}

// List 用户列表
func (s *UserAdminService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// Get 用户详情
func (s *UserAdminService) Get(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Lock 锁定账号并使鉴权缓存失效
func (s *UserAdminService) Lock(id uint) error {
	return s.setStatus(id, constants.UserStatusLocked)
}

// Unlock 解锁账号
func (s *UserAdminService) Unlock(id uint) error {
	return s.setStatus(id, constants.UserStatusActive)
}

func (s *UserAdminService) setStatus(id uint, status string) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.UpdateStatus(id, status); err != nil {
		return err
	}
	return cache.DelUserAuthState(context.Background(), id)
}

// SetRole 调整角色
func (s *UserAdminService) SetRole(id uint, role string) (*models.User, error) {
	if role != constants.UserRoleUser && role != constants.UserRoleAdmin {
		return nil, ErrInvalidInput
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	_ = cache.DelUserAuthState(context.Background(), id)
	return user, nil
}
