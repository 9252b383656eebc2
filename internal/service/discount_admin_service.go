package service

import (
	"strings"
	"time"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"
)

// DiscountAdminService 折扣活动后台服务
type DiscountAdminService struct {
	programRepo repository.DiscountProgramRepository
}

// NewDiscountAdminService 创建折扣活动后台服务
func NewDiscountAdminService(programRepo repository.DiscountProgramRepository) *DiscountAdminService {
	return &DiscountAdminService{programRepo: programRepo}
}

// DiscountProgramInput 创建/更新折扣活动输入
type DiscountProgramInput struct {
	Name               string
	DiscountPercentage int
	ApplyType          string
	ProductIDs         []uint
	ApplySetting       string
	StartsAt           time.Time
	EndsAt             time.Time
}

// DeriveProgramStatus 按时间窗口推导活动状态缓存值
func DeriveProgramStatus(startsAt, endsAt, now time.Time) string {
	if !endsAt.After(now) {
		return constants.ProgramStatusExpired
	}
	if startsAt.After(now) {
		return constants.ProgramStatusScheduled
	}
	return constants.ProgramStatusActive
}

func validateProgramInput(input DiscountProgramInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrProgramInvalid
	}
	if input.DiscountPercentage <= 0 || input.DiscountPercentage > 100 {
		return ErrProgramInvalid
	}
	switch input.ApplyType {
	case constants.ProgramApplyAllProducts:
	case constants.ProgramApplySpecificProducts:
		if len(input.ProductIDs) == 0 {
			return ErrProgramInvalid
		}
	default:
		return ErrProgramInvalid
	}
	switch input.ApplySetting {
	case constants.ProgramSettingAlwaysApply, constants.ProgramSettingApplyWithCondition:
	default:
		return ErrProgramInvalid
	}
	if !input.EndsAt.After(input.StartsAt) {
		return ErrProgramInvalid
	}
	return nil
}

// Create 创建折扣活动
func (s *DiscountAdminService) Create(input DiscountProgramInput) (*models.DiscountProgram, error) {
	if err := validateProgramInput(input); err != nil {
		return nil, err
	}

	program := &models.DiscountProgram{
		Name:               strings.TrimSpace(input.Name),
		DiscountPercentage: input.DiscountPercentage,
		ApplyType:          input.ApplyType,
		ProductIDs:         models.UintArray(input.ProductIDs),
		ApplySetting:       input.ApplySetting,
		Status:             DeriveProgramStatus(input.StartsAt, input.EndsAt, time.Now()),
		StartsAt:           input.StartsAt,
		EndsAt:             input.EndsAt,
	}
	if err := s.programRepo.Create(program); err != nil {
		return nil, err
	}
	return program, nil
}

// Update 更新折扣活动
func (s *DiscountAdminService) Update(id uint, input DiscountProgramInput) (*models.DiscountProgram, error) {
	program, err := s.programRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}
	if program.Status == constants.ProgramStatusCancelled {
		return nil, ErrProgramInvalid
	}
	if err := validateProgramInput(input); err != nil {
		return nil, err
	}

	program.Name = strings.TrimSpace(input.Name)
	program.DiscountPercentage = input.DiscountPercentage
	program.ApplyType = input.ApplyType
	program.ProductIDs = models.UintArray(input.ProductIDs)
	program.ApplySetting = input.ApplySetting
	program.StartsAt = input.StartsAt
	program.EndsAt = input.EndsAt
	program.Status = DeriveProgramStatus(input.StartsAt, input.EndsAt, time.Now())

	if err := s.programRepo.Update(program); err != nil {
		return nil, err
	}
	return program, nil
}

// Cancel 取消折扣活动（终态，不可再启用）
func (s *DiscountAdminService) Cancel(id uint) (*models.DiscountProgram, error) {
	program, err := s.programRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}
	switch program.Status {
	case constants.ProgramStatusCancelled, constants.ProgramStatusExpired:
		return nil, ErrProgramNotCancellable
	}
	if err := s.programRepo.UpdateStatus(program.ID, constants.ProgramStatusCancelled); err != nil {
		return nil, err
	}
	program.Status = constants.ProgramStatusCancelled
	return program, nil
}

// List 折扣活动列表
func (s *DiscountAdminService) List(status string, page, pageSize int) ([]models.DiscountProgram, int64, error) {
	return s.programRepo.List(repository.DiscountProgramListFilter{
		Status:   strings.TrimSpace(status),
		Page:     page,
		PageSize: pageSize,
	})
}
