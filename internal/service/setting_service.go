package service

import (
	"errors"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// defaultMonthlyTarget mirrors the seeded settings row; used when the
// row has never been written.
var defaultMonthlyTarget = decimal.NewFromInt(15000)

// SettingService handles the key/value settings store
type SettingService struct {
	settingRepo domain.SettingRepository
}

// NewSettingService creates a new SettingService
func NewSettingService(settingRepo domain.SettingRepository) *SettingService {
	return &SettingService{settingRepo: settingRepo}
}

// Get retrieves a raw setting value.
func (s *SettingService) Get(key string) (string, error) {
	setting, err := s.settingRepo.Get(key)
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// Set stores a raw setting value, last write wins.
func (s *SettingService) Set(key, value string) error {
	return s.settingRepo.Set(key, value)
}

// GetMonthlyTarget returns the configured monthly revenue target,
// falling back to the default when the row is missing.
func (s *SettingService) GetMonthlyTarget() (decimal.Decimal, error) {
	setting, err := s.settingRepo.Get(domain.SettingMonthlyTarget)
	if err != nil {
		if errors.Is(err, domain.ErrSettingNotFound) {
			return defaultMonthlyTarget, nil
		}
		return decimal.Zero, err
	}

	target, err := decimal.NewFromString(setting.Value)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidState
	}
	return target, nil
}

// SetMonthlyTarget stores a new target. Non-positive targets are
// rejected so the progress calculation can never divide by zero.
func (s *SettingService) SetMonthlyTarget(target decimal.Decimal) error {
	if !target.IsPositive() {
		return domain.ErrInvalidTarget
	}
	return s.settingRepo.Set(domain.SettingMonthlyTarget, target.String())
}
