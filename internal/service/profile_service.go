package service

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/dourado/shopdash-backend/internal/domain"
)

// ProfileService handles profile registry business logic
type ProfileService struct {
	profileRepo domain.ProfileRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo domain.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// Create registers a new profile. When no color is supplied a random
// display color is assigned. Names must be unique across active and
// inactive profiles.
func (s *ProfileService) Create(name, color string) (*domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxProfileNameLength {
		return nil, domain.ErrNameTooLong
	}
	if color == "" {
		color = randomColor()
	}

	return s.profileRepo.Create(&domain.Profile{Name: name, Color: color})
}

// Update renames a profile and/or changes its color. An empty color
// keeps the current one.
func (s *ProfileService) Update(id int32, name, color string) (*domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxProfileNameLength {
		return nil, domain.ErrNameTooLong
	}

	if color == "" {
		existing, err := s.profileRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		color = existing.Color
	}

	return s.profileRepo.Update(id, name, color)
}

// Deactivate soft-deletes a profile. It is idempotent and never removes
// the profile's sales history.
func (s *ProfileService) Deactivate(id int32) error {
	return s.profileRepo.Deactivate(id)
}

// GetByID retrieves a profile by id.
func (s *ProfileService) GetByID(id int32) (*domain.Profile, error) {
	return s.profileRepo.GetByID(id)
}

// List retrieves profiles ordered by name.
func (s *ProfileService) List(activeOnly bool) ([]*domain.Profile, error) {
	return s.profileRepo.GetAll(activeOnly)
}

func randomColor() string {
	return fmt.Sprintf("#%06x", rand.Intn(0x1000000))
}
