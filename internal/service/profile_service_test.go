package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/dourado/shopdash-backend/internal/testutil"
)

func TestCreateProfile_Success(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	profile, err := profileService.Create("Shop A", "#336699")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if profile.Name != "Shop A" {
		t.Errorf("Expected name 'Shop A', got %s", profile.Name)
	}
	if profile.Color != "#336699" {
		t.Errorf("Expected color '#336699', got %s", profile.Color)
	}
	if !profile.Active {
		t.Error("Expected new profile to be active")
	}
}

func TestCreateProfile_TrimsName(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	profile, err := profileService.Create("  Shop A  ", "#336699")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if profile.Name != "Shop A" {
		t.Errorf("Expected trimmed name 'Shop A', got %q", profile.Name)
	}
}

func TestCreateProfile_EmptyName(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	_, err := profileService.Create("   ", "#336699")
	if !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
}

func TestCreateProfile_NameTooLong(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	_, err := profileService.Create(strings.Repeat("x", domain.MaxProfileNameLength+1), "")
	if !errors.Is(err, domain.ErrNameTooLong) {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}
}

func TestCreateProfile_AssignsRandomColor(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	profile, err := profileService.Create("Shop A", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(profile.Color) != 7 || profile.Color[0] != '#' {
		t.Errorf("Expected a #rrggbb color, got %q", profile.Color)
	}
}

func TestCreateProfile_DuplicateName(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	if _, err := profileService.Create("Shop A", ""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	_, err := profileService.Create("Shop A", "")
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreateProfile_DuplicateNameOfInactiveProfile(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	created, err := profileService.Create("Shop A", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := profileService.Deactivate(created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Uniqueness spans inactive profiles too
	_, err = profileService.Create("Shop A", "")
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}
}

func TestUpdateProfile_EmptyColorKeepsExisting(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	created, err := profileService.Create("Shop A", "#336699")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	updated, err := profileService.Update(created.ID, "Shop A2", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Name != "Shop A2" {
		t.Errorf("Expected renamed profile, got %s", updated.Name)
	}
	if updated.Color != "#336699" {
		t.Errorf("Expected color kept, got %s", updated.Color)
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	_, err := profileService.Update(99, "Shop A", "#336699")
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Errorf("Expected ErrProfileNotFound, got %v", err)
	}
}

func TestDeactivateProfile_Idempotent(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	created, err := profileService.Create("Shop A", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := profileService.Deactivate(created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := profileService.Deactivate(created.ID); err != nil {
		t.Errorf("Expected second deactivation to succeed, got %v", err)
	}

	profile, err := profileService.GetByID(created.ID)
	if err != nil {
		t.Fatalf("Expected deactivated profile to remain readable, got %v", err)
	}
	if profile.Active {
		t.Error("Expected profile to be inactive")
	}
}

func TestListProfiles_ActiveOnly(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	profileService := NewProfileService(profileRepo)

	a, _ := profileService.Create("Shop A", "")
	if _, err := profileService.Create("Shop B", ""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := profileService.Deactivate(a.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	active, err := profileService.List(true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(active) != 1 || active[0].Name != "Shop B" {
		t.Errorf("Expected only Shop B active, got %d profiles", len(active))
	}

	all, err := profileService.List(false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 profiles in full listing, got %d", len(all))
	}
}
