package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dourado/shopdash-backend/internal/domain"
	"github.com/dourado/shopdash-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileResponse represents a profile in API responses
type ProfileResponse struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ProfileRequest is the create/update payload
type ProfileRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func toProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Color:     p.Color,
		Active:    p.Active,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// List handles GET /api/profiles
func (h *ProfileHandler) List(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"

	profiles, err := h.profileService.List(activeOnly)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list profiles")
		return NewInternalError(c, "Failed to retrieve profiles")
	}

	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toProfileResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/profiles/:id
func (h *ProfileHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid profile ID", nil)
	}

	profile, err := h.profileService.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return NewNotFoundError(c, "Profile not found")
		}
		log.Error().Err(err).Int32("profile_id", id).Msg("Failed to get profile")
		return NewInternalError(c, "Failed to retrieve profile")
	}

	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Create handles POST /api/profiles
func (h *ProfileHandler) Create(c echo.Context) error {
	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	profile, err := h.profileService.Create(req.Name, req.Color)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNameRequired):
			return NewValidationError(c, "Name is required", []ValidationError{
				{Field: "name", Message: "Required"},
			})
		case errors.Is(err, domain.ErrNameTooLong):
			return NewValidationError(c, "Name is too long", []ValidationError{
				{Field: "name", Message: "Must be at most 255 characters"},
			})
		case errors.Is(err, domain.ErrAlreadyExists):
			return NewConflictError(c, "A profile with this name already exists")
		default:
			log.Error().Err(err).Msg("Failed to create profile")
			return NewInternalError(c, "Failed to create profile")
		}
	}

	return c.JSON(http.StatusCreated, toProfileResponse(profile))
}

// Update handles PUT /api/profiles/:id
func (h *ProfileHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid profile ID", nil)
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	profile, err := h.profileService.Update(id, req.Name, req.Color)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNameRequired):
			return NewValidationError(c, "Name is required", []ValidationError{
				{Field: "name", Message: "Required"},
			})
		case errors.Is(err, domain.ErrNameTooLong):
			return NewValidationError(c, "Name is too long", []ValidationError{
				{Field: "name", Message: "Must be at most 255 characters"},
			})
		case errors.Is(err, domain.ErrProfileNotFound):
			return NewNotFoundError(c, "Profile not found")
		case errors.Is(err, domain.ErrAlreadyExists):
			return NewConflictError(c, "A profile with this name already exists")
		default:
			log.Error().Err(err).Int32("profile_id", id).Msg("Failed to update profile")
			return NewInternalError(c, "Failed to update profile")
		}
	}

	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Delete handles DELETE /api/profiles/:id — profiles are deactivated,
// never removed, so their sales history survives.
func (h *ProfileHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid profile ID", nil)
	}

	if err := h.profileService.Deactivate(id); err != nil {
		log.Error().Err(err).Int32("profile_id", id).Msg("Failed to deactivate profile")
		return NewInternalError(c, "Failed to deactivate profile")
	}

	return c.NoContent(http.StatusNoContent)
}

func parseID(raw string) (int32, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return int32(id), nil
}
