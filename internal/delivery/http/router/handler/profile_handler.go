package handler

import (
	"net/http"

	"vendofyx/internal/delivery/http/middleware"
	"vendofyx/internal/delivery/http/response"
	"vendofyx/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile settings handlers.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// profileIDFromContext reads the profile ID the auth middleware stored.
func profileIDFromContext(c echo.Context) (uuid.UUID, bool) {
	profileID, ok := c.Get(middleware.ProfileIDKey).(uuid.UUID)

	return profileID, ok
}

// GetProfile returns the authenticated owner's business profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profileID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "Profile retrieved successfully")
}

// UpdateProfile applies a partial update to business settings.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	profileID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), profileID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "Profile updated successfully")
}
