package handler

import (
	"net/http"
	"strconv"

	"vendofyx/internal/delivery/http/response"
	"vendofyx/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedbackHandler holds dependencies for the authenticated dashboard
// endpoints: issuing links, the inbox, and QR rendering.
type FeedbackHandler struct {
	uc usecase.FeedbackUsecase
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

type issueLinkRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
}

// IssueLink creates a feedback link for a customer.
func (h *FeedbackHandler) IssueLink(c echo.Context) error {
	profileID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req issueLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.IssueLink(c.Request().Context(), profileID, usecase.IssueLinkInput{
		CustomerName: req.CustomerName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"request": output.Request,
		"link":    output.Link,
	}, "Feedback link created")
}

// ListRequests returns the owner's inbox, newest first.
func (h *FeedbackHandler) ListRequests(c echo.Context) error {
	profileID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	requests, err := h.uc.ListRequests(c.Request().Context(), profileID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Requests retrieved successfully")
}

// GenerateLinkQR streams the rate link of an owned request as a PNG.
func (h *FeedbackHandler) GenerateLinkQR(c echo.Context) error {
	profileID, ok := profileIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	png, err := h.uc.GenerateLinkQR(c.Request().Context(), profileID, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
