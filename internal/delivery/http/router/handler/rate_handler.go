package handler

import (
	"net/http"

	"vendofyx/internal/delivery/http/response"
	"vendofyx/internal/domain/entity"
	"vendofyx/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RateHandler serves the public, unauthenticated rate page endpoints the
// customer reaches through the shared link.
type RateHandler struct {
	uc usecase.FeedbackUsecase
}

// NewRateHandler is the constructor for RateHandler, injected by Fx.
func NewRateHandler(uc usecase.FeedbackUsecase) *RateHandler {
	return &RateHandler{uc: uc}
}

// rateViewResponse exposes only what the customer-facing page needs. The
// owner's email and billing state stay private.
type rateViewResponse struct {
	RequestID    string `json:"request_id"`
	BusinessName string `json:"business_name"`
	CustomerName string `json:"customer_name"`
	Status       string `json:"status"`
	Expired      bool   `json:"expired"`
	Rated        bool   `json:"rated"`
	TermsURL     string `json:"terms_url,omitempty"`
	PrivacyURL   string `json:"privacy_url,omitempty"`
	RefundURL    string `json:"refund_url,omitempty"`
}

type submitRatingRequest struct {
	Rating       int     `json:"rating" validate:"required"`
	FeedbackText *string `json:"feedback_text,omitempty"`
}

type submitRatingResponse struct {
	Destination string `json:"destination"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// GetRateView resolves the rate page for a link. Opening the page records
// the pending -> clicked transition.
func (h *RateHandler) GetRateView(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Feedback link not found")
	}

	view, err := h.uc.GetRateView(c.Request().Context(), requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rateViewResponse{
		RequestID:    view.Request.ID.String(),
		BusinessName: view.BusinessName,
		CustomerName: view.Request.CustomerName,
		Status:       string(view.Request.Status),
		Expired:      view.Expired,
		Rated:        view.Request.Rated(),
		TermsURL:     view.TermsURL,
		PrivacyURL:   view.PrivacyURL,
		RefundURL:    view.RefundURL,
	}, "Rate view retrieved successfully")
}

// SubmitRating records the customer's rating and returns the route decision.
func (h *RateHandler) SubmitRating(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Feedback link not found")
	}

	var req submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}

	output, err := h.uc.SubmitRating(c.Request().Context(), requestID, usecase.SubmitRatingInput{
		Rating:       req.Rating,
		FeedbackText: req.FeedbackText,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := submitRatingResponse{Destination: string(output.Destination)}
	if output.Destination == entity.RoutePublicRedirect {
		resp.RedirectURL = output.RedirectURL
	}

	return response.Success(c, http.StatusOK, resp, "Rating recorded")
}
