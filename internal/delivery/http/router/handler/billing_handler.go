package handler

import (
	"crypto/subtle"
	"net/http"

	"vendofyx/config"
	"vendofyx/internal/delivery/http/response"
	"vendofyx/internal/domain/entity"
	"vendofyx/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// webhookSecretHeader carries the shared secret configured in the Paddle
// notification settings.
const webhookSecretHeader = "X-Webhook-Secret"

// BillingHandler receives subscription-change webhooks from the payment
// provider.
type BillingHandler struct {
	uc  usecase.BillingUsecase
	cfg *config.Config
}

// NewBillingHandler is the constructor for BillingHandler, injected by Fx.
func NewBillingHandler(uc usecase.BillingUsecase, cfg *config.Config) *BillingHandler {
	return &BillingHandler{uc: uc, cfg: cfg}
}

type paddleWebhookRequest struct {
	ProfileID          string `json:"profile_id" validate:"required"`
	SubscriptionStatus string `json:"subscription_status" validate:"required"`
}

// HandlePaddleWebhook applies a subscription change reported by Paddle.
func (h *BillingHandler) HandlePaddleWebhook(c echo.Context) error {
	if !h.authorized(c) {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid webhook secret")
	}

	var req paddleWebhookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid webhook payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ownerID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile ID")
	}

	err = h.uc.ApplySubscriptionChange(c.Request().Context(), ownerID, entity.SubscriptionStatus(req.SubscriptionStatus))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subscription updated")
}

func (h *BillingHandler) authorized(c echo.Context) bool {
	if h.cfg.Billing == nil || h.cfg.Billing.WebhookSecret == "" {
		// No secret configured means local development; accept the call.
		return true
	}

	provided := c.Request().Header.Get(webhookSecretHeader)

	return subtle.ConstantTimeCompare([]byte(provided), []byte(h.cfg.Billing.WebhookSecret)) == 1
}
