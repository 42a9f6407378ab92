// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"vendofyx/config"
	"vendofyx/internal/domain/entity"
	domainerrors "vendofyx/internal/domain/errors"
	"vendofyx/internal/domain/repository"
	"vendofyx/internal/domain/service"
	"vendofyx/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type feedbackService struct {
	txManager      repository.TransactionManager
	profileRepo    repository.ProfileRepository
	requestRepo    repository.FeedbackRequestRepository
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
}

// FeedbackServiceParams holds dependencies for FeedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ProfileRepo    repository.ProfileRepository
	RequestRepo    repository.FeedbackRequestRepository
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		txManager:      params.TxManager,
		profileRepo:    params.ProfileRepo,
		requestRepo:    params.RequestRepo,
		qrcodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// IssueLink creates a pending feedback request after the issuance gate passes.
// The gate is evaluated in a fixed order so a caller with several problems
// always sees the same first failure: input, then configuration, then billing.
func (s *feedbackService) IssueLink(ctx context.Context, ownerID uuid.UUID, input usecase.IssueLinkInput) (*usecase.IssueLinkOutput, error) {
	customerName := strings.TrimSpace(input.CustomerName)
	if customerName == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("customer name is required")
	}

	// The gate check and the insert run in one transaction, so entitlement
	// revoked mid-flight cannot leave a fresh link behind.
	var request *entity.FeedbackRequest
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.ProfileRepo().FindByID(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to find profile")
		}

		if !profile.Configured() {
			return domainerrors.ErrMissingConfiguration
		}
		if !profile.SubscriptionStatus.Entitled() {
			return domainerrors.ErrEntitlementRequired
		}

		request = &entity.FeedbackRequest{
			OwnerID:      ownerID,
			CustomerName: customerName,
			Status:       entity.StatusPending,
		}
		if err := repoFactory.FeedbackRequestRepo().Create(ctx, request); err != nil {
			return errors.Wrap(err, "failed to create feedback request")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &usecase.IssueLinkOutput{
		Request: request,
		Link:    s.rateLink(request.ID),
	}, nil
}

// GetRateView resolves the public rate page and records the first open.
func (s *feedbackService) GetRateView(ctx context.Context, requestID uuid.UUID) (*usecase.RateView, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find feedback request")
	}

	profile, err := s.profileRepo.FindByID(ctx, request.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find request owner")
	}

	expired := request.IsExpired(time.Now(), s.linkTTL())

	// First open moves pending to clicked. The store guard makes repeat
	// opens a no-op, so this is safe to attempt unconditionally.
	if !expired && request.Status == entity.StatusPending {
		clicked, err := s.requestRepo.MarkClicked(ctx, requestID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to record link open")
		}
		if clicked {
			request.Status = entity.StatusClicked
		}
	}

	return &usecase.RateView{
		Request:      request,
		BusinessName: profile.BusinessName,
		TermsURL:     profile.TermsURL,
		PrivacyURL:   profile.PrivacyURL,
		RefundURL:    profile.RefundURL,
		Expired:      expired,
	}, nil
}

// RecordOpen marks a pending request as clicked. Repeat opens are a no-op.
func (s *feedbackService) RecordOpen(ctx context.Context, requestID uuid.UUID) error {
	if _, err := s.requestRepo.MarkClicked(ctx, requestID); err != nil {
		return errors.Wrap(err, "failed to record link open")
	}

	return nil
}

// SubmitRating records the rating exactly once and routes the customer.
func (s *feedbackService) SubmitRating(ctx context.Context, requestID uuid.UUID, input usecase.SubmitRatingInput) (*usecase.SubmitRatingOutput, error) {
	// Reject out-of-range ratings before touching the store.
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find feedback request")
	}

	if request.IsExpired(time.Now(), s.linkTTL()) {
		return nil, domainerrors.ErrLinkExpired
	}

	// The conditional update in the store decides the race: of two
	// simultaneous submissions exactly one reaches this point without error.
	if err := s.requestRepo.MarkRated(ctx, requestID, input.Rating, input.FeedbackText); err != nil {
		if errors.Is(err, repository.ErrAlreadyRated) {
			return nil, domainerrors.ErrAlreadyRated
		}
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to record rating")
	}

	destination, _ := entity.Route(input.Rating)

	output := &usecase.SubmitRatingOutput{Destination: destination}
	if destination == entity.RoutePublicRedirect {
		profile, err := s.profileRepo.FindByID(ctx, request.OwnerID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find request owner")
		}
		output.RedirectURL = profile.GoogleReviewURL

		return output, nil
	}

	s.publishCaptured(ctx, request, input)

	return output, nil
}

// publishCaptured emits the private-capture event. The rating is already
// persisted at this point, so a publish failure is logged and swallowed.
func (s *feedbackService) publishCaptured(ctx context.Context, request *entity.FeedbackRequest, input usecase.SubmitRatingInput) {
	event := &service.FeedbackCapturedEvent{
		RequestID:    request.ID.String(),
		OwnerID:      request.OwnerID.String(),
		CustomerName: request.CustomerName,
		Rating:       input.Rating,
	}
	if input.FeedbackText != nil {
		event.FeedbackText = *input.FeedbackText
	}

	if err := s.eventPublisher.PublishFeedbackCaptured(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish feedback captured event",
			slog.String("request_id", event.RequestID),
			slog.Any("error", err))
	}
}

// ListRequests returns the owner's inbox, newest first.
func (s *feedbackService) ListRequests(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.FeedbackRequest, error) {
	if limit <= 0 {
		limit = s.listLimit()
	}

	requests, err := s.requestRepo.FindByOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback requests")
	}

	return requests, nil
}

// GenerateLinkQR renders the rate link of an owned request as a QR PNG.
func (s *feedbackService) GenerateLinkQR(ctx context.Context, ownerID, requestID uuid.UUID) ([]byte, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find feedback request")
	}

	if request.OwnerID != ownerID {
		return nil, domainerrors.ErrForbidden
	}

	png, err := s.qrcodeService.GenerateRateLinkQR(s.rateLink(requestID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

func (s *feedbackService) rateLink(requestID uuid.UUID) string {
	var base string
	if s.config.Feedback != nil {
		base = strings.TrimRight(s.config.Feedback.BaseURL, "/")
	}

	return fmt.Sprintf("%s/rate/%s", base, requestID)
}

func (s *feedbackService) linkTTL() time.Duration {
	if s.config.Feedback != nil && s.config.Feedback.LinkTTL > 0 {
		return s.config.Feedback.LinkTTL
	}

	return entity.DefaultLinkTTL
}

func (s *feedbackService) listLimit() int {
	if s.config.Feedback != nil && s.config.Feedback.ListLimit > 0 {
		return s.config.Feedback.ListLimit
	}

	return 20
}
