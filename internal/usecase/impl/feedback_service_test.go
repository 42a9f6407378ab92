package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vendofyx/config"
	"vendofyx/internal/domain/entity"
	domainerrors "vendofyx/internal/domain/errors"
	"vendofyx/internal/domain/repository"
	mockRepo "vendofyx/internal/mocks/repository"
	mockSvc "vendofyx/internal/mocks/service"
	"vendofyx/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type feedbackServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	profileRepo    *mockRepo.MockProfileRepository
	requestRepo    *mockRepo.MockFeedbackRequestRepository
	qrcodeService  *mockSvc.MockQRCodeService
	eventPublisher *mockSvc.MockEventPublisher
	service        usecase.FeedbackUsecase
}

func createTestFeedbackService(t *testing.T) *feedbackServiceMocks {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	requestRepo := mockRepo.NewMockFeedbackRequestRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	cfg := &config.Config{
		Feedback: &config.FeedbackConfig{
			LinkTTL:   7 * 24 * time.Hour,
			ListLimit: 20,
			BaseURL:   "https://vendofyx.test",
		},
	}

	svc := NewFeedbackService(FeedbackServiceParams{
		TxManager:      txManager,
		ProfileRepo:    profileRepo,
		RequestRepo:    requestRepo,
		QRCodeService:  qrcodeService,
		EventPublisher: eventPublisher,
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &feedbackServiceMocks{
		txManager:      txManager,
		profileRepo:    profileRepo,
		requestRepo:    requestRepo,
		qrcodeService:  qrcodeService,
		eventPublisher: eventPublisher,
		service:        svc,
	}
}

func entitledProfile(id uuid.UUID) *entity.Profile {
	return &entity.Profile{
		ID:                 id,
		Email:              "owner@example.com",
		BusinessName:       "Corner Cafe",
		GoogleReviewURL:    "https://search.google.com/local/writereview?placeid=abc",
		SubscriptionStatus: entity.SubscriptionActive,
	}
}

func expectTransaction(t *testing.T, fx *feedbackServiceMocks, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

func TestFeedbackService_IssueLink_Success(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	requestID := uuid.New()

	expectTransaction(t, fx, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		requestRepo := mockRepo.NewMockFeedbackRequestRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		factory.EXPECT().FeedbackRequestRepo().Return(requestRepo)

		profileRepo.EXPECT().FindByID(ctx, ownerID).Return(entitledProfile(ownerID), nil)
		requestRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.FeedbackRequest")).
			Run(func(ctx context.Context, request *entity.FeedbackRequest) {
				request.ID = requestID
			}).
			Return(nil)
	})

	output, err := fx.service.IssueLink(ctx, ownerID, usecase.IssueLinkInput{CustomerName: "  Alice  "})
	require.NoError(t, err)
	assert.Equal(t, "Alice", output.Request.CustomerName)
	assert.Equal(t, entity.StatusPending, output.Request.Status)
	assert.Equal(t, "https://vendofyx.test/rate/"+requestID.String(), output.Link)
}

func TestFeedbackService_IssueLink_BlankCustomerName(t *testing.T) {
	fx := createTestFeedbackService(t)

	// The name check fails before the transaction even starts.
	output, err := fx.service.IssueLink(context.Background(), uuid.New(), usecase.IssueLinkInput{CustomerName: "   "})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestFeedbackService_IssueLink_MissingConfiguration(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	// An entitled profile without a review URL still fails on configuration
	// first, so the owner is pointed at settings rather than billing.
	profile := entitledProfile(ownerID)
	profile.GoogleReviewURL = ""

	expectTransaction(t, fx, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByID(ctx, ownerID).Return(profile, nil)
	})

	output, err := fx.service.IssueLink(ctx, ownerID, usecase.IssueLinkInput{CustomerName: "Alice"})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingConfiguration))
}

func TestFeedbackService_IssueLink_EntitlementRequired(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	profile := entitledProfile(ownerID)
	profile.SubscriptionStatus = entity.SubscriptionInactive

	expectTransaction(t, fx, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByID(ctx, ownerID).Return(profile, nil)
	})

	output, err := fx.service.IssueLink(ctx, ownerID, usecase.IssueLinkInput{CustomerName: "Alice"})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEntitlementRequired))
}

func TestFeedbackService_IssueLink_ConfigurationCheckedBeforeEntitlement(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	// Unconfigured AND unentitled: configuration wins.
	profile := entitledProfile(ownerID)
	profile.GoogleReviewURL = ""
	profile.SubscriptionStatus = entity.SubscriptionInactive

	expectTransaction(t, fx, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByID(ctx, ownerID).Return(profile, nil)
	})

	_, err := fx.service.IssueLink(ctx, ownerID, usecase.IssueLinkInput{CustomerName: "Alice"})
	assert.True(t, errors.Is(err, domainerrors.ErrMissingConfiguration))
}

func TestFeedbackService_IssueLink_StoreFailureCreatesNothing(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeErr := errors.New("connection reset")

	expectTransaction(t, fx, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		requestRepo := mockRepo.NewMockFeedbackRequestRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		factory.EXPECT().FeedbackRequestRepo().Return(requestRepo)

		profileRepo.EXPECT().FindByID(ctx, ownerID).Return(entitledProfile(ownerID), nil)
		requestRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.FeedbackRequest")).
			Return(storeErr)
	})

	output, err := fx.service.IssueLink(ctx, ownerID, usecase.IssueLinkInput{CustomerName: "Alice"})
	assert.Nil(t, output)
	assert.Error(t, err)
}

func TestFeedbackService_SubmitRating_PublicRedirect(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	requestID := uuid.New()

	request := &entity.FeedbackRequest{
		ID:        requestID,
		OwnerID:   ownerID,
		Status:    entity.StatusClicked,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	fx.requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)
	fx.requestRepo.EXPECT().MarkRated(ctx, requestID, 4, (*string)(nil)).Return(nil)
	fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(entitledProfile(ownerID), nil)

	output, err := fx.service.SubmitRating(ctx, requestID, usecase.SubmitRatingInput{Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, entity.RoutePublicRedirect, output.Destination)
	assert.Equal(t, "https://search.google.com/local/writereview?placeid=abc", output.RedirectURL)
}

func TestFeedbackService_SubmitRating_PrivateCapture(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	requestID := uuid.New()
	text := "waited 40 minutes"

	request := &entity.FeedbackRequest{
		ID:           requestID,
		OwnerID:      uuid.New(),
		CustomerName: "Alice",
		Status:       entity.StatusClicked,
		CreatedAt:    time.Now().Add(-time.Hour),
	}

	fx.requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)
	fx.requestRepo.EXPECT().MarkRated(ctx, requestID, 3, &text).Return(nil)
	fx.eventPublisher.EXPECT().
		PublishFeedbackCaptured(ctx, mock.AnythingOfType("*service.FeedbackCapturedEvent")).
		Return(nil)

	output, err := fx.service.SubmitRating(ctx, requestID, usecase.SubmitRatingInput{Rating: 3, FeedbackText: &text})
	require.NoError(t, err)
	assert.Equal(t, entity.RoutePrivateCapture, output.Destination)
	assert.Empty(t, output.RedirectURL)
}

func TestFeedbackService_SubmitRating_PublishFailureDoesNotFailRating(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	requestID := uuid.New()

	request := &entity.FeedbackRequest{
		ID:        requestID,
		OwnerID:   uuid.New(),
		Status:    entity.StatusClicked,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	fx.requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)
	fx.requestRepo.EXPECT().MarkRated(ctx, requestID, 1, (*string)(nil)).Return(nil)
	fx.eventPublisher.EXPECT().
		PublishFeedbackCaptured(ctx, mock.AnythingOfType("*service.FeedbackCapturedEvent")).
		Return(errors.New("broker unavailable"))

	output, err := fx.service.SubmitRating(ctx, requestID, usecase.SubmitRatingInput{Rating: 1})
	require.NoError(t, err)
	assert.Equal(t, entity.RoutePrivateCapture, output.Destination)
}

func TestFeedbackService_SubmitRating_InvalidRatingSkipsStore(t *testing.T) {
	fx := createTestFeedbackService(t)

	for _, rating := range []int{-1, 0, 6, 100} {
		output, err := fx.service.SubmitRating(context.Background(), uuid.New(), usecase.SubmitRatingInput{Rating: rating})
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating), "rating %d", rating)
	}
}

func TestFeedbackService_SubmitRating_AlreadyRated(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	requestID := uuid.New()
	oldRating := 5

	request := &entity.FeedbackRequest{
		ID:        requestID,
		OwnerID:   uuid.New(),
		Status:    entity.StatusRated,
		Rating:    &oldRating,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	fx.requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)
	fx.requestRepo.EXPECT().MarkRated(ctx, requestID, 2, (*string)(nil)).Return(repository.ErrAlreadyRated)

	output, err := fx.service.SubmitRating(ctx, requestID, usecase.SubmitRatingInput{Rating: 2})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyRated))
}

func TestFeedbackService_SubmitRating_ExpiredLink(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	requestID := uuid.New()

	request := &entity.FeedbackRequest{
		ID:        requestID,
		OwnerID:   uuid.New(),
		Status:    entity.StatusPending,
		CreatedAt: time.Now().Add(-8 * 24 * time.Hour),
	}

	fx.requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)

	output, err := fx.service.SubmitRating(ctx, requestID, usecase.SubmitRatingInput{Rating: 5})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrLinkExpired))
}

func TestFeedbackService_GetRateView_RecordsFirstOpen(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	requestID := uuid.New()

	request := &entity.FeedbackRequest{
		ID:        requestID,
		OwnerID:   ownerID,
		Status:    entity.StatusPending,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	fx.requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(entitledProfile(ownerID), nil)
	fx.requestRepo.EXPECT().MarkClicked(ctx, requestID).Return(true, nil)

	view, err := fx.service.GetRateView(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, "Corner Cafe", view.BusinessName)
	assert.Equal(t, entity.StatusClicked, view.Request.Status)
	assert.False(t, view.Expired)
}

func TestFeedbackService_GetRateView_ExpiredSkipsOpen(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	requestID := uuid.New()

	request := &entity.FeedbackRequest{
		ID:        requestID,
		OwnerID:   ownerID,
		Status:    entity.StatusPending,
		CreatedAt: time.Now().Add(-8 * 24 * time.Hour),
	}

	fx.requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(entitledProfile(ownerID), nil)

	view, err := fx.service.GetRateView(ctx, requestID)
	require.NoError(t, err)
	assert.True(t, view.Expired)
	assert.Equal(t, entity.StatusPending, view.Request.Status)
}

func TestFeedbackService_GetRateView_NotFound(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	requestID := uuid.New()

	fx.requestRepo.EXPECT().FindByID(ctx, requestID).Return(nil, repository.ErrRequestNotFound)

	view, err := fx.service.GetRateView(ctx, requestID)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestFeedbackService_ListRequests_DefaultLimit(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.requestRepo.EXPECT().FindByOwner(ctx, ownerID, 20).Return([]*entity.FeedbackRequest{}, nil)

	requests, err := fx.service.ListRequests(ctx, ownerID, 0)
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestFeedbackService_GenerateLinkQR(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	requestID := uuid.New()

	request := &entity.FeedbackRequest{ID: requestID, OwnerID: ownerID, Status: entity.StatusPending}

	fx.requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)
	fx.qrcodeService.EXPECT().
		GenerateRateLinkQR("https://vendofyx.test/rate/" + requestID.String()).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fx.service.GenerateLinkQR(ctx, ownerID, requestID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestFeedbackService_GenerateLinkQR_WrongOwner(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	requestID := uuid.New()

	request := &entity.FeedbackRequest{ID: requestID, OwnerID: uuid.New(), Status: entity.StatusPending}

	fx.requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)

	png, err := fx.service.GenerateLinkQR(ctx, uuid.New(), requestID)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
