package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vendofyx/config"
	"vendofyx/internal/domain/entity"
	domainerrors "vendofyx/internal/domain/errors"
	"vendofyx/internal/domain/service"
	"vendofyx/internal/infra/persistence/memory"
	"vendofyx/internal/infra/qrcode"
	mockService "vendofyx/internal/mocks/service"
	"vendofyx/internal/usecase"
	"vendofyx/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type rateTestEnv struct {
	handler   *RateHandler
	uc        usecase.FeedbackUsecase
	owner     *entity.Profile
	publisher *mockService.MockEventPublisher
}

// newRateTestEnv wires the rate handler over the in-memory store, the same
// composition the sandbox mode runs with.
func newRateTestEnv(t *testing.T) *rateTestEnv {
	t.Helper()

	store := memory.NewStore()
	owner := store.SeedDemoProfile("test-hash")

	publisher := mockService.NewMockEventPublisher(t)

	uc := impl.NewFeedbackService(impl.FeedbackServiceParams{
		TxManager:      memory.NewTransactionManager(store),
		ProfileRepo:    memory.NewProfileRepository(store),
		RequestRepo:    memory.NewFeedbackRequestRepository(store),
		QRCodeService:  qrcode.NewQRCodeService(256, "M"),
		EventPublisher: publisher,
		Config: &config.Config{
			Feedback: &config.FeedbackConfig{
				LinkTTL:   7 * 24 * time.Hour,
				ListLimit: 20,
				BaseURL:   "https://vendofyx.test",
			},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &rateTestEnv{
		handler:   NewRateHandler(uc),
		uc:        uc,
		owner:     owner,
		publisher: publisher,
	}
}

func (env *rateTestEnv) issueLink(t *testing.T, customerName string) *entity.FeedbackRequest {
	t.Helper()

	output, err := env.uc.IssueLink(t.Context(), env.owner.ID, usecase.IssueLinkInput{CustomerName: customerName})
	require.NoError(t, err)

	return output.Request
}

func TestRateHandler_GetRateView(t *testing.T) {
	env := newRateTestEnv(t)
	request := env.issueLink(t, "Alice")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rate/"+request.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(request.ID.String())

	err := env.handler.GetRateView(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data rateViewResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, request.ID.String(), body.Data.RequestID)
	assert.Equal(t, env.owner.BusinessName, body.Data.BusinessName)
	assert.Equal(t, "Alice", body.Data.CustomerName)
	// Opening the page records the first-open transition.
	assert.Equal(t, string(entity.StatusClicked), body.Data.Status)
	assert.False(t, body.Data.Expired)
	assert.False(t, body.Data.Rated)
}

func TestRateHandler_GetRateView_UnknownLink(t *testing.T) {
	env := newRateTestEnv(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rate/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	err := env.handler.GetRateView(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRateHandler_GetRateView_MalformedID(t *testing.T) {
	env := newRateTestEnv(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rate/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := env.handler.GetRateView(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateHandler_SubmitRating_PublicRedirect(t *testing.T) {
	env := newRateTestEnv(t)
	request := env.issueLink(t, "Bob")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/rate/"+request.ID.String(),
		strings.NewReader(`{"rating": 5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(request.ID.String())

	err := env.handler.SubmitRating(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data submitRatingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(entity.RoutePublicRedirect), body.Data.Destination)
	assert.Equal(t, env.owner.GoogleReviewURL, body.Data.RedirectURL)
}

func TestRateHandler_SubmitRating_PrivateCapture(t *testing.T) {
	env := newRateTestEnv(t)
	request := env.issueLink(t, "Carol")

	env.publisher.EXPECT().
		PublishFeedbackCaptured(mock.Anything, &service.FeedbackCapturedEvent{
			RequestID:    request.ID.String(),
			OwnerID:      env.owner.ID.String(),
			CustomerName: "Carol",
			Rating:       2,
			FeedbackText: "Cold pizza",
		}).
		Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/rate/"+request.ID.String(),
		strings.NewReader(`{"rating": 2, "feedback_text": "Cold pizza"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(request.ID.String())

	err := env.handler.SubmitRating(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data submitRatingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(entity.RoutePrivateCapture), body.Data.Destination)
	// The private path never leaks the public review URL.
	assert.Empty(t, body.Data.RedirectURL)
}

func TestRateHandler_SubmitRating_SecondSubmissionRejected(t *testing.T) {
	env := newRateTestEnv(t)
	request := env.issueLink(t, "Dave")

	e := echo.New()

	submit := func(payload string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodPost, "/rate/"+request.ID.String(),
			strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(request.ID.String())

		return rec, env.handler.SubmitRating(c)
	}

	_, err := submit(`{"rating": 5}`)
	require.NoError(t, err)

	_, err = submit(`{"rating": 4}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyRated)
}

func TestRateHandler_SubmitRating_InvalidRating(t *testing.T) {
	env := newRateTestEnv(t)
	request := env.issueLink(t, "Eve")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/rate/"+request.ID.String(),
		strings.NewReader(`{"rating": 6}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(request.ID.String())

	err := env.handler.SubmitRating(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
}
