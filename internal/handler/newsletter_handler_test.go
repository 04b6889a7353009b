package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "payhive/internal/errors"
)

// MockNewsletterService is a mock implementation of service.NewsletterService.
type MockNewsletterService struct {
	mock.Mock
}

func (m *MockNewsletterService) Subscribe(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func postNewsletter(t *testing.T, svc *MockNewsletterService, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewNewsletterHandler(svc)
	err := h.Subscribe(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestNewsletterSubscribe_Success(t *testing.T) {
	svc := new(MockNewsletterService)
	svc.On("Subscribe", mock.Anything, "Jane@Example.COM").Return(int64(0), nil)

	rec := postNewsletter(t, svc, `{"subscriberEmail":"Jane@Example.COM"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp NewsletterResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(0), resp.RefNumber)
}

func TestNewsletterSubscribe_InvalidEmail(t *testing.T) {
	svc := new(MockNewsletterService)

	rec := postNewsletter(t, svc, `{"subscriberEmail":"user@@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp apperrors.ValidationResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "Valid email is required")
	svc.AssertNotCalled(t, "Subscribe", mock.Anything, mock.Anything)
}

func TestNewsletterSubscribe_Conflict(t *testing.T) {
	svc := new(MockNewsletterService)
	svc.On("Subscribe", mock.Anything, "jane@example.com").Return(int64(0), apperrors.ErrAlreadySubscribed)

	rec := postNewsletter(t, svc, `{"subscriberEmail":"jane@example.com"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var resp ConflictResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.AlreadyRegistered)
}

func TestNewsletterSubscribe_SendFailure(t *testing.T) {
	svc := new(MockNewsletterService)
	svc.On("Subscribe", mock.Anything, "jane@example.com").Return(int64(0), apperrors.ErrEmailSendFailed)

	rec := postNewsletter(t, svc, `{"subscriberEmail":"jane@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
