package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "payhive/internal/errors"
	"payhive/internal/model"
	"payhive/internal/service"
)

// MockContactService is a mock implementation of service.ContactService.
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, input service.ContactInput) (*service.ContactResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ContactResult), args.Error(1)
}

func postContact(t *testing.T, svc *MockContactService, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewContactHandler(svc)
	err := h.Submit(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestContactSubmit_Success(t *testing.T) {
	svc := new(MockContactService)
	user := &model.User{ID: 3, Email: "jane@example.com", FirstName: "Jane", LastName: "Smith"}
	result := &service.ContactResult{
		Contact: &model.Contact{
			FirstName: "Jane",
			LastName:  "Smith",
			Email:     "jane@example.com",
			Message:   "hello",
			UserID:    &user.ID,
		},
		LinkedToUser: true,
		User:         user,
	}
	svc.On("Submit", mock.Anything, mock.AnythingOfType("service.ContactInput")).Return(result, nil)

	rec := postContact(t, svc, `{"firstName":"Jane","lastName":"Smith","email":"jane@example.com","message":"hello"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp ContactResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Data.LinkedToUser)
	assert.NotNil(t, resp.Data.User)
	assert.Equal(t, uint(3), resp.Data.User.ID)
}

func TestContactSubmit_MissingField(t *testing.T) {
	svc := new(MockContactService)

	rec := postContact(t, svc, `{"firstName":"Jane","email":"jane@example.com","message":"hello"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp apperrors.ValidationResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Contains(t, resp.Errors, "LastName is required")
	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestContactSubmit_InternalError(t *testing.T) {
	svc := new(MockContactService)
	svc.On("Submit", mock.Anything, mock.AnythingOfType("service.ContactInput")).Return(nil, errors.New("db down"))

	rec := postContact(t, svc, `{"firstName":"Jane","lastName":"Smith","email":"jane@example.com","message":"hello"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
