package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "payhive/internal/errors"
	"payhive/internal/service"
)

// NewsletterHandler handles newsletter subscription requests.
type NewsletterHandler struct {
	newsletterService service.NewsletterService
}

// NewNewsletterHandler creates a new newsletter handler.
func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// NewsletterRequest represents a newsletter signup.
type NewsletterRequest struct {
	SubscriberEmail string `json:"subscriberEmail"`
}

// NewsletterResponse represents a successful subscription.
type NewsletterResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RefNumber int64  `json:"refNumber"`
}

// ConflictResponse is returned when the email is already subscribed.
type ConflictResponse struct {
	Error             string `json:"error"`
	AlreadyRegistered bool   `json:"alreadyRegistered"`
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags forms
// @Accept json
// @Produce json
// @Param request body NewsletterRequest true "Subscriber email"
// @Success 200 {object} NewsletterResponse
// @Failure 400 {object} errors.ValidationResponse
// @Failure 409 {object} ConflictResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /newsletter [post]
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req NewsletterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if !service.IsValidEmail(req.SubscriberEmail) {
		return c.JSON(http.StatusBadRequest, apperrors.NewValidationResponse([]string{"Valid email is required"}))
	}

	refNumber, err := h.newsletterService.Subscribe(c.Request().Context(), req.SubscriberEmail)
	if err != nil {
		if err == apperrors.ErrAlreadySubscribed {
			return c.JSON(http.StatusConflict, ConflictResponse{
				Error:             "You are already subscribed to our newsletter.",
				AlreadyRegistered: true,
			})
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, NewsletterResponse{
		Success:   true,
		Message:   "Thank you for your interest! Check your email for newsletter information and account creation details.",
		RefNumber: refNumber,
	})
}
