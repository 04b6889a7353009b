package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"payhive/internal/errors"
	"payhive/internal/model"
	"payhive/internal/service"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Company         string `json:"company,omitempty"`
	TelephoneNumber string `json:"telephoneNumber,omitempty"`
	Subject         string `json:"subject,omitempty"`
	Message         string `json:"message"`
}

// ContactResponse represents a successful contact submission response.
type ContactResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    ContactData `json:"data"`
}

// ContactData echoes the created record.
type ContactData struct {
	Contact      *model.Contact    `json:"contact"`
	LinkedToUser bool              `json:"linkedToUser"`
	User         *model.PublicUser `json:"user,omitempty"`
}

// Submit godoc
// @Summary Submit the contact form
// @Tags forms
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact form data"
// @Success 201 {object} ContactResponse
// @Failure 400 {object} errors.ValidationResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	input := service.ContactInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Company:         req.Company,
		TelephoneNumber: req.TelephoneNumber,
		Subject:         req.Subject,
		Message:         req.Message,
	}

	if errs := service.ValidateContactInput(input); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, errors.NewValidationResponse(errs))
	}

	result, err := h.contactService.Submit(c.Request().Context(), input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	data := ContactData{
		Contact:      result.Contact,
		LinkedToUser: result.LinkedToUser,
	}
	if result.User != nil {
		pub := result.User.Public()
		data.User = &pub
	}

	return c.JSON(http.StatusCreated, ContactResponse{
		Success: true,
		Message: "Contact form submitted successfully",
		Data:    data,
	})
}
