package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"payhive/internal/auth"
	"payhive/internal/content"
)

// PageHandler serves marketing page content and the portal dashboard.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Page godoc
// @Summary Marketing page content by slug
// @Tags pages
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} content.Page
// @Failure 404 {object} map[string]string
// @Router /pages/{slug} [get]
func (h *PageHandler) Page(c echo.Context) error {
	page, ok := content.Pages[c.Param("slug")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "page not found")
	}
	return c.JSON(http.StatusOK, page)
}

// Navigation godoc
// @Summary Portal navigation structure
// @Tags pages
// @Produce json
// @Success 200 {array} content.NavigationTab
// @Router /navigation [get]
func (h *PageHandler) Navigation(c echo.Context) error {
	return c.JSON(http.StatusOK, content.NavigationTabs)
}

// Dashboard serves the authenticated landing page payload. It sits
// behind the session guard, which already verified the cookie.
func (h *PageHandler) Dashboard(c echo.Context) error {
	claims := auth.ClaimsFromContext(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"email":      claims.Email,
		"userId":     claims.UserID,
		"navigation": content.NavigationTabs,
	})
}

// SignIn serves the sign-in page metadata. The guard redirects
// authenticated users away before this runs.
func (h *PageHandler) SignIn(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"title":       "Sign in to PayHive",
		"callbackUrl": c.QueryParam("callbackUrl"),
	})
}

// SignUp serves the sign-up page metadata.
func (h *PageHandler) SignUp(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"title": "Create your PayHive account",
	})
}
