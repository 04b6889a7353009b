package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"payhive/internal/auth"
	"payhive/internal/config"
	"payhive/internal/handler"
	"payhive/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	contactHandler *handler.ContactHandler,
	newsletterHandler *handler.NewsletterHandler,
	pageHandler *handler.PageHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/contact", contactHandler.Submit)
	api.POST("/newsletter", newsletterHandler.Subscribe)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/pages/:slug", pageHandler.Page)
	api.GET("/navigation", pageHandler.Navigation)

	// Secured API routes (JWT via bearer header or session cookie)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + auth.SessionCookieName,
	}))
	secured.GET("/auth/me", authHandler.Me)

	// Portal pages behind the cookie guard (redirects, sliding renewal)
	guardCfg := auth.DefaultGuardConfig(cfg.ProtectedPaths, cfg.SessionTTL, cfg.SecureCookies)
	portal := e.Group("", auth.Guard(guardCfg, authService))
	portal.GET("/dashboard", pageHandler.Dashboard)
	portal.GET("/sign-in", pageHandler.SignIn)
	portal.GET("/sign-up", pageHandler.SignUp)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
