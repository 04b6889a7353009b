package main

import (
	"log"
	"net/http"

	_ "payhive/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"payhive/internal/auth"
	"payhive/internal/cache"
	"payhive/internal/config"
	"payhive/internal/db"
	"payhive/internal/handler"
	"payhive/internal/mail"
	"payhive/internal/model"
	"payhive/internal/repository"
	"payhive/internal/router"
	"payhive/internal/service"
)

// @title PayHive API
// @version 1.0
// @description Marketing site and customer portal API for PayHive: contact and newsletter forms, credential authentication with session cookies, and portal pages.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Contact{},
		&model.Newsletter{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)
	newsletterRepo := repository.NewNewsletterRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize mail components
	var sender mail.Sender
	if cfg.PostmarkServerToken != "" {
		sender, err = mail.NewPostmarkSender(mail.PostmarkConfig{
			ServerToken:  cfg.PostmarkServerToken,
			AccountToken: cfg.PostmarkAccountToken,
			SenderEmail:  cfg.SenderEmail,
			SupportEmail: cfg.SupportEmail,
		})
		if err != nil {
			log.Fatalf("mail init: %v", err)
		}
	} else {
		log.Printf("POSTMARK_SERVER_TOKEN not set, writing emails to %s", cfg.DevMailDir)
		sender = mail.NewDevSender(cfg.DevMailDir)
	}
	templates := mail.NewTemplates()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, sessionStore)
	contactService := service.NewContactService(contactRepo, userRepo, sender, templates, cfg.NotifyEmail)
	newsletterService := service.NewNewsletterService(newsletterRepo, userRepo, sender, templates, cfg.NotifyEmail)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL, cfg.SecureCookies)
	contactHandler := handler.NewContactHandler(contactService)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService)
	pageHandler := handler.NewPageHandler()

	// Register routes
	router.Register(
		e,
		cfg,
		authService,
		authHandler,
		contactHandler,
		newsletterHandler,
		pageHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
