package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"conferencecentral/config"
	_ "conferencecentral/docs"
	"conferencecentral/internal/adapters/auth"
	"conferencecentral/internal/adapters/cache"
	"conferencecentral/internal/adapters/email"
	delivery "conferencecentral/internal/delivery/http"
	"conferencecentral/internal/delivery/http/controllers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/repository/postgres"
	"conferencecentral/internal/services"
	"conferencecentral/internal/tasks"
)

const serviceTimeout = 10 * time.Second

// @title Conference Central API
// @version 1.0
// @description Conference management backend: conferences, sessions, speakers, profiles, wishlists, and registration.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	store, err := cache.Open(cfg.CacheDir, logger)
	if err != nil {
		logger.Error("open cache", "err", err)
		os.Exit(1)
	}
	defer store.Close()

	accountRepo := postgres.NewAccountRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	conferenceRepo := postgres.NewConferenceRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}

	hasher := auth.NewBcryptHasher(10)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	dispatcher := tasks.NewDispatcher(64, logger)

	authService := services.NewAuthService(accountRepo, hasher, issuer, cfg.TokenExpiry)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	announcementService := services.NewAnnouncementService(conferenceRepo, sessionRepo, store, serviceTimeout)
	profileService := services.NewProfileService(profileRepo, sessionRepo, conferenceRepo, serviceTimeout)
	conferenceService := services.NewConferenceService(conferenceRepo, profileRepo, dispatcher, serviceTimeout)
	sessionService := services.NewSessionService(sessionRepo, conferenceRepo, speakerRepo, dispatcher, serviceTimeout)
	speakerService := services.NewSpeakerService(speakerRepo, serviceTimeout)

	tasks.RegisterHandlers(dispatcher, emailService, announcementService)
	dispatcher.Start(2)
	defer dispatcher.Stop()

	router := delivery.NewRouter(
		verifier,
		controllers.NewAuthController(logger, authService),
		controllers.NewConferenceController(logger, conferenceService, profileService),
		controllers.NewSessionController(logger, sessionService),
		controllers.NewSpeakerController(logger, speakerService),
		controllers.NewProfileController(logger, profileService),
		controllers.NewAnnouncementController(logger, announcementService),
	)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, router))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
