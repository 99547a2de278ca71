package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"symposium/config"
	authadapter "symposium/internal/adapters/auth"
	emailadapter "symposium/internal/adapters/email"
	delivery "symposium/internal/delivery/http"
	"symposium/internal/delivery/http/controllers"
	"symposium/internal/repository/postgres"
	"symposium/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title Symposium API
// @version 1.0
// @description Conference presentation scheduling service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := config.NewLogger()

	db, err := postgres.Open(cfg.DBUrl)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	participantRepo := postgres.NewParticipantRepository(db)
	topicRepo := postgres.NewTopicRepository(db)
	hotelRepo := postgres.NewHotelRepository(db)
	hallRepo := postgres.NewHallRepository(db)
	presentationRepo := postgres.NewPresentationRepository(db)
	userRepo := postgres.NewUserRepository(db)

	hasher := authadapter.NewBcryptHasher(bcrypt.DefaultCost)
	tokenIssuer := authadapter.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := authadapter.NewJWTVerifier(cfg.JWTSecret)

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}

	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	participantService := services.NewParticipantService(participantRepo, serviceTimeout)
	catalogService := services.NewCatalogService(topicRepo, hallRepo, hotelRepo, participantRepo, serviceTimeout)
	schedulingService := services.NewSchedulingService(presentationRepo, topicRepo, hallRepo, participantRepo, emailService, serviceTimeout)
	statisticsService := services.NewStatisticsService(presentationRepo, participantRepo, serviceTimeout)
	authService := services.NewAuthService(userRepo, hasher, tokenIssuer, cfg.TokenExpiry, serviceTimeout)

	router := delivery.NewRouter(delivery.RouterDeps{
		Logger:         logger,
		TokenVerifier:  tokenVerifier,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Auth:           controllers.NewAuthController(logger, authService),
		Participants:   controllers.NewParticipantController(logger, participantService, statisticsService),
		Catalog:        controllers.NewCatalogController(logger, catalogService),
		Schedule:       controllers.NewScheduleController(logger, schedulingService),
		Stats:          controllers.NewStatsController(logger, statisticsService),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
