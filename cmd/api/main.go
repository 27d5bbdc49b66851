package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"candidate-search-backend/config"
	_ "candidate-search-backend/docs" // swagger spec registration
	v1 "candidate-search-backend/internal/delivery/http/v1"
	"candidate-search-backend/internal/repository/postgres"
	"candidate-search-backend/internal/usecase"
	"candidate-search-backend/pkg/auth"
	"candidate-search-backend/pkg/database"
	"candidate-search-backend/pkg/logger"
	"candidate-search-backend/pkg/redis"
	"candidate-search-backend/pkg/security"
	"candidate-search-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Candidate Search API
// @version         1.0
// @description     Backend for the candidate search and recruitment platform.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Debug)
	logger.Log.Info("Starting candidate search backend", "port", cfg.Port)

	if cfg.JWTSecret == "" {
		logger.Log.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	ctx := context.Background()

	// Redis backs the failed-login counters; the service stays up without it.
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, login throttling degraded", "error", err)
		} else {
			defer redis.Close()
		}
	}

	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	userRepo := postgres.NewUserRepository(dbPool)
	contactRepo := postgres.NewContactRepository(dbPool)
	fileRepo := postgres.NewFileRepository(dbPool)
	newsRepo := postgres.NewNewsRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	recruiterRepo := postgres.NewRecruiterRepository(dbPool)
	interactionRepo := postgres.NewInteractionRepository(dbPool)

	sessions := auth.NewManager(cfg.JWTSecret, cfg.CookieExpireMinutes)

	tracker := security.NewLoginTracker(security.LoginTrackerConfig{
		MaxAttempts:   cfg.FailedLoginMaxAttempts,
		AttemptWindow: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
		BlockDuration: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
	})

	policy := validation.PasswordPolicy{
		MinLength:          cfg.PasswordMinLength,
		RequireDigit:       cfg.PasswordRequireDigit,
		RequireLowercase:   cfg.PasswordRequireLowercase,
		RequireUppercase:   cfg.PasswordRequireUppercase,
		RequireNonAlphanum: cfg.PasswordRequireNonAlphanum,
	}

	uploadPolicy := security.UploadPolicy{
		MaxFileSize:       cfg.MaxFileSize,
		AllowedExtensions: cfg.AllowedExtensions,
	}

	accountUC := usecase.NewAccountUsecase(userRepo, contactRepo, sessions, tracker, policy)
	contactUC := usecase.NewContactUsecase(contactRepo)
	fileUC := usecase.NewFileUsecase(fileRepo, uploadPolicy, cfg.WebRoot)
	newsUC := usecase.NewNewsUsecase(newsRepo)
	validate := validator.New()
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)
	recruiterUC := usecase.NewRecruiterUsecase(recruiterRepo, candidateRepo, validate)
	interactionUC := usecase.NewInteractionUsecase(interactionRepo)
	healthUC := usecase.NewHealthUsecase(dbPool)

	router := v1.NewRouter(v1.RouterDeps{
		Accounts:     accountUC,
		Contacts:     contactUC,
		Files:        fileUC,
		News:         newsUC,
		Candidates:   candidateUC,
		Recruiters:   recruiterUC,
		Interactions: interactionUC,
		Health:       healthUC,
		Sessions:     sessions,
		Config:       cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
