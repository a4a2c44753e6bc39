package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-resume-builder/config"
	_ "go-resume-builder/docs" // Important for Swagger
	v1 "go-resume-builder/internal/delivery/http/v1"
	"go-resume-builder/internal/editor"
	"go-resume-builder/internal/repository/postgres"
	"go-resume-builder/internal/usecase"
	"go-resume-builder/pkg/auth"
	"go-resume-builder/pkg/database"
	"go-resume-builder/pkg/logger"
	"go-resume-builder/pkg/redis"
	"go-resume-builder/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// @title           Resume Builder API
// @version         1.0
// @description     Backend for the resume builder: document model, editor state and persistence.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resume builder backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting degrades to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Photo Storage
	uploader, err := newUploader(cfg)
	if err != nil {
		logger.Log.Error("Failed to configure photo storage", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories and Editor Sessions
	resumeRepo := postgres.NewResumeRepository(dbPool)
	sessions := editor.NewManager(resumeRepo, time.Duration(cfg.SavedStatusResetSeconds)*time.Second)

	// 7. Setup UseCases
	validate := validator.New()
	resumeUC, err := usecase.NewResumeUsecase(resumeRepo, sessions, validate)
	if err != nil {
		logger.Log.Error("Failed to build resume usecase", "error", err)
		os.Exit(1)
	}
	photoUC := usecase.NewPhotoUsecase(sessions, uploader)

	// 8. Setup Auth Provider (JWKS, for RS256 tokens)
	var jwksProvider *auth.Provider
	if cfg.JWKSUrl != "" {
		jwksProvider = auth.NewProvider(cfg.JWKSUrl)
	}

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ResumeUC:     resumeUC,
		PhotoUC:      photoUC,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newUploader(cfg *config.Config) (storage.Uploader, error) {
	switch cfg.StorageProvider {
	case "supabase":
		return storage.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseBucket), nil
	default:
		return storage.NewS3Store(context.Background(), storage.S3Config{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			KeyPrefix:       "photos",
		})
	}
}
