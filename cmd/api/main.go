// @title Signflow API
// @version 1.0
// @description Document signing workflow: upload, sequential signing, rejection and status.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/signflow/docs"
	"github.com/linskybing/signflow/internal/api/handlers"
	"github.com/linskybing/signflow/internal/api/middleware"
	"github.com/linskybing/signflow/internal/api/routes"
	"github.com/linskybing/signflow/internal/application"
	"github.com/linskybing/signflow/internal/config"
	"github.com/linskybing/signflow/internal/config/db"
	"github.com/linskybing/signflow/internal/cron"
	"github.com/linskybing/signflow/internal/notify"
	"github.com/linskybing/signflow/internal/repository"
	"github.com/linskybing/signflow/pkg/blob"
	"github.com/linskybing/signflow/pkg/logger"
	"github.com/linskybing/signflow/pkg/mailer"
	"github.com/linskybing/signflow/pkg/messaging"
	"github.com/linskybing/signflow/pkg/phone"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment variables and .env file
	cfg := config.LoadConfig()

	zapLogger, err := logger.NewLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("Server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	templates, err := config.LoadTemplates(cfg.TemplatesFile)
	if err != nil {
		return err
	}

	// Connect and migrate
	database, err := db.Open(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	store, err := blob.NewMinioStore(ctx, blob.MinioConfig{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		UseSSL:    cfg.MinioUseSSL,
		Bucket:    cfg.MinioBucket,
	})
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(database)

	messages := messaging.NewClient(messaging.Config{
		BaseURL:       cfg.MessagingBaseURL,
		PhoneNumberID: cfg.MessagingPhoneNumberID,
		AccessKey:     cfg.MessagingAccessKey,
	})
	mail := mailer.NewSMTPMailer(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})
	dispatcher := notify.NewDispatcher(messages, mail, templates, repos.Notification, cfg.MessageInterval, zapLogger)
	callbacks := notify.NewCallbackPoster(10*time.Second, repos.Notification, zapLogger)

	runner := application.NewAsyncRunner(zapLogger)
	services := application.New(application.Deps{
		Repos:     repos,
		Blobs:     store,
		Phones:    phone.NewNormalizer(),
		Notifier:  dispatcher,
		Callbacks: callbacks,
		Tasks:     runner,
		Templates: templates,
		Logger:    zapLogger,
		Options:   application.OptionsFromConfig(cfg),
	})

	// Start background tasks
	cleanupDone := cron.StartCleanupTask(ctx, services.Notification, cfg.NotificationRetention, zapLogger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	logging := middleware.NewLoggingMiddleware(zapLogger)
	router.Use(logging.RecoverPanic())
	router.Use(logging.LogRequest())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	auth := middleware.NewServiceAuth(cfg.JwtSecret, cfg.Issuer)
	routes.RegisterRoutes(router, handlers.New(services, sqlDB, middleware.OriginAllowed(cfg.CORSOrigins), zapLogger), auth)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zapLogger.Info("Starting API server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	stop()
	zapLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := runner.Wait(shutdownCtx); err != nil {
		zapLogger.Warn("Background tasks still running at shutdown", zap.Error(err))
	}
	<-cleanupDone

	zapLogger.Info("Server exited")
	return nil
}
