package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	httphandlers "github.com/rafabene/inhouse-backend/internal/handlers/http"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/config"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/i18n"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/logging"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/persistence/gormdb"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/realtime"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/security"
	"github.com/rafabene/inhouse-backend/internal/services"
)

const shutdownTimeout = 5 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting inhouse backend",
		"env", cfg.Env,
		"driver", cfg.Database.Driver,
	)

	db, err := gormdb.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return err
	}
	defer gormdb.Close(db)

	// Schema é obrigatório; seed com falha não impede a subida
	if err := gormdb.Migrate(db, logger); err != nil {
		logger.Error("failed to migrate database", "error", err)
		return err
	}

	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	if _, err := gormdb.Seed(context.Background(), db, hasher, logger); err != nil {
		logger.Error("failed to seed database", "error", err)
	}

	i18nService, err := i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		return err
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := security.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	router := httphandlers.NewRouter(buildHandlers(db, hasher, tokens, logger), httphandlers.RouterOptions{
		Logger:         logger,
		I18n:           i18nService,
		Tokens:         tokens,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		BaseURL:        cfg.Server.BaseURL,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server failed", "error", err)
			return err
		}
	case <-quit:
	}

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
	return nil
}

// buildHandlers liga repositories, services e handlers sobre a mesma conexão
func buildHandlers(db *gorm.DB, hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger ports.Logger) httphandlers.Handlers {
	userRepo := gormdb.NewUserRepository(db)
	postRepo := gormdb.NewPostRepository(db)
	propertyRepo := gormdb.NewPropertyRepository(db)
	favoriteRepo := gormdb.NewFavoriteRepository(db)
	interactionRepo := gormdb.NewInteractionRepository(db)
	leadRepo := gormdb.NewLeadRepository(db)
	notificationRepo := gormdb.NewNotificationRepository(db)
	chatRepo := gormdb.NewChatRepository(db)
	uow := gormdb.NewUnitOfWork(db)

	hub := realtime.NewHub(logger)

	authService := services.NewAuthService(userRepo, hasher, tokens, logger)
	postService := services.NewPostService(postRepo, logger)
	propertyService := services.NewPropertyService(propertyRepo, logger)
	engagementService := services.NewEngagementService(favoriteRepo, interactionRepo, propertyRepo, logger)
	notificationService := services.NewNotificationService(notificationRepo, logger)
	ownerService := services.NewOwnerService(propertyRepo, leadRepo, notificationService, uow, logger)
	chatService := services.NewChatService(chatRepo, hub, uow, logger)

	return httphandlers.Handlers{
		Auth:         httphandlers.NewAuthHandler(authService, logger),
		Post:         httphandlers.NewPostHandler(postService, logger),
		Property:     httphandlers.NewPropertyHandler(propertyService, logger),
		Engagement:   httphandlers.NewEngagementHandler(engagementService, logger),
		Owner:        httphandlers.NewOwnerHandler(ownerService, logger),
		Chat:         httphandlers.NewChatHandler(chatService, logger),
		ChatStream:   httphandlers.NewChatStreamHandler(chatService, hub, logger),
		Notification: httphandlers.NewNotificationHandler(notificationService, logger),
	}
}
