package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"brainvault/docs"
	"brainvault/internal/auth"
	"brainvault/internal/bootstrap"
	"brainvault/internal/cache"
	"brainvault/internal/config"
	"brainvault/internal/events"
	"brainvault/internal/handler"
	"brainvault/internal/logger"
	"brainvault/internal/middleware"
	"brainvault/internal/router"
	"brainvault/internal/service"
	"brainvault/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Brainvault API
// @version 1.0
// @description Second brain API: save links, posts and documents, and share them through a public link.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	zap.ReplaceGlobals(zapLogger)

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := bootstrap.OpenStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()
	if !cacheClient.Enabled() {
		logger.Info("redis not configured, refresh tokens and share cache disabled")
	} else if err := cacheClient.Ping(ctx); err != nil {
		logger.Warn("redis unreachable, continuing without cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	publisher := newPublisher(cfg, logger)
	defer publisher.Close()

	files, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(st.Users, jwtService, tokenStore, logger.With(zap.String("component", "auth")))
	contentService := service.NewContentService(st.Contents, files, publisher, logger.With(zap.String("component", "content")))
	shareService := service.NewShareService(st.Links, st.Users, st.Contents, cacheClient, publisher,
		logger.With(zap.String("component", "share")), cfg.ShareCacheTTL)

	// Initialize handlers
	httpLogger := logger.With(zap.String("component", "http"))
	authHandler := handler.NewAuthHandler(authService, httpLogger)
	contentHandler := handler.NewContentHandler(contentService, httpLogger)
	brainHandler := handler.NewBrainHandler(shareService, httpLogger)

	e := echo.New()
	e.HidePort = true
	router.Register(e, cfg, httpLogger, middleware.JWT(jwtService, tokenStore), authHandler, contentHandler, brainHandler)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}

	addr := ":" + cfg.ServerPort
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", addr),
			zap.String("db_driver", cfg.DBDriver),
			zap.String("swagger", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html"),
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newPublisher(cfg *config.Config, logger *zap.Logger) events.Publisher {
	if cfg.NATSURL == "" {
		return events.NopPublisher{}
	}
	publisher, err := events.NewNATSPublisher(cfg.NATSURL)
	if err != nil {
		logger.Warn("nats unavailable, domain events disabled", zap.String("url", cfg.NATSURL), zap.Error(err))
		return events.NopPublisher{}
	}
	return publisher
}
