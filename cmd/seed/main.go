package main

import (
	"context"
	stderrors "errors"
	"log"
	"os"

	"go.uber.org/zap"

	"brainvault/internal/auth"
	"brainvault/internal/bootstrap"
	"brainvault/internal/cache"
	"brainvault/internal/config"
	"brainvault/internal/errors"
	"brainvault/internal/events"
	"brainvault/internal/logger"
	"brainvault/internal/service"
	"brainvault/internal/storage"
)

const demoUsername = "demo"

var demoContent = []service.Submission{
	{Title: "Go proverbs", Type: "youtube", Link: "https://www.youtube.com/watch?v=PAAkCSZUG1c", Description: "Rob Pike at Gopherfest 2015"},
	{Title: "Release announcement", Type: "twitter", Link: "https://x.com/golang/status/1", Description: "New Go release"},
	{Title: "Hiring post", Type: "linkedin", Link: "https://www.linkedin.com/posts/golang-1", Description: "Backend roles"},
	{Title: "Gopher art", Type: "instagram", Link: "https://www.instagram.com/p/gopher1", Description: "Conference sticker wall"},
	{Title: "Desk setup", Type: "pinterest", Link: "https://www.pinterest.com/pin/1", Description: "Standing desk ideas"},
	{Title: "Effective Go", Type: "documents", Link: "https://go.dev/doc/effective_go"},
	{Title: "Reading list", Type: "other", Description: "The Go Programming Language, Concurrency in Go"},
}

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

	if err := seed(context.Background(), cfg, zapLogger); err != nil {
		zapLogger.Fatal("seed failed", zap.Error(err))
	}
	zapLogger.Info("seed completed")
}

func seed(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	st, err := bootstrap.OpenStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	files, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := service.NewAuthService(st.Users, jwtService, auth.NewTokenStore(cacheClient), logger)
	contentService := service.NewContentService(st.Contents, files, events.NopPublisher{}, logger)
	shareService := service.NewShareService(st.Links, st.Users, st.Contents, cacheClient, events.NopPublisher{}, logger, cfg.ShareCacheTTL)

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "demo-password"
	}

	user, err := authService.Signup(ctx, demoUsername, password)
	if stderrors.Is(err, errors.ErrUserAlreadyExists) {
		logger.Info("demo user already exists, skipping", zap.String("username", demoUsername))
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("created demo user", zap.String("username", demoUsername), zap.String("id", user.ID.String()))

	for _, sub := range demoContent {
		content, err := contentService.Create(ctx, user.ID, sub)
		if err != nil {
			return err
		}
		logger.Info("added content", zap.String("type", string(content.Type)), zap.String("title", content.Title))
	}

	if os.Getenv("SEED_SHARE") == "true" {
		hash, err := shareService.Share(ctx, user.ID, true)
		if err != nil {
			return err
		}
		logger.Info("brain shared", zap.String("hash", hash), zap.String("path", "/api/v1/brain/"+hash))
	}
	return nil
}
