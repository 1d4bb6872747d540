package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"brainvault/internal/config"
	"brainvault/internal/db"
	"brainvault/internal/repository"
	"brainvault/internal/repository/mongostore"
)

// Stores holds the repositories of the configured backend.
type Stores struct {
	Users    repository.UserRepository
	Contents repository.ContentRepository
	Links    repository.ShareLinkRepository

	close func()
}

// Close releases the underlying connection.
func (s *Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStores connects the configured backend, prepares its schema and
// returns the repositories on top of it.
func OpenStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Stores, error) {
	if cfg.DBDriver == config.DriverMongo {
		return openMongoStores(ctx, cfg, logger)
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("database init: %w", err)
	}
	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			return nil, err
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		return nil, err
	}

	return &Stores{
		Users:    repository.NewUserRepository(gormDB),
		Contents: repository.NewContentRepository(gormDB),
		Links:    repository.NewShareLinkRepository(gormDB),
		close: func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		},
	}, nil
}

func openMongoStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Stores, error) {
	client, database, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, fmt.Errorf("database init: %w", err)
	}
	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping database", zap.String("database", cfg.MongoDatabase))
		if err := database.Drop(ctx); err != nil {
			return nil, fmt.Errorf("drop database: %w", err)
		}
	}
	if err := mongostore.EnsureIndexes(ctx, database); err != nil {
		return nil, err
	}

	return &Stores{
		Users:    mongostore.NewUserStore(database),
		Contents: mongostore.NewContentStore(database),
		Links:    mongostore.NewShareLinkStore(database),
		close: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		},
	}, nil
}
