package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"brainvault/internal/errors"
	"brainvault/internal/events"
	"brainvault/internal/metrics"
	"brainvault/internal/model"
	"brainvault/internal/repository"
)

const defaultShareCacheTTL = 10 * time.Minute

// PublicBrain is everything an anonymous visitor sees through a share link.
type PublicBrain struct {
	Username string          `json:"username"`
	Content  []model.Content `json:"content"`
}

// ShareService manages the single public share link of each user.
type ShareService interface {
	// Share enables or disables sharing. Enabling returns the existing hash if
	// the user already has one; disabling returns an empty hash.
	Share(ctx context.Context, userID uuid.UUID, enabled bool) (string, error)
	// Resolve returns the owner's username and content for a public hash.
	Resolve(ctx context.Context, hash string) (*PublicBrain, error)
}

// ShareCache holds resolved share hashes. *cache.Client satisfies it.
type ShareCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// shareCacheEntry is the cached owner of a hash. It is only trusted when the
// share link itself still exists and belongs to the same owner.
type shareCacheEntry struct {
	OwnerID  uuid.UUID `json:"owner_id"`
	Username string    `json:"username"`
}

type shareService struct {
	links    repository.ShareLinkRepository
	users    repository.UserRepository
	contents repository.ContentRepository
	cache    ShareCache
	events   events.Publisher
	logger   *zap.Logger
	cacheTTL time.Duration
	newToken func() (string, error)
}

// NewShareService creates a new share service.
func NewShareService(
	links repository.ShareLinkRepository,
	users repository.UserRepository,
	contents repository.ContentRepository,
	cache ShareCache,
	publisher events.Publisher,
	logger *zap.Logger,
	cacheTTL time.Duration,
) ShareService {
	if cacheTTL <= 0 {
		cacheTTL = defaultShareCacheTTL
	}
	return &shareService{
		links:    links,
		users:    users,
		contents: contents,
		cache:    cache,
		events:   publisher,
		logger:   logger,
		cacheTTL: cacheTTL,
		newToken: generateShareToken,
	}
}

func (s *shareService) cacheKey(hash string) string {
	return "share:" + hash
}

// Share enables or disables the user's share link.
func (s *shareService) Share(ctx context.Context, userID uuid.UUID, enabled bool) (string, error) {
	if enabled {
		return s.enable(ctx, userID)
	}
	return "", s.revoke(ctx, userID)
}

func (s *shareService) enable(ctx context.Context, userID uuid.UUID) (string, error) {
	existing, err := s.links.FindByUserID(ctx, userID)
	if err == nil {
		metrics.ShareOperationsTotal.WithLabelValues(metrics.ShareReused).Inc()
		return existing.Hash, nil
	}
	if !repository.IsNotFound(err) {
		return "", fmt.Errorf("find share link: %w", err)
	}

	for attempt := 0; attempt < maxShareTokenAttempts; attempt++ {
		hash, err := s.newToken()
		if err != nil {
			return "", err
		}
		taken, err := s.links.HashExists(ctx, hash)
		if err != nil {
			return "", fmt.Errorf("check share hash: %w", err)
		}
		if taken {
			continue
		}

		err = s.links.Create(ctx, &model.ShareLink{UserID: userID, Hash: hash})
		if err == nil {
			metrics.ShareOperationsTotal.WithLabelValues(metrics.ShareCreated).Inc()
			publishEvent(ctx, s.events, s.logger, events.SubjectBrainShared, events.Event{UserID: userID.String(), Hash: hash})
			return hash, nil
		}
		if !repository.IsDuplicateKey(err) {
			return "", fmt.Errorf("create share link: %w", err)
		}

		// Either a concurrent request created the user's link first, or the
		// hash was taken in between. Only the first case has a winner to return.
		winner, findErr := s.links.FindByUserID(ctx, userID)
		if findErr == nil {
			metrics.ShareOperationsTotal.WithLabelValues(metrics.ShareReused).Inc()
			return winner.Hash, nil
		}
		if !repository.IsNotFound(findErr) {
			return "", fmt.Errorf("find share link: %w", findErr)
		}
	}
	return "", errors.ErrShareTokenExhausted
}

func (s *shareService) revoke(ctx context.Context, userID uuid.UUID) error {
	existing, err := s.links.FindByUserID(ctx, userID)
	if repository.IsNotFound(err) {
		metrics.ShareOperationsTotal.WithLabelValues(metrics.ShareNoop).Inc()
		return nil
	}
	if err != nil {
		return fmt.Errorf("find share link: %w", err)
	}

	if err := s.links.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("delete share link: %w", err)
	}
	s.evict(ctx, existing.Hash)

	metrics.ShareOperationsTotal.WithLabelValues(metrics.ShareRevoked).Inc()
	publishEvent(ctx, s.events, s.logger, events.SubjectBrainUnshared, events.Event{UserID: userID.String(), Hash: existing.Hash})
	return nil
}

// Resolve confirms the hash against the share-link store and loads the
// owner's content. The cache only saves the owner lookup, so a revoked hash
// stops resolving even if a stale entry is still cached.
func (s *shareService) Resolve(ctx context.Context, hash string) (*PublicBrain, error) {
	if !isShareToken(hash) {
		return nil, errors.ErrLinkNotFound
	}

	link, err := s.links.FindByHash(ctx, hash)
	if err != nil {
		if repository.IsNotFound(err) {
			s.evict(ctx, hash)
			return nil, errors.ErrLinkNotFound
		}
		return nil, fmt.Errorf("find share link: %w", err)
	}

	entry, cached := s.cachedOwner(ctx, hash, link.UserID)
	if cached {
		metrics.PublicBrainViewsTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.PublicBrainViewsTotal.WithLabelValues("miss").Inc()
		user, err := s.users.FindByID(ctx, link.UserID)
		if err != nil {
			if repository.IsNotFound(err) {
				s.evict(ctx, hash)
				return nil, errors.ErrLinkNotFound
			}
			return nil, fmt.Errorf("find share owner: %w", err)
		}
		entry = shareCacheEntry{OwnerID: user.ID, Username: user.Username}
	}

	contents, err := s.contents.ListByOwner(ctx, entry.OwnerID, "")
	if err != nil {
		return nil, fmt.Errorf("list shared content: %w", err)
	}

	if !cached {
		if data, err := json.Marshal(entry); err == nil {
			_ = s.cache.Set(ctx, s.cacheKey(hash), data, s.cacheTTL)
		}
	}
	return &PublicBrain{Username: entry.Username, Content: contents}, nil
}

func (s *shareService) cachedOwner(ctx context.Context, hash string, ownerID uuid.UUID) (shareCacheEntry, bool) {
	var entry shareCacheEntry
	data, _ := s.cache.Get(ctx, s.cacheKey(hash))
	if data == nil {
		return entry, false
	}
	if err := json.Unmarshal(data, &entry); err != nil || entry.OwnerID != ownerID {
		return shareCacheEntry{}, false
	}
	return entry, true
}

func (s *shareService) evict(ctx context.Context, hash string) {
	if err := s.cache.Delete(ctx, s.cacheKey(hash)); err != nil {
		s.logger.Warn("failed to evict share cache entry", zap.String("hash", hash), zap.Error(err))
	}
}
