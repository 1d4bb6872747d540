package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"brainvault/internal/model"
)

// ShareLinkRepository defines share link persistence operations.
type ShareLinkRepository interface {
	Create(ctx context.Context, link *model.ShareLink) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.ShareLink, error)
	FindByHash(ctx context.Context, hash string) (*model.ShareLink, error)
	HashExists(ctx context.Context, hash string) (bool, error)
	// DeleteByUserID removes the user's link. Deleting a missing link is not an error.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type shareLinkRepository struct {
	db *gorm.DB
}

// NewShareLinkRepository creates a new share link repository.
func NewShareLinkRepository(db *gorm.DB) ShareLinkRepository {
	return &shareLinkRepository{db: db}
}

// Create inserts a link. A second link for the same user, or a reused hash,
// yields ErrDuplicateKey.
func (r *shareLinkRepository) Create(ctx context.Context, link *model.ShareLink) error {
	return translate(r.db.WithContext(ctx).Create(link).Error)
}

func (r *shareLinkRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.ShareLink, error) {
	var link model.ShareLink
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&link).Error; err != nil {
		return nil, translate(err)
	}
	return &link, nil
}

func (r *shareLinkRepository) FindByHash(ctx context.Context, hash string) (*model.ShareLink, error) {
	var link model.ShareLink
	if err := r.db.WithContext(ctx).Where("hash = ?", hash).First(&link).Error; err != nil {
		return nil, translate(err)
	}
	return &link, nil
}

func (r *shareLinkRepository) HashExists(ctx context.Context, hash string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ShareLink{}).Where("hash = ?", hash).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *shareLinkRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return translate(r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.ShareLink{}).Error)
}
