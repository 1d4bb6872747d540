package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"brainvault/internal/model"
)

// ContentRepository defines content persistence operations. Every lookup is
// scoped to the owner so foreign content is indistinguishable from absent content.
type ContentRepository interface {
	Create(ctx context.Context, content *model.Content) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Content, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, contentType model.ContentType) ([]model.Content, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// Create creates a new content record.
func (r *contentRepository) Create(ctx context.Context, content *model.Content) error {
	return translate(r.db.WithContext(ctx).Create(content).Error)
}

// FindByIDAndOwner finds a content record owned by ownerID.
func (r *contentRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Content, error) {
	var content model.Content
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&content).Error; err != nil {
		return nil, translate(err)
	}
	return &content, nil
}

// ListByOwner lists the owner's content, newest first. An empty contentType
// disables the type filter.
func (r *contentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, contentType model.ContentType) ([]model.Content, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if contentType != "" {
		query = query.Where("type = ?", contentType)
	}

	contents := make([]model.Content, 0)
	if err := query.Order("created_at DESC").Find(&contents).Error; err != nil {
		return nil, translate(err)
	}
	return contents, nil
}

// Delete removes a content record owned by ownerID.
func (r *contentRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Content{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
