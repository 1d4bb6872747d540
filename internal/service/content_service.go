package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"brainvault/internal/errors"
	"brainvault/internal/events"
	"brainvault/internal/metrics"
	"brainvault/internal/model"
	"brainvault/internal/repository"
	"brainvault/internal/storage"
)

// ContentService handles content operations for an authenticated owner.
type ContentService interface {
	Create(ctx context.Context, ownerID uuid.UUID, sub Submission) (*model.Content, error)
	List(ctx context.Context, ownerID uuid.UUID, contentType string) ([]model.Content, error)
	Delete(ctx context.Context, ownerID, contentID uuid.UUID) error
	// Download returns content whose stored file may be served to the owner.
	Download(ctx context.Context, ownerID, contentID uuid.UUID) (*model.Content, error)
}

type contentService struct {
	repo      repository.ContentRepository
	files     storage.FileStore
	validator *ContentValidator
	events    events.Publisher
	logger    *zap.Logger
}

// NewContentService creates a new content service.
func NewContentService(
	repo repository.ContentRepository,
	files storage.FileStore,
	publisher events.Publisher,
	logger *zap.Logger,
) ContentService {
	return &contentService{
		repo:      repo,
		files:     files,
		validator: NewContentValidator(),
		events:    publisher,
		logger:    logger,
	}
}

// Create validates the submission, stores an attached document and persists
// the record. The stored file is removed again if the record cannot be saved.
func (s *contentService) Create(ctx context.Context, ownerID uuid.UUID, sub Submission) (*model.Content, error) {
	content, err := s.validator.Validate(ownerID, sub)
	if err != nil {
		return nil, err
	}

	if sub.File != nil {
		// the declared size is client supplied, so the copy itself is bounded too
		limited := io.LimitReader(sub.File.Content, s.validator.maxFileSize+1)
		path, size, err := s.files.Save(ctx, sub.File.Name, limited)
		if err != nil {
			return nil, fmt.Errorf("store file: %w", err)
		}
		if size > s.validator.maxFileSize {
			s.removeFile(path)
			return nil, errors.NewValidationError(errors.ErrFileTooLarge,
				fmt.Sprintf("file exceeds the %d MiB limit", s.validator.maxFileSize>>20), "file")
		}
		content.FileName = displayName(sub.File.Name)
		content.FilePath = path
		content.FileSize = size
	}

	if err := s.repo.Create(ctx, content); err != nil {
		if content.HasFile() {
			s.removeFile(content.FilePath)
		}
		return nil, fmt.Errorf("create content: %w", err)
	}

	metrics.ContentCreatedTotal.WithLabelValues(string(content.Type)).Inc()
	publishEvent(ctx, s.events, s.logger, events.SubjectContentCreated, events.Event{
		UserID:    ownerID.String(),
		ContentID: content.ID.String(),
		Type:      string(content.Type),
	})
	return content, nil
}

// List returns the owner's content, newest first. An empty contentType lists
// everything; an unknown one is rejected.
func (s *contentService) List(ctx context.Context, ownerID uuid.UUID, contentType string) ([]model.Content, error) {
	var filter model.ContentType
	if contentType = strings.TrimSpace(contentType); contentType != "" {
		t, ok := model.ParseContentType(contentType)
		if !ok {
			return nil, errors.NewValidationError(errors.ErrInvalidType, "type must be one of "+typeList(), "type")
		}
		filter = t
	}

	contents, err := s.repo.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return contents, nil
}

// Delete removes the owner's content, then its stored file. Content owned by
// someone else is reported as not found. A failure to remove the file is
// logged and swallowed.
func (s *contentService) Delete(ctx context.Context, ownerID, contentID uuid.UUID) error {
	content, err := s.find(ctx, ownerID, contentID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, contentID, ownerID); err != nil {
		if repository.IsNotFound(err) {
			return errors.ErrContentNotFound
		}
		return fmt.Errorf("delete content: %w", err)
	}

	// file removal is best effort and only follows a successful record delete
	if content.HasFile() {
		s.removeFile(content.FilePath)
	}

	metrics.ContentDeletedTotal.Inc()
	publishEvent(ctx, s.events, s.logger, events.SubjectContentDeleted, events.Event{
		UserID:    ownerID.String(),
		ContentID: contentID.String(),
		Type:      string(content.Type),
	})
	return nil
}

// Download returns the owner's content if it has a stored file.
func (s *contentService) Download(ctx context.Context, ownerID, contentID uuid.UUID) (*model.Content, error) {
	content, err := s.find(ctx, ownerID, contentID)
	if err != nil {
		return nil, err
	}
	if !content.HasFile() {
		return nil, errors.ErrFileNotFound
	}
	return content, nil
}

func (s *contentService) find(ctx context.Context, ownerID, contentID uuid.UUID) (*model.Content, error) {
	content, err := s.repo.FindByIDAndOwner(ctx, contentID, ownerID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errors.ErrContentNotFound
		}
		return nil, fmt.Errorf("find content: %w", err)
	}
	return content, nil
}

func (s *contentService) removeFile(path string) {
	if err := s.files.Remove(path); err != nil {
		s.logger.Warn("remove stored file failed", zap.String("path", path), zap.Error(err))
	}
}

func displayName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == "/" {
		return "upload"
	}
	return base
}
