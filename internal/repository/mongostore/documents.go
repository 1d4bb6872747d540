package mongostore

import (
	"time"

	"github.com/google/uuid"

	"brainvault/internal/model"
)

type userDocument struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type fileDocument struct {
	Name     string `bson:"name"`
	Path     string `bson:"path"`
	Size     int64  `bson:"size"`
	MimeType string `bson:"mime_type"`
}

type contentDocument struct {
	ID          string        `bson:"_id"`
	UserID      string        `bson:"user_id"`
	Title       string        `bson:"title"`
	Type        string        `bson:"type"`
	Link        string        `bson:"link"`
	Description string        `bson:"description"`
	Tags        []string      `bson:"tags"`
	File        *fileDocument `bson:"file,omitempty"`
	CreatedAt   time.Time     `bson:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at"`
}

type shareLinkDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Hash      string    `bson:"hash"`
	CreatedAt time.Time `bson:"created_at"`
}

// stamp assigns an id and timestamps the way the GORM hooks do.
func stamp(id *uuid.UUID, created, updated *time.Time) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	if updated != nil && updated.IsZero() {
		*updated = now
	}
}

func toUserDocument(u *model.User) userDocument {
	return userDocument{
		ID:           u.ID.String(),
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d userDocument) toModel() (*model.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &model.User{
		ID:           id,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

func toContentDocument(c *model.Content) contentDocument {
	doc := contentDocument{
		ID:          c.ID.String(),
		UserID:      c.UserID.String(),
		Title:       c.Title,
		Type:        string(c.Type),
		Link:        c.Link,
		Description: c.Description,
		Tags:        c.Tags,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	if c.HasFile() {
		doc.File = &fileDocument{
			Name:     c.FileName,
			Path:     c.FilePath,
			Size:     c.FileSize,
			MimeType: c.FileMimeType,
		}
	}
	return doc
}

func (d contentDocument) toModel() (*model.Content, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, err
	}
	c := &model.Content{
		ID:          id,
		UserID:      userID,
		Title:       d.Title,
		Type:        model.ContentType(d.Type),
		Link:        d.Link,
		Description: d.Description,
		Tags:        d.Tags,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if d.File != nil {
		c.FileName = d.File.Name
		c.FilePath = d.File.Path
		c.FileSize = d.File.Size
		c.FileMimeType = d.File.MimeType
	}
	return c, nil
}

func toShareLinkDocument(l *model.ShareLink) shareLinkDocument {
	return shareLinkDocument{
		ID:        l.ID.String(),
		UserID:    l.UserID.String(),
		Hash:      l.Hash,
		CreatedAt: l.CreatedAt,
	}
}

func (d shareLinkDocument) toModel() (*model.ShareLink, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, err
	}
	return &model.ShareLink{ID: id, UserID: userID, Hash: d.Hash, CreatedAt: d.CreatedAt}, nil
}
