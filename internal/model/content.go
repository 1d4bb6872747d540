package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentType is the kind of a saved item. It decides which fields are required.
type ContentType string

const (
	ContentTypeLinkedIn  ContentType = "linkedin"
	ContentTypeTwitter   ContentType = "twitter"
	ContentTypeInstagram ContentType = "instagram"
	ContentTypeYouTube   ContentType = "youtube"
	ContentTypePinterest ContentType = "pinterest"
	ContentTypeDocuments ContentType = "documents"
	ContentTypeOther     ContentType = "other"
)

var contentTypes = []ContentType{
	ContentTypeLinkedIn,
	ContentTypeTwitter,
	ContentTypeInstagram,
	ContentTypeYouTube,
	ContentTypePinterest,
	ContentTypeDocuments,
	ContentTypeOther,
}

// ContentTypes returns every supported content type.
func ContentTypes() []ContentType {
	out := make([]ContentType, len(contentTypes))
	copy(out, contentTypes)
	return out
}

// ParseContentType returns the ContentType named by s.
func ParseContentType(s string) (ContentType, bool) {
	for _, t := range contentTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// IsSocial reports whether t is a social network post.
func (t ContentType) IsSocial() bool {
	switch t {
	case ContentTypeLinkedIn, ContentTypeTwitter, ContentTypeInstagram, ContentTypeYouTube, ContentTypePinterest:
		return true
	}
	return false
}

// Content is a saved item owned by exactly one user.
type Content struct {
	ID          uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID   `json:"user_id" gorm:"type:char(36);not null;index"`
	Title       string      `json:"title" gorm:"size:255;not null"`
	Type        ContentType `json:"type" gorm:"type:varchar(20);not null;index"`
	Link        string      `json:"link" gorm:"type:text"`
	Description string      `json:"description" gorm:"type:text"`
	// Tags is reserved and always empty.
	Tags []string `json:"tags" gorm:"type:text;serializer:json"`

	FileName     string `json:"file_name,omitempty" gorm:"size:255"`
	FilePath     string `json:"-" gorm:"size:512"`
	FileSize     int64  `json:"file_size,omitempty"`
	FileMimeType string `json:"file_mime_type,omitempty" gorm:"size:127"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasFile reports whether an uploaded file is stored for this content.
func (c *Content) HasFile() bool {
	return c.FilePath != ""
}

// BeforeCreate sets UUID before creating the record.
func (c *Content) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return nil
}

// AfterFind keeps tags serialized as an empty list rather than null.
func (c *Content) AfterFind(tx *gorm.DB) error {
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return nil
}
