package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShareLink maps a public opaque hash to the user whose content it exposes.
// Both columns are unique: one link per user, one user per hash.
type ShareLink struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	Hash      string    `json:"hash" gorm:"size:32;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (l *ShareLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
