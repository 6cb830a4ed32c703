package model

import (
	"time"

	"github.com/google/uuid"
)

// WordModel mirrors the 'words' table. The composite unique index on
// (user_id, native) enforces per-owner uniqueness of the native term even
// when two concurrent requests pass the application-level duplicate check.
type WordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_words_user_native"`
	Native    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_words_user_native"`
	Translate string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WordModel) TableName() string {
	return "words"
}
