package model

import (
	"time"

	"github.com/google/uuid"
)

// NoteModel mirrors the 'notes' table. ContentText and ContentChars are
// derived from ContentHTML at write time.
type NoteModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	ContentHTML  string    `gorm:"column:content_html;type:text"`
	ContentText  string    `gorm:"type:text"`
	ContentChars int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NoteModel) TableName() string {
	return "notes"
}
