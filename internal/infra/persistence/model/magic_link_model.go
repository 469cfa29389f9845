package model

import (
	"time"

	"github.com/google/uuid"
)

// MagicLinkModel mirrors the 'magic_links' table. One live link per user; a
// new request replaces the row once the regeneration delay has passed.
type MagicLinkModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Token           string    `gorm:"type:varchar(64);not null"`
	SessionDuration string    `gorm:"type:varchar(16);not null"`
	ValidUntil      time.Time `gorm:"not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MagicLinkModel) TableName() string {
	return "magic_links"
}
