package model

import (
	"time"

	"github.com/google/uuid"
)

// BalanceEntryModel mirrors the append-only 'balance_entries' ledger.
// EntityID points at the completable or item that produced the entry.
type BalanceEntryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount     int       `gorm:"not null"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null"`
	EntityType string    `gorm:"type:varchar(16);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BalanceEntryModel) TableName() string {
	return "balance_entries"
}
