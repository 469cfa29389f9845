// Package model holds the GORM persistence models mirroring the PostgreSQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Owned rows carry ON DELETE CASCADE so account deletion leaves no orphans.
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email      string    `gorm:"type:varchar(255);unique;not null"`
	Name       string    `gorm:"type:varchar(100)"`
	AvatarSeed string    `gorm:"type:varchar(100)"`
	Timezone   string    `gorm:"type:varchar(64)"`
	Balance    int       `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	MagicLinks     []MagicLinkModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Notes          []NoteModel         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Completables   []CompletableModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Items          []ItemModel         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	BalanceEntries []BalanceEntryModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
