package model

import (
	"time"

	"github.com/google/uuid"
)

// CompletableModel mirrors the 'completables' table, covering both goals and
// tasks. GoalID links a task to its parent goal and is null for goals.
type CompletableModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Kind         string     `gorm:"type:varchar(8);not null"`
	Title        string     `gorm:"type:varchar(255);not null"`
	ContentHTML  string     `gorm:"column:content_html;type:text"`
	ContentText  string     `gorm:"type:text"`
	ContentChars int        `gorm:"not null;default:0"`
	Size         string     `gorm:"type:varchar(4);not null"`
	Priority     string     `gorm:"type:varchar(8);not null"`
	Status       string     `gorm:"type:varchar(16);not null;index"`
	GoalID       *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Goal *CompletableModel `gorm:"foreignKey:GoalID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (CompletableModel) TableName() string {
	return "completables"
}
