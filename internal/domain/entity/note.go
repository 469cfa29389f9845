package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note is free-form rich text. Notes carry no status or payout; they exist to
// be written down quickly and, optionally, converted into a goal or task
// later.
type Note struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	ContentHTML  string
	ContentText  string
	ContentChars int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
