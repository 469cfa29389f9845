package entity

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntityType names the kind of entity a balance change is tied to.
type LedgerEntityType string

const (
	LedgerCompletable LedgerEntityType = "completable"
	LedgerItem        LedgerEntityType = "item"
)

// BalanceEntry is one append-only ledger row: a signed currency change tied
// to the entity that caused it. Entries are never mutated after creation.
type BalanceEntry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Amount     int // Positive for payouts, negative for purchases.
	EntityID   uuid.UUID
	EntityType LedgerEntityType
	CreatedAt  time.Time
}
