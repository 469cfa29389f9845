package entity

import (
	"time"

	"github.com/google/uuid"
)

// ItemType distinguishes rewards that can be bought repeatedly from ones
// consumed by a single purchase.
type ItemType string

const (
	ItemOneTime   ItemType = "one_time"
	ItemRecurring ItemType = "recurring"
)

// ItemStatus is the shop availability of an item.
type ItemStatus string

const (
	ItemAvailable   ItemStatus = "available"
	ItemUnavailable ItemStatus = "unavailable"
)

// Item is a self-defined shop reward the user spends earned currency on.
type Item struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Price     int
	Type      ItemType
	Status    ItemStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Purchasable reports whether the item can currently be bought.
func (i *Item) Purchasable() bool {
	return i.Status == ItemAvailable
}
