package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// CompletableKind distinguishes the two entity kinds governed by the shared
// status state machine.
type CompletableKind string

const (
	KindGoal CompletableKind = "goal"
	KindTask CompletableKind = "task"
)

// Size is the user's estimate of how big a piece of work is. It feeds the
// completion payout.
type Size string

const (
	SizeXS Size = "xs"
	SizeS  Size = "s"
	SizeM  Size = "m"
	SizeL  Size = "l"
	SizeXL Size = "xl"
)

// Priority orders completables in listings; it has no payout effect.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Status is the lifecycle state of a completable.
type Status string

const (
	StatusToDo       Status = "to_do"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusArchived   Status = "archived"
)

// statusTransitions is the adjacency table of legal status moves. Completed
// and archived are terminal: once reached, the entity is frozen.
var statusTransitions = map[Status][]Status{
	StatusToDo:       {StatusInProgress, StatusCompleted, StatusArchived},
	StatusInProgress: {StatusCompleted, StatusToDo, StatusArchived},
	StatusCompleted:  {},
	StatusArchived:   {},
}

// CanTransition reports whether moving from the current status to the
// requested one is allowed by the transition table.
func (s Status) CanTransition(to Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == to {
			return true
		}
	}

	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s Status) Terminal() bool {
	return len(statusTransitions[s]) == 0
}

// Payout parameters. The base prize is scaled by the entity kind and the
// user's size estimate, then rounded to the nearest whole unit.
const basePrize = 100

var kindMultipliers = map[CompletableKind]float64{
	KindTask: 1,
	KindGoal: 2.5,
}

var sizeMultipliers = map[Size]float64{
	SizeXS: 0.25,
	SizeS:  0.5,
	SizeM:  1,
	SizeL:  1.5,
	SizeXL: 1.75,
}

// Completable is a goal or task: the unit of work the status state machine
// and the payout rules operate on. Tasks may be linked to a goal via GoalID.
type Completable struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Kind         CompletableKind
	Title        string
	ContentHTML  string // Rich-text content as stored by the editor.
	ContentText  string // Plain text derived from ContentHTML.
	ContentChars int    // Character count of ContentText.
	Size         Size
	Priority     Priority
	Status       Status
	GoalID       *uuid.UUID // Set only for tasks linked to a goal.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Payout returns the virtual currency awarded for completing this entity.
func (c *Completable) Payout() int {
	return int(math.Round(basePrize * kindMultipliers[c.Kind] * sizeMultipliers[c.Size]))
}
