package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{name: "to-do starts work", from: StatusToDo, to: StatusInProgress, allowed: true},
		{name: "to-do completes directly", from: StatusToDo, to: StatusCompleted, allowed: true},
		{name: "to-do archives", from: StatusToDo, to: StatusArchived, allowed: true},
		{name: "in-progress completes", from: StatusInProgress, to: StatusCompleted, allowed: true},
		{name: "in-progress pauses back", from: StatusInProgress, to: StatusToDo, allowed: true},
		{name: "in-progress archives", from: StatusInProgress, to: StatusArchived, allowed: true},
		{name: "completed is frozen", from: StatusCompleted, to: StatusToDo, allowed: false},
		{name: "completed cannot archive", from: StatusCompleted, to: StatusArchived, allowed: false},
		{name: "archived is frozen", from: StatusArchived, to: StatusInProgress, allowed: false},
		{name: "no self transition", from: StatusToDo, to: StatusToDo, allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to))
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusToDo.Terminal())
	assert.False(t, StatusInProgress.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusArchived.Terminal())
}

func TestCompletable_Payout(t *testing.T) {
	testCases := []struct {
		name   string
		kind   CompletableKind
		size   Size
		payout int
	}{
		{name: "medium task is the base prize", kind: KindTask, size: SizeM, payout: 100},
		{name: "tiny task", kind: KindTask, size: SizeXS, payout: 25},
		{name: "small goal", kind: KindGoal, size: SizeS, payout: 125},
		{name: "huge goal rounds to nearest unit", kind: KindGoal, size: SizeXL, payout: 438},
		{name: "large task", kind: KindTask, size: SizeL, payout: 150},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			completable := &Completable{Kind: tc.kind, Size: tc.size}
			assert.Equal(t, tc.payout, completable.Payout())
		})
	}
}
