// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system. An account is created implicitly the
// first time an email address requests a magic link; the remaining fields are
// filled in during onboarding.
type User struct {
	ID         uuid.UUID // The unique identifier for the user.
	Email      string    // The user's email, the only login identifier.
	Name       string    // Display name, set during onboarding.
	AvatarSeed string    // Seed string for the generated avatar.
	Timezone   string    // IANA timezone name, set during onboarding.
	Balance    int       // Current virtual-currency balance.
	CreatedAt  time.Time // Timestamp of when this account was created.
	UpdatedAt  time.Time // Timestamp of the last modification.
}

// Onboarded reports whether the user finished the onboarding form.
func (u *User) Onboarded() bool {
	return u.Name != "" && u.Timezone != ""
}
