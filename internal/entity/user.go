package entity

import "time"

// User is a registered account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal is the identity attached to a request by its session.
// The zero value means the request carries no principal.
type Principal struct {
	ID string
	// Anonymous marks an ephemeral identity handed to a unique visitor who is not logged in.
	Anonymous bool
}

// IsZero reports whether there is no principal at all.
func (p Principal) IsZero() bool {
	return p.ID == ""
}

// IsAuthenticated reports whether the principal belongs to a logged in account.
func (p Principal) IsAuthenticated() bool {
	return p.ID != "" && !p.Anonymous
}
