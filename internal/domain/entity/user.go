// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity of the system, representing a registered account.
// The email doubles as the login identifier and is unique across the system.
type User struct {
	ID           int64     // Integer identity assigned by the store on creation.
	Email        string    // The user's unique email, used as the login identifier.
	PasswordHash string    // The Argon2id-encoded password credential. Never exposed.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
