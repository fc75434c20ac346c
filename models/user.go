package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique identity key of the account, compared as stored.
	Email string `json:"email"`

	// Name is the display name of the user. Non-sensitive, may be shown in UI.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// The raw password is never persisted and never serialized.
	PasswordHash string `json:"-"`

	// IsActive marks whether the account may authenticate.
	// Not settable from wire payloads.
	IsActive bool `json:"-"`

	// IsStaff marks back-office accounts. Not settable from wire payloads.
	IsStaff bool `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
