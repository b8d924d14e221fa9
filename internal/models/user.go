package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key, assigned by the store
	Username     string    `json:"username" db:"username"`     // Display name
	Email        string    `json:"email" db:"email"`           // Unique, used as login key
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt digest, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
