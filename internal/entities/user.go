package entities

import "time"

// User represents a user entity in the database
type User struct {
	ID        int64      `json:"id"`
	Nome      string     `json:"nome"`
	Email     string     `json:"email"`
	SenhaHash string     `json:"-"` // Don't expose password hash in JSON
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"` // Soft-delete marker
}
