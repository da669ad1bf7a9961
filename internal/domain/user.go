package domain

import "time"

// User is the single authenticated identity of the system.
type User struct {
	ID           int32     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type UserRepository interface {
	GetByUsername(username string) (*User, error)
	UpdatePassword(username, passwordHash string) error
}
