package account

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing an account keyed by email.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	IsActive     bool
	IsStaff      bool
	CreatedAt    time.Time
}
