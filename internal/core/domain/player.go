package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlayerStatus represents the state of a player account.
type PlayerStatus string

const (
	PlayerStatusActive    PlayerStatus = "ACTIVE"
	PlayerStatusSuspended PlayerStatus = "SUSPENDED"
)

// Player represents a registered player in the system.
type Player struct {
	ID           uuid.UUID    `json:"id"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"` // Never expose
	Status       PlayerStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// IsActive returns true if the player account is active.
func (p *Player) IsActive() bool {
	return p.Status == PlayerStatusActive
}
