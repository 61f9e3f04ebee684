package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryWindow is how many recent finds are retained per player.
const HistoryWindow = 10

// FindRecord is one collected value in a player's recent history.
type FindRecord struct {
	ID        uuid.UUID `json:"id"`
	PlayerID  uuid.UUID `json:"player_id"`
	CoinID    uuid.UUID `json:"coin_id"`
	Value     Money     `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// FindStats are lifetime aggregate counters, unaffected by the bounded
// history retention.
type FindStats struct {
	PlayerID   uuid.UUID `json:"player_id"`
	TotalFinds int64     `json:"total_finds"`
	TotalValue Money     `json:"total_value"`
}
