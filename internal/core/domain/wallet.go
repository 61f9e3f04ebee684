package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Wallet holds a player's balance partitioned into three buckets.
// GasTank is spendable, Parked is set aside and exempt from daily gas
// consumption, Pending holds collected coin values during the 24h
// confirmation window. Total must equal the sum of the buckets at all times.
type Wallet struct {
	ID         uuid.UUID `json:"id"`
	PlayerID   uuid.UUID `json:"player_id"`
	GasTank    Money     `json:"gas_tank"`
	Parked     Money     `json:"parked"`
	Pending    Money     `json:"pending"`
	Total      Money     `json:"total"`
	LastGasDay *string   `json:"-"` // UTC calendar day ("2006-01-02") of the last daily gas decrement
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewWallet creates a zero-balance wallet for a player.
func NewWallet(playerID uuid.UUID, now time.Time) *Wallet {
	return &Wallet{
		ID:        uuid.New(),
		PlayerID:  playerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CheckConsistent verifies the core ledger invariant. Every mutation must
// call this before committing; a failure aborts the whole operation.
func (w *Wallet) CheckConsistent() error {
	if w.GasTank < 0 || w.Parked < 0 || w.Pending < 0 {
		return fmt.Errorf("wallet %s: negative bucket (gas=%d parked=%d pending=%d)",
			w.ID, w.GasTank, w.Parked, w.Pending)
	}
	if sum := w.GasTank + w.Parked + w.Pending; w.Total != sum {
		return fmt.Errorf("wallet %s: total %d != bucket sum %d", w.ID, w.Total, sum)
	}
	return nil
}

// Recompute sets Total from the buckets. Callers mutate the buckets and then
// recompute; Total is never written independently.
func (w *Wallet) Recompute() {
	w.Total = w.GasTank + w.Parked + w.Pending
}

// GasDay formats a point in time as the UTC calendar day used for the
// once-per-day gas consumption guard.
func GasDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
