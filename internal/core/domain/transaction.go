package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind represents the kind of ledger movement.
type TransactionKind string

const (
	TransactionKindTopup    TransactionKind = "TOPUP"
	TransactionKindHide     TransactionKind = "HIDE"
	TransactionKindCollect  TransactionKind = "COLLECT"
	TransactionKindRetrieve TransactionKind = "RETRIEVE"
	TransactionKindPark     TransactionKind = "PARK"
	TransactionKindUnpark   TransactionKind = "UNPARK"
	TransactionKindGas      TransactionKind = "GAS_CONSUMED"
)

// TransactionStatus represents the lifecycle state of a ledger entry.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusConfirmed TransactionStatus = "CONFIRMED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// Transaction is an immutable, append-only ledger entry. Amount is signed:
// positive for credits, negative for debits. For the bucket-move kinds
// (PARK, UNPARK) the amount records the moved sum and the entry has no
// effect on the wallet total; see TotalDelta.
type Transaction struct {
	ID            uuid.UUID         `json:"id"`
	PlayerID      uuid.UUID         `json:"player_id"`
	WalletID      uuid.UUID         `json:"wallet_id"`
	Kind          TransactionKind   `json:"kind"`
	Amount        Money             `json:"amount"`
	Status        TransactionStatus `json:"status"`
	RelatedCoinID *uuid.UUID        `json:"related_coin_id,omitempty"`
	Description   string            `json:"description,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	ConfirmedAt   *time.Time        `json:"confirmed_at,omitempty"`
}

// TotalDelta returns the entry's signed effect on the wallet total. Bucket
// moves net to zero; everything else contributes its amount. The sum of
// TotalDelta over a player's confirmed and pending entries must equal the
// wallet total at all times.
func (t *Transaction) TotalDelta() Money {
	switch t.Kind {
	case TransactionKindPark, TransactionKindUnpark:
		return 0
	default:
		return t.Amount
	}
}

// IsTerminal returns true if the entry is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusConfirmed || t.Status == TransactionStatusFailed
}
