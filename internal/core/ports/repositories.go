package ports

import (
	"context"
	"time"

	"treasure-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PlayerRepository defines persistence operations for players.
type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	GetByUsername(ctx context.Context, username string) (*domain.Player, error)
}

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByPlayerID(ctx context.Context, playerID uuid.UUID) (*domain.Wallet, error)
	GetByPlayerIDForUpdate(ctx context.Context, tx pgx.Tx, playerID uuid.UUID) (*domain.Wallet, error)
	// UpdateBalances writes the buckets, the recomputed total and the last
	// gas-consumption day. Must be called within the locking transaction.
	UpdateBalances(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
}

// TransactionRepository defines persistence for the append-only ledger.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	// PendingOlderThan locks and returns a player's PENDING entries created
	// before the cutoff.
	PendingOlderThan(ctx context.Context, tx pgx.Tx, playerID uuid.UUID, cutoff time.Time) ([]domain.Transaction, error)
	// Confirm flips the given entries to CONFIRMED.
	Confirm(ctx context.Context, tx pgx.Tx, ids []uuid.UUID, confirmedAt time.Time) error
	// List returns a player's ledger entries with filters and pagination.
	List(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
}

// TransactionListParams holds filter + pagination for listing ledger entries.
type TransactionListParams struct {
	PlayerID uuid.UUID
	Kind     *domain.TransactionKind
	Status   *domain.TransactionStatus
	From     *int64 // Unix timestamp
	To       *int64 // Unix timestamp
	Page     int
	PageSize int
}

// CoinRepository defines persistence operations for hidden coins.
type CoinRepository interface {
	Create(ctx context.Context, tx pgx.Tx, coin *domain.Coin) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Coin, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Coin, error)
	// MarkCollected transitions VISIBLE -> COLLECTED, freezing the value and
	// recording the collector. The caller must hold the row lock.
	MarkCollected(ctx context.Context, tx pgx.Tx, coinID, collectorID uuid.UUID, value domain.Money, at time.Time) error
	// ConfirmCollected flips COLLECTED -> CONFIRMED for bookkeeping.
	ConfirmCollected(ctx context.Context, tx pgx.Tx, coinIDs []uuid.UUID) error
	// Delete removes a coin (retrieval by hider).
	Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
	ListVisible(ctx context.Context, limit int) ([]domain.Coin, error)
	ListByHider(ctx context.Context, hiderID uuid.UUID) ([]domain.Coin, error)
}

// ProgressRepository defines persistence for find limits and find history.
type ProgressRepository interface {
	CreateFindLimit(ctx context.Context, state *domain.FindLimitState) error
	GetFindLimit(ctx context.Context, playerID uuid.UUID) (*domain.FindLimitState, error)
	GetFindLimitForUpdate(ctx context.Context, tx pgx.Tx, playerID uuid.UUID) (*domain.FindLimitState, error)
	UpdateFindLimit(ctx context.Context, tx pgx.Tx, state *domain.FindLimitState) error
	// AppendFind records a collected value, trims the player's history to
	// domain.HistoryWindow entries and bumps the lifetime counters.
	AppendFind(ctx context.Context, tx pgx.Tx, record *domain.FindRecord) error
	// RecentFindValues returns up to n of the player's most recent collected
	// values, newest first, read inside the given transaction.
	RecentFindValues(ctx context.Context, tx pgx.Tx, playerID uuid.UUID, n int) ([]domain.Money, error)
	RecentFinds(ctx context.Context, playerID uuid.UUID, n int) ([]domain.FindRecord, error)
	GetStats(ctx context.Context, playerID uuid.UUID) (*domain.FindStats, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
