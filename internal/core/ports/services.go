package ports

import (
	"context"
	"time"

	"treasure-engine/internal/core/domain"

	"github.com/google/uuid"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(playerID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	PlayerID uuid.UUID
}

// CoinLockStore is the Redis fast-path lock taken around a collection
// attempt. The database row lock remains the authoritative guarantee; this
// lock only short-circuits obviously concurrent collectors.
type CoinLockStore interface {
	// Acquire atomically takes the lock for a coin id. Returns true if the
	// lock was free, false if another collector holds it.
	Acquire(ctx context.Context, coinID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, coinID string) error
}

// --- Service Ports (Business Logic) ---

// AuthService defines player authentication business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for player registration.
type RegisterRequest struct {
	Username string
	Password string
}

// RegisterResponse holds the registration result.
type RegisterResponse struct {
	PlayerID uuid.UUID
	Username string
}

// WalletSummary is the full wallet view handed to the presentation layer.
type WalletSummary struct {
	Wallet    *domain.Wallet
	GasStatus domain.GasStatus
}

// UnparkResult reports the outcome of an unpark operation.
type UnparkResult struct {
	Moved    domain.Money // amount taken out of the parked bucket
	Fee      domain.Money // daily gas fee charged on the way out
	Credited domain.Money // net amount that reached the gas tank
}

// SettleResult reports the outcome of a pending settlement run.
type SettleResult struct {
	Settled domain.Money // sum moved from pending to gas tank
	Count   int          // number of ledger entries confirmed
}

// LedgerService defines wallet ledger business logic. Every mutation is
// atomic with respect to a single player's wallet.
type LedgerService interface {
	Topup(ctx context.Context, playerID uuid.UUID, amount domain.Money) (*domain.Transaction, error)
	Park(ctx context.Context, playerID uuid.UUID, amount domain.Money) (*domain.Transaction, error)
	Unpark(ctx context.Context, playerID uuid.UUID, amount domain.Money) (*UnparkResult, error)
	// SettlePending confirms all pending entries older than the 24h window.
	// Idempotent: a second run in the same window settles nothing.
	SettlePending(ctx context.Context, playerID uuid.UUID) (*SettleResult, error)
	GetSummary(ctx context.Context, playerID uuid.UUID) (*WalletSummary, error)
	ListTransactions(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
}

// GasRunResult reports a daily gas consumption run.
type GasRunResult struct {
	Consumed domain.Money // 0 when the guard skipped the run
	Ran      bool         // false if already run today
	Status   domain.GasStatus
}

// GasService defines the idempotent daily gas decrement.
type GasService interface {
	// RunDailyConsumption decrements the gas tank by the daily rate, at most
	// once per UTC calendar day per player. Safe to invoke redundantly.
	RunDailyConsumption(ctx context.Context, playerID uuid.UUID) (*GasRunResult, error)
	Status(ctx context.Context, playerID uuid.UUID) (*domain.GasStatus, error)
}

// HideRequest holds validated input for hiding a coin. A fixed coin's value
// is its contribution; pool coins get a value only at collection.
type HideRequest struct {
	PlayerID     uuid.UUID
	Kind         domain.CoinKind
	Contribution domain.Money
	Location     domain.Location
}

// CollectRequest holds validated input for a collection attempt.
type CollectRequest struct {
	PlayerID uuid.UUID
	CoinID   uuid.UUID
	Position domain.Location
}

// CollectResult reports a successful collection.
type CollectResult struct {
	Coin        *domain.Coin
	Value       domain.Money
	StreakClass domain.StreakClass // empty for fixed coins
}

// CoinService defines the coin lifecycle business logic.
type CoinService interface {
	Hide(ctx context.Context, req HideRequest) (*domain.Coin, error)
	AttemptCollect(ctx context.Context, req CollectRequest) (*CollectResult, error)
	Retrieve(ctx context.Context, coinID, playerID uuid.UUID) (*domain.Coin, error)
	Get(ctx context.Context, coinID uuid.UUID) (*domain.Coin, error)
	ListVisible(ctx context.Context, limit int) ([]domain.Coin, error)
}

// PlayerProgress is the display view of a player's find-limit progression.
type PlayerProgress struct {
	Limit        domain.Money
	Tier         domain.Tier
	TierProgress float64
	RecentFinds  []domain.FindRecord
	Stats        domain.FindStats
}

// ProgressService exposes find-limit, tier and history for display.
type ProgressService interface {
	GetProgress(ctx context.Context, playerID uuid.UUID) (*PlayerProgress, error)
}

// AuditService records audited player actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
