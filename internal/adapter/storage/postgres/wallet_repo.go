package postgres

import (
	"context"
	"errors"
	"fmt"

	"treasure-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

const walletColumns = `id, player_id, gas_tank, parked, pending, total, last_gas_day, created_at, updated_at`

// Create inserts a new wallet into the database.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (` + walletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.PlayerID, w.GasTank, w.Parked, w.Pending, w.Total,
		w.LastGasDay, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByPlayerID fetches a wallet by player ID (non-locking read).
func (r *WalletRepo) GetByPlayerID(ctx context.Context, playerID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE player_id = $1`

	return scanWallet(r.pool.QueryRow(ctx, query, playerID))
}

// GetByPlayerIDForUpdate fetches a wallet by player ID with pessimistic
// locking. Must be called within a transaction.
func (r *WalletRepo) GetByPlayerIDForUpdate(ctx context.Context, tx pgx.Tx, playerID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE player_id = $1 FOR UPDATE`

	return scanWallet(tx.QueryRow(ctx, query, playerID))
}

// UpdateBalances writes the buckets, total and last gas day within the
// locking transaction.
func (r *WalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	query := `UPDATE wallets
		SET gas_tank = $1, parked = $2, pending = $3, total = $4, last_gas_day = $5, updated_at = NOW()
		WHERE id = $6`

	tag, err := tx.Exec(ctx, query, w.GasTank, w.Parked, w.Pending, w.Total, w.LastGasDay, w.ID)
	if err != nil {
		return fmt.Errorf("update wallet balances: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", w.ID)
	}
	return nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.PlayerID, &w.GasTank, &w.Parked, &w.Pending, &w.Total,
		&w.LastGasDay, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan wallet: %w", err)
	}
	return w, nil
}
