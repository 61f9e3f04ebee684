package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"treasure-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CoinRepo implements ports.CoinRepository.
type CoinRepo struct {
	pool Pool
}

// NewCoinRepo creates a new CoinRepo.
func NewCoinRepo(pool Pool) *CoinRepo {
	return &CoinRepo{pool: pool}
}

const coinColumns = `id, kind, value, contribution, lat, lng, hider_id, collector_id, status, hidden_at, collected_at`

// Create inserts a new coin within a database transaction.
func (r *CoinRepo) Create(ctx context.Context, tx pgx.Tx, c *domain.Coin) error {
	query := `INSERT INTO coins (` + coinColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		c.ID, c.Kind, c.Value, c.Contribution, c.Location.Lat, c.Location.Lng,
		c.HiderID, c.CollectorID, c.Status, c.HiddenAt, c.CollectedAt,
	)
	if err != nil {
		return fmt.Errorf("insert coin: %w", err)
	}
	return nil
}

// GetByID fetches a coin by UUID (non-locking read).
func (r *CoinRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Coin, error) {
	query := `SELECT ` + coinColumns + ` FROM coins WHERE id = $1`

	return scanCoin(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a coin with pessimistic locking. Must be called
// within a transaction.
func (r *CoinRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Coin, error) {
	query := `SELECT ` + coinColumns + ` FROM coins WHERE id = $1 FOR UPDATE`

	return scanCoin(tx.QueryRow(ctx, query, id))
}

// MarkCollected transitions a VISIBLE coin to COLLECTED, freezing the value
// and recording the collector. The caller must hold the row lock.
func (r *CoinRepo) MarkCollected(ctx context.Context, tx pgx.Tx, coinID, collectorID uuid.UUID, value domain.Money, at time.Time) error {
	query := `UPDATE coins SET status = 'COLLECTED', value = $1, collector_id = $2, collected_at = $3
		WHERE id = $4 AND status = 'VISIBLE'`

	tag, err := tx.Exec(ctx, query, value, collectorID, at, coinID)
	if err != nil {
		return fmt.Errorf("mark coin collected: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("coin not visible: %s", coinID)
	}
	return nil
}

// ConfirmCollected flips COLLECTED coins to CONFIRMED within a database
// transaction.
func (r *CoinRepo) ConfirmCollected(ctx context.Context, tx pgx.Tx, coinIDs []uuid.UUID) error {
	if len(coinIDs) == 0 {
		return nil
	}
	query := `UPDATE coins SET status = 'CONFIRMED' WHERE id = ANY($1) AND status = 'COLLECTED'`

	_, err := tx.Exec(ctx, query, coinIDs)
	if err != nil {
		return fmt.Errorf("confirm collected coins: %w", err)
	}
	return nil
}

// Delete removes a coin within a database transaction.
func (r *CoinRepo) Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `DELETE FROM coins WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete coin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("coin not found: %s", id)
	}
	return nil
}

// ListVisible fetches visible coins, newest first.
func (r *CoinRepo) ListVisible(ctx context.Context, limit int) ([]domain.Coin, error) {
	query := `SELECT ` + coinColumns + ` FROM coins WHERE status = 'VISIBLE'
		ORDER BY hidden_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list visible coins: %w", err)
	}
	defer rows.Close()

	return collectCoins(rows)
}

// ListByHider fetches all coins hidden by a player, newest first.
func (r *CoinRepo) ListByHider(ctx context.Context, hiderID uuid.UUID) ([]domain.Coin, error) {
	query := `SELECT ` + coinColumns + ` FROM coins WHERE hider_id = $1
		ORDER BY hidden_at DESC`

	rows, err := r.pool.Query(ctx, query, hiderID)
	if err != nil {
		return nil, fmt.Errorf("list coins by hider: %w", err)
	}
	defer rows.Close()

	return collectCoins(rows)
}

func collectCoins(rows pgx.Rows) ([]domain.Coin, error) {
	var coins []domain.Coin
	for rows.Next() {
		c := domain.Coin{}
		err := rows.Scan(
			&c.ID, &c.Kind, &c.Value, &c.Contribution, &c.Location.Lat, &c.Location.Lng,
			&c.HiderID, &c.CollectorID, &c.Status, &c.HiddenAt, &c.CollectedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan coin row: %w", err)
		}
		coins = append(coins, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coin rows: %w", err)
	}
	return coins, nil
}

func scanCoin(row pgx.Row) (*domain.Coin, error) {
	c := &domain.Coin{}
	err := row.Scan(
		&c.ID, &c.Kind, &c.Value, &c.Contribution, &c.Location.Lat, &c.Location.Lng,
		&c.HiderID, &c.CollectorID, &c.Status, &c.HiddenAt, &c.CollectedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan coin: %w", err)
	}
	return c, nil
}
