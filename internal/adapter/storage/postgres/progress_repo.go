package postgres

import (
	"context"
	"errors"
	"fmt"

	"treasure-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProgressRepo implements ports.ProgressRepository. It owns two tables:
// find_limits (one row per player, with lifetime counters) and find_history
// (bounded recent finds).
type ProgressRepo struct {
	pool Pool
}

// NewProgressRepo creates a new ProgressRepo.
func NewProgressRepo(pool Pool) *ProgressRepo {
	return &ProgressRepo{pool: pool}
}

// CreateFindLimit inserts the initial find-limit row for a new player.
func (r *ProgressRepo) CreateFindLimit(ctx context.Context, state *domain.FindLimitState) error {
	query := `INSERT INTO find_limits (player_id, find_limit, total_finds, total_value, updated_at)
		VALUES ($1, $2, 0, 0, $3)`

	_, err := r.pool.Exec(ctx, query, state.PlayerID, state.Limit, state.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert find limit: %w", err)
	}
	return nil
}

// GetFindLimit fetches a player's find-limit state (non-locking read).
func (r *ProgressRepo) GetFindLimit(ctx context.Context, playerID uuid.UUID) (*domain.FindLimitState, error) {
	query := `SELECT player_id, find_limit, updated_at FROM find_limits WHERE player_id = $1`

	return scanFindLimit(r.pool.QueryRow(ctx, query, playerID))
}

// GetFindLimitForUpdate fetches a player's find-limit state with pessimistic
// locking. Must be called within a transaction.
func (r *ProgressRepo) GetFindLimitForUpdate(ctx context.Context, tx pgx.Tx, playerID uuid.UUID) (*domain.FindLimitState, error) {
	query := `SELECT player_id, find_limit, updated_at FROM find_limits WHERE player_id = $1 FOR UPDATE`

	return scanFindLimit(tx.QueryRow(ctx, query, playerID))
}

// UpdateFindLimit writes a raised limit within the locking transaction.
func (r *ProgressRepo) UpdateFindLimit(ctx context.Context, tx pgx.Tx, state *domain.FindLimitState) error {
	query := `UPDATE find_limits SET find_limit = $1, updated_at = $2 WHERE player_id = $3`

	tag, err := tx.Exec(ctx, query, state.Limit, state.UpdatedAt, state.PlayerID)
	if err != nil {
		return fmt.Errorf("update find limit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("find limit not found: %s", state.PlayerID)
	}
	return nil
}

// AppendFind records a collected value, trims the player's history to the
// retention window and bumps the lifetime counters.
func (r *ProgressRepo) AppendFind(ctx context.Context, tx pgx.Tx, record *domain.FindRecord) error {
	insert := `INSERT INTO find_history (id, player_id, coin_id, value, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, insert, record.ID, record.PlayerID, record.CoinID, record.Value, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert find record: %w", err)
	}

	trim := `DELETE FROM find_history WHERE player_id = $1 AND id NOT IN (
		SELECT id FROM find_history WHERE player_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2)`

	if _, err := tx.Exec(ctx, trim, record.PlayerID, domain.HistoryWindow); err != nil {
		return fmt.Errorf("trim find history: %w", err)
	}

	bump := `UPDATE find_limits SET total_finds = total_finds + 1, total_value = total_value + $1
		WHERE player_id = $2`

	if _, err := tx.Exec(ctx, bump, record.Value, record.PlayerID); err != nil {
		return fmt.Errorf("bump find counters: %w", err)
	}
	return nil
}

// RecentFindValues returns up to n of the player's most recent collected
// values, newest first, read inside the given transaction.
func (r *ProgressRepo) RecentFindValues(ctx context.Context, tx pgx.Tx, playerID uuid.UUID, n int) ([]domain.Money, error) {
	query := `SELECT value FROM find_history WHERE player_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2`

	rows, err := tx.Query(ctx, query, playerID, n)
	if err != nil {
		return nil, fmt.Errorf("query recent find values: %w", err)
	}
	defer rows.Close()

	var values []domain.Money
	for rows.Next() {
		var v domain.Money
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan find value: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate find values: %w", err)
	}
	return values, nil
}

// RecentFinds returns up to n of the player's most recent find records,
// newest first.
func (r *ProgressRepo) RecentFinds(ctx context.Context, playerID uuid.UUID, n int) ([]domain.FindRecord, error) {
	query := `SELECT id, player_id, coin_id, value, created_at FROM find_history
		WHERE player_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, playerID, n)
	if err != nil {
		return nil, fmt.Errorf("query recent finds: %w", err)
	}
	defer rows.Close()

	var records []domain.FindRecord
	for rows.Next() {
		rec := domain.FindRecord{}
		if err := rows.Scan(&rec.ID, &rec.PlayerID, &rec.CoinID, &rec.Value, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan find record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate find records: %w", err)
	}
	return records, nil
}

// GetStats retrieves the player's lifetime find counters.
func (r *ProgressRepo) GetStats(ctx context.Context, playerID uuid.UUID) (*domain.FindStats, error) {
	query := `SELECT player_id, total_finds, total_value FROM find_limits WHERE player_id = $1`

	stats := &domain.FindStats{}
	err := r.pool.QueryRow(ctx, query, playerID).Scan(&stats.PlayerID, &stats.TotalFinds, &stats.TotalValue)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get find stats: %w", err)
	}
	return stats, nil
}

func scanFindLimit(row pgx.Row) (*domain.FindLimitState, error) {
	s := &domain.FindLimitState{}
	err := row.Scan(&s.PlayerID, &s.Limit, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan find limit: %w", err)
	}
	return s, nil
}
