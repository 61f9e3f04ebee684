package postgres

import (
	"context"
	"errors"
	"fmt"

	"treasure-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PlayerRepo implements ports.PlayerRepository.
type PlayerRepo struct {
	pool Pool
}

// NewPlayerRepo creates a new PlayerRepo.
func NewPlayerRepo(pool Pool) *PlayerRepo {
	return &PlayerRepo{pool: pool}
}

// Create inserts a new player into the database.
func (r *PlayerRepo) Create(ctx context.Context, p *domain.Player) error {
	query := `INSERT INTO players (id, username, password_hash, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Username, p.PasswordHash, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

// GetByID fetches a player by its UUID.
func (r *PlayerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	query := `SELECT id, username, password_hash, status, created_at, updated_at
		FROM players WHERE id = $1`

	return r.scanPlayer(r.pool.QueryRow(ctx, query, id))
}

// GetByUsername fetches a player by username.
func (r *PlayerRepo) GetByUsername(ctx context.Context, username string) (*domain.Player, error) {
	query := `SELECT id, username, password_hash, status, created_at, updated_at
		FROM players WHERE username = $1`

	return r.scanPlayer(r.pool.QueryRow(ctx, query, username))
}

func (r *PlayerRepo) scanPlayer(row pgx.Row) (*domain.Player, error) {
	p := &domain.Player{}
	err := row.Scan(&p.ID, &p.Username, &p.PasswordHash, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan player: %w", err)
	}
	return p, nil
}
