package service

import (
	"context"
	"fmt"

	"treasure-engine/internal/core/domain"
	"treasure-engine/internal/core/ports"
	"treasure-engine/pkg/apperror"

	"github.com/google/uuid"
)

// ProgressServiceImpl implements ports.ProgressService: the read side of the
// find-limit tracker for display.
type ProgressServiceImpl struct {
	progressRepo ports.ProgressRepository
}

// NewProgressService creates a new ProgressServiceImpl.
func NewProgressService(progressRepo ports.ProgressRepository) *ProgressServiceImpl {
	return &ProgressServiceImpl{progressRepo: progressRepo}
}

// GetProgress returns a player's find limit, tier, tier progress, recent
// finds and lifetime stats.
func (s *ProgressServiceImpl) GetProgress(ctx context.Context, playerID uuid.UUID) (*ports.PlayerProgress, error) {
	state, err := s.progressRepo.GetFindLimit(ctx, playerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get find limit: %w", err))
	}
	limit := domain.DefaultFindLimit
	if state != nil {
		limit = state.Limit
	}

	recent, err := s.progressRepo.RecentFinds(ctx, playerID, domain.HistoryWindow)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("recent finds: %w", err))
	}

	stats, err := s.progressRepo.GetStats(ctx, playerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find stats: %w", err))
	}
	if stats == nil {
		stats = &domain.FindStats{PlayerID: playerID}
	}

	return &ports.PlayerProgress{
		Limit:        limit,
		Tier:         domain.TierFor(limit),
		TierProgress: domain.TierProgress(limit),
		RecentFinds:  recent,
		Stats:        *stats,
	}, nil
}
