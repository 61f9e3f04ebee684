package service

import (
	"context"
	"fmt"
	"time"

	"treasure-engine/internal/core/domain"
	"treasure-engine/internal/core/ports"
	"treasure-engine/pkg/apperror"

	"github.com/google/uuid"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	playerRepo   ports.PlayerRepository
	walletRepo   ports.WalletRepository
	progressRepo ports.ProgressRepository
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	playerRepo ports.PlayerRepository,
	walletRepo ports.WalletRepository,
	progressRepo ports.ProgressRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		playerRepo:   playerRepo,
		walletRepo:   walletRepo,
		progressRepo: progressRepo,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
	}
}

// Register creates a new player account with a zero-balance wallet and the
// default find limit.
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*ports.RegisterResponse, error) {
	existing, err := s.playerRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	now := time.Now().UTC()
	player := &domain.Player{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		Status:       domain.PlayerStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create player: %w", err))
	}

	// Wallet starts with every bucket at zero.
	if err := s.walletRepo.Create(ctx, domain.NewWallet(player.ID, now)); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	if err := s.progressRepo.CreateFindLimit(ctx, domain.NewFindLimitState(player.ID, now)); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create find limit: %w", err))
	}

	return &ports.RegisterResponse{
		PlayerID: player.ID,
		Username: player.Username,
	}, nil
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	player, err := s.playerRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find player: %w", err))
	}
	if player == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, player.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	if !player.IsActive() {
		return "", time.Time{}, apperror.ErrPlayerSuspended()
	}

	token, expiry, err := s.tokenSvc.Generate(player.ID)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
