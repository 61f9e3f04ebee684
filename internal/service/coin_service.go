package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"treasure-engine/internal/core/domain"
	"treasure-engine/internal/core/ports"
	"treasure-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// collectLockTTL bounds how long the Redis fast-path lock can stick around
// if a collector dies mid-attempt.
const collectLockTTL = 5 * time.Second

// CoinServiceImpl implements ports.CoinService: the coin lifecycle, the
// collection validator and the pool payout draw.
type CoinServiceImpl struct {
	coinRepo     ports.CoinRepository
	walletRepo   ports.WalletRepository
	txRepo       ports.TransactionRepository
	progressRepo ports.ProgressRepository
	lockStore    ports.CoinLockStore
	transactor   ports.DBTransactor
	log          zerolog.Logger

	mu   sync.Mutex
	rand *rand.Rand
}

// NewCoinService creates a new CoinServiceImpl. lockStore may be nil, in
// which case collection relies solely on the database row lock.
func NewCoinService(
	coinRepo ports.CoinRepository,
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	progressRepo ports.ProgressRepository,
	lockStore ports.CoinLockStore,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *CoinServiceImpl {
	return &CoinServiceImpl{
		coinRepo:     coinRepo,
		walletRepo:   walletRepo,
		txRepo:       txRepo,
		progressRepo: progressRepo,
		lockStore:    lockStore,
		transactor:   transactor,
		log:          log,
		rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// roll draws a uniform float in [0,1) under the service's rand lock.
func (s *CoinServiceImpl) roll() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.Float64()
}

// Hide debits the hider's gas tank by the contribution, creates the coin in
// VISIBLE status and feeds the hider's find limit. A rejected hide is a
// complete no-op.
func (s *CoinServiceImpl) Hide(ctx context.Context, req ports.HideRequest) (*domain.Coin, error) {
	if req.Contribution <= 0 {
		return nil, apperror.ErrInvalidAmount(req.Contribution)
	}
	if req.Kind != domain.CoinKindFixed && req.Kind != domain.CoinKindPool {
		return nil, apperror.Validation(fmt.Sprintf("unknown coin kind: %s", req.Kind))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := lockWallet(ctx, s.walletRepo, dbTx, req.PlayerID)
	if err != nil {
		return nil, err
	}

	if wallet.GasTank < req.Contribution {
		return nil, apperror.ErrInsufficientFunds("gasTank", wallet.GasTank, req.Contribution)
	}
	wallet.GasTank -= req.Contribution

	if err := commitWallet(ctx, s.walletRepo, dbTx, wallet); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	coin := &domain.Coin{
		ID:           uuid.New(),
		Kind:         req.Kind,
		Contribution: req.Contribution,
		Location:     req.Location,
		HiderID:      req.PlayerID,
		Status:       domain.CoinStatusVisible,
		HiddenAt:     now,
	}
	if req.Kind == domain.CoinKindFixed {
		value := req.Contribution
		coin.Value = &value
	}
	if err := s.coinRepo.Create(ctx, dbTx, coin); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create coin: %w", err))
	}

	// Feed the find-limit tracker; only contributions raise the limit.
	limit, err := s.progressRepo.GetFindLimitForUpdate(ctx, dbTx, req.PlayerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock find limit: %w", err))
	}
	if limit == nil {
		limit = domain.NewFindLimitState(req.PlayerID, now)
	}
	if limit.Raise(req.Contribution, now) {
		if err := s.progressRepo.UpdateFindLimit(ctx, dbTx, limit); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update find limit: %w", err))
		}
	}

	txn := &domain.Transaction{
		ID:            uuid.New(),
		PlayerID:      req.PlayerID,
		WalletID:      wallet.ID,
		Kind:          domain.TransactionKindHide,
		Amount:        -req.Contribution,
		Status:        domain.TransactionStatusConfirmed,
		RelatedCoinID: &coin.ID,
		Description:   fmt.Sprintf("Hid %s coin for %s", req.Kind, domain.FormatMoney(req.Contribution)),
		CreatedAt:     now,
		ConfirmedAt:   &now,
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create hide transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("coin_id", coin.ID.String()).
		Str("hider_id", req.PlayerID.String()).
		Str("kind", string(req.Kind)).
		Int64("contribution", req.Contribution).
		Msg("coin hidden")

	return coin, nil
}

// AttemptCollect runs the collection validator and, on acceptance, applies
// the VISIBLE -> COLLECTED transition together with the pending wallet
// credit as one atomic unit. Checks run in fixed precedence order so a
// rejection always reports the first failing rule.
func (s *CoinServiceImpl) AttemptCollect(ctx context.Context, req ports.CollectRequest) (*ports.CollectResult, error) {
	// Fast path: a held lock means another collector is mid-attempt on this
	// exact coin. Redis being down never blocks collection; the row lock
	// below is the authoritative guarantee.
	if s.lockStore != nil {
		acquired, err := s.lockStore.Acquire(ctx, req.CoinID.String(), collectLockTTL)
		if err != nil {
			s.log.Warn().Err(err).Str("coin_id", req.CoinID.String()).Msg("coin lock store error, falling through to row lock")
		} else if !acquired {
			return nil, apperror.ErrAlreadyCollected()
		} else {
			defer func() {
				if err := s.lockStore.Release(context.Background(), req.CoinID.String()); err != nil {
					s.log.Warn().Err(err).Str("coin_id", req.CoinID.String()).Msg("failed to release coin lock")
				}
			}()
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := lockWallet(ctx, s.walletRepo, dbTx, req.PlayerID)
	if err != nil {
		return nil, err
	}

	// Check 1: the collector must have gas.
	if wallet.GasTank <= 0 {
		return nil, apperror.ErrNoGas()
	}

	coin, err := s.coinRepo.GetByIDForUpdate(ctx, dbTx, req.CoinID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock coin: %w", err))
	}
	if coin == nil {
		return nil, apperror.ErrCoinNotFound()
	}

	// Check 2: the coin must still be visible.
	if !coin.IsCollectable() {
		return nil, apperror.ErrAlreadyCollected()
	}

	// Check 3: the collector must be within the collection radius.
	distance := req.Position.DistanceMeters(coin.Location)
	if distance > domain.CollectRadiusMeters {
		return nil, apperror.ErrTooFar(distance, domain.CollectRadiusMeters)
	}

	limit, err := s.progressRepo.GetFindLimit(ctx, req.PlayerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get find limit: %w", err))
	}
	findLimit := domain.DefaultFindLimit
	if limit != nil {
		findLimit = limit.Limit
	}

	// Check 4: fixed coins only — the value must fit the collector's find
	// limit. Pool coins bypass this; their value does not exist yet.
	var value domain.Money
	var streak domain.StreakClass
	switch coin.Kind {
	case domain.CoinKindFixed:
		value = *coin.Value
		if value > findLimit {
			return nil, apperror.ErrOverLimit(value, findLimit)
		}
	case domain.CoinKindPool:
		// The payout is computed at this exact moment, from the finder's
		// recent history, and then frozen onto the coin.
		recent, err := s.progressRepo.RecentFindValues(ctx, dbTx, req.PlayerID, domain.HistoryWindow)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("recent finds: %w", err))
		}
		value, streak = domain.PoolPayout(recent, s.roll)
	}

	now := time.Now().UTC()
	if err := s.coinRepo.MarkCollected(ctx, dbTx, coin.ID, req.PlayerID, value, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark collected: %w", err))
	}

	wallet.Pending += value
	if err := commitWallet(ctx, s.walletRepo, dbTx, wallet); err != nil {
		return nil, err
	}

	record := &domain.FindRecord{
		ID:        uuid.New(),
		PlayerID:  req.PlayerID,
		CoinID:    coin.ID,
		Value:     value,
		CreatedAt: now,
	}
	if err := s.progressRepo.AppendFind(ctx, dbTx, record); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append find: %w", err))
	}

	txn := &domain.Transaction{
		ID:            uuid.New(),
		PlayerID:      req.PlayerID,
		WalletID:      wallet.ID,
		Kind:          domain.TransactionKindCollect,
		Amount:        value,
		Status:        domain.TransactionStatusPending,
		RelatedCoinID: &coin.ID,
		Description:   fmt.Sprintf("Collected %s coin worth %s", coin.Kind, domain.FormatMoney(value)),
		CreatedAt:     now,
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create collect transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	coin.Status = domain.CoinStatusCollected
	coin.Value = &value
	coin.CollectorID = &req.PlayerID
	coin.CollectedAt = &now

	s.log.Info().
		Str("coin_id", coin.ID.String()).
		Str("collector_id", req.PlayerID.String()).
		Int64("value", value).
		Str("streak", string(streak)).
		Msg("coin collected")

	return &ports.CollectResult{Coin: coin, Value: value, StreakClass: streak}, nil
}

// Retrieve lets the original hider reclaim a still-visible coin. The
// contribution returns to the gas tank and the coin is destroyed. The find
// limit does not revert.
func (s *CoinServiceImpl) Retrieve(ctx context.Context, coinID, playerID uuid.UUID) (*domain.Coin, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := lockWallet(ctx, s.walletRepo, dbTx, playerID)
	if err != nil {
		return nil, err
	}

	coin, err := s.coinRepo.GetByIDForUpdate(ctx, dbTx, coinID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock coin: %w", err))
	}
	if coin == nil {
		return nil, apperror.ErrCoinNotFound()
	}
	if coin.HiderID != playerID {
		return nil, apperror.ErrNotOwner()
	}
	if !coin.IsCollectable() {
		return nil, apperror.ErrAlreadyCollected()
	}

	wallet.GasTank += coin.Contribution
	if err := commitWallet(ctx, s.walletRepo, dbTx, wallet); err != nil {
		return nil, err
	}

	if err := s.coinRepo.Delete(ctx, dbTx, coin.ID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("delete coin: %w", err))
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:            uuid.New(),
		PlayerID:      playerID,
		WalletID:      wallet.ID,
		Kind:          domain.TransactionKindRetrieve,
		Amount:        coin.Contribution,
		Status:        domain.TransactionStatusConfirmed,
		RelatedCoinID: &coin.ID,
		Description:   fmt.Sprintf("Retrieved coin, %s returned", domain.FormatMoney(coin.Contribution)),
		CreatedAt:     now,
		ConfirmedAt:   &now,
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create retrieve transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("coin_id", coin.ID.String()).
		Str("hider_id", playerID.String()).
		Int64("contribution", coin.Contribution).
		Msg("coin retrieved by hider")

	return coin, nil
}

// Get fetches a single coin.
func (s *CoinServiceImpl) Get(ctx context.Context, coinID uuid.UUID) (*domain.Coin, error) {
	coin, err := s.coinRepo.GetByID(ctx, coinID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get coin: %w", err))
	}
	if coin == nil {
		return nil, apperror.ErrCoinNotFound()
	}
	return coin, nil
}

// ListVisible returns currently discoverable coins for display.
func (s *CoinServiceImpl) ListVisible(ctx context.Context, limit int) ([]domain.Coin, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	coins, err := s.coinRepo.ListVisible(ctx, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list coins: %w", err))
	}
	return coins, nil
}
