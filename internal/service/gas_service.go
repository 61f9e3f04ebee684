package service

import (
	"context"
	"fmt"
	"time"

	"treasure-engine/internal/core/domain"
	"treasure-engine/internal/core/ports"
	"treasure-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// GasServiceImpl implements ports.GasService.
type GasServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
	now        func() time.Time
}

// NewGasService creates a new GasServiceImpl.
func NewGasService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *GasServiceImpl {
	return &GasServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		transactor: transactor,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// RunDailyConsumption decrements the gas tank by the daily rate, floored at
// zero, at most once per UTC calendar day. The guard is the wallet's
// persisted last-gas day, checked under the row lock, which makes redundant
// invocations from app launches and timers safe.
func (s *GasServiceImpl) RunDailyConsumption(ctx context.Context, playerID uuid.UUID) (*ports.GasRunResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := lockWallet(ctx, s.walletRepo, dbTx, playerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := domain.GasDay(now)
	if wallet.LastGasDay != nil && *wallet.LastGasDay == today {
		return &ports.GasRunResult{
			Ran:    false,
			Status: domain.GasStatusFor(wallet.GasTank),
		}, nil
	}

	consumed := domain.DailyGasRate
	if consumed > wallet.GasTank {
		consumed = wallet.GasTank
	}

	wallet.GasTank -= consumed
	wallet.LastGasDay = &today

	if err := commitWallet(ctx, s.walletRepo, dbTx, wallet); err != nil {
		return nil, err
	}

	// A transaction is written only when gas was actually consumed; the
	// guard date update alone is not a ledger event.
	if consumed > 0 {
		txn := &domain.Transaction{
			ID:          uuid.New(),
			PlayerID:    playerID,
			WalletID:    wallet.ID,
			Kind:        domain.TransactionKindGas,
			Amount:      -consumed,
			Status:      domain.TransactionStatusConfirmed,
			Description: fmt.Sprintf("Daily gas %s", domain.FormatMoney(consumed)),
			CreatedAt:   now,
			ConfirmedAt: &now,
		}
		if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create gas transaction: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	status := domain.GasStatusFor(wallet.GasTank)
	if status.IsEmpty {
		s.log.Warn().Str("player_id", playerID.String()).Msg("gas tank empty after daily consumption")
	}

	return &ports.GasRunResult{Consumed: consumed, Ran: true, Status: status}, nil
}

// Status returns the derived fuel gauge without mutating anything.
func (s *GasServiceImpl) Status(ctx context.Context, playerID uuid.UUID) (*domain.GasStatus, error) {
	wallet, err := s.walletRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	status := domain.GasStatusFor(wallet.GasTank)
	return &status, nil
}
