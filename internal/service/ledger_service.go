package service

import (
	"context"
	"fmt"
	"time"

	"treasure-engine/internal/core/domain"
	"treasure-engine/internal/core/ports"
	"treasure-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// PendingWindow is the fraud/verification hold on collected values before
// they become spendable.
const PendingWindow = 24 * time.Hour

// LedgerServiceImpl implements ports.LedgerService with pessimistic locking.
type LedgerServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	coinRepo   ports.CoinRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	coinRepo ports.CoinRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		coinRepo:   coinRepo,
		transactor: transactor,
		log:        log,
	}
}

// lockWallet fetches a player's wallet with the row lock held.
func lockWallet(ctx context.Context, repo ports.WalletRepository, tx pgx.Tx, playerID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := repo.GetByPlayerIDForUpdate(ctx, tx, playerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return wallet, nil
}

// commitWallet verifies the ledger invariant and persists the wallet. A
// failed invariant aborts the whole mutation; nothing partial is written.
func commitWallet(ctx context.Context, repo ports.WalletRepository, tx pgx.Tx, wallet *domain.Wallet) error {
	wallet.Recompute()
	if err := wallet.CheckConsistent(); err != nil {
		return apperror.ErrLedgerInconsistent(err)
	}
	if err := repo.UpdateBalances(ctx, tx, wallet); err != nil {
		return apperror.InternalError(fmt.Errorf("update balances: %w", err))
	}
	return nil
}

// Topup credits the gas tank. In production this is driven by a verified
// store purchase; the receipt check lives outside the engine.
func (s *LedgerServiceImpl) Topup(ctx context.Context, playerID uuid.UUID, amount domain.Money) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount(amount)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := lockWallet(ctx, s.walletRepo, dbTx, playerID)
	if err != nil {
		return nil, err
	}

	wallet.GasTank += amount

	if err := commitWallet(ctx, s.walletRepo, dbTx, wallet); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:          uuid.New(),
		PlayerID:    playerID,
		WalletID:    wallet.ID,
		Kind:        domain.TransactionKindTopup,
		Amount:      amount,
		Status:      domain.TransactionStatusConfirmed,
		Description: fmt.Sprintf("Gas topup %s", domain.FormatMoney(amount)),
		CreatedAt:   now,
		ConfirmedAt: &now,
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("player_id", playerID.String()).
		Int64("amount", amount).
		Msg("topup credited")

	return txn, nil
}

// Park moves amount from the gas tank into the parked bucket. No fee.
func (s *LedgerServiceImpl) Park(ctx context.Context, playerID uuid.UUID, amount domain.Money) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount(amount)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := lockWallet(ctx, s.walletRepo, dbTx, playerID)
	if err != nil {
		return nil, err
	}

	if wallet.GasTank < amount {
		return nil, apperror.ErrInsufficientFunds("gasTank", wallet.GasTank, amount)
	}
	wallet.GasTank -= amount
	wallet.Parked += amount

	if err := commitWallet(ctx, s.walletRepo, dbTx, wallet); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:          uuid.New(),
		PlayerID:    playerID,
		WalletID:    wallet.ID,
		Kind:        domain.TransactionKindPark,
		Amount:      amount,
		Status:      domain.TransactionStatusConfirmed,
		Description: fmt.Sprintf("Parked %s", domain.FormatMoney(amount)),
		CreatedAt:   now,
		ConfirmedAt: &now,
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return txn, nil
}

// Unpark moves amount back into the gas tank and charges one daily gas fee
// on the way out. The net credit is amount - fee, floored at zero; the fee
// reduces the wallet total. Emits an UNPARK move entry plus a GAS_CONSUMED
// debit for the fee.
func (s *LedgerServiceImpl) Unpark(ctx context.Context, playerID uuid.UUID, amount domain.Money) (*ports.UnparkResult, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount(amount)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := lockWallet(ctx, s.walletRepo, dbTx, playerID)
	if err != nil {
		return nil, err
	}

	if wallet.Parked < amount {
		return nil, apperror.ErrInsufficientFunds("parked", wallet.Parked, amount)
	}

	fee := domain.DailyGasRate
	if fee > amount {
		fee = amount
	}
	credited := amount - fee

	wallet.Parked -= amount
	wallet.GasTank += credited

	if err := commitWallet(ctx, s.walletRepo, dbTx, wallet); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	moveTxn := &domain.Transaction{
		ID:          uuid.New(),
		PlayerID:    playerID,
		WalletID:    wallet.ID,
		Kind:        domain.TransactionKindUnpark,
		Amount:      amount,
		Status:      domain.TransactionStatusConfirmed,
		Description: fmt.Sprintf("Unparked %s", domain.FormatMoney(amount)),
		CreatedAt:   now,
		ConfirmedAt: &now,
	}
	if err := s.txRepo.Create(ctx, dbTx, moveTxn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create unpark transaction: %w", err))
	}

	feeTxn := &domain.Transaction{
		ID:          uuid.New(),
		PlayerID:    playerID,
		WalletID:    wallet.ID,
		Kind:        domain.TransactionKindGas,
		Amount:      -fee,
		Status:      domain.TransactionStatusConfirmed,
		Description: fmt.Sprintf("Unpark gas fee %s", domain.FormatMoney(fee)),
		CreatedAt:   now,
		ConfirmedAt: &now,
	}
	if err := s.txRepo.Create(ctx, dbTx, feeTxn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create fee transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("player_id", playerID.String()).
		Int64("moved", amount).
		Int64("fee", fee).
		Msg("unparked with gas fee")

	return &ports.UnparkResult{Moved: amount, Fee: fee, Credited: credited}, nil
}

// SettlePending confirms every PENDING ledger entry older than the 24h
// window, moving the summed value from the pending bucket into the gas tank
// and flipping the related coins to CONFIRMED. Running it twice in the same
// window settles nothing the second time.
func (s *LedgerServiceImpl) SettlePending(ctx context.Context, playerID uuid.UUID) (*ports.SettleResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := lockWallet(ctx, s.walletRepo, dbTx, playerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cutoff := now.Add(-PendingWindow)

	pending, err := s.txRepo.PendingOlderThan(ctx, dbTx, playerID, cutoff)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list pending: %w", err))
	}
	if len(pending) == 0 {
		return &ports.SettleResult{}, nil
	}

	var settled domain.Money
	ids := make([]uuid.UUID, 0, len(pending))
	coinIDs := make([]uuid.UUID, 0, len(pending))
	for _, txn := range pending {
		settled += txn.Amount
		ids = append(ids, txn.ID)
		if txn.RelatedCoinID != nil {
			coinIDs = append(coinIDs, *txn.RelatedCoinID)
		}
	}

	if wallet.Pending < settled {
		return nil, apperror.ErrLedgerInconsistent(
			fmt.Errorf("wallet %s: pending bucket %d < settleable %d", wallet.ID, wallet.Pending, settled))
	}
	wallet.Pending -= settled
	wallet.GasTank += settled

	if err := commitWallet(ctx, s.walletRepo, dbTx, wallet); err != nil {
		return nil, err
	}

	if err := s.txRepo.Confirm(ctx, dbTx, ids, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("confirm transactions: %w", err))
	}

	if len(coinIDs) > 0 {
		if err := s.coinRepo.ConfirmCollected(ctx, dbTx, coinIDs); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("confirm coins: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("player_id", playerID.String()).
		Int64("settled", settled).
		Int("count", len(ids)).
		Msg("pending values settled")

	return &ports.SettleResult{Settled: settled, Count: len(ids)}, nil
}

// GetSummary returns the wallet with its derived gas status.
func (s *LedgerServiceImpl) GetSummary(ctx context.Context, playerID uuid.UUID) (*ports.WalletSummary, error) {
	wallet, err := s.walletRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return &ports.WalletSummary{
		Wallet:    wallet,
		GasStatus: domain.GasStatusFor(wallet.GasTank),
	}, nil
}

// ListTransactions returns a page of the player's ledger.
func (s *LedgerServiceImpl) ListTransactions(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	txns, total, err := s.txRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return txns, total, nil
}
