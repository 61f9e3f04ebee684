package service

import (
	"context"
	"testing"
	"time"

	"treasure-engine/internal/core/domain"
	"treasure-engine/internal/core/ports"
	"treasure-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type coinTestDeps struct {
	svc          *CoinServiceImpl
	coinRepo     *mocks.MockCoinRepository
	walletRepo   *mocks.MockWalletRepository
	txRepo       *mocks.MockTransactionRepository
	progressRepo *mocks.MockProgressRepository
	lockStore    *mocks.MockCoinLockStore
	transactor   *mocks.MockDBTransactor
	ctrl         *gomock.Controller
}

func setupCoinService(t *testing.T) *coinTestDeps {
	ctrl := gomock.NewController(t)
	d := &coinTestDeps{
		coinRepo:     mocks.NewMockCoinRepository(ctrl),
		walletRepo:   mocks.NewMockWalletRepository(ctrl),
		txRepo:       mocks.NewMockTransactionRepository(ctrl),
		progressRepo: mocks.NewMockProgressRepository(ctrl),
		lockStore:    mocks.NewMockCoinLockStore(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewCoinService(
		d.coinRepo, d.walletRepo, d.txRepo, d.progressRepo,
		d.lockStore, d.transactor, zerolog.Nop(),
	)
	return d
}

func visibleCoin(hiderID uuid.UUID, kind domain.CoinKind, contribution domain.Money, loc domain.Location) *domain.Coin {
	coin := &domain.Coin{
		ID:           uuid.New(),
		Kind:         kind,
		Contribution: contribution,
		Location:     loc,
		HiderID:      hiderID,
		Status:       domain.CoinStatusVisible,
		HiddenAt:     time.Now().UTC(),
	}
	if kind == domain.CoinKindFixed {
		value := contribution
		coin.Value = &value
	}
	return coin
}

var testLocation = domain.Location{Lat: 52.520008, Lng: 13.404954}

// ==================== Hide Tests ====================

func TestCoinService_Hide_FixedCoin(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	hiderID := uuid.New()
	tx := &mockTx{}
	wallet := testWallet(hiderID, 1000, 0, 0)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPlayerIDForUpdate(ctx, tx, hiderID).Return(wallet, nil)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, w *domain.Wallet) error {
			assert.Equal(t, domain.Money(700), w.GasTank)
			return nil
		})
	d.coinRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, coin *domain.Coin) error {
			assert.Equal(t, domain.CoinStatusVisible, coin.Status)
			require.NotNil(t, coin.Value)
			assert.Equal(t, domain.Money(300), *coin.Value)
			return nil
		})
	d.progressRepo.EXPECT().GetFindLimitForUpdate(ctx, tx, hiderID).Return(
		domain.NewFindLimitState(hiderID, time.Now().UTC()), nil)
	d.progressRepo.EXPECT().UpdateFindLimit(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, s *domain.FindLimitState) error {
			assert.Equal(t, domain.Money(300), s.Limit)
			return nil
		})
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, txn *domain.Transaction) error {
			assert.Equal(t, domain.TransactionKindHide, txn.Kind)
			assert.Equal(t, domain.Money(-300), txn.Amount)
			return nil
		})

	coin, err := d.svc.Hide(ctx, ports.HideRequest{
		PlayerID:     hiderID,
		Kind:         domain.CoinKindFixed,
		Contribution: 300,
		Location:     testLocation,
	})
	require.NoError(t, err)
	assert.Equal(t, hiderID, coin.HiderID)
}

func TestCoinService_Hide_PoolCoinHasNoValue(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	hiderID := uuid.New()
	tx := &mockTx{}
	wallet := testWallet(hiderID, 2000, 0, 0)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPlayerIDForUpdate(ctx, tx, hiderID).Return(wallet, nil)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, gomock.Any()).Return(nil)
	d.coinRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, coin *domain.Coin) error {
			assert.Nil(t, coin.Value)
			return nil
		})
	d.progressRepo.EXPECT().GetFindLimitForUpdate(ctx, tx, hiderID).Return(
		domain.NewFindLimitState(hiderID, time.Now().UTC()), nil)
	d.progressRepo.EXPECT().UpdateFindLimit(ctx, tx, gomock.Any()).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	coin, err := d.svc.Hide(ctx, ports.HideRequest{
		PlayerID:     hiderID,
		Kind:         domain.CoinKindPool,
		Contribution: 1500,
		Location:     testLocation,
	})
	require.NoError(t, err)
	assert.Nil(t, coin.Value)
}

func TestCoinService_Hide_InsufficientFunds(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	hiderID := uuid.New()
	tx := &mockTx{}
	wallet := testWallet(hiderID, 100, 0, 0)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPlayerIDForUpdate(ctx, tx, hiderID).Return(wallet, nil)

	_, err := d.svc.Hide(ctx, ports.HideRequest{
		PlayerID:     hiderID,
		Kind:         domain.CoinKindFixed,
		Contribution: 500,
		Location:     testLocation,
	})
	assertAppError(t, err, "ECO_001")
}

func TestCoinService_Hide_SmallContributionKeepsLimit(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	hiderID := uuid.New()
	tx := &mockTx{}
	wallet := testWallet(hiderID, 1000, 0, 0)

	existing := domain.NewFindLimitState(hiderID, time.Now().UTC())
	existing.Limit = 500

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPlayerIDForUpdate(ctx, tx, hiderID).Return(wallet, nil)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, gomock.Any()).Return(nil)
	d.coinRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.progressRepo.EXPECT().GetFindLimitForUpdate(ctx, tx, hiderID).Return(existing, nil)
	// Contribution below the current limit: no UpdateFindLimit call.
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	_, err := d.svc.Hide(ctx, ports.HideRequest{
		PlayerID:     hiderID,
		Kind:         domain.CoinKindFixed,
		Contribution: 200,
		Location:     testLocation,
	})
	require.NoError(t, err)
}

func TestCoinService_Hide_InvalidInput(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	_, err := d.svc.Hide(ctx, ports.HideRequest{PlayerID: uuid.New(), Kind: domain.CoinKindFixed, Contribution: 0})
	assertAppError(t, err, "ECO_002")

	_, err = d.svc.Hide(ctx, ports.HideRequest{PlayerID: uuid.New(), Kind: "SHINY", Contribution: 100})
	assertAppError(t, err, "ECO_002")
}

// ==================== AttemptCollect Tests ====================

func expectLockCycle(d *coinTestDeps, coinID uuid.UUID) {
	d.lockStore.EXPECT().Acquire(gomock.Any(), coinID.String(), collectLockTTL).Return(true, nil)
	d.lockStore.EXPECT().Release(gomock.Any(), coinID.String()).Return(nil)
}

func TestCoinService_AttemptCollect_FixedCoin(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	collectorID := uuid.New()
	tx := &mockTx{}
	wallet := testWallet(collectorID, 500, 0, 0)
	coin := visibleCoin(uuid.New(), domain.CoinKindFixed, 80, testLocation)

	expectLockCycle(d, coin.ID)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPlayerIDForUpdate(ctx, tx, collectorID).Return(wallet, nil)
	d.coinRepo.EXPECT().GetByIDForUpdate(ctx, tx, coin.ID).Return(coin, nil)
	d.progressRepo.EXPECT().GetFindLimit(ctx, collectorID).Return(
		domain.NewFindLimitState(collectorID, time.Now().UTC()), nil)
	d.coinRepo.EXPECT().MarkCollected(ctx, tx, coin.ID, collectorID, domain.Money(80), gomock.Any()).Return(nil)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, w *domain.Wallet) error {
			// The value lands in pending, not the gas tank.
			assert.Equal(t, domain.Money(500), w.GasTank)
			assert.Equal(t, domain.Money(80), w.Pending)
			return nil
		})
	d.progressRepo.EXPECT().AppendFind(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, rec *domain.FindRecord) error {
			assert.Equal(t, domain.Money(80), rec.Value)
			return nil
		})
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, txn *domain.Transaction) error {
			assert.Equal(t, domain.TransactionKindCollect, txn.Kind)
			assert.Equal(t, domain.TransactionStatusPending, txn.Status)
			return nil
		})

	result, err := d.svc.AttemptCollect(ctx, ports.CollectRequest{
		PlayerID: collectorID,
		CoinID:   coin.ID,
		Position: testLocation,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Money(80), result.Value)
	assert.Equal(t, domain.StreakClass(""), result.StreakClass)
	assert.Equal(t, domain.CoinStatusCollected, result.Coin.Status)
}

func TestCoinService_AttemptCollect_PoolCoinDrawsPayout(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	collectorID := uuid.New()
	tx := &mockTx{}
	wallet := testWallet(collectorID, 500, 0, 0)
	coin := visibleCoin(uuid.New(), domain.CoinKindPool, 2000, testLocation)

	expectLockCycle(d, coin.ID)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPlayerIDForUpdate(ctx, tx, collectorID).Return(wallet, nil)
	d.coinRepo.EXPECT().GetByIDForUpdate(ctx, tx, coin.ID).Return(coin, nil)
	d.progressRepo.EXPECT().GetFindLimit(ctx, collectorID).Return(
		domain.NewFindLimitState(collectorID, time.Now().UTC()), nil)
	// No history yet: the new-player range applies.
	d.progressRepo.EXPECT().RecentFindValues(ctx, tx, collectorID, domain.HistoryWindow).Return(nil, nil)

	var drawn domain.Money
	d.coinRepo.EXPECT().MarkCollected(ctx, tx, coin.ID, collectorID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, _ uuid.UUID, _ uuid.UUID, value domain.Money, _ time.Time) error {
			drawn = value
			return nil
		})
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, gomock.Any()).Return(nil)
	d.progressRepo.EXPECT().AppendFind(ctx, tx, gomock.Any()).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	result, err := d.svc.AttemptCollect(ctx, ports.CollectRequest{
		PlayerID: collectorID,
		CoinID:   coin.ID,
		Position: testLocation,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StreakNewPlayer, result.StreakClass)
	assert.Equal(t, drawn, result.Value)
	assert.GreaterOrEqual(t, result.Value, domain.Money(10))
	assert.LessOrEqual(t, result.Value, domain.Money(1000))
}

func TestCoinService_AttemptCollect_NoGas(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	collectorID := uuid.New()
	tx := &mockTx{}
	wallet := testWallet(collectorID, 0, 300, 0)
	coinID := uuid.New()

	expectLockCycle(d, coinID)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPlayerIDForUpdate(ctx, tx, collectorID).Return(wallet, nil)
	// The gas check fires before the coin is even fetched.

	_, err := d.svc.AttemptCollect(ctx, ports.CollectRequest{
		PlayerID: collectorID,
		CoinID:   coinID,
		Position: testLocation,
	})
	assertAppError(t, err, "ECO_006")
}

func TestCoinService_AttemptCollect_AlreadyCollected(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	collectorID := uuid.New()
	tx := &mockTx{}
	wallet := testWallet(collectorID, 500, 0, 0)
	coin := visibleCoin(uuid.New(), domain.CoinKindFixed, 80, testLocation)
	coin.Status = domain.CoinStatusCollected

	expectLockCycle(d, coin.ID)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPlayerIDForUpdate(ctx, tx, collectorID).Return(wallet, nil)
	d.coinRepo.EXPECT().GetByIDForUpdate(ctx, tx, coin.ID).Return(coin, nil)

	_, err := d.svc.AttemptCollect(ctx, ports.CollectRequest{
		PlayerID: collectorID,
		CoinID:   coin.ID,
		Position: testLocation,
	})
	assertAppError(t, err, "ECO_003")
}

func TestCoinService_AttemptCollect_TooFar(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	collectorID := uuid.New()
	tx := &mockTx{}
	wallet := testWallet(collectorID, 500, 0, 0)
	coin := visibleCoin(uuid.New(), domain.CoinKindFixed, 80, testLocation)

	// ~111m north of the coin.
	farAway := domain.Location{Lat: testLocation.Lat + 0.001, Lng: testLocation.Lng}

	expectLockCycle(d, coin.ID)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPlayerIDForUpdate(ctx, tx, collectorID).Return(wallet, nil)
	d.coinRepo.EXPECT().GetByIDForUpdate(ctx, tx, coin.ID).Return(coin, nil)

	_, err := d.svc.AttemptCollect(ctx, ports.CollectRequest{
		PlayerID: collectorID,
		CoinID:   coin.ID,
		Position: farAway,
	})
	assertAppError(t, err, "ECO_004")
}

func TestCoinService_AttemptCollect_OverFindLimit(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	collectorID := uuid.New()
	tx := &mockTx{}
	wallet := testWallet(collectorID, 500, 0, 0)
	// Fixed coin worth 250 against the default limit of 100.
	coin := visibleCoin(uuid.New(), domain.CoinKindFixed, 250, testLocation)

	expectLockCycle(d, coin.ID)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPlayerIDForUpdate(ctx, tx, collectorID).Return(wallet, nil)
	d.coinRepo.EXPECT().GetByIDForUpdate(ctx, tx, coin.ID).Return(coin, nil)
	d.progressRepo.EXPECT().GetFindLimit(ctx, collectorID).Return(
		domain.NewFindLimitState(collectorID, time.Now().UTC()), nil)

	_, err := d.svc.AttemptCollect(ctx, ports.CollectRequest{
		PlayerID: collectorID,
		CoinID:   coin.ID,
		Position: testLocation,
	})
	assertAppError(t, err, "ECO_005")
}

func TestCoinService_AttemptCollect_LockContended(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	coinID := uuid.New()

	// A held fast-path lock short-circuits before any database work.
	d.lockStore.EXPECT().Acquire(gomock.Any(), coinID.String(), collectLockTTL).Return(false, nil)

	_, err := d.svc.AttemptCollect(ctx, ports.CollectRequest{
		PlayerID: uuid.New(),
		CoinID:   coinID,
		Position: testLocation,
	})
	assertAppError(t, err, "ECO_003")
}

func TestCoinService_AttemptCollect_CoinNotFound(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	collectorID := uuid.New()
	tx := &mockTx{}
	wallet := testWallet(collectorID, 500, 0, 0)
	coinID := uuid.New()

	expectLockCycle(d, coinID)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPlayerIDForUpdate(ctx, tx, collectorID).Return(wallet, nil)
	d.coinRepo.EXPECT().GetByIDForUpdate(ctx, tx, coinID).Return(nil, nil)

	_, err := d.svc.AttemptCollect(ctx, ports.CollectRequest{
		PlayerID: collectorID,
		CoinID:   coinID,
		Position: testLocation,
	})
	assertAppError(t, err, "ECO_008")
}

// ==================== Retrieve Tests ====================

func TestCoinService_Retrieve_Success(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	hiderID := uuid.New()
	tx := &mockTx{}
	wallet := testWallet(hiderID, 100, 0, 0)
	coin := visibleCoin(hiderID, domain.CoinKindFixed, 300, testLocation)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPlayerIDForUpdate(ctx, tx, hiderID).Return(wallet, nil)
	d.coinRepo.EXPECT().GetByIDForUpdate(ctx, tx, coin.ID).Return(coin, nil)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, w *domain.Wallet) error {
			assert.Equal(t, domain.Money(400), w.GasTank)
			return nil
		})
	d.coinRepo.EXPECT().Delete(ctx, tx, coin.ID).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, txn *domain.Transaction) error {
			assert.Equal(t, domain.TransactionKindRetrieve, txn.Kind)
			assert.Equal(t, domain.Money(300), txn.Amount)
			return nil
		})

	result, err := d.svc.Retrieve(ctx, coin.ID, hiderID)
	require.NoError(t, err)
	assert.Equal(t, coin.ID, result.ID)
}

func TestCoinService_Retrieve_NotOwner(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	playerID := uuid.New()
	tx := &mockTx{}
	wallet := testWallet(playerID, 100, 0, 0)
	coin := visibleCoin(uuid.New(), domain.CoinKindFixed, 300, testLocation)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPlayerIDForUpdate(ctx, tx, playerID).Return(wallet, nil)
	d.coinRepo.EXPECT().GetByIDForUpdate(ctx, tx, coin.ID).Return(coin, nil)

	_, err := d.svc.Retrieve(ctx, coin.ID, playerID)
	assertAppError(t, err, "ECO_007")
}

func TestCoinService_Retrieve_AlreadyCollected(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	hiderID := uuid.New()
	tx := &mockTx{}
	wallet := testWallet(hiderID, 100, 0, 0)
	coin := visibleCoin(hiderID, domain.CoinKindFixed, 300, testLocation)
	coin.Status = domain.CoinStatusCollected

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByPlayerIDForUpdate(ctx, tx, hiderID).Return(wallet, nil)
	d.coinRepo.EXPECT().GetByIDForUpdate(ctx, tx, coin.ID).Return(coin, nil)

	_, err := d.svc.Retrieve(ctx, coin.ID, hiderID)
	assertAppError(t, err, "ECO_003")
}

// ==================== Query Tests ====================

func TestCoinService_Get_NotFound(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.coinRepo.EXPECT().GetByID(ctx, gomock.Any()).Return(nil, nil)

	_, err := d.svc.Get(ctx, uuid.New())
	assertAppError(t, err, "ECO_008")
}

func TestCoinService_ListVisible_ClampsLimit(t *testing.T) {
	d := setupCoinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.coinRepo.EXPECT().ListVisible(ctx, 100).Return(nil, nil)

	_, err := d.svc.ListVisible(ctx, 9999)
	require.NoError(t, err)
}
