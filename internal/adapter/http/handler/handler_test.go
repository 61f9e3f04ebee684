package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"treasure-engine/internal/adapter/http/dto"
	"treasure-engine/internal/adapter/http/middleware"
	"treasure-engine/internal/core/domain"
	"treasure-engine/internal/core/ports"
	"treasure-engine/internal/core/ports/mocks"
	"treasure-engine/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Auth Handler Tests ---

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	playerID := uuid.New()
	mockAuth.EXPECT().Register(gomock.Any(), ports.RegisterRequest{
		Username: "seeker42",
		Password: "password123",
	}).Return(&ports.RegisterResponse{
		PlayerID: playerID,
		Username: "seeker42",
	}, nil)

	body, _ := json.Marshal(dto.RegisterRequest{
		Username: "seeker42",
		Password: "password123",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, playerID.String(), data["player_id"])
	assert.Equal(t, "seeker42", data["username"])
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	// Empty body => binding error
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrUsernameExists())

	body, _ := json.Marshal(dto.RegisterRequest{
		Username: "taken",
		Password: "password123",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(24 * time.Hour)
	mockAuth.EXPECT().Login(gomock.Any(), "seeker42", "password123").Return("jwt-token-123", expiry, nil)

	body, _ := json.Marshal(dto.LoginRequest{
		Username: "seeker42",
		Password: "password123",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token-123", data["token"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Login(gomock.Any(), "bad", "bad").Return("", time.Time{}, apperror.ErrInvalidCredentials())

	body, _ := json.Marshal(dto.LoginRequest{
		Username: "bad",
		Password: "bad",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Wallet Handler Tests ---

func TestGetSummary_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	mockGas := mocks.NewMockGasService(ctrl)
	h := NewWalletHandler(mockLedger, mockGas)

	playerID := uuid.New()
	wallet := &domain.Wallet{
		ID:       uuid.New(),
		PlayerID: playerID,
		GasTank:  500,
		Parked:   200,
		Pending:  100,
		Total:    800,
	}
	mockLedger.EXPECT().GetSummary(gomock.Any(), playerID).Return(&ports.WalletSummary{
		Wallet:    wallet,
		GasStatus: domain.GasStatusFor(wallet.GasTank),
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(middleware.CtxPlayerID, playerID)

	h.GetSummary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(500), data["gas_tank"])
	assert.Equal(t, float64(800), data["total"])
	assert.Equal(t, "OK", data["gas_status"])
}

func TestGetSummary_MissingPlayerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	mockGas := mocks.NewMockGasService(ctrl)
	h := NewWalletHandler(mockLedger, mockGas)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.GetSummary(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTopup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	mockGas := mocks.NewMockGasService(ctrl)
	h := NewWalletHandler(mockLedger, mockGas)

	playerID := uuid.New()
	txID := uuid.New()
	now := time.Now()

	mockLedger.EXPECT().Topup(gomock.Any(), playerID, domain.Money(1000)).Return(&domain.Transaction{
		ID:        txID,
		PlayerID:  playerID,
		Kind:      domain.TransactionKindTopup,
		Amount:    1000,
		Status:    domain.TransactionStatusConfirmed,
		CreatedAt: now,
	}, nil)

	body, _ := json.Marshal(dto.TopupRequest{Amount: 1000})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxPlayerID, playerID)

	h.Topup(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, txID.String(), data["id"])
	assert.Equal(t, "TOPUP", data["kind"])
}

func TestPark_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	mockGas := mocks.NewMockGasService(ctrl)
	h := NewWalletHandler(mockLedger, mockGas)

	playerID := uuid.New()
	mockLedger.EXPECT().Park(gomock.Any(), playerID, domain.Money(9999)).
		Return(nil, apperror.ErrInsufficientFunds("gas_tank", 100, 9999))

	body, _ := json.Marshal(dto.ParkRequest{Amount: 9999})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxPlayerID, playerID)

	h.Park(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestUnpark_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	mockGas := mocks.NewMockGasService(ctrl)
	h := NewWalletHandler(mockLedger, mockGas)

	playerID := uuid.New()
	mockLedger.EXPECT().Unpark(gomock.Any(), playerID, domain.Money(500)).Return(&ports.UnparkResult{
		Moved:    500,
		Fee:      33,
		Credited: 467,
	}, nil)

	body, _ := json.Marshal(dto.UnparkRequest{Amount: 500})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxPlayerID, playerID)

	h.Unpark(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(500), data["moved"])
	assert.Equal(t, float64(33), data["fee"])
	assert.Equal(t, float64(467), data["credited"])
}

func TestSettle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	mockGas := mocks.NewMockGasService(ctrl)
	h := NewWalletHandler(mockLedger, mockGas)

	playerID := uuid.New()
	mockLedger.EXPECT().SettlePending(gomock.Any(), playerID).Return(&ports.SettleResult{
		Settled: 350,
		Count:   2,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Set(middleware.CtxPlayerID, playerID)

	h.Settle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(350), data["settled"])
	assert.Equal(t, float64(2), data["count"])
}

func TestRunGas_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	mockGas := mocks.NewMockGasService(ctrl)
	h := NewWalletHandler(mockLedger, mockGas)

	playerID := uuid.New()
	mockGas.EXPECT().RunDailyConsumption(gomock.Any(), playerID).Return(&ports.GasRunResult{
		Consumed: domain.DailyGasRate,
		Ran:      true,
		Status:   domain.GasStatusFor(967),
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Set(middleware.CtxPlayerID, playerID)

	h.RunGas(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(domain.DailyGasRate), data["consumed"])
	assert.Equal(t, true, data["ran"])
}

func TestListTransactions_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	mockGas := mocks.NewMockGasService(ctrl)
	h := NewWalletHandler(mockLedger, mockGas)

	playerID := uuid.New()
	now := time.Now()

	mockLedger.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return([]domain.Transaction{
		{
			ID:        uuid.New(),
			PlayerID:  playerID,
			Kind:      domain.TransactionKindCollect,
			Amount:    250,
			Status:    domain.TransactionStatusPending,
			CreatedAt: now,
		},
	}, int64(1), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=1&page_size=20", nil)
	c.Set(middleware.CtxPlayerID, playerID)

	h.ListTransactions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	assert.Len(t, items, 1)
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, float64(1), data["total_pages"])
}

func TestListTransactions_KindFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	mockGas := mocks.NewMockGasService(ctrl)
	h := NewWalletHandler(mockLedger, mockGas)

	playerID := uuid.New()
	mockLedger.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
			require.NotNil(t, params.Kind)
			assert.Equal(t, domain.TransactionKindTopup, *params.Kind)
			return nil, 0, nil
		})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?kind=TOPUP", nil)
	c.Set(middleware.CtxPlayerID, playerID)

	h.ListTransactions(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListTransactions_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	mockGas := mocks.NewMockGasService(ctrl)
	h := NewWalletHandler(mockLedger, mockGas)

	playerID := uuid.New()
	mockLedger.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("db down"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(middleware.CtxPlayerID, playerID)

	h.ListTransactions(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Coin Handler Tests ---

func TestHide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCoin := mocks.NewMockCoinService(ctrl)
	h := NewCoinHandler(mockCoin)

	playerID := uuid.New()
	coinID := uuid.New()
	value := domain.Money(500)

	mockCoin.EXPECT().Hide(gomock.Any(), ports.HideRequest{
		PlayerID:     playerID,
		Kind:         domain.CoinKindFixed,
		Contribution: 500,
		Location:     domain.Location{Lat: 52.52, Lng: 13.405},
	}).Return(&domain.Coin{
		ID:           coinID,
		Kind:         domain.CoinKindFixed,
		Value:        &value,
		Contribution: 500,
		Location:     domain.Location{Lat: 52.52, Lng: 13.405},
		HiderID:      playerID,
		Status:       domain.CoinStatusVisible,
		HiddenAt:     time.Now(),
	}, nil)

	body, _ := json.Marshal(dto.HideRequest{
		Kind:         "FIXED",
		Contribution: 500,
		Lat:          52.52,
		Lng:          13.405,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxPlayerID, playerID)

	h.Hide(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, coinID.String(), data["id"])
	assert.Equal(t, "VISIBLE", data["status"])
	assert.Equal(t, float64(500), data["value"])
}

func TestHide_InvalidKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCoin := mocks.NewMockCoinService(ctrl)
	h := NewCoinHandler(mockCoin)

	body, _ := json.Marshal(dto.HideRequest{
		Kind:         "SHINY",
		Contribution: 500,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxPlayerID, uuid.New())

	h.Hide(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCollect_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCoin := mocks.NewMockCoinService(ctrl)
	h := NewCoinHandler(mockCoin)

	playerID := uuid.New()
	coinID := uuid.New()
	value := domain.Money(320)
	now := time.Now()

	mockCoin.EXPECT().AttemptCollect(gomock.Any(), ports.CollectRequest{
		PlayerID: playerID,
		CoinID:   coinID,
		Position: domain.Location{Lat: 52.52, Lng: 13.405},
	}).Return(&ports.CollectResult{
		Coin: &domain.Coin{
			ID:           coinID,
			Kind:         domain.CoinKindPool,
			Value:        &value,
			Contribution: 1000,
			HiderID:      uuid.New(),
			CollectorID:  &playerID,
			Status:       domain.CoinStatusCollected,
			HiddenAt:     now,
			CollectedAt:  &now,
		},
		Value:       value,
		StreakClass: domain.StreakNormal,
	}, nil)

	body, _ := json.Marshal(dto.CollectRequest{Lat: 52.52, Lng: 13.405})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: coinID.String()}}
	c.Set(middleware.CtxPlayerID, playerID)

	h.Collect(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(320), data["value"])
	assert.Equal(t, "NORMAL", data["streak_class"])
}

func TestCollect_InvalidCoinID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCoin := mocks.NewMockCoinService(ctrl)
	h := NewCoinHandler(mockCoin)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	c.Set(middleware.CtxPlayerID, uuid.New())

	h.Collect(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCollect_TooFar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCoin := mocks.NewMockCoinService(ctrl)
	h := NewCoinHandler(mockCoin)

	playerID := uuid.New()
	coinID := uuid.New()
	mockCoin.EXPECT().AttemptCollect(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrTooFar(42.7, domain.CollectRadiusMeters))

	body, _ := json.Marshal(dto.CollectRequest{Lat: 52.53, Lng: 13.41})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: coinID.String()}}
	c.Set(middleware.CtxPlayerID, playerID)

	h.Collect(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCollect_AlreadyCollected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCoin := mocks.NewMockCoinService(ctrl)
	h := NewCoinHandler(mockCoin)

	mockCoin.EXPECT().AttemptCollect(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrAlreadyCollected())

	body, _ := json.Marshal(dto.CollectRequest{Lat: 52.52, Lng: 13.405})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c.Set(middleware.CtxPlayerID, uuid.New())

	h.Collect(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRetrieve_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCoin := mocks.NewMockCoinService(ctrl)
	h := NewCoinHandler(mockCoin)

	playerID := uuid.New()
	coinID := uuid.New()
	mockCoin.EXPECT().Retrieve(gomock.Any(), coinID, playerID).Return(nil, apperror.ErrNotOwner())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: coinID.String()}}
	c.Set(middleware.CtxPlayerID, playerID)

	h.Retrieve(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetCoin_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCoin := mocks.NewMockCoinService(ctrl)
	h := NewCoinHandler(mockCoin)

	coinID := uuid.New()
	mockCoin.EXPECT().Get(gomock.Any(), coinID).Return(nil, apperror.ErrCoinNotFound())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: coinID.String()}}

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListVisible_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCoin := mocks.NewMockCoinService(ctrl)
	h := NewCoinHandler(mockCoin)

	mockCoin.EXPECT().ListVisible(gomock.Any(), 50).Return([]domain.Coin{
		{ID: uuid.New(), Kind: domain.CoinKindPool, Contribution: 1000, HiderID: uuid.New(), Status: domain.CoinStatusVisible, HiddenAt: time.Now()},
		{ID: uuid.New(), Kind: domain.CoinKindFixed, Contribution: 200, HiderID: uuid.New(), Status: domain.CoinStatusVisible, HiddenAt: time.Now()},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.ListVisible(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	assert.Len(t, items, 2)
}

// --- Progress Handler Tests ---

func TestGetProgress_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProgress := mocks.NewMockProgressService(ctrl)
	h := NewProgressHandler(mockProgress)

	playerID := uuid.New()
	mockProgress.EXPECT().GetProgress(gomock.Any(), playerID).Return(&ports.PlayerProgress{
		Limit:        550,
		Tier:         domain.TierFor(550),
		TierProgress: domain.TierProgress(550),
		RecentFinds: []domain.FindRecord{
			{ID: uuid.New(), PlayerID: playerID, CoinID: uuid.New(), Value: 320, CreatedAt: time.Now()},
		},
		Stats: domain.FindStats{PlayerID: playerID, TotalFinds: 7, TotalValue: 1840},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(middleware.CtxPlayerID, playerID)

	h.GetProgress(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(550), data["find_limit"])
	assert.Equal(t, "Scout", data["tier"])
	assert.Equal(t, float64(7), data["total_finds"])
	finds := data["recent_finds"].([]interface{})
	assert.Len(t, finds, 1)
}

// --- Health Check Test ---

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}
