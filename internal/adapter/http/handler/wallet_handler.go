package handler

import (
	"math"
	"strconv"
	"time"

	"treasure-engine/internal/adapter/http/dto"
	"treasure-engine/internal/adapter/http/middleware"
	"treasure-engine/internal/core/domain"
	"treasure-engine/internal/core/ports"
	"treasure-engine/pkg/apperror"
	"treasure-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet ledger endpoints.
type WalletHandler struct {
	ledgerSvc ports.LedgerService
	gasSvc    ports.GasService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledgerSvc ports.LedgerService, gasSvc ports.GasService) *WalletHandler {
	return &WalletHandler{
		ledgerSvc: ledgerSvc,
		gasSvc:    gasSvc,
	}
}

// GetSummary handles GET /api/v1/wallet.
func (h *WalletHandler) GetSummary(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	summary, err := h.ledgerSvc.GetSummary(c.Request.Context(), playerID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(summary))
}

// Topup handles POST /api/v1/wallet/topup.
func (h *WalletHandler) Topup(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	txn, err := h.ledgerSvc.Topup(c.Request.Context(), playerID.(uuid.UUID), domain.Money(req.Amount))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(txn))
}

// Park handles POST /api/v1/wallet/park.
func (h *WalletHandler) Park(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ParkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	txn, err := h.ledgerSvc.Park(c.Request.Context(), playerID.(uuid.UUID), domain.Money(req.Amount))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(txn))
}

// Unpark handles POST /api/v1/wallet/unpark.
func (h *WalletHandler) Unpark(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.UnparkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.ledgerSvc.Unpark(c.Request.Context(), playerID.(uuid.UUID), domain.Money(req.Amount))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.UnparkResponse{
		Moved:    int64(result.Moved),
		Fee:      int64(result.Fee),
		Credited: int64(result.Credited),
	})
}

// Settle handles POST /api/v1/wallet/settle.
func (h *WalletHandler) Settle(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	result, err := h.ledgerSvc.SettlePending(c.Request.Context(), playerID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SettleResponse{
		Settled: int64(result.Settled),
		Count:   result.Count,
	})
}

// RunGas handles POST /api/v1/wallet/gas.
func (h *WalletHandler) RunGas(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	result, err := h.gasSvc.RunDailyConsumption(c.Request.Context(), playerID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.GasRunResponse{
		Consumed:  int64(result.Consumed),
		Ran:       result.Ran,
		GasStatus: gasStatusLabel(result.Status),
	})
}

// ListTransactions handles GET /api/v1/wallet/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	params := ports.TransactionListParams{
		PlayerID: playerID.(uuid.UUID),
		Page:     page,
		PageSize: pageSize,
	}

	if s := c.Query("status"); s != "" {
		status := domain.TransactionStatus(s)
		params.Status = &status
	}
	if k := c.Query("kind"); k != "" {
		kind := domain.TransactionKind(k)
		params.Kind = &kind
	}
	if f := c.Query("from"); f != "" {
		if v, err := strconv.ParseInt(f, 10, 64); err == nil {
			params.From = &v
		}
	}
	if t := c.Query("to"); t != "" {
		if v, err := strconv.ParseInt(t, 10, 64); err == nil {
			params.To = &v
		}
	}

	txns, total, err := h.ledgerSvc.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, toTransactionResponse(&txns[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	response.OK(c, dto.TransactionListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

func toWalletResponse(summary *ports.WalletSummary) dto.WalletResponse {
	return dto.WalletResponse{
		GasTank:    int64(summary.Wallet.GasTank),
		Parked:     int64(summary.Wallet.Parked),
		Pending:    int64(summary.Wallet.Pending),
		Total:      int64(summary.Wallet.Total),
		GasStatus:  gasStatusLabel(summary.GasStatus),
		DaysOfGas:  summary.GasStatus.DaysLeft,
		LastGasDay: summary.Wallet.LastGasDay,
	}
}

func toTransactionResponse(txn *domain.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:          txn.ID.String(),
		Kind:        string(txn.Kind),
		Amount:      int64(txn.Amount),
		Status:      string(txn.Status),
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt.UTC().Format(time.RFC3339),
	}
	if txn.RelatedCoinID != nil {
		id := txn.RelatedCoinID.String()
		resp.RelatedCoinID = &id
	}
	if txn.ConfirmedAt != nil {
		at := txn.ConfirmedAt.UTC().Format(time.RFC3339)
		resp.ConfirmedAt = &at
	}
	return resp
}

func gasStatusLabel(s domain.GasStatus) string {
	switch {
	case s.IsEmpty:
		return "EMPTY"
	case s.IsLow:
		return "LOW"
	default:
		return "OK"
	}
}
