package handler

import (
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

// CoinHandler handles coin lifecycle endpoints.
type CoinHandler struct {
	coinSvc ports.CoinService
}

// NewCoinHandler creates a new CoinHandler.
func NewCoinHandler(coinSvc ports.CoinService) *CoinHandler {
	return &CoinHandler{coinSvc: coinSvc}
}

// Hide handles POST /api/v1/coins.
func (h *CoinHandler) Hide(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.HideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	coin, err := h.coinSvc.Hide(c.Request.Context(), ports.HideRequest{
		PlayerID:     playerID.(uuid.UUID),
		Kind:         domain.CoinKind(req.Kind),
		Contribution: domain.Money(req.Contribution),
		Location:     domain.Location{Lat: req.Lat, Lng: req.Lng},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toCoinResponse(coin))
}

// Collect handles POST /api/v1/coins/:id/collect.
func (h *CoinHandler) Collect(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	coinID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid coin id"))
		return
	}

	var req dto.CollectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.coinSvc.AttemptCollect(c.Request.Context(), ports.CollectRequest{
		PlayerID: playerID.(uuid.UUID),
		CoinID:   coinID,
		Position: domain.Location{Lat: req.Lat, Lng: req.Lng},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CollectResponse{
		Coin:        toCoinResponse(result.Coin),
		Value:       int64(result.Value),
		StreakClass: string(result.StreakClass),
	})
}

// Retrieve handles DELETE /api/v1/coins/:id. Only the hider may retrieve a
// coin, and only while it is still visible.
func (h *CoinHandler) Retrieve(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	coinID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid coin id"))
		return
	}

	coin, err := h.coinSvc.Retrieve(c.Request.Context(), coinID, playerID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toCoinResponse(coin))
}

// Get handles GET /api/v1/coins/:id.
func (h *CoinHandler) Get(c *gin.Context) {
	coinID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid coin id"))
		return
	}

	coin, err := h.coinSvc.Get(c.Request.Context(), coinID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toCoinResponse(coin))
}

// ListVisible handles GET /api/v1/coins.
func (h *CoinHandler) ListVisible(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	coins, err := h.coinSvc.ListVisible(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.CoinResponse, 0, len(coins))
	for i := range coins {
		items = append(items, toCoinResponse(&coins[i]))
	}
	response.OK(c, items)
}

func toCoinResponse(coin *domain.Coin) dto.CoinResponse {
	resp := dto.CoinResponse{
		ID:           coin.ID.String(),
		Kind:         string(coin.Kind),
		Contribution: int64(coin.Contribution),
		Lat:          coin.Location.Lat,
		Lng:          coin.Location.Lng,
		HiderID:      coin.HiderID.String(),
		Status:       string(coin.Status),
		HiddenAt:     coin.HiddenAt.UTC().Format(time.RFC3339),
	}
	if coin.Value != nil {
		v := int64(*coin.Value)
		resp.Value = &v
	}
	return resp
}
