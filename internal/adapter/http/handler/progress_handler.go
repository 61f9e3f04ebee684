package handler

import (
	"time"

	"treasure-engine/internal/adapter/http/dto"
	"treasure-engine/internal/adapter/http/middleware"
	"treasure-engine/internal/core/ports"
	"treasure-engine/pkg/apperror"
	"treasure-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProgressHandler handles player progression endpoints.
type ProgressHandler struct {
	progressSvc ports.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressSvc ports.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressSvc: progressSvc}
}

// GetProgress handles GET /api/v1/progress.
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	progress, err := h.progressSvc.GetProgress(c.Request.Context(), playerID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	finds := make([]dto.FindRecordResponse, 0, len(progress.RecentFinds))
	for _, f := range progress.RecentFinds {
		finds = append(finds, dto.FindRecordResponse{
			CoinID:    f.CoinID.String(),
			Value:     int64(f.Value),
			CreatedAt: f.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	response.OK(c, dto.ProgressResponse{
		FindLimit:    int64(progress.Limit),
		Tier:         progress.Tier.Name,
		TierProgress: progress.TierProgress,
		RecentFinds:  finds,
		TotalFinds:   progress.Stats.TotalFinds,
		TotalValue:   int64(progress.Stats.TotalValue),
	})
}
