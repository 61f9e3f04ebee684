package middleware

import (
	"encoding/json"
	"strings"
	"time"

	"treasure-engine/internal/core/domain"
	"treasure-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that logs successful write operations.
// It maps HTTP methods and paths to audit actions.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			return
		}

		action, resourceType := mapPathToAction(c.Request.URL.Path, c.Request.Method)
		if action == "" {
			return
		}

		var playerID *uuid.UUID
		if pid, exists := c.Get(CtxPlayerID); exists {
			if id, ok := pid.(uuid.UUID); ok {
				playerID = &id
			}
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			PlayerID:     playerID,
			Action:       action,
			ResourceType: resourceType,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(path, method string) (domain.AuditAction, string) {
	switch {
	case path == "/api/v1/auth/register" && method == "POST":
		return domain.AuditActionRegister, "player"
	case path == "/api/v1/auth/login" && method == "POST":
		return domain.AuditActionLogin, "session"
	case path == "/api/v1/wallet/topup" && method == "POST":
		return domain.AuditActionTopup, "wallet"
	case path == "/api/v1/wallet/park" && method == "POST":
		return domain.AuditActionPark, "wallet"
	case path == "/api/v1/wallet/unpark" && method == "POST":
		return domain.AuditActionUnpark, "wallet"
	case path == "/api/v1/coins" && method == "POST":
		return domain.AuditActionHide, "coin"
	case strings.HasPrefix(path, "/api/v1/coins/") && strings.HasSuffix(path, "/collect") && method == "POST":
		return domain.AuditActionCollect, "coin"
	case strings.HasPrefix(path, "/api/v1/coins/") && method == "DELETE":
		return domain.AuditActionRetrieve, "coin"
	}
	return "", ""
}
