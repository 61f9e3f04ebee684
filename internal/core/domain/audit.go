package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited player action.
type AuditAction string

const (
	AuditActionRegister AuditAction = "REGISTER"
	AuditActionLogin    AuditAction = "LOGIN"
	AuditActionTopup    AuditAction = "TOPUP"
	AuditActionHide     AuditAction = "HIDE"
	AuditActionCollect  AuditAction = "COLLECT"
	AuditActionRetrieve AuditAction = "RETRIEVE"
	AuditActionPark     AuditAction = "PARK"
	AuditActionUnpark   AuditAction = "UNPARK"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	PlayerID     *uuid.UUID  `json:"player_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
