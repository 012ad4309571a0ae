package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionAirdrop AuditAction = "AIRDROP"
	AuditActionBuy     AuditAction = "BUY"
	AuditActionSell    AuditAction = "SELL"
)

// AuditLog records a single state-changing request handled by the API.
type AuditLog struct {
	ID            uuid.UUID   `json:"id"`
	Action        AuditAction `json:"action"`
	ResourceType  string      `json:"resource_type"`
	ResourceID    string      `json:"resource_id,omitempty"`
	WalletAddress string      `json:"wallet_address,omitempty"`
	Details       string      `json:"details,omitempty"` // JSON string
	IPAddress     string      `json:"ip_address"`
	RequestID     string      `json:"request_id,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}
