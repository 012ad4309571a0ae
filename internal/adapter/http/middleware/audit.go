package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"crypto-bot-api/internal/core/domain"
	"crypto-bot-api/internal/core/ports"
	"crypto-bot-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that records successful airdrop and
// trade requests.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		action, resourceType := mapPathToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:            uuid.New(),
			Action:        action,
			ResourceType:  resourceType,
			ResourceID:    c.GetString(CtxResourceID),
			WalletAddress: c.GetString(CtxWalletAddress),
			Details:       string(details),
			IPAddress:     c.ClientIP(),
			RequestID:     c.GetString(response.RequestIDKey),
			CreatedAt:     time.Now().UTC(),
		})
	}
}

func mapPathToAction(path, method string) (domain.AuditAction, string) {
	if method != http.MethodPost {
		return "", ""
	}
	switch path {
	case "/airdrop":
		return domain.AuditActionAirdrop, "airdrop"
	case "/buy":
		return domain.AuditActionBuy, "trade"
	case "/sell":
		return domain.AuditActionSell, "trade"
	}
	return "", ""
}
