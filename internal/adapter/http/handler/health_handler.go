package handler

import (
	"context"
	"net/http"
	"time"

	"crypto-bot-api/internal/adapter/http/dto"
	"crypto-bot-api/internal/core/ports"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const healthTimeout = 5 * time.Second

// HealthCheck pings every dependency concurrently. Any failure reports the
// service as degraded with 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		results := make([]error, len(checkers))
		var g errgroup.Group
		for i, checker := range checkers {
			g.Go(func() error {
				results[i] = checker.Ping(ctx)
				return nil
			})
		}
		_ = g.Wait()

		deps := make(map[string]dto.DependencyStatus, len(checkers))
		allHealthy := true
		for i, checker := range checkers {
			if err := results[i]; err != nil {
				deps[checker.Name()] = dto.DependencyStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = dto.DependencyStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, dto.HealthResponse{
			Status:       status,
			Dependencies: deps,
		})
	}
}
