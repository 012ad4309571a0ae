package handler

import (
	"context"

	"crypto-bot-api/internal/adapter/http/dto"
	"crypto-bot-api/internal/adapter/http/middleware"
	"crypto-bot-api/internal/core/domain"
	"crypto-bot-api/internal/core/ports"
	"crypto-bot-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// TradeHandler handles buy and sell endpoints.
type TradeHandler struct {
	tradeSvc ports.TradeService
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeSvc ports.TradeService) *TradeHandler {
	return &TradeHandler{tradeSvc: tradeSvc}
}

// Buy handles POST /buy.
func (h *TradeHandler) Buy(c *gin.Context) {
	h.handle(c, h.tradeSvc.Buy)
}

// Sell handles POST /sell.
func (h *TradeHandler) Sell(c *gin.Context) {
	h.handle(c, h.tradeSvc.Sell)
}

func (h *TradeHandler) handle(c *gin.Context, submit func(context.Context, ports.TradeRequest) (*domain.TradeAck, error)) {
	var req dto.TradeRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	ack, err := submit(c.Request.Context(), ports.TradeRequest{
		TokenMint: req.TokenMint,
		Amount:    req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, domain.EchoText(ack.Order.TokenMint))
	c.Set(middleware.CtxWalletAddress, ack.Order.Wallet)

	response.OK(c, dto.TradeResponse{
		Message:   ack.Message,
		TokenMint: ack.Order.TokenMint,
		Amount:    ack.Order.Amount,
		Executed:  ack.Executed,
	})
}
