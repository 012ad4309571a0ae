package handler

import (
	"crypto-bot-api/internal/adapter/http/dto"
	"crypto-bot-api/internal/core/ports"
	"crypto-bot-api/pkg/apperror"
	"crypto-bot-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// PriceHandler handles token price lookups.
type PriceHandler struct {
	priceSvc ports.PriceService
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(priceSvc ports.PriceService) *PriceHandler {
	return &PriceHandler{priceSvc: priceSvc}
}

// GetPrice handles GET /price/:tokenMint.
func (h *PriceHandler) GetPrice(c *gin.Context) {
	var req dto.PriceRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, apperror.ErrInvalidTokenMint(c.Param("tokenMint")))
		return
	}

	quote, err := h.priceSvc.GetPrice(c.Request.Context(), req.TokenMint)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PriceResponse{
		Token: quote.Token,
		Price: quote.Price,
	})
}
