package handler

import (
	"crypto-bot-api/internal/adapter/http/dto"
	"crypto-bot-api/internal/adapter/http/middleware"
	"crypto-bot-api/internal/core/ports"
	"crypto-bot-api/pkg/response"

	"github.com/gin-gonic/gin"
)

const airdropSuccessMessage = "Airdrop successful"

// WalletHandler handles balance, airdrop and address endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetBalance handles GET /balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	balance, err := h.walletSvc.GetBalance(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Balance: balance.SOL,
	})
}

// Airdrop handles POST /airdrop.
func (h *WalletHandler) Airdrop(c *gin.Context) {
	var req dto.AirdropRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.walletSvc.Airdrop(c.Request.Context(), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, result.Signature)
	c.Set(middleware.CtxWalletAddress, h.walletSvc.Address())

	response.OK(c, dto.AirdropResponse{
		Message:    airdropSuccessMessage,
		Tx:         result.Signature,
		NewBalance: result.NewBalance,
	})
}

// Address handles GET /address.
func (h *WalletHandler) Address(c *gin.Context) {
	response.OK(c, dto.AddressResponse{Address: h.walletSvc.Address()})
}
