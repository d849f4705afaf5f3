package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swapline/swapline-api/libs/go/interfaces"
	"github.com/swapline/swapline-api/libs/go/logger"
	"github.com/swapline/swapline-api/libs/go/types/api/responses"
)

type PriceHandler struct {
	common       *CommonServices
	priceService interfaces.PriceService
}

// NewPriceHandler creates a handler with interface dependencies.
func NewPriceHandler(common *CommonServices, priceService interfaces.PriceService) *PriceHandler {
	return &PriceHandler{
		common:       common,
		priceService: priceService,
	}
}

// GetPrices returns the current token price table
// @Summary Get token prices
// @Description Get the latest price table, the supported token list, and the feed status
// @Tags prices
// @Accept json
// @Produce json
// @Success 200 {object} responses.PricesResponse
// @Router /prices [get]
func (h *PriceHandler) GetPrices(c *gin.Context) {
	snapshot := h.priceService.Snapshot()
	c.JSON(http.StatusOK, responses.NewPricesResponse(snapshot))
}

// RefreshPrices forces an immediate refresh from the price feed
// @Summary Refresh token prices
// @Description Fetch the price feed now instead of waiting for the next poll
// @Tags prices
// @Accept json
// @Produce json
// @Success 200 {object} responses.PricesResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /prices/refresh [post]
func (h *PriceHandler) RefreshPrices(c *gin.Context) {
	if err := h.priceService.Refresh(c.Request.Context()); err != nil {
		logger.Log.Error("Manual price refresh failed", zap.Error(err))
		sendError(c, http.StatusBadGateway, "Failed to fetch token prices. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, responses.NewPricesResponse(h.priceService.Snapshot()))
}
