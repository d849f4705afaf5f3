package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swapline/swapline-api/libs/go/interfaces"
	"github.com/swapline/swapline-api/libs/go/types/api/requests"
	"github.com/swapline/swapline-api/libs/go/types/api/responses"
	"github.com/swapline/swapline-api/libs/go/types/business"
)

type SwapHandler struct {
	common      *CommonServices
	formService interfaces.SwapFormService
}

// NewSwapHandler creates a handler with interface dependencies.
func NewSwapHandler(common *CommonServices, formService interfaces.SwapFormService) *SwapHandler {
	return &SwapHandler{
		common:      common,
		formService: formService,
	}
}

// GetSwapState returns the current form state
// @Summary Get swap form state
// @Description Get the tokens, amounts, submit phase, and last transaction of the swap form
// @Tags swap
// @Accept json
// @Produce json
// @Success 200 {object} responses.SwapStateResponse
// @Router /swap [get]
func (h *SwapHandler) GetSwapState(c *gin.Context) {
	c.JSON(http.StatusOK, responses.NewSwapStateResponse(h.formService.Snapshot()))
}

// ChangeAmount applies an edit to one of the amount fields
// @Summary Edit a swap amount
// @Description Apply a keystroke-level edit to the from or to amount; the counterpart is derived
// @Tags swap
// @Accept json
// @Produce json
// @Param request body requests.AmountChangeRequest true "Field and new value"
// @Success 200 {object} responses.SwapStateResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /swap/amount [post]
func (h *SwapHandler) ChangeAmount(c *gin.Context) {
	var req requests.AmountChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	field, err := business.ParseField(req.Field)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.formService.EditAmount(field, req.Value); err != nil {
		sendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.NewSwapStateResponse(h.formService.Snapshot()))
}

// ChangeToken selects a different token for one side of the swap
// @Summary Change a swap token
// @Description Select a different token for the from or to side; the derived amount is rebuilt
// @Tags swap
// @Accept json
// @Produce json
// @Param request body requests.TokenChangeRequest true "Field and token symbol"
// @Success 200 {object} responses.SwapStateResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /swap/token [post]
func (h *SwapHandler) ChangeToken(c *gin.Context) {
	var req requests.TokenChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	field, err := business.ParseField(req.Field)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.formService.ChangeToken(field, req.Currency); err != nil {
		sendError(c, http.StatusBadRequest, "Unsupported token symbol")
		return
	}

	c.JSON(http.StatusOK, responses.NewSwapStateResponse(h.formService.Snapshot()))
}

// SwapDirection exchanges the two sides of the form
// @Summary Swap direction
// @Description Exchange the from and to sides: tokens, amounts, and the last-edited marker
// @Tags swap
// @Accept json
// @Produce json
// @Success 200 {object} responses.SwapStateResponse
// @Router /swap/direction [post]
func (h *SwapHandler) SwapDirection(c *gin.Context) {
	h.formService.SwapDirection()
	c.JSON(http.StatusOK, responses.NewSwapStateResponse(h.formService.Snapshot()))
}

// SubmitSwap validates and settles the swap
// @Summary Submit the swap
// @Description Validate the form and run settlement; at most one swap is in flight at a time
// @Tags swap
// @Accept json
// @Produce json
// @Success 200 {object} responses.SwapTransactionResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 422 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /swap/submit [post]
func (h *SwapHandler) SubmitSwap(c *gin.Context) {
	transaction, err := h.formService.Submit(c.Request.Context())
	if err != nil {
		sendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.NewSwapTransactionResponse(*transaction))
}
