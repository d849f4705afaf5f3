package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swapline/swapline-api/libs/go/interfaces"
	"github.com/swapline/swapline-api/libs/go/logger"
	"github.com/swapline/swapline-api/libs/go/middleware"
	"github.com/swapline/swapline-api/libs/go/services"
	"github.com/swapline/swapline-api/libs/go/types/api/responses"
	"github.com/swapline/swapline-api/libs/go/types/business"
)

// CommonServices holds the shared dependencies used across handlers.
type CommonServices struct {
	logger          *zap.Logger
	PriceService    interfaces.PriceService
	SwapFormService interfaces.SwapFormService
}

// CommonServicesConfig contains all dependencies needed to create CommonServices.
type CommonServicesConfig struct {
	Logger          *zap.Logger
	PriceService    interfaces.PriceService
	SwapFormService interfaces.SwapFormService
}

// NewCommonServices creates a new instance of CommonServices.
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}

	return &CommonServices{
		logger:          config.Logger,
		PriceService:    config.PriceService,
		SwapFormService: config.SwapFormService,
	}
}

// sendError writes a standard error body and logs it with the request's
// correlation ID.
func sendError(c *gin.Context, status int, message string) {
	if logger.Log != nil {
		logger.Log.Warn("Request failed",
			zap.String("correlation_id", middleware.GetCorrelationID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.String("error", message),
		)
	}
	c.JSON(status, responses.ErrorResponse{Error: message})
}

// sendDomainError maps a business error onto the right HTTP status.
func sendDomainError(c *gin.Context, err error) {
	var syntaxErr *business.SyntaxError
	var validationErr *business.ValidationError
	var settlementErr *business.SettlementError

	switch {
	case errors.As(err, &syntaxErr):
		sendError(c, http.StatusBadRequest, syntaxErr.Error())
	case errors.As(err, &validationErr):
		sendError(c, http.StatusUnprocessableEntity, validationErr.Message)
	case errors.Is(err, services.ErrSwapInProgress):
		sendError(c, http.StatusConflict, "A swap is already in progress")
	case errors.As(err, &settlementErr):
		sendError(c, http.StatusBadGateway, settlementErr.Reason)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error")
	}
}
