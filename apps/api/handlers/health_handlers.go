package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swapline/swapline-api/libs/go/types/api/responses"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health godoc
// @Summary Check the health of the server
// @Description Returns a simple "ok" status
// @Tags health
// @Accept json
// @Produce json
// @Tags exclude
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthResponse{
		Status: "ok",
	})
}
