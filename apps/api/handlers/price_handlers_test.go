package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pkg/errors"

	"github.com/swapline/swapline-api/libs/go/mocks"
	"github.com/swapline/swapline-api/libs/go/types/api/responses"
	"github.com/swapline/swapline-api/libs/go/types/business"
)

func TestPriceHandler_GetPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	priceService := mocks.NewMockPriceService(ctrl)
	priceService.EXPECT().Snapshot().Return(business.PriceSnapshot{
		Prices: map[business.Currency]float64{
			"ETH":  3500,
			"USDC": 1,
		},
		Tokens: []business.Token{
			{Symbol: "ETH", Price: floatPtr(3500)},
			{Symbol: "USDC", Price: floatPtr(1)},
			{Symbol: "SOL"},
		},
		UpdatedAt: time.Now(),
	})

	common := NewCommonServices(CommonServicesConfig{PriceService: priceService})
	handler := NewPriceHandler(common, priceService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/prices", nil)

	handler.GetPrices(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body responses.PricesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3500.0, body.Prices["ETH"])
	assert.Len(t, body.Tokens, 3)
	assert.NotNil(t, body.UpdatedAt)
	assert.Empty(t, body.Error)
}

func TestPriceHandler_GetPricesFeedDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	priceService := mocks.NewMockPriceService(ctrl)
	priceService.EXPECT().Snapshot().Return(business.PriceSnapshot{
		Prices: map[business.Currency]float64{},
		Err:    "Failed to fetch token prices. Please try again later.",
	})

	common := NewCommonServices(CommonServicesConfig{PriceService: priceService})
	handler := NewPriceHandler(common, priceService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/prices", nil)

	handler.GetPrices(c)

	// The endpoint stays 200: an empty table with an error message is a
	// valid read model, not a request failure.
	assert.Equal(t, http.StatusOK, w.Code)

	var body responses.PricesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Prices)
	assert.Equal(t, "Failed to fetch token prices. Please try again later.", body.Error)
}

func TestPriceHandler_RefreshPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	priceService := mocks.NewMockPriceService(ctrl)
	gomock.InOrder(
		priceService.EXPECT().Refresh(gomock.Any()).Return(nil),
		priceService.EXPECT().Snapshot().Return(business.PriceSnapshot{
			Prices:    map[business.Currency]float64{"ETH": 3500},
			UpdatedAt: time.Now(),
		}),
	)

	common := NewCommonServices(CommonServicesConfig{PriceService: priceService})
	handler := NewPriceHandler(common, priceService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/prices/refresh", nil)

	handler.RefreshPrices(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPriceHandler_RefreshPricesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	priceService := mocks.NewMockPriceService(ctrl)
	priceService.EXPECT().Refresh(gomock.Any()).Return(errors.New("feed unreachable"))

	common := NewCommonServices(CommonServicesConfig{PriceService: priceService})
	handler := NewPriceHandler(common, priceService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/prices/refresh", nil)

	handler.RefreshPrices(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body responses.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch token prices. Please try again later.", body.Error)
}

func floatPtr(f float64) *float64 {
	return &f
}
