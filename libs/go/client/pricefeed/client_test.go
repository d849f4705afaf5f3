package pricefeed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/swapline/swapline-api/libs/go/client/pricefeed"
	"github.com/swapline/swapline-api/libs/go/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	m.Run()
}

func TestClient_GetPrices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/prices.json", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"currency":"ETH","price":3500,"date":"2023-08-29T09:10:40.000Z"},
			{"currency":"USDC","price":1,"date":"2023-08-29T09:10:40.000Z"}
		]`))
	}))
	defer server.Close()

	client := pricefeed.NewClient("test-key", pricefeed.WithBaseURL(server.URL))

	quotes, err := client.GetPrices(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "ETH", quotes[0].Currency)
	assert.Equal(t, float64(3500), quotes[0].Price)
	assert.Equal(t, "USDC", quotes[1].Currency)
	assert.Equal(t, float64(1), quotes[1].Price)
}

func TestClient_GetPrices_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := pricefeed.NewClient("", pricefeed.WithBaseURL(server.URL))

	quotes, err := client.GetPrices(context.Background())
	assert.Error(t, err)
	assert.Nil(t, quotes)
}

func TestClient_GetPrices_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	client := pricefeed.NewClient("", pricefeed.WithBaseURL(server.URL))

	quotes, err := client.GetPrices(context.Background())
	assert.Error(t, err)
	assert.Nil(t, quotes)
}
