package responses

import (
	"time"

	"github.com/swapline/swapline-api/libs/go/types/business"
)

// TokenResponse pairs a token symbol with its latest price, if known.
type TokenResponse struct {
	Currency string   `json:"currency"`
	Price    *float64 `json:"price,omitempty"`
}

// PricesResponse is the price store read model returned to the UI.
type PricesResponse struct {
	Prices    map[string]float64 `json:"prices"`
	Tokens    []TokenResponse    `json:"tokens"`
	Loading   bool               `json:"loading"`
	Error     string             `json:"error,omitempty"`
	UpdatedAt *time.Time         `json:"updated_at,omitempty"`
}

// NewPricesResponse maps the business snapshot onto the API shape.
func NewPricesResponse(snapshot business.PriceSnapshot) PricesResponse {
	prices := make(map[string]float64, len(snapshot.Prices))
	for symbol, price := range snapshot.Prices {
		prices[string(symbol)] = price
	}

	tokens := make([]TokenResponse, 0, len(snapshot.Tokens))
	for _, token := range snapshot.Tokens {
		tokens = append(tokens, TokenResponse{
			Currency: string(token.Symbol),
			Price:    token.Price,
		})
	}

	resp := PricesResponse{
		Prices:  prices,
		Tokens:  tokens,
		Loading: snapshot.Loading,
		Error:   snapshot.Err,
	}
	if !snapshot.UpdatedAt.IsZero() {
		updatedAt := snapshot.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
