package responses

import (
	"time"

	"github.com/swapline/swapline-api/libs/go/types/business"
)

// SwapTransactionResponse represents a settled (or failed) swap.
type SwapTransactionResponse struct {
	ID           string    `json:"id"`
	FromToken    string    `json:"from_token"`
	ToToken      string    `json:"to_token"`
	FromAmount   float64   `json:"from_amount"`
	ToAmount     float64   `json:"to_amount"`
	ExchangeRate float64   `json:"exchange_rate"`
	Timestamp    time.Time `json:"timestamp"`
	Status       string    `json:"status"`
}

// SwapStateResponse is the form read model returned to the UI.
type SwapStateResponse struct {
	FromToken       string                   `json:"from_token"`
	ToToken         string                   `json:"to_token"`
	FromAmount      string                   `json:"from_amount"`
	ToAmount        string                   `json:"to_amount"`
	LastEditedField string                   `json:"last_edited_field"`
	Phase           string                   `json:"phase"`
	IsSubmitting    bool                     `json:"is_submitting"`
	FieldError      string                   `json:"field_error,omitempty"`
	ExchangeRate    *float64                 `json:"exchange_rate,omitempty"`
	LastTransaction *SwapTransactionResponse `json:"last_transaction,omitempty"`
}

// NewSwapStateResponse maps the business read model onto the API shape.
func NewSwapStateResponse(view business.SwapFormView) SwapStateResponse {
	resp := SwapStateResponse{
		FromToken:       string(view.State.FromToken),
		ToToken:         string(view.State.ToToken),
		FromAmount:      view.State.FromAmount,
		ToAmount:        view.State.ToAmount,
		LastEditedField: string(view.State.LastEdited),
		Phase:           string(view.Phase),
		IsSubmitting:    view.IsSubmitting,
		FieldError:      view.FieldError,
		ExchangeRate:    view.Rate,
	}
	if view.LastTransaction != nil {
		resp.LastTransaction = NewSwapTransactionResponse(*view.LastTransaction)
	}
	return resp
}

// NewSwapTransactionResponse maps a business transaction onto the API shape.
func NewSwapTransactionResponse(txn business.SwapTransaction) *SwapTransactionResponse {
	return &SwapTransactionResponse{
		ID:           txn.ID,
		FromToken:    string(txn.FromToken),
		ToToken:      string(txn.ToToken),
		FromAmount:   txn.FromAmount,
		ToAmount:     txn.ToAmount,
		ExchangeRate: txn.ExchangeRate,
		Timestamp:    txn.Timestamp,
		Status:       string(txn.Status),
	}
}
