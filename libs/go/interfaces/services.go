package interfaces

import (
	"context"

	"github.com/swapline/swapline-api/libs/go/client/pricefeed"
	"github.com/swapline/swapline-api/libs/go/types/business"
)

// PriceFeedAPI is the external feed consumed by the price store.
type PriceFeedAPI interface {
	GetPrices(ctx context.Context) ([]pricefeed.Quote, error)
}

// PriceService owns the price table and the polling loop.
type PriceService interface {
	Refresh(ctx context.Context) error
	StartPolling(ctx context.Context)
	AddListener(listener func())
	Lookup(symbol business.Currency) (float64, bool)
	GetRate(from, to business.Currency) (float64, bool)
	Snapshot() business.PriceSnapshot
}

// ConversionService derives one amount field from the other.
type ConversionService interface {
	Convert(amount string, rate float64, direction business.Direction) string
}

// SwapExecutor simulates the asynchronous settlement of a swap.
type SwapExecutor interface {
	Execute(ctx context.Context, state business.SwapFormState, rate float64) (*business.SwapTransaction, error)
}

// SwapFormService owns the swap form state machine.
type SwapFormService interface {
	EditAmount(field business.Field, value string) error
	ChangeToken(field business.Field, symbol string) error
	SwapDirection()
	RateChanged()
	Submit(ctx context.Context) (*business.SwapTransaction, error)
	Snapshot() business.SwapFormView
}
