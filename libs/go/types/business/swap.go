package business

import (
	"fmt"
	"strings"
	"time"

	"github.com/swapline/swapline-api/libs/go/constants"
)

// Currency is a validated token symbol. Values are only constructed
// through ParseCurrency, so a Currency held by the form is always a
// member of the supported set.
type Currency string

// ParseCurrency normalizes and validates a raw token symbol against the
// supported set. Unknown symbols are rejected.
func ParseCurrency(raw string) (Currency, error) {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	if symbol == "" {
		return "", fmt.Errorf("token symbol is required")
	}
	for _, supported := range constants.SupportedTokens {
		if symbol == supported {
			return Currency(symbol), nil
		}
	}
	return "", fmt.Errorf("unsupported token symbol: %s", symbol)
}

// Field identifies one of the two linked amount inputs.
type Field string

const (
	FieldFrom Field = constants.FromField
	FieldTo   Field = constants.ToField
)

// ParseField validates a raw field name.
func ParseField(raw string) (Field, error) {
	switch Field(raw) {
	case FieldFrom, FieldTo:
		return Field(raw), nil
	default:
		return "", fmt.Errorf("unknown form field: %s", raw)
	}
}

// Counterpart returns the other amount field.
func (f Field) Counterpart() Field {
	if f == FieldFrom {
		return FieldTo
	}
	return FieldFrom
}

// Direction is the orientation of a conversion relative to the
// exchange rate: forward multiplies by the rate, backward divides.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
)

// SubmitPhase is the state of the submit cycle.
type SubmitPhase string

const (
	PhaseIdle       SubmitPhase = "idle"
	PhaseValidating SubmitPhase = "validating"
	PhaseSubmitting SubmitPhase = "submitting"
	PhaseSucceeded  SubmitPhase = "succeeded"
	PhaseFailed     SubmitPhase = "failed"
)

// TransactionStatus is the settlement outcome of a swap transaction.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = constants.PendingStatus
	StatusCompleted TransactionStatus = constants.CompletedStatus
	StatusFailed    TransactionStatus = constants.FailedStatus
)

// Token pairs a symbol with its latest quoted price. Price is nil until
// the feed has confirmed a quote for the symbol.
type Token struct {
	Symbol Currency `json:"symbol"`
	Price  *float64 `json:"price,omitempty"`
}

// SwapFormState is the form's committed state. Amounts are either empty
// or well-formed decimal strings; malformed input never reaches here.
type SwapFormState struct {
	FromToken  Currency `json:"from_token"`
	ToToken    Currency `json:"to_token"`
	FromAmount string   `json:"from_amount"`
	ToAmount   string   `json:"to_amount"`
	LastEdited Field    `json:"last_edited_field"`
}

// AmountFor returns the amount currently held by the given field.
func (s SwapFormState) AmountFor(field Field) string {
	if field == FieldFrom {
		return s.FromAmount
	}
	return s.ToAmount
}

// SwapTransaction is the record produced by a settlement attempt.
// It is immutable once its status leaves pending.
type SwapTransaction struct {
	ID           string            `json:"id"`
	FromToken    Currency          `json:"from_token"`
	ToToken      Currency          `json:"to_token"`
	FromAmount   float64           `json:"from_amount"`
	ToAmount     float64           `json:"to_amount"`
	ExchangeRate float64           `json:"exchange_rate"`
	Timestamp    time.Time         `json:"timestamp"`
	Status       TransactionStatus `json:"status"`
}

// SwapFormView is the read model exposed to the presentation layer.
type SwapFormView struct {
	State           SwapFormState
	Phase           SubmitPhase
	FieldError      string
	IsSubmitting    bool
	Rate            *float64
	LastTransaction *SwapTransaction
}

// PriceSnapshot is the price store's read model.
type PriceSnapshot struct {
	Prices    map[Currency]float64
	Tokens    []Token
	Loading   bool
	Err       string
	UpdatedAt time.Time
}
