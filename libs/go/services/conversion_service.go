package services

import (
	"fmt"
	"math"
	"strconv"

	"github.com/swapline/swapline-api/libs/go/types/business"
)

// conversionDecimals is the fixed display precision of derived amounts.
const conversionDecimals = 6

// ConversionService converts an amount in either direction across an
// exchange rate with truncation semantics: results are floored to six
// decimal places, never rounded up, so the displayed counterpart never
// overstates what the user would receive.
type ConversionService struct{}

// NewConversionService creates a new conversion service.
func NewConversionService() *ConversionService {
	return &ConversionService{}
}

// Convert derives the counterpart amount for the given raw amount
// string and rate. An absent or non-positive rate means no conversion
// is possible and yields the empty string, which is distinct from a
// conversion that results in zero. Amounts that parse to zero or below
// also yield the empty string: an unset field, not "0.000000".
func (s *ConversionService) Convert(amount string, rate float64, direction business.Direction) string {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return ""
	}

	parsed, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		parsed = 0
	}

	var raw float64
	if direction == business.DirectionForward {
		raw = parsed * rate
	} else {
		raw = parsed / rate
	}

	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return ""
	}

	// Floor, never round: floor(raw * 1e6) / 1e6.
	truncated := math.Floor(raw*1e6) / 1e6

	return fmt.Sprintf("%.*f", conversionDecimals, truncated)
}
