package helpers

import (
	"math"
	"regexp"
	"strconv"

	"github.com/swapline/swapline-api/libs/go/types/business"
)

// MaxSafeAmount is the largest integer exactly representable in a
// float64 (2^53 - 1). Submitted amounts above it are rejected.
const MaxSafeAmount = float64(1<<53 - 1)

// wellFormedAmount accepts in-progress decimal entry: zero or more
// digits, an optional single dot, zero or more digits. "10." and ".5"
// pass; signs, exponents, letters and double dots do not.
var wellFormedAmount = regexp.MustCompile(`^[0-9]*\.?[0-9]*$`)

// IsWellFormedAmount is the keystroke-level syntactic check applied on
// every edit. The empty string is well-formed (an unset field).
func IsWellFormedAmount(raw string) bool {
	return wellFormedAmount.MatchString(raw)
}

// ValidateSwapSubmit is the submit-time semantic check on the amount
// and token pair. It returns a *business.ValidationError describing the
// first failure, or nil.
func ValidateSwapSubmit(amount string, fromToken, toToken business.Currency) error {
	if amount == "" {
		return &business.ValidationError{Message: "Amount is required"}
	}

	parsed, err := strconv.ParseFloat(amount, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return &business.ValidationError{Message: "Invalid amount"}
	}
	if parsed <= 0 {
		return &business.ValidationError{Message: "Amount must be greater than 0"}
	}
	if parsed > MaxSafeAmount {
		return &business.ValidationError{Message: "Amount is too large"}
	}

	if fromToken == toToken {
		return &business.ValidationError{Message: "Cannot swap the same token"}
	}

	return nil
}
