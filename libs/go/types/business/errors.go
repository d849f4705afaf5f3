package business

// SyntaxError reports a malformed amount keystroke. The offending value
// is rejected before it reaches form state.
type SyntaxError struct {
	Value string
}

func (e *SyntaxError) Error() string {
	return "Invalid amount format"
}

// ValidationError reports a semantic submit-time failure: empty, zero
// or oversized amounts, or an identical token pair. Form state is left
// untouched apart from the surfaced error.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SettlementError reports a failed swap execution. Amounts are
// preserved so the user can retry.
type SettlementError struct {
	Reason string
}

func (e *SettlementError) Error() string {
	return e.Reason
}
