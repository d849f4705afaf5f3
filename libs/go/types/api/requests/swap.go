package requests

// AmountChangeRequest carries a keystroke-level edit of one of the two
// linked amount fields.
type AmountChangeRequest struct {
	Field string `json:"field" binding:"required,oneof=from to"`
	Value string `json:"value"`
}

// TokenChangeRequest selects a different token for one side of the swap.
type TokenChangeRequest struct {
	Field    string `json:"field" binding:"required,oneof=from to"`
	Currency string `json:"currency" binding:"required"`
}
