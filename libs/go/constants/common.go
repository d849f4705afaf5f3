package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Form fields
	FromField = "from"
	ToField   = "to"

	// Transaction status values
	PendingStatus   = "pending"
	CompletedStatus = "completed"
	FailedStatus    = "failed"
)

// SupportedTokens is the closed set of token symbols the swap form
// accepts. Symbols outside this set are rejected at the boundary even
// if the price feed happens to quote them.
var SupportedTokens = []string{
	"BTC", "ETH", "USDC", "USDT", "MATIC", "BNB", "ADA", "SOL", "DOT", "AVAX",
}
