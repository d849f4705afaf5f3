package services

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swapline/swapline-api/libs/go/logger"
	"github.com/swapline/swapline-api/libs/go/types/business"
)

const (
	// defaultSettlementLatency simulates network and settlement delay.
	defaultSettlementLatency = 1500 * time.Millisecond

	// defaultFailureRate is the probability a settlement attempt fails.
	defaultFailureRate = 0.2
)

// SwapExecutorService simulates swap settlement against an exchange.
// Latency and the failure rate are injectable so tests run fast and
// deterministically.
type SwapExecutorService struct {
	logger      *zap.Logger
	latency     time.Duration
	failureRate float64
	rng         *rand.Rand
}

// SwapExecutorOption configures a SwapExecutorService.
type SwapExecutorOption func(*SwapExecutorService)

// WithSettlementLatency overrides the simulated settlement delay.
func WithSettlementLatency(latency time.Duration) SwapExecutorOption {
	return func(s *SwapExecutorService) {
		s.latency = latency
	}
}

// WithFailureRate overrides the simulated failure probability.
func WithFailureRate(rate float64) SwapExecutorOption {
	return func(s *SwapExecutorService) {
		s.failureRate = rate
	}
}

// WithRand overrides the randomness source.
func WithRand(rng *rand.Rand) SwapExecutorOption {
	return func(s *SwapExecutorService) {
		s.rng = rng
	}
}

// NewSwapExecutorService creates an executor with production defaults.
func NewSwapExecutorService(options ...SwapExecutorOption) *SwapExecutorService {
	service := &SwapExecutorService{
		logger:      logger.Log,
		latency:     defaultSettlementLatency,
		failureRate: defaultFailureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, option := range options {
		option(service)
	}

	return service
}

// Execute settles the swap described by the form state. A submitted
// swap always runs to completion: the delay is not interruptible and
// the outcome is reported even if the caller's context has expired.
func (s *SwapExecutorService) Execute(_ context.Context, state business.SwapFormState, rate float64) (*business.SwapTransaction, error) {
	time.Sleep(s.latency)

	if s.rng.Float64() < s.failureRate {
		s.logger.Warn("Swap settlement failed",
			zap.String("fromToken", string(state.FromToken)),
			zap.String("toToken", string(state.ToToken)),
		)
		return nil, &business.SettlementError{Reason: "Swap failed. Please try again."}
	}

	fromAmount, _ := strconv.ParseFloat(state.FromAmount, 64)
	toAmount, _ := strconv.ParseFloat(state.ToAmount, 64)

	transaction := &business.SwapTransaction{
		ID:           "txn_" + uuid.New().String(),
		FromToken:    state.FromToken,
		ToToken:      state.ToToken,
		FromAmount:   fromAmount,
		ToAmount:     toAmount,
		ExchangeRate: rate,
		Timestamp:    time.Now(),
		Status:       business.StatusCompleted,
	}

	s.logger.Info("Swap settled",
		zap.String("transactionID", transaction.ID),
		zap.String("fromToken", string(transaction.FromToken)),
		zap.String("toToken", string(transaction.ToToken)),
		zap.Float64("fromAmount", transaction.FromAmount),
		zap.Float64("exchangeRate", transaction.ExchangeRate),
	)

	return transaction, nil
}
