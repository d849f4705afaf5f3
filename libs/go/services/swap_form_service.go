package services

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/swapline/swapline-api/libs/go/helpers"
	"github.com/swapline/swapline-api/libs/go/interfaces"
	"github.com/swapline/swapline-api/libs/go/logger"
	"github.com/swapline/swapline-api/libs/go/types/business"
)

// ErrSwapInProgress is returned when a submit arrives while an earlier
// submission is still settling. At most one swap is in flight.
var ErrSwapInProgress = errors.New("a swap submission is already in progress")

// successDisplayWindow is how long the succeeded state is shown before
// the form returns to idle.
const successDisplayWindow = 3 * time.Second

const (
	defaultFromToken business.Currency = "ETH"
	defaultToToken   business.Currency = "USDC"
)

// SwapFormService owns the swap form state machine. The two amount
// fields are linked through the exchange rate: the user edits one, the
// other is derived. LastEdited records which field holds user input;
// derived values are always recomputed into its counterpart and never
// overwrite what the user typed.
type SwapFormService struct {
	prices     interfaces.PriceService
	conversion interfaces.ConversionService
	executor   interfaces.SwapExecutor
	logger     *zap.Logger

	successWindow time.Duration

	mu              sync.Mutex
	state           business.SwapFormState
	phase           business.SubmitPhase
	fieldError      string
	submitting      bool
	lastTransaction *business.SwapTransaction
}

// SwapFormOption configures a SwapFormService.
type SwapFormOption func(*SwapFormService)

// WithSuccessWindow overrides how long the succeeded phase is held.
func WithSuccessWindow(window time.Duration) SwapFormOption {
	return func(s *SwapFormService) {
		s.successWindow = window
	}
}

// NewSwapFormService creates a form service in its initial state.
func NewSwapFormService(
	prices interfaces.PriceService,
	conversion interfaces.ConversionService,
	executor interfaces.SwapExecutor,
	options ...SwapFormOption,
) *SwapFormService {
	service := &SwapFormService{
		prices:        prices,
		conversion:    conversion,
		executor:      executor,
		logger:        logger.Log,
		successWindow: successDisplayWindow,
		state: business.SwapFormState{
			FromToken:  defaultFromToken,
			ToToken:    defaultToToken,
			LastEdited: business.FieldFrom,
		},
		phase: business.PhaseIdle,
	}

	for _, option := range options {
		option(service)
	}

	return service
}

// EditAmount applies a keystroke-level edit to one of the amount
// fields. Input that is not a well-formed decimal is rejected without
// touching the committed state; accepted input becomes the new
// user-entered value and the counterpart is rederived from it.
func (s *SwapFormService) EditAmount(field business.Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !helpers.IsWellFormedAmount(value) {
		s.fieldError = "Invalid amount"
		return &business.SyntaxError{Value: value}
	}

	s.fieldError = ""
	s.setAmount(field, value)
	s.state.LastEdited = field
	s.recomputeCounterpartLocked()

	return nil
}

// ChangeToken selects a new token for one side of the swap. The derived
// amount is rebuilt against the new pair's rate; the user-entered
// amount is kept as typed.
func (s *SwapFormService) ChangeToken(field business.Field, symbol string) error {
	currency, err := business.ParseCurrency(symbol)
	if err != nil {
		return errors.Wrap(err, "change token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if field == business.FieldFrom {
		s.state.FromToken = currency
	} else {
		s.state.ToToken = currency
	}
	s.recomputeCounterpartLocked()

	return nil
}

// SwapDirection exchanges the two sides of the form wholesale: tokens,
// amounts, and the last-edited marker all cross over. Applying it twice
// restores the original state.
func (s *SwapFormService) SwapDirection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.FromToken, s.state.ToToken = s.state.ToToken, s.state.FromToken
	s.state.FromAmount, s.state.ToAmount = s.state.ToAmount, s.state.FromAmount
	s.state.LastEdited = s.state.LastEdited.Counterpart()
}

// RateChanged rederives the counterpart of the last-edited field from
// the current price table. The user-entered field is never overwritten.
func (s *SwapFormService) RateChanged() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeCounterpartLocked()
}

// recomputeCounterpartLocked rebuilds the derived amount field. Callers
// must hold s.mu.
func (s *SwapFormService) recomputeCounterpartLocked() {
	rate, ok := s.prices.GetRate(s.state.FromToken, s.state.ToToken)
	if !ok {
		rate = 0
	}

	source := s.state.AmountFor(s.state.LastEdited)

	direction := business.DirectionForward
	if s.state.LastEdited == business.FieldTo {
		direction = business.DirectionBackward
	}

	derived := s.conversion.Convert(source, rate, direction)
	s.setAmount(s.state.LastEdited.Counterpart(), derived)
}

// setAmount writes one amount field. Callers must hold s.mu.
func (s *SwapFormService) setAmount(field business.Field, value string) {
	if field == business.FieldFrom {
		s.state.FromAmount = value
	} else {
		s.state.ToAmount = value
	}
}

// Submit validates the form and, if it passes, runs settlement. At most
// one submission is in flight; concurrent submits are rejected with
// ErrSwapInProgress. On success the amounts are cleared and the form
// shows the succeeded phase for the display window before returning to
// idle. On failure the amounts are retained so the user can retry.
func (s *SwapFormService) Submit(ctx context.Context) (*business.SwapTransaction, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, ErrSwapInProgress
	}

	s.phase = business.PhaseValidating
	if err := helpers.ValidateSwapSubmit(s.state.FromAmount, s.state.FromToken, s.state.ToToken); err != nil {
		s.fieldError = err.Error()
		s.phase = business.PhaseIdle
		s.mu.Unlock()
		return nil, err
	}

	rate, ok := s.prices.GetRate(s.state.FromToken, s.state.ToToken)
	if !ok {
		err := &business.ValidationError{Message: "Exchange rate unavailable. Please try again later."}
		s.fieldError = err.Message
		s.phase = business.PhaseIdle
		s.mu.Unlock()
		return nil, err
	}

	s.fieldError = ""
	s.phase = business.PhaseSubmitting
	s.submitting = true
	snapshot := s.state
	s.mu.Unlock()

	s.logger.Info("Submitting swap",
		zap.String("fromToken", string(snapshot.FromToken)),
		zap.String("toToken", string(snapshot.ToToken)),
		zap.String("fromAmount", snapshot.FromAmount),
		zap.Float64("rate", rate),
	)

	// The lock is released while settlement runs so reads and edits stay
	// responsive; the submitting flag keeps further submits out.
	transaction, err := s.executor.Execute(ctx, snapshot, rate)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false

	if err != nil {
		// Amounts are retained so the user can retry the same swap.
		s.phase = business.PhaseIdle
		s.fieldError = err.Error()
		return nil, err
	}

	s.lastTransaction = transaction
	s.state.FromAmount = ""
	s.state.ToAmount = ""
	s.phase = business.PhaseSucceeded

	time.AfterFunc(s.successWindow, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.phase == business.PhaseSucceeded {
			s.phase = business.PhaseIdle
		}
	})

	return transaction, nil
}

// Snapshot returns the current view of the form.
func (s *SwapFormService) Snapshot() business.SwapFormView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := business.SwapFormView{
		State:           s.state,
		Phase:           s.phase,
		FieldError:      s.fieldError,
		IsSubmitting:    s.submitting,
		LastTransaction: s.lastTransaction,
	}

	if rate, ok := s.prices.GetRate(s.state.FromToken, s.state.ToToken); ok {
		view.Rate = &rate
	}

	return view
}
