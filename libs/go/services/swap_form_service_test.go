package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/swapline/swapline-api/libs/go/mocks"
	"github.com/swapline/swapline-api/libs/go/services"
	"github.com/swapline/swapline-api/libs/go/types/business"
)

// fixedRatePrices stubs the price table with a mutable ETH/USDC rate.
func fixedRatePrices(ctrl *gomock.Controller, rate *float64, available *bool) *mocks.MockPriceService {
	prices := mocks.NewMockPriceService(ctrl)
	prices.EXPECT().GetRate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(from, to business.Currency) (float64, bool) {
			if !*available {
				return 0, false
			}
			if from == to {
				return 1, true
			}
			if from == business.Currency("ETH") {
				return *rate, true
			}
			return 1 / *rate, true
		},
	).AnyTimes()
	return prices
}

func newFormService(t *testing.T, rate *float64, available *bool, executor *mocks.MockSwapExecutor, options ...services.SwapFormOption) *services.SwapFormService {
	t.Helper()
	ctrl := gomock.NewController(t)
	prices := fixedRatePrices(ctrl, rate, available)
	return services.NewSwapFormService(prices, services.NewConversionService(), executor, options...)
}

func TestSwapFormService_EditFromDerivesTo(t *testing.T) {
	rate, available := 3500.0, true
	form := newFormService(t, &rate, &available, nil)

	require.NoError(t, form.EditAmount(business.FieldFrom, "2"))

	view := form.Snapshot()
	assert.Equal(t, "2", view.State.FromAmount)
	assert.Equal(t, "7000.000000", view.State.ToAmount)
	assert.Equal(t, business.FieldFrom, view.State.LastEdited)
}

func TestSwapFormService_EditToDerivesFrom(t *testing.T) {
	rate, available := 3500.0, true
	form := newFormService(t, &rate, &available, nil)

	require.NoError(t, form.EditAmount(business.FieldTo, "100"))

	view := form.Snapshot()
	assert.Equal(t, "100", view.State.ToAmount)
	assert.Equal(t, "0.028571", view.State.FromAmount)
	assert.Equal(t, business.FieldTo, view.State.LastEdited)
}

func TestSwapFormService_MalformedEditLeavesStateUntouched(t *testing.T) {
	rate, available := 3500.0, true
	form := newFormService(t, &rate, &available, nil)

	require.NoError(t, form.EditAmount(business.FieldFrom, "2"))

	tests := []string{"2a", "1.2.3", "-1", "1e5", " 2"}
	for _, value := range tests {
		err := form.EditAmount(business.FieldFrom, value)
		require.Error(t, err, "value %q should be rejected", value)

		var syntaxErr *business.SyntaxError
		assert.ErrorAs(t, err, &syntaxErr)

		view := form.Snapshot()
		assert.Equal(t, "2", view.State.FromAmount, "value %q must not replace the committed amount", value)
		assert.Equal(t, "7000.000000", view.State.ToAmount)
		assert.Equal(t, "Invalid amount", view.FieldError)
	}
}

func TestSwapFormService_ClearingAmountClearsCounterpart(t *testing.T) {
	rate, available := 3500.0, true
	form := newFormService(t, &rate, &available, nil)

	require.NoError(t, form.EditAmount(business.FieldFrom, "2"))
	require.NoError(t, form.EditAmount(business.FieldFrom, ""))

	view := form.Snapshot()
	assert.Empty(t, view.State.FromAmount)
	assert.Empty(t, view.State.ToAmount)
}

func TestSwapFormService_RateChangeRecomputesOnlyDerivedField(t *testing.T) {
	rate, available := 3500.0, true
	form := newFormService(t, &rate, &available, nil)

	require.NoError(t, form.EditAmount(business.FieldFrom, "2"))

	rate = 3600.0
	form.RateChanged()

	view := form.Snapshot()
	assert.Equal(t, "2", view.State.FromAmount, "user-entered field must survive rate changes")
	assert.Equal(t, "7200.000000", view.State.ToAmount)
	assert.Equal(t, business.FieldFrom, view.State.LastEdited)
}

func TestSwapFormService_RateChangeWithToEdited(t *testing.T) {
	rate, available := 3500.0, true
	form := newFormService(t, &rate, &available, nil)

	require.NoError(t, form.EditAmount(business.FieldTo, "7000"))
	require.Equal(t, "2.000000", form.Snapshot().State.FromAmount)

	rate = 7000.0
	form.RateChanged()

	view := form.Snapshot()
	assert.Equal(t, "7000", view.State.ToAmount)
	assert.Equal(t, "1.000000", view.State.FromAmount)
}

func TestSwapFormService_RateUnavailableClearsDerivedField(t *testing.T) {
	rate, available := 3500.0, true
	form := newFormService(t, &rate, &available, nil)

	require.NoError(t, form.EditAmount(business.FieldFrom, "2"))
	require.Equal(t, "7000.000000", form.Snapshot().State.ToAmount)

	available = false
	form.RateChanged()

	view := form.Snapshot()
	assert.Equal(t, "2", view.State.FromAmount)
	assert.Empty(t, view.State.ToAmount)
	assert.Nil(t, view.Rate)
}

func TestSwapFormService_SwapDirectionIsInvolution(t *testing.T) {
	rate, available := 3500.0, true
	form := newFormService(t, &rate, &available, nil)

	require.NoError(t, form.EditAmount(business.FieldFrom, "2"))
	before := form.Snapshot().State

	form.SwapDirection()
	swapped := form.Snapshot().State
	assert.Equal(t, before.ToToken, swapped.FromToken)
	assert.Equal(t, before.FromToken, swapped.ToToken)
	assert.Equal(t, before.ToAmount, swapped.FromAmount)
	assert.Equal(t, before.FromAmount, swapped.ToAmount)
	assert.Equal(t, business.FieldTo, swapped.LastEdited)

	form.SwapDirection()
	assert.Equal(t, before, form.Snapshot().State)
}

func TestSwapFormService_ChangeToken(t *testing.T) {
	rate, available := 3500.0, true
	form := newFormService(t, &rate, &available, nil)

	require.NoError(t, form.EditAmount(business.FieldFrom, "2"))

	require.NoError(t, form.ChangeToken(business.FieldTo, "usdt"))
	view := form.Snapshot()
	assert.Equal(t, business.Currency("USDT"), view.State.ToToken)
	assert.Equal(t, "2", view.State.FromAmount)

	err := form.ChangeToken(business.FieldTo, "NOPE")
	require.Error(t, err)
	assert.Equal(t, business.Currency("USDT"), form.Snapshot().State.ToToken)
}

func TestSwapFormService_SubmitValidationFailures(t *testing.T) {
	rate, available := 3500.0, true

	tests := []struct {
		name    string
		prepare func(form *services.SwapFormService)
		wantErr string
	}{
		{
			name:    "empty amount",
			prepare: func(form *services.SwapFormService) {},
			wantErr: "Amount is required",
		},
		{
			name: "zero amount",
			prepare: func(form *services.SwapFormService) {
				require.NoError(t, form.EditAmount(business.FieldFrom, "0"))
			},
			wantErr: "Amount must be greater than 0",
		},
		{
			name: "same token pair",
			prepare: func(form *services.SwapFormService) {
				require.NoError(t, form.EditAmount(business.FieldFrom, "2"))
				require.NoError(t, form.ChangeToken(business.FieldTo, "ETH"))
			},
			wantErr: "Cannot swap the same token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := newFormService(t, &rate, &available, nil)
			tt.prepare(form)

			transaction, err := form.Submit(context.Background())
			require.Error(t, err)
			assert.Nil(t, transaction)

			var validationErr *business.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantErr, validationErr.Message)

			view := form.Snapshot()
			assert.Equal(t, business.PhaseIdle, view.Phase)
			assert.Equal(t, tt.wantErr, view.FieldError)
			assert.False(t, view.IsSubmitting)
		})
	}
}

func TestSwapFormService_SubmitRateUnavailable(t *testing.T) {
	rate, available := 3500.0, true
	form := newFormService(t, &rate, &available, nil)

	require.NoError(t, form.EditAmount(business.FieldFrom, "2"))

	available = false
	_, err := form.Submit(context.Background())
	require.Error(t, err)

	var validationErr *business.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Exchange rate unavailable. Please try again later.", validationErr.Message)
}

func TestSwapFormService_SubmitSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	rate, available := 3500.0, true

	executor := mocks.NewMockSwapExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), 3500.0).DoAndReturn(
		func(_ context.Context, state business.SwapFormState, rateArg float64) (*business.SwapTransaction, error) {
			assert.Equal(t, "2", state.FromAmount)
			return &business.SwapTransaction{
				ID:           "txn_test",
				FromToken:    state.FromToken,
				ToToken:      state.ToToken,
				FromAmount:   2,
				ToAmount:     7000,
				ExchangeRate: rateArg,
				Timestamp:    time.Now(),
				Status:       business.StatusCompleted,
			}, nil
		},
	)

	form := newFormService(t, &rate, &available, executor, services.WithSuccessWindow(30*time.Millisecond))
	require.NoError(t, form.EditAmount(business.FieldFrom, "2"))

	transaction, err := form.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, transaction)
	assert.Equal(t, "txn_test", transaction.ID)

	view := form.Snapshot()
	assert.Equal(t, business.PhaseSucceeded, view.Phase)
	assert.Empty(t, view.State.FromAmount)
	assert.Empty(t, view.State.ToAmount)
	assert.Empty(t, view.FieldError)
	require.NotNil(t, view.LastTransaction)
	assert.Equal(t, "txn_test", view.LastTransaction.ID)

	// After the display window the form returns to idle on its own.
	assert.Eventually(t, func() bool {
		return form.Snapshot().Phase == business.PhaseIdle
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "txn_test", form.Snapshot().LastTransaction.ID)
}

func TestSwapFormService_SubmitFailureRetainsAmounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	rate, available := 3500.0, true

	executor := mocks.NewMockSwapExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(
		nil, &business.SettlementError{Reason: "Swap failed. Please try again."},
	)

	form := newFormService(t, &rate, &available, executor)
	require.NoError(t, form.EditAmount(business.FieldFrom, "2"))

	transaction, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Nil(t, transaction)

	var settlementErr *business.SettlementError
	require.ErrorAs(t, err, &settlementErr)

	view := form.Snapshot()
	assert.Equal(t, business.PhaseIdle, view.Phase)
	assert.Equal(t, "2", view.State.FromAmount, "failed swaps keep the amounts for retry")
	assert.Equal(t, "7000.000000", view.State.ToAmount)
	assert.NotEmpty(t, view.FieldError)
	assert.Nil(t, view.LastTransaction)
}

func TestSwapFormService_ConcurrentSubmitRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	rate, available := 3500.0, true

	release := make(chan struct{})
	started := make(chan struct{})

	executor := mocks.NewMockSwapExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, state business.SwapFormState, rateArg float64) (*business.SwapTransaction, error) {
			close(started)
			<-release
			return &business.SwapTransaction{ID: "txn_blocked", Status: business.StatusCompleted}, nil
		},
	)

	form := newFormService(t, &rate, &available, executor, services.WithSuccessWindow(time.Hour))
	require.NoError(t, form.EditAmount(business.FieldFrom, "2"))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := form.Submit(context.Background())
		assert.NoError(t, err)
	}()

	<-started
	assert.True(t, form.Snapshot().IsSubmitting)

	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, services.ErrSwapInProgress)

	close(release)
	wg.Wait()

	assert.False(t, form.Snapshot().IsSubmitting)
}
