package services

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/swapline/swapline-api/libs/go/constants"
	"github.com/swapline/swapline-api/libs/go/interfaces"
	"github.com/swapline/swapline-api/libs/go/logger"
	"github.com/swapline/swapline-api/libs/go/types/business"
)

// DefaultPollInterval is how often the price table is refreshed from
// the feed.
const DefaultPollInterval = 30 * time.Second

// PriceService owns the token price table. The table is replaced
// wholesale on every successful refresh; a failed refresh clears it to
// empty rather than serving stale quotes.
type PriceService struct {
	feed         interfaces.PriceFeedAPI
	logger       *zap.Logger
	pollInterval time.Duration

	mu        sync.RWMutex
	prices    map[business.Currency]float64
	loading   bool
	fetchErr  string
	updatedAt time.Time
	listeners []func()
}

// PriceServiceOption configures a PriceService.
type PriceServiceOption func(*PriceService)

// WithPollInterval overrides the refresh interval.
func WithPollInterval(interval time.Duration) PriceServiceOption {
	return func(s *PriceService) {
		s.pollInterval = interval
	}
}

// NewPriceService creates a price service backed by the given feed.
func NewPriceService(feed interfaces.PriceFeedAPI, options ...PriceServiceOption) *PriceService {
	service := &PriceService{
		feed:         feed,
		logger:       logger.Log,
		pollInterval: DefaultPollInterval,
		prices:       make(map[business.Currency]float64),
	}

	for _, option := range options {
		option(service)
	}

	return service
}

// Refresh fetches the feed once. On success the whole table is replaced
// atomically and any prior error is cleared; on failure the table is
// cleared to empty and the error recorded, so the rest of the system
// never operates on outdated prices. Listeners are notified either way.
func (s *PriceService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	quotes, err := s.feed.GetPrices(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.prices = make(map[business.Currency]float64)
		s.fetchErr = "Failed to fetch token prices. Please try again later."
		s.mu.Unlock()

		s.logger.Error("Price feed refresh failed", zap.Error(err))
		s.notifyListeners()
		return errors.Wrap(err, "price refresh failed")
	}

	fresh := make(map[business.Currency]float64, len(quotes))
	for _, quote := range quotes {
		// Entries without a positive price carry no usable quote.
		if quote.Price <= 0 {
			continue
		}
		// Duplicate symbols appear in the feed; the last entry wins.
		fresh[business.Currency(quote.Currency)] = quote.Price
	}
	s.prices = fresh
	s.fetchErr = ""
	s.updatedAt = time.Now()
	s.mu.Unlock()

	s.logger.Debug("Price table refreshed", zap.Int("entries", len(fresh)))
	s.notifyListeners()
	return nil
}

// StartPolling refreshes immediately and then on a fixed interval until
// the context is canceled.
func (s *PriceService) StartPolling(ctx context.Context) {
	go func() {
		s.logger.Info("Starting price feed polling", zap.Duration("interval", s.pollInterval))

		if err := s.Refresh(ctx); err != nil {
			s.logger.Warn("Initial price refresh failed", zap.Error(err))
		}

		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping price feed polling")
				return
			case <-ticker.C:
				if err := s.Refresh(ctx); err != nil {
					s.logger.Warn("Scheduled price refresh failed", zap.Error(err))
				}
			}
		}
	}()
}

// AddListener registers a callback invoked after every refresh attempt,
// successful or not.
func (s *PriceService) AddListener(listener func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// notifyListeners runs the registered callbacks outside the state lock
// so they can read the freshly committed table.
func (s *PriceService) notifyListeners() {
	s.mu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener()
	}
}

// Lookup returns the price for a symbol, if the feed has confirmed one.
func (s *PriceService) Lookup(symbol business.Currency) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	price, ok := s.prices[symbol]
	return price, ok
}

// GetRate returns price(from) / price(to). It is defined only when both
// symbols have a price, and is pure given the current table.
func (s *PriceService) GetRate(from, to business.Currency) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fromPrice, ok := s.prices[from]
	if !ok {
		return 0, false
	}
	toPrice, ok := s.prices[to]
	if !ok || toPrice == 0 {
		return 0, false
	}

	return fromPrice / toPrice, true
}

// Snapshot returns the read model exposed to the presentation layer.
// Supported tokens are always listed; prices stay nil until confirmed.
func (s *PriceService) Snapshot() business.PriceSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prices := make(map[business.Currency]float64, len(s.prices))
	for symbol, price := range s.prices {
		prices[symbol] = price
	}

	tokens := make([]business.Token, 0, len(constants.SupportedTokens))
	for _, symbol := range constants.SupportedTokens {
		token := business.Token{Symbol: business.Currency(symbol)}
		if price, ok := s.prices[business.Currency(symbol)]; ok {
			p := price
			token.Price = &p
		}
		tokens = append(tokens, token)
	}

	return business.PriceSnapshot{
		Prices:    prices,
		Tokens:    tokens,
		Loading:   s.loading,
		Err:       s.fetchErr,
		UpdatedAt: s.updatedAt,
	}
}
