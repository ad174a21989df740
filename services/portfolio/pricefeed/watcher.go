package pricefeed

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcfolio/btcfolio/internal/pkg/logger"
	"github.com/btcfolio/btcfolio/internal/pkg/models"
	"github.com/btcfolio/btcfolio/services/portfolio"
	apperrors "github.com/btcfolio/btcfolio/services/portfolio/errors"
)

// Watcher polls the spot price source on a fixed interval and retains the
// last successful quote. A fetch failure never clears the previous price;
// the loop keeps running and the next tick retries implicitly.
//
// The watcher is tied to the process lifetime through Start/Stop so the
// polling goroutine is never leaked past teardown.
type Watcher struct {
	gw       portfolio.PortfolioGW
	asset    string
	currency string
	interval time.Duration

	mu    sync.RWMutex
	quote models.PriceQuote
	known bool

	// inFlight suppresses overlapping polls
	inFlight int32

	cancel context.CancelFunc
	done   chan struct{}
}

// NewWatcher creates a price watcher from the feed configuration
func NewWatcher(gw portfolio.PortfolioGW, cfg models.PriceFeedConfig) *Watcher {
	interval := time.Duration(cfg.IntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 60 * time.Second
	}

	return &Watcher{
		gw:       gw,
		asset:    cfg.Asset,
		currency: cfg.Currency,
		interval: interval,
	}
}

// Start launches the polling loop. The first fetch happens immediately.
func (w *Watcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	go w.run(ctx)
}

// Stop cancels the polling loop and waits for it to exit, bounded by ctx.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel == nil {
		return nil
	}
	w.cancel()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	if _, err := w.Refresh(ctx); err != nil {
		logger.Warn("Initial price fetch failed", logger.ErrorField(err))
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := w.Refresh(ctx); err != nil {
				logger.Warn("Price poll failed, keeping last quote",
					logger.ErrorField(err),
					logger.String("asset", w.asset),
				)
			}
		}
	}
}

// Refresh fetches the spot price once, on demand or from the poll loop.
// A poll already in flight suppresses starting another; the caller then gets
// the last known quote.
func (w *Watcher) Refresh(ctx context.Context) (models.PriceQuote, error) {
	if !atomic.CompareAndSwapInt32(&w.inFlight, 0, 1) {
		quote, known := w.Current()
		if !known {
			return quote, apperrors.ErrPriceUnavailable
		}
		return quote, nil
	}
	defer atomic.StoreInt32(&w.inFlight, 0)

	price, err := w.gw.FetchPrice(ctx)
	if err != nil {
		quote, _ := w.Current()
		return quote, err
	}

	w.mu.Lock()
	w.quote = models.PriceQuote{
		Asset:     w.asset,
		Currency:  w.currency,
		Price:     price,
		UpdatedAt: time.Now(),
	}
	w.known = true
	quote := w.quote
	w.mu.Unlock()

	return quote, nil
}

// Current returns the last successful quote and whether one exists yet.
// The quote is marked stale once it outlives two poll intervals.
func (w *Watcher) Current() (models.PriceQuote, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	quote := w.quote
	if w.known && time.Since(quote.UpdatedAt) > 2*w.interval {
		quote.Stale = true
	}
	return quote, w.known
}
