package flow

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/adaeze/nairamart/browser"
)

// successCountdown is how many seconds the payment-success page lingers
// before returning to the catalog.
const successCountdown = 10

// Reference extracts the gateway's transaction reference from the page's
// query parameters. The gateway appends it as "reference"; older callbacks
// used "trxref".
func Reference(query url.Values) string {
	if ref := query.Get("reference"); ref != "" {
		return ref
	}
	return query.Get("trxref")
}

// SuccessOption configures a SuccessFlow.
type SuccessOption func(*SuccessFlow)

// WithTickInterval overrides the one-second countdown tick. Tests use this
// to run the countdown quickly.
func WithTickInterval(d time.Duration) SuccessOption {
	return func(f *SuccessFlow) {
		f.interval = d
	}
}

// SuccessFlow drives the post-payment landing page: it holds the countdown
// after which the browser returns to the catalog.
type SuccessFlow struct {
	nav      browser.Navigator
	interval time.Duration

	mu        sync.Mutex
	remaining int

	stop     chan struct{}
	stopOnce sync.Once
}

// NewSuccessFlow creates a flow counting down from ten seconds.
func NewSuccessFlow(nav browser.Navigator, opts ...SuccessOption) *SuccessFlow {
	f := &SuccessFlow{
		nav:       nav,
		interval:  time.Second,
		remaining: successCountdown,
		stop:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Run counts down and then navigates back to the catalog. It returns when
// the countdown completes, the context is cancelled, or Stop is called.
func (f *SuccessFlow) Run(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-f.stop:
			return
		case <-ticker.C:
			f.mu.Lock()
			f.remaining--
			done := f.remaining <= 0
			f.mu.Unlock()
			if done {
				f.nav.Navigate(browser.RouteCatalog)
				return
			}
		}
	}
}

// Remaining returns the seconds left on the countdown.
func (f *SuccessFlow) Remaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.remaining
}

// Stop cancels the pending auto-navigation, for when the user clicks
// through on their own.
func (f *SuccessFlow) Stop() {
	f.stopOnce.Do(func() { close(f.stop) })
}
