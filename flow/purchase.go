package flow

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/adaeze/nairamart/browser"
	"github.com/adaeze/nairamart/market"
	"github.com/adaeze/nairamart/session"
	"github.com/adaeze/nairamart/transport"
)

var (
	// ErrNotAuthenticated is returned by Start when the session guard
	// bounces the user to the login page.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNoCoinSelected is the local validation failure for a missing
	// selection.
	ErrNoCoinSelected = errors.New("no cryptocurrency selected")
	// ErrInvalidQuantity is the local validation failure for a quantity
	// that is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

// purchasePageSize bounds the selectable set loaded on entry.
const purchasePageSize = 100

// genericBuyFailure is shown when the backend gives no usable message.
const genericBuyFailure = "failed to process purchase"

// Buyer is the catalog dependency of PurchaseFlow.
type Buyer interface {
	List(ctx context.Context, page, pageSize int) (market.Page, error)
	Buy(ctx context.Context, coinID int64, quantity float64, idempotencyKey string) (market.Redirect, error)
}

// Sessions is the read-only session view the flow guards on.
type Sessions interface {
	Current() session.State
}

// PurchaseFlow drives the buy page: guard on authentication, offer the
// first page of coins, validate the intent locally, and hand the browser to
// the hosted checkout page on success. The purchase intent is ephemeral —
// it lives only in this flow and dies with it.
type PurchaseFlow struct {
	mu         sync.Mutex
	catalog    Buyer
	sessions   Sessions
	nav        browser.Navigator
	coins      []market.Coin
	selected   *market.Coin
	quantity   float64
	intentKey  string
	processing bool
	errMsg     string
}

// NewPurchaseFlow creates a flow with quantity 1 and nothing selected.
func NewPurchaseFlow(catalog Buyer, sessions Sessions, nav browser.Navigator) *PurchaseFlow {
	return &PurchaseFlow{
		catalog:  catalog,
		sessions: sessions,
		nav:      nav,
		quantity: 1,
	}
}

// Start guards on the session and loads the selectable coins. An
// unauthenticated session is sent to the login route and nothing else runs.
// When preselectID is non-zero and present in the loaded set, that coin is
// pre-selected; an unknown id is silently ignored.
func (p *PurchaseFlow) Start(ctx context.Context, preselectID int64) error {
	if !p.sessions.Current().Authenticated {
		p.nav.Navigate(browser.RouteLogin)
		return ErrNotAuthenticated
	}

	page, err := p.catalog.List(ctx, 1, purchasePageSize)
	if err != nil {
		p.mu.Lock()
		p.errMsg = "failed to load cryptocurrencies"
		p.mu.Unlock()
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.coins = page.Items
	p.intentKey = uuid.NewString()
	if preselectID != 0 {
		for i := range p.coins {
			if p.coins[i].ID == preselectID {
				coin := p.coins[i]
				p.selected = &coin
				break
			}
		}
	}
	return nil
}

// Select picks a coin from the loaded set by id and reports whether it was
// found. A changed selection is a new purchase intent, so the idempotency
// key rotates.
func (p *PurchaseFlow) Select(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.coins {
		if p.coins[i].ID == id {
			coin := p.coins[i]
			p.selected = &coin
			p.intentKey = uuid.NewString()
			return true
		}
	}
	return false
}

// SetQuantity updates the intent's quantity and rotates the idempotency
// key. Validation happens at Submit, not here, so the UI can hold a
// transiently invalid value while the user types.
func (p *PurchaseFlow) SetQuantity(quantity float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quantity = quantity
	p.intentKey = uuid.NewString()
}

// Total is the advisory NGN amount shown before checkout, recomputed from
// the current selection and quantity. Zero when nothing is selected.
func (p *PurchaseFlow) Total() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.selected == nil {
		return 0
	}
	return market.Total(*p.selected, p.quantity)
}

// Submit validates the intent locally, then issues the buy call and sends
// the browser to the returned checkout URL. Validation failures never reach
// the network. On a backend failure the server's message (or a generic
// fallback) is surfaced and the processing flag clears so the user may
// retry; the retry reuses the same idempotency key because the intent did
// not change.
func (p *PurchaseFlow) Submit(ctx context.Context) error {
	p.mu.Lock()
	if p.selected == nil {
		p.errMsg = ErrNoCoinSelected.Error()
		p.mu.Unlock()
		return ErrNoCoinSelected
	}
	if p.quantity <= 0 {
		p.errMsg = ErrInvalidQuantity.Error()
		p.mu.Unlock()
		return ErrInvalidQuantity
	}
	coinID := p.selected.ID
	quantity := p.quantity
	key := p.intentKey
	p.processing = true
	p.errMsg = ""
	p.mu.Unlock()

	redirect, err := p.catalog.Buy(ctx, coinID, quantity, key)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.processing = false
		p.errMsg = serverMessage(err)
		return err
	}
	p.nav.Navigate(redirect.URL)
	return nil
}

// Coins returns the selectable set loaded by Start.
func (p *PurchaseFlow) Coins() []market.Coin {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.coins
}

// Selected returns a copy of the selected coin, or nil.
func (p *PurchaseFlow) Selected() *market.Coin {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.selected == nil {
		return nil
	}
	coin := *p.selected
	return &coin
}

// Quantity returns the intent's quantity.
func (p *PurchaseFlow) Quantity() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.quantity
}

// Processing reports whether a submission is in flight.
func (p *PurchaseFlow) Processing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.processing
}

// ErrMessage returns the user-visible error from the last operation, or "".
func (p *PurchaseFlow) ErrMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// serverMessage prefers the backend-provided error text over the generic
// fallback.
func serverMessage(err error) string {
	var se *transport.StatusError
	if errors.As(err, &se) {
		if msg := se.Message(); msg != "" {
			return msg
		}
	}
	return genericBuyFailure
}
