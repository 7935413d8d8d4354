// Package flow contains the page-level controllers: small state machines
// that sit between the UI and the data-access clients, one per page of the
// storefront.
package flow

import (
	"context"
	"sync"

	"github.com/adaeze/nairamart/market"
)

// Phase is the lifecycle of a page's data fetch.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// DefaultPageSize matches the catalog page length the storefront renders.
const DefaultPageSize = 20

// Lister is the catalog dependency of CatalogFlow.
type Lister interface {
	List(ctx context.Context, page, pageSize int) (market.Page, error)
}

// CatalogFlow drives the catalog page: load a page, filter it client-side,
// move between pages. Every fetch carries a sequence number and responses
// that are not the latest issued are discarded, so the last page the user
// requested wins even when an older response arrives late.
type CatalogFlow struct {
	mu         sync.Mutex
	catalog    Lister
	pageSize   int
	seq        uint64
	phase      Phase
	page       market.Page
	totalPages int
	filter     string
	err        error
}

// NewCatalogFlow creates a flow positioned on page 1 in the Loading phase.
// A pageSize of 0 or less uses DefaultPageSize.
func NewCatalogFlow(catalog Lister, pageSize int) *CatalogFlow {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &CatalogFlow{
		catalog:  catalog,
		pageSize: pageSize,
		phase:    PhaseLoading,
		page:     market.Page{Number: 1, Size: pageSize},
	}
}

// LoadPage fetches the requested page, clamping the number into the known
// page range first. Until a fetch has established the page count the upper
// bound is unknown and the requested number passes through as-is. The filter
// text is untouched: filtering never refetches.
func (f *CatalogFlow) LoadPage(ctx context.Context, number int) error {
	f.mu.Lock()
	if number < 1 {
		number = 1
	}
	if f.totalPages > 0 && number > f.totalPages {
		number = f.totalPages
	}
	f.seq++
	seq := f.seq
	f.phase = PhaseLoading
	f.err = nil
	f.page.Number = number
	pageSize := f.pageSize
	f.mu.Unlock()

	page, err := f.catalog.List(ctx, number, pageSize)

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.seq {
		// A newer request superseded this one; its response decides.
		return nil
	}
	if err != nil {
		f.phase = PhaseFailed
		f.err = err
		return err
	}
	f.page = page
	f.totalPages = page.TotalPages()
	if f.page.Number > f.totalPages {
		// The collection shrank while the request was in flight.
		f.page.Number = f.totalPages
	}
	f.phase = PhaseReady
	return nil
}

// Next loads the following page, respecting the upper bound.
func (f *CatalogFlow) Next(ctx context.Context) error {
	f.mu.Lock()
	number := f.page.Number + 1
	f.mu.Unlock()
	return f.LoadPage(ctx, number)
}

// Prev loads the preceding page, respecting the lower bound.
func (f *CatalogFlow) Prev(ctx context.Context) error {
	f.mu.Lock()
	number := f.page.Number - 1
	f.mu.Unlock()
	return f.LoadPage(ctx, number)
}

// SetFilter updates the client-side filter text. Only the loaded page is
// searched; the backend is never consulted.
func (f *CatalogFlow) SetFilter(query string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter = query
}

// Visible returns the loaded page's coins matching the current filter.
func (f *CatalogFlow) Visible() []market.Coin {
	f.mu.Lock()
	defer f.mu.Unlock()
	return market.Filter(f.page.Items, f.filter)
}

// Phase returns the current lifecycle phase.
func (f *CatalogFlow) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// Err returns the failure from the most recent fetch, if any.
func (f *CatalogFlow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Page returns the currently loaded page.
func (f *CatalogFlow) Page() market.Page {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}

// TotalPages returns the page count computed from the last fetch, or 0
// before any fetch has completed.
func (f *CatalogFlow) TotalPages() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.totalPages
}

// CanPrev reports whether a previous page exists.
func (f *CatalogFlow) CanPrev() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page.Number > 1
}

// CanNext reports whether a following page exists.
func (f *CatalogFlow) CanNext() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page.Number < f.totalPages
}
