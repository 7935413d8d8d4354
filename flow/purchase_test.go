package flow

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaeze/nairamart/browser"
	"github.com/adaeze/nairamart/market"
	"github.com/adaeze/nairamart/session"
	"github.com/adaeze/nairamart/transport"
)

type fakeBuyer struct {
	coins []market.Coin

	listCalls int
	buyCalls  int
	buyErr    error

	lastCoinID   int64
	lastQuantity float64
	keys         []string
}

func (f *fakeBuyer) List(ctx context.Context, page, pageSize int) (market.Page, error) {
	f.listCalls++
	return market.Page{Items: f.coins, TotalCount: len(f.coins), Number: page, Size: pageSize}, nil
}

func (f *fakeBuyer) Buy(ctx context.Context, coinID int64, quantity float64, key string) (market.Redirect, error) {
	f.buyCalls++
	f.lastCoinID = coinID
	f.lastQuantity = quantity
	f.keys = append(f.keys, key)
	if f.buyErr != nil {
		return market.Redirect{}, f.buyErr
	}
	return market.Redirect{URL: "https://checkout.example.com/pay/ref-1", Reference: "ref-1"}, nil
}

type fakeSessions struct {
	state session.State
}

func (f *fakeSessions) Current() session.State { return f.state }

func authed() *fakeSessions {
	return &fakeSessions{state: session.State{
		Authenticated: true,
		User:          &session.Identity{ID: 1, Username: "amaka"},
	}}
}

func buyerCoins() []market.Coin {
	return []market.Coin{
		{ID: 1, Name: "Bitcoin", Symbol: "BTC", PriceNGN: 102400000},
		{ID: 2, Name: "Ethereum", Symbol: "ETH", PriceNGN: 5040000},
	}
}

func TestPurchaseStartGuardsUnauthenticated(t *testing.T) {
	buyer := &fakeBuyer{coins: buyerCoins()}
	nav := &browser.Recorder{}
	f := NewPurchaseFlow(buyer, &fakeSessions{}, nav)

	err := f.Start(t.Context(), 0)
	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, []string{browser.RouteLogin}, nav.Destinations)
	assert.Zero(t, buyer.listCalls, "guard must run before any fetch")
}

func TestPurchaseStartLoadsAndPreselects(t *testing.T) {
	buyer := &fakeBuyer{coins: buyerCoins()}
	nav := &browser.Recorder{}
	f := NewPurchaseFlow(buyer, authed(), nav)

	require.NoError(t, f.Start(t.Context(), 2))
	assert.Len(t, f.Coins(), 2)
	require.NotNil(t, f.Selected())
	assert.Equal(t, "ETH", f.Selected().Symbol)
	assert.Equal(t, 1.0, f.Quantity())
	assert.Empty(t, nav.Destinations)
}

func TestPurchaseStartIgnoresUnknownPreselect(t *testing.T) {
	buyer := &fakeBuyer{coins: buyerCoins()}
	f := NewPurchaseFlow(buyer, authed(), &browser.Recorder{})

	require.NoError(t, f.Start(t.Context(), 99))
	assert.Nil(t, f.Selected())
}

func TestPurchaseSubmitValidatesLocally(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *PurchaseFlow)
		wantErr error
	}{
		{
			name:    "nothing selected",
			setup:   func(f *PurchaseFlow) {},
			wantErr: ErrNoCoinSelected,
		},
		{
			name: "zero quantity",
			setup: func(f *PurchaseFlow) {
				f.Select(1)
				f.SetQuantity(0)
			},
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "negative quantity",
			setup: func(f *PurchaseFlow) {
				f.Select(1)
				f.SetQuantity(-2)
			},
			wantErr: ErrInvalidQuantity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buyer := &fakeBuyer{coins: buyerCoins()}
			f := NewPurchaseFlow(buyer, authed(), &browser.Recorder{})
			require.NoError(t, f.Start(t.Context(), 0))
			tt.setup(f)

			err := f.Submit(t.Context())
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, buyer.buyCalls, "validation failures must not reach the network")
			assert.Equal(t, tt.wantErr.Error(), f.ErrMessage())
			assert.False(t, f.Processing())
		})
	}
}

func TestPurchaseSubmitSuccessRedirects(t *testing.T) {
	buyer := &fakeBuyer{coins: buyerCoins()}
	nav := &browser.Recorder{}
	f := NewPurchaseFlow(buyer, authed(), nav)
	require.NoError(t, f.Start(t.Context(), 1))
	f.SetQuantity(0.5)

	require.NoError(t, f.Submit(t.Context()))
	assert.Equal(t, []string{"https://checkout.example.com/pay/ref-1"}, nav.Destinations)
	assert.Equal(t, int64(1), buyer.lastCoinID)
	assert.Equal(t, 0.5, buyer.lastQuantity)
	assert.Empty(t, f.ErrMessage())
}

func TestPurchaseSubmitFailureShowsServerMessage(t *testing.T) {
	buyer := &fakeBuyer{
		coins:  buyerCoins(),
		buyErr: &transport.StatusError{Status: http.StatusBadRequest, Payload: []byte(`{"error":"invalid coin id"}`)},
	}
	nav := &browser.Recorder{}
	f := NewPurchaseFlow(buyer, authed(), nav)
	require.NoError(t, f.Start(t.Context(), 1))

	err := f.Submit(t.Context())
	require.Error(t, err)
	assert.Equal(t, "invalid coin id", f.ErrMessage())
	assert.False(t, f.Processing(), "processing must clear so the user can retry")
	assert.Empty(t, nav.Destinations)
}

func TestPurchaseSubmitFailureFallsBackToGenericMessage(t *testing.T) {
	buyer := &fakeBuyer{coins: buyerCoins(), buyErr: assert.AnError}
	f := NewPurchaseFlow(buyer, authed(), &browser.Recorder{})
	require.NoError(t, f.Start(t.Context(), 1))

	require.Error(t, f.Submit(t.Context()))
	assert.Equal(t, genericBuyFailure, f.ErrMessage())
}

func TestPurchaseIdempotencyKeyLifecycle(t *testing.T) {
	buyer := &fakeBuyer{coins: buyerCoins(), buyErr: assert.AnError}
	f := NewPurchaseFlow(buyer, authed(), &browser.Recorder{})
	require.NoError(t, f.Start(t.Context(), 1))

	// Two submits of the same unchanged intent reuse one key.
	require.Error(t, f.Submit(t.Context()))
	require.Error(t, f.Submit(t.Context()))
	require.Len(t, buyer.keys, 2)
	assert.NotEmpty(t, buyer.keys[0])
	assert.Equal(t, buyer.keys[0], buyer.keys[1], "retry of an unchanged intent must reuse the key")

	// Changing the quantity is a new intent: the key rotates.
	f.SetQuantity(3)
	require.Error(t, f.Submit(t.Context()))
	require.Len(t, buyer.keys, 3)
	assert.NotEqual(t, buyer.keys[1], buyer.keys[2])

	// So is changing the selection.
	f.Select(2)
	require.Error(t, f.Submit(t.Context()))
	require.Len(t, buyer.keys, 4)
	assert.NotEqual(t, buyer.keys[2], buyer.keys[3])
}

func TestPurchaseTotal(t *testing.T) {
	buyer := &fakeBuyer{coins: buyerCoins()}
	f := NewPurchaseFlow(buyer, authed(), &browser.Recorder{})
	require.NoError(t, f.Start(t.Context(), 0))

	assert.Zero(t, f.Total(), "no selection means no total")

	require.True(t, f.Select(2))
	f.SetQuantity(2)
	assert.Equal(t, 10080000.0, f.Total())
}

func TestPurchaseSelectUnknownCoin(t *testing.T) {
	buyer := &fakeBuyer{coins: buyerCoins()}
	f := NewPurchaseFlow(buyer, authed(), &browser.Recorder{})
	require.NoError(t, f.Start(t.Context(), 0))

	assert.False(t, f.Select(42))
	assert.Nil(t, f.Selected())
}
