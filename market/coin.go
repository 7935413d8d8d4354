// Package market holds the storefront's view of the catalog: the coin
// listing record, page arithmetic, and the data-access client for the
// backend's crypto endpoints.
package market

import (
	"errors"
	"fmt"
	"strings"
)

// Coin is a single cryptocurrency listing as returned by the backend. It is
// an immutable snapshot; the USD and NGN prices are independent quotes from
// the backend and are never derived from each other client-side.
type Coin struct {
	ID                int64    `json:"id"`
	CMCID             int64    `json:"cmc_id"`
	Name              string   `json:"name"`
	Symbol            string   `json:"symbol"`
	Slug              string   `json:"slug"`
	NumMarketPairs    int      `json:"num_market_pairs"`
	DateAdded         string   `json:"date_added"`
	Tags              []string `json:"tags"`
	MaxSupply         *float64 `json:"max_supply"`
	CirculatingSupply float64  `json:"circulating_supply"`
	TotalSupply       float64  `json:"total_supply"`
	InfiniteSupply    bool     `json:"infinite_supply"`
	Platform          *string  `json:"platform"`
	CMCRank           int      `json:"cmc_rank"`
	LastUpdated       string   `json:"last_updated"`
	PriceUSD          float64  `json:"price_usd"`
	PriceNGN          float64  `json:"price_ngn"`
}

var (
	// ErrNegativePrice reports a listing with a negative price field.
	ErrNegativePrice = errors.New("coin price must not be negative")
	// ErrSupplyExceedsTotal reports circulating supply above total supply
	// on a coin that does not declare infinite supply.
	ErrSupplyExceedsTotal = errors.New("circulating supply exceeds total supply")
)

// Validate checks the listing invariants.
func (c Coin) Validate() error {
	if c.PriceUSD < 0 || c.PriceNGN < 0 {
		return fmt.Errorf("%s: %w", c.Symbol, ErrNegativePrice)
	}
	if !c.InfiniteSupply && c.CirculatingSupply > c.TotalSupply {
		return fmt.Errorf("%s: %w", c.Symbol, ErrSupplyExceedsTotal)
	}
	return nil
}

// Total returns the advisory NGN amount for buying quantity units of the
// coin. Display-only: the backend reprices at purchase time.
func Total(c Coin, quantity float64) float64 {
	return c.PriceNGN * quantity
}

// Filter returns the coins whose name or symbol contains the query,
// case-insensitively. An empty query matches everything.
func Filter(coins []Coin, query string) []Coin {
	if query == "" {
		return coins
	}
	q := strings.ToLower(query)
	var out []Coin
	for _, c := range coins {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Symbol), q) {
			out = append(out, c)
		}
	}
	return out
}
