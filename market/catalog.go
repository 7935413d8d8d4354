package market

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// Doer is the slice of the HTTP layer the catalog client needs.
type Doer interface {
	Do(ctx context.Context, method, path string, query url.Values, body, out any) error
}

// Catalog provides access to the backend's crypto listing and purchase
// endpoints.
type Catalog struct {
	client Doer
}

// NewCatalog creates a Catalog over the given HTTP client.
func NewCatalog(client Doer) *Catalog {
	return &Catalog{client: client}
}

// listResponse is the Django REST Framework pagination envelope.
type listResponse struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Coin  `json:"results"`
}

// List fetches one page of the catalog.
func (c *Catalog) List(ctx context.Context, page, pageSize int) (Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var resp listResponse
	if err := c.client.Do(ctx, http.MethodGet, "/api/cryptos/", query, nil, &resp); err != nil {
		return Page{}, err
	}
	return Page{
		Items:      resp.Results,
		TotalCount: resp.Count,
		Number:     page,
		Size:       pageSize,
	}, nil
}

// GetByID fetches a single listing.
func (c *Catalog) GetByID(ctx context.Context, id int64) (Coin, error) {
	var coin Coin
	path := fmt.Sprintf("/api/cryptos/%d/", id)
	if err := c.client.Do(ctx, http.MethodGet, path, nil, nil, &coin); err != nil {
		return Coin{}, err
	}
	return coin, nil
}

// Redirect is the backend's answer to a buy request: the hosted checkout
// page to send the user to, plus the gateway's transaction reference. It is
// consumed immediately and never stored.
type Redirect struct {
	URL       string `json:"url"`
	Reference string `json:"reference"`
}

type buyRequest struct {
	CoinID         int64   `json:"coin_id"`
	Quantity       float64 `json:"quantity"`
	IdempotencyKey string  `json:"idempotency_key,omitempty"`
}

// Buy submits a purchase intent and returns the payment redirect. The
// idempotency key lets a backend that honors it replay the original result
// when the same intent is resubmitted after a failure; pass "" to generate
// a fresh one per call. Server-side validation still applies regardless of
// what was checked client-side.
func (c *Catalog) Buy(ctx context.Context, coinID int64, quantity float64, idempotencyKey string) (Redirect, error) {
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}
	req := buyRequest{CoinID: coinID, Quantity: quantity, IdempotencyKey: idempotencyKey}
	var resp Redirect
	if err := c.client.Do(ctx, http.MethodPost, "/api/cryptos/buy/", nil, req, &resp); err != nil {
		return Redirect{}, err
	}
	return resp, nil
}
