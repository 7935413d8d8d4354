package stubapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/adaeze/nairamart/market"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// listEnvelope is the DRF-style pagination wrapper.
type listEnvelope struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []market.Coin `json:"results"`
}

// parsePaging reads "page" and "page_size" query parameters. Missing or
// invalid values fall back to page 1 and the default size; page_size is
// capped at maxPageSize.
func parsePaging(r *http.Request) (page, pageSize int) {
	q := r.URL.Query()

	page = 1
	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	pageSize = defaultPageSize
	if v := q.Get("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = n
		}
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return page, pageSize
}

// handleList handles GET /cryptos/. A page past the end of the collection
// gets the framework's 404, like the real backend.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePaging(r)

	s.mu.Lock()
	coins := make([]market.Coin, len(s.coins))
	copy(coins, s.coins)
	s.mu.Unlock()

	total := len(coins)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		writeDetail(w, http.StatusNotFound, "Invalid page.")
		return
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	envelope := listEnvelope{
		Count:   total,
		Results: coins[start:end],
	}
	if page < totalPages {
		next := pageURL(r, page+1, pageSize)
		envelope.Next = &next
	}
	if page > 1 {
		previous := pageURL(r, page-1, pageSize)
		envelope.Previous = &previous
	}
	writeJSON(w, http.StatusOK, envelope)
}

func pageURL(r *http.Request, page, pageSize int) string {
	u := *r.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()
	return u.String()
}

// handleGetByID handles GET /cryptos/{id}/.
func (s *Server) handleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, coin := range s.coins {
		if coin.ID == id {
			writeJSON(w, http.StatusOK, coin)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Not found.")
}

type buyRequest struct {
	CoinID         int64   `json:"coin_id"`
	Quantity       float64 `json:"quantity"`
	IdempotencyKey string  `json:"idempotency_key"`
}

// handleBuy handles POST /cryptos/buy/. The caller must hold a live
// session. Requests repeating an idempotency key replay the original
// result instead of opening a second checkout.
func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	username, ok := s.username(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := decodeJSON[buyRequest](w, r)
	if !ok {
		return
	}
	if req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "quantity must be greater than 0")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var found bool
	for _, coin := range s.coins {
		if coin.ID == req.CoinID {
			found = true
			break
		}
	}
	if !found {
		writeError(w, http.StatusBadRequest, "invalid coin id")
		return
	}

	if req.IdempotencyKey != "" {
		if prior, seen := s.purchases[req.IdempotencyKey]; seen {
			writeJSON(w, http.StatusOK, prior)
			return
		}
	}

	reference := uuid.NewString()
	result := purchase{
		URL:       fmt.Sprintf("%s/%s", s.checkoutBase, reference),
		Reference: reference,
	}
	if req.IdempotencyKey != "" {
		s.purchases[req.IdempotencyKey] = result
	}

	s.logger.Info("purchase initiated",
		"username", username, "coin_id", req.CoinID, "quantity", req.Quantity)
	writeJSON(w, http.StatusOK, result)
}
