package market

// Page is one page of the coin listing. Pages are not cached; every page
// transition issues a fresh fetch.
type Page struct {
	Items      []Coin
	TotalCount int
	Number     int
	Size       int
}

// TotalPages derives the page count from the collection size. An empty
// catalog still renders as one (empty) page.
func (p Page) TotalPages() int {
	if p.Size <= 0 {
		return 1
	}
	n := (p.TotalCount + p.Size - 1) / p.Size
	if n < 1 {
		n = 1
	}
	return n
}
