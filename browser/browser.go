// Package browser abstracts the pieces of the host environment that the
// storefront flows touch: top-level navigation and the client-side routes.
package browser

// Client-side routes understood by the storefront.
const (
	RouteCatalog        = "/"
	RouteLogin          = "/login"
	RouteRegister       = "/register"
	RouteBuy            = "/buy"
	RouteSettings       = "/settings"
	RoutePaymentSuccess = "/payment-success"
)

// Navigator moves the top-level location to a new URL. Navigating to an
// external URL ends the flow that triggered it; implementations must not
// block.
type Navigator interface {
	Navigate(url string)
}

// NavigatorFunc adapts a plain function to the Navigator interface.
type NavigatorFunc func(url string)

// Navigate calls f(url).
func (f NavigatorFunc) Navigate(url string) { f(url) }

// Recorder is a Navigator test double that remembers every destination.
type Recorder struct {
	Destinations []string
}

// Navigate appends url to the recorded destinations.
func (r *Recorder) Navigate(url string) {
	r.Destinations = append(r.Destinations, url)
}

// Last returns the most recent destination, or "" when nothing was recorded.
func (r *Recorder) Last() string {
	if len(r.Destinations) == 0 {
		return ""
	}
	return r.Destinations[len(r.Destinations)-1]
}
