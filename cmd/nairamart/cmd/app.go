package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adaeze/nairamart/browser"
	"github.com/adaeze/nairamart/internal/logging"
	"github.com/adaeze/nairamart/market"
	"github.com/adaeze/nairamart/prefs"
	"github.com/adaeze/nairamart/session"
	"github.com/adaeze/nairamart/transport"
)

// cliNavigator is the terminal's stand-in for the browser location: it
// prints where a browser would have gone.
type cliNavigator struct {
	out io.Writer
}

func (n *cliNavigator) Navigate(url string) {
	switch url {
	case browser.RouteLogin:
		fmt.Fprintln(n.out, "Session expired or unauthorized. Run `nairamart login`.")
	case browser.RouteCatalog:
		fmt.Fprintln(n.out, "Back to the catalog: run `nairamart browse`.")
	default:
		fmt.Fprintf(n.out, "Complete your payment in the browser:\n  %s\n", url)
	}
}

// app bundles the client-side services a command needs: the HTTP client
// with its persistent cookie jar, the session store rehydrated from the
// saved login, the catalog client and the preference store.
type app struct {
	client  *transport.Client
	session *session.Store
	catalog *market.Catalog
	prefs   *prefs.Store
	jar     *transport.Jar
	nav     *cliNavigator
	logger  *slog.Logger
}

func newApp(cmd *cobra.Command) (*app, error) {
	dataDir := viper.GetString("data_dir")
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	logger := logging.New(viper.GetString("log_level"))

	jar, err := transport.NewJarFromFile(filepath.Join(dataDir, "cookies.db"), nil,
		transport.WithJarLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("opening cookie store: %w", err)
	}

	nav := &cliNavigator{out: cmd.OutOrStdout()}
	client, err := transport.New(viper.GetString("base_url"), nav,
		transport.WithHTTPClient(&http.Client{Jar: jar, Timeout: 30 * time.Second}),
		transport.WithLogger(logger),
	)
	if err != nil {
		jar.Close()
		return nil, err
	}

	prefStore, err := prefs.NewStoreFromFile(filepath.Join(dataDir, "prefs.db"), nil)
	if err != nil {
		jar.Close()
		return nil, fmt.Errorf("opening preference store: %w", err)
	}

	sess := session.NewStore(session.NewAPI(client), logger)
	// Rehydrate the session from the saved login; the persisted cookies
	// carry the actual server-side session.
	if user, err := prefStore.SavedLogin(); err == nil && user != nil {
		sess.SetUser(user)
	}

	return &app{
		client:  client,
		session: sess,
		catalog: market.NewCatalog(client),
		prefs:   prefStore,
		jar:     jar,
		nav:     nav,
		logger:  logger,
	}, nil
}

func (a *app) Close() {
	a.prefs.Close()
	a.jar.Close()
}
