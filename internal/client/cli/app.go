package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/vibecli/internal/client/api"
	"github.com/dmitrijs2005/vibecli/internal/client/config"
	"github.com/dmitrijs2005/vibecli/internal/client/feed"
	"github.com/dmitrijs2005/vibecli/internal/client/session"
	"github.com/dmitrijs2005/vibecli/internal/client/storage"
	"github.com/dmitrijs2005/vibecli/internal/logging"

	_ "modernc.org/sqlite"
)

// feedViewer is the slice of the feed synchronizer the CLI needs.
type feedViewer interface {
	Refresh(ctx context.Context, w io.Writer, page int) error
	ShowProfile(ctx context.Context, w io.Writer, username string) error
}

type App struct {
	config  *config.Config
	session session.Controller
	api     api.Client
	feed    feedViewer
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer

	// actionMu rejects a second mutating action (post, like) while one is
	// still in flight. Feed refreshes are not guarded here; concurrent
	// refreshes are coalesced inside the synchronizer instead.
	actionMu sync.Mutex
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err.Error())
		return nil, err
	}

	store := session.NewStore(db)
	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout, store, log)

	return &App{
		config:  c,
		session: session.NewController(apiClient, store),
		api:     apiClient,
		feed:    feed.NewSynchronizer(apiClient, log, c.PageSize),
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores a persisted session, shows the current feed once (mirroring
// the web client's initial page load) and enters the REPL.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not restore session:", err.Error())
	}

	if err := a.Feed(ctx, 0); err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if !a.session.IsAuthenticated() {
		return "(anonymous)"
	}
	if name := a.session.Username(); name != "" {
		return fmt.Sprintf("(%s)", name)
	}
	return "(logged in)"
}
