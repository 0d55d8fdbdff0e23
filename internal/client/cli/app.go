package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gametracker/internal/client/client"
	"github.com/dmitrijs2005/gametracker/internal/client/config"
	"github.com/dmitrijs2005/gametracker/internal/client/services"
	"github.com/dmitrijs2005/gametracker/internal/client/store"
	"github.com/dmitrijs2005/gametracker/internal/client/views"
	"github.com/dmitrijs2005/gametracker/internal/logging"
)

// App is the interactive client: the Library and Statistics views over a
// collection store, driven by a line-based REPL. Mutations go through the
// game and review workflows so every save re-fetches what it touched.
type App struct {
	config  *config.Config
	log     logging.Logger
	store   *store.Store
	games   *services.GameWorkflow
	reviews *services.ReviewWorkflow

	library views.LibraryState
	detail  views.DetailState
	// detailCancel tears down the loads of the open detail overlay.
	detailCancel context.CancelFunc

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires an App to the HTTP backend at c.ServerBaseURL, reading
// commands from stdin and printing to stdout.
func NewApp(c *config.Config, log logging.Logger) *App {
	gw := client.NewHTTPClient(c.ServerBaseURL, log)
	return newApp(c, gw, log, os.Stdin, os.Stdout)
}

func newApp(c *config.Config, gw client.Client, log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Nop()
	}
	a := &App{config: c, log: log, reader: bufio.NewReader(in), out: out}
	a.store = store.New(gw, log)
	a.games = services.NewGameWorkflow(gw, a.store, a, log)
	a.reviews = services.NewReviewWorkflow(gw, a.store, a, log)
	return a
}

// Run loads the library and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to gametracker (type 'help' for commands)")
	a.println("Loading library...")
	if err := a.store.RefreshGames(ctx); err != nil {
		a.println("Could not load your library:", describe(err))
		a.println("Type 'refresh' to try again.")
	} else {
		_ = a.List(ctx)
	}

	runREPL(ctx, a, a.prompt, a.reader)
	a.closeDetail()
}

// Notify prints workflow notices.
func (a *App) Notify(_ context.Context, n services.Notice) {
	if n.Kind == services.NoticeError {
		a.println("[error]", n.Message)
		return
	}
	a.println("[ok]", n.Message)
}

func (a *App) prompt() string {
	if a.detail.GameID != "" {
		title := a.detail.GameID
		if g, ok := a.store.Game(a.detail.GameID); ok {
			title = g.Title
		}
		return fmt.Sprintf("gametracker (%s)> ", title)
	}
	if a.library.Filter != views.FilterAll {
		return fmt.Sprintf("gametracker [%s]> ", a.library.Filter)
	}
	return "gametracker> "
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
