package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/gametracker/internal/client/client"
	"github.com/dmitrijs2005/gametracker/internal/client/services"
	"github.com/dmitrijs2005/gametracker/internal/client/store"
	"github.com/dmitrijs2005/gametracker/internal/client/views"
	"github.com/dmitrijs2005/gametracker/internal/models"
)

func describe(err error) string {
	var ne *client.NetworkError
	if errors.As(err, &ne) {
		return ne.Summary()
	}
	return err.Error()
}

// List prints the library through the current filter and search.
func (a *App) List(ctx context.Context) error {
	st, lastErr := a.store.GamesState()
	switch st {
	case store.Loading:
		a.println("Loading library...")
		return nil
	case store.Failed:
		a.println("Could not load your library:", describe(lastErr))
		a.println("Type 'refresh' to try again.")
		return nil
	}

	games := a.store.Games()
	c := views.CountGames(games)
	a.printf("Library: %d total, %d completed, %d pending | filter: %s", c.Total, c.Completed, c.Pending, a.library.Filter)
	if a.library.Search != "" {
		a.printf(" | search: %q", a.library.Search)
	}
	a.println()

	visible := a.library.Visible(games)
	if len(visible) == 0 {
		switch {
		case a.library.Search != "":
			a.printf("No games match %q.\n", a.library.Search)
		case a.library.Filter != views.FilterAll:
			a.println("No games in this category.")
		default:
			a.println("Your library is empty. Use 'add' to add your first game.")
		}
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tGENRE\tPLATFORM\tYEAR\tSTATUS\tID")
	for i, g := range visible {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n", i+1, g.Title, g.Category, g.Platform, g.ReleaseYear, status(g), g.ID)
	}
	return tw.Flush()
}

func status(g models.Game) string {
	if g.Completed {
		return "completed"
	}
	return "pending"
}

// Filter sets the completion filter of the library (all, completed, pending)
// and lists the result.
func (a *App) Filter(ctx context.Context, args []string) error {
	f, err := views.ParseStatusFilter(strings.Join(args, " "))
	if err != nil {
		a.println(err.Error())
		return nil
	}
	a.library = a.library.Apply(views.SetFilter{Filter: f})
	return a.List(ctx)
}

// Search sets the library search text; with no argument it clears it.
func (a *App) Search(ctx context.Context, args []string) error {
	a.library = a.library.Apply(views.SetSearch{Query: strings.Join(args, " ")})
	return a.List(ctx)
}

// Refresh reloads the library and, when open, the detail overlay.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.store.RefreshGames(ctx); err != nil {
		a.println("Could not refresh the library:", describe(err))
	}
	if a.detail.GameID != "" {
		return a.loadDetail(ctx)
	}
	return a.List(ctx)
}

// resolveGame accepts a game id or a 1-based position in the current listing.
func (a *App) resolveGame(args []string) (models.Game, bool) {
	if len(args) == 0 {
		return models.Game{}, false
	}
	arg := strings.TrimPrefix(args[0], "#")
	games := a.store.Games()
	for _, g := range games {
		if g.ID == arg {
			return g, true
		}
	}
	if n, err := strconv.Atoi(arg); err == nil {
		visible := a.library.Visible(games)
		if n >= 1 && n <= len(visible) {
			return visible[n-1], true
		}
	}
	return models.Game{}, false
}

func (a *App) gameArg(args []string, usage string) (models.Game, bool) {
	if len(args) == 0 && a.detail.GameID != "" {
		args = []string{a.detail.GameID}
	}
	g, ok := a.resolveGame(args)
	if !ok {
		if len(args) == 0 {
			a.println("Usage:", usage)
		} else {
			a.println("No such game:", args[0])
		}
		return models.Game{}, false
	}
	if detail, ok := a.store.Game(g.ID); ok {
		g = detail
	}
	return g, true
}

// Add opens the game form in create mode with the default draft.
func (a *App) Add(ctx context.Context) error {
	if err := a.games.StartCreate(); err != nil {
		return err
	}
	a.println("New game")
	return a.runGameForm(ctx)
}

// Edit opens the game form pre-filled from the game picked by args.
func (a *App) Edit(ctx context.Context, args []string) error {
	g, ok := a.gameArg(args, "edit <id|#>")
	if !ok {
		return nil
	}
	if err := a.games.StartEdit(g); err != nil {
		return err
	}
	a.printf("Editing %q\n", g.Title)
	return a.runGameForm(ctx)
}

// runGameForm prompts for every field, submits, and on failure offers to
// edit the preserved draft again.
func (a *App) runGameForm(ctx context.Context) error {
	for {
		if err := a.fillGame(); err != nil {
			_ = a.games.Cancel()
			a.println("\nForm closed.")
			return nil
		}
		if err := a.games.Submit(ctx); err == nil {
			if a.detail.GameID != "" {
				a.renderDetail()
			} else {
				_ = a.List(ctx)
			}
			return nil
		}
		retry, err := Confirm(a.reader, a.out, "Edit and try again?")
		if err != nil || !retry {
			_ = a.games.Cancel()
			a.println("Changes discarded.")
			return nil
		}
	}
}

func (a *App) fillGame() error {
	d := a.games.Editor().Draft()
	var err error

	if d.Title, err = promptText(a.reader, a.out, "Title", d.Title); err != nil {
		return err
	}
	if d.Category, err = promptChoice(a.reader, a.out, "Genre", models.Categories, d.Category, models.ParseCategory); err != nil {
		return err
	}
	if d.Platform, err = promptChoice(a.reader, a.out, "Platform", models.Platforms, d.Platform, models.ParsePlatform); err != nil {
		return err
	}
	if d.ReleaseYear, err = promptInt(a.reader, a.out, "Release year", d.ReleaseYear); err != nil {
		return err
	}
	if d.Developer, err = promptText(a.reader, a.out, "Developer", d.Developer); err != nil {
		return err
	}
	cover, err := promptText(a.reader, a.out, "Cover image URL ('-' for none)", d.CoverURL)
	if err != nil {
		return err
	}
	if cover == "-" {
		cover = ""
	}
	d.CoverURL = cover
	if d.Description, err = GetMultiline(a.reader, "Description (max 1000 characters)", d.Description, a.out); err != nil {
		return err
	}
	if d.Completed, err = promptBool(a.reader, a.out, "Completed", d.Completed); err != nil {
		return err
	}

	return a.games.Update(func(in *models.GameInput) { *in = d })
}

// Delete asks for confirmation and removes a game with its reviews.
func (a *App) Delete(ctx context.Context, args []string) error {
	g, ok := a.gameArg(args, "delete <id|#>")
	if !ok {
		return nil
	}

	a.library = a.library.Apply(views.RequestDelete{ID: g.ID})
	confirmed, err := Confirm(a.reader, a.out, fmt.Sprintf("Delete %q and all its reviews?", g.Title))
	a.library = a.library.Apply(views.ResolveDelete{})
	if err != nil {
		confirmed = false
	}

	err = a.games.Delete(ctx, g.ID, confirmed)
	switch {
	case errors.Is(err, services.ErrNotConfirmed):
		a.println("Cancelled.")
		return nil
	case err != nil:
		return nil
	}

	if a.detail.GameID == g.ID {
		a.closeDetail()
	}
	return a.List(ctx)
}
