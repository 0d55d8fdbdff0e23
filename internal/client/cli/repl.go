package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for REPL output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

const helpText = `Library:
  list | l                 show the library
  filter all|completed|pending
  search [text]            search title, genre, platform, developer (no text clears)
  add                      add a game
  edit <id|#>              edit a game
  delete <id|#>            delete a game and its reviews
  show <id|#>              open a game with its reviews
  stats                    personal statistics
  refresh                  reload from the server
Detail (after show):
  reviews [text]           list reviews, optionally searching text or difficulty
  addreview                write a review
  editreview <id|#>        edit a review
  delreview <id|#>         delete a review
  close                    close the detail
  exit | quit`

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Filter(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Close(ctx context.Context) error
	Reviews(ctx context.Context, args []string) error
	AddReview(ctx context.Context) error
	EditReview(ctx context.Context, args []string) error
	DeleteReview(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Refresh(ctx context.Context) error
}

// runREPL reads commands from reader and dispatches them to a until end of
// input, "exit"/"quit" or ctx cancellation. Handlers report their own
// outcome; any error they return is printed and the loop continues.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printFn(promptFn())
		line, err := readLine(reader)
		if err != nil {
			printlnFn()
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help", "?":
			printlnFn(helpText)
		case "l", "list":
			cmdErr = a.List(ctx)
		case "filter":
			cmdErr = a.Filter(ctx, args)
		case "search":
			cmdErr = a.Search(ctx, args)
		case "add":
			cmdErr = a.Add(ctx)
		case "edit":
			cmdErr = a.Edit(ctx, args)
		case "delete", "rm":
			cmdErr = a.Delete(ctx, args)
		case "show", "open":
			cmdErr = a.Show(ctx, args)
		case "close":
			cmdErr = a.Close(ctx)
		case "reviews":
			cmdErr = a.Reviews(ctx, args)
		case "addreview":
			cmdErr = a.AddReview(ctx)
		case "editreview":
			cmdErr = a.EditReview(ctx, args)
		case "delreview":
			cmdErr = a.DeleteReview(ctx, args)
		case "stats":
			cmdErr = a.Stats(ctx)
		case "refresh":
			cmdErr = a.Refresh(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd, "(type 'help')")
		}
		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}
