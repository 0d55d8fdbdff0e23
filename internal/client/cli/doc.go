// Package cli implements the interactive command-line front end of
// gametracker.
//
// The App owns the collection store, the edit workflows and the state
// records of the two screens: the library (status filter, search, pending
// deletion) and the detail overlay of one game with its reviews. Commands
// are read line by line by a small REPL (see runREPL). Games and reviews are
// addressed either by id or by their position in the last listing.
//
// Statistics are rendered as a text report with bar charts sized to the
// terminal width.
package cli
