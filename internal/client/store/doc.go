// Package store keeps the client-side snapshot of the remote catalog.
//
// Lists are never patched: every refresh replaces the cached list as a whole
// when the fetch succeeds and leaves it untouched when it fails. Each refresh
// takes a ticket; a result is applied only when no newer refresh of the same
// list started meanwhile and its context is still alive. Discarded results
// are reported with ErrStaleResult.
package store
