// Package views holds the pure, presentation-independent logic of the
// client screens: filtering and search over the cached collection, aggregate
// statistics, the edit-form state machine and the per-screen state records.
//
// Nothing here performs I/O; every function derives its result from its
// arguments only.
package views
