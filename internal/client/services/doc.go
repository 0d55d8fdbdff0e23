// Package services orchestrates the edit workflows of the client: it drives
// the form state machines from package views, calls the remote gateway and
// refreshes the collection store after every confirmed mutation.
package services
