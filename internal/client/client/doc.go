// Package client is the remote gateway of the gametracker CLI.
//
// # Overview
//
// The Client interface lists the catalog operations the backend exposes:
// games (list, get, create, replace, delete) and reviews (list all, list by
// game, create, replace, delete). HTTPClient implements it over HTTP/JSON
// against the backend routes:
//
//	GET    /game            GET    /review
//	GET    /game/{id}       GET    /review/juego/{id}
//	POST   /game            POST   /review
//	PUT    /game/{id}       PUT    /review/{id}
//	DELETE /game/{id}       DELETE /review/{id}
//
// Successful responses wrap the payload in a {"data": ...} envelope.
//
// # Error Handling
//
// Every failure (transport, non-2xx status, undecodable body) is reported as
// a *NetworkError, which matches ErrNetwork with errors.Is. Requests are
// never retried; callers decide whether to try again.
//
// The gateway holds no state besides its configuration and never touches
// the local cache.
package client
