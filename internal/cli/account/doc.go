// Package account provides the remote account client for firebase-admin.
//
//   - http.go: JSON transport, request IDs, error decoding
//   - client.go: login and database create/get/delete on the admin server
//   - database.go: auth token list/add/remove on a database
//
// Every call takes a context and performs plain HTTP requests with no
// retries. Credentials travel in query strings, so URLs are redacted before
// they are logged or returned inside errors.
package account
