// Package command provides CLI command definitions for firebase-admin.
//
//   - root.go: urfave/cli app, global flags, Run and exit-code mapping
//   - tree.go: the dispatch tree and the per-invocation session
//   - database.go: create and delete
//   - tokens.go: tokens add, remove and list
//
// Leaf actions validate their positional arguments, call the account
// client and render the result in the selected output format.
package command
