// Package dispatch provides the command tree used by firebase-admin.
//
// The tree is built once at startup from two kinds of node:
//
//   - Group: named children in declaration order, no action
//   - Leaf: an Action plus the syntax hint and description shown in help
//
// Dispatch consumes positional tokens that name children, then hands the
// remaining tokens to the leaf it reached. Failures come back as *UsageError
// values; the package never exits the process itself.
package dispatch
