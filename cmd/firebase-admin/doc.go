// Package main provides the entry point for firebase-admin.
//
// firebase-admin manages hosted Firebase databases and their auth tokens:
//
//   - Database management (create, delete)
//   - Auth token management (add, remove, list)
//
// Usage:
//
//	firebase-admin --firebaseUser me@example.com --firebasePass secret create mydb
//	firebase-admin -o json tokens list mydb
//	firebase-admin help tokens remove
//
// Credentials may also come from ~/.firebase-admin/cli.yaml or the
// FIREBASE_ADMIN_USER and FIREBASE_ADMIN_PASSWORD environment variables.
package main
