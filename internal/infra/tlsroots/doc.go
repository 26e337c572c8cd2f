// Package tlsroots builds the set of CA certificates firebase-admin trusts
// when talking to the admin server and database hosts.
//
// The system roots are always included. A PEM bundle given as tls.ca in
// the config file (or --ca-file) is added on top, for servers behind a
// corporate proxy or a self-hosted deployment.
package tlsroots
