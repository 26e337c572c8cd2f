package account

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goggledefogger/firebase-admin/internal/telemetry/logger"
)

// Database is a hosted database owned by the account.
type Database struct {
	Name string
	URL  string

	// token is the database admin secret used for the settings endpoints.
	token  string
	client *Client
}

// String returns the database URL.
func (d *Database) String() string {
	return d.URL
}

// AuthTokens lists the database's auth tokens.
func (d *Database) AuthTokens(ctx context.Context) ([]string, error) {
	var tokens []string
	if err := d.client.http.do(ctx, http.MethodGet, d.secretsURL(""), nil, &tokens); err != nil {
		return nil, fmt.Errorf("list tokens for %s: %w", d.Name, err)
	}
	return tokens, nil
}

// AddAuthToken creates a new auth token and returns it.
func (d *Database) AddAuthToken(ctx context.Context) (string, error) {
	var token string
	if err := d.client.http.do(ctx, http.MethodPost, d.secretsURL(""), nil, &token); err != nil {
		return "", fmt.Errorf("add token to %s: %w", d.Name, err)
	}
	return token, nil
}

// RemoveAuthToken revokes token.
func (d *Database) RemoveAuthToken(ctx context.Context, token string) error {
	if err := d.client.http.do(ctx, http.MethodDelete, d.secretsURL(token), nil, nil); err != nil {
		return fmt.Errorf("remove token %s from %s: %w", logger.MaskToken(token), d.Name, err)
	}
	return nil
}

// secretsURL addresses the token collection, or one token when token is set.
func (d *Database) secretsURL(token string) string {
	path := "/.settings/secrets.json"
	if token != "" {
		path = "/.settings/secrets/" + url.PathEscape(token) + ".json"
	}

	q := url.Values{}
	q.Set("auth", d.token)
	return joinURL(d.URL, path) + "?" + q.Encode()
}
