package account

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrMissingCredentials is returned when the client has no user or password.
var ErrMissingCredentials = errors.New("account: user and password are required")

// Config holds the account client settings.
type Config struct {
	// Server is the admin server base URL.
	Server string
	// DatabaseURL is a format string with one %s for the database name.
	DatabaseURL string

	User     string
	Password string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// TLS overrides the trusted roots. Nil uses the system defaults.
	TLS *tls.Config
}

// Client talks to the admin server on behalf of one account. It logs in
// lazily before the first call that needs the admin token.
type Client struct {
	cfg        Config
	http       *transport
	adminToken string
}

// New creates an account client.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: newTransport(cfg.Timeout, cfg.TLS),
	}
}

// Login exchanges the user's credentials for an admin token. It is a no-op
// once a token is held.
func (c *Client) Login(ctx context.Context) error {
	if c.adminToken != "" {
		return nil
	}
	if c.cfg.User == "" || c.cfg.Password == "" {
		return ErrMissingCredentials
	}

	q := url.Values{}
	q.Set("email", c.cfg.User)
	q.Set("password", c.cfg.Password)

	var resp struct {
		AdminToken string `json:"adminToken"`
	}
	if err := c.http.do(ctx, http.MethodGet, c.adminURL("/account/login", q), nil, &resp); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if resp.AdminToken == "" {
		return errors.New("login: server returned no admin token")
	}

	c.adminToken = resp.AdminToken
	return nil
}

// CreateDatabase creates a database called name and returns it.
func (c *Client) CreateDatabase(ctx context.Context, name string) (*Database, error) {
	if err := c.Login(ctx); err != nil {
		return nil, err
	}

	body := map[string]string{"appName": name}
	path := "/firebase/" + url.PathEscape(name)
	if err := c.http.do(ctx, http.MethodPost, c.adminURL(path, c.tokenQuery()), body, nil); err != nil {
		return nil, fmt.Errorf("create database %s: %w", name, err)
	}

	return c.GetDatabase(ctx, name)
}

// GetDatabase looks name up among the account's databases.
func (c *Client) GetDatabase(ctx context.Context, name string) (*Database, error) {
	if err := c.Login(ctx); err != nil {
		return nil, err
	}

	var resp struct {
		Firebases map[string]struct {
			AdminToken string `json:"adminToken"`
		} `json:"firebases"`
	}
	if err := c.http.do(ctx, http.MethodGet, c.adminURL("/account", c.tokenQuery()), nil, &resp); err != nil {
		return nil, fmt.Errorf("get database %s: %w", name, err)
	}

	entry, ok := resp.Firebases[name]
	if !ok {
		return nil, fmt.Errorf("database %s not found", name)
	}

	return &Database{
		Name:   name,
		URL:    fmt.Sprintf(c.cfg.DatabaseURL, name),
		token:  entry.AdminToken,
		client: c,
	}, nil
}

// DeleteDatabase deletes db from the account.
func (c *Client) DeleteDatabase(ctx context.Context, db *Database) error {
	if err := c.Login(ctx); err != nil {
		return err
	}

	body := map[string]string{"namespace": db.Name}
	path := "/firebase/" + url.PathEscape(db.Name) + "/delete"
	if err := c.http.do(ctx, http.MethodPost, c.adminURL(path, c.tokenQuery()), body, nil); err != nil {
		return fmt.Errorf("delete database %s: %w", db.Name, err)
	}
	return nil
}

func (c *Client) tokenQuery() url.Values {
	q := url.Values{}
	q.Set("token", c.adminToken)
	return q
}

func (c *Client) adminURL(path string, q url.Values) string {
	u := joinURL(c.cfg.Server, path)
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}
