// Package account provides the remote account client for firebase-admin.
package account

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/goggledefogger/firebase-admin/internal/infra/buildinfo"
	"github.com/goggledefogger/firebase-admin/internal/telemetry/logger"
)

// APIError is a failure reported by the remote service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// transport performs JSON requests against absolute URLs.
type transport struct {
	client *http.Client
}

func newTransport(timeout time.Duration, tlsConfig *tls.Config) *transport {
	client := &http.Client{Timeout: timeout}
	if tlsConfig != nil {
		rt := http.DefaultTransport.(*http.Transport).Clone()
		rt.TLSClientConfig = tlsConfig
		client.Transport = rt
	}
	return &transport{client: client}
}

// do sends a request and decodes the JSON response into target, which may be
// nil. Every request gets a ULID sent as X-Request-ID and used in the logs.
func (t *transport) do(ctx context.Context, method, rawURL string, body, target any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := ulid.Make().String()
	req.Header.Set("User-Agent", buildinfo.UserAgent())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := logger.L(logger.WithRequestID(ctx, requestID))
	log.Debug("sending request", "method", method, "url", logger.RedactURL(rawURL))

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		err = redactURLError(err)
		log.Debug("request failed", "method", method, "error", err)
		return fmt.Errorf("request failed: %w", err)
	}

	log.Debug("received response",
		"method", method,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	return parseResponse(resp, target)
}

// redactURLError strips credentials from the URL net/http puts in its errors.
func redactURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%s %q: %w", ue.Op, logger.RedactURL(ue.URL), ue.Err)
	}
	return err
}

// parseResponse decodes a JSON response body into target. Failures are
// reported as *APIError with the server's "error" message when present.
func parseResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var status struct {
		Success *bool  `json:"success"`
		Error   string `json:"error"`
	}
	// Non-object bodies (token lists, bare strings) carry no status fields.
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		_ = json.Unmarshal(trimmed, &status)
	}

	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Message: status.Error}
	}
	if status.Success != nil && !*status.Success {
		msg := status.Error
		if msg == "" {
			msg = "request was not successful"
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if target != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, target); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}

// joinURL appends path to base without doubling the slash.
func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}
