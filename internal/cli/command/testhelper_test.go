package command

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// mockServer serves the admin API and database settings endpoints.
// Databases live under /db/<name>.
type mockServer struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	requests []string
}

func newMockServer(t *testing.T) *mockServer {
	t.Helper()

	m := &mockServer{handlers: make(map[string]http.HandlerFunc)}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.requests = append(m.requests, r.Method+" "+r.URL.Path)
		m.mu.Unlock()

		// Longest matching prefix wins.
		var best string
		for pattern := range m.handlers {
			if strings.HasPrefix(r.URL.Path, pattern) && len(pattern) > len(best) {
				best = pattern
			}
		}
		if best == "" {
			http.NotFound(w, r)
			return
		}
		m.handlers[best](w, r)
	}))
	t.Cleanup(m.Close)

	m.handle("/account/login", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]any{"success": true, "adminToken": "admin-tok"})
	})
	return m
}

// handle registers a handler for a path prefix.
func (m *mockServer) handle(pattern string, handler http.HandlerFunc) {
	m.handlers[pattern] = handler
}

// withDatabases serves the account listing with the given database names.
func (m *mockServer) withDatabases(names ...string) {
	m.handle("/account", func(w http.ResponseWriter, r *http.Request) {
		firebases := map[string]any{}
		for _, n := range names {
			firebases[n] = map[string]string{"adminToken": "secret-" + n}
		}
		jsonResponse(w, http.StatusOK, map[string]any{"success": true, "firebases": firebases})
	})
}

func (m *mockServer) requestLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.requests...)
}

func (m *mockServer) count(prefix string) int {
	n := 0
	for _, r := range m.requestLog() {
		if strings.HasPrefix(r, prefix) {
			n++
		}
	}
	return n
}

// jsonResponse writes a JSON response.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// result is the outcome of one Run call.
type result struct {
	code   int
	stdout string
	stderr string
}

// runCLI runs firebase-admin against server with credentials and an absent
// config file, followed by args.
func runCLI(t *testing.T, server *mockServer, args ...string) result {
	t.Helper()

	full := []string{
		ToolName,
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
		"--firebaseUser", "me@example.com",
		"--firebasePass", "hunter2",
	}
	if server != nil {
		full = append(full,
			"--server", server.URL,
			"--database-url", server.URL+"/db/%s",
		)
	}
	full = append(full, args...)

	return runRaw(full...)
}

// runRaw runs firebase-admin with exactly args.
func runRaw(args ...string) result {
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}
