package tools_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Ingenimax/tandoor-mcp/pkg/logging"
	"github.com/Ingenimax/tandoor-mcp/pkg/tandoor"
	"github.com/Ingenimax/tandoor-mcp/pkg/tools"
)

// fakeTandoor is a programmable fake of the remote API that counts every
// request it receives.
type fakeTandoor struct {
	mux   *http.ServeMux
	calls atomic.Int64
}

func newFakeTandoor() *fakeTandoor {
	return &fakeTandoor{mux: http.NewServeMux()}
}

func (f *fakeTandoor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	f.mux.ServeHTTP(w, r)
}

func (f *fakeTandoor) handle(pattern string, handler http.HandlerFunc) {
	f.mux.HandleFunc(pattern, handler)
}

func (f *fakeTandoor) callCount() int {
	return int(f.calls.Load())
}

// newTestRegistry wires the full tool catalog against the fake API.
func newTestRegistry(t *testing.T, fake *fakeTandoor) *tools.Registry {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client := tandoor.NewClient(server.URL, "test-token",
		tandoor.WithHTTPClient(server.Client()),
		tandoor.WithLogger(logging.NewNoOp()),
	)
	return tools.NewRegistry(client, logging.NewNoOp())
}

// newTestDispatcher wires the full registry against the fake API.
func newTestDispatcher(t *testing.T, fake *fakeTandoor) *tools.Dispatcher {
	t.Helper()
	return tools.NewDispatcher(newTestRegistry(t, fake), logging.NewNoOp())
}

// newTestDispatcherClosed points the dispatcher at a server that is already
// shut down, so every call fails at the network level.
func newTestDispatcherClosed(t *testing.T, fake *fakeTandoor) *tools.Dispatcher {
	t.Helper()
	server := httptest.NewServer(fake)
	url := server.URL
	server.Close()

	client := tandoor.NewClient(url, "test-token", tandoor.WithLogger(logging.NewNoOp()))
	registry := tools.NewRegistry(client, logging.NewNoOp())
	return tools.NewDispatcher(registry, logging.NewNoOp())
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func decodeBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func emptyPage(w http.ResponseWriter) {
	writeJSON(w, map[string]interface{}{"count": 0, "results": []interface{}{}})
}

func requireToolError(t *testing.T, err error, kind tools.ErrorKind) *tools.ToolError {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	toolErr, ok := tools.AsToolError(err)
	if !ok {
		t.Fatalf("expected *tools.ToolError, got %T: %v", err, err)
	}
	if toolErr.Kind != kind {
		t.Fatalf("expected kind %s, got %s (%s)", kind, toolErr.Kind, toolErr.Message)
	}
	return toolErr
}
