package httpserver_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/httpserver"
)

func startServer(t *testing.T, ctx context.Context, handler http.Handler, opts ...httpserver.Option) (*httpserver.Server, string, chan error) {
	t.Helper()

	started := make(chan string, 1)
	opts = append([]httpserver.Option{
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(100 * time.Millisecond),
		httpserver.WithStartHook(func(_ context.Context, addr string) { started <- addr }),
	}, opts...)
	srv := httpserver.New(opts...)

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, handler) }()

	select {
	case addr := <-started:
		return srv, addr, done
	case err := <-done:
		require.FailNow(t, "server did not start", "run returned: %v", err)
	case <-time.After(time.Second):
		require.FailNow(t, "server did not start")
	}
	return nil, "", nil
}

func waitDone(t *testing.T, done chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err, "run")
	case <-time.After(time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestRunAndShutdown(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, addr, done := startServer(t, ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	assert.Equal(t, addr, srv.Addr())

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	cancel()
	waitDone(t, done)
	require.NoError(t, srv.Shutdown(context.Background()), "shutdown after run")
}

func TestManualShutdown(t *testing.T) {
	t.Parallel()

	srv, _, done := startServer(t, context.Background(), http.NewServeMux())
	require.NoError(t, srv.Shutdown(context.Background()), "first shutdown")
	require.NoError(t, srv.Shutdown(context.Background()), "second shutdown")
	waitDone(t, done)
}

func TestShutdownBeforeRun(t *testing.T) {
	t.Parallel()

	srv := httpserver.New()
	assert.NoError(t, srv.Shutdown(context.Background()))
	assert.Empty(t, srv.Addr())
}

func TestStartError(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.WithAddr(":invalid"))
	err := srv.Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestAlreadyRunning(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv, _, done := startServer(t, ctx, nil)

	err := srv.Run(ctx, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

	cancel()
	waitDone(t, done)
}

func TestHooks(t *testing.T) {
	t.Parallel()

	var stopped atomic.Value
	ctx, cancel := context.WithCancel(context.Background())
	_, addr, done := startServer(t, ctx, nil,
		httpserver.WithStopHook(func(_ context.Context, addr string) { stopped.Store(addr) }),
	)

	cancel()
	waitDone(t, done)
	assert.Equal(t, addr, stopped.Load(), "stop hook receives the bound address")
}

func TestLifecycleLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&syncWriter{w: &buf}, nil))

	ctx, cancel := context.WithCancel(context.Background())
	_, _, done := startServer(t, ctx, nil, httpserver.WithLogger(log))
	cancel()
	waitDone(t, done)

	out := buf.String()
	assert.Contains(t, out, "http server started")
	assert.Contains(t, out, "http server stopped")
	assert.Contains(t, out, "component=http")
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"addr", func() { httpserver.WithAddr("") }},
		{"read", func() { httpserver.WithReadTimeout(-time.Second) }},
		{"read header", func() { httpserver.WithReadHeaderTimeout(0) }},
		{"write", func() { httpserver.WithWriteTimeout(-time.Second) }},
		{"idle", func() { httpserver.WithIdleTimeout(-time.Second) }},
		{"shutdown", func() { httpserver.WithShutdownTimeout(-time.Second) }},
		{"start hook", func() { httpserver.WithStartHook(nil) }},
		{"stop hook", func() { httpserver.WithStopHook(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tt.fn)
		})
	}

	t.Run("nil logger allowed", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() { httpserver.New(httpserver.WithLogger(nil)) })
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan string, 1)
	srv := httpserver.NewFromConfig(httpserver.Config{
		Addr:            ":1",
		ReadTimeout:     time.Second,
		ShutdownTimeout: 50 * time.Millisecond,
	},
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithStartHook(func(_ context.Context, addr string) { started <- addr }),
	)

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, nil) }()
	addr := <-started
	assert.NotEqual(t, ":1", addr, "explicit options override config")

	cancel()
	waitDone(t, done)
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := httpserver.Check{Name: "ok", Func: func(context.Context) error { return nil }}
	failing := httpserver.Check{Name: "redis", Func: func(context.Context) error { return errors.New("down") }}

	tests := []struct {
		name   string
		checks []httpserver.Check
		status int
		body   string
	}{
		{"liveness", nil, http.StatusOK, "ALIVE"},
		{"ready", []httpserver.Check{ok}, http.StatusOK, "READY"},
		{"not ready", []httpserver.Check{ok, failing}, http.StatusServiceUnavailable, "NOT_READY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(log, tt.checks...)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

type syncWriter struct {
	mu sync.Mutex
	w  *bytes.Buffer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
