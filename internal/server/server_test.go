package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/BRAVO68WEB/demoapp/internal/config"
	"github.com/sirupsen/logrus/hooks/test"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func newTestServer(t *testing.T, env map[string]string) (*Server, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	return New(config.Load(envMap(env)), WithLogger(logger)), hook
}

func TestServer_Handler_Routes(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	h := srv.Handler()

	tests := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/?q=1", http.StatusOK},
		{http.MethodHead, "/", http.StatusOK},
		{http.MethodGet, "/foo", http.StatusNotFound},
		{http.MethodGet, "/index.html", http.StatusNotFound},
		{http.MethodGet, "/health", http.StatusNotFound},
		{http.MethodPost, "/", http.StatusMethodNotAllowed},
		{http.MethodDelete, "/", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestServer_Handler_Greeting(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Body.String() != "Hello World!" {
		t.Errorf("body = %q", rec.Body.String())
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("X-Request-Id not set")
	}
}

func TestServer_EnvironmentNotExposed(t *testing.T) {
	srv, _ := newTestServer(t, map[string]string{
		"NODE_ENV":       "production",
		"AWS_SECRET_KEY": "very-secret-key",
	})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "Hello World!" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
	for k, vv := range rec.Header() {
		for _, v := range vv {
			if strings.Contains(v, "production") || strings.Contains(v, "very-secret-key") {
				t.Errorf("header %s leaks configuration: %q", k, v)
			}
		}
	}
}

func TestServer_DefaultPort(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	if got := srv.Config().Addr(); got != ":3000" {
		t.Errorf("Addr() = %q, want :3000", got)
	}
}

func TestServer_PortFromEnv(t *testing.T) {
	srv, _ := newTestServer(t, map[string]string{"PORT": "8080"})
	if got := srv.Config().Addr(); got != ":8080" {
		t.Errorf("Addr() = %q, want :8080", got)
	}
}

func TestServer_Listen_UsesConfiguredPort(t *testing.T) {
	// Grab a free port, release it, then ask the server to bind it.
	probe, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatal(err)
	}
	port := probe.Addr().(*net.TCPAddr).Port
	probe.Close()

	srv, _ := newTestServer(t, map[string]string{"PORT": strconv.Itoa(port)})
	ln, err := srv.Listen()
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	if got := ln.Addr().(*net.TCPAddr).Port; got != port {
		t.Errorf("bound port = %d, want %d", got, port)
	}
}

func TestServer_Run_PortInUse(t *testing.T) {
	first, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatal(err)
	}
	defer first.Close()
	port := strconv.Itoa(first.Addr().(*net.TCPAddr).Port)

	srv, hook := newTestServer(t, map[string]string{"PORT": port})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = srv.Run(ctx)
	if err == nil {
		t.Fatal("Run() error = nil, want bind failure")
	}
	if !strings.Contains(err.Error(), "listen :"+port) {
		t.Errorf("Run() error = %v", err)
	}
	if n := len(hook.AllEntries()); n != 0 {
		t.Errorf("log entries = %d, want 0 before a successful bind", n)
	}
}

func TestServer_Serve_LogsAndShutsDown(t *testing.T) {
	srv, hook := newTestServer(t, map[string]string{"PORT": "0"})
	ln, err := srv.Listen()
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://127.0.0.1:" + strconv.Itoa(port) + "/")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "Hello World!" {
		t.Errorf("GET / = %d %q", resp.StatusCode, body)
	}

	entries := hook.AllEntries()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	want := "App listening at http://localhost:" + strconv.Itoa(port)
	if entries[0].Message != want {
		t.Errorf("log message = %q, want %q", entries[0].Message, want)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v, want nil after cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}
