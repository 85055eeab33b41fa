package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/doctriage/doctriage/internal/home"
)

func testHome(t *testing.T) *home.Dir {
	t.Helper()
	d, err := home.New(filepath.Join(t.TempDir(), ".doctriage"))
	if err != nil {
		t.Fatalf("failed to create home: %v", err)
	}
	return d
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	t.Run("requires home directory", func(t *testing.T) {
		if _, err := New(Config{Logger: testLogger()}); err == nil {
			t.Error("expected error without home directory")
		}
	})

	t.Run("applies defaults", func(t *testing.T) {
		s, err := New(Config{Home: testHome(t), Logger: testLogger()})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if s.Addr() != "127.0.0.1:8085" {
			t.Errorf("Addr() = %s, want 127.0.0.1:8085", s.Addr())
		}
		if s.Analyzer() == nil {
			t.Error("expected analyzer to be constructed")
		}
	})

	t.Run("custom host and port", func(t *testing.T) {
		s, err := New(Config{Home: testHome(t), Logger: testLogger(), Host: "0.0.0.0", Port: 9999})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if s.Addr() != "0.0.0.0:9999" {
			t.Errorf("Addr() = %s, want 0.0.0.0:9999", s.Addr())
		}
	})
}

func TestRequireInit(t *testing.T) {
	s, err := New(Config{Home: testHome(t), Logger: testLogger()})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	called := false
	handler := s.requireInit(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	// Before Start the services are not wired; guarded endpoints must 503.
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("POST", "/api/analyze", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if called {
		t.Error("handler must not run before initialization")
	}
}

func TestIsRunning(t *testing.T) {
	s, err := New(Config{Home: testHome(t), Logger: testLogger()})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.IsRunning() {
		t.Error("server must not report running before Start")
	}
}
