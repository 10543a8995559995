package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/vanshika/costar/backend/internal/config"
)

func TestServerStartAndShutdown(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(logger, config.HTTPConfig{
		Host:            "127.0.0.1",
		Port:            0,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
	}, http.NewServeMux())

	if srv.Addr() != "127.0.0.1:0" {
		t.Fatalf("unexpected listen address %q", srv.Addr())
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Shutdown applies its own timeout when the context has no deadline.
	time.Sleep(50 * time.Millisecond)
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("expected a clean shutdown, got %v", err)
	}

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected Start to report a clean stop, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("server did not stop after shutdown")
	}
}
