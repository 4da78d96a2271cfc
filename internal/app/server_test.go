package app

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/helloworld/web-app/internal/config"
)

func TestServer_ServeAndShutdown(t *testing.T) {
	settings := config.Defaults()
	settings.Debug = false
	engine, err := New(&settings)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewServer(&settings, engine).Serve(ctx, ln)
	}()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		cancel()
		t.Fatalf("GET / error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if !strings.Contains(string(body), "Hello World") {
		t.Errorf("body does not contain Hello World: %s", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v, want nil after cancel", err)
		}
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}

func TestServer_PortInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	defer busy.Close()

	settings := config.Defaults()
	settings.Port = busy.Addr().(*net.TCPAddr).Port

	err = NewServer(&settings, http.NotFoundHandler()).Run(context.Background())
	if err == nil {
		t.Fatal("Run() error = nil, want bind error")
	}
	if !errors.Is(err, syscall.EADDRINUSE) {
		t.Errorf("Run() error = %v, want EADDRINUSE", err)
	}
}

func TestServer_Addr(t *testing.T) {
	settings := config.Defaults()
	settings.Host = "0.0.0.0"
	settings.Port = 9000

	s := NewServer(&settings, http.NotFoundHandler())
	if s.httpServer.Addr != "0.0.0.0:9000" {
		t.Errorf("Addr = %q, want %q", s.httpServer.Addr, "0.0.0.0:9000")
	}
	if s.httpServer.ReadHeaderTimeout == 0 {
		t.Error("ReadHeaderTimeout not set")
	}
}
