package screens

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/marketplacepro/platform/internal/client/api"
)

type stubGateway struct {
	mu         sync.Mutex
	blobs      map[string]map[string]any
	fetchErr   error
	saveErr    error
	saved      map[string]any
	fetches    int
	saves      int
	fetchGate  chan struct{}
	saveGate   chan struct{}
	saveEnter  chan struct{}
	fetchEnter chan struct{}
}

func (g *stubGateway) FetchSettings(ctx context.Context, category, credential string) (map[string]any, error) {
	g.mu.Lock()
	g.fetches++
	g.mu.Unlock()
	if g.fetchEnter != nil {
		g.fetchEnter <- struct{}{}
	}
	if g.fetchGate != nil {
		<-g.fetchGate
	}
	if g.fetchErr != nil {
		return nil, g.fetchErr
	}
	blob, ok := g.blobs[category]
	if !ok {
		return nil, &api.APIError{Status: 404, Message: "unknown settings category"}
	}
	out := make(map[string]any, len(blob))
	for k, v := range blob {
		out[k] = v
	}
	return out, nil
}

func (g *stubGateway) SaveSettings(ctx context.Context, category string, blob map[string]any, credential string) error {
	g.mu.Lock()
	g.saves++
	g.mu.Unlock()
	if g.saveEnter != nil {
		g.saveEnter <- struct{}{}
	}
	if g.saveGate != nil {
		<-g.saveGate
	}
	if g.saveErr != nil {
		return g.saveErr
	}
	g.mu.Lock()
	g.saved = blob
	g.mu.Unlock()
	return nil
}

func TestMount_Success(t *testing.T) {
	g := &stubGateway{blobs: map[string]map[string]any{
		"marketing": {"site_name": "MarketPlace Pro"},
	}}
	s := NewSettingsScreen(g, "a.b.c")

	if err := s.Mount(context.Background(), "marketing"); err != nil {
		t.Fatalf("mount failed: %v", err)
	}
	if s.Phase() != PhaseReady {
		t.Fatalf("expected ready, got %v", s.Phase())
	}
	if s.Buffer()["site_name"] != "MarketPlace Pro" {
		t.Fatalf("buffer not seeded from fetch: %v", s.Buffer())
	}
}

func TestMount_Failure(t *testing.T) {
	g := &stubGateway{fetchErr: &api.APIError{Status: 0, Message: "request failed, please try again"}}
	s := NewSettingsScreen(g, "a.b.c")

	if err := s.Mount(context.Background(), "marketing"); err == nil {
		t.Fatal("expected mount error")
	}
	if s.Phase() != PhaseLoadFailed {
		t.Fatalf("expected load-failed, got %v", s.Phase())
	}
	if s.LastError() != "request failed, please try again" {
		t.Fatalf("unexpected message: %q", s.LastError())
	}
}

func TestEdit_BeforeMount(t *testing.T) {
	s := NewSettingsScreen(&stubGateway{}, "a.b.c")

	if err := s.Edit("site_name", "x"); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
	if err := s.Save(context.Background()); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
}

func TestSave_Success(t *testing.T) {
	g := &stubGateway{blobs: map[string]map[string]any{
		"system": {"maintenance_mode": false, "debug_mode": false},
	}}
	s := NewSettingsScreen(g, "a.b.c")
	if err := s.Mount(context.Background(), "system"); err != nil {
		t.Fatalf("mount failed: %v", err)
	}

	if err := s.Edit("maintenance_mode", true); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if s.Phase() != PhaseReady {
		t.Fatalf("expected ready after save, got %v", s.Phase())
	}
	if g.saved["maintenance_mode"] != true {
		t.Fatalf("full buffer must reach the gateway: %v", g.saved)
	}
	if g.saved["debug_mode"] != false {
		t.Fatalf("unedited fields must be sent too: %v", g.saved)
	}
}

func TestSave_FailureKeepsBuffer(t *testing.T) {
	g := &stubGateway{
		blobs:   map[string]map[string]any{"notifications": {"smtp_api_key": ""}},
		saveErr: &api.APIError{Status: 422, Message: "Invalid SMTP key"},
	}
	s := NewSettingsScreen(g, "a.b.c")
	if err := s.Mount(context.Background(), "notifications"); err != nil {
		t.Fatalf("mount failed: %v", err)
	}

	if err := s.Edit("smtp_api_key", "bad-key"); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if err := s.Save(context.Background()); err == nil {
		t.Fatal("expected save error")
	}

	if s.Phase() != PhaseSaveFailed {
		t.Fatalf("expected save-failed, got %v", s.Phase())
	}
	if s.LastError() != "Invalid SMTP key" {
		t.Fatalf("expected the server's message verbatim, got %q", s.LastError())
	}
	if s.Buffer()["smtp_api_key"] != "bad-key" {
		t.Fatalf("buffer must survive a failed save: %v", s.Buffer())
	}

	// The user fixes the field and retries without refetching.
	g.saveErr = nil
	if err := s.Edit("smtp_api_key", "good-key"); err != nil {
		t.Fatalf("edit after failure: %v", err)
	}
	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if s.Phase() != PhaseReady || s.LastError() != "" {
		t.Fatalf("retry must clear the failure: %v %q", s.Phase(), s.LastError())
	}
}

func TestSave_DoubleClickIssuesOneRequest(t *testing.T) {
	g := &stubGateway{
		blobs:     map[string]map[string]any{"commission": {"default_rate": 10.0}},
		saveEnter: make(chan struct{}, 1),
		saveGate:  make(chan struct{}),
	}
	s := NewSettingsScreen(g, "a.b.c")
	if err := s.Mount(context.Background(), "commission"); err != nil {
		t.Fatalf("mount failed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.Save(context.Background()) }()

	// Wait until the first save is in flight, then click again.
	<-g.saveEnter
	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("second click must be dropped silently: %v", err)
	}

	close(g.saveGate)
	if err := <-done; err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	if g.saves != 1 {
		t.Fatalf("expected a single request, got %d", g.saves)
	}
	if s.Phase() != PhaseReady {
		t.Fatalf("expected ready, got %v", s.Phase())
	}
}

func TestSave_StaleResultDiscarded(t *testing.T) {
	g := &stubGateway{
		blobs: map[string]map[string]any{
			"marketing": {"site_name": "MarketPlace Pro"},
			"system":    {"maintenance_mode": false},
		},
		saveErr:   &api.APIError{Status: 422, Message: "Invalid SMTP key"},
		saveEnter: make(chan struct{}, 1),
		saveGate:  make(chan struct{}),
	}
	s := NewSettingsScreen(g, "a.b.c")
	if err := s.Mount(context.Background(), "marketing"); err != nil {
		t.Fatalf("mount failed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.Save(context.Background()) }()
	<-g.saveEnter

	// Navigate away while the failing save hangs.
	if err := s.Mount(context.Background(), "system"); err != nil {
		t.Fatalf("second mount failed: %v", err)
	}

	close(g.saveGate)
	if err := <-done; err != nil {
		t.Fatalf("stale save must return nil: %v", err)
	}

	if s.Phase() != PhaseReady {
		t.Fatalf("stale save must not change the new screen's phase, got %v", s.Phase())
	}
	if s.LastError() != "" {
		t.Fatalf("stale save must not leak its error, got %q", s.LastError())
	}
	if s.Category() != "system" {
		t.Fatalf("expected system mounted, got %q", s.Category())
	}

	// The new screen can still save normally.
	g.saveErr = nil
	g.saveEnter = nil
	g.saveGate = nil
	if err := s.Edit("maintenance_mode", true); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("save on the new screen failed: %v", err)
	}
	if g.saved["maintenance_mode"] != true {
		t.Fatalf("expected the new screen's buffer saved: %v", g.saved)
	}
}

func TestMount_StaleFetchDiscarded(t *testing.T) {
	g := &stubGateway{
		blobs: map[string]map[string]any{
			"marketing": {"site_name": "MarketPlace Pro"},
			"system":    {"maintenance_mode": false},
		},
		fetchEnter: make(chan struct{}, 2),
		fetchGate:  make(chan struct{}),
	}
	s := NewSettingsScreen(g, "a.b.c")

	done := make(chan error, 1)
	go func() { done <- s.Mount(context.Background(), "marketing") }()
	<-g.fetchEnter

	// Navigate away while the first fetch hangs, completing the second
	// mount first.
	go func() { <-g.fetchEnter }()
	second := make(chan error, 1)
	go func() { second <- s.Mount(context.Background(), "system") }()

	time.Sleep(10 * time.Millisecond)
	close(g.fetchGate)

	if err := <-second; err != nil {
		t.Fatalf("second mount failed: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("stale mount must return nil: %v", err)
	}

	if s.Category() != "system" {
		t.Fatalf("expected system mounted, got %q", s.Category())
	}
	if _, stale := s.Buffer()["site_name"]; stale {
		t.Fatalf("stale fetch must not overwrite the buffer: %v", s.Buffer())
	}
	if _, ok := s.Buffer()["maintenance_mode"]; !ok {
		t.Fatalf("expected the live category's blob: %v", s.Buffer())
	}
}
