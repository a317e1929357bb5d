package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/garyellow/showrank-lexbot/internal/ctxutil"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// gateHandler blocks every Handle call until release is closed, reporting
// each call on started.
type gateHandler struct {
	started chan struct{}
	release chan struct{}
	mu      sync.Mutex
	handled int
}

func newGateHandler() *gateHandler {
	return &gateHandler{started: make(chan struct{}, 16), release: make(chan struct{})}
}

func (g *gateHandler) Enabled(context.Context, slog.Level) bool { return true }

func (g *gateHandler) Handle(context.Context, slog.Record) error {
	g.started <- struct{}{}
	<-g.release
	g.mu.Lock()
	g.handled++
	g.mu.Unlock()
	return nil
}

func (g *gateHandler) WithAttrs([]slog.Attr) slog.Handler { return g }
func (g *gateHandler) WithGroup(string) slog.Handler      { return g }

func (g *gateHandler) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.handled
}

func TestAsyncHandler_ShipsDialogRecordsOnShutdown(t *testing.T) {
	t.Parallel()

	var remote syncBuffer
	async := NewAsyncHandler(slog.NewJSONHandler(&remote, nil), 16)
	log := slog.New(NewContextHandler(async))

	ctx := ctxutil.WithIntent(context.Background(), "GetTopFive")
	ctx = ctxutil.WithRequestID(ctx, "aws-req-7")
	for _, year := range []string{"2016", "2017", "2018"} {
		log.InfoContext(ctx, "Handler completed", "year", year)
	}

	if err := async.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	got := remote.String()
	if n := strings.Count(got, `"intent":"GetTopFive"`); n != 3 {
		t.Errorf("Expected 3 shipped records tagged with the intent, got %d: %s", n, got)
	}
	if !strings.Contains(got, `"request_id":"aws-req-7"`) {
		t.Errorf("Expected request_id to survive the queue: %s", got)
	}
	if async.Dropped() != 0 {
		t.Errorf("Dropped() = %d, want 0", async.Dropped())
	}
}

func TestAsyncHandler_DropsWhenQueueFull(t *testing.T) {
	t.Parallel()

	gate := newGateHandler()
	async := NewAsyncHandler(gate, 1)
	log := slog.New(async)

	log.Warn("Lookup miss", "table", "best_show")
	<-gate.started // first record is being shipped, queue is empty again

	log.Warn("Lookup miss", "table", "top_five")   // queued
	log.Warn("Lookup miss", "table", "imdb_score") // dropped
	log.Warn("Lookup miss", "table", "imdb_score") // dropped

	if got := async.Dropped(); got != 2 {
		t.Errorf("Dropped() = %d, want 2", got)
	}

	close(gate.release)
	if err := async.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if got := gate.count(); got != 2 {
		t.Errorf("shipped %d records, want 2", got)
	}
}

func TestAsyncHandler_CountsRecordsAfterShutdown(t *testing.T) {
	t.Parallel()

	var remote syncBuffer
	async := NewAsyncHandler(slog.NewJSONHandler(&remote, nil), 0)
	if err := async.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := async.Shutdown(context.Background()); err != nil {
		t.Fatalf("second Shutdown() error = %v", err)
	}

	slog.New(async.WithAttrs([]slog.Attr{slog.String("module", "bestshow")})).Info("late")

	if remote.String() != "" {
		t.Errorf("Expected nothing shipped after shutdown, got %s", remote.String())
	}
	if got := async.Dropped(); got != 1 {
		t.Errorf("Dropped() = %d, want 1", got)
	}
}

func TestAsyncHandler_ShutdownHonorsDeadline(t *testing.T) {
	t.Parallel()

	gate := newGateHandler()
	async := NewAsyncHandler(gate, 4)
	slog.New(async).Error("Code hook dispatch failed")
	<-gate.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := async.Shutdown(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Shutdown() error = %v, want deadline exceeded", err)
	}

	close(gate.release)
	if err := async.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() after release error = %v", err)
	}
}

func TestAsyncHandler_Enabled(t *testing.T) {
	t.Parallel()

	async := NewAsyncHandler(slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}), 0)
	t.Cleanup(func() { _ = async.Shutdown(context.Background()) })

	if async.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Enabled(info) = true, want false")
	}
	if !async.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Enabled(warn) = false, want true")
	}
}

func TestLogger_DroppedWithoutRemoteSink(t *testing.T) {
	t.Parallel()

	if got := NewWithWriter("info", &bytes.Buffer{}).Dropped(); got != 0 {
		t.Errorf("Dropped() = %d, want 0", got)
	}
}
