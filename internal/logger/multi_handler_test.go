package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/garyellow/showrank-lexbot/internal/ctxutil"
)

// decodeLines parses one JSON object per line.
func decodeLines(t *testing.T, raw []byte) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(raw), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestMultiHandler_LocalAndRemoteSeeSameDialogFields(t *testing.T) {
	t.Parallel()

	var local, remote bytes.Buffer
	mh := NewMultiHandler(
		slog.NewJSONHandler(&local, &slog.HandlerOptions{Level: slog.LevelDebug}),
		nil,
		slog.NewJSONHandler(&remote, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	if len(mh.sinks) != 2 {
		t.Fatalf("Expected nil sink to be skipped, got %d sinks", len(mh.sinks))
	}

	ctx := ctxutil.WithRequestID(context.Background(), "req-42")
	ctx = ctxutil.WithIntent(ctx, "GetBestShow")
	ctx = ctxutil.WithUserID(ctx, "lex-user-9")
	log := slog.New(NewContextHandler(mh)).With("module", "bestshow")
	log.DebugContext(ctx, "Handler completed", "outcome", "fulfilled")

	for name, buf := range map[string]*bytes.Buffer{"local": &local, "remote": &remote} {
		entries := decodeLines(t, buf.Bytes())
		if len(entries) != 1 {
			t.Fatalf("%s: expected 1 record, got %d", name, len(entries))
		}
		entry := entries[0]
		want := map[string]string{
			"request_id": "req-42",
			"intent":     "GetBestShow",
			"user_id":    "lex-user-9",
			"module":     "bestshow",
			"outcome":    "fulfilled",
		}
		for k, v := range want {
			if entry[k] != v {
				t.Errorf("%s: %s = %v, want %s", name, k, entry[k], v)
			}
		}
	}
}

func TestMultiHandler_PerSinkLevels(t *testing.T) {
	t.Parallel()

	var local, remote bytes.Buffer
	mh := NewMultiHandler(
		slog.NewJSONHandler(&local, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&remote, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log := slog.New(mh)

	log.Debug("Handler started", "invocation_source", "DialogCodeHook")
	log.Warn("Lookup miss", "table", "imdb_score")

	if got := len(decodeLines(t, local.Bytes())); got != 2 {
		t.Errorf("local sink got %d records, want 2", got)
	}
	remoteEntries := decodeLines(t, remote.Bytes())
	if len(remoteEntries) != 1 || remoteEntries[0]["table"] != "imdb_score" {
		t.Errorf("remote sink should only get the warning, got %v", remoteEntries)
	}

	if !mh.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled(debug) = false, want true while any sink accepts it")
	}
	if NewMultiHandler().Enabled(context.Background(), slog.LevelError) {
		t.Error("Enabled() with no sinks = true, want false")
	}
}

func TestMultiHandler_GroupsApplyToEverySink(t *testing.T) {
	t.Parallel()

	var local, remote bytes.Buffer
	mh := NewMultiHandler(slog.NewJSONHandler(&local, nil), slog.NewJSONHandler(&remote, nil))
	slog.New(mh.WithGroup("slots")).Info("Eliciting slot", "year", "2030")

	for name, buf := range map[string]*bytes.Buffer{"local": &local, "remote": &remote} {
		entries := decodeLines(t, buf.Bytes())
		if len(entries) != 1 {
			t.Fatalf("%s: expected 1 record, got %d", name, len(entries))
		}
		slots, ok := entries[0]["slots"].(map[string]any)
		if !ok || slots["year"] != "2030" {
			t.Errorf("%s: slots group = %v, want year=2030", name, entries[0]["slots"])
		}
	}
}

// failingSink rejects every record.
type failingSink struct{ slog.Handler }

func (failingSink) Enabled(context.Context, slog.Level) bool { return true }
func (failingSink) Handle(context.Context, slog.Record) error {
	return errors.New("betterstack: unavailable")
}

func TestMultiHandler_FailingRemoteDoesNotBlockLocal(t *testing.T) {
	t.Parallel()

	var local bytes.Buffer
	mh := NewMultiHandler(failingSink{}, slog.NewJSONHandler(&local, nil))

	err := mh.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelError, "Code hook dispatch failed", 0))
	if err == nil || err.Error() != "betterstack: unavailable" {
		t.Errorf("Handle() error = %v, want the sink failure", err)
	}
	if local.Len() == 0 {
		t.Error("local sink should still receive the record")
	}
}

func TestMultiHandler_ConcurrentInvocations(t *testing.T) {
	t.Parallel()

	var local, remote syncBuffer
	log := slog.New(NewMultiHandler(slog.NewJSONHandler(&local, nil), slog.NewJSONHandler(&remote, nil)))

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := ctxutil.WithRequestID(context.Background(), "req")
			log.InfoContext(ctx, "Request completed", "n", i)
		}()
	}
	wg.Wait()

	if got := len(decodeLines(t, []byte(local.String()))); got != 50 {
		t.Errorf("local sink got %d records, want 50", got)
	}
	if got := len(decodeLines(t, []byte(remote.String()))); got != 50 {
		t.Errorf("remote sink got %d records, want 50", got)
	}
}
