package logger

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// defaultQueueSize bounds the records waiting for the remote sink.
const defaultQueueSize = 1024

type queuedRecord struct {
	ctx    context.Context
	record slog.Record
	next   slog.Handler
}

// logQueue is shared by an AsyncHandler and every handler derived from it
// through WithAttrs or WithGroup.
type logQueue struct {
	records chan queuedRecord
	done    chan struct{}
	dropped atomic.Uint64

	mu     sync.RWMutex // closed flips under the write lock so no send races close
	closed bool
}

func newLogQueue(size int) *logQueue {
	if size <= 0 {
		size = defaultQueueSize
	}
	q := &logQueue{
		records: make(chan queuedRecord, size),
		done:    make(chan struct{}),
	}
	go q.drain()
	return q
}

func (q *logQueue) drain() {
	defer close(q.done)
	for qr := range q.records {
		_ = qr.next.Handle(qr.ctx, qr.record)
	}
}

// push never blocks. A full or closed queue drops the record.
func (q *logQueue) push(qr queuedRecord) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		q.dropped.Add(1)
		return
	}
	select {
	case q.records <- qr:
	default:
		q.dropped.Add(1)
	}
}

func (q *logQueue) close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.records)
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AsyncHandler ships records to next on a background goroutine so a slow
// remote sink never delays a code hook response. Records that do not fit
// in the queue are dropped and counted.
type AsyncHandler struct {
	next  slog.Handler
	queue *logQueue
}

// NewAsyncHandler wraps next with a queue of queueSize records. A
// non-positive size uses the default of 1024.
func NewAsyncHandler(next slog.Handler, queueSize int) *AsyncHandler {
	return &AsyncHandler{next: next, queue: newLogQueue(queueSize)}
}

// Enabled defers to the wrapped handler.
func (h *AsyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle queues a copy of r. The context is detached from cancellation
// because the record outlives the request.
func (h *AsyncHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.next.Enabled(ctx, r.Level) {
		return nil
	}
	h.queue.push(queuedRecord{ctx: context.WithoutCancel(ctx), record: r.Clone(), next: h.next})
	return nil
}

func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AsyncHandler{next: h.next.WithAttrs(attrs), queue: h.queue}
}

func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	return &AsyncHandler{next: h.next.WithGroup(name), queue: h.queue}
}

// Dropped returns how many records were discarded because the queue was
// full or already shut down.
func (h *AsyncHandler) Dropped() uint64 {
	if h == nil {
		return 0
	}
	return h.queue.dropped.Load()
}

// Shutdown stops accepting records and waits until the queue is drained or
// ctx is done. Calling it again only waits.
func (h *AsyncHandler) Shutdown(ctx context.Context) error {
	if h == nil {
		return nil
	}
	return h.queue.close(ctx)
}
