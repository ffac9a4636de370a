package archive

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type stubResults struct{}

func (stubResults) Exec() (pgconn.CommandTag, error) { return pgconn.CommandTag{}, nil }
func (stubResults) Query() (pgx.Rows, error)         { return nil, nil }
func (stubResults) QueryRow() pgx.Row                { return nil }
func (stubResults) Close() error                     { return nil }

type stubSender struct {
	mu      sync.Mutex
	batches []*pgx.Batch
	gate    chan struct{} // when set, SendBatch blocks until it closes
}

func (s *stubSender) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, b)
	return stubResults{}
}

func (s *stubSender) batchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.batches)
}

func (s *stubSender) totalRows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.batches {
		n += b.Len()
	}
	return n
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestPostgresSinkFlushOnMaxBatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &stubSender{}
	sink := newPostgresSink(ctx, sender, BatchConfig{MaxBatch: 2, FlushEvery: time.Hour})

	sink.Write(Row{IngestID: "i", Kind: "message", Text: "one"})
	sink.Write(Row{IngestID: "i", Kind: "message", Text: "two"})

	waitFor(t, func() bool { return sender.batchCount() == 1 })
	if got := sender.totalRows(); got != 2 {
		t.Errorf("flushed rows = %d, want 2", got)
	}

	cancel()
	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer closeCancel()
	if err := sink.Close(closeCtx); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestPostgresSinkFlushOnTimer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &stubSender{}
	sink := newPostgresSink(ctx, sender, BatchConfig{MaxBatch: 1000, FlushEvery: 20 * time.Millisecond})

	sink.Write(Row{IngestID: "i", Kind: "message", Text: "lone row"})

	waitFor(t, func() bool { return sender.totalRows() == 1 })

	cancel()
	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer closeCancel()
	if err := sink.Close(closeCtx); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestPostgresSinkDrainsOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	sender := &stubSender{}
	sink := newPostgresSink(ctx, sender, BatchConfig{MaxBatch: 1000, FlushEvery: time.Hour})

	for i := 0; i < 5; i++ {
		sink.Write(Row{IngestID: "i", Kind: "message"})
	}
	cancel()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer closeCancel()
	if err := sink.Close(closeCtx); err != nil {
		t.Fatalf("close: %v", err)
	}
	if got := sender.totalRows(); got != 5 {
		t.Errorf("drained rows = %d, want 5", got)
	}
}

func TestPostgresSinkDropsWhenQueueFull(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gate := make(chan struct{})
	sender := &stubSender{gate: gate}
	sink := newPostgresSink(ctx, sender, BatchConfig{MaxBatch: 1, FlushEvery: time.Hour, QueueSize: 1})

	// first row flushes immediately and parks the flusher inside SendBatch
	sink.Write(Row{IngestID: "i", Kind: "message", Text: "flushing"})
	waitFor(t, func() bool { return len(sink.input) == 0 })

	// queue holds one row; everything past that is dropped without blocking
	sink.Write(Row{IngestID: "i", Kind: "message", Text: "queued"})
	sink.Write(Row{IngestID: "i", Kind: "message", Text: "dropped"})
	sink.Write(Row{IngestID: "i", Kind: "message", Text: "dropped"})

	if got := sink.Dropped(); got != 2 {
		t.Errorf("dropped = %d, want 2", got)
	}

	close(gate)
	cancel()
	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer closeCancel()
	if err := sink.Close(closeCtx); err != nil {
		t.Fatalf("close: %v", err)
	}
}
