package archive

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	json "github.com/goccy/go-json"

	"github.com/onnwee/chatwire/telemetry"
)

// BatchConfig sets the batching knobs for the Postgres sink.
type BatchConfig struct {
	MaxBatch     int
	FlushEvery   time.Duration
	QueueSize    int
	FlushTimeout time.Duration
}

func (c BatchConfig) withDefaults() BatchConfig {
	if c.MaxBatch <= 0 {
		c.MaxBatch = 200
	}
	if c.FlushEvery <= 0 {
		c.FlushEvery = 2 * time.Second
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 4096
	}
	if c.FlushTimeout <= 0 {
		c.FlushTimeout = 10 * time.Second
	}
	return c
}

// batchSender is the slice of pgxpool.Pool the batcher needs; tests stub it.
type batchSender interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// PostgresSink inserts rows through pgx.Batch, flushing when the batch
// reaches MaxBatch rows or FlushEvery elapses. Write never blocks: when the
// queue is full the row is dropped and counted.
type PostgresSink struct {
	input   chan Row
	config  BatchConfig
	sender  batchSender
	dropped atomic.Uint64
	done    chan struct{}
}

// NewPostgresSink starts the background flusher. ctx cancellation triggers a
// final flush and stops the sink.
func NewPostgresSink(ctx context.Context, pool *pgxpool.Pool, cfg BatchConfig) *PostgresSink {
	return newPostgresSink(ctx, pool, cfg)
}

func newPostgresSink(ctx context.Context, sender batchSender, cfg BatchConfig) *PostgresSink {
	cfg = cfg.withDefaults()
	s := &PostgresSink{
		input:  make(chan Row, cfg.QueueSize),
		config: cfg,
		sender: sender,
		done:   make(chan struct{}),
	}
	go s.run(ctx)
	return s
}

// Write enqueues a row; a full queue drops the row rather than blocking the
// decode loop.
func (s *PostgresSink) Write(row Row) error {
	select {
	case s.input <- row:
		telemetry.SetArchiveQueueDepth(len(s.input))
	default:
		dropped := s.dropped.Add(1)
		if telemetry.ArchiveRowsDropped != nil {
			telemetry.ArchiveRowsDropped.Inc()
		}
		if dropped%100 == 1 {
			slog.Warn("archive queue full, dropping rows", slog.Uint64("total_dropped", dropped))
		}
	}
	return nil
}

// Dropped returns the number of rows dropped due to a full queue.
func (s *PostgresSink) Dropped() uint64 { return s.dropped.Load() }

// Close waits for the background flusher to drain after ctx-driven shutdown.
func (s *PostgresSink) Close(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

const insertRowSQL = `
insert into chat_events (
  ingest_id, kind, channel, room_id, message_id, user_id, login,
  display_name, text, bits, badges, color, extra, sent_at
) values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
on conflict (ingest_id, message_id) do nothing;`

func (s *PostgresSink) run(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.config.FlushEvery)
	defer ticker.Stop()

	batch := &pgx.Batch{}
	pending := 0

	flush := func() {
		if pending == 0 {
			return
		}
		n := pending
		telemetry.TimeFunc(telemetry.ArchiveFlushDuration, func() {
			dbCtx, cancel := context.WithTimeout(context.Background(), s.config.FlushTimeout)
			defer cancel()
			br := s.sender.SendBatch(dbCtx, batch)
			if err := br.Close(); err != nil {
				slog.Error("archive batch flush failed", slog.Any("err", err), slog.Int("rows", n))
				return
			}
			if telemetry.ArchiveRowsWritten != nil {
				telemetry.ArchiveRowsWritten.Add(float64(n))
			}
		})
		batch = &pgx.Batch{}
		pending = 0
	}

	for {
		select {
		case <-ctx.Done():
			// drain whatever made it into the queue before cancellation
			for {
				select {
				case row := <-s.input:
					s.queue(batch, row)
					pending++
				default:
					flush()
					return
				}
			}
		case <-ticker.C:
			flush()
		case row := <-s.input:
			s.queue(batch, row)
			pending++
			telemetry.SetArchiveQueueDepth(len(s.input))
			if pending >= s.config.MaxBatch {
				flush()
			}
		}
	}
}

func (s *PostgresSink) queue(batch *pgx.Batch, row Row) {
	badgesJSON, _ := json.Marshal(row.Badges)
	batch.Queue(insertRowSQL,
		row.IngestID, row.Kind, row.Channel, row.RoomID, row.MessageID,
		row.UserID, row.Login, row.DisplayName, row.Text, row.Bits,
		badgesJSON, row.Color, row.Extra, row.SentAt.UTC(),
	)
}
