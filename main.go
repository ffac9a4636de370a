// Command chatwire is the main entrypoint for the chat ingest daemon.
// It:
//   - Loads configuration and initializes structured logging.
//   - Connects to the Twitch IRC edge over TLS with an anonymous login and
//     requests the tags/commands capabilities.
//   - Decodes every received line into a typed event and fans the result out
//     to the configured archive sinks (Postgres, gzip NDJSON).
//   - Exposes a minimal HTTP server with /healthz and /metrics.
//
// Shutdown is graceful on SIGINT/SIGTERM.
package main

import (
	"bufio"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/onnwee/chatwire/archive"
	"github.com/onnwee/chatwire/config"
	"github.com/onnwee/chatwire/irc"
	"github.com/onnwee/chatwire/telemetry"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	// Load .env file if present (local dev convenience only; production relies on real env)
	_ = godotenv.Load(".env")

	// Configure logging (level + format). Defaults: level=info, format=text.
	lvl := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	case "info", "":
		// keep default
	default:
		tmp := slog.New(slog.NewTextHandler(os.Stdout, nil))
		tmp.Warn("unknown LOG_LEVEL, using info", slog.String("value", os.Getenv("LOG_LEVEL")))
	}
	var handler slog.Handler
	switch strings.ToLower(os.Getenv("LOG_FORMAT")) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	}
	slog.SetDefault(slog.New(handler))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}
	if err := cfg.ValidateIngestReady(); err != nil {
		slog.Error("config incomplete", slog.Any("err", err))
		os.Exit(1)
	}

	telemetry.Init()

	shutdownTracing, err := telemetry.InitTracing("chatwire", "1.0.0")
	if err != nil {
		slog.Error("tracing init failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer shutdownTracing()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var sinks []archive.Sink
	if cfg.DBDsn != "" {
		pool, err := pgxpool.New(ctx, cfg.DBDsn)
		if err != nil {
			slog.Error("postgres connect failed", slog.Any("err", err))
			os.Exit(1)
		}
		defer pool.Close()
		sinks = append(sinks, archive.NewPostgresSink(ctx, pool, archive.BatchConfig{
			MaxBatch:   cfg.ArchiveMaxBatch,
			FlushEvery: cfg.ArchiveFlushEvery,
			QueueSize:  cfg.ArchiveQueueSize,
		}))
		slog.Info("postgres sink enabled")
	}
	if cfg.NDJSONDir != "" {
		nd, err := archive.NewNDJSONSink(cfg.NDJSONDir)
		if err != nil {
			slog.Error("ndjson sink init failed", slog.Any("err", err))
			os.Exit(1)
		}
		sinks = append(sinks, nd)
		slog.Info("ndjson sink enabled", slog.String("dir", cfg.NDJSONDir))
	}
	if len(sinks) == 0 {
		slog.Info("no archive sinks configured; events are decoded and counted only")
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	srv := &http.Server{Addr: cfg.ListenAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		slog.Info("http listener started", slog.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http server error", slog.Any("err", err))
		}
	}()

	runReader(ctx, cfg, sinks)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", slog.Any("err", err))
	}
	for _, s := range sinks {
		if err := s.Close(shutdownCtx); err != nil {
			slog.Error("sink close error", slog.Any("err", err))
		}
	}
	slog.Info("shutdown complete")
}

// runReader keeps one IRC connection alive until ctx is cancelled,
// reconnecting with a flat backoff after failures.
func runReader(ctx context.Context, cfg *config.Config, sinks []archive.Sink) {
	ingestID := uuid.NewString()
	dec := &irc.Decoder{OnDiagnostic: recordDiagnostic}
	slog.Info("chat reader starting", slog.String("ingest_id", ingestID), slog.Any("channels", cfg.Channels))
	for ctx.Err() == nil {
		err := readConnection(ctx, cfg, dec, ingestID, sinks)
		telemetry.UpdateConnectedGauge(false)
		if ctx.Err() != nil {
			return
		}
		slog.Error("irc connection lost, reconnecting", slog.Any("err", err))
		select {
		case <-time.After(5 * time.Second):
		case <-ctx.Done():
			return
		}
	}
}

func readConnection(ctx context.Context, cfg *config.Config, dec *irc.Decoder, ingestID string, sinks []archive.Sink) error {
	conn, err := tls.Dial("tcp", cfg.IRCAddr, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", cfg.IRCAddr, err)
	}
	defer conn.Close()

	// Unblock the read loop on shutdown.
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	w := bufio.NewWriter(conn)
	fmt.Fprintf(w, "CAP REQ :twitch.tv/tags twitch.tv/commands\r\n")
	fmt.Fprintf(w, "NICK %s\r\n", cfg.Nick)
	for _, ch := range cfg.Channels {
		fmt.Fprintf(w, "JOIN #%s\r\n", ch)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	telemetry.UpdateConnectedGauge(true)

	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		raw := strings.TrimRight(sc.Text(), "\r")
		if raw == "" {
			continue
		}
		if strings.HasPrefix(raw, "PING") {
			fmt.Fprintf(w, "PONG :tmi.twitch.tv\r\n")
			_ = w.Flush()
			continue
		}
		handleLine(ctx, dec, ingestID, raw, sinks)
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return fmt.Errorf("connection closed by server")
}

// handleLine splits the tag string from the command line, decodes, and fans
// the row out to the sinks.
func handleLine(ctx context.Context, dec *irc.Decoder, ingestID, raw string, sinks []archive.Sink) {
	tagString, line := "", raw
	if strings.HasPrefix(raw, "@") {
		if t, rest, ok := strings.Cut(raw, " "); ok {
			tagString, line = t, rest
		}
	}
	line = strings.TrimPrefix(line, ":")

	_, span := telemetry.StartSpan(ctx, "chatwire", "decode")
	var ev irc.Event
	var err error
	telemetry.TimeFunc(telemetry.DecodeDuration, func() {
		ev, err = dec.Decode(tagString, line)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		span.End()
		telemetry.DecodeHardFailures.Inc()
		slog.Warn("dropping malformed line", slog.Any("err", err), slog.String("line", raw))
		return
	}
	span.End()

	telemetry.CountEvent(ev.Kind().String())
	if ev.Kind() == irc.KindUnrecognized {
		telemetry.UnrecognizedEvents.Inc()
	}

	row := archive.RowFromEvent(ev, ingestID, time.Now().UTC())
	for _, s := range sinks {
		if err := s.Write(row); err != nil {
			slog.Error("archive write failed", slog.Any("err", err), slog.String("kind", row.Kind))
		}
	}
}

// recordDiagnostic routes decode diagnostics to the log and the drift
// counters.
func recordDiagnostic(d irc.Diagnostic) {
	switch d.Kind {
	case irc.DiagUnsupportedTag:
		telemetry.UnsupportedTags.Inc()
	case irc.DiagUnknownEnumValue:
		telemetry.UnknownEnumValues.Inc()
	case irc.DiagMalformedValue:
		telemetry.MalformedValues.Inc()
	case irc.DiagUnknownEventID:
		telemetry.UnknownEventIDs.Inc()
	}
	slog.Debug("protocol drift",
		slog.String("kind", d.Kind.String()),
		slog.String("key", d.Key),
		slog.String("value", d.Value))
}
