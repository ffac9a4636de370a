package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
)

// NDJSONSink appends rows as gzip-compressed NDJSON, one file per rotation.
// Files are named events-<unix-nanos>.ndjson.gz inside the configured
// directory and rotated once the uncompressed payload passes maxBytes.
type NDJSONSink struct {
	dir      string
	maxBytes int64

	mu      sync.Mutex
	file    *os.File
	gz      *gzip.Writer
	enc     *json.Encoder
	written int64
}

const defaultRotateBytes = 64 << 20 // 64 MiB uncompressed per file

// NewNDJSONSink creates the directory if needed and opens the first file.
func NewNDJSONSink(dir string) (*NDJSONSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create ndjson dir: %w", err)
	}
	s := &NDJSONSink{dir: dir, maxBytes: defaultRotateBytes}
	if err := s.rotate(); err != nil {
		return nil, err
	}
	return s, nil
}

// rotate closes the current file (if any) and opens a fresh one. Callers
// hold s.mu, except the constructor.
func (s *NDJSONSink) rotate() error {
	if err := s.closeFile(); err != nil {
		return err
	}
	name := filepath.Join(s.dir, fmt.Sprintf("events-%d.ndjson.gz", time.Now().UnixNano()))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("open ndjson file: %w", err)
	}
	s.file = f
	s.gz, _ = gzip.NewWriterLevel(f, gzip.BestSpeed)
	s.enc = json.NewEncoder(s.gz)
	s.written = 0
	return nil
}

func (s *NDJSONSink) closeFile() error {
	if s.file == nil {
		return nil
	}
	if err := s.gz.Close(); err != nil {
		s.file.Close()
		return fmt.Errorf("close gzip stream: %w", err)
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close ndjson file: %w", err)
	}
	s.file = nil
	return nil
}

// Write encodes one row as a JSON line.
func (s *NDJSONSink) Write(row Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return fmt.Errorf("ndjson sink is closed")
	}
	if err := s.enc.Encode(row); err != nil {
		return fmt.Errorf("encode row: %w", err)
	}
	s.written += int64(len(row.Text)) + 256 // coarse size estimate per line
	if s.written >= s.maxBytes {
		return s.rotate()
	}
	return nil
}

// Close flushes and closes the current file.
func (s *NDJSONSink) Close(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeFile()
}
