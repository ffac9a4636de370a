package archive

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
)

func readNDJSONFile(t *testing.T, path string) []Row {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	defer gz.Close()

	var rows []Row
	dec := json.NewDecoder(gz)
	for {
		var row Row
		if err := dec.Decode(&row); err == io.EOF {
			return rows
		} else if err != nil {
			t.Fatalf("decode row: %v", err)
		}
		rows = append(rows, row)
	}
}

func ndjsonFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "events-*.ndjson.gz"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	sort.Strings(matches)
	return matches
}

func TestNDJSONSinkRoundTrip(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewNDJSONSink(dir)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	sent := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	want := []Row{
		{IngestID: "i", Kind: "message", Channel: "#c", Login: "ronni", Text: "hello", SentAt: sent},
		{IngestID: "i", Kind: "ban", Channel: "#c", Login: "ronni", Extra: "permanent", SentAt: sent},
	}
	for _, row := range want {
		if err := sink.Write(row); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := sink.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}

	files := ndjsonFiles(t, dir)
	if len(files) != 1 {
		t.Fatalf("files = %v, want one", files)
	}
	got := readNDJSONFile(t, files[0])
	if len(got) != len(want) {
		t.Fatalf("rows = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Kind != want[i].Kind || got[i].Text != want[i].Text || got[i].Extra != want[i].Extra {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
		if !got[i].SentAt.Equal(want[i].SentAt) {
			t.Errorf("row %d sent_at = %v, want %v", i, got[i].SentAt, want[i].SentAt)
		}
	}
}

func TestNDJSONSinkRotates(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewNDJSONSink(dir)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	sink.maxBytes = 1 // force a rotation after every write

	sink.Write(Row{IngestID: "i", Kind: "message", Text: "first"})
	sink.Write(Row{IngestID: "i", Kind: "message", Text: "second"})
	if err := sink.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}

	files := ndjsonFiles(t, dir)
	if len(files) < 2 {
		t.Fatalf("files = %v, want at least two after rotation", files)
	}
	total := 0
	for _, f := range files {
		total += len(readNDJSONFile(t, f))
	}
	if total != 2 {
		t.Errorf("total rows across files = %d, want 2", total)
	}
}

func TestNDJSONSinkWriteAfterClose(t *testing.T) {
	sink, err := NewNDJSONSink(t.TempDir())
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	if err := sink.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := sink.Write(Row{IngestID: "i"}); err == nil {
		t.Error("write after close succeeded, want error")
	}
}
