package logfile

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func writeGzip(t *testing.T, dir, name, content string) {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(content)); err != nil {
		t.Fatalf("gzip %s: %v", name, err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip %s: %v", name, err)
	}
	writeFile(t, dir, name, buf.String())
}

func TestLoadDirSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", logJSON("snap:flowers", fullFeatureJSON))
	writeFile(t, dir, "b.json", `{"features": []}`) // missing page
	writeFile(t, dir, "c.JSON", logJSON("click:bugs", legacyFeatureJSON))
	writeFile(t, dir, "notes.txt", "not a log")
	if err := os.Mkdir(filepath.Join(dir, "nested.json"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "nested.json"), "d.json", logJSON("snap:macro"))

	result, err := LoadDir(context.Background(), dir, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	if len(result.Logs) != 2 {
		t.Fatalf("logs = %d, want 2", len(result.Logs))
	}
	if result.Logs[0].FileName != "a.json" || result.Logs[1].FileName != "c.JSON" {
		t.Errorf("unexpected order: %s, %s", result.Logs[0].FileName, result.Logs[1].FileName)
	}
	if len(result.Failures) != 1 {
		t.Fatalf("failures = %d, want 1", len(result.Failures))
	}
	if f := result.Failures[0]; f.FileName != "b.json" || f.Field != "page" {
		t.Errorf("unexpected failure: %v", f)
	}
	if result.Summary() != "2 logs loaded" {
		t.Errorf("Summary() = %q", result.Summary())
	}
}

func TestLoadDirCompressed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", logJSON("snap:flowers", fullFeatureJSON))
	writeGzip(t, dir, "b.json.gz", logJSON("click:bugs", legacyFeatureJSON))

	plain, err := LoadDir(context.Background(), dir, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(plain.Logs) != 1 {
		t.Errorf("without compression: logs = %d, want 1", len(plain.Logs))
	}

	withGz, err := LoadDir(context.Background(), dir, LoadOptions{Compressed: true})
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(withGz.Logs) != 2 {
		t.Fatalf("with compression: logs = %d, want 2", len(withGz.Logs))
	}
	if withGz.Logs[1].Log.Page != "click:bugs" {
		t.Errorf("gzip log page = %q", withGz.Logs[1].Log.Page)
	}
}

func TestLoadDirCorruptGzip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json.gz", "definitely not gzip")

	result, err := LoadDir(context.Background(), dir, LoadOptions{Compressed: true})
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(result.Logs) != 0 || len(result.Failures) != 1 {
		t.Errorf("logs=%d failures=%d, want 0/1", len(result.Logs), len(result.Failures))
	}
}

func TestLoadDirAccessError(t *testing.T) {
	result, err := LoadDir(context.Background(), filepath.Join(t.TempDir(), "missing"), LoadOptions{})
	if result != nil {
		t.Error("expected no result on access failure")
	}
	var ae *AccessError
	if !errors.As(err, &ae) {
		t.Fatalf("error %T is not *AccessError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("AccessError should unwrap to os.ErrNotExist: %v", err)
	}
	if (*LoadResult)(nil).Summary() != "no logs loaded" {
		t.Error("nil result should summarize as no logs loaded")
	}
}

func TestLoadDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", logJSON("snap:flowers", fullFeatureJSON))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LoadDir(ctx, dir, LoadOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestLoadFileSetsFileName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"page": "snap"}`)

	_, err := LoadFile(filepath.Join(dir, "broken.json"))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error %T is not *DecodeError", err)
	}
	if de.FileName != "broken.json" || de.Field != "features" {
		t.Errorf("unexpected error: %v", de)
	}
}
