package logfile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ============================================================================
// LOADER: Directory scan + sequential per-file decode
// ============================================================================
// Only immediate entries are considered. A file that fails to decode is
// recorded and skipped; the remaining files still load.
// ============================================================================

const (
	extJSON   = ".json"
	extJSONGz = ".json.gz"
)

// LoadOptions configures LoadDir.
type LoadOptions struct {
	Compressed bool         // also accept .json.gz files
	Logger     *slog.Logger // nil = slog.Default()
}

// LoadResult is the outcome of one directory load.
type LoadResult struct {
	Dir      string
	Logs     []LogFile
	Failures []*DecodeError
}

// Summary is the only user-facing line about a load.
func (r *LoadResult) Summary() string {
	if r == nil {
		return LoadedSummary(0)
	}
	return LoadedSummary(len(r.Logs))
}

// LoadedSummary renders a loaded-log count the way users see it.
func LoadedSummary(n int) string {
	switch n {
	case 0:
		return "no logs loaded"
	case 1:
		return "1 log loaded"
	}
	return fmt.Sprintf("%d logs loaded", n)
}

// ScanDir lists the loadable log files directly inside dir, sorted by name.
func ScanDir(dir string, compressed bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &AccessError{Dir: dir, Err: err}
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isLogFile(entry.Name(), compressed) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

func isLogFile(name string, compressed bool) bool {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, extJSON) {
		return true
	}
	return compressed && strings.HasSuffix(lower, extJSONGz)
}

// LoadDir scans dir and decodes every log file in it.
// It returns *AccessError when the directory cannot be read; per-file
// problems end up in LoadResult.Failures instead.
func LoadDir(ctx context.Context, dir string, opts LoadOptions) (*LoadResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	paths, err := ScanDir(dir, opts.Compressed)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{Dir: dir}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := filepath.Base(path)
		log, err := LoadFile(path)
		if err != nil {
			de, ok := err.(*DecodeError)
			if !ok {
				de = &DecodeError{FileName: name, Err: err}
			}
			result.Failures = append(result.Failures, de)
			logger.Debug("skipping log file", "file", name, "missing", IsMissingField(de), "error", de.Message())
			continue
		}

		result.Logs = append(result.Logs, LogFile{FileName: name, Log: log})
	}

	logger.Debug("log directory loaded",
		"dir", dir,
		"files", len(paths),
		"logs", len(result.Logs),
		"failures", len(result.Failures))
	return result, nil
}

// LoadFile reads and decodes one log file. Errors are always *DecodeError.
func LoadFile(path string) (Log, error) {
	name := filepath.Base(path)

	data, err := readFile(path)
	if err != nil {
		return Log{}, &DecodeError{FileName: name, Err: err}
	}

	log, err := Decode(data)
	if err != nil {
		de := err.(*DecodeError)
		de.FileName = name
		return Log{}, de
	}
	return log, nil
}

func readFile(path string) ([]byte, error) {
	if !strings.HasSuffix(strings.ToLower(path), extJSONGz) {
		return os.ReadFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	defer zr.Close()

	return io.ReadAll(zr)
}
