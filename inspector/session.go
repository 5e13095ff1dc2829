// Package inspector holds the loaded log set and answers selection queries over it.
package inspector

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/spektr-org/loginspector/diagnostics"
	"github.com/spektr-org/loginspector/engine"
	"github.com/spektr-org/loginspector/logfile"
)

// Session is the committed log set plus the selection values derived from it.
// Load replaces the set wholesale; readers never observe a partial load.
type Session struct {
	mu         sync.RWMutex
	dir        string
	logs       []logfile.LogFile
	selections []string

	compressed  bool
	diagnostics *diagnostics.Collector
	engineOpts  []engine.Option
	logger      *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithCompressed makes Load accept .json.gz files.
func WithCompressed(on bool) Option {
	return func(s *Session) { s.compressed = on }
}

// WithEngineOptions are passed to every engine.Execute call.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(s *Session) { s.engineOpts = append(s.engineOpts, opts...) }
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithCollector sets the diagnostics collector shared by loading and grouping.
func WithCollector(c *diagnostics.Collector) Option {
	return func(s *Session) { s.diagnostics = c }
}

// NewSession creates an empty session.
func NewSession(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "inspector")
	if s.diagnostics == nil {
		s.diagnostics = diagnostics.NewCollector(s.logger)
	}
	s.selections = []string{engine.SelectAll}
	return s
}

// Load reads dir and commits its logs. The diagnostics collector is reset
// with the set: afterwards it holds this load's decode failures and one
// data-quality warning per suspicious feature. An AccessError clears the
// committed set.
func (s *Session) Load(ctx context.Context, dir string) (*logfile.LoadResult, error) {
	result, err := logfile.LoadDir(ctx, dir, logfile.LoadOptions{
		Compressed: s.compressed,
		Logger:     s.logger,
	})
	if err != nil {
		var ae *logfile.AccessError
		if errors.As(err, &ae) {
			s.commit(dir, nil)
			s.logger.Warn("log directory not accessible", "dir", dir, "error", ae.Err)
		}
		return nil, err
	}

	s.commit(dir, result.Logs)

	for _, f := range result.Failures {
		s.diagnostics.Report(diagnostics.Entry{
			Kind:     diagnostics.KindDecodeError,
			FileName: f.FileName,
			Value:    f.Field,
			Message:  f.Message(),
		})
	}
	warnings := engine.CheckDataQuality(result.Logs, s.diagnostics)

	s.logger.Info(result.Summary(), "dir", dir, "skipped", len(result.Failures), "warnings", warnings)
	return result, nil
}

func (s *Session) commit(dir string, logs []logfile.LogFile) {
	selections := engine.SelectionValues(logs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dir = dir
	s.logs = logs
	s.selections = selections
	s.diagnostics.Reset()
}

// Select recomputes the grouping for selection over the committed logs.
// Data-quality warnings were already reported by Load and are only counted
// here. An unknown selection gives an empty result, not an error.
func (s *Session) Select(selection string) (*engine.Result, error) {
	s.mu.RLock()
	logs := s.logs
	s.mu.RUnlock()

	opts := append([]engine.Option{engine.WithLogger(s.logger)}, s.engineOpts...)
	return engine.Execute(logs, selection, opts...)
}

// Logs returns the committed logs. The slice must not be modified.
func (s *Session) Logs() []logfile.LogFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logs
}

// SelectionValues returns "all" followed by every page and hub in the committed set.
func (s *Session) SelectionValues() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.selections))
	copy(out, s.selections)
	return out
}

// Dir returns the directory of the last load attempt.
func (s *Session) Dir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// Summary is the user-facing load status.
func (s *Session) Summary() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return logfile.LoadedSummary(len(s.logs))
}

// Diagnostics returns the collector holding decode errors and data warnings.
func (s *Session) Diagnostics() *diagnostics.Collector {
	return s.diagnostics
}
