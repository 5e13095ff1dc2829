// Package diagnostics is the developer-facing channel for data problems.
// Nothing here is shown to end users; entries are logged and kept for inspection.
package diagnostics

import (
	"context"
	"log/slog"
	"sync"
)

// Kind classifies a diagnostic entry.
type Kind string

const (
	KindDecodeError       Kind = "decode-error"
	KindNoneMembership    Kind = "none-membership"
	KindInvalidMembership Kind = "invalid-membership"
	KindInvalidTagSource  Kind = "invalid-tag-source"
)

// Entry is one diagnostic, keyed by source file and (for feature-level issues) user.
type Entry struct {
	Kind     Kind   `json:"kind"`
	FileName string `json:"fileName"`
	UserName string `json:"userName,omitempty"`
	Page     string `json:"page,omitempty"`
	Value    string `json:"value,omitempty"`
	Message  string `json:"message"`
}

// IsWarning reports whether the entry is a data-quality warning rather than a decode failure.
func (e Entry) IsWarning() bool { return e.Kind != KindDecodeError }

// Sink receives diagnostics.
type Sink interface {
	Report(e Entry)
}

// Collector records entries and mirrors each one to a slog logger.
type Collector struct {
	mu      sync.Mutex
	logger  *slog.Logger
	entries []Entry
}

// NewCollector creates a collector. A nil logger uses slog.Default().
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{logger: logger}
}

// Report records e and logs it. Decode failures log at ERROR, everything else at WARN.
func (c *Collector) Report(e Entry) {
	c.mu.Lock()
	c.entries = append(c.entries, e)
	c.mu.Unlock()

	level := slog.LevelWarn
	if !e.IsWarning() {
		level = slog.LevelError
	}
	attrs := []any{"kind", string(e.Kind), "file", e.FileName}
	if e.UserName != "" {
		attrs = append(attrs, "user", e.UserName)
	}
	if e.Page != "" {
		attrs = append(attrs, "page", e.Page)
	}
	if e.Value != "" {
		attrs = append(attrs, "value", e.Value)
	}
	c.logger.Log(context.Background(), level, e.Message, attrs...)
}

// Entries returns a copy of everything reported so far.
func (c *Collector) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Reset drops all recorded entries.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()
}

// Count returns the number of entries of the given kind.
func (c *Collector) Count(kind Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Report(Entry) {}
