package engine

import (
	"log/slog"

	"github.com/spektr-org/loginspector/diagnostics"
)

// ============================================================================
// ENGINE OPTIONS: Functional options for Execute()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Palette     Palette
	Title       string
	ChartType   string
	Diagnostics diagnostics.Sink
	Logger      *slog.Logger
}

// WithPalette sets the chart colors. Execute rejects an empty palette.
func WithPalette(p Palette) Option {
	return func(c *config) {
		c.Palette = p
	}
}

// WithTitle sets the chart and table title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.Title = title
	}
}

// WithChartType sets the chart type handed to the renderer ("stacked_bar", "bar").
func WithChartType(chartType string) Option {
	return func(c *config) {
		c.ChartType = chartType
	}
}

// WithDiagnostics routes data-quality warnings to sink.
func WithDiagnostics(sink diagnostics.Sink) Option {
	return func(c *config) {
		c.Diagnostics = sink
	}
}

// WithLogger sets the logger for engine progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.Logger = logger
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Palette:     DefaultPalette,
		Title:       "Feature picks",
		ChartType:   "stacked_bar",
		Diagnostics: diagnostics.Discard,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = diagnostics.Discard
	}
	return cfg
}
