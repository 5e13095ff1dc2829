// Package config loads loginspector settings from defaults, a config file,
// LOGINSPECTOR_* environment variables and command-line flags, in that order
// of increasing precedence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/spektr-org/loginspector/engine"
	"github.com/spektr-org/loginspector/logging"
)

// EnvPrefix is prepended to every environment override, e.g. LOGINSPECTOR_LOG_LEVEL.
const EnvPrefix = "LOGINSPECTOR"

// FileName is the config file base name searched for when no path is given.
const FileName = "loginspector"

// Config represents the complete loginspector configuration
type Config struct {
	Log       LogConfig    `json:"log" yaml:"log" toml:"log" mapstructure:"log"`
	Output    OutputConfig `json:"output" yaml:"output" toml:"output" mapstructure:"output"`
	Load      LoadConfig   `json:"load" yaml:"load" toml:"load" mapstructure:"load"`
	Chart     ChartConfig  `json:"chart" yaml:"chart" toml:"chart" mapstructure:"chart"`
	Selection string       `json:"selection" yaml:"selection" toml:"selection" mapstructure:"selection"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level  string `json:"level" yaml:"level" toml:"level" mapstructure:"level"`
	Format string `json:"format" yaml:"format" toml:"format" mapstructure:"format"`
}

// OutputConfig selects how command results are written
type OutputConfig struct {
	Format string `json:"format" yaml:"format" toml:"format" mapstructure:"format"`
}

// LoadConfig controls directory loading
type LoadConfig struct {
	Compressed bool `json:"compressed" yaml:"compressed" toml:"compressed" mapstructure:"compressed"`
}

// ChartConfig controls chart rendering hints
type ChartConfig struct {
	Type    string   `json:"type" yaml:"type" toml:"type" mapstructure:"type"`
	Palette []string `json:"palette" yaml:"palette" toml:"palette" mapstructure:"palette"`
	Title   string   `json:"title" yaml:"title" toml:"title" mapstructure:"title"`
}

// ChartTypes understood by the renderer hand-off.
var ChartTypes = []string{"stacked_bar", "bar"}

// OutputFormats understood by the CLI.
var OutputFormats = []string{"json", "pretty", "text", "table", "csv"}

// FlagBindings maps command-line flag names to config keys.
var FlagBindings = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"format":     "output.format",
	"compressed": "load.compressed",
	"chart-type": "chart.type",
	"palette":    "chart.palette",
	"title":      "chart.title",
	"page":       "selection",
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Chart: ChartConfig{
			Type:    ChartTypes[0],
			Palette: append([]string(nil), engine.DefaultPalette...),
			Title:   "Feature picks",
		},
		Selection: engine.SelectAll,
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("load.compressed", d.Load.Compressed)
	v.SetDefault("chart.type", d.Chart.Type)
	v.SetDefault("chart.palette", d.Chart.Palette)
	v.SetDefault("chart.title", d.Chart.Title)
	v.SetDefault("selection", d.Selection)
}

// Load resolves the configuration. path names an explicit config file; when
// empty, loginspector.{yaml,toml,json} is searched for in the working
// directory and $HOME/.config/loginspector, and a missing file is not an error.
// flags may be nil; only flags the user actually set override lower layers.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", FileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Chart.Palette = splitPalette(cfg.Chart.Palette)

	return &cfg, nil
}

// splitPalette accepts both list values and a single comma-separated entry.
func splitPalette(in []string) []string {
	var out []string
	for _, entry := range in {
		for _, c := range strings.Split(entry, ",") {
			if c = strings.TrimSpace(c); c != "" {
				out = append(out, c)
			}
		}
	}
	return out
}

// Save writes the configuration to path, encoded by its extension:
// .yaml/.yml, .toml or .json.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".toml":
		var buf strings.Builder
		err = toml.NewEncoder(&buf).Encode(c)
		data = []byte(buf.String())
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	default:
		return &ConfigError{Field: "path", Message: fmt.Sprintf("unsupported config extension %q", filepath.Ext(path))}
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return &ConfigError{Field: "log.level", Message: err.Error()}
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return &ConfigError{Field: "log.format", Message: fmt.Sprintf("must be %q or %q", logging.FormatText, logging.FormatJSON)}
	}

	if !oneOf(c.Output.Format, OutputFormats) {
		return &ConfigError{Field: "output.format", Message: fmt.Sprintf("must be one of %s", strings.Join(OutputFormats, ", "))}
	}

	if !oneOf(c.Chart.Type, ChartTypes) {
		return &ConfigError{Field: "chart.type", Message: fmt.Sprintf("must be one of %s", strings.Join(ChartTypes, ", "))}
	}
	if len(c.Chart.Palette) == 0 {
		return &ConfigError{Field: "chart.palette", Message: "palette needs at least one color"}
	}
	for _, color := range c.Chart.Palette {
		if !hexColor.MatchString(color) {
			return &ConfigError{Field: "chart.palette", Message: fmt.Sprintf("%q is not a hex color", color)}
		}
	}

	if strings.TrimSpace(c.Selection) == "" {
		return &ConfigError{Field: "selection", Message: "must not be empty"}
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, f := range allowed {
		if f == value {
			return true
		}
	}
	return false
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
