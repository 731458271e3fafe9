// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/airo/internal/analysis"
	"github.com/mwiater/airo/internal/layout"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. AIRO_OUTPUTDIR.
	EnvPrefix = "AIRO"

	defaultLogFile      = "airo.log"
	defaultOutputDir    = "reports"
	defaultFormat       = "html"
	defaultReportLabel  = "AIRO Report"
	defaultTitle        = "AIRO Report"
	defaultFooterText   = "Generated via Torneta AIRO Platform"
	defaultDateLayout   = "2006-01-02 15:04"
	defaultBatchWorkers = 4
)

// Config represents the top-level application configuration.
type Config struct {
	Debug        bool           `mapstructure:"debug"`
	LogFile      string         `mapstructure:"logFile"`
	OutputDir    string         `mapstructure:"outputDir"`
	Format       string         `mapstructure:"format"`
	ReportLabel  string         `mapstructure:"reportLabel"`
	Title        string         `mapstructure:"title"`
	FooterText   string         `mapstructure:"footerText"`
	DateLayout   string         `mapstructure:"dateLayout"`
	SourceOrder  []string       `mapstructure:"sourceOrder"`
	BatchWorkers int            `mapstructure:"batchWorkers"`
	GlyphAdvance float64        `mapstructure:"glyphAdvance"`
	Layout       layout.Options `mapstructure:"layout"`
	ConfigPath   string         `mapstructure:"-"`
}

// Defaults returns the configuration used when no file, flag or environment
// variable says otherwise.
func Defaults() Config {
	return Config{
		LogFile:      defaultLogFile,
		OutputDir:    defaultOutputDir,
		Format:       defaultFormat,
		ReportLabel:  defaultReportLabel,
		Title:        defaultTitle,
		FooterText:   defaultFooterText,
		DateLayout:   defaultDateLayout,
		SourceOrder:  sourceNames(analysis.DefaultSourceOrder),
		BatchWorkers: defaultBatchWorkers,
		GlyphAdvance: layout.DefaultAdvance,
		Layout:       layout.DefaultOptions(),
	}
}

// SetDefaults registers the scalar defaults and environment overrides on v.
// Nested layout values are defaulted by Decode.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("debug", d.Debug)
	v.SetDefault("logFile", d.LogFile)
	v.SetDefault("outputDir", d.OutputDir)
	v.SetDefault("format", d.Format)
	v.SetDefault("reportLabel", d.ReportLabel)
	v.SetDefault("title", d.Title)
	v.SetDefault("footerText", d.FooterText)
	v.SetDefault("dateLayout", d.DateLayout)
	v.SetDefault("sourceOrder", d.SourceOrder)
	v.SetDefault("batchWorkers", d.BatchWorkers)
	v.SetDefault("glyphAdvance", d.GlyphAdvance)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Decode unmarshals the merged settings held by v on top of Defaults and
// validates the result.
func Decode(v *viper.Viper, path string) (Config, error) {
	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ConfigPath = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Load reads the configuration file at path. An empty path means
// DefaultConfigPath, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)

	used := path
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
			}
		}
		if explicit {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		used = ""
	}
	return Decode(v, used)
}

// Validate reports settings that cannot produce a report.
func (c Config) Validate() error {
	var errs []error
	if err := c.Layout.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("layout: %w", err))
	}
	for _, name := range c.SourceOrder {
		m, ok := analysis.ParseModel(name)
		if !ok || m == analysis.ModelAverage {
			errs = append(errs, fmt.Errorf("sourceOrder: unknown competitor source %q", name))
		}
	}
	if c.BatchWorkers < 0 {
		errs = append(errs, fmt.Errorf("batchWorkers must not be negative, got %d", c.BatchWorkers))
	}
	return errors.Join(errs...)
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// OutputPath returns the export directory.
func (c Config) OutputPath() string {
	if dir := strings.TrimSpace(c.OutputDir); dir != "" {
		return dir
	}
	return defaultOutputDir
}

// ExportFormat returns the configured export format name, lowercased.
func (c Config) ExportFormat() string {
	if f := strings.ToLower(strings.TrimSpace(c.Format)); f != "" {
		return f
	}
	return defaultFormat
}

// Label returns the suffix appended to exported file names.
func (c Config) Label() string {
	if l := strings.TrimSpace(c.ReportLabel); l != "" {
		return l
	}
	return defaultReportLabel
}

// DocumentTitle returns the heading printed at the top of the document.
func (c Config) DocumentTitle() string {
	if t := strings.TrimSpace(c.Title); t != "" {
		return t
	}
	return defaultTitle
}

// Footer returns the branding line drawn on the last page.
func (c Config) Footer() string {
	if f := strings.TrimSpace(c.FooterText); f != "" {
		return f
	}
	return defaultFooterText
}

// TimeLayout returns the time.Format layout used for the generated-at line.
func (c Config) TimeLayout() string {
	if l := strings.TrimSpace(c.DateLayout); l != "" {
		return l
	}
	return defaultDateLayout
}

// Workers returns the number of records the batch command composes at once.
func (c Config) Workers() int {
	if c.BatchWorkers <= 0 {
		return defaultBatchWorkers
	}
	return c.BatchWorkers
}

// LayoutOptions returns the page geometry.
func (c Config) LayoutOptions() layout.Options {
	return c.Layout
}

// Measurer returns the text measurer matching GlyphAdvance.
func (c Config) Measurer() layout.Measurer {
	return layout.RuneMeasurer{Advance: c.GlyphAdvance}
}

// Sources returns the competitor source order. Unknown names are skipped and
// an empty list yields analysis.DefaultSourceOrder.
func (c Config) Sources() []analysis.Model {
	var out []analysis.Model
	seen := make(map[analysis.Model]bool)
	for _, name := range c.SourceOrder {
		m, ok := analysis.ParseModel(name)
		if !ok || m == analysis.ModelAverage || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	if len(out) == 0 {
		return append([]analysis.Model(nil), analysis.DefaultSourceOrder...)
	}
	return out
}

func sourceNames(models []analysis.Model) []string {
	names := make([]string, 0, len(models))
	for _, m := range models {
		names = append(names, string(m))
	}
	return names
}
