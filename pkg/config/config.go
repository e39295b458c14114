// Package config holds the engine's process configuration: a YAML file for
// service settings with CLI flags layered on top.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full engine configuration.
type Config struct {
	// TemplatePath locates the report template asset.
	TemplatePath string `yaml:"template_path"`
	// TitleImage is the optional title-page backdrop.
	TitleImage string `yaml:"title_image"`
	// Workdir is the transient staging directory for artifacts.
	Workdir string `yaml:"workdir"`

	// Converter selects the print conversion backend: "native" (fpdf) or
	// "chrome" (headless browser).
	Converter  string `yaml:"converter"`
	ChromePath string `yaml:"chrome_path"`

	// NATSURL reaches the blob store and status subjects.
	NATSURL       string `yaml:"nats_url"`
	StatusSubject string `yaml:"status_subject"`

	// RedisAddr reaches the session status store. Empty disables it.
	RedisAddr  string        `yaml:"redis_addr"`
	SessionTTL time.Duration `yaml:"session_ttl"`

	// MetricsAddr serves /metrics when non-empty.
	MetricsAddr string `yaml:"metrics_addr"`

	// Batch settings.
	Concurrency int `yaml:"concurrency"`

	// Input settings (flags only).
	RecordFile string `yaml:"-"`
	BatchFile  string `yaml:"-"`
	Verbose    bool   `yaml:"-"`
	NoColor    bool   `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TemplatePath:  "templates/report.html.tmpl",
		Converter:     "native",
		NATSURL:       "nats://127.0.0.1:4222",
		StatusSubject: "reports.status",
		SessionTTL:    24 * time.Hour,
		Concurrency:   4,
	}
}

// Load reads a YAML config file over the defaults. A missing path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ParseFlags parses the command line, layering flags over the config file
// named by -config (if any).
func ParseFlags(args []string) (*Config, error) {
	fs := flag.NewFlagSet("report-engine", flag.ContinueOnError)

	configPath := fs.String("config", "", "YAML config file")

	// Defer file loading until we know the -config value, then re-apply
	// explicit flags on top.
	tmp := Default()
	fs.StringVar(&tmp.RecordFile, "record", "", "Risk-assessment record JSON file")
	fs.StringVar(&tmp.RecordFile, "r", "", "Record file (alias)")
	fs.StringVar(&tmp.BatchFile, "batch", "", "JSONL file of records for batch generation")
	fs.StringVar(&tmp.TemplatePath, "template", tmp.TemplatePath, "Report template asset")
	fs.StringVar(&tmp.TitleImage, "title-image", "", "Title backdrop image")
	fs.StringVar(&tmp.Workdir, "workdir", "", "Transient artifact directory")
	fs.StringVar(&tmp.Converter, "converter", tmp.Converter, "Print converter: native, chrome")
	fs.StringVar(&tmp.ChromePath, "chrome", "", "Chrome binary path (converter=chrome)")
	fs.StringVar(&tmp.NATSURL, "nats", tmp.NATSURL, "NATS server URL")
	fs.StringVar(&tmp.StatusSubject, "status-subject", tmp.StatusSubject, "Status event subject prefix")
	fs.StringVar(&tmp.RedisAddr, "redis", "", "Redis address for session status (empty = off)")
	fs.StringVar(&tmp.MetricsAddr, "metrics", "", "Prometheus listen address (empty = off)")
	fs.IntVar(&tmp.Concurrency, "concurrency", tmp.Concurrency, "Batch workers")
	fs.IntVar(&tmp.Concurrency, "c", tmp.Concurrency, "Batch workers (alias)")
	fs.BoolVar(&tmp.Verbose, "verbose", false, "Verbose logging")
	fs.BoolVar(&tmp.Verbose, "v", false, "Verbose (alias)")
	fs.BoolVar(&tmp.NoColor, "no-color", false, "Disable colored output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := Load(*configPath)
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	applyFlag := func(name string, apply func()) {
		if set[name] {
			apply()
		}
	}
	applyFlag("template", func() { cfg.TemplatePath = tmp.TemplatePath })
	applyFlag("title-image", func() { cfg.TitleImage = tmp.TitleImage })
	applyFlag("workdir", func() { cfg.Workdir = tmp.Workdir })
	applyFlag("converter", func() { cfg.Converter = tmp.Converter })
	applyFlag("chrome", func() { cfg.ChromePath = tmp.ChromePath })
	applyFlag("nats", func() { cfg.NATSURL = tmp.NATSURL })
	applyFlag("status-subject", func() { cfg.StatusSubject = tmp.StatusSubject })
	applyFlag("redis", func() { cfg.RedisAddr = tmp.RedisAddr })
	applyFlag("metrics", func() { cfg.MetricsAddr = tmp.MetricsAddr })
	applyFlag("concurrency", func() { cfg.Concurrency = tmp.Concurrency })
	applyFlag("c", func() { cfg.Concurrency = tmp.Concurrency })

	cfg.RecordFile = tmp.RecordFile
	cfg.BatchFile = tmp.BatchFile
	cfg.Verbose = tmp.Verbose
	cfg.NoColor = tmp.NoColor

	return cfg, cfg.Validate()
}

// Validate rejects incoherent settings before any collaborator is built.
func (c *Config) Validate() error {
	if c.RecordFile == "" && c.BatchFile == "" {
		return fmt.Errorf("input required: use -record or -batch")
	}
	if c.RecordFile != "" && c.BatchFile != "" {
		return fmt.Errorf("-record and -batch are mutually exclusive")
	}
	switch c.Converter {
	case "native", "chrome":
	default:
		return fmt.Errorf("unknown converter %q: use native or chrome", c.Converter)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive")
	}
	return nil
}
