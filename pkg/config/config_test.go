package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsCoherent(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.RecordFile = "record.json"
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults fail validation: %v", err)
	}
}

func TestLoadMissingPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Converter != "native" || cfg.Concurrency != 4 {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "engine.yaml")
	src := `
converter: chrome
chrome_path: /usr/bin/chromium
nats_url: nats://broker:4222
redis_addr: cache:6379
session_ttl: 1h
concurrency: 8
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Converter != "chrome" || cfg.ChromePath != "/usr/bin/chromium" {
		t.Errorf("converter settings = %q/%q", cfg.Converter, cfg.ChromePath)
	}
	if cfg.NATSURL != "nats://broker:4222" {
		t.Errorf("nats url = %q", cfg.NATSURL)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("session ttl = %v", cfg.SessionTTL)
	}
	// Untouched keys keep their defaults.
	if cfg.StatusSubject != "reports.status" {
		t.Errorf("status subject = %q", cfg.StatusSubject)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("converter: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed YAML accepted")
	}
}

func TestParseFlagsRequiresInput(t *testing.T) {
	t.Parallel()

	if _, err := ParseFlags(nil); err == nil {
		t.Fatal("no input flag accepted")
	}
}

func TestParseFlagsRecordAndBatchExclusive(t *testing.T) {
	t.Parallel()

	_, err := ParseFlags([]string{"-record", "a.json", "-batch", "b.jsonl"})
	if err == nil || !strings.Contains(err.Error(), "mutually exclusive") {
		t.Fatalf("err = %v", err)
	}
}

func TestParseFlagsOverridesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte("concurrency: 8\nconverter: chrome\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-config", path, "-record", "r.json", "-concurrency", "2"})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	// The explicit flag wins over the file; file keys without a flag stick.
	if cfg.Concurrency != 2 {
		t.Errorf("concurrency = %d, want flag value 2", cfg.Concurrency)
	}
	if cfg.Converter != "chrome" {
		t.Errorf("converter = %q, want file value", cfg.Converter)
	}
}

func TestParseFlagsAliases(t *testing.T) {
	t.Parallel()

	cfg, err := ParseFlags([]string{"-r", "rec.json", "-c", "7", "-v"})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.RecordFile != "rec.json" || cfg.Concurrency != 7 || !cfg.Verbose {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestValidateRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no input", func(c *Config) {}},
		{"bad converter", func(c *Config) { c.RecordFile = "r"; c.Converter = "wkhtmltopdf" }},
		{"zero concurrency", func(c *Config) { c.RecordFile = "r"; c.Concurrency = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}
