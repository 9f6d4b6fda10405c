package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.ChunkSize != 8192 {
		t.Errorf("expected default chunk size 8192, got %d", cfg.ChunkSize)
	}
	if cfg.Bar.Width != 50 {
		t.Errorf("expected default bar width 50, got %d", cfg.Bar.Width)
	}
	if cfg.Bar.Fill != "█" {
		t.Errorf("expected default fill '█', got %q", cfg.Bar.Fill)
	}
	if cfg.Bar.Empty != "-" {
		t.Errorf("expected default empty '-', got %q", cfg.Bar.Empty)
	}
	if cfg.HTTP.Timeout != 0 {
		t.Errorf("expected no default http timeout, got %v", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.HeaderTimeout != 30*time.Second {
		t.Errorf("expected default header timeout 30s, got %v", cfg.HTTP.HeaderTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must be valid: %v", err)
	}
}

func TestLoadFromYAML(t *testing.T) {
	yamlContent := `
chunk_size: 64KiB
bar:
  width: 40
  fill: "#"
  empty: "."
http:
  timeout: 10m
  header_timeout: 15s
  user_agent: test-agent/1.0
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.ChunkSize != 64*1024 {
		t.Errorf("expected chunk size 64KiB, got %d", cfg.ChunkSize)
	}
	if cfg.Bar.Width != 40 {
		t.Errorf("expected bar width 40, got %d", cfg.Bar.Width)
	}
	if cfg.Bar.Fill != "#" || cfg.Bar.Empty != "." {
		t.Errorf("expected glyphs '#' and '.', got %q and %q", cfg.Bar.Fill, cfg.Bar.Empty)
	}
	if cfg.HTTP.Timeout != 10*time.Minute {
		t.Errorf("expected http timeout 10m, got %v", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.HeaderTimeout != 15*time.Second {
		t.Errorf("expected header timeout 15s, got %v", cfg.HTTP.HeaderTimeout)
	}
	if cfg.HTTP.UserAgent != "test-agent/1.0" {
		t.Errorf("expected user agent 'test-agent/1.0', got %q", cfg.HTTP.UserAgent)
	}
}

func TestLoadFromYAMLPartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("bar:\n  width: 20\n"), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.Bar.Width != 20 {
		t.Errorf("expected bar width 20, got %d", cfg.Bar.Width)
	}
	if cfg.ChunkSize != Default().ChunkSize {
		t.Errorf("expected default chunk size, got %d", cfg.ChunkSize)
	}
	if cfg.Bar.Fill != "█" {
		t.Errorf("expected default fill, got %q", cfg.Bar.Fill)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SPPROGRESS_CHUNK_SIZE", "1MB")
	t.Setenv("SPPROGRESS_BAR_WIDTH", "30")
	t.Setenv("SPPROGRESS_BAR_FILL", "=")
	t.Setenv("SPPROGRESS_BAR_EMPTY", " ")
	t.Setenv("SPPROGRESS_HTTP_TIMEOUT", "1h")
	t.Setenv("SPPROGRESS_HTTP_HEADER_TIMEOUT", "500ms")
	t.Setenv("SPPROGRESS_HTTP_USER_AGENT", "env-agent")

	cfg := Default()
	if err := cfg.LoadFromEnv(); err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}

	if cfg.ChunkSize != 1000*1000 {
		t.Errorf("expected chunk size 1MB, got %d", cfg.ChunkSize)
	}
	if cfg.Bar.Width != 30 {
		t.Errorf("expected bar width 30, got %d", cfg.Bar.Width)
	}
	if cfg.Bar.Fill != "=" || cfg.Bar.Empty != " " {
		t.Errorf("expected glyphs '=' and ' ', got %q and %q", cfg.Bar.Fill, cfg.Bar.Empty)
	}
	if cfg.HTTP.Timeout != time.Hour {
		t.Errorf("expected http timeout 1h, got %v", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.HeaderTimeout != 500*time.Millisecond {
		t.Errorf("expected header timeout 500ms, got %v", cfg.HTTP.HeaderTimeout)
	}
	if cfg.HTTP.UserAgent != "env-agent" {
		t.Errorf("expected user agent 'env-agent', got %q", cfg.HTTP.UserAgent)
	}
}

func TestLoadFromEnvInvalid(t *testing.T) {
	t.Setenv("SPPROGRESS_BAR_WIDTH", "wide")

	cfg := Default()
	if err := cfg.LoadFromEnv(); err == nil {
		t.Error("expected error for non-numeric width")
	}
}

func TestValidate(t *testing.T) {
	valid := Default()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }, true},
		{"huge chunk size", func(c *Config) { c.ChunkSize = 2 << 30 }, true},
		{"zero width", func(c *Config) { c.Bar.Width = 0 }, true},
		{"empty fill", func(c *Config) { c.Bar.Fill = "" }, true},
		{"multi-rune fill", func(c *Config) { c.Bar.Fill = "##" }, true},
		{"multi-byte fill", func(c *Config) { c.Bar.Fill = "▓" }, false},
		{"multi-rune empty", func(c *Config) { c.Bar.Empty = "--" }, true},
		{"negative timeout", func(c *Config) { c.HTTP.Timeout = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := Default()
	base.HTTP.UserAgent = "base-agent"

	override := Config{
		Bar: BarConfig{Width: 10}, // Override width
		// Leave other fields at zero values
	}

	merged := base.Merge(override)

	// Should keep base values for non-overridden fields
	if merged.ChunkSize != 8192 {
		t.Errorf("expected ChunkSize preserved, got %d", merged.ChunkSize)
	}
	if merged.Bar.Fill != "█" {
		t.Errorf("expected Fill preserved, got %q", merged.Bar.Fill)
	}
	if merged.HTTP.UserAgent != "base-agent" {
		t.Errorf("expected UserAgent preserved, got %q", merged.HTTP.UserAgent)
	}

	// Should use override values
	if merged.Bar.Width != 10 {
		t.Errorf("expected Width overridden to 10, got %d", merged.Bar.Width)
	}
}

func TestTransferOptions(t *testing.T) {
	cfg := Default()
	cfg.ChunkSize = 4096
	cfg.Bar.Fill = "▓"

	opts := cfg.TransferOptions()
	if opts.ChunkSize != 4096 {
		t.Errorf("expected chunk size 4096, got %d", opts.ChunkSize)
	}
	if opts.Bar.Fill != '▓' {
		t.Errorf("expected fill '▓', got %q", opts.Bar.Fill)
	}
	if opts.Bar.Empty != '-' {
		t.Errorf("expected empty '-', got %q", opts.Bar.Empty)
	}
	if opts.Bar.Width != 50 {
		t.Errorf("expected width 50, got %d", opts.Bar.Width)
	}
	if opts.Bar.Prefix != "" {
		t.Errorf("expected empty prefix, got %q", opts.Bar.Prefix)
	}
}

func TestHTTPOptions(t *testing.T) {
	cfg := Default()
	cfg.HTTP.Timeout = time.Minute

	opts := cfg.HTTPOptions()
	if opts.Timeout != time.Minute {
		t.Errorf("expected timeout 1m, got %v", opts.Timeout)
	}
	if opts.ResponseHeaderTimeout != 30*time.Second {
		t.Errorf("expected header timeout 30s, got %v", opts.ResponseHeaderTimeout)
	}
	if opts.UserAgent != "spprogress" {
		t.Errorf("expected user agent 'spprogress', got %q", opts.UserAgent)
	}
}

func TestLoadYAMLFileNotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadYAMLInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("invalid: [yaml: content"), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	_, err := LoadFromFile(configPath)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadYAMLInvalidChunkSize(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("chunk_size: lots\n"), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	if _, err := LoadFromFile(configPath); err == nil {
		t.Error("expected error for invalid chunk_size")
	}
}
