package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	sphttp "github.com/ligustah/spprogress/internal/http"
	"github.com/ligustah/spprogress/internal/progress"
	"github.com/ligustah/spprogress/internal/transfer"
)

// Config defines configuration for the spprogress CLI.
type Config struct {
	ChunkSize int64      `yaml:"chunk_size"`
	Bar       BarConfig  `yaml:"bar"`
	HTTP      HTTPConfig `yaml:"http"`
}

// BarConfig defines the look of the progress bar.
type BarConfig struct {
	Width int    `yaml:"width"`
	Fill  string `yaml:"fill"`
	Empty string `yaml:"empty"`
}

// HTTPConfig defines HTTP client behavior for downloads.
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	HeaderTimeout time.Duration `yaml:"header_timeout"`
	UserAgent     string        `yaml:"user_agent"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		ChunkSize: transfer.DefaultChunkSize,
		Bar: BarConfig{
			Width: progress.DefaultWidth,
			Fill:  string(progress.DefaultFill),
			Empty: string(progress.DefaultEmpty),
		},
		HTTP: HTTPConfig{
			HeaderTimeout: 30 * time.Second,
			UserAgent:     "spprogress",
		},
	}
}

// yamlConfig is used for YAML unmarshaling with string sizes and durations.
type yamlConfig struct {
	ChunkSize string         `yaml:"chunk_size"`
	Bar       BarConfig      `yaml:"bar"`
	HTTP      yamlHTTPConfig `yaml:"http"`
}

type yamlHTTPConfig struct {
	Timeout       string `yaml:"timeout"`
	HeaderTimeout string `yaml:"header_timeout"`
	UserAgent     string `yaml:"user_agent"`
}

// LoadFromFile loads configuration from a YAML file. Keys that are absent
// keep their default values.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()

	if yc.ChunkSize != "" {
		size, err := progress.ParseBytes(yc.ChunkSize)
		if err != nil {
			return Config{}, fmt.Errorf("parse chunk_size: %w", err)
		}
		cfg.ChunkSize = size
	}
	if yc.Bar.Width != 0 {
		cfg.Bar.Width = yc.Bar.Width
	}
	if yc.Bar.Fill != "" {
		cfg.Bar.Fill = yc.Bar.Fill
	}
	if yc.Bar.Empty != "" {
		cfg.Bar.Empty = yc.Bar.Empty
	}
	if yc.HTTP.Timeout != "" {
		d, err := time.ParseDuration(yc.HTTP.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse http.timeout: %w", err)
		}
		cfg.HTTP.Timeout = d
	}
	if yc.HTTP.HeaderTimeout != "" {
		d, err := time.ParseDuration(yc.HTTP.HeaderTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse http.header_timeout: %w", err)
		}
		cfg.HTTP.HeaderTimeout = d
	}
	if yc.HTTP.UserAgent != "" {
		cfg.HTTP.UserAgent = yc.HTTP.UserAgent
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the SPPROGRESS_ prefix.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("SPPROGRESS_CHUNK_SIZE"); v != "" {
		size, err := progress.ParseBytes(v)
		if err != nil {
			return fmt.Errorf("parse SPPROGRESS_CHUNK_SIZE: %w", err)
		}
		c.ChunkSize = size
	}
	if v := os.Getenv("SPPROGRESS_BAR_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse SPPROGRESS_BAR_WIDTH: %w", err)
		}
		c.Bar.Width = n
	}
	if v := os.Getenv("SPPROGRESS_BAR_FILL"); v != "" {
		c.Bar.Fill = v
	}
	if v := os.Getenv("SPPROGRESS_BAR_EMPTY"); v != "" {
		c.Bar.Empty = v
	}
	if v := os.Getenv("SPPROGRESS_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse SPPROGRESS_HTTP_TIMEOUT: %w", err)
		}
		c.HTTP.Timeout = d
	}
	if v := os.Getenv("SPPROGRESS_HTTP_HEADER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse SPPROGRESS_HTTP_HEADER_TIMEOUT: %w", err)
		}
		c.HTTP.HeaderTimeout = d
	}
	if v := os.Getenv("SPPROGRESS_HTTP_USER_AGENT"); v != "" {
		c.HTTP.UserAgent = v
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return errors.New("config: chunk_size must be positive")
	}
	if c.ChunkSize > 1<<30 {
		return errors.New("config: chunk_size must not exceed 1GiB")
	}
	if c.Bar.Width <= 0 {
		return errors.New("config: bar.width must be positive")
	}
	if utf8.RuneCountInString(c.Bar.Fill) != 1 {
		return fmt.Errorf("config: bar.fill must be a single character, got %q", c.Bar.Fill)
	}
	if utf8.RuneCountInString(c.Bar.Empty) != 1 {
		return fmt.Errorf("config: bar.empty must be a single character, got %q", c.Bar.Empty)
	}
	if c.HTTP.Timeout < 0 || c.HTTP.HeaderTimeout < 0 {
		return errors.New("config: http timeouts must not be negative")
	}
	return nil
}

// Merge merges override values into c, returning a new Config.
// Zero values in override are ignored.
func (c Config) Merge(override Config) Config {
	if override.ChunkSize != 0 {
		c.ChunkSize = override.ChunkSize
	}
	if override.Bar.Width != 0 {
		c.Bar.Width = override.Bar.Width
	}
	if override.Bar.Fill != "" {
		c.Bar.Fill = override.Bar.Fill
	}
	if override.Bar.Empty != "" {
		c.Bar.Empty = override.Bar.Empty
	}
	if override.HTTP.Timeout != 0 {
		c.HTTP.Timeout = override.HTTP.Timeout
	}
	if override.HTTP.HeaderTimeout != 0 {
		c.HTTP.HeaderTimeout = override.HTTP.HeaderTimeout
	}
	if override.HTTP.UserAgent != "" {
		c.HTTP.UserAgent = override.HTTP.UserAgent
	}
	return c
}

// TransferOptions converts c into options for a transfer. The prefix is
// left empty so each transfer uses its own label. Call Validate first.
func (c Config) TransferOptions() transfer.Options {
	fill, _ := utf8.DecodeRuneInString(c.Bar.Fill)
	empty, _ := utf8.DecodeRuneInString(c.Bar.Empty)

	return transfer.Options{
		ChunkSize: int(c.ChunkSize),
		Bar: progress.Options{
			Width: c.Bar.Width,
			Fill:  fill,
			Empty: empty,
		},
	}
}

// HTTPOptions converts c into HTTP client options.
func (c Config) HTTPOptions() sphttp.Options {
	opts := sphttp.DefaultOptions()
	opts.Timeout = c.HTTP.Timeout
	opts.ResponseHeaderTimeout = c.HTTP.HeaderTimeout
	opts.UserAgent = c.HTTP.UserAgent
	return opts
}
