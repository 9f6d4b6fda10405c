// Package config defines configuration structures for the spprogress CLI.
//
// Configuration can be provided via:
//   - Command-line flags
//   - Environment variables (SPPROGRESS_ prefix)
//   - YAML configuration file
//
// # Structure
//
//	type Config struct {
//	    ChunkSize int64
//	    Bar       BarConfig
//	    HTTP      HTTPConfig
//	}
//
//	type BarConfig struct {
//	    Width int
//	    Fill  string
//	    Empty string
//	}
//
//	type HTTPConfig struct {
//	    Timeout       time.Duration
//	    HeaderTimeout time.Duration
//	    UserAgent     string
//	}
//
// # File Format
//
//	chunk_size: 64KiB
//	bar:
//	  width: 40
//	  fill: "#"
//	  empty: "."
//	http:
//	  timeout: 10m
//	  header_timeout: 15s
//	  user_agent: my-tool/1.0
package config
