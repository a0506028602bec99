// Package config holds the explicit configuration for the conversion pipeline
// and the HTTP service. Every threshold that shapes normalization is carried
// here and passed into the pipeline entry point, so tests can vary them without
// touching package-level state.
package config

import "time"

// Pipeline configures the normalization and style-resolution stages.
type Pipeline struct {
	// MaxDepth bounds tree traversal; branches below it are truncated with a
	// depth warning rather than failing the conversion.
	MaxDepth int `mapstructure:"max_depth"`

	// MinVisibleSize is the width/height a node without text or color must
	// exceed (strictly) to survive the primary visual-content filter.
	MinVisibleSize float64 `mapstructure:"min_visible_size"`

	// LowYieldThreshold triggers the aggressive fallback pass when the primary
	// pass produces fewer elements than this across the whole document.
	LowYieldThreshold int `mapstructure:"low_yield_threshold"`

	// FallbackMinArea is the minimum bounding-box area a node needs for the
	// aggressive pass to admit it.
	FallbackMinArea float64 `mapstructure:"fallback_min_area"`

	// Typography defaults applied when the source document omits the fields.
	FallbackFontFamily string  `mapstructure:"fallback_font_family"`
	DefaultFontSize    float64 `mapstructure:"default_font_size"`
	DefaultFontWeight  float64 `mapstructure:"default_font_weight"`
}

// Server configures the HTTP API.
type Server struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// MaxBodyBytes limits the size of posted design documents.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
}

// Config is the full application configuration.
type Config struct {
	Pipeline Pipeline `mapstructure:"pipeline"`
	Server   Server   `mapstructure:"server"`

	// Log settings for the service and CLI loggers.
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // json or console
}

// DefaultPipeline returns the pipeline defaults used when no configuration is
// supplied.
func DefaultPipeline() Pipeline {
	return Pipeline{
		MaxDepth:           10,
		MinVisibleSize:     10,
		LowYieldThreshold:  5,
		FallbackMinArea:    1,
		FallbackFontFamily: "Roboto",
		DefaultFontSize:    14,
		DefaultFontWeight:  400,
	}
}

// DefaultServer returns the HTTP service defaults.
func DefaultServer() Server {
	return Server{
		Addr:         ":8085",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		MaxBodyBytes: 50 << 20, // 50MB design documents
	}
}

// Default returns the full default configuration.
func Default() Config {
	return Config{
		Pipeline:  DefaultPipeline(),
		Server:    DefaultServer(),
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// Sanitize replaces zero or negative values with defaults so a partially
// populated Pipeline never disables the filters outright.
func (p Pipeline) Sanitize() Pipeline {
	def := DefaultPipeline()
	if p.MaxDepth <= 0 {
		p.MaxDepth = def.MaxDepth
	}
	if p.MinVisibleSize <= 0 {
		p.MinVisibleSize = def.MinVisibleSize
	}
	if p.LowYieldThreshold <= 0 {
		p.LowYieldThreshold = def.LowYieldThreshold
	}
	if p.FallbackMinArea <= 0 {
		p.FallbackMinArea = def.FallbackMinArea
	}
	if p.FallbackFontFamily == "" {
		p.FallbackFontFamily = def.FallbackFontFamily
	}
	if p.DefaultFontSize <= 0 {
		p.DefaultFontSize = def.DefaultFontSize
	}
	if p.DefaultFontWeight <= 0 {
		p.DefaultFontWeight = def.DefaultFontWeight
	}
	return p
}
