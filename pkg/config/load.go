package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional TOML file and FIGMA_CODEGEN_*
// environment variables layered over the defaults. An empty path skips the
// file and loads defaults plus environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("FIGMA_CODEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	cfg.Pipeline = cfg.Pipeline.Sanitize()
	return cfg, nil
}

// setDefaults registers every configuration key with its default so viper can
// resolve partial files and bare environments.
func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("pipeline.max_depth", def.Pipeline.MaxDepth)
	v.SetDefault("pipeline.min_visible_size", def.Pipeline.MinVisibleSize)
	v.SetDefault("pipeline.low_yield_threshold", def.Pipeline.LowYieldThreshold)
	v.SetDefault("pipeline.fallback_min_area", def.Pipeline.FallbackMinArea)
	v.SetDefault("pipeline.fallback_font_family", def.Pipeline.FallbackFontFamily)
	v.SetDefault("pipeline.default_font_size", def.Pipeline.DefaultFontSize)
	v.SetDefault("pipeline.default_font_weight", def.Pipeline.DefaultFontWeight)

	v.SetDefault("server.addr", def.Server.Addr)
	v.SetDefault("server.read_timeout", def.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", def.Server.WriteTimeout)
	v.SetDefault("server.max_body_bytes", def.Server.MaxBodyBytes)

	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
}
