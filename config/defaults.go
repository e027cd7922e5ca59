package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default values
const (
	DefaultTarget     = TargetJava
	DefaultDebounceMs = 300
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("generate.target", DefaultTarget)
	v.SetDefault("generate.destination", "")
	v.SetDefault("generate.root", "")
	v.SetDefault("generate.quiet", false)

	v.SetDefault("java.root_package", "")

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)

	v.SetDefault("watch.debounce_ms", DefaultDebounceMs)
}

// Default returns the configuration produced by SetDefaults alone
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{Target: DefaultTarget},
		Watch:    WatchConfig{DebounceMs: DefaultDebounceMs},
	}
}

// Debounce returns the watch debounce interval
func (c *Config) Debounce() time.Duration {
	if c.Watch.DebounceMs <= 0 {
		return DefaultDebounceMs * time.Millisecond
	}
	return time.Duration(c.Watch.DebounceMs) * time.Millisecond
}
