// Package config loads ddgen settings from ddgen.toml files and DDGEN_*
// environment variables. Command line flags are applied on top by the CLI.
package config

// FileName is the project configuration file searched for from the working
// directory upward
const FileName = "ddgen.toml"

// EnvPrefix prefixes environment overrides, e.g. DDGEN_GENERATE_TARGET
const EnvPrefix = "DDGEN"

// Config represents the ddgen configuration
type Config struct {
	Generate GenerateConfig `mapstructure:"generate" toml:"generate" json:"generate" yaml:"generate"`
	Java     JavaConfig     `mapstructure:"java" toml:"java" json:"java" yaml:"java"`
	Log      LogConfig      `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
	Watch    WatchConfig    `mapstructure:"watch" toml:"watch" json:"watch" yaml:"watch"`
}

// GenerateConfig holds the defaults for `ddgen generate`
type GenerateConfig struct {
	Target      string `mapstructure:"target" toml:"target" json:"target" yaml:"target"`                       // java or ts (default: java)
	Destination string `mapstructure:"destination" toml:"destination" json:"destination" yaml:"destination"` // empty = generated/ next to the source
	Root        string `mapstructure:"root" toml:"root" json:"root" yaml:"root"`                               // folder whose model files are linked together
	Quiet       bool   `mapstructure:"quiet" toml:"quiet" json:"quiet" yaml:"quiet"`
}

// JavaConfig configures the Java emitter
type JavaConfig struct {
	RootPackage string `mapstructure:"root_package" toml:"root_package" json:"root_package" yaml:"root_package"` // e.g. "com.acme"
}

// LogConfig configures the logger
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" json:"verbosity" yaml:"verbosity"` // 0 warn, 1 info, 2+ debug
}

// WatchConfig configures `generate --watch`
type WatchConfig struct {
	DebounceMs int `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" yaml:"debounce_ms"`
}

// Supported generation targets
const (
	TargetJava       = "java"
	TargetTypeScript = "ts"
)

// Targets lists the valid values of generate.target
var Targets = []string{TargetJava, TargetTypeScript}

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)
