package commands

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/ddgen/config"
	"github.com/teranos/ddgen/errors"
)

// ConfigCmd groups the configuration subcommands
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ddgen configuration",
	Long: `Display and create ddgen configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (DDGEN_* prefix, e.g. DDGEN_GENERATE_TARGET=ts)
3. Project config (nearest ddgen.toml above the working directory)
4. User config (~/.ddgen/ddgen.toml)
5. Default values

Examples:
  ddgen config init                 # Write ./ddgen.toml with defaults
  ddgen config show                 # Show the effective configuration
  ddgen config show --format json   # Same, as JSON`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Long:  "Write a ddgen.toml with default values (default path: ./ddgen.toml)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  "Display the configuration after merging all sources, and warn about unknown keys in the loaded files",
	RunE:  runConfigShow,
}

var (
	configFormat    string
	configInitForce bool
)

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing file (the old one is kept as .back1)")

	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.FileName
	if len(args) == 1 {
		path = args[0]
		if filepath.Ext(path) == "" {
			path = filepath.Join(path, config.FileName)
		}
	}

	if err := config.WriteDefault(path, configInitForce); err != nil {
		return fail(cmd, false, err)
	}
	pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln("Wrote %s", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fail(cmd, false, err)
	}

	out := cmd.OutOrStdout()
	switch configFormat {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fail(cmd, false, errors.Wrap(err, "failed to marshal config to JSON"))
		}
		fmt.Fprintln(out, string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fail(cmd, false, errors.Wrap(err, "failed to marshal config to YAML"))
		}
		fmt.Fprintf(out, "# ddgen configuration\n%s", string(data))

	case "toml":
		data, err := config.Marshal(cfg)
		if err != nil {
			return fail(cmd, false, err)
		}
		fmt.Fprintf(out, "# ddgen configuration\n%s", string(data))

	default:
		return fail(cmd, false, errors.Newf("unsupported format: %s (supported: toml, json, yaml)", configFormat))
	}

	stderr := cmd.ErrOrStderr()
	for _, file := range config.Files() {
		unknown, err := config.CheckUnknownKeys(file)
		if err != nil {
			pterm.Warning.WithWriter(stderr).Println(err.Error())
			continue
		}
		for _, key := range unknown {
			pterm.Warning.WithWriter(stderr).Printfln("%s: unknown key %q", file, key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return fail(cmd, false, errors.Wrap(err, "configuration validation failed"))
	}
	return nil
}
