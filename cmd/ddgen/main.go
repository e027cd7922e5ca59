package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/ddgen/cmd/ddgen/commands"
	"github.com/teranos/ddgen/config"
	"github.com/teranos/ddgen/errors"
	"github.com/teranos/ddgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ddgen",
	Short: "ddgen - domain model code generator",
	Long: `ddgen - generate Java classes and TypeScript definitions from a domain model.

A model declares packages, entities with features, datatypes (unions of other
types) and enums, either in the textual .ddef language or in YAML.

Available commands:
  generate - Generate Java or TypeScript sources
  check    - Check that generated sources are up to date
  parse    - Parse and validate a model
  config   - Manage ddgen configuration
  version  - Show version information

Examples:
  ddgen generate shop.ddef           # Java classes into ./generated
  ddgen generate shop.ddef -t ts     # TypeScript definitions
  ddgen check shop.ddef              # Fail if ./generated is stale
  ddgen parse shop.ddef              # Show warnings`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")

		// A broken config file is reported by the command itself, so that
		// `config init --force` can still replace it
		if cfg, err := config.Load(); err == nil {
			verbosity = max(verbosity, cfg.Log.Verbosity)
			jsonLogs = jsonLogs || cfg.Log.JSON
		}

		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		logger.Logger = logger.Logger.With(logger.FieldRunID, uuid.NewString())
		logger.Debugw("Starting", "command", cmd.CommandPath(), "verbosity", logger.LevelName(verbosity))

		commands.Verbosity = verbosity
		if logger.ShouldOutput(verbosity, logger.OutputConfig) {
			for _, file := range config.Files() {
				pterm.Info.WithWriter(cmd.ErrOrStderr()).Printfln("Using config %s", file)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.ParseCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		if !errors.Is(err, commands.ErrReported) {
			commands.PrintError(os.Stderr, err)
		}
		os.Exit(commands.ExitCode(err))
	}
}
