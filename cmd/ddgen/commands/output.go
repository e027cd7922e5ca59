package commands

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/ddgen/config"
	"github.com/teranos/ddgen/dsl"
	"github.com/teranos/ddgen/errors"
	"github.com/teranos/ddgen/logger"
)

// Verbosity is the -v count, set by the root command before any command runs
var Verbosity int

// ErrReported marks errors a command has already printed
var ErrReported = errors.New("error already reported")

// Exit codes
const (
	ExitOK         = 0
	ExitOutOfDate  = 1
	ExitError      = 2
	ExitInvalidArg = 3
)

// ExitCode maps a command error to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errors.ErrOutOfDate):
		return ExitOutOfDate
	case errors.IsInvalidTargetError(err):
		return ExitInvalidArg
	default:
		return ExitError
	}
}

// PrintError writes err to w in red, followed by any hints.
// Parse errors are shown with their location and suggestions.
func PrintError(w io.Writer, err error) {
	var perr *dsl.ParseError
	if errors.As(err, &perr) {
		fmt.Fprintln(w, perr.FormatTerminal())
		return
	}
	pterm.Error.WithWriter(w).Println(err.Error())
	for _, hint := range errors.GetAllHints(err) {
		pterm.Info.WithWriter(w).Println(hint)
	}
}

// fail prints err unless quiet and marks it as reported
func fail(cmd *cobra.Command, quiet bool, err error) error {
	if err == nil {
		return nil
	}
	if !quiet {
		PrintError(cmd.ErrOrStderr(), err)
	}
	return errors.Mark(err, ErrReported)
}

func printDiagnostics(w io.Writer, diagnostics []*dsl.ParseError) {
	if !logger.ShouldOutput(Verbosity, logger.OutputDiagnostics) {
		return
	}
	for _, diag := range diagnostics {
		fmt.Fprintln(w, diag.FormatTerminal())
	}
}

// loadConfig returns a copy of the merged configuration shared by all commands
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	merged := *cfg
	return &merged, nil
}
