package commands

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/ddgen/errors"
	"github.com/teranos/ddgen/typegen"
)

var (
	checkAgainst string
	checkTarget  string
	checkRoot    string
	checkPackage string
	checkQuiet   bool
)

// CheckCmd checks that committed generated code matches the model
var CheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check if generated code is up to date",
	Long: `Check if generated code matches the current model.

The model is generated into a temporary directory and every generated file
is compared with the file at the same path under --against (default: the
generate destination). Files that only exist under --against are ignored.

Exit codes:
  0 - Generated code is up to date
  1 - Generated code is out of date (differing files listed)
  2 - Error during check

Examples:
  ddgen check shop.ddef                            # Compare with ./generated
  ddgen check shop.ddef -t ts --against web/model  # Compare the TypeScript module`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringVar(&checkAgainst, "against", "", "Directory holding the committed output (default: generate destination)")
	CheckCmd.Flags().StringVarP(&checkTarget, "target", "t", "", "Output target: java, ts (default: java)")
	CheckCmd.Flags().StringVarP(&checkRoot, "root", "r", "", "Folder whose model files are linked together with the source")
	CheckCmd.Flags().StringVar(&checkPackage, "package", "", "Root Java package, e.g. com.acme")
	CheckCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Only report through the exit status")
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, err := resolveGeneration(args[0], flagOverrides{
		target: checkTarget,
		root:   checkRoot,
		pkg:    checkPackage,
		quiet:  checkQuiet,
	})
	if err != nil {
		return fail(cmd, checkQuiet, err)
	}
	return fail(cmd, g.quiet, check(cmd, g))
}

func check(cmd *cobra.Command, g *generation) error {
	existing := checkAgainst
	if existing == "" {
		existing = g.opts.ResolvedDestination()
	}

	tempDir, err := os.MkdirTemp("", "ddgen-check-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	fresh := *g
	fresh.quiet = true
	fresh.opts.Destination = tempDir
	if err := fresh.run(cmd.Context(), cmd); err != nil {
		return err
	}

	result, err := typegen.CompareDirectories(tempDir, existing)
	if err != nil {
		return errors.Wrap(err, "failed to compare directories")
	}

	out := cmd.OutOrStdout()
	if result.UpToDate {
		if !g.quiet {
			pterm.Success.WithWriter(out).Printfln("%s in %s are up to date", g.gen.Label(), existing)
		}
		return nil
	}

	if !g.quiet {
		pterm.Warning.WithWriter(out).Printfln("%s in %s are out of date:", g.gen.Label(), existing)
		for _, file := range result.Differences {
			fmt.Fprintf(out, "  - %s\n", file)
		}
	}
	return errors.WithHintf(
		errors.Mark(errors.Newf("%d generated file(s) differ from %s", len(result.Differences), existing), errors.ErrOutOfDate),
		"run 'ddgen generate %s' to update", g.source)
}
