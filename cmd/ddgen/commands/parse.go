package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/ddgen/dsl"
	"github.com/teranos/ddgen/errors"
	"github.com/teranos/ddgen/model"
)

var (
	parseJSON bool
	parseYAML bool
	parseRoot string
)

// ParseCmd loads a model and reports its contents and diagnostics
var ParseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse and validate a model",
	Long: `Parse a model file, link its references and run the validations.

Prints a summary of the model and every diagnostic (unresolved references,
duplicate names, naming warnings). With --json or --yaml the linked model is
dumped instead of the summary.

Examples:
  ddgen parse shop.ddef                 # Summary and warnings
  ddgen parse shop.ddef --yaml          # Convert a .ddef model to YAML
  ddgen parse shop.yaml --json -r .     # JSON dump, linking sibling models`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	ParseCmd.Flags().BoolVar(&parseJSON, "json", false, "Dump the model as JSON")
	ParseCmd.Flags().BoolVar(&parseYAML, "yaml", false, "Dump the model as YAML")
	ParseCmd.Flags().StringVarP(&parseRoot, "root", "r", "", "Folder whose model files are linked together with the source")
	ParseCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

// modelSummary counts the declarations of a model
type modelSummary struct {
	Packages, Entities, DataTypes, Enums, Unresolved int
}

func summarize(defs *model.Definitions) modelSummary {
	var s modelSummary
	_ = model.Walk(defs, func(_ []string, el model.Element) error {
		switch t := el.(type) {
		case *model.Package:
			s.Packages++
		case *model.Entity:
			s.Entities++
			if t.SuperType != nil && !t.SuperType.Resolved() {
				s.Unresolved++
			}
			for _, f := range t.Features {
				if !f.Type.Resolved() {
					s.Unresolved++
				}
			}
		case *model.DataType:
			s.DataTypes++
			for _, m := range t.Members {
				if !m.Resolved() {
					s.Unresolved++
				}
			}
		case *model.Enum:
			s.Enums++
		}
		return nil
	})
	return s
}

func runParse(cmd *cobra.Command, args []string) error {
	doc, err := dsl.Load(args[0], parseRoot)
	if err != nil {
		return fail(cmd, false, err)
	}

	out := cmd.OutOrStdout()
	switch {
	case parseJSON, parseYAML:
		var data []byte
		if parseJSON {
			data, err = dsl.MarshalJSON(doc.Definitions)
		} else {
			data, err = dsl.MarshalYAML(doc.Definitions)
		}
		if err != nil {
			return fail(cmd, false, err)
		}
		fmt.Fprint(out, string(data))
	default:
		s := summarize(doc.Definitions)
		pterm.Success.WithWriter(out).Printfln("Parsed %s", doc.Path)
		fmt.Fprintf(out, "  packages:   %d\n", s.Packages)
		fmt.Fprintf(out, "  entities:   %d\n", s.Entities)
		fmt.Fprintf(out, "  datatypes:  %d\n", s.DataTypes)
		fmt.Fprintf(out, "  enums:      %d\n", s.Enums)
		fmt.Fprintf(out, "  unresolved: %d\n", s.Unresolved)
	}

	printDiagnostics(cmd.ErrOrStderr(), doc.Diagnostics)
	if n := len(doc.Diagnostics) - len(doc.Warnings()); n > 0 {
		return errors.Mark(errors.Newf("%d error(s) in %s", n, doc.Path), ErrReported)
	}
	return nil
}
