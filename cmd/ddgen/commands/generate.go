package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/ddgen/config"
	"github.com/teranos/ddgen/dsl"
	"github.com/teranos/ddgen/errors"
	"github.com/teranos/ddgen/logger"
	"github.com/teranos/ddgen/typegen"
	"github.com/teranos/ddgen/typegen/java"
	"github.com/teranos/ddgen/typegen/typescript"
)

var (
	generateTarget      string
	generateDestination string
	generateRoot        string
	generateQuiet       bool
	generatePackage     string
	generateWatch       bool
)

// GenerateCmd generates Java or TypeScript sources from a model file
var GenerateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate Java classes or TypeScript definitions from a model",
	Long: `Generate code from a domain model (.ddef, .yaml or .yml).

Targets:
  java  - one class, interface or enum per type, in directories mirroring the packages
  ts    - a single <basename>.ts module with interfaces and union types

Output goes to generated/ next to the model unless --destination is set.

Examples:
  ddgen generate shop.ddef                         # Java into ./generated
  ddgen generate shop.ddef -t ts -d web/src/model  # TypeScript module
  ddgen generate shop.ddef --package com.acme      # Java under com/acme
  ddgen generate shop.ddef -r models -w            # Link all models, regenerate on change`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateTarget, "target", "t", "", "Output target: java, ts (default: java)")
	GenerateCmd.Flags().StringVarP(&generateDestination, "destination", "d", "", "Output directory (default: generated/ next to the model)")
	GenerateCmd.Flags().StringVarP(&generateRoot, "root", "r", "", "Folder whose model files are linked together with the source")
	GenerateCmd.Flags().BoolVarP(&generateQuiet, "quiet", "q", false, "Suppress all output except the exit status")
	GenerateCmd.Flags().StringVar(&generatePackage, "package", "", "Root Java package, e.g. com.acme")
	GenerateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate whenever the model changes")
}

// generators maps target names to generator constructors
var generators = map[string]func() typegen.Generator{
	config.TargetJava:       func() typegen.Generator { return java.NewGenerator() },
	config.TargetTypeScript: func() typegen.Generator { return typescript.NewGenerator() },
}

// normalizeTarget accepts the long spelling of the TypeScript target
func normalizeTarget(target string) string {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "typescript" {
		return config.TargetTypeScript
	}
	return target
}

// generatorFor returns the generator for a target name
func generatorFor(target string) (typegen.Generator, error) {
	newGenerator, ok := generators[normalizeTarget(target)]
	if !ok {
		return nil, errors.NewInvalidTargetError("invalid target: %s", target)
	}
	return newGenerator(), nil
}

// generation is one resolved generate invocation: config with flags applied
type generation struct {
	source   string
	root     string
	quiet    bool
	debounce time.Duration
	gen      typegen.Generator
	opts     typegen.Options
}

// flagOverrides carries the flags shared by generate and check
type flagOverrides struct {
	target      string
	destination string
	root        string
	pkg         string
	quiet       bool
}

func resolveGeneration(source string, flags flagOverrides) (*generation, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if flags.target != "" {
		cfg.Generate.Target = flags.target
	}
	cfg.Generate.Target = normalizeTarget(cfg.Generate.Target)
	if flags.destination != "" {
		cfg.Generate.Destination = flags.destination
	}
	if flags.root != "" {
		cfg.Generate.Root = flags.root
	}
	if flags.pkg != "" {
		cfg.Java.RootPackage = flags.pkg
	}
	cfg.Generate.Quiet = cfg.Generate.Quiet || flags.quiet

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gen, err := generatorFor(cfg.Generate.Target)
	if err != nil {
		return nil, err
	}

	return &generation{
		source:   source,
		root:     cfg.Generate.Root,
		quiet:    cfg.Generate.Quiet,
		debounce: cfg.Debounce(),
		gen:      gen,
		opts: typegen.Options{
			Source:      source,
			Destination: cfg.Generate.Destination,
			RootPackage: cfg.Java.RootPackage,
		},
	}, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	g, err := resolveGeneration(args[0], flagOverrides{
		target:      generateTarget,
		destination: generateDestination,
		root:        generateRoot,
		pkg:         generatePackage,
		quiet:       generateQuiet,
	})
	if err != nil {
		return fail(cmd, generateQuiet, err)
	}

	if generateWatch {
		return fail(cmd, g.quiet, watch(cmd, g))
	}
	return fail(cmd, g.quiet, g.run(cmd.Context(), cmd))
}

// run loads the model and writes the generated files once
func (g *generation) run(ctx context.Context, cmd *cobra.Command) error {
	start := time.Now()

	doc, err := dsl.Load(g.source, g.root)
	if err != nil {
		return err
	}
	if !g.quiet {
		printDiagnostics(cmd.ErrOrStderr(), doc.Diagnostics)
	}

	result, err := typegen.Run(ctx, g.gen, doc.Definitions, g.opts)
	if err != nil {
		return err
	}

	logger.Infow("Generated",
		logger.FieldTarget, g.gen.Language(),
		logger.FieldSource, g.source,
		logger.FieldPath, result.Path,
		logger.FieldCount, len(result.Files),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	if g.quiet {
		return nil
	}
	out := cmd.OutOrStdout()
	if logger.ShouldOutput(Verbosity, logger.OutputArtifacts) {
		for _, file := range result.Files {
			fmt.Fprintf(out, "  wrote %s\n", file)
		}
	}
	if logger.ShouldOutput(Verbosity, logger.OutputTiming) {
		pterm.Info.WithWriter(out).Printfln("Finished in %dms", time.Since(start).Milliseconds())
	}
	pterm.Success.WithWriter(out).Printfln("%s generated successfully in: %s", result.Target, result.Path)
	return nil
}

// watch generates once, then regenerates on every change until interrupted.
// Failed runs are reported and watching continues.
func watch(cmd *cobra.Command, g *generation) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	regenerate := func(ctx context.Context) error {
		err := g.run(ctx, cmd)
		if err != nil && !g.quiet {
			PrintError(cmd.ErrOrStderr(), err)
		}
		return err
	}
	_ = regenerate(ctx)

	files, err := watchedFiles(g.source, g.root)
	if err != nil {
		return err
	}
	w, err := typegen.NewWatcher(files, g.debounce)
	if err != nil {
		return err
	}
	defer w.Close()

	if !g.quiet {
		pterm.Info.WithWriter(cmd.OutOrStdout()).Printfln("Watching %d model file(s), press Ctrl+C to stop", len(files))
	}
	return w.Run(ctx, regenerate)
}

// watchedFiles returns the source plus every model file below root
func watchedFiles(source, root string) ([]string, error) {
	files := []string{source}
	if root == "" {
		return files, nil
	}

	self, _ := filepath.Abs(source)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !dsl.IsModelFile(path) {
			return nil
		}
		if abs, _ := filepath.Abs(path); abs != self {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan %s", root)
	}
	return files, nil
}
