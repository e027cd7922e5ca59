package typegen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/teranos/ddgen/errors"
	"github.com/teranos/ddgen/logger"
	"github.com/teranos/ddgen/model"
)

// DefaultOutputDir is the directory created next to the source file when no
// destination is given.
const DefaultOutputDir = "generated"

// OutputName derives the output base name from a source path: the file name
// without its extension ("models/my-model.ddef" -> "my-model").
func OutputName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DefaultDestination returns the generated/ directory next to source.
func DefaultDestination(source string) string {
	return filepath.Join(filepath.Dir(source), DefaultOutputDir)
}

// ResolvedDestination returns opts.Destination or the default for opts.Source.
func (o Options) ResolvedDestination() string {
	if o.Destination != "" {
		return o.Destination
	}
	return DefaultDestination(o.Source)
}

// Run analyzes the model, renders it with gen and writes the artifacts.
// The context is checked between file writes; a cancelled run leaves the
// files written so far in place.
func Run(ctx context.Context, gen Generator, defs *model.Definitions, opts Options) (*Result, error) {
	start := time.Now()
	log := logger.Named("typegen")

	if opts.Source == "" {
		opts.Source = defs.Source
	}
	dest := opts.ResolvedDestination()

	analysis := Analyze(defs)
	artifacts, err := gen.Generate(defs, analysis, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to generate %s", gen.Label())
	}

	if err := WriteArtifacts(ctx, dest, artifacts); err != nil {
		return nil, err
	}

	result := &Result{
		Target: gen.Label(),
		Path:   filepath.Join(dest, filepath.FromSlash(gen.Root(opts))),
	}
	for _, a := range artifacts {
		if !a.Dir {
			result.Files = append(result.Files, a.Path)
		}
	}

	log.Debugw("Generation complete",
		logger.FieldTarget, gen.Language(),
		logger.FieldPath, result.Path,
		logger.FieldCount, len(result.Files),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return result, nil
}

// WriteArtifacts creates directories and writes files under dest in order.
// The first failure aborts the remaining writes and is returned.
func WriteArtifacts(ctx context.Context, dest string, artifacts []Artifact) error {
	log := logger.Named("typegen")

	if err := os.MkdirAll(dest, 0755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", dest)
	}

	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "generation cancelled")
		}

		path := filepath.Join(dest, filepath.FromSlash(a.Path))
		if a.Dir {
			if err := os.MkdirAll(path, 0755); err != nil {
				return errors.Wrapf(err, "failed to create directory %s", path)
			}
			continue
		}

		if err := os.WriteFile(path, []byte(a.Content), 0644); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
		log.Debugw("Wrote artifact", logger.FieldArtifact, a.Path, logger.FieldPath, path, "bytes", len(a.Content))
	}
	return nil
}
