// Package typegen turns a linked domain model into source code for a target language.
//
// # Architecture
//
// Generation is split into three steps:
//  1. Analyze walks the model once and derives the type relationships that
//     generators need (which unions a type belongs to, which union members are
//     primitive aliases).
//  2. A language Generator (java/, typescript/) turns model plus Analysis into
//     an ordered list of Artifacts. This step is pure: no file system access.
//  3. WriteArtifacts materialises the artifacts under a destination directory.
//
// Run wires the three steps together for the CLI.
//
// # Design Decisions
//
//   - Generators never validate the model. Unresolved references degrade to the
//     name as written and never fail a run.
//   - Output is deterministic: artifacts follow model declaration order, so the
//     check command can compare a fresh generation against committed files.
//   - Generators do not interact; each run invokes exactly one.
//
// # Implementing a New Generator
//
//  1. Create package: typegen/<language>/generator.go
//  2. Implement the Generator interface (see below)
//  3. Register the target in the generators map in cmd/ddgen/commands/generate.go
//  4. Add tests for the emitted text next to the generator
package typegen

import "github.com/teranos/ddgen/model"

// Generator defines the interface for language-specific code generators.
type Generator interface {
	// Language returns the target selector (e.g., "java", "ts")
	Language() string

	// Label describes the output for status messages (e.g., "Java classes")
	Label() string

	// Root returns the output location relative to the destination directory
	// that is reported to the user once generation succeeds
	Root(opts Options) string

	// Generate renders the model into artifacts with paths relative to the destination
	Generate(defs *model.Definitions, analysis *Analysis, opts Options) ([]Artifact, error)
}

// Options carries the per-run inputs shared by all generators.
type Options struct {
	// Source is the model file path; its base name names the output
	Source string

	// Destination is the output directory; empty means DefaultDestination(Source)
	Destination string

	// RootPackage is a dotted Java package prefixed to every model package
	RootPackage string
}

// Artifact is one unit of generator output.
type Artifact struct {
	// Path is relative to the destination, using forward slashes
	Path string

	// Content is the file body; empty for directories
	Content string

	// Dir marks a directory that must exist before any file beneath it
	Dir bool
}

// File returns a file artifact
func File(path, content string) Artifact {
	return Artifact{Path: path, Content: content}
}

// Dir returns a directory artifact
func Dir(path string) Artifact {
	return Artifact{Path: path, Dir: true}
}

// Result describes a completed generation run.
type Result struct {
	// Target is the generator label, e.g. "Java classes"
	Target string

	// Path is where the output was written
	Path string

	// Files lists the written files relative to the destination
	Files []string
}
