// Package dsl loads domain models from their textual (.ddef) or YAML form,
// links cross-references and runs the model validations.
package dsl

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/ddgen/errors"
	"github.com/teranos/ddgen/logger"
	"github.com/teranos/ddgen/model"
)

// Extensions lists the model file extensions ParseFile accepts.
var Extensions = []string{".ddef", ".yaml", ".yml"}

// IsModelFile reports whether path has a model file extension
func IsModelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Document is one loaded model file together with its diagnostics.
type Document struct {
	Path        string
	Definitions *model.Definitions
	Diagnostics []*ParseError
}

func (d *Document) addDiagnostic(diag *ParseError) {
	if diag.File == "" {
		diag.File = d.Path
	}
	d.Diagnostics = append(d.Diagnostics, diag)
}

// Warnings returns the warning-severity diagnostics
func (d *Document) Warnings() []*ParseError {
	var warnings []*ParseError
	for _, diag := range d.Diagnostics {
		if diag.IsWarning() {
			warnings = append(warnings, diag)
		}
	}
	return warnings
}

// ParseFile reads and parses a model file without linking it.
// Syntax errors are returned as *ParseError.
func ParseFile(path string) (*Document, error) {
	if !IsModelFile(path) {
		return nil, errors.WithHintf(
			errors.Mark(errors.Newf("unsupported model file %s", path), errors.ErrUnsupportedInput),
			"expected one of: %s", strings.Join(Extensions, ", "))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read model file %s", path)
	}

	var defs *model.Definitions
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ddef":
		defs, err = Parse(string(data))
	default:
		defs, err = ParseYAML(data)
	}
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			return nil, perr.WithFile(path)
		}
		return nil, err
	}

	defs.Source = path
	return &Document{Path: path, Definitions: defs}, nil
}

// Load parses path, links it and validates it. When root is set, every other
// model file below root is parsed too so references into those files resolve.
// Sibling files that fail to parse are skipped with a warning.
func Load(path, root string) (*Document, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	docs := []*Document{doc}
	if root != "" {
		siblings, err := parseSiblings(path, root)
		if err != nil {
			return nil, err
		}
		docs = append(docs, siblings...)
	}

	Link(docs...)
	Check(doc)

	for _, diag := range doc.Diagnostics {
		logger.Debugw("Diagnostic",
			logger.FieldFile, diag.File,
			logger.FieldLine, diag.Pos.Line,
			"severity", string(diag.Severity),
			"message", diag.Message)
	}
	logger.Debugw("Loaded model",
		logger.FieldSource, path,
		logger.FieldCount, len(model.Flatten(doc.Definitions)),
		"documents", len(docs),
		"diagnostics", len(doc.Diagnostics))
	return doc, nil
}

func parseSiblings(path, root string) ([]*Document, error) {
	self, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}

	var docs []*Document
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsModelFile(p) {
			return nil
		}
		if abs, _ := filepath.Abs(p); abs == self {
			return nil
		}

		doc, perr := ParseFile(p)
		if perr != nil {
			logger.Warnw("Skipping model file", logger.FieldFile, p, logger.FieldError, perr.Error())
			return nil
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan model root %s", root)
	}
	return docs, nil
}
