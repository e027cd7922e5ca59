package typegen

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/teranos/ddgen/errors"
)

// CheckResult holds the result of comparing fresh output with committed output
type CheckResult struct {
	UpToDate bool
	// Differences lists generated files (relative paths) whose committed copy
	// differs or is missing
	Differences []string
}

// CompareDirectories compares every file under generatedDir with the file at
// the same relative path under existingDir. Files that exist only under
// existingDir are ignored.
func CompareDirectories(generatedDir, existingDir string) (*CheckResult, error) {
	if _, err := os.Stat(generatedDir); err != nil {
		return nil, errors.Wrapf(err, "failed to read generated output %s", generatedDir)
	}

	var diffs []string
	err := filepath.Walk(generatedDir, func(genPath string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		relPath, err := filepath.Rel(generatedDir, genPath)
		if err != nil {
			return err
		}

		existingPath := filepath.Join(existingDir, relPath)
		different, err := filesAreDifferent(genPath, existingPath)
		switch {
		case os.IsNotExist(errors.UnwrapAll(err)):
			diffs = append(diffs, filepath.ToSlash(relPath)+" (missing)")
		case err != nil:
			diffs = append(diffs, filepath.ToSlash(relPath)+" (error: "+err.Error()+")")
		case different:
			diffs = append(diffs, filepath.ToSlash(relPath))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compare %s with %s", generatedDir, existingDir)
	}

	sort.Strings(diffs)
	return &CheckResult{
		UpToDate:    len(diffs) == 0,
		Differences: diffs,
	}, nil
}

// filesAreDifferent compares two files byte for byte.
func filesAreDifferent(file1, file2 string) (bool, error) {
	content1, err := os.ReadFile(file1)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", file1)
	}

	content2, err := os.ReadFile(file2)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", file2)
	}

	return !bytes.Equal(content1, content2), nil
}
