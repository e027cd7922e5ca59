package config

import (
	"slices"
	"strings"
	"unicode"

	"github.com/teranos/ddgen/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if !slices.Contains(Targets, c.Generate.Target) {
		return errors.NewInvalidTargetError("generate.target must be one of %s, got %q",
			strings.Join(Targets, ", "), c.Generate.Target)
	}

	// 0 = default debounce, negative = invalid
	if c.Watch.DebounceMs < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMs)
	}

	if c.Log.Verbosity < 0 {
		return errors.Newf("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	if c.Java.RootPackage != "" && !IsPackageName(c.Java.RootPackage) {
		return errors.WithHint(
			errors.Newf("java.root_package %q is not a valid package name", c.Java.RootPackage),
			"use dot-separated identifiers, e.g. com.acme")
	}

	return nil
}

// IsPackageName reports whether name is a dot-separated list of identifiers
func IsPackageName(name string) bool {
	for _, segment := range strings.Split(name, ".") {
		if segment == "" {
			return false
		}
		for i, r := range segment {
			if r == '_' || r == '$' || unicode.IsLetter(r) {
				continue
			}
			if i > 0 && unicode.IsDigit(r) {
				continue
			}
			return false
		}
	}
	return true
}
