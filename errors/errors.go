// Package errors provides error handling for ddgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints attached to errors
//
// Usage:
//
//	// Wrap file-system failures with the path involved
//	if err := os.WriteFile(path, content, 0644); err != nil {
//	    return errors.Wrapf(err, "failed to write %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "use --target java or --target ts")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapOnce     = crdb.UnwrapOnce
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
	Mark           = crdb.Mark
)

// Sentinel errors shared across ddgen.
// Use these with errors.Is() and mark or wrap them to add context.
var (
	// ErrInvalidTarget indicates an unknown output target selector
	ErrInvalidTarget = New("invalid target")

	// ErrParse indicates the model source could not be parsed
	ErrParse = New("parse error")

	// ErrUnsupportedInput indicates a model file format that no loader handles
	ErrUnsupportedInput = New("unsupported input")

	// ErrOutOfDate indicates generated output differs from what is on disk
	ErrOutOfDate = New("generated output is out of date")
)

// IsParseError checks if an error is or wraps ErrParse
func IsParseError(err error) bool {
	return err != nil && Is(err, ErrParse)
}

// IsInvalidTargetError checks if an error is or wraps ErrInvalidTarget
func IsInvalidTargetError(err error) bool {
	return err != nil && Is(err, ErrInvalidTarget)
}

// NewInvalidTargetError creates an invalid-target error with a formatted message
func NewInvalidTargetError(format string, args ...interface{}) error {
	return WithHint(
		Mark(Newf(format, args...), ErrInvalidTarget),
		"supported targets: java, ts",
	)
}
