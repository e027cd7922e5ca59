package logger

// Standard field names for consistent structured logging across ddgen.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity
	FieldRunID = "run_id"

	// Generation
	FieldTarget   = "target"
	FieldSource   = "source"
	FieldPath     = "path"
	FieldArtifact = "artifact"

	// Counts and timing
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Files
	FieldFile = "file"
	FieldLine = "line"
)
