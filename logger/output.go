package logger

// OutputCategory defines a category of CLI output that can be enabled/disabled.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults     OutputCategory = iota // Generation result line, parse summaries and dumps
	OutputErrors                            // Errors with hints
	OutputDiagnostics                       // Model warnings (e.g. lower-case type names)

	// Level 1 (-v)
	OutputConfig // Which config files were merged

	// Level 2 (-vv)
	OutputArtifacts // One line per file written
	OutputTiming    // Run duration
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:     VerbosityUser,
	OutputErrors:      VerbosityUser,
	OutputDiagnostics: VerbosityUser,
	OutputConfig:      VerbosityInfo,
	OutputArtifacts:   VerbosityDebug,
	OutputTiming:      VerbosityDebug,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}
