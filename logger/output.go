package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - Results and errors with hints
//	1 (-v)      - + Config sources, loaded unit tables
//	2 (-vv)     - + Per-token calc steps, conversion details
//	3 (-vvv)    - + Full stack contents after every step

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults OutputCategory = iota // Command output
	OutputErrors                        // Errors with hints

	// Level 1 (-v) - Informational
	OutputConfig // Config sources and values applied
	OutputTables // User unit tables loaded

	// Level 2 (-vv) - Detailed
	OutputSteps       // One line per calc token
	OutputConversions // Conversion inputs and outputs

	// Level 3 (-vvv) - Trace
	OutputStack // Whole calc stack after each token
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:     VerbosityUser,
	OutputErrors:      VerbosityUser,
	OutputConfig:      VerbosityInfo,
	OutputTables:      VerbosityInfo,
	OutputSteps:       VerbosityDebug,
	OutputConversions: VerbosityDebug,
	OutputStack:       VerbosityTrace,
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

// categoryNames provides human-readable names for output categories
var categoryNames = map[OutputCategory]string{
	OutputResults:     "results",
	OutputErrors:      "errors",
	OutputConfig:      "config",
	OutputTables:      "tables",
	OutputSteps:       "steps",
	OutputConversions: "conversions",
	OutputStack:       "stack",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
