package logger

import "go.uber.org/zap/zapcore"

// Verbosity level constants for CLI flag counts.
const (
	VerbosityUser  = 0 // No flags: results, warnings, and errors only
	VerbosityInfo  = 1 // -v: + per-client progress and file counts
	VerbosityDebug = 2 // -vv: + per-page writes, analysis details
)

// VerbosityToLevel maps verbosity flags (-v, -vv, etc.) to zap log levels
//
// Mapping:
//
//	0 (none) -> InfoLevel  (generation summaries)
//	1 (-v)   -> InfoLevel
//	2+ (-vv) -> DebugLevel (+ per-page detail)
func VerbosityToLevel(verbosity int) zapcore.Level {
	if verbosity >= VerbosityDebug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}
