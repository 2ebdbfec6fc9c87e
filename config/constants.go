package config

import "github.com/brettbedarf/dedupe/internal/util"

// CLI verbosity levels. Higher is chattier.
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

var verboseLevels = [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}

// VerbosityToLogLevel clamps v to [ErrorVerbose, TraceVerbose] and maps it to a log level.
func VerbosityToLogLevel(v int) util.LogLevel {
	v = max(ErrorVerbose, min(v, TraceVerbose))
	return verboseLevels[v-1]
}
