package layout

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package logger. It stays at error level unless
// SetNoisy raises it; the float manager is on the hot path of reflow
// and must be silent by default.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "floats",
	Level:  log.ErrorLevel,
})

// Noisy mirrors the logger's current verbosity. When enabled, the
// float manager traces additions, queries, and state pushes/pops.
var Noisy bool

// SetNoisy toggles float-manager tracing.
func SetNoisy(v bool) {
	Noisy = v
	if v {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.ErrorLevel)
	}
}

// Strict makes contract violations panic instead of merely logging.
// Tests run with Strict enabled; release callers get the logged error
// and undefined results, which matches how the engine treats misuse of
// these interfaces.
var Strict bool

func assert(cond bool, msg string, keyvals ...interface{}) {
	if cond {
		return
	}
	logger.Error(msg, keyvals...)
	if Strict {
		panic("layout: " + msg)
	}
}
