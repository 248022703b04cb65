package swiftdemangle

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// DebugEnv switches on parser tracing at slog debug level.
const DebugEnv = "GO_SWIFTDEMANGLE_DEBUG"

var debugEnabled atomic.Bool

func init() {
	debugEnabled.Store(os.Getenv(DebugEnv) != "")
}

// SetDebug overrides the environment switch.
func SetDebug(on bool) {
	debugEnabled.Store(on)
}

func debug(msg string, args ...any) {
	if debugEnabled.Load() {
		slog.Debug("swiftdemangle: "+msg, args...)
	}
}
