package swift

import (
	"log/slog"
	"os"

	"github.com/blacktop/go-swiftdemangle/internal/swiftdemangle"
	"github.com/blacktop/go-swiftdemangle/swift/demangle"
)

const debugEnvVar = swiftdemangle.DebugEnv

var defaultEngine engine = newPureGoEngine(nil)

func init() {
	if os.Getenv(debugEnvVar) != "" {
		SetDebug(true)
	}
}

type engine interface {
	Demangle(string) (*demangle.Node, error)
	DemangleType(string) (*demangle.Node, error)
}

// SymbolicReferenceResolver resolves relative symbolic references found in
// metadata manglings. See WithResolver.
type SymbolicReferenceResolver = swiftdemangle.SymbolicReferenceResolver

// SetDebug toggles parser tracing. It is also enabled when
// GO_SWIFTDEMANGLE_DEBUG is set.
func SetDebug(on bool) {
	swiftdemangle.SetDebug(on)
	slog.Debug("pkg/swift: parser tracing", "enabled", on)
}
