package swiftdemangle

import (
	"bytes"
	"regexp"

	"github.com/blacktop/go-swiftdemangle/swift/demangle"
)

var mangledTokenPattern = regexp.MustCompile(`_?\$[sSe][A-Za-z0-9_]+`)

type Option func(*options)

type options struct {
	resolver SymbolicReferenceResolver
}

func WithResolver(r SymbolicReferenceResolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// Demangle parses mangled as a symbol when it carries a symbol prefix and as
// a bare type otherwise.
func Demangle(mangled string, opts ...Option) (*demangle.Node, error) {
	if HasSymbolPrefix([]byte(mangled)) {
		return DemangleSymbolString(mangled, opts...)
	}
	return DemangleTypeString(mangled, opts...)
}

func DemangleSymbolString(mangled string, opts ...Option) (*demangle.Node, error) {
	cfg := buildOptions(opts...)
	return New(cfg.resolver).DemangleSymbol([]byte(mangled))
}

func DemangleTypeString(mangled string, opts ...Option) (*demangle.Node, error) {
	cfg := buildOptions(opts...)
	clean := bytes.TrimPrefix([]byte(mangled), []byte("_"))
	return New(cfg.resolver).DemangleType(clean)
}

// FindSymbols returns the Swift symbols embedded in blob, in order.
func FindSymbols(blob string) []string {
	return mangledTokenPattern.FindAllString(blob, -1)
}

func buildOptions(opts ...Option) options {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
