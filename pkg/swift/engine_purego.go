package swift

import (
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/blacktop/go-swiftdemangle/internal/swiftdemangle"
	"github.com/blacktop/go-swiftdemangle/swift/demangle"
)

type pureGoEngine struct {
	resolver SymbolicReferenceResolver
}

func newPureGoEngine(resolver SymbolicReferenceResolver) engine {
	return pureGoEngine{resolver: resolver}
}

func (e pureGoEngine) Demangle(input string) (*demangle.Node, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, errors.Errorf("%w: empty input", swiftdemangle.ErrMalformed)
	}
	if looksLikeSwiftSymbol(trimmed) {
		return swiftdemangle.DemangleSymbolString(trimmed, swiftdemangle.WithResolver(e.resolver))
	}
	return e.DemangleType(trimmed)
}

func (e pureGoEngine) DemangleType(input string) (*demangle.Node, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, errors.Errorf("%w: empty input", swiftdemangle.ErrMalformed)
	}
	return swiftdemangle.DemangleTypeString(trimmed, swiftdemangle.WithResolver(e.resolver))
}

func looksLikeSwiftSymbol(s string) bool {
	return swiftdemangle.HasSymbolPrefix([]byte(strings.TrimSpace(s)))
}
