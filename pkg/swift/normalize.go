package swift

import (
	"strings"

	"github.com/blacktop/go-swiftdemangle/swift/demangle"
)

var methodPrefixes = []string{"func ", "method ", "getter ", "setter ", "modify ", "init "}

// TryDemangleIdentifier is a best-effort Demangle for names copied out of
// disassembly and class dumps. A leading method prefix such as "getter " is
// stripped and returned alongside the tree.
func TryDemangleIdentifier(name string) (node *demangle.Node, prefix string, ok bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, "", false
	}

	for _, p := range methodPrefixes {
		if strings.HasPrefix(trimmed, p) {
			body := strings.TrimSpace(trimmed[len(p):])
			if n, ok := tryDemangleCandidate(body); ok {
				return n, strings.TrimSpace(p), true
			}
		}
	}

	n, ok := tryDemangleCandidate(trimmed)
	return n, "", ok
}

func tryDemangleCandidate(candidate string) (*demangle.Node, bool) {
	if candidate == "" {
		return nil, false
	}

	attempts := []string{candidate}
	if strings.HasPrefix(candidate, "_") && !looksLikeSwiftSymbol(candidate) {
		attempts = append(attempts, strings.TrimPrefix(candidate, "_"))
	}

	for _, attempt := range attempts {
		n, err := Demangle(attempt)
		if err != nil || n == nil {
			continue
		}
		return n, true
	}

	return nil, false
}
