package swift

import (
	"log/slog"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"gitlab.com/tozd/go/errors"

	"github.com/blacktop/go-swiftdemangle/internal/swiftdemangle"
	"github.com/blacktop/go-swiftdemangle/swift/demangle"
)

// Demangler parses manglings with a fixed symbolic reference resolver.
type Demangler struct {
	eng engine
}

// WithResolver returns a Demangler that resolves symbolic references through
// r instead of leaving them as TypeSymbolicReference nodes.
func WithResolver(r SymbolicReferenceResolver) *Demangler {
	return &Demangler{eng: newPureGoEngine(r)}
}

// Demangle returns the tree for input. Symbols ("$s...", "_$s...") produce a
// Global node; anything else is parsed as a bare type mangling.
func Demangle(input string) (*demangle.Node, error) {
	return defaultEngine.Demangle(input)
}

// DemangleType returns the Type node for a metadata type mangling such as
// "SaySiG".
func DemangleType(input string) (*demangle.Node, error) {
	return defaultEngine.DemangleType(input)
}

func (d *Demangler) Demangle(input string) (*demangle.Node, error) {
	return d.eng.Demangle(input)
}

func (d *Demangler) DemangleType(input string) (*demangle.Node, error) {
	return d.eng.DemangleType(input)
}

// Symbol is one mangled token found by DemangleBlob.
type Symbol struct {
	Mangled string
	Node    *demangle.Node
	Err     error
}

// DemangleBlob demangles every Swift symbol embedded in blob, in order.
// Tokens that fail to parse are reported with Err set.
func DemangleBlob(blob string) []Symbol {
	tokens := swiftdemangle.FindSymbols(blob)
	out := make([]Symbol, 0, len(tokens))
	for _, token := range tokens {
		n, err := Demangle(token)
		if err != nil {
			slog.Debug("pkg/swift: skipping blob token", "token", token, "err", err)
		}
		out = append(out, Symbol{Mangled: token, Node: n, Err: err})
	}
	return out
}

// Entity returns the declaration or type a tree describes, looking through
// Global, TypeMangling and Type wrappers.
func Entity(n *demangle.Node) *demangle.Node {
	for n != nil {
		switch n.Kind() {
		case demangle.KindGlobal, demangle.KindTypeMangling, demangle.KindType:
			if n.NumChildren() == 0 {
				return n
			}
			n = n.Children()[0]
		default:
			return n
		}
	}
	return nil
}

// Unspecialize demangles input and strips every layer of generic
// specialization from the entity it names.
func Unspecialize(input string) (*demangle.Node, error) {
	n, err := Demangle(input)
	if err != nil {
		return nil, errors.Errorf("unspecialize %q: %w", input, err)
	}
	out, err := demangle.Unspecialized(Entity(n))
	if err != nil {
		return nil, errors.Errorf("unspecialize %q: %w", input, err)
	}
	return out, nil
}

// DumpType returns the debug tree of a demangled type mangling.
func DumpType(input string) (string, error) {
	n, err := DemangleType(input)
	if err != nil {
		return "", err
	}
	return n.Dump(), nil
}

// DiffUnspecialized returns a line diff between the dump of the entity input
// names and the dump of its unspecialized form. Removed lines start with
// "-", added lines with "+" and shared lines with a space.
func DiffUnspecialized(input string) (string, error) {
	n, err := Demangle(input)
	if err != nil {
		return "", err
	}
	entity := Entity(n)
	base, err := demangle.Unspecialized(entity)
	if err != nil {
		return "", errors.Errorf("diff %q: %w", input, err)
	}
	return diffLines(entity.Dump(), base.Dump()), nil
}

func diffLines(from, to string) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
