package demangle

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// PrintTree dumps the node tree to stdout (used for debugging).
func PrintTree(node *Node, indent int) {
	writeTree(os.Stdout, node, indent)
}

// FprintTree writes the same dump as PrintTree to w.
func FprintTree(w io.Writer, node *Node) error {
	_, err := io.WriteString(w, node.Dump())
	return err
}

// Dump renders n and its descendants, one line per node, children indented
// one level deeper than their parent. It is a diagnostic view, not a
// demangled name.
func (n *Node) Dump() string {
	var sb strings.Builder
	writeTree(&sb, n, 0)
	return sb.String()
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return n.Dump()
}

func writeTree(w io.Writer, node *Node, indent int) {
	if node == nil {
		return
	}
	fmt.Fprintf(w, "%s- %s", strings.Repeat("  ", indent), node.kind)
	if node.payload.HasValue() {
		fmt.Fprintf(w, " (%s)", valueString(node.payload))
	}
	fmt.Fprintln(w)
	for _, child := range node.children {
		writeTree(w, child, indent+1)
	}
}

// valueString is Payload.String without quoting text.
func valueString(p Payload) string {
	if s, ok := p.Text(); ok {
		return s
	}
	return p.String()
}
