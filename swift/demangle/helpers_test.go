package demangle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ident(s string) *Node { return NewText(KindIdentifier, s) }

func module(s string) *Node { return NewText(KindModule, s) }

func typ(n *Node) *Node { return NewNode(KindType, n) }

// nominal builds e.g. Structure(Module "Core", Identifier "Point").
func nominal(kind Kind, mod, name string) *Node {
	return NewNode(kind, module(mod), ident(name))
}

// bound builds BoundGeneric<kind>(Type(base), TypeList(Type(args)...)).
func bound(kind Kind, base *Node, args ...*Node) *Node {
	types := make([]*Node, len(args))
	for i, a := range args {
		types[i] = typ(a)
	}
	return NewNode(kind, typ(base), NewNode(KindTypeList, types...))
}

func swiftInt() *Node { return nominal(KindStructure, "Swift", "Int") }

// requireConsistent asserts the structural invariants over the whole tree.
func requireConsistent(t *testing.T, n *Node) {
	t.Helper()
	require.NoError(t, Validate(n))
}
