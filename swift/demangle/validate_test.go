package demangle

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsBuiltTrees(t *testing.T) {
	for name, n := range specializableFixtures() {
		assert.NoError(t, Validate(n), name)
	}
	assert.NoError(t, Validate(nil))
}

func TestValidateReportsEveryProblem(t *testing.T) {
	n := NewNode(KindTuple, typ(swiftInt()), typ(swiftInt()))
	stray := n.children[1]

	// Corrupt the tree behind the mutation API's back.
	n.payload = childrenPayload(1)
	stray.parent = nil
	leaf := stray.children[0].children[1]
	leaf.children = []*Node{ident("x")}
	leaf.children[0].parent = leaf
	n.children[0].kind = Kind(60000)

	err := Validate(n)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTree)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 4)

	msg := err.Error()
	assert.Contains(t, msg, "does not match 2 children")
	assert.Contains(t, msg, "Tuple/1: parent link")
	assert.Contains(t, msg, "leaf payload text with 1 children")
	assert.Contains(t, msg, "unknown kind 60000")
}
