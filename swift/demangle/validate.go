package demangle

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidTree is wrapped by every problem Validate reports.
var ErrInvalidTree = errors.Base("demangle: invalid tree")

// Validate walks the tree rooted at root and reports every broken
// structural invariant: a child-count payload that disagrees with the child
// list, a leaf payload next to children, a nil child, a child whose parent
// link does not point back, and kinds outside the taxonomy. It returns nil
// for a well-formed tree.
func Validate(root *Node) error {
	var result *multierror.Error
	report := func(n *Node, path, format string, args ...any) {
		err := errors.WithDetails(
			errors.Errorf("%w: %s: "+format, append([]any{ErrInvalidTree, path}, args...)...),
			"kind", n.kind.String(),
		)
		result = multierror.Append(result, err)
	}

	var visit func(n *Node, path string)
	visit = func(n *Node, path string) {
		if !n.kind.Valid() {
			report(n, path, "unknown kind %d", uint16(n.kind))
		}
		if n.payload.IsChildren() {
			if want := childrenPayload(len(n.children)); n.payload != want {
				report(n, path, "payload %s does not match %d children", n.payload.kind, len(n.children))
			}
		} else if len(n.children) > 0 {
			report(n, path, "leaf payload %s with %d children", n.payload.kind, len(n.children))
		}
		for i, c := range n.children {
			childPath := fmt.Sprintf("%s/%d", path, i)
			if c == nil {
				report(n, childPath, "nil child")
				continue
			}
			if c.parent != n {
				report(c, childPath, "parent link does not point to owner %s", n.kind)
			}
			visit(c, childPath)
		}
	}

	if root == nil {
		return nil
	}
	visit(root, root.kind.String())
	return result.ErrorOrNil()
}
