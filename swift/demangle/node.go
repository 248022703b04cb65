package demangle

import (
	"log/slog"
	"slices"
)

// Node is one production in a demangled symbol tree. A node owns its
// children; the parent link is a back-reference used for Depth and to keep
// a node from being attached in two places at once.
type Node struct {
	kind     Kind
	payload  Payload
	children []*Node
	parent   *Node
}

// NewNode creates a node of the given kind. Children that are already
// attached elsewhere are moved under the new node. It panics if children
// holds nil or the same node twice; use AddChildren to get an error instead.
func NewNode(kind Kind, children ...*Node) *Node {
	n := &Node{kind: kind}
	if err := n.AddChildren(children...); err != nil {
		panic(err)
	}
	return n
}

// NewText creates a leaf node carrying text, e.g. an Identifier or Module.
func NewText(kind Kind, text string) *Node {
	return &Node{kind: kind, payload: TextPayload(text)}
}

// NewIndex creates a leaf node carrying an index.
func NewIndex(kind Kind, index uint64) *Node {
	return &Node{kind: kind, payload: IndexPayload(index)}
}

// NewWithPayload creates a leaf node with an arbitrary leaf payload. A
// child-count payload is normalised to an empty node.
func NewWithPayload(kind Kind, p Payload) *Node {
	if p.IsChildren() {
		return &Node{kind: kind}
	}
	return &Node{kind: kind, payload: p}
}

func (n *Node) Kind() Kind {
	if n == nil {
		return KindUnknown
	}
	return n.kind
}

func (n *Node) Payload() Payload {
	if n == nil {
		return Payload{}
	}
	return n.payload
}

// Text returns the text payload, or "" when the node carries none.
func (n *Node) Text() string {
	s, _ := n.Payload().Text()
	return s
}

func (n *Node) Index() (uint64, bool) {
	return n.Payload().Index()
}

// HasText reports whether the node carries a text payload.
func (n *Node) HasText() bool {
	return n.Payload().Kind() == PayloadText
}

func (n *Node) NumChildren() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return slices.Clone(n.children)
}

// Child returns the child at index i.
func (n *Node) Child(i int) (*Node, error) {
	if n == nil || i < 0 || i >= len(n.children) {
		return nil, indexError(n, i)
	}
	return n.children[i], nil
}

func (n *Node) FirstChild() (*Node, error) {
	return n.Child(0)
}

func (n *Node) LastChild() (*Node, error) {
	return n.Child(n.NumChildren() - 1)
}

// ChildOrUnknown is the degraded form of Child for renderers that must not
// fail on malformed input: a missing child is replaced by a detached
// UnknownIndex node carrying the requested index.
func (n *Node) ChildOrUnknown(i int) *Node {
	if c, err := n.Child(i); err == nil {
		return c
	}
	slog.Debug("demangle: substituting unknown index", "kind", n.Kind().String(), "index", i, "count", n.NumChildren())
	if i < 0 {
		return NewNode(KindUnknownIndex)
	}
	return NewIndex(KindUnknownIndex, uint64(i))
}

// Parent returns the node that owns n, or nil for a root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Depth is the number of ancestors above n.
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent(); p != nil; p = p.parent {
		d++
	}
	return d
}

// AddChild appends child. It fails when n carries a leaf payload.
func (n *Node) AddChild(child *Node) error {
	return n.AddChildren(child)
}

// AddChildren appends children in order. An empty call is a no-op.
func (n *Node) AddChildren(children ...*Node) error {
	if len(children) == 0 {
		return nil
	}
	if err := n.checkAttach(children...); err != nil {
		return err
	}
	next := make([]*Node, 0, len(n.children)+len(children))
	next = append(next, n.children...)
	next = append(next, children...)
	n.setChildren(next)
	return nil
}

// ReplaceLastChild swaps the last child for child.
func (n *Node) ReplaceLastChild(child *Node) error {
	if !n.payload.IsChildren() {
		return leafPayloadError(n)
	}
	last := len(n.children) - 1
	if last < 0 {
		return indexError(n, last)
	}
	if n.children[last] == child {
		return nil
	}
	if err := n.checkAttach(child); err != nil {
		return err
	}
	next := slices.Clone(n.children)
	next[last] = child
	n.setChildren(next)
	return nil
}

// RemoveChild detaches child and reports whether it was found.
func (n *Node) RemoveChild(child *Node) bool {
	if n == nil {
		return false
	}
	i := slices.Index(n.children, child)
	if child == nil || i < 0 {
		return false
	}
	n.RemoveChildAt(i)
	return true
}

// RemoveChildAt detaches the child at index i. Out of range is a no-op.
func (n *Node) RemoveChildAt(i int) {
	if n == nil || i < 0 || i >= len(n.children) {
		return
	}
	next := slices.Delete(slices.Clone(n.children), i, i+1)
	n.setChildren(next)
}

func (n *Node) ReverseChildren() {
	n.ReverseChildrenFrom(0)
}

// ReverseChildrenFrom reverses the children at positions from..end and
// leaves the prefix in place. A start at or past the end is a no-op.
func (n *Node) ReverseChildrenFrom(from int) {
	if n == nil {
		return
	}
	if from < 0 {
		from = 0
	}
	if from >= len(n.children) {
		return
	}
	next := slices.Clone(n.children)
	slices.Reverse(next[from:])
	n.setChildren(next)
}

// Recast returns a node of a different kind that takes over n's payload and
// children. The children are re-parented to the new node, so n should be
// discarded afterwards.
func (n *Node) Recast(kind Kind) *Node {
	out := &Node{kind: kind, payload: n.payload}
	if len(n.children) > 0 {
		moved := slices.Clone(n.children)
		n.children = nil
		n.payload = childrenPayload(0)
		out.setChildren(moved)
	}
	return out
}

// checkAttach validates children before any state changes.
func (n *Node) checkAttach(children ...*Node) error {
	if !n.payload.IsChildren() {
		return leafPayloadError(n)
	}
	seen := make(map[*Node]struct{}, len(children))
	for i, c := range children {
		switch {
		case c == nil:
			return attachError(n, "nil child", i)
		case c.parent == n:
			return attachError(n, "child already attached to this node", i)
		case c == n || c.isAncestorOf(n):
			return attachError(n, "child is an ancestor of this node", i)
		}
		if _, dup := seen[c]; dup {
			return attachError(n, "child repeated", i)
		}
		seen[c] = struct{}{}
	}
	return nil
}

func (n *Node) isAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// setChildren is the only place a child list is replaced; detach only
// shrinks a former parent. It clears the parent of dropped children, moves
// adopted ones out of their previous parent, and recomputes the
// child-count payload.
func (n *Node) setChildren(next []*Node) {
	for _, old := range n.children {
		if old.parent == n && !slices.Contains(next, old) {
			old.parent = nil
		}
	}
	for _, c := range next {
		if c.parent != nil && c.parent != n {
			c.parent.detach(c)
		}
		c.parent = n
	}
	if len(next) == 0 {
		next = nil
	}
	n.children = next
	n.payload = childrenPayload(len(next))
}

// detach removes c from n without touching c.parent.
func (n *Node) detach(c *Node) {
	i := slices.Index(n.children, c)
	if i < 0 {
		return
	}
	n.children = slices.Delete(slices.Clone(n.children), i, i+1)
	if len(n.children) == 0 {
		n.children = nil
	}
	n.payload = childrenPayload(len(n.children))
}

// Clone returns a detached deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{kind: n.kind, payload: n.payload}
	if len(n.children) > 0 {
		kids := make([]*Node, len(n.children))
		for i, c := range n.children {
			kids[i] = c.Clone()
			kids[i].parent = out
		}
		out.children = kids
	}
	return out
}

// Equal reports whether a and b have the same kind, payload and children,
// recursively. Parent links are not compared.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind || a.payload != b.payload || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the current node.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.children {
		Walk(c, fn)
	}
}
