package demangle

import (
	"gitlab.com/tozd/go/errors"
)

// Unspecialized returns the declaration n describes with every layer of
// generic specialization removed.
//
// Results are detached copies, except that an extension whose extended type
// is already unspecialized is returned as is. Kinds outside the nominal,
// function and extension families, and trees missing the children a rule
// needs, fail with ErrNotSpecializable.
func Unspecialized(n *Node) (*Node, error) {
	if n == nil {
		return nil, errors.WithDetails(ErrNotSpecializable, "kind", "nil")
	}
	switch k := n.kind; {
	case isFunctionLike(k):
		return unspecializedEntity(n, len(n.children))

	case isPlainNominal(k):
		return unspecializedEntity(n, 2)

	case isBoundGeneric(k):
		unbound := n.child(0)
		if unbound.Kind() != KindType {
			return nil, notSpecializable(n, "bound generic is missing its Type child")
		}
		nominal := unbound.child(0)
		if nominal == nil {
			return nil, notSpecializable(n, "Type wrapper is empty")
		}
		if IsSpecialized(nominal) {
			return Unspecialized(nominal)
		}
		return nominal.Clone(), nil

	case k == KindBoundGenericFunction:
		fn := n.child(0)
		if fn.Kind() != KindFunction && fn.Kind() != KindConstructor {
			return nil, notSpecializable(n, "bound generic function is missing its function")
		}
		if IsSpecialized(fn) {
			return Unspecialized(fn)
		}
		return fn.Clone(), nil

	case k == KindExtension:
		extended := n.child(1)
		if extended == nil {
			return nil, notSpecializable(n, "extension is missing its extended type")
		}
		if !IsSpecialized(extended) {
			return n, nil
		}
		base, err := Unspecialized(extended)
		if err != nil {
			return nil, err
		}
		out := NewNode(KindExtension, n.children[0].Clone(), base)
		if sig := n.child(2); sig != nil {
			if err := out.AddChild(sig.Clone()); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	return nil, notSpecializable(n, "")
}

// unspecializedEntity rebuilds n from its first count children, replacing
// the parent context (child 0) with its unspecialized form.
func unspecializedEntity(n *Node, count int) (*Node, error) {
	if count < 1 || len(n.children) < count {
		return nil, notSpecializable(n, "entity is missing its context or name")
	}
	parent := n.children[0]
	if IsSpecialized(parent) {
		var err error
		if parent, err = Unspecialized(parent); err != nil {
			return nil, err
		}
	} else {
		parent = parent.Clone()
	}
	kids := make([]*Node, 0, count)
	kids = append(kids, parent)
	for _, c := range n.children[1:count] {
		kids = append(kids, c.Clone())
	}
	return NewNode(n.kind, kids...), nil
}

func notSpecializable(n *Node, reason string) error {
	if reason == "" {
		return errors.WithDetails(ErrNotSpecializable, "kind", n.Kind().String())
	}
	return errors.WithDetails(ErrNotSpecializable, "kind", n.Kind().String(), "reason", reason)
}
