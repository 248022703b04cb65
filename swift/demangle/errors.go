package demangle

import (
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrContractViolation is returned when a caller uses a node in a way its
	// shape does not allow: adding children to a leaf, indexing a missing
	// child, or unspecializing a kind that is not specializable.
	ErrContractViolation = errors.Base("demangle: contract violation")

	// ErrIndexOutOfRange is returned by the child accessors.
	ErrIndexOutOfRange = errors.BaseWrap(ErrContractViolation, "demangle: child index out of range")

	// ErrLeafPayload is returned by mutations on a node holding a text,
	// index or tag payload.
	ErrLeafPayload = errors.BaseWrap(ErrContractViolation, "demangle: node has a leaf payload")

	// ErrNotSpecializable is returned by Unspecialized.
	ErrNotSpecializable = errors.BaseWrap(ErrContractViolation, "demangle: node is not specializable")
)

func leafPayloadError(n *Node) error {
	return errors.WithDetails(ErrLeafPayload, "kind", n.kind.String(), "payload", n.payload.kind.String())
}

func indexError(n *Node, index int) error {
	return errors.WithDetails(ErrIndexOutOfRange, "kind", n.Kind().String(), "index", index, "count", n.NumChildren())
}

func attachError(n *Node, reason string, position int) error {
	return errors.WithDetails(ErrContractViolation, "kind", n.kind.String(), "reason", reason, "position", position)
}
