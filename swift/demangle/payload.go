package demangle

import "strconv"

// PayloadKind discriminates the variants of Payload.
type PayloadKind uint8

const (
	PayloadNone PayloadKind = iota
	PayloadText
	PayloadIndex
	PayloadValueWitness
	PayloadDifferentiability
	PayloadSpecializationParam
	PayloadDirectness
	PayloadOneChild
	PayloadTwoChildren
	PayloadManyChildren
)

var payloadKindNames = [...]string{
	"none",
	"text",
	"index",
	"valueWitness",
	"differentiability",
	"specializationParam",
	"directness",
	"oneChild",
	"twoChildren",
	"manyChildren",
}

func (k PayloadKind) String() string {
	if int(k) < len(payloadKindNames) {
		return payloadKindNames[k]
	}
	return "PayloadKind(" + strconv.Itoa(int(k)) + ")"
}

// Payload is the value attached to a node: either a genuine leaf value or a
// marker for how many children the node has. The marker variants are owned
// by Node and cannot be constructed here.
type Payload struct {
	kind  PayloadKind
	text  string
	value uint64
}

func TextPayload(s string) Payload { return Payload{kind: PayloadText, text: s} }

func IndexPayload(i uint64) Payload { return Payload{kind: PayloadIndex, value: i} }

func ValueWitnessPayload(k ValueWitnessKind) Payload {
	return Payload{kind: PayloadValueWitness, value: uint64(k)}
}

func DifferentiabilityPayload(d Differentiability) Payload {
	return Payload{kind: PayloadDifferentiability, value: uint64(d)}
}

func SpecializationParamPayload(p SpecializationParam) Payload {
	return Payload{kind: PayloadSpecializationParam, value: uint64(p)}
}

func DirectnessPayload(d Directness) Payload {
	return Payload{kind: PayloadDirectness, value: uint64(d)}
}

// childrenPayload returns the marker matching a child count.
func childrenPayload(n int) Payload {
	switch n {
	case 0:
		return Payload{}
	case 1:
		return Payload{kind: PayloadOneChild}
	case 2:
		return Payload{kind: PayloadTwoChildren}
	default:
		return Payload{kind: PayloadManyChildren}
	}
}

func (p Payload) Kind() PayloadKind { return p.kind }

// IsChildren reports whether p is one of the child-count variants
// (including none), i.e. whether a node holding it may have children.
func (p Payload) IsChildren() bool {
	switch p.kind {
	case PayloadNone, PayloadOneChild, PayloadTwoChildren, PayloadManyChildren:
		return true
	}
	return false
}

// HasValue reports whether p carries a genuine leaf value.
func (p Payload) HasValue() bool { return !p.IsChildren() }

func (p Payload) Text() (string, bool) {
	return p.text, p.kind == PayloadText
}

func (p Payload) Index() (uint64, bool) {
	return p.value, p.kind == PayloadIndex
}

func (p Payload) ValueWitness() (ValueWitnessKind, bool) {
	return ValueWitnessKind(p.value), p.kind == PayloadValueWitness
}

func (p Payload) Differentiability() (Differentiability, bool) {
	return Differentiability(p.value), p.kind == PayloadDifferentiability
}

func (p Payload) SpecializationParam() (SpecializationParam, bool) {
	return SpecializationParam(p.value), p.kind == PayloadSpecializationParam
}

func (p Payload) Directness() (Directness, bool) {
	return Directness(p.value), p.kind == PayloadDirectness
}

// String renders the leaf value, or "" for the child-count variants.
func (p Payload) String() string {
	switch p.kind {
	case PayloadText:
		return strconv.Quote(p.text)
	case PayloadIndex:
		return strconv.FormatUint(p.value, 10)
	case PayloadValueWitness:
		return ValueWitnessKind(p.value).String()
	case PayloadDifferentiability:
		return Differentiability(p.value).String()
	case PayloadSpecializationParam:
		return SpecializationParam(p.value).String()
	case PayloadDirectness:
		return Directness(p.value).String()
	}
	return ""
}
