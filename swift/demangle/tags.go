package demangle

import "fmt"

// Directness distinguishes direct from indirect references in
// metadata and witness-table symbols.
type Directness uint8

const (
	DirectnessUnknown Directness = iota
	DirectnessDirect
	DirectnessIndirect
)

func (d Directness) String() string {
	switch d {
	case DirectnessDirect:
		return "direct"
	case DirectnessIndirect:
		return "indirect"
	default:
		return "unknown"
	}
}

// DirectnessFromCode maps the mangling characters 'd' and 'i'.
func DirectnessFromCode(c byte) (Directness, bool) {
	switch c {
	case 'd':
		return DirectnessDirect, true
	case 'i':
		return DirectnessIndirect, true
	}
	return DirectnessUnknown, false
}

// Differentiability is the kind of a differentiable function type or
// derivative thunk. The values are the mangling characters themselves.
type Differentiability byte

const (
	NonDifferentiable     Differentiability = 0
	DifferentiableForward Differentiability = 'f'
	DifferentiableReverse Differentiability = 'r'
	DifferentiableNormal  Differentiability = 'd'
	DifferentiableLinear  Differentiability = 'l'
)

func (d Differentiability) String() string {
	switch d {
	case NonDifferentiable:
		return "nonDifferentiable"
	case DifferentiableForward:
		return "forward"
	case DifferentiableReverse:
		return "reverse"
	case DifferentiableNormal:
		return "normal"
	case DifferentiableLinear:
		return "linear"
	}
	return fmt.Sprintf("Differentiability(%q)", byte(d))
}

func DifferentiabilityFromCode(c byte) (Differentiability, bool) {
	switch d := Differentiability(c); d {
	case DifferentiableForward, DifferentiableReverse, DifferentiableNormal, DifferentiableLinear:
		return d, true
	}
	return NonDifferentiable, false
}

// SpecializationParamKind is the base transformation applied to one
// parameter of a function-signature specialization.
type SpecializationParamKind uint

const (
	SpecParamConstantPropFunction SpecializationParamKind = iota
	SpecParamConstantPropGlobal
	SpecParamConstantPropInteger
	SpecParamConstantPropFloat
	SpecParamConstantPropString
	SpecParamClosureProp
	SpecParamBoxToValue
	SpecParamBoxToStack
	SpecParamInOutToOut
	SpecParamConstantPropKeyPath
)

var specParamKindNames = [...]string{
	"ConstantPropFunction",
	"ConstantPropGlobal",
	"ConstantPropInteger",
	"ConstantPropFloat",
	"ConstantPropString",
	"ClosureProp",
	"BoxToValue",
	"BoxToStack",
	"InOutToOut",
	"ConstantPropKeyPath",
}

func (k SpecializationParamKind) String() string {
	if int(k) < len(specParamKindNames) {
		return specParamKindNames[k]
	}
	return fmt.Sprintf("SpecializationParamKind(%d)", uint(k))
}

// SpecializationParam is either a SpecializationParamKind in the low six
// bits or a set of option flags above them.
type SpecializationParam uint

const specParamKindMask SpecializationParam = 0x3f

const (
	SpecParamDead SpecializationParam = 1 << (6 + iota)
	SpecParamOwnedToGuaranteed
	SpecParamSROA
	SpecParamGuaranteedToOwned
	SpecParamExistentialToGeneric
)

var specParamFlagNames = []struct {
	flag SpecializationParam
	name string
}{
	{SpecParamDead, "Dead"},
	{SpecParamOwnedToGuaranteed, "OwnedToGuaranteed"},
	{SpecParamSROA, "SROA"},
	{SpecParamGuaranteedToOwned, "GuaranteedToOwned"},
	{SpecParamExistentialToGeneric, "ExistentialToGeneric"},
}

// Kind returns the base transformation. It is only meaningful when
// IsOptionSet is false.
func (p SpecializationParam) Kind() SpecializationParamKind {
	return SpecializationParamKind(p & specParamKindMask)
}

// IsOptionSet reports whether p carries flags rather than a base kind.
func (p SpecializationParam) IsOptionSet() bool {
	return p&^specParamKindMask != 0
}

func (p SpecializationParam) Has(flag SpecializationParam) bool {
	return p&flag == flag
}

func (p SpecializationParam) String() string {
	if !p.IsOptionSet() {
		return p.Kind().String()
	}
	out := ""
	for _, f := range specParamFlagNames {
		if p.Has(f.flag) {
			if out != "" {
				out += "|"
			}
			out += f.name
		}
	}
	return out
}
