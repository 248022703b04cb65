package demangle

import "fmt"

// ValueWitnessKind names one entry of a type's value-witness table.
type ValueWitnessKind uint8

const (
	AllocateBuffer ValueWitnessKind = iota
	AssignWithCopy
	AssignWithTake
	DeallocateBuffer
	Destroy
	DestroyBuffer
	DestroyArray
	InitializeBufferWithCopyOfBuffer
	InitializeBufferWithCopy
	InitializeWithCopy
	InitializeBufferWithTake
	InitializeWithTake
	ProjectBuffer
	InitializeBufferWithTakeOfBuffer
	InitializeArrayWithCopy
	InitializeArrayWithTakeFrontToBack
	InitializeArrayWithTakeBackToFront
	StoreExtraInhabitant
	GetExtraInhabitantIndex
	GetEnumTag
	DestructiveProjectEnumData
	DestructiveInjectEnumTag
	GetEnumTagSinglePayload
	StoreEnumTagSinglePayload

	numValueWitnessKinds
)

// valueWitnessTable is indexed by ValueWitnessKind.
var valueWitnessTable = [numValueWitnessKinds]struct {
	code string
	name string
}{
	{"al", "AllocateBuffer"},
	{"ca", "AssignWithCopy"},
	{"ta", "AssignWithTake"},
	{"de", "DeallocateBuffer"},
	{"xx", "Destroy"},
	{"XX", "DestroyBuffer"},
	{"Xx", "DestroyArray"},
	{"CP", "InitializeBufferWithCopyOfBuffer"},
	{"Cp", "InitializeBufferWithCopy"},
	{"cp", "InitializeWithCopy"},
	{"Tk", "InitializeBufferWithTake"},
	{"tk", "InitializeWithTake"},
	{"pr", "ProjectBuffer"},
	{"TK", "InitializeBufferWithTakeOfBuffer"},
	{"Cc", "InitializeArrayWithCopy"},
	{"Tt", "InitializeArrayWithTakeFrontToBack"},
	{"tT", "InitializeArrayWithTakeBackToFront"},
	{"xs", "StoreExtraInhabitant"},
	{"xg", "GetExtraInhabitantIndex"},
	{"ug", "GetEnumTag"},
	{"up", "DestructiveProjectEnumData"},
	{"ui", "DestructiveInjectEnumTag"},
	{"et", "GetEnumTagSinglePayload"},
	{"st", "StoreEnumTagSinglePayload"},
}

var valueWitnessByCode = func() map[string]ValueWitnessKind {
	m := make(map[string]ValueWitnessKind, numValueWitnessKinds)
	for i, e := range valueWitnessTable {
		m[e.code] = ValueWitnessKind(i)
	}
	return m
}()

// ValueWitnessFromCode decodes a two-character value-witness code. Unknown
// codes report false.
func ValueWitnessFromCode(code string) (ValueWitnessKind, bool) {
	k, ok := valueWitnessByCode[code]
	return k, ok
}

// ValueWitnessKinds returns every value-witness kind in table order.
func ValueWitnessKinds() []ValueWitnessKind {
	out := make([]ValueWitnessKind, numValueWitnessKinds)
	for i := range out {
		out[i] = ValueWitnessKind(i)
	}
	return out
}

// Code returns the two-character mangling code, or "" for an out of range value.
func (k ValueWitnessKind) Code() string {
	if k < numValueWitnessKinds {
		return valueWitnessTable[k].code
	}
	return ""
}

func (k ValueWitnessKind) String() string {
	if k < numValueWitnessKinds {
		return valueWitnessTable[k].name
	}
	return fmt.Sprintf("ValueWitnessKind(%d)", uint8(k))
}

// DisplayName is the lower-camel form used when printing, e.g.
// "getEnumTagSinglePayload".
func (k ValueWitnessKind) DisplayName() string {
	s := k.String()
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return s
	}
	return string(s[0]+('a'-'A')) + s[1:]
}
