package swiftdemangle

import "github.com/blacktop/go-swiftdemangle/swift/demangle"

// Module names with a fixed mangling.
const (
	stdlibModuleName      = "Swift"
	objcModuleName        = "__C"
	synthesizedModuleName = "__C_Synthesized"
)

type standardType struct {
	kind demangle.Kind
	name string
}

// standardTypes maps the character after 'S' to a Swift standard library
// type. These are never recorded as substitutions.
var standardTypes = map[byte]standardType{
	'A': {demangle.KindStructure, "AutoreleasingUnsafeMutablePointer"},
	'a': {demangle.KindStructure, "Array"},
	'B': {demangle.KindProtocol, "BinaryFloatingPoint"},
	'b': {demangle.KindStructure, "Bool"},
	'c': {demangle.KindStructure, "UnicodeScalar"},
	'D': {demangle.KindStructure, "Dictionary"},
	'd': {demangle.KindStructure, "Double"},
	'E': {demangle.KindProtocol, "Encodable"},
	'e': {demangle.KindProtocol, "Decodable"},
	'F': {demangle.KindProtocol, "FloatingPoint"},
	'f': {demangle.KindStructure, "Float"},
	'G': {demangle.KindProtocol, "RandomNumberGenerator"},
	'H': {demangle.KindProtocol, "Hashable"},
	'h': {demangle.KindStructure, "Set"},
	'I': {demangle.KindStructure, "DefaultIndices"},
	'i': {demangle.KindStructure, "Int"},
	'J': {demangle.KindStructure, "Character"},
	'j': {demangle.KindProtocol, "Numeric"},
	'K': {demangle.KindProtocol, "BidirectionalCollection"},
	'k': {demangle.KindProtocol, "RandomAccessCollection"},
	'L': {demangle.KindProtocol, "Comparable"},
	'l': {demangle.KindProtocol, "Collection"},
	'M': {demangle.KindProtocol, "MutableCollection"},
	'm': {demangle.KindProtocol, "RangeReplaceableCollection"},
	'N': {demangle.KindStructure, "ClosedRange"},
	'n': {demangle.KindStructure, "Range"},
	'O': {demangle.KindStructure, "ObjectIdentifier"},
	'P': {demangle.KindStructure, "UnsafePointer"},
	'p': {demangle.KindStructure, "UnsafeMutablePointer"},
	'Q': {demangle.KindProtocol, "Equatable"},
	'q': {demangle.KindEnum, "Optional"},
	'R': {demangle.KindStructure, "UnsafeBufferPointer"},
	'r': {demangle.KindStructure, "UnsafeMutableBufferPointer"},
	'S': {demangle.KindStructure, "String"},
	's': {demangle.KindStructure, "Substring"},
	'T': {demangle.KindProtocol, "Sequence"},
	't': {demangle.KindProtocol, "IteratorProtocol"},
	'U': {demangle.KindProtocol, "UnsignedInteger"},
	'u': {demangle.KindStructure, "UInt"},
	'V': {demangle.KindStructure, "UnsafeRawPointer"},
	'v': {demangle.KindStructure, "UnsafeMutableRawPointer"},
	'W': {demangle.KindStructure, "UnsafeRawBufferPointer"},
	'w': {demangle.KindStructure, "UnsafeMutableRawBufferPointer"},
	'X': {demangle.KindProtocol, "RangeExpression"},
	'x': {demangle.KindProtocol, "Strideable"},
	'Y': {demangle.KindProtocol, "RawRepresentable"},
	'y': {demangle.KindProtocol, "StringProtocol"},
	'Z': {demangle.KindProtocol, "SignedInteger"},
	'z': {demangle.KindProtocol, "BinaryInteger"},
}

// builtinTypes maps the character after 'B' to a Builtin type name.
var builtinTypes = map[byte]string{
	'b': "Builtin.BridgeObject",
	'B': "Builtin.UnsafeValueBuffer",
	'D': "Builtin.DefaultActorStorage",
	'e': "Builtin.Executor",
	'j': "Builtin.Job",
	'O': "Builtin.UnknownObject",
	'o': "Builtin.NativeObject",
	'p': "Builtin.RawPointer",
	't': "Builtin.SILToken",
	'w': "Builtin.Word",
}

// swiftType builds Type(kind(Module "Swift", Identifier name)).
func swiftType(kind demangle.Kind, name string) *demangle.Node {
	return demangle.NewNode(demangle.KindType,
		demangle.NewNode(kind,
			demangle.NewText(demangle.KindModule, stdlibModuleName),
			demangle.NewText(demangle.KindIdentifier, name),
		),
	)
}

// boundGenericKinds maps a nominal kind to the kind of its specialization.
var boundGenericKinds = map[demangle.Kind]demangle.Kind{
	demangle.KindClass:                 demangle.KindBoundGenericClass,
	demangle.KindEnum:                  demangle.KindBoundGenericEnum,
	demangle.KindStructure:             demangle.KindBoundGenericStructure,
	demangle.KindProtocol:              demangle.KindBoundGenericProtocol,
	demangle.KindOtherNominalType:      demangle.KindBoundGenericOtherNominalType,
	demangle.KindTypeAlias:             demangle.KindBoundGenericTypeAlias,
	demangle.KindTypeSymbolicReference: demangle.KindBoundGenericOtherNominalType,
}

// accessorKinds maps the character after a 'v' variable entity to the
// accessor wrapping it. 'p' names the property itself.
var accessorKinds = map[byte]demangle.Kind{
	'g': demangle.KindGetter,
	's': demangle.KindSetter,
	'G': demangle.KindGlobalGetter,
	'M': demangle.KindModifyAccessor,
	'x': demangle.KindModify2Accessor,
	'r': demangle.KindReadAccessor,
	'y': demangle.KindRead2Accessor,
	'i': demangle.KindInitAccessor,
	'm': demangle.KindMaterializeForSet,
	'w': demangle.KindWillSet,
	'W': demangle.KindDidSet,
}

// addressorKinds maps "a?" and "l?" accessor suffixes.
var addressorKinds = map[string]demangle.Kind{
	"aO": demangle.KindOwningMutableAddressor,
	"ao": demangle.KindNativeOwningMutableAddressor,
	"aP": demangle.KindNativePinningMutableAddressor,
	"au": demangle.KindUnsafeMutableAddressor,
	"lO": demangle.KindOwningAddressor,
	"lo": demangle.KindNativeOwningAddressor,
	"lp": demangle.KindNativePinningAddressor,
	"lu": demangle.KindUnsafeAddressor,
}
