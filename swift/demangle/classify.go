package demangle

// The predicates in this file answer grammar questions a renderer needs
// while walking a tree. None of them fail: a nil node or a node missing the
// children a rule inspects simply does not match.

// child returns the i'th child or nil.
func (n *Node) child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// unwrapType looks through a single Type wrapper.
func unwrapType(n *Node) *Node {
	if n.Kind() == KindType {
		return n.child(0)
	}
	return n
}

// IsSimpleType reports whether n renders as a single atomic type, i.e. it
// never needs parentheses when printed next to another type.
func IsSimpleType(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.kind {
	case KindAssociatedType,
		KindAssociatedTypeRef,
		KindBoundGenericClass,
		KindBoundGenericEnum,
		KindBoundGenericFunction,
		KindBoundGenericOtherNominalType,
		KindBoundGenericProtocol,
		KindBoundGenericStructure,
		KindBoundGenericTypeAlias,
		KindBuiltinFixedArray,
		KindBuiltinTupleType,
		KindBuiltinTypeName,
		KindClass,
		KindConstrainedExistentialRequirementList,
		KindConstrainedExistentialSelf,
		KindDependentGenericParamType,
		KindDependentGenericType,
		KindDependentMemberType,
		KindDynamicSelf,
		KindEnum,
		KindErrorType,
		KindExistentialMetatype,
		KindInteger,
		KindLabelList,
		KindMetatype,
		KindMetatypeRepresentation,
		KindModule,
		KindNegativeInteger,
		KindOtherNominalType,
		KindPack,
		KindProtocol,
		KindProtocolSymbolicReference,
		KindReturnType,
		KindSILBoxType,
		KindSILBoxTypeWithLayout,
		KindSILPackDirect,
		KindSILPackIndirect,
		KindStructure,
		KindSugaredArray,
		KindSugaredDictionary,
		KindSugaredInlineArray,
		KindSugaredOptional,
		KindSugaredParen,
		KindTuple,
		KindTupleElementName,
		KindTypeAlias,
		KindTypeList,
		KindTypeSymbolicReference:
		return true
	case KindType:
		return IsSimpleType(n.child(0))
	case KindProtocolList:
		// ProtocolList > TypeList > protocols
		list := n.child(0)
		return list != nil && len(list.children) <= 1
	case KindProtocolListWithAnyObject:
		// ProtocolListWithAnyObject > ProtocolList > TypeList > protocols
		list := n.child(0).child(0)
		return list != nil && len(list.children) == 0
	default:
		return false
	}
}

// IsNeedSpaceBeforeType reports whether a renderer should put a space
// between a preceding token and n. Function types and dependent generic
// types start with their own punctuation.
func IsNeedSpaceBeforeType(n *Node) bool {
	switch unwrapType(n).Kind() {
	case KindFunctionType,
		KindNoEscapeFunctionType,
		KindUncurriedFunctionType,
		KindDependentGenericType:
		return false
	}
	return true
}

func IsExistentialType(n *Node) bool {
	switch n.Kind() {
	case KindExistentialMetatype,
		KindProtocolList,
		KindProtocolListWithAnyObject,
		KindProtocolListWithClass:
		return true
	}
	return false
}

func IsClassType(n *Node) bool {
	return n.Kind() == KindClass
}

func IsAlias(n *Node) bool {
	return unwrapType(n).Kind() == KindTypeAlias
}

func IsClass(n *Node) bool {
	switch unwrapType(n).Kind() {
	case KindClass, KindBoundGenericClass:
		return true
	}
	return false
}

func IsEnum(n *Node) bool {
	switch unwrapType(n).Kind() {
	case KindEnum, KindBoundGenericEnum:
		return true
	}
	return false
}

func IsProtocol(n *Node) bool {
	switch unwrapType(n).Kind() {
	case KindProtocol,
		KindProtocolSymbolicReference,
		KindObjectiveCProtocolSymbolicReference,
		KindBoundGenericProtocol:
		return true
	}
	return false
}

func IsStruct(n *Node) bool {
	switch unwrapType(n).Kind() {
	case KindStructure, KindBoundGenericStructure:
		return true
	}
	return false
}

// IsConsumesGenericArgs reports whether generic arguments printed after n
// belong to n. Variables, subscripts, closures and initializers never take
// generic arguments of their own; they inherit the enclosing context's.
func IsConsumesGenericArgs(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.kind {
	case KindVariable,
		KindSubscript,
		KindImplicitClosure,
		KindExplicitClosure,
		KindDefaultArgumentInitializer,
		KindInitializer,
		KindPropertyWrapperBackingInitializer,
		KindPropertyWrapperInitFromProjectedValue,
		KindStatic:
		return false
	}
	return true
}

func isBoundGeneric(k Kind) bool {
	switch k {
	case KindBoundGenericClass,
		KindBoundGenericEnum,
		KindBoundGenericOtherNominalType,
		KindBoundGenericProtocol,
		KindBoundGenericStructure,
		KindBoundGenericTypeAlias:
		return true
	}
	return false
}

// isFunctionLike covers the entities whose first child is their parent
// context and whose remaining children (name, type, labels) are copied
// verbatim when unspecializing.
func isFunctionLike(k Kind) bool {
	switch k {
	case KindAllocator,
		KindConstructor,
		KindDefaultArgumentInitializer,
		KindDestructor,
		KindDidSet,
		KindExplicitClosure,
		KindFunction,
		KindGetter,
		KindImplicitClosure,
		KindInitAccessor,
		KindInitializer,
		KindModify2Accessor,
		KindModifyAccessor,
		KindPropertyWrapperBackingInitializer,
		KindPropertyWrapperInitFromProjectedValue,
		KindRead2Accessor,
		KindReadAccessor,
		KindSetter,
		KindStatic,
		KindSubscript,
		KindUnsafeAddressor,
		KindUnsafeMutableAddressor,
		KindVariable,
		KindWillSet:
		return true
	}
	return false
}

// isPlainNominal covers the nominal declarations made of a parent context
// and a name.
func isPlainNominal(k Kind) bool {
	switch k {
	case KindClass,
		KindEnum,
		KindOtherNominalType,
		KindProtocol,
		KindStructure,
		KindTypeAlias:
		return true
	}
	return false
}

// IsSpecialized reports whether n, or the context it is nested in, is a
// generic declaration bound to concrete arguments. A constrained existential
// (any P<Int>) always counts, though Unspecialized does not accept it.
func IsSpecialized(n *Node) bool {
	if n == nil {
		return false
	}
	switch k := n.kind; {
	case isBoundGeneric(k), k == KindBoundGenericFunction, k == KindConstrainedExistential:
		return true
	case isPlainNominal(k), isFunctionLike(k):
		return IsSpecialized(n.child(0))
	case k == KindExtension:
		return IsSpecialized(n.child(1))
	}
	return false
}
