package demangle

import "strconv"

// Kind identifies which grammar production a Node instantiates. The set of
// kinds is closed; membership in the semantic groupings is answered by the
// tables in kind_sets.go.
type Kind uint16

const (
	// KindUnknown is the zero Kind. Parsers never produce it.
	KindUnknown Kind = iota

	KindAccessibleFunctionRecord
	KindAccessorAttachedMacroExpansion
	KindAccessorFunctionReference
	KindAllocator
	KindAnonymousContext
	KindAnonymousDescriptor
	KindAnyProtocolConformanceList
	KindArgumentTuple
	KindAssociatedConformanceDescriptor
	KindAssociatedType
	KindAssociatedTypeDescriptor
	KindAssociatedTypeGenericParamRef
	KindAssociatedTypeMetadataAccessor
	KindAssociatedTypeRef
	KindAssocTypePath
	KindAsyncAnnotation
	KindAsyncAwaitResumePartialFunction
	KindAsyncFunctionPointer
	KindAsyncRemoved
	KindAsyncSuspendResumePartialFunction
	KindAutoClosureType
	KindAutoDiffDerivativeVTableThunk
	KindAutoDiffFunction
	KindAutoDiffFunctionKind
	KindAutoDiffSelfReorderingReabstractionThunk
	KindAutoDiffSubsetParametersThunk
	KindBackDeploymentFallback
	KindBackDeploymentThunk
	KindBaseConformanceDescriptor
	KindBaseWitnessTableAccessor
	KindBodyAttachedMacroExpansion
	KindBoundGenericClass
	KindBoundGenericEnum
	KindBoundGenericFunction
	KindBoundGenericOtherNominalType
	KindBoundGenericProtocol
	KindBoundGenericStructure
	KindBoundGenericTypeAlias
	KindBuiltinFixedArray
	KindBuiltinTupleType
	KindBuiltinTypeName
	KindCanonicalPrespecializedGenericTypeCachingOnceToken
	KindCanonicalSpecializedGenericMetaclass
	KindCanonicalSpecializedGenericTypeMetadataAccessFunction
	KindCFunctionPointer
	KindClangType
	KindClass
	KindClassMetadataBaseOffset
	KindCompileTimeConst
	KindConcreteProtocolConformance
	KindConcurrentFunctionType
	KindConformanceAttachedMacroExpansion
	KindConstrainedExistential
	KindConstrainedExistentialRequirementList
	KindConstrainedExistentialSelf
	KindConstructor
	KindCoroutineContinuationPrototype
	KindCurryThunk
	KindDeallocator
	KindDeclContext
	KindDefaultArgumentInitializer
	KindDefaultAssociatedConformanceAccessor
	KindDefaultAssociatedTypeMetadataAccessor
	KindDependentAssociatedConformance
	KindDependentAssociatedTypeRef
	KindDependentGenericConformanceRequirement
	KindDependentGenericInverseConformanceRequirement
	KindDependentGenericLayoutRequirement
	KindDependentGenericParamCount
	KindDependentGenericParamPackMarker
	KindDependentGenericParamType
	KindDependentGenericParamValueMarker
	KindDependentGenericSameShapeRequirement
	KindDependentGenericSameTypeRequirement
	KindDependentGenericSignature
	KindDependentGenericType
	KindDependentMemberType
	KindDependentProtocolConformanceAssociated
	KindDependentProtocolConformanceInherited
	KindDependentProtocolConformanceOpaque
	KindDependentProtocolConformanceRoot
	KindDependentPseudogenericSignature
	KindDestructor
	KindDidSet
	KindDifferentiabilityWitness
	KindDifferentiableFunctionType
	KindDirectMethodReferenceAttribute
	KindDirectness
	KindDispatchThunk
	KindDistributedAccessor
	KindDistributedThunk
	KindDroppedArgument
	KindDynamicallyReplaceableFunctionImpl
	KindDynamicallyReplaceableFunctionKey
	KindDynamicallyReplaceableFunctionVar
	KindDynamicAttribute
	KindDynamicSelf
	KindEmptyList
	KindEnum
	KindEnumCase
	KindErrorType
	KindEscapingAutoClosureType
	KindEscapingObjCBlock
	KindExistentialMetatype
	KindExplicitClosure
	KindExtendedExistentialTypeShape
	KindExtension
	KindExtensionAttachedMacroExpansion
	KindExtensionDescriptor
	KindFieldOffset
	KindFirstElementMarker
	KindFreestandingMacroExpansion
	KindFullObjCResilientClassStub
	KindFullTypeMetadata
	KindFunction
	KindFunctionSignatureSpecialization
	KindFunctionSignatureSpecializationParam
	KindFunctionSignatureSpecializationParamKind
	KindFunctionSignatureSpecializationParamPayload
	KindFunctionSignatureSpecializationReturn
	KindFunctionType
	KindGenericPartialSpecialization
	KindGenericPartialSpecializationNotReAbstracted
	KindGenericProtocolWitnessTable
	KindGenericProtocolWitnessTableInstantiationFunction
	KindGenericSpecialization
	KindGenericSpecializationInResilienceDomain
	KindGenericSpecializationNotReAbstracted
	KindGenericSpecializationParam
	KindGenericSpecializationPrespecialized
	KindGenericTypeMetadataPattern
	KindGenericTypeParamDecl
	KindGetter
	KindGlobal
	KindGlobalActorFunctionType
	KindGlobalGetter
	KindGlobalVariableOnceDeclList
	KindGlobalVariableOnceFunction
	KindGlobalVariableOnceToken
	KindHasSymbolQuery
	KindIdentifier
	KindImplConvention
	KindImplCoroutineKind
	KindImplDifferentiabilityKind
	KindImplErasedIsolation
	KindImplErrorResult
	KindImplEscaping
	KindImplFunctionAttribute
	KindImplFunctionConvention
	KindImplFunctionConventionName
	KindImplFunctionType
	KindImplicitClosure
	KindImplInvocationSubstitutions
	KindImplParameter
	KindImplParameterIsolated
	KindImplParameterResultDifferentiability
	KindImplParameterSending
	KindImplPatternSubstitutions
	KindImplResult
	KindImplSendingResult
	KindImplYield
	KindIndex
	KindIndexSubset
	KindInfixOperator
	KindInitAccessor
	KindInitializer
	KindInlinedGenericFunction
	KindInOut
	KindInteger
	KindIsolated
	KindIsolatedAnyFunctionType
	KindIsolatedDeallocator
	KindIsSerialized
	KindIVarDestroyer
	KindIVarInitializer
	KindKeyPathEqualsThunkHelper
	KindKeyPathGetterThunkHelper
	KindKeyPathHashThunkHelper
	KindKeyPathSetterThunkHelper
	KindLabelList
	KindLazyProtocolWitnessTableAccessor
	KindLazyProtocolWitnessTableCacheVariable
	KindLocalDeclName
	KindMacro
	KindMacroExpansionLoc
	KindMacroExpansionUniqueName
	KindMaterializeForSet
	KindMemberAttachedMacroExpansion
	KindMemberAttributeAttachedMacroExpansion
	KindMergedFunction
	KindMetaclass
	KindMetadataInstantiationCache
	KindMetatype
	KindMetatypeRepresentation
	KindMethodDescriptor
	KindMethodLookupFunction
	KindModify2Accessor
	KindModifyAccessor
	KindModule
	KindModuleDescriptor
	KindNativeOwningAddressor
	KindNativeOwningMutableAddressor
	KindNativePinningAddressor
	KindNativePinningMutableAddressor
	KindNegativeInteger
	KindNoDerivative
	KindNoEscapeFunctionType
	KindNominalTypeDescriptor
	KindNominalTypeDescriptorRecord
	KindNoncanonicalSpecializedGenericTypeMetadata
	KindNoncanonicalSpecializedGenericTypeMetadataCache
	KindNonIsolatedCallerFunctionType
	KindNonObjCAttribute
	KindNonUniqueExtendedExistentialTypeShapeSymbolicReference
	KindNumber
	KindObjCAsyncCompletionHandlerImpl
	KindObjCAttribute
	KindObjCBlock
	KindObjCMetadataUpdateFunction
	KindObjCResilientClassStub
	KindObjectiveCProtocolSymbolicReference
	KindOpaqueReturnType
	KindOpaqueReturnTypeIndex
	KindOpaqueReturnTypeOf
	KindOpaqueReturnTypeParent
	KindOpaqueType
	KindOpaqueTypeDescriptor
	KindOpaqueTypeDescriptorAccessor
	KindOpaqueTypeDescriptorAccessorImpl
	KindOpaqueTypeDescriptorAccessorKey
	KindOpaqueTypeDescriptorAccessorVar
	KindOpaqueTypeDescriptorRecord
	KindOpaqueTypeDescriptorSymbolicReference
	KindOtherNominalType
	KindOutlinedAssignWithCopy
	KindOutlinedAssignWithTake
	KindOutlinedBridgedMethod
	KindOutlinedConsume
	KindOutlinedCopy
	KindOutlinedDestroy
	KindOutlinedEnumGetTag
	KindOutlinedEnumProjectDataForLoad
	KindOutlinedEnumTagStore
	KindOutlinedInitializeWithCopy
	KindOutlinedInitializeWithTake
	KindOutlinedReadOnlyObject
	KindOutlinedRelease
	KindOutlinedRetain
	KindOutlinedVariable
	KindOwned
	KindOwningAddressor
	KindOwningMutableAddressor
	KindPack
	KindPackElement
	KindPackElementLevel
	KindPackExpansion
	KindPackProtocolConformance
	KindPartialApplyForwarder
	KindPartialApplyObjCForwarder
	KindPeerAttachedMacroExpansion
	KindPostfixOperator
	KindPreambleAttachedMacroExpansion
	KindPredefinedObjCAsyncCompletionHandlerImpl
	KindPrefixOperator
	KindPrivateDeclName
	KindPropertyDescriptor
	KindPropertyWrapperBackingInitializer
	KindPropertyWrapperInitFromProjectedValue
	KindProtocol
	KindProtocolConformance
	KindProtocolConformanceDescriptor
	KindProtocolConformanceDescriptorRecord
	KindProtocolConformanceRefInOtherModule
	KindProtocolConformanceRefInProtocolModule
	KindProtocolConformanceRefInTypeModule
	KindProtocolDescriptor
	KindProtocolDescriptorRecord
	KindProtocolList
	KindProtocolListWithAnyObject
	KindProtocolListWithClass
	KindProtocolRequirementsBaseDescriptor
	KindProtocolSelfConformanceDescriptor
	KindProtocolSelfConformanceWitness
	KindProtocolSelfConformanceWitnessTable
	KindProtocolSymbolicReference
	KindProtocolWitness
	KindProtocolWitnessTable
	KindProtocolWitnessTableAccessor
	KindProtocolWitnessTablePattern
	KindReabstractionThunk
	KindReabstractionThunkHelper
	KindReabstractionThunkHelperWithGlobalActor
	KindReabstractionThunkHelperWithSelf
	KindRead2Accessor
	KindReadAccessor
	KindReflectionMetadataAssocTypeDescriptor
	KindReflectionMetadataBuiltinDescriptor
	KindReflectionMetadataFieldDescriptor
	KindReflectionMetadataSuperclassDescriptor
	KindRelatedEntityDeclName
	KindResilientProtocolWitnessTable
	KindRetroactiveConformance
	KindReturnType
	KindSending
	KindSendingResultFunctionType
	KindSetter
	KindShared
	KindSILBoxImmutableField
	KindSILBoxLayout
	KindSILBoxMutableField
	KindSILBoxType
	KindSILBoxTypeWithLayout
	KindSILPackDirect
	KindSILPackIndirect
	KindSILThunkHopToMainActorIfNeeded
	KindSILThunkIdentity
	KindSpecializationPassID
	KindStatic
	KindStructure
	KindSubscript
	KindSuffix
	KindSugaredArray
	KindSugaredDictionary
	KindSugaredInlineArray
	KindSugaredOptional
	KindSugaredParen
	KindSymbolicExtendedExistentialType
	KindThinFunctionType
	KindThrowsAnnotation
	KindTuple
	KindTupleElement
	KindTupleElementName
	KindType
	KindTypeAlias
	KindTypedThrowsAnnotation
	KindTypeList
	KindTypeMangling
	KindTypeMetadata
	KindTypeMetadataAccessFunction
	KindTypeMetadataCompletionFunction
	KindTypeMetadataDemanglingCache
	KindTypeMetadataInstantiationCache
	KindTypeMetadataInstantiationFunction
	KindTypeMetadataLazyCache
	KindTypeMetadataSingletonInitializationCache
	KindTypeSymbolicReference
	KindUncurriedFunctionType
	KindUniquable
	KindUniqueExtendedExistentialTypeShapeSymbolicReference
	KindUnknownIndex
	KindUnmanaged
	KindUnowned
	KindUnsafeAddressor
	KindUnsafeMutableAddressor
	KindValueWitness
	KindValueWitnessTable
	KindVariable
	KindVariadicMarker
	KindVTableAttribute
	KindVTableThunk
	KindWeak
	KindWillSet

	numKinds
)

// kindNames is indexed by Kind and must follow the order of the const block.
var kindNames = [numKinds]string{
	"Unknown",
	"AccessibleFunctionRecord",
	"AccessorAttachedMacroExpansion",
	"AccessorFunctionReference",
	"Allocator",
	"AnonymousContext",
	"AnonymousDescriptor",
	"AnyProtocolConformanceList",
	"ArgumentTuple",
	"AssociatedConformanceDescriptor",
	"AssociatedType",
	"AssociatedTypeDescriptor",
	"AssociatedTypeGenericParamRef",
	"AssociatedTypeMetadataAccessor",
	"AssociatedTypeRef",
	"AssocTypePath",
	"AsyncAnnotation",
	"AsyncAwaitResumePartialFunction",
	"AsyncFunctionPointer",
	"AsyncRemoved",
	"AsyncSuspendResumePartialFunction",
	"AutoClosureType",
	"AutoDiffDerivativeVTableThunk",
	"AutoDiffFunction",
	"AutoDiffFunctionKind",
	"AutoDiffSelfReorderingReabstractionThunk",
	"AutoDiffSubsetParametersThunk",
	"BackDeploymentFallback",
	"BackDeploymentThunk",
	"BaseConformanceDescriptor",
	"BaseWitnessTableAccessor",
	"BodyAttachedMacroExpansion",
	"BoundGenericClass",
	"BoundGenericEnum",
	"BoundGenericFunction",
	"BoundGenericOtherNominalType",
	"BoundGenericProtocol",
	"BoundGenericStructure",
	"BoundGenericTypeAlias",
	"BuiltinFixedArray",
	"BuiltinTupleType",
	"BuiltinTypeName",
	"CanonicalPrespecializedGenericTypeCachingOnceToken",
	"CanonicalSpecializedGenericMetaclass",
	"CanonicalSpecializedGenericTypeMetadataAccessFunction",
	"CFunctionPointer",
	"ClangType",
	"Class",
	"ClassMetadataBaseOffset",
	"CompileTimeConst",
	"ConcreteProtocolConformance",
	"ConcurrentFunctionType",
	"ConformanceAttachedMacroExpansion",
	"ConstrainedExistential",
	"ConstrainedExistentialRequirementList",
	"ConstrainedExistentialSelf",
	"Constructor",
	"CoroutineContinuationPrototype",
	"CurryThunk",
	"Deallocator",
	"DeclContext",
	"DefaultArgumentInitializer",
	"DefaultAssociatedConformanceAccessor",
	"DefaultAssociatedTypeMetadataAccessor",
	"DependentAssociatedConformance",
	"DependentAssociatedTypeRef",
	"DependentGenericConformanceRequirement",
	"DependentGenericInverseConformanceRequirement",
	"DependentGenericLayoutRequirement",
	"DependentGenericParamCount",
	"DependentGenericParamPackMarker",
	"DependentGenericParamType",
	"DependentGenericParamValueMarker",
	"DependentGenericSameShapeRequirement",
	"DependentGenericSameTypeRequirement",
	"DependentGenericSignature",
	"DependentGenericType",
	"DependentMemberType",
	"DependentProtocolConformanceAssociated",
	"DependentProtocolConformanceInherited",
	"DependentProtocolConformanceOpaque",
	"DependentProtocolConformanceRoot",
	"DependentPseudogenericSignature",
	"Destructor",
	"DidSet",
	"DifferentiabilityWitness",
	"DifferentiableFunctionType",
	"DirectMethodReferenceAttribute",
	"Directness",
	"DispatchThunk",
	"DistributedAccessor",
	"DistributedThunk",
	"DroppedArgument",
	"DynamicallyReplaceableFunctionImpl",
	"DynamicallyReplaceableFunctionKey",
	"DynamicallyReplaceableFunctionVar",
	"DynamicAttribute",
	"DynamicSelf",
	"EmptyList",
	"Enum",
	"EnumCase",
	"ErrorType",
	"EscapingAutoClosureType",
	"EscapingObjCBlock",
	"ExistentialMetatype",
	"ExplicitClosure",
	"ExtendedExistentialTypeShape",
	"Extension",
	"ExtensionAttachedMacroExpansion",
	"ExtensionDescriptor",
	"FieldOffset",
	"FirstElementMarker",
	"FreestandingMacroExpansion",
	"FullObjCResilientClassStub",
	"FullTypeMetadata",
	"Function",
	"FunctionSignatureSpecialization",
	"FunctionSignatureSpecializationParam",
	"FunctionSignatureSpecializationParamKind",
	"FunctionSignatureSpecializationParamPayload",
	"FunctionSignatureSpecializationReturn",
	"FunctionType",
	"GenericPartialSpecialization",
	"GenericPartialSpecializationNotReAbstracted",
	"GenericProtocolWitnessTable",
	"GenericProtocolWitnessTableInstantiationFunction",
	"GenericSpecialization",
	"GenericSpecializationInResilienceDomain",
	"GenericSpecializationNotReAbstracted",
	"GenericSpecializationParam",
	"GenericSpecializationPrespecialized",
	"GenericTypeMetadataPattern",
	"GenericTypeParamDecl",
	"Getter",
	"Global",
	"GlobalActorFunctionType",
	"GlobalGetter",
	"GlobalVariableOnceDeclList",
	"GlobalVariableOnceFunction",
	"GlobalVariableOnceToken",
	"HasSymbolQuery",
	"Identifier",
	"ImplConvention",
	"ImplCoroutineKind",
	"ImplDifferentiabilityKind",
	"ImplErasedIsolation",
	"ImplErrorResult",
	"ImplEscaping",
	"ImplFunctionAttribute",
	"ImplFunctionConvention",
	"ImplFunctionConventionName",
	"ImplFunctionType",
	"ImplicitClosure",
	"ImplInvocationSubstitutions",
	"ImplParameter",
	"ImplParameterIsolated",
	"ImplParameterResultDifferentiability",
	"ImplParameterSending",
	"ImplPatternSubstitutions",
	"ImplResult",
	"ImplSendingResult",
	"ImplYield",
	"Index",
	"IndexSubset",
	"InfixOperator",
	"InitAccessor",
	"Initializer",
	"InlinedGenericFunction",
	"InOut",
	"Integer",
	"Isolated",
	"IsolatedAnyFunctionType",
	"IsolatedDeallocator",
	"IsSerialized",
	"IVarDestroyer",
	"IVarInitializer",
	"KeyPathEqualsThunkHelper",
	"KeyPathGetterThunkHelper",
	"KeyPathHashThunkHelper",
	"KeyPathSetterThunkHelper",
	"LabelList",
	"LazyProtocolWitnessTableAccessor",
	"LazyProtocolWitnessTableCacheVariable",
	"LocalDeclName",
	"Macro",
	"MacroExpansionLoc",
	"MacroExpansionUniqueName",
	"MaterializeForSet",
	"MemberAttachedMacroExpansion",
	"MemberAttributeAttachedMacroExpansion",
	"MergedFunction",
	"Metaclass",
	"MetadataInstantiationCache",
	"Metatype",
	"MetatypeRepresentation",
	"MethodDescriptor",
	"MethodLookupFunction",
	"Modify2Accessor",
	"ModifyAccessor",
	"Module",
	"ModuleDescriptor",
	"NativeOwningAddressor",
	"NativeOwningMutableAddressor",
	"NativePinningAddressor",
	"NativePinningMutableAddressor",
	"NegativeInteger",
	"NoDerivative",
	"NoEscapeFunctionType",
	"NominalTypeDescriptor",
	"NominalTypeDescriptorRecord",
	"NoncanonicalSpecializedGenericTypeMetadata",
	"NoncanonicalSpecializedGenericTypeMetadataCache",
	"NonIsolatedCallerFunctionType",
	"NonObjCAttribute",
	"NonUniqueExtendedExistentialTypeShapeSymbolicReference",
	"Number",
	"ObjCAsyncCompletionHandlerImpl",
	"ObjCAttribute",
	"ObjCBlock",
	"ObjCMetadataUpdateFunction",
	"ObjCResilientClassStub",
	"ObjectiveCProtocolSymbolicReference",
	"OpaqueReturnType",
	"OpaqueReturnTypeIndex",
	"OpaqueReturnTypeOf",
	"OpaqueReturnTypeParent",
	"OpaqueType",
	"OpaqueTypeDescriptor",
	"OpaqueTypeDescriptorAccessor",
	"OpaqueTypeDescriptorAccessorImpl",
	"OpaqueTypeDescriptorAccessorKey",
	"OpaqueTypeDescriptorAccessorVar",
	"OpaqueTypeDescriptorRecord",
	"OpaqueTypeDescriptorSymbolicReference",
	"OtherNominalType",
	"OutlinedAssignWithCopy",
	"OutlinedAssignWithTake",
	"OutlinedBridgedMethod",
	"OutlinedConsume",
	"OutlinedCopy",
	"OutlinedDestroy",
	"OutlinedEnumGetTag",
	"OutlinedEnumProjectDataForLoad",
	"OutlinedEnumTagStore",
	"OutlinedInitializeWithCopy",
	"OutlinedInitializeWithTake",
	"OutlinedReadOnlyObject",
	"OutlinedRelease",
	"OutlinedRetain",
	"OutlinedVariable",
	"Owned",
	"OwningAddressor",
	"OwningMutableAddressor",
	"Pack",
	"PackElement",
	"PackElementLevel",
	"PackExpansion",
	"PackProtocolConformance",
	"PartialApplyForwarder",
	"PartialApplyObjCForwarder",
	"PeerAttachedMacroExpansion",
	"PostfixOperator",
	"PreambleAttachedMacroExpansion",
	"PredefinedObjCAsyncCompletionHandlerImpl",
	"PrefixOperator",
	"PrivateDeclName",
	"PropertyDescriptor",
	"PropertyWrapperBackingInitializer",
	"PropertyWrapperInitFromProjectedValue",
	"Protocol",
	"ProtocolConformance",
	"ProtocolConformanceDescriptor",
	"ProtocolConformanceDescriptorRecord",
	"ProtocolConformanceRefInOtherModule",
	"ProtocolConformanceRefInProtocolModule",
	"ProtocolConformanceRefInTypeModule",
	"ProtocolDescriptor",
	"ProtocolDescriptorRecord",
	"ProtocolList",
	"ProtocolListWithAnyObject",
	"ProtocolListWithClass",
	"ProtocolRequirementsBaseDescriptor",
	"ProtocolSelfConformanceDescriptor",
	"ProtocolSelfConformanceWitness",
	"ProtocolSelfConformanceWitnessTable",
	"ProtocolSymbolicReference",
	"ProtocolWitness",
	"ProtocolWitnessTable",
	"ProtocolWitnessTableAccessor",
	"ProtocolWitnessTablePattern",
	"ReabstractionThunk",
	"ReabstractionThunkHelper",
	"ReabstractionThunkHelperWithGlobalActor",
	"ReabstractionThunkHelperWithSelf",
	"Read2Accessor",
	"ReadAccessor",
	"ReflectionMetadataAssocTypeDescriptor",
	"ReflectionMetadataBuiltinDescriptor",
	"ReflectionMetadataFieldDescriptor",
	"ReflectionMetadataSuperclassDescriptor",
	"RelatedEntityDeclName",
	"ResilientProtocolWitnessTable",
	"RetroactiveConformance",
	"ReturnType",
	"Sending",
	"SendingResultFunctionType",
	"Setter",
	"Shared",
	"SILBoxImmutableField",
	"SILBoxLayout",
	"SILBoxMutableField",
	"SILBoxType",
	"SILBoxTypeWithLayout",
	"SILPackDirect",
	"SILPackIndirect",
	"SILThunkHopToMainActorIfNeeded",
	"SILThunkIdentity",
	"SpecializationPassID",
	"Static",
	"Structure",
	"Subscript",
	"Suffix",
	"SugaredArray",
	"SugaredDictionary",
	"SugaredInlineArray",
	"SugaredOptional",
	"SugaredParen",
	"SymbolicExtendedExistentialType",
	"ThinFunctionType",
	"ThrowsAnnotation",
	"Tuple",
	"TupleElement",
	"TupleElementName",
	"Type",
	"TypeAlias",
	"TypedThrowsAnnotation",
	"TypeList",
	"TypeMangling",
	"TypeMetadata",
	"TypeMetadataAccessFunction",
	"TypeMetadataCompletionFunction",
	"TypeMetadataDemanglingCache",
	"TypeMetadataInstantiationCache",
	"TypeMetadataInstantiationFunction",
	"TypeMetadataLazyCache",
	"TypeMetadataSingletonInitializationCache",
	"TypeSymbolicReference",
	"UncurriedFunctionType",
	"Uniquable",
	"UniqueExtendedExistentialTypeShapeSymbolicReference",
	"UnknownIndex",
	"Unmanaged",
	"Unowned",
	"UnsafeAddressor",
	"UnsafeMutableAddressor",
	"ValueWitness",
	"ValueWitnessTable",
	"Variable",
	"VariadicMarker",
	"VTableAttribute",
	"VTableThunk",
	"Weak",
	"WillSet",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k := Kind(1); k < numKinds; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is a grammar production known to this package.
func (k Kind) Valid() bool {
	return k > KindUnknown && k < numKinds
}

// KindFromString returns the Kind whose production name is name.
func KindFromString(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds-1)
	for k := Kind(1); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}
