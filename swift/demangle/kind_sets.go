package demangle

type kindSet uint8

const (
	setContext kindSet = 1 << iota
	setAnyGeneric
	setDeclName
	setRequirement
	setFunctionAttr
	setMacroExpansion
)

var contextKinds = []Kind{
	KindAccessorAttachedMacroExpansion,
	KindAllocator,
	KindAnonymousContext,
	KindAutoDiffFunction,
	KindBodyAttachedMacroExpansion,
	KindClass,
	KindConformanceAttachedMacroExpansion,
	KindConstructor,
	KindDeallocator,
	KindDefaultArgumentInitializer,
	KindDestructor,
	KindDidSet,
	KindEnum,
	KindExplicitClosure,
	KindExtension,
	KindExtensionAttachedMacroExpansion,
	KindFreestandingMacroExpansion,
	KindFunction,
	KindGetter,
	KindGlobalGetter,
	KindIVarDestroyer,
	KindIVarInitializer,
	KindImplicitClosure,
	KindInitAccessor,
	KindInitializer,
	KindIsolatedDeallocator,
	KindMacro,
	KindMaterializeForSet,
	KindMemberAttachedMacroExpansion,
	KindMemberAttributeAttachedMacroExpansion,
	KindModify2Accessor,
	KindModifyAccessor,
	KindModule,
	KindNativeOwningAddressor,
	KindNativeOwningMutableAddressor,
	KindNativePinningAddressor,
	KindNativePinningMutableAddressor,
	KindOpaqueReturnTypeOf,
	KindOtherNominalType,
	KindOwningAddressor,
	KindOwningMutableAddressor,
	KindPeerAttachedMacroExpansion,
	KindPreambleAttachedMacroExpansion,
	KindPropertyWrapperBackingInitializer,
	KindPropertyWrapperInitFromProjectedValue,
	KindProtocol,
	KindProtocolSymbolicReference,
	KindRead2Accessor,
	KindReadAccessor,
	KindSetter,
	KindStatic,
	KindStructure,
	KindSubscript,
	KindTypeAlias,
	KindTypeSymbolicReference,
	KindUnsafeAddressor,
	KindUnsafeMutableAddressor,
	KindVariable,
	KindWillSet,
}

var anyGenericKinds = []Kind{
	KindBuiltinTupleType,
	KindClass,
	KindEnum,
	KindObjectiveCProtocolSymbolicReference,
	KindOtherNominalType,
	KindProtocol,
	KindProtocolSymbolicReference,
	KindStructure,
	KindTypeAlias,
	KindTypeSymbolicReference,
}

var declNameKinds = []Kind{
	KindIdentifier,
	KindInfixOperator,
	KindLocalDeclName,
	KindObjectiveCProtocolSymbolicReference,
	KindPostfixOperator,
	KindPrefixOperator,
	KindPrivateDeclName,
	KindProtocolSymbolicReference,
	KindRelatedEntityDeclName,
	KindTypeSymbolicReference,
}

var requirementKinds = []Kind{
	KindDependentGenericConformanceRequirement,
	KindDependentGenericInverseConformanceRequirement,
	KindDependentGenericLayoutRequirement,
	KindDependentGenericParamPackMarker,
	KindDependentGenericParamValueMarker,
	KindDependentGenericSameShapeRequirement,
	KindDependentGenericSameTypeRequirement,
}

var functionAttrKinds = []Kind{
	KindAccessibleFunctionRecord,
	KindAsyncAwaitResumePartialFunction,
	KindAsyncFunctionPointer,
	KindAsyncSuspendResumePartialFunction,
	KindBackDeploymentFallback,
	KindBackDeploymentThunk,
	KindDirectMethodReferenceAttribute,
	KindDistributedAccessor,
	KindDistributedThunk,
	KindDynamicAttribute,
	KindDynamicallyReplaceableFunctionImpl,
	KindDynamicallyReplaceableFunctionKey,
	KindDynamicallyReplaceableFunctionVar,
	KindFunctionSignatureSpecialization,
	KindGenericPartialSpecialization,
	KindGenericPartialSpecializationNotReAbstracted,
	KindGenericSpecialization,
	KindGenericSpecializationInResilienceDomain,
	KindGenericSpecializationNotReAbstracted,
	KindGenericSpecializationPrespecialized,
	KindHasSymbolQuery,
	KindInlinedGenericFunction,
	KindMergedFunction,
	KindNonObjCAttribute,
	KindObjCAttribute,
	KindOutlinedBridgedMethod,
	KindOutlinedReadOnlyObject,
	KindOutlinedVariable,
	KindPartialApplyForwarder,
	KindPartialApplyObjCForwarder,
	KindVTableAttribute,
}

var macroExpansionKinds = []Kind{
	KindAccessorAttachedMacroExpansion,
	KindBodyAttachedMacroExpansion,
	KindConformanceAttachedMacroExpansion,
	KindExtensionAttachedMacroExpansion,
	KindFreestandingMacroExpansion,
	KindMacroExpansionLoc,
	KindMemberAttachedMacroExpansion,
	KindMemberAttributeAttachedMacroExpansion,
	KindPeerAttachedMacroExpansion,
	KindPreambleAttachedMacroExpansion,
}

var kindSets = func() (t [numKinds]kindSet) {
	mark := func(set kindSet, kinds []Kind) {
		for _, k := range kinds {
			t[k] |= set
		}
	}
	mark(setContext, contextKinds)
	mark(setAnyGeneric, anyGenericKinds)
	mark(setDeclName, declNameKinds)
	mark(setRequirement, requirementKinds)
	mark(setFunctionAttr, functionAttrKinds)
	mark(setMacroExpansion, macroExpansionKinds)
	return t
}()

func (k Kind) in(set kindSet) bool {
	return k < numKinds && kindSets[k]&set != 0
}

// IsContext reports whether k names a declaration scope that other
// entities can be nested under.
func (k Kind) IsContext() bool { return k.in(setContext) }

// IsAnyGeneric reports whether k is a nominal or symbolic type
// declaration that can carry generic parameters.
func (k Kind) IsAnyGeneric() bool { return k.in(setAnyGeneric) }

func (k Kind) IsDeclName() bool { return k.in(setDeclName) }

// IsRequirement reports whether k is a generic-signature requirement.
func (k Kind) IsRequirement() bool { return k.in(setRequirement) }

// IsFunctionAttr reports whether k is an attribute or specialization
// prefix attached to a function symbol.
func (k Kind) IsFunctionAttr() bool { return k.in(setFunctionAttr) }

func (k Kind) IsMacroExpansion() bool { return k.in(setMacroExpansion) }

// IsEntity reports whether k is the Type wrapper or any context.
func (k Kind) IsEntity() bool {
	return k == KindType || k.IsContext()
}
