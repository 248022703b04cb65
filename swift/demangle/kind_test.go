package demangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindNamesRoundTrip(t *testing.T) {
	seen := map[string]Kind{}
	for _, k := range Kinds() {
		name := k.String()
		require.NotEmpty(t, name, "kind %d has no name", uint16(k))
		if prev, dup := seen[name]; dup {
			t.Fatalf("kinds %d and %d share name %q", prev, k, name)
		}
		seen[name] = k

		got, ok := KindFromString(name)
		require.True(t, ok, name)
		assert.Equal(t, k, got)
	}
	assert.Len(t, seen, int(numKinds)-1)
	assert.Greater(t, len(seen), 300)
}

func TestKindStringSpotChecks(t *testing.T) {
	assert.Equal(t, "Structure", KindStructure.String())
	assert.Equal(t, "BoundGenericStructure", KindBoundGenericStructure.String())
	assert.Equal(t, "ProtocolListWithAnyObject", KindProtocolListWithAnyObject.String())
	assert.Equal(t, "Deallocator", KindDeallocator.String())
	assert.Equal(t, "DeclContext", KindDeclContext.String())
	assert.Equal(t, "Unknown", KindUnknown.String())
	assert.Equal(t, "Kind(65000)", Kind(65000).String())

	_, ok := KindFromString("NotAKind")
	assert.False(t, ok)
	_, ok = KindFromString("Unknown")
	assert.False(t, ok, "the zero kind is not a production")
}

func TestKindSets(t *testing.T) {
	cases := []struct {
		kind                                                     Kind
		context, generic, declName, req, funcAttr, macro, entity bool
	}{
		{kind: KindStructure, context: true, generic: true, entity: true},
		{kind: KindModule, context: true, entity: true},
		{kind: KindDeallocator, context: true, entity: true},
		{kind: KindIsolatedDeallocator, context: true, entity: true},
		{kind: KindDestructor, context: true, entity: true},
		{kind: KindType, entity: true},
		{kind: KindIdentifier, declName: true},
		{kind: KindTypeSymbolicReference, context: true, generic: true, declName: true, entity: true},
		{kind: KindBuiltinTupleType, generic: true},
		{kind: KindDependentGenericSameTypeRequirement, req: true},
		{kind: KindGenericSpecialization, funcAttr: true},
		{kind: KindMergedFunction, funcAttr: true},
		{kind: KindFreestandingMacroExpansion, context: true, macro: true, entity: true},
		{kind: KindMacroExpansionLoc, macro: true},
		{kind: KindTuple},
		{kind: KindUnknown},
		{kind: Kind(65000)},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.context, tc.kind.IsContext(), "IsContext")
			assert.Equal(t, tc.generic, tc.kind.IsAnyGeneric(), "IsAnyGeneric")
			assert.Equal(t, tc.declName, tc.kind.IsDeclName(), "IsDeclName")
			assert.Equal(t, tc.req, tc.kind.IsRequirement(), "IsRequirement")
			assert.Equal(t, tc.funcAttr, tc.kind.IsFunctionAttr(), "IsFunctionAttr")
			assert.Equal(t, tc.macro, tc.kind.IsMacroExpansion(), "IsMacroExpansion")
			assert.Equal(t, tc.entity, tc.kind.IsEntity(), "IsEntity")
		})
	}
}

func TestKindSetListsAreValid(t *testing.T) {
	for _, list := range [][]Kind{contextKinds, anyGenericKinds, declNameKinds, requirementKinds, functionAttrKinds, macroExpansionKinds} {
		for _, k := range list {
			assert.True(t, k.Valid(), "%d", uint16(k))
		}
	}
	// every attached or freestanding expansion is also a context
	for _, k := range macroExpansionKinds {
		if k == KindMacroExpansionLoc {
			continue
		}
		assert.True(t, k.IsContext(), k.String())
	}
}
