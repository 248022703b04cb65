package demangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnspecializedBoundGenericStructure(t *testing.T) {
	point := NewNode(KindStructure, NewText(KindModule, "Core"), NewText(KindIdentifier, "Point"))
	want := point.Clone()
	bg := NewNode(KindBoundGenericStructure, typ(point), NewNode(KindTypeList, typ(swiftInt())))

	require.True(t, IsSpecialized(bg))
	got, err := Unspecialized(bg)
	require.NoError(t, err)
	assert.True(t, Equal(want, got), "got:\n%s", got.Dump())
	assert.Nil(t, got.Parent(), "result is detached from the input")
	assert.Same(t, bg, point.Parent().Parent(), "input is untouched")
	requireConsistent(t, got)
	requireConsistent(t, bg)
}

func TestUnspecializedNestedInBoundGeneric(t *testing.T) {
	// Swift.Dictionary<Int, Int>.Index
	dict := bound(KindBoundGenericStructure, nominal(KindStructure, "Swift", "Dictionary"), swiftInt(), swiftInt())
	index := NewNode(KindStructure, dict, ident("Index"))

	got, err := Unspecialized(index)
	require.NoError(t, err)
	want := NewNode(KindStructure, nominal(KindStructure, "Swift", "Dictionary"), ident("Index"))
	assert.True(t, Equal(want, got), "got:\n%s", got.Dump())
	assert.False(t, IsSpecialized(got))
}

func TestUnspecializedCopiesAllFunctionChildren(t *testing.T) {
	array := bound(KindBoundGenericStructure, nominal(KindStructure, "Swift", "Array"), swiftInt())
	labels := NewNode(KindLabelList, ident("x"))
	fnType := typ(NewNode(KindFunctionType, NewNode(KindArgumentTuple, typ(NewNode(KindTuple))), NewNode(KindReturnType, typ(swiftInt()))))
	fn := NewNode(KindFunction, array, ident("append"), labels, fnType)

	got, err := Unspecialized(fn)
	require.NoError(t, err)
	require.Equal(t, 4, got.NumChildren())
	assert.True(t, Equal(nominal(KindStructure, "Swift", "Array"), got.ChildOrUnknown(0)))
	assert.True(t, Equal(labels, got.ChildOrUnknown(2)))
	assert.True(t, Equal(fnType, got.ChildOrUnknown(3)))
	assert.Same(t, fn, labels.Parent(), "copied children are clones")
	requireConsistent(t, got)
}

func TestUnspecializedPlainNominalCopiesTwoChildren(t *testing.T) {
	array := bound(KindBoundGenericStructure, nominal(KindStructure, "Swift", "Array"), swiftInt())
	st := NewNode(KindStructure, array, ident("Iterator"), ident("trailing"))

	got, err := Unspecialized(st)
	require.NoError(t, err)
	assert.Equal(t, 2, got.NumChildren())
	assert.Equal(t, "Iterator", got.ChildOrUnknown(1).Text())
}

func TestUnspecializedBoundGenericFunction(t *testing.T) {
	fn := NewNode(KindFunction, module("M"), ident("f"), typ(NewNode(KindFunctionType)))
	bgf := NewNode(KindBoundGenericFunction, fn, NewNode(KindTypeList, typ(swiftInt())))

	got, err := Unspecialized(bgf)
	require.NoError(t, err)
	assert.True(t, Equal(fn, got))
	assert.NotSame(t, fn, got)

	ctor := NewNode(KindConstructor, bound(KindBoundGenericClass, nominal(KindClass, "M", "Box"), swiftInt()), typ(NewNode(KindFunctionType)))
	bgc := NewNode(KindBoundGenericFunction, ctor, NewNode(KindTypeList))
	got, err = Unspecialized(bgc)
	require.NoError(t, err)
	assert.Equal(t, KindConstructor, got.Kind())
	assert.False(t, IsSpecialized(got))

	_, err = Unspecialized(NewNode(KindBoundGenericFunction, NewNode(KindVariable)))
	assert.ErrorIs(t, err, ErrNotSpecializable)
}

func TestUnspecializedExtension(t *testing.T) {
	plain := NewNode(KindExtension, module("M"), swiftInt())
	got, err := Unspecialized(plain)
	require.NoError(t, err)
	assert.Same(t, plain, got, "an unspecialized extension is already canonical")

	sig := NewNode(KindDependentGenericSignature, NewIndex(KindDependentGenericParamCount, 1))
	ext := NewNode(KindExtension,
		module("M"),
		bound(KindBoundGenericStructure, nominal(KindStructure, "Swift", "Array"), swiftInt()),
		sig,
	)
	got, err = Unspecialized(ext)
	require.NoError(t, err)
	require.Equal(t, 3, got.NumChildren())
	assert.Equal(t, "M", got.ChildOrUnknown(0).Text())
	assert.True(t, Equal(nominal(KindStructure, "Swift", "Array"), got.ChildOrUnknown(1)))
	assert.True(t, Equal(sig, got.ChildOrUnknown(2)))
	assert.False(t, IsSpecialized(got))
	requireConsistent(t, got)

	twoChild := NewNode(KindExtension, module("M"), bound(KindBoundGenericEnum, nominal(KindEnum, "Swift", "Optional"), swiftInt()))
	got, err = Unspecialized(twoChild)
	require.NoError(t, err)
	assert.Equal(t, 2, got.NumChildren())
}

func TestUnspecializedRejectsOtherKinds(t *testing.T) {
	for _, n := range []*Node{
		nil,
		module("Swift"),
		NewNode(KindTuple),
		NewNode(KindProtocolList),
		NewNode(KindStructure, module("M")),
		NewNode(KindFunction),
		NewNode(KindBoundGenericStructure, swiftInt()),
		NewNode(KindBoundGenericStructure, NewNode(KindType)),
		NewNode(KindExtension, module("M")),
		NewNode(KindConstrainedExistential, typ(nominal(KindProtocol, "M", "P"))),
	} {
		got, err := Unspecialized(n)
		assert.ErrorIs(t, err, ErrNotSpecializable, "%s", n.Kind())
		assert.ErrorIs(t, err, ErrContractViolation)
		assert.Nil(t, got)
	}
}

func specializableFixtures() map[string]*Node {
	array := func() *Node {
		return bound(KindBoundGenericStructure, nominal(KindStructure, "Swift", "Array"), swiftInt())
	}
	return map[string]*Node{
		"Structure":     swiftInt(),
		"BoundStruct":   array(),
		"BoundClass":    bound(KindBoundGenericClass, nominal(KindClass, "M", "Box"), swiftInt()),
		"BoundAlias":    bound(KindBoundGenericTypeAlias, nominal(KindTypeAlias, "M", "Pair"), swiftInt(), swiftInt()),
		"BoundOther":    bound(KindBoundGenericOtherNominalType, nominal(KindOtherNominalType, "M", "O"), swiftInt()),
		"BoundOfBound":  bound(KindBoundGenericStructure, NewNode(KindStructure, array(), ident("Slice")), swiftInt()),
		"Nested":        NewNode(KindEnum, array(), ident("Kind")),
		"NestedProto":   NewNode(KindProtocol, array(), ident("Delegate")),
		"Method":        NewNode(KindFunction, array(), ident("f"), typ(NewNode(KindFunctionType))),
		"Variable":      NewNode(KindVariable, array(), ident("count"), typ(swiftInt())),
		"Getter":        NewNode(KindGetter, NewNode(KindVariable, array(), ident("count"), typ(swiftInt()))),
		"Closure":       NewNode(KindExplicitClosure, NewNode(KindFunction, array(), ident("g"), typ(NewNode(KindFunctionType))), NewIndex(KindNumber, 0)),
		"BoundFunction": NewNode(KindBoundGenericFunction, NewNode(KindFunction, array(), ident("h"), typ(NewNode(KindFunctionType))), NewNode(KindTypeList)),
		"Extension":     NewNode(KindExtension, module("M"), array()),
		"PlainExt":      NewNode(KindExtension, module("M"), swiftInt()),
	}
}

func TestUnspecializedIsIdempotent(t *testing.T) {
	for name, n := range specializableFixtures() {
		t.Run(name, func(t *testing.T) {
			once, err := Unspecialized(n)
			require.NoError(t, err)
			assert.False(t, IsSpecialized(once), "still specialized:\n%s", once.Dump())

			twice, err := Unspecialized(once)
			require.NoError(t, err)
			assert.True(t, Equal(once, twice), "once:\n%s\ntwice:\n%s", once.Dump(), twice.Dump())
			requireConsistent(t, twice)
		})
	}
}
