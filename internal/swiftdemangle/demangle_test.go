package swiftdemangle

import (
	"fmt"
	"testing"

	"gitlab.com/tozd/go/errors"

	"github.com/blacktop/go-swiftdemangle/swift/demangle"
)

type stubResolver struct {
	nodes map[int32]*demangle.Node
	calls []struct {
		control  byte
		offset   int32
		refIndex int
	}
}

func (s *stubResolver) ResolveType(control byte, offset int32, refIndex int) (*demangle.Node, error) {
	s.calls = append(s.calls, struct {
		control  byte
		offset   int32
		refIndex int
	}{control: control, offset: offset, refIndex: refIndex})
	if node, ok := s.nodes[offset]; ok {
		return node.Clone(), nil
	}
	return nil, fmt.Errorf("unknown symbolic reference offset %d", offset)
}

func ident(s string) *demangle.Node { return demangle.NewText(demangle.KindIdentifier, s) }

func module(s string) *demangle.Node { return demangle.NewText(demangle.KindModule, s) }

func typ(n *demangle.Node) *demangle.Node { return demangle.NewNode(demangle.KindType, n) }

func nominal(kind demangle.Kind, mod, name string) *demangle.Node {
	return demangle.NewNode(kind, module(mod), ident(name))
}

func stdlib(kind demangle.Kind, name string) *demangle.Node {
	return typ(nominal(kind, "Swift", name))
}

func swiftInt() *demangle.Node { return stdlib(demangle.KindStructure, "Int") }

func swiftString() *demangle.Node { return stdlib(demangle.KindStructure, "String") }

// bound builds kind(base, TypeList(args...)); base and args are Type nodes.
func bound(kind demangle.Kind, base *demangle.Node, args ...*demangle.Node) *demangle.Node {
	return demangle.NewNode(kind, base, demangle.NewNode(demangle.KindTypeList, args...))
}

func tuple(elems ...*demangle.Node) *demangle.Node {
	t := demangle.NewNode(demangle.KindTuple)
	for _, e := range elems {
		if err := t.AddChild(demangle.NewNode(demangle.KindTupleElement, e)); err != nil {
			panic(err)
		}
	}
	return typ(t)
}

func fnType(kind demangle.Kind, args, result *demangle.Node, attrs ...*demangle.Node) *demangle.Node {
	children := append(attrs,
		demangle.NewNode(demangle.KindArgumentTuple, args),
		demangle.NewNode(demangle.KindReturnType, result),
	)
	return typ(demangle.NewNode(kind, children...))
}

func requireTree(t *testing.T, mangled string, got, want *demangle.Node) {
	t.Helper()
	if !demangle.Equal(got, want) {
		t.Fatalf("%s: tree mismatch\ngot:\n%s\nwant:\n%s", mangled, got.Dump(), want.Dump())
	}
	if err := demangle.Validate(got); err != nil {
		t.Fatalf("%s: invalid tree: %v", mangled, err)
	}
}

func TestDemangleType(t *testing.T) {
	myType := func() *demangle.Node { return typ(nominal(demangle.KindStructure, "MyModule", "MyType")) }
	optionalInt := func() *demangle.Node {
		return typ(bound(demangle.KindBoundGenericEnum, stdlib(demangle.KindEnum, "Optional"), swiftInt()))
	}

	tests := []struct {
		mangled string
		want    *demangle.Node
	}{
		{"Si", swiftInt()},
		{"Sb", stdlib(demangle.KindStructure, "Bool")},
		{"Sq", stdlib(demangle.KindEnum, "Optional")},
		{"SH", stdlib(demangle.KindProtocol, "Hashable")},
		{"8MyModule6MyTypeV", myType()},
		{"8MyModule6MyTypeC", typ(nominal(demangle.KindClass, "MyModule", "MyType"))},
		{"8MyModule6MyTypeO", typ(nominal(demangle.KindEnum, "MyModule", "MyType"))},
		{"8MyModule6MyTypeP", typ(nominal(demangle.KindProtocol, "MyModule", "MyType"))},
		{"8MyModule6MyTypea", typ(nominal(demangle.KindTypeAlias, "MyModule", "MyType"))},
		{"8MyModule6MyTypeXY", typ(nominal(demangle.KindOtherNominalType, "MyModule", "MyType"))},
		{"So8NSObjectC", typ(nominal(demangle.KindClass, "__C", "NSObject"))},
		{"s6ResultO", typ(nominal(demangle.KindEnum, "Swift", "Result"))},
		{"8MyModule5OuterV5InnerV", typ(demangle.NewNode(demangle.KindStructure,
			nominal(demangle.KindStructure, "MyModule", "Outer"), ident("Inner")))},
		{"SaySiG", typ(bound(demangle.KindBoundGenericStructure, stdlib(demangle.KindStructure, "Array"), swiftInt()))},
		{"SDySSSiG", typ(bound(demangle.KindBoundGenericStructure, stdlib(demangle.KindStructure, "Dictionary"), swiftString(), swiftInt()))},
		{"SDyS2iG", typ(bound(demangle.KindBoundGenericStructure, stdlib(demangle.KindStructure, "Dictionary"), swiftInt(), swiftInt()))},
		{"SqySiG", optionalInt()},
		{"SiSg", optionalInt()},
		{"SaySiGSg", typ(bound(demangle.KindBoundGenericEnum, stdlib(demangle.KindEnum, "Optional"),
			typ(bound(demangle.KindBoundGenericStructure, stdlib(demangle.KindStructure, "Array"), swiftInt()))))},
		{"Si_SSt", tuple(swiftInt(), swiftString())},
		{"Si_t", tuple(swiftInt())},
		{"yt", tuple()},
		{"8MyModule6MyTypeV_ACt", tuple(myType(), myType())},
		{"8MyModule6MyTypeV_A2Ct", tuple(myType(), myType(), myType())},
		{"8MyModule6MyTypeV_AcCt", tuple(myType(), myType(), myType())},
		{"SiSSc", fnType(demangle.KindFunctionType, swiftString(), swiftInt())},
		{"Siyc", fnType(demangle.KindFunctionType, tuple(), swiftInt())},
		{"SSSiYaKc", fnType(demangle.KindFunctionType, swiftInt(), swiftString(),
			demangle.NewNode(demangle.KindThrowsAnnotation), demangle.NewNode(demangle.KindAsyncAnnotation))},
		{"yyXE", fnType(demangle.KindNoEscapeFunctionType, tuple(), tuple())},
		{"Sim", typ(demangle.NewNode(demangle.KindMetatype, swiftInt()))},
		{"SiXp", typ(demangle.NewNode(demangle.KindExistentialMetatype, swiftInt()))},
		{"Siz", typ(demangle.NewNode(demangle.KindInOut, nominal(demangle.KindStructure, "Swift", "Int")))},
		{"x", typ(demangle.NewNode(demangle.KindDependentGenericParamType,
			demangle.NewIndex(demangle.KindIndex, 0), demangle.NewIndex(demangle.KindIndex, 0)))},
		{"q_", typ(demangle.NewNode(demangle.KindDependentGenericParamType,
			demangle.NewIndex(demangle.KindIndex, 0), demangle.NewIndex(demangle.KindIndex, 1)))},
		{"qd__", typ(demangle.NewNode(demangle.KindDependentGenericParamType,
			demangle.NewIndex(demangle.KindIndex, 1), demangle.NewIndex(demangle.KindIndex, 0)))},
		{"Bi64_", typ(demangle.NewText(demangle.KindBuiltinTypeName, "Builtin.Int64"))},
		{"Bo", typ(demangle.NewText(demangle.KindBuiltinTypeName, "Builtin.NativeObject"))},
		{"SQ_SHp", typ(demangle.NewNode(demangle.KindProtocolList, demangle.NewNode(demangle.KindTypeList,
			stdlib(demangle.KindProtocol, "Equatable"), stdlib(demangle.KindProtocol, "Hashable"))))},
		{"yp", typ(demangle.NewNode(demangle.KindProtocolList, demangle.NewNode(demangle.KindTypeList)))},
		{"yXl", typ(demangle.NewNode(demangle.KindProtocolListWithAnyObject,
			demangle.NewNode(demangle.KindProtocolList, demangle.NewNode(demangle.KindTypeList))))},
	}

	d := New(nil)
	for _, tt := range tests {
		got, err := d.DemangleType([]byte(tt.mangled))
		if err != nil {
			t.Fatalf("DemangleType(%q) failed: %v", tt.mangled, err)
		}
		requireTree(t, tt.mangled, got, tt.want)
	}
}

func TestDemangleNestedBoundGeneric(t *testing.T) {
	// Swift.Dictionary<Int, Int>.Index
	got, err := New(nil).DemangleType([]byte("SD5IndexVySiSi_G"))
	if err != nil {
		t.Fatalf("DemangleType failed: %v", err)
	}
	dict := bound(demangle.KindBoundGenericStructure, stdlib(demangle.KindStructure, "Dictionary"), swiftInt(), swiftInt())
	want := typ(demangle.NewNode(demangle.KindStructure, dict, ident("Index")))
	requireTree(t, "SD5IndexVySiSi_G", got, want)

	index, err := got.FirstChild()
	if err != nil {
		t.Fatal(err)
	}
	if !demangle.IsSpecialized(index) {
		t.Fatalf("Dictionary<Int, Int>.Index should be specialized")
	}
	plain, err := demangle.Unspecialized(index)
	if err != nil {
		t.Fatalf("Unspecialized failed: %v", err)
	}
	wantPlain := demangle.NewNode(demangle.KindStructure, nominal(demangle.KindStructure, "Swift", "Dictionary"), ident("Index"))
	if !demangle.Equal(plain, wantPlain) {
		t.Fatalf("Unspecialized mismatch:\n%s", plain.Dump())
	}
}

func TestDemangleExtension(t *testing.T) {
	got, err := New(nil).DemangleType([]byte("Si8MyModuleE4TestV"))
	if err != nil {
		t.Fatalf("DemangleType failed: %v", err)
	}
	ext := demangle.NewNode(demangle.KindExtension, module("MyModule"), nominal(demangle.KindStructure, "Swift", "Int"))
	requireTree(t, "Si8MyModuleE4TestV", got, typ(demangle.NewNode(demangle.KindStructure, ext, ident("Test"))))
}

func TestDemangleIdentifiers(t *testing.T) {
	tests := []struct {
		mangled string
		name    string
	}{
		{"8MyModule6MyTypeV0B4ItemV", "ModuleItem"},
		{"8MyModule0a4Item0V", "MyItem"},
		{"6Cities0010mnchen_DyaV", "münchen"},
		{"6Cities0010Mnchen_DyaV", "München"},
		{"6Cities007Caf_dmaV", "Café"},
	}
	for _, tt := range tests {
		got, err := New(nil).DemangleType([]byte(tt.mangled))
		if err != nil {
			t.Fatalf("DemangleType(%q) failed: %v", tt.mangled, err)
		}
		st, err := got.FirstChild()
		if err != nil {
			t.Fatal(err)
		}
		name, err := st.LastChild()
		if err != nil {
			t.Fatal(err)
		}
		if name.Text() != tt.name {
			t.Fatalf("%s: got name %q, want %q", tt.mangled, name.Text(), tt.name)
		}
	}
}

func TestDemangleSymbolicReference(t *testing.T) {
	resolver := &stubResolver{
		nodes: map[int32]*demangle.Node{
			0x1234: nominal(demangle.KindStructure, "MyModule", "ResolvedType"),
		},
	}

	d := New(resolver)
	input := []byte{0x01, 0x34, 0x12, 0x00, 0x00}
	node, err := d.DemangleType(input)
	if err != nil {
		t.Fatalf("DemangleType failed: %v", err)
	}
	requireTree(t, "symbolic", node, typ(nominal(demangle.KindStructure, "MyModule", "ResolvedType")))
	if len(resolver.calls) != 1 {
		t.Fatalf("expected resolver to be invoked once, got %d", len(resolver.calls))
	}
	call := resolver.calls[0]
	if call.control != 0x01 {
		t.Fatalf("unexpected control %#x", call.control)
	}
	if call.offset != 0x1234 {
		t.Fatalf("unexpected offset %x", call.offset)
	}
	if call.refIndex != 1 {
		t.Fatalf("unexpected ref index %d", call.refIndex)
	}

	if _, err := d.DemangleType([]byte{0x01, 0x00, 0x01, 0x00, 0x00}); err == nil {
		t.Fatalf("expected resolver error to propagate")
	}
}

func TestDemangleSymbolicReferenceWithoutResolver(t *testing.T) {
	node, err := New(nil).DemangleType([]byte{0x02, 0x10, 0x00, 0x00, 0x00})
	if err != nil {
		t.Fatalf("DemangleType failed: %v", err)
	}
	requireTree(t, "symbolic", node, typ(demangle.NewIndex(demangle.KindTypeSymbolicReference, 17)))

	if _, err := New(nil).DemangleType([]byte{0x09, 0x10, 0x00, 0x00, 0x00}); !errors.Is(err, ErrMalformed) {
		t.Fatalf("unsupported reference kind: got %v", err)
	}
}

func TestDemangleSymbol(t *testing.T) {
	unit := func() *demangle.Node { return tuple() }
	foo := func() *demangle.Node { return nominal(demangle.KindStructure, "MyModule", "Foo") }
	hello := func() *demangle.Node {
		return demangle.NewNode(demangle.KindFunction,
			module("MyModule"), ident("hello"),
			demangle.NewNode(demangle.KindLabelList),
			fnType(demangle.KindFunctionType, unit(), unit()),
		)
	}

	tests := []struct {
		mangled string
		want    *demangle.Node
	}{
		{"$sSiD", demangle.NewNode(demangle.KindTypeMangling, swiftInt())},
		{"_$s8MyModule5helloyyF", hello()},
		{"$s8MyModule3add1a1bSiSi_SitF", demangle.NewNode(demangle.KindFunction,
			module("MyModule"), ident("add"),
			demangle.NewNode(demangle.KindLabelList, ident("a"), ident("b")),
			fnType(demangle.KindFunctionType, tuple(swiftInt(), swiftInt()), swiftInt()),
		)},
		{"$s8MyModule3addSiSi_SitF", demangle.NewNode(demangle.KindFunction,
			module("MyModule"), ident("add"),
			fnType(demangle.KindFunctionType, tuple(swiftInt(), swiftInt()), swiftInt()),
		)},
		{"$s8MyModule3FooV3barSivg", demangle.NewNode(demangle.KindGetter,
			demangle.NewNode(demangle.KindVariable, foo(), ident("bar"), swiftInt()))},
		{"$s8MyModule3FooV3barSivM", demangle.NewNode(demangle.KindModifyAccessor,
			demangle.NewNode(demangle.KindVariable, foo(), ident("bar"), swiftInt()))},
		{"$s8MyModule3FooV3barSivau", demangle.NewNode(demangle.KindUnsafeMutableAddressor,
			demangle.NewNode(demangle.KindVariable, foo(), ident("bar"), swiftInt()))},
		{"$s8MyModule3FooVACycfC", demangle.NewNode(demangle.KindAllocator,
			foo(), fnType(demangle.KindFunctionType, unit(), typ(foo())))},
		{"$s8MyModule3FooVfd", demangle.NewNode(demangle.KindDestructor, foo())},
		{"$s8MyModule3BarCfD", demangle.NewNode(demangle.KindDeallocator,
			nominal(demangle.KindClass, "MyModule", "Bar"))},
		{"$s8MyModule5helloyyFyycfU_", demangle.NewNode(demangle.KindExplicitClosure,
			hello(), demangle.NewIndex(demangle.KindNumber, 0), fnType(demangle.KindFunctionType, unit(), unit()))},
	}

	d := New(nil)
	for _, tt := range tests {
		got, err := d.DemangleSymbol([]byte(tt.mangled))
		if err != nil {
			t.Fatalf("DemangleSymbol(%q) failed: %v", tt.mangled, err)
		}
		requireTree(t, tt.mangled, got, demangle.NewNode(demangle.KindGlobal, tt.want))
	}
}

func TestDemangleErrors(t *testing.T) {
	d := New(nil)
	for _, mangled := range []string{
		"",
		"S$",
		"5Hi",
		"AZ",
		"SiSi",
		"yG",
		"Q",
		"8MyModuleV",
		"Si_",
		"Bi0_",
		"\x01\x00",
	} {
		node, err := d.DemangleType([]byte(mangled))
		if err == nil {
			t.Fatalf("DemangleType(%q) = %s, want error", mangled, node.Dump())
		}
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("DemangleType(%q): error %v does not wrap ErrMalformed", mangled, err)
		}
	}

	if _, err := d.DemangleSymbol([]byte("Si")); !errors.Is(err, ErrMalformed) {
		t.Fatalf("symbol without prefix: got %v", err)
	}
	if _, err := d.DemangleSymbol([]byte("$s")); !errors.Is(err, ErrMalformed) {
		t.Fatalf("empty symbol: got %v", err)
	}
}

func TestDemangleDispatch(t *testing.T) {
	sym, err := Demangle("$sSiD")
	if err != nil {
		t.Fatal(err)
	}
	if sym.Kind() != demangle.KindGlobal {
		t.Fatalf("symbol: got %s", sym.Kind())
	}
	ty, err := Demangle("_SaySiG")
	if err != nil {
		t.Fatal(err)
	}
	if ty.Kind() != demangle.KindType {
		t.Fatalf("type: got %s", ty.Kind())
	}
}

func TestFindSymbols(t *testing.T) {
	got := FindSymbols("call _$s8MyModule5helloyyF then $sSiD, not Si")
	want := []string{"_$s8MyModule5helloyyF", "$sSiD"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecodeSwiftPunycode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mnchen_Dya", "münchen"},
		{"Mnchen_Dya", "München"},
		{"Caf_dma", "Café"},
	}
	for _, tt := range tests {
		got, err := decodeSwiftPunycode(tt.in)
		if err != nil {
			t.Fatalf("decodeSwiftPunycode(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("decodeSwiftPunycode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"abc_!", "abc_9", "abc_K", ""} {
		if _, err := decodeSwiftPunycode(bad); err == nil {
			t.Fatalf("decodeSwiftPunycode(%q): expected error", bad)
		}
	}
}
