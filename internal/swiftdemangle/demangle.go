package swiftdemangle

import (
	"bytes"
	"encoding/binary"
	"strconv"

	"gitlab.com/tozd/go/errors"

	"github.com/blacktop/go-swiftdemangle/swift/demangle"
)

// maxRepeatCount bounds "S<n>x" and "A<n>x" repeats.
const maxRepeatCount = 2048

var symbolPrefixes = [][]byte{
	[]byte("_$s"), []byte("$s"),
	[]byte("_$S"), []byte("$S"),
	[]byte("_$e"), []byte("$e"),
}

// Demangler owns shared state for parsing mangled strings.
type Demangler struct {
	resolver SymbolicReferenceResolver
}

// New returns a new demangler using the provided resolver.
func New(resolver SymbolicReferenceResolver) *Demangler {
	return &Demangler{resolver: resolver}
}

// DemangleType converts a bare type mangling such as "SaySiG" into its Type
// node.
func (d *Demangler) DemangleType(mangled []byte) (*demangle.Node, error) {
	if len(mangled) == 0 {
		return nil, errors.Errorf("%w: empty mangled string", ErrMalformed)
	}
	p := newParser(mangled, d.resolver)
	if err := p.run(); err != nil {
		return nil, err
	}
	if len(p.stack) != 1 || p.top().Kind() != demangle.KindType {
		return nil, p.errorf("expected a single type, have %d nodes", len(p.stack))
	}
	return p.pop(), nil
}

// DemangleSymbol converts a full symbol ("$s..." and its variants) into a
// Global node.
func (d *Demangler) DemangleSymbol(mangled []byte) (*demangle.Node, error) {
	body, ok := stripSymbolPrefix(mangled)
	if !ok {
		return nil, errors.WithDetails(
			errors.Errorf("%w: missing Swift symbol prefix", ErrMalformed),
			"symbol", string(mangled),
		)
	}
	p := newParser(body, d.resolver)
	if err := p.run(); err != nil {
		return nil, err
	}
	if len(p.stack) == 0 {
		return nil, p.errorf("symbol has no entity")
	}
	global := demangle.NewNode(demangle.KindGlobal)
	for _, n := range p.stack {
		if n.Kind() == demangle.KindType {
			inner, err := n.FirstChild()
			if err != nil {
				return nil, err
			}
			n = inner
		}
		if err := global.AddChild(n); err != nil {
			return nil, errors.Errorf("symbol: %w", err)
		}
	}
	return global, nil
}

// HasSymbolPrefix reports whether mangled starts with a Swift symbol prefix.
func HasSymbolPrefix(mangled []byte) bool {
	_, ok := stripSymbolPrefix(mangled)
	return ok
}

func stripSymbolPrefix(mangled []byte) ([]byte, bool) {
	for _, prefix := range symbolPrefixes {
		if bytes.HasPrefix(mangled, prefix) {
			return mangled[len(prefix):], true
		}
	}
	return nil, false
}

func (p *parser) run() error {
	for !p.eof() {
		start := p.pos
		n, err := p.demangleOperator()
		if err != nil {
			return err
		}
		debug("operator", "pos", start, "op", string(p.data[start:p.pos]), "kind", n.Kind().String())
		p.push(n)
	}
	return nil
}

func (p *parser) demangleOperator() (*demangle.Node, error) {
	c := p.consume()
	switch {
	case c >= 0x01 && c <= 0x17:
		return p.demangleSymbolicReference(c)
	case isDigit(c):
		p.pos--
		return p.demangleIdentifier()
	}
	switch c {
	case 'A':
		return p.demangleMultiSubstitutions()
	case 'B':
		return p.demangleBuiltinType()
	case 'C':
		return p.demangleNominalType(demangle.KindClass)
	case 'D':
		return p.wrapType(demangle.KindTypeMangling)
	case 'E':
		return p.demangleExtensionContext()
	case 'F':
		return p.demangleFunction()
	case 'G':
		return p.demangleBoundGenericType()
	case 'K':
		return demangle.NewNode(demangle.KindThrowsAnnotation), nil
	case 'O':
		return p.demangleNominalType(demangle.KindEnum)
	case 'P':
		return p.demangleNominalType(demangle.KindProtocol)
	case 'S':
		return p.demangleStandardSubstitution()
	case 'V':
		return p.demangleNominalType(demangle.KindStructure)
	case 'X':
		return p.demangleSpecialType()
	case 'Y':
		return p.demangleTypeAnnotation()
	case '_':
		return demangle.NewNode(demangle.KindFirstElementMarker), nil
	case 'a':
		return p.demangleNominalType(demangle.KindTypeAlias)
	case 'c':
		return p.popFunctionType(demangle.KindFunctionType)
	case 'd':
		return demangle.NewNode(demangle.KindVariadicMarker), nil
	case 'f':
		return p.demangleFunctionEntity()
	case 'h':
		return p.wrapTypeChild(demangle.KindShared)
	case 'm':
		return p.wrapTypeAsType(demangle.KindMetatype)
	case 'n':
		return p.wrapTypeChild(demangle.KindOwned)
	case 'p':
		return typeOf(p.demangleProtocolList())
	case 'q':
		return p.demangleGenericParamIndex()
	case 's':
		return demangle.NewText(demangle.KindModule, stdlibModuleName), nil
	case 't':
		return p.popTuple()
	case 'v':
		return p.demangleVariable()
	case 'x':
		return genericParamType(0, 0), nil
	case 'y':
		return demangle.NewNode(demangle.KindEmptyList), nil
	case 'z':
		return p.wrapTypeChild(demangle.KindInOut)
	}
	p.pos--
	return nil, p.errorf("unsupported operator %q", c)
}

// build creates kind over children. Nil children are skipped so optional
// operands can be passed straight from popOf.
func build(kind demangle.Kind, children ...*demangle.Node) (*demangle.Node, error) {
	n := demangle.NewNode(kind)
	for _, c := range children {
		if c == nil {
			continue
		}
		if err := n.AddChild(c); err != nil {
			return nil, errors.Errorf("build %s: %w", kind, err)
		}
	}
	return n, nil
}

func typeOf(n *demangle.Node, err error) (*demangle.Node, error) {
	if err != nil {
		return nil, err
	}
	return build(demangle.KindType, n)
}

func (p *parser) popType() (*demangle.Node, error) {
	if t := p.popOf(demangle.KindType); t != nil {
		return t, nil
	}
	return nil, p.errorf("expected a type, found %s", p.top().Kind())
}

// popTypeChild pops a Type node and returns the node it wraps.
func (p *parser) popTypeChild() (*demangle.Node, error) {
	t, err := p.popType()
	if err != nil {
		return nil, err
	}
	if t.NumChildren() != 1 {
		return nil, p.errorf("type node with %d children", t.NumChildren())
	}
	return t.FirstChild()
}

func (p *parser) popDeclName() (*demangle.Node, error) {
	if n := p.popKind(demangle.Kind.IsDeclName); n != nil {
		return n, nil
	}
	return nil, p.errorf("expected a declaration name, found %s", p.top().Kind())
}

// popModule turns a bare identifier into a module.
func (p *parser) popModule() *demangle.Node {
	if ident := p.popOf(demangle.KindIdentifier); ident != nil {
		return ident.Recast(demangle.KindModule)
	}
	return p.popOf(demangle.KindModule)
}

func (p *parser) popContext() (*demangle.Node, error) {
	if mod := p.popModule(); mod != nil {
		return mod, nil
	}
	if t := p.popOf(demangle.KindType); t != nil {
		child, err := t.FirstChild()
		if err != nil || t.NumChildren() != 1 || !child.Kind().IsContext() {
			return nil, p.errorf("type is not a context")
		}
		return child, nil
	}
	if ctx := p.popKind(demangle.Kind.IsContext); ctx != nil {
		return ctx, nil
	}
	return nil, p.errorf("expected a context, found %s", p.top().Kind())
}

func (p *parser) wrapType(kind demangle.Kind) (*demangle.Node, error) {
	t, err := p.popType()
	if err != nil {
		return nil, err
	}
	return build(kind, t)
}

func (p *parser) wrapTypeAsType(kind demangle.Kind) (*demangle.Node, error) {
	return typeOf(p.wrapType(kind))
}

func (p *parser) wrapTypeChild(kind demangle.Kind) (*demangle.Node, error) {
	inner, err := p.popTypeChild()
	if err != nil {
		return nil, err
	}
	return typeOf(build(kind, inner))
}

func (p *parser) demangleIdentifier() (*demangle.Node, error) {
	text, err := p.readIdentifierText()
	if err != nil {
		return nil, err
	}
	ident := demangle.NewText(demangle.KindIdentifier, text)
	p.addSubstitution(ident)
	return ident, nil
}

func (p *parser) demangleNominalType(kind demangle.Kind) (*demangle.Node, error) {
	name, err := p.popDeclName()
	if err != nil {
		return nil, err
	}
	ctx, err := p.popContext()
	if err != nil {
		return nil, err
	}
	n, err := typeOf(build(kind, ctx, name))
	if err != nil {
		return nil, err
	}
	p.addSubstitution(n)
	return n, nil
}

func (p *parser) demangleExtensionContext() (*demangle.Node, error) {
	sig := p.popOf(demangle.KindDependentGenericSignature)
	mod := p.popModule()
	if mod == nil {
		return nil, p.errorf("extension without a module")
	}
	extended, err := p.popTypeChild()
	if err != nil {
		return nil, err
	}
	if _, bound := boundKinds[extended.Kind()]; !bound && !extended.Kind().IsAnyGeneric() {
		return nil, p.errorf("cannot extend %s", extended.Kind())
	}
	return build(demangle.KindExtension, mod, extended, sig)
}

// boundKinds is the set of specialization kinds boundGenericKinds produces.
var boundKinds = func() map[demangle.Kind]struct{} {
	m := make(map[demangle.Kind]struct{}, len(boundGenericKinds))
	for _, k := range boundGenericKinds {
		m[k] = struct{}{}
	}
	return m
}()

func (p *parser) demangleBoundGenericType() (*demangle.Node, error) {
	var lists []*demangle.Node
	for {
		list := demangle.NewNode(demangle.KindTypeList)
		for t := p.popOf(demangle.KindType); t != nil; t = p.popOf(demangle.KindType) {
			if err := list.AddChild(t); err != nil {
				return nil, err
			}
		}
		list.ReverseChildren()
		lists = append(lists, list)
		if p.popOf(demangle.KindEmptyList) != nil {
			break
		}
		if p.popOf(demangle.KindFirstElementMarker) == nil {
			return nil, p.errorf("generic arguments without a list start")
		}
	}
	nominal, err := p.popTypeChild()
	if err != nil {
		return nil, err
	}
	if !nominal.Kind().IsAnyGeneric() {
		return nil, p.errorf("cannot specialize %s", nominal.Kind())
	}
	bound, err := p.bindGenericArgs(nominal, lists, 0)
	if err != nil {
		return nil, err
	}
	n, err := typeOf(bound, nil)
	if err != nil {
		return nil, err
	}
	p.addSubstitution(n)
	return n, nil
}

// bindGenericArgs applies lists[idx] to nominal and the remaining lists to
// its enclosing types, innermost first.
func (p *parser) bindGenericArgs(nominal *demangle.Node, lists []*demangle.Node, idx int) (*demangle.Node, error) {
	if idx >= len(lists) {
		return nominal, nil
	}
	args := lists[idx]
	if idx+1 < len(lists) && nominal.NumChildren() > 1 {
		children := nominal.Children()
		if parent := children[0]; needsGenericArgs(parent.Kind()) {
			boundParent, err := p.bindGenericArgs(parent, lists, idx+1)
			if err != nil {
				return nil, err
			}
			rebuilt, err := build(nominal.Kind(), append([]*demangle.Node{boundParent}, children[1:]...)...)
			if err != nil {
				return nil, err
			}
			nominal = rebuilt
		}
	}
	if args.NumChildren() == 0 {
		return nominal, nil
	}
	kind, ok := boundGenericKinds[nominal.Kind()]
	if !ok {
		return nil, p.errorf("cannot specialize %s", nominal.Kind())
	}
	return build(kind, demangle.NewNode(demangle.KindType, nominal), args)
}

func needsGenericArgs(k demangle.Kind) bool {
	switch k {
	case demangle.KindStructure, demangle.KindClass, demangle.KindEnum,
		demangle.KindOtherNominalType, demangle.KindTypeAlias:
		return true
	}
	return false
}

func (p *parser) demangleStandardSubstitution() (*demangle.Node, error) {
	switch {
	case p.nextIf('o'):
		return demangle.NewText(demangle.KindModule, objcModuleName), nil
	case p.nextIf('C'):
		return demangle.NewText(demangle.KindModule, synthesizedModuleName), nil
	case p.nextIf('g'):
		return p.demangleOptional()
	}
	repeat := 1
	if isDigit(p.peek()) {
		n, err := p.readNumber()
		if err != nil {
			return nil, err
		}
		if n < 1 || n > maxRepeatCount {
			return nil, p.errorf("bad repeat count %d", n)
		}
		repeat = n
	}
	c := p.consume()
	st, ok := standardTypes[c]
	if !ok {
		return nil, p.errorf("unknown standard substitution S%c", c)
	}
	for ; repeat > 1; repeat-- {
		p.push(swiftType(st.kind, st.name))
	}
	return swiftType(st.kind, st.name), nil
}

// demangleOptional handles the "Sg" suffix: T? is Swift.Optional<T>.
func (p *parser) demangleOptional() (*demangle.Node, error) {
	wrapped, err := p.popType()
	if err != nil {
		return nil, err
	}
	args, err := build(demangle.KindTypeList, wrapped)
	if err != nil {
		return nil, err
	}
	n, err := typeOf(build(demangle.KindBoundGenericEnum, swiftType(demangle.KindEnum, "Optional"), args))
	if err != nil {
		return nil, err
	}
	p.addSubstitution(n)
	return n, nil
}

// demangleMultiSubstitutions reads 'A' references: lowercase letters push a
// substitution and continue, an uppercase letter ends the run, digits set a
// repeat count and "<n>_" addresses substitutions past 'Z'.
func (p *parser) demangleMultiSubstitutions() (*demangle.Node, error) {
	repeat := -1
	for {
		if p.eof() {
			return nil, p.errorf("unterminated substitution")
		}
		c := p.consume()
		switch {
		case isLowerLetter(c):
			n, err := p.pushMultiSubstitutions(repeat, int(c-'a'))
			if err != nil {
				return nil, err
			}
			p.push(n)
			repeat = -1
		case isUpperLetter(c):
			return p.pushMultiSubstitutions(repeat, int(c-'A'))
		case c == '_':
			return p.substitution(repeat + 27)
		default:
			p.pos--
			n, err := p.readNumber()
			if err != nil {
				return nil, err
			}
			if n > maxRepeatCount {
				return nil, p.errorf("bad repeat count %d", n)
			}
			repeat = n
		}
	}
}

func (p *parser) pushMultiSubstitutions(repeat, idx int) (*demangle.Node, error) {
	n, err := p.substitution(idx)
	if err != nil {
		return nil, err
	}
	for ; repeat > 1; repeat-- {
		p.push(n.Clone())
	}
	return n, nil
}

func (p *parser) demangleBuiltinType() (*demangle.Node, error) {
	var name string
	switch c := p.consume(); c {
	case 'i', 'f':
		size, err := p.readNumber()
		if err != nil {
			return nil, err
		}
		if err := p.expect('_'); err != nil {
			return nil, err
		}
		if size <= 0 || size > 4096 {
			return nil, p.errorf("bad builtin size %d", size)
		}
		name = "Builtin.Int" + strconv.Itoa(size)
		if c == 'f' {
			name = "Builtin.FPIEEE" + strconv.Itoa(size)
		}
	default:
		known, ok := builtinTypes[c]
		if !ok {
			return nil, p.errorf("unknown builtin type B%c", c)
		}
		name = known
	}
	return typeOf(demangle.NewText(demangle.KindBuiltinTypeName, name), nil)
}

func (p *parser) popTuple() (*demangle.Node, error) {
	tuple := demangle.NewNode(demangle.KindTuple)
	if p.popOf(demangle.KindEmptyList) == nil {
		for first := false; !first; {
			first = p.popOf(demangle.KindFirstElementMarker) != nil
			variadic := p.popOf(demangle.KindVariadicMarker)
			var label *demangle.Node
			if ident := p.popOf(demangle.KindIdentifier); ident != nil {
				label = demangle.NewText(demangle.KindTupleElementName, ident.Text())
			}
			t, err := p.popType()
			if err != nil {
				return nil, err
			}
			elem, err := build(demangle.KindTupleElement, variadic, label, t)
			if err != nil {
				return nil, err
			}
			if err := tuple.AddChild(elem); err != nil {
				return nil, err
			}
		}
		tuple.ReverseChildren()
	}
	return typeOf(tuple, nil)
}

func (p *parser) demangleProtocolList() (*demangle.Node, error) {
	list := demangle.NewNode(demangle.KindTypeList)
	if p.popOf(demangle.KindEmptyList) == nil {
		for first := false; !first; {
			first = p.popOf(demangle.KindFirstElementMarker) != nil
			proto := p.popOf(demangle.KindType)
			if proto == nil || !demangle.IsProtocol(proto) {
				return nil, p.errorf("protocol list element is not a protocol")
			}
			if err := list.AddChild(proto); err != nil {
				return nil, err
			}
		}
		list.ReverseChildren()
	}
	return build(demangle.KindProtocolList, list)
}

func (p *parser) demangleSpecialType() (*demangle.Node, error) {
	switch c := p.consume(); c {
	case 'A':
		return p.popFunctionType(demangle.KindEscapingAutoClosureType)
	case 'B':
		return p.popFunctionType(demangle.KindObjCBlock)
	case 'C':
		return p.popFunctionType(demangle.KindCFunctionPointer)
	case 'D':
		return p.wrapTypeAsType(demangle.KindDynamicSelf)
	case 'E':
		return p.popFunctionType(demangle.KindNoEscapeFunctionType)
	case 'K':
		return p.popFunctionType(demangle.KindAutoClosureType)
	case 'Y':
		return p.demangleNominalType(demangle.KindOtherNominalType)
	case 'c':
		superclass, err := p.popType()
		if err != nil {
			return nil, err
		}
		protocols, err := p.demangleProtocolList()
		if err != nil {
			return nil, err
		}
		return typeOf(build(demangle.KindProtocolListWithClass, protocols, superclass))
	case 'f':
		return p.popFunctionType(demangle.KindThinFunctionType)
	case 'l':
		protocols, err := p.demangleProtocolList()
		if err != nil {
			return nil, err
		}
		return typeOf(build(demangle.KindProtocolListWithAnyObject, protocols))
	case 'o':
		return p.wrapTypeAsType(demangle.KindUnowned)
	case 'p':
		return p.wrapTypeAsType(demangle.KindExistentialMetatype)
	case 'w':
		return p.wrapTypeAsType(demangle.KindWeak)
	default:
		return nil, p.errorf("unsupported special type X%c", c)
	}
}

func (p *parser) demangleTypeAnnotation() (*demangle.Node, error) {
	switch c := p.consume(); c {
	case 'a':
		return demangle.NewNode(demangle.KindAsyncAnnotation), nil
	case 'b':
		return demangle.NewNode(demangle.KindConcurrentFunctionType), nil
	default:
		return nil, p.errorf("unsupported type annotation Y%c", c)
	}
}

func (p *parser) popFunctionType(kind demangle.Kind) (*demangle.Node, error) {
	throws := p.popOf(demangle.KindThrowsAnnotation)
	concurrent := p.popOf(demangle.KindConcurrentFunctionType)
	async := p.popOf(demangle.KindAsyncAnnotation)
	args, err := p.popFunctionParams(demangle.KindArgumentTuple)
	if err != nil {
		return nil, err
	}
	result, err := p.popFunctionParams(demangle.KindReturnType)
	if err != nil {
		return nil, err
	}
	return typeOf(build(kind, throws, concurrent, async, args, result))
}

// popFunctionParams pops a parameter or result type; an empty list is ().
func (p *parser) popFunctionParams(kind demangle.Kind) (*demangle.Node, error) {
	if p.popOf(demangle.KindEmptyList) != nil {
		return demangle.NewNode(kind, demangle.NewNode(demangle.KindType, demangle.NewNode(demangle.KindTuple))), nil
	}
	t, err := p.popType()
	if err != nil {
		return nil, err
	}
	return build(kind, t)
}

// popFunctionParamLabels pops the argument labels mangled between an
// entity's name and its signature. It returns nil when there are none.
func (p *parser) popFunctionParamLabels(fnType *demangle.Node) (*demangle.Node, error) {
	if p.popOf(demangle.KindEmptyList) != nil {
		return demangle.NewNode(demangle.KindLabelList), nil
	}
	count := paramCount(fnType)
	// The labels must leave a name and a context below them.
	if count == 0 || len(p.stack) < count+2 {
		return nil, nil
	}
	for _, n := range p.stack[len(p.stack)-count:] {
		if k := n.Kind(); k != demangle.KindIdentifier && k != demangle.KindFirstElementMarker {
			return nil, nil
		}
	}
	labels := demangle.NewNode(demangle.KindLabelList)
	for i := 0; i < count; i++ {
		if err := labels.AddChild(p.pop()); err != nil {
			return nil, err
		}
	}
	labels.ReverseChildren()
	return labels, nil
}

// paramCount counts the parameters of Type(FunctionType(..., ArgumentTuple(Type(x)), ...)).
func paramCount(fnType *demangle.Node) int {
	fn, err := fnType.FirstChild()
	if err != nil {
		return 0
	}
	for _, c := range fn.Children() {
		if c.Kind() != demangle.KindArgumentTuple {
			continue
		}
		t, err := c.FirstChild()
		if err != nil {
			return 0
		}
		params, err := t.FirstChild()
		if err != nil {
			return 0
		}
		if params.Kind() == demangle.KindTuple {
			return params.NumChildren()
		}
		return 1
	}
	return 0
}

// demangleFunction handles 'F': context, name, labels and a function
// signature without the 'c' terminator.
func (p *parser) demangleFunction() (*demangle.Node, error) {
	fnType, err := p.popFunctionType(demangle.KindFunctionType)
	if err != nil {
		return nil, err
	}
	labels, err := p.popFunctionParamLabels(fnType)
	if err != nil {
		return nil, err
	}
	name, err := p.popDeclName()
	if err != nil {
		return nil, err
	}
	ctx, err := p.popContext()
	if err != nil {
		return nil, err
	}
	return build(demangle.KindFunction, ctx, name, labels, fnType)
}

func (p *parser) demangleFunctionEntity() (*demangle.Node, error) {
	switch c := p.consume(); c {
	case 'C', 'c':
		kind := demangle.KindAllocator
		if c == 'c' {
			kind = demangle.KindConstructor
		}
		fnType, err := p.popType()
		if err != nil {
			return nil, err
		}
		labels, err := p.popFunctionParamLabels(fnType)
		if err != nil {
			return nil, err
		}
		ctx, err := p.popContext()
		if err != nil {
			return nil, err
		}
		return build(kind, ctx, labels, fnType)
	case 'd', 'D':
		ctx, err := p.popContext()
		if err != nil {
			return nil, err
		}
		kind := demangle.KindDestructor
		if c == 'D' {
			kind = demangle.KindDeallocator
		}
		return build(kind, ctx)
	case 'U', 'u':
		kind := demangle.KindExplicitClosure
		if c == 'u' {
			kind = demangle.KindImplicitClosure
		}
		index, err := p.readIndex()
		if err != nil {
			return nil, err
		}
		t := p.popOf(demangle.KindType)
		ctx, err := p.popContext()
		if err != nil {
			return nil, err
		}
		return build(kind, ctx, demangle.NewIndex(demangle.KindNumber, index), t)
	default:
		return nil, p.errorf("unsupported function entity f%c", c)
	}
}

func (p *parser) demangleVariable() (*demangle.Node, error) {
	t, err := p.popType()
	if err != nil {
		return nil, err
	}
	name, err := p.popDeclName()
	if err != nil {
		return nil, err
	}
	ctx, err := p.popContext()
	if err != nil {
		return nil, err
	}
	v, err := build(demangle.KindVariable, ctx, name, t)
	if err != nil {
		return nil, err
	}
	return p.demangleAccessor(v)
}

func (p *parser) demangleAccessor(child *demangle.Node) (*demangle.Node, error) {
	if p.eof() {
		return nil, p.errorf("variable without accessor")
	}
	c := p.consume()
	if c == 'p' {
		return child, nil
	}
	if kind, ok := accessorKinds[c]; ok {
		return build(kind, child)
	}
	if (c == 'a' || c == 'l') && !p.eof() {
		if kind, ok := addressorKinds[string([]byte{c, p.consume()})]; ok {
			return build(kind, child)
		}
	}
	return nil, p.errorf("unknown accessor %q", c)
}

func genericParamType(depth, index uint64) *demangle.Node {
	return demangle.NewNode(demangle.KindType,
		demangle.NewNode(demangle.KindDependentGenericParamType,
			demangle.NewIndex(demangle.KindIndex, depth),
			demangle.NewIndex(demangle.KindIndex, index),
		),
	)
}

func (p *parser) demangleGenericParamIndex() (*demangle.Node, error) {
	switch {
	case p.nextIf('d'):
		depth, err := p.readIndex()
		if err != nil {
			return nil, err
		}
		index, err := p.readIndex()
		if err != nil {
			return nil, err
		}
		return genericParamType(depth+1, index), nil
	case p.nextIf('z'):
		return genericParamType(0, 0), nil
	}
	index, err := p.readIndex()
	if err != nil {
		return nil, err
	}
	return genericParamType(0, index+1), nil
}

// symbolicDirectness decodes the reference kind of a context reference.
func symbolicDirectness(control byte) demangle.Directness {
	switch control {
	case 0x01:
		return demangle.DirectnessDirect
	case 0x02:
		return demangle.DirectnessIndirect
	}
	return demangle.DirectnessUnknown
}

func (p *parser) demangleSymbolicReference(control byte) (*demangle.Node, error) {
	if p.pos+4 > len(p.data) {
		return nil, p.errorf("symbolic reference truncated")
	}
	refIndex := p.pos
	offset := int32(binary.LittleEndian.Uint32(p.data[p.pos:]))
	p.pos += 4
	directness := symbolicDirectness(control)
	debug("symbolic reference", "control", control, "directness", directness.String(), "offset", offset)

	var n *demangle.Node
	if p.resolver != nil {
		resolved, err := p.resolver.ResolveType(control, offset, refIndex)
		if err != nil {
			return nil, errors.WithDetails(
				errors.Errorf("resolve symbolic reference: %w", err),
				"control", control, "directness", directness.String(), "offset", offset,
			)
		}
		if resolved == nil {
			return nil, p.errorf("resolver returned no node for offset %d", offset)
		}
		n = resolved
	} else {
		kind := demangle.KindTypeSymbolicReference
		switch control {
		case 0x01, 0x02:
		case 0x0c:
			kind = demangle.KindObjectiveCProtocolSymbolicReference
		default:
			return nil, p.errorf("unsupported symbolic reference kind %#02x", control)
		}
		target := int64(refIndex) + int64(offset)
		if target < 0 {
			return nil, p.errorf("symbolic reference before start of data")
		}
		n = demangle.NewIndex(kind, uint64(target))
	}
	if n.Kind() != demangle.KindType {
		wrapped, err := build(demangle.KindType, n)
		if err != nil {
			return nil, err
		}
		n = wrapped
	}
	p.addSubstitution(n)
	return n, nil
}
