package swiftdemangle

import (
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/blacktop/go-swiftdemangle/swift/demangle"
)

// ErrMalformed is wrapped by every error the parser reports for input it
// cannot read.
var ErrMalformed = errors.Base("swiftdemangle: malformed mangling")

// SymbolicReferenceResolver resolves symbolic reference offsets found in mangled
// strings. Implementations must interpret the offset relative to the address of
// the reference site and return a preconstructed node representing the target
// context or type.
type SymbolicReferenceResolver interface {
	ResolveType(control byte, offset int32, refIndex int) (*demangle.Node, error)
}

type parser struct {
	data     []byte
	pos      int
	resolver SymbolicReferenceResolver
	stack    []*demangle.Node
	subst    []*demangle.Node
	words    []string
}

func newParser(data []byte, resolver SymbolicReferenceResolver) *parser {
	return &parser{
		data:     data,
		resolver: resolver,
		words:    make([]string, 0, maxIdentifierWords),
	}
}

const maxIdentifierWords = 26

func (p *parser) errorf(format string, args ...any) error {
	return errors.WithDetails(
		errors.Errorf("%w: "+format, append([]any{ErrMalformed}, args...)...),
		"pos", p.pos,
	)
}

func (p *parser) eof() bool {
	return p.pos >= len(p.data)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.data[p.pos]
}

func (p *parser) consume() byte {
	if p.eof() {
		return 0
	}
	b := p.data[p.pos]
	p.pos++
	return b
}

func (p *parser) nextIf(b byte) bool {
	if p.peek() != b || p.eof() {
		return false
	}
	p.pos++
	return true
}

func (p *parser) expect(b byte) error {
	if p.eof() {
		return p.errorf("unexpected end of mangled name, expected %q", b)
	}
	if p.data[p.pos] != b {
		return p.errorf("unexpected character %q, expected %q", p.data[p.pos], b)
	}
	p.pos++
	return nil
}

// Node stack helpers. Operators pop their operands and push the result.
func (p *parser) push(n *demangle.Node) {
	p.stack = append(p.stack, n)
}

func (p *parser) pop() *demangle.Node {
	if len(p.stack) == 0 {
		return nil
	}
	n := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return n
}

func (p *parser) top() *demangle.Node {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

// popKind pops the top node only if its kind satisfies match.
func (p *parser) popKind(match func(demangle.Kind) bool) *demangle.Node {
	if n := p.top(); n != nil && match(n.Kind()) {
		return p.pop()
	}
	return nil
}

func (p *parser) popOf(kind demangle.Kind) *demangle.Node {
	return p.popKind(func(k demangle.Kind) bool { return k == kind })
}

func (p *parser) readNumber() (int, error) {
	if p.eof() {
		return 0, p.errorf("unexpected end while reading number")
	}
	start := p.pos
	total := 0
	for !p.eof() {
		c := p.data[p.pos]
		if !isDigit(c) {
			break
		}
		total = total*10 + int(c-'0')
		if total > len(p.data)*10 {
			return 0, p.errorf("number too large")
		}
		p.pos++
	}
	if p.pos == start {
		return 0, p.errorf("expected digit")
	}
	return total, nil
}

// readIndex reads "_" as 0 and "<n>_" as n+1.
func (p *parser) readIndex() (uint64, error) {
	if p.nextIf('_') {
		return 0, nil
	}
	n, err := p.readNumber()
	if err != nil {
		return 0, err
	}
	if err := p.expect('_'); err != nil {
		return 0, err
	}
	return uint64(n) + 1, nil
}

func (p *parser) readIdentifierText() (string, error) {
	if p.eof() {
		return "", p.errorf("unexpected end while reading identifier")
	}
	switch {
	case p.peek() == '0':
		if p.pos+1 >= len(p.data) {
			return "", p.errorf("unterminated identifier prefix")
		}
		if p.data[p.pos+1] == '0' {
			p.consume()
			p.consume()
			return p.readPunycodeIdentifierText()
		}
		p.consume()
		return p.readIdentifierWithWordSubstitutions()
	case isDigit(p.peek()):
		return p.readLiteralIdentifierText()
	default:
		return "", p.errorf("invalid identifier prefix %q", p.peek())
	}
}

func (p *parser) readLiteralIdentifierText() (string, error) {
	chunk, err := p.readIdentifierChunk()
	if err != nil {
		return "", err
	}
	p.recordWordsFromLiteral(chunk)
	return chunk, nil
}

func (p *parser) readIdentifierWithWordSubstitutions() (string, error) {
	var out strings.Builder
	hasWordSubsts := true
	for {
		for hasWordSubsts && !p.eof() && isLetter(p.peek()) {
			c := p.consume()
			idx := 0
			if isLowerLetter(c) {
				idx = int(c - 'a')
			} else {
				idx = int(c - 'A')
				hasWordSubsts = false
			}
			if idx >= len(p.words) {
				return "", p.errorf("word substitution index %d out of range (have %d words)", idx, len(p.words))
			}
			debug("word substitution", "index", idx, "word", p.words[idx])
			out.WriteString(p.words[idx])
		}

		if p.eof() || p.nextIf('0') {
			break
		}

		chunk, err := p.readIdentifierChunk()
		if err != nil {
			return "", err
		}
		out.WriteString(chunk)
		p.recordWordsFromLiteral(chunk)
		if !hasWordSubsts {
			break
		}
	}

	if out.Len() == 0 {
		return "", p.errorf("empty identifier")
	}
	return out.String(), nil
}

func (p *parser) readPunycodeIdentifierText() (string, error) {
	length, err := p.readNumber()
	if err != nil {
		return "", err
	}
	if length <= 0 {
		return "", p.errorf("punycode identifier length must be >0, got %d", length)
	}
	p.nextIf('_')
	if p.pos+length > len(p.data) {
		return "", p.errorf("punycode identifier exceeds input length")
	}
	start := p.pos
	p.pos += length
	decoded, err := decodeSwiftPunycode(string(p.data[start:p.pos]))
	if err != nil {
		return "", p.errorf("punycode: %s", err)
	}
	return decoded, nil
}

func (p *parser) readIdentifierChunk() (string, error) {
	length, err := p.readNumber()
	if err != nil {
		return "", err
	}
	if length <= 0 {
		return "", p.errorf("identifier length must be >0, got %d", length)
	}
	if p.pos+length > len(p.data) {
		return "", p.errorf("identifier exceeds input length")
	}
	start := p.pos
	p.pos += length
	return string(p.data[start:p.pos]), nil
}

func (p *parser) recordWordsFromLiteral(lit string) {
	if len(lit) == 0 || len(p.words) >= maxIdentifierWords {
		return
	}
	wordStart := -1
	for i := 0; i <= len(lit); i++ {
		var curr byte
		if i < len(lit) {
			curr = lit[i]
		}
		if wordStart >= 0 && i > 0 && isWordEndChar(curr, lit[i-1]) {
			if i-wordStart >= 2 && len(p.words) < maxIdentifierWords {
				p.words = append(p.words, lit[wordStart:i])
			}
			wordStart = -1
		}
		if i < len(lit) && wordStart < 0 && isWordStartChar(curr) {
			wordStart = i
		}
	}
}

func (p *parser) addSubstitution(n *demangle.Node) {
	if n == nil {
		return
	}
	debug("substitution", "index", len(p.subst), "kind", n.Kind().String())
	p.subst = append(p.subst, n.Clone())
}

// substitution returns a detached copy of substitution i. Substitutions are
// snapshots: later operators move children out of the nodes they pop.
func (p *parser) substitution(i int) (*demangle.Node, error) {
	if i < 0 || i >= len(p.subst) {
		return nil, p.errorf("invalid substitution index %d (have %d)", i, len(p.subst))
	}
	return p.subst[i].Clone(), nil
}

func isLowerLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func isUpperLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isLetter(b byte) bool {
	return isLowerLetter(b) || isUpperLetter(b)
}

func isWordStartChar(b byte) bool {
	return !isDigit(b) && b != '_' && b != 0
}

func isWordEndChar(next, prev byte) bool {
	if next == '_' || next == 0 {
		return true
	}
	return !isUpperLetter(prev) && isUpperLetter(next)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
