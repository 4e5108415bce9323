// Package html parses markup documents into dom node trees.
//
// The parser is a single-pass recursive-descent scanner over an
// in-memory document string. It recognizes elements with quoted
// attributes, text runs, and comments. It does not recover from
// malformed input: the first grammar violation aborts the parse and is
// returned as a *ParseError.
package html

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Scharxi/browser-engine/dom"
)

// Parser holds the cursor state for one parse. The cursor only moves
// forward; no consumed input is ever revisited. A Parser must not be
// shared between concurrent parses.
type Parser struct {
	input string
	pos   int
	line  int
	col   int
}

// Parse parses a complete markup document and returns its root node.
// A document with exactly one top-level node yields that node directly;
// zero or several top-level siblings are wrapped in a synthesized
// "html" element so the result is always a single root.
func Parse(source string) (dom.Node, error) {
	p := &Parser{input: source, line: 1, col: 1}
	nodes, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return dom.NewElement("html", dom.AttrMap{}, nodes), nil
}

// parseNodes parses sibling nodes until end of input or a closing-tag
// marker.
func (p *Parser) parseNodes() ([]dom.Node, error) {
	var nodes []dom.Node
	for {
		p.skipWhitespace()
		if p.eof() || p.startsWith("</") {
			return nodes, nil
		}
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

// parseNode dispatches on the next character: comments and elements
// begin with '<', anything else is text.
func (p *Parser) parseNode() (dom.Node, error) {
	if p.startsWith("<!--") {
		return p.parseComment()
	}
	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if next == '<' {
		return p.parseElement()
	}
	return p.parseText()
}

func (p *Parser) parseElement() (dom.Node, error) {
	if err := p.expect('<', ErrExpectedLt); err != nil {
		return nil, err
	}

	namePos := p.position()
	name := p.parseTagName()
	if name == "" {
		return nil, &ParseError{Kind: ErrEmptyTagName, Pos: namePos}
	}

	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	if err := p.expect('>', ErrExpectedGt); err != nil {
		return nil, err
	}

	children, err := p.parseNodes()
	if err != nil {
		return nil, err
	}

	// parseNodes only stops at end of input or a "</" marker, so these
	// two expects can fail only by running out of input.
	if err := p.expect('<', ErrExpectedLt); err != nil {
		return nil, err
	}
	if err := p.expect('/', ErrExpectedLt); err != nil {
		return nil, err
	}

	closePos := p.position()
	closing := p.parseTagName()
	if closing != name {
		return nil, &ParseError{
			Kind:   ErrMismatchedClosingTag,
			Pos:    closePos,
			Detail: fmt.Sprintf("expected </%s>, found </%s>", name, closing),
		}
	}
	if err := p.expect('>', ErrExpectedCloseGt); err != nil {
		return nil, err
	}

	return dom.NewElement(name, attrs, children), nil
}

func (p *Parser) parseComment() (dom.Node, error) {
	openPos := p.position()
	p.advance(len("<!--"))

	start := p.pos
	for !p.eof() {
		if p.startsWith("-->") {
			content := p.input[start:p.pos]
			p.advance(len("-->"))
			return dom.NewComment(content), nil
		}
		p.consume()
	}
	return nil, &ParseError{Kind: ErrUnterminatedComment, Pos: openPos}
}

// parseText consumes a run of characters up to the next '<'. It never
// fails; the caller's dispatch guarantees a non-empty run.
func (p *Parser) parseText() (dom.Node, error) {
	return dom.NewText(p.consumeWhile(func(r rune) bool { return r != '<' })), nil
}

// parseTagName consumes a maximal run of ASCII letters and digits. The
// run may be empty; callers decide whether that is an error.
func (p *Parser) parseTagName() string {
	return p.consumeWhile(isTagNameRune)
}

// parseAttributes parses name="value" pairs until the next
// non-whitespace character is '>'. Duplicate names overwrite earlier
// occurrences.
func (p *Parser) parseAttributes() (dom.AttrMap, error) {
	attrs := dom.AttrMap{}
	for {
		p.skipWhitespace()
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		if next == '>' {
			return attrs, nil
		}
		name, value, err := p.parseAttr()
		if err != nil {
			return nil, err
		}
		attrs[name] = value
	}
}

func (p *Parser) parseAttr() (string, string, error) {
	name := p.parseTagName()
	if err := p.expect('=', ErrExpectedEquals); err != nil {
		return "", "", err
	}
	value, err := p.parseAttrValue()
	if err != nil {
		return "", "", err
	}
	return name, value, nil
}

// parseAttrValue parses a single- or double-quoted value. The interior
// is taken verbatim; character entities are not decoded.
func (p *Parser) parseAttrValue() (string, error) {
	openPos := p.position()
	quote, err := p.peek()
	if err != nil {
		return "", err
	}
	if quote != '"' && quote != '\'' {
		return "", &ParseError{
			Kind:   ErrExpectedQuote,
			Pos:    openPos,
			Detail: fmt.Sprintf("found %q", quote),
		}
	}
	p.consume()

	value := p.consumeWhile(func(r rune) bool { return r != quote })
	if p.eof() {
		return "", &ParseError{
			Kind:   ErrUnterminatedAttrValue,
			Pos:    openPos,
			Detail: fmt.Sprintf("no closing %c", quote),
		}
	}
	p.consume()
	return value, nil
}

// Cursor primitives.

func (p *Parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *Parser) startsWith(prefix string) bool {
	return strings.HasPrefix(p.input[p.pos:], prefix)
}

func (p *Parser) position() Position {
	return Position{Offset: p.pos, Line: p.line, Column: p.col}
}

// peek returns the rune at the cursor without consuming it.
func (p *Parser) peek() (rune, error) {
	if p.eof() {
		return 0, &ParseError{Kind: ErrUnexpectedEOF, Pos: p.position()}
	}
	r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
	return r, nil
}

// consume advances the cursor past the rune at the current position,
// moving by the rune's full encoded width.
func (p *Parser) consume() (rune, error) {
	if p.eof() {
		return 0, &ParseError{Kind: ErrUnexpectedEOF, Pos: p.position()}
	}
	r, size := utf8.DecodeRuneInString(p.input[p.pos:])
	p.pos += size
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return r, nil
}

// advance consumes exactly n bytes of known-ASCII input.
func (p *Parser) advance(n int) {
	for i := 0; i < n; i++ {
		p.consume()
	}
}

// expect consumes the given rune or fails. A wrong character yields
// the supplied kind; end of input yields ErrUnexpectedEOF.
func (p *Parser) expect(want rune, kind ErrKind) error {
	got, err := p.peek()
	if err != nil {
		return err
	}
	if got != want {
		return &ParseError{
			Kind:   kind,
			Pos:    p.position(),
			Detail: fmt.Sprintf("found %q", got),
		}
	}
	p.consume()
	return nil
}

// consumeWhile consumes a maximal run of runes satisfying pred and
// returns it. The run may be empty.
func (p *Parser) consumeWhile(pred func(rune) bool) string {
	start := p.pos
	for !p.eof() {
		r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
		if !pred(r) {
			break
		}
		p.consume()
	}
	return p.input[start:p.pos]
}

func (p *Parser) skipWhitespace() {
	p.consumeWhile(unicode.IsSpace)
}

func isTagNameRune(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}
