package html

import "fmt"

// ErrKind identifies the grammar violation behind a ParseError.
type ErrKind int

const (
	ErrUnexpectedEOF ErrKind = iota
	ErrExpectedLt
	ErrExpectedGt
	ErrExpectedEquals
	ErrExpectedQuote
	ErrExpectedCloseGt
	ErrUnterminatedAttrValue
	ErrUnterminatedComment
	ErrMismatchedClosingTag
	ErrEmptyTagName
)

var errKindNames = [...]string{
	ErrUnexpectedEOF:         "unexpected end of input",
	ErrExpectedLt:            "expected '<'",
	ErrExpectedGt:            "expected '>'",
	ErrExpectedEquals:        "expected '='",
	ErrExpectedQuote:         "expected quoted attribute value",
	ErrExpectedCloseGt:       "expected '>' after closing tag name",
	ErrUnterminatedAttrValue: "unterminated attribute value",
	ErrUnterminatedComment:   "unterminated comment",
	ErrMismatchedClosingTag:  "mismatched closing tag",
	ErrEmptyTagName:          "empty tag name",
}

func (k ErrKind) String() string {
	if k >= 0 && int(k) < len(errKindNames) {
		return errKindNames[k]
	}
	return fmt.Sprintf("ErrKind(%d)", int(k))
}

// Position is a location within the input. Offset counts bytes from
// the start; Line and Column count from 1 and measure runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ParseError reports a grammar violation and the position at which it
// was detected. Parsing stops at the first violation; there is no
// resynchronization.
type ParseError struct {
	Kind   ErrKind
	Pos    Position
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s (offset %d)", e.Pos, e.Kind, e.Detail, e.Pos.Offset)
	}
	return fmt.Sprintf("%s: %s (offset %d)", e.Pos, e.Kind, e.Pos.Offset)
}
