// Package cindex describes what the highlighter needs from a C-family
// compiler front-end: a translation unit that hands out tokens, source
// locations and cursors, and cursors that know their kind, type and
// relations. Nothing here parses source; front-ends such as
// pkg/frontend/treesitter implement these interfaces.
package cindex

import "fmt"

// TokenKind is the lexical class of a token, numbered like libclang's
// CXTokenKind.
type TokenKind int

const (
	TokenPunctuation TokenKind = 0
	TokenKeyword     TokenKind = 1
	TokenIdentifier  TokenKind = 2
	TokenLiteral     TokenKind = 3
	TokenComment     TokenKind = 4
)

func (k TokenKind) String() string {
	switch k {
	case TokenPunctuation:
		return "Punctuation"
	case TokenKeyword:
		return "Keyword"
	case TokenIdentifier:
		return "Identifier"
	case TokenLiteral:
		return "Literal"
	case TokenComment:
		return "Comment"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// File is a handle to a file that takes part in a translation unit.
type File struct {
	Name string
}

// Location is a point in a file. Line and Column are 1-based and Column
// counts bytes. Offset is the 0-based byte offset into the file.
type Location struct {
	File   string
	Line   int
	Column int
	Offset int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Before orders locations of the same file by line then column.
func (l Location) Before(o Location) bool {
	if l.Line != o.Line {
		return l.Line < o.Line
	}
	return l.Column < o.Column
}

// Range is the half-open span [Start, End).
type Range struct {
	Start Location
	End   Location
}

// Contains reports whether loc falls in [Start, End).
func (r Range) Contains(loc Location) bool {
	return !loc.Before(r.Start) && loc.Before(r.End)
}

// Token is one lexical unit handed out by a Unit. Cursor is the innermost
// cursor the front-end annotated the token with and may be nil.
type Token struct {
	Kind     TokenKind
	Spelling string
	Location Location
	Cursor   Cursor
}

// Cursor is a read-only view of an AST node owned by a Unit.
type Cursor interface {
	Kind() CursorKind
	Type() Type
	Spelling() string
	Location() Location
	Extent() Range

	// Definition returns the cursor that defines the entity this cursor
	// refers to or declares.
	Definition() (Cursor, bool)
	// Referenced returns the declaration a reference points at. Declarations
	// return themselves.
	Referenced() (Cursor, bool)
	SemanticParent() (Cursor, bool)
}

// Unit is a parsed translation unit.
//
// Implementations need not be safe for concurrent use; callers serialize
// calls against one unit.
type Unit interface {
	File(name string) (File, bool)
	Location(file File, line, column int) Location
	// Tokens returns the tokens overlapping r, in source order.
	Tokens(r Range) []Token
	// CursorAt returns the most specific cursor at loc.
	CursorAt(loc Location) (Cursor, bool)
}
