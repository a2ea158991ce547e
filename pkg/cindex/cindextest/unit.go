// Package cindextest provides an in-memory cindex.Unit for tests. Cursors and
// tokens are placed by hand, the way a front-end would annotate them.
package cindextest

import (
	"sort"
	"strings"

	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
)

var (
	_ cindex.Unit   = (*Unit)(nil)
	_ cindex.Cursor = (*Cursor)(nil)
)

// Cursor is a hand-built cursor. Nil relations read as absent.
type Cursor struct {
	K      cindex.CursorKind
	T      cindex.Type
	Name   string
	Loc    cindex.Location
	Ext    cindex.Range
	Def    *Cursor
	Ref    *Cursor
	Parent *Cursor
}

func (c *Cursor) Kind() cindex.CursorKind   { return c.K }
func (c *Cursor) Type() cindex.Type         { return c.T }
func (c *Cursor) Spelling() string          { return c.Name }
func (c *Cursor) Location() cindex.Location { return c.Loc }
func (c *Cursor) Extent() cindex.Range      { return c.Ext }

func (c *Cursor) Definition() (cindex.Cursor, bool) {
	if c.Def == nil {
		return nil, false
	}
	return c.Def, true
}

func (c *Cursor) Referenced() (cindex.Cursor, bool) {
	if c.Ref == nil {
		return nil, false
	}
	return c.Ref, true
}

func (c *Cursor) SemanticParent() (cindex.Cursor, bool) {
	if c.Parent == nil {
		return nil, false
	}
	return c.Parent, true
}

// Unit holds the tokens and cursors of a single file.
type Unit struct {
	Name    string
	tokens  []cindex.Token
	cursors []*Cursor
}

func NewUnit(name string) *Unit {
	return &Unit{Name: name}
}

// Span builds a range on the unit's file.
func (u *Unit) Span(line, col, endLine, endCol int) cindex.Range {
	return cindex.Range{
		Start: cindex.Location{File: u.Name, Line: line, Column: col},
		End:   cindex.Location{File: u.Name, Line: endLine, Column: endCol},
	}
}

// AddCursor registers c so CursorAt can find it by extent. The cursor
// location defaults to the start of its extent.
func (u *Unit) AddCursor(c *Cursor) *Cursor {
	if c.Loc == (cindex.Location{}) {
		c.Loc = c.Ext.Start
	}
	u.cursors = append(u.cursors, c)
	return c
}

// AddToken places a token at line:col annotated with c (which may be nil).
func (u *Unit) AddToken(kind cindex.TokenKind, spelling string, line, col int, c *Cursor) cindex.Token {
	tok := cindex.Token{
		Kind:     kind,
		Spelling: spelling,
		Location: cindex.Location{File: u.Name, Line: line, Column: col},
	}
	if c != nil {
		tok.Cursor = c
	}
	u.tokens = append(u.tokens, tok)
	sort.SliceStable(u.tokens, func(i, j int) bool {
		return u.tokens[i].Location.Before(u.tokens[j].Location)
	})
	return tok
}

func (u *Unit) File(name string) (cindex.File, bool) {
	if name != u.Name {
		return cindex.File{}, false
	}
	return cindex.File{Name: name}, true
}

func (u *Unit) Location(file cindex.File, line, column int) cindex.Location {
	return cindex.Location{File: file.Name, Line: line, Column: column}
}

func (u *Unit) Tokens(r cindex.Range) []cindex.Token {
	var out []cindex.Token
	for _, tok := range u.tokens {
		if tok.Location.Before(r.End) && r.Start.Before(TokenEnd(tok)) {
			out = append(out, tok)
		}
	}
	return out
}

func (u *Unit) CursorAt(loc cindex.Location) (cindex.Cursor, bool) {
	for _, tok := range u.tokens {
		if tok.Cursor == nil {
			continue
		}
		if (cindex.Range{Start: tok.Location, End: TokenEnd(tok)}).Contains(loc) {
			return tok.Cursor, true
		}
	}

	var best *Cursor
	for _, c := range u.cursors {
		if !c.Ext.Contains(loc) {
			continue
		}
		if best == nil || best.Ext.Start.Before(c.Ext.Start) || (c.Ext.Start == best.Ext.Start && c.Ext.End.Before(best.Ext.End)) {
			best = c
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// TokenEnd is the location just past the last byte of tok.
func TokenEnd(tok cindex.Token) cindex.Location {
	end := tok.Location
	n := strings.Count(tok.Spelling, "\n")
	if n == 0 {
		end.Column += len(tok.Spelling)
		return end
	}
	end.Line += n
	end.Column = len(tok.Spelling) - strings.LastIndex(tok.Spelling, "\n")
	return end
}
