package treesitter

import (
	"path/filepath"
	"sort"

	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
	"github.com/unnamed42/chromatica.nvim/pkg/position"
)

var (
	_ cindex.Unit   = (*Unit)(nil)
	_ cindex.Cursor = (*Cursor)(nil)
)

// Unit is a parsed source file. It is immutable once Parse returns.
type Unit struct {
	name   string
	src    []byte
	index  *position.Index
	root   *node
	tu     *Cursor
	tokens []cindex.Token
	spans  []position.RawPosition
	defs   map[defKey]*Cursor
}

func (u *Unit) Name() string { return u.name }

func (u *Unit) Source() []byte { return u.src }

func (u *Unit) File(name string) (cindex.File, bool) {
	if name != u.name && filepath.Clean(name) != filepath.Clean(u.name) {
		return cindex.File{}, false
	}
	return cindex.File{Name: u.name}, true
}

// Location keeps the requested line and column; the offset is clamped to
// the buffer.
func (u *Unit) Location(file cindex.File, line, column int) cindex.Location {
	return cindex.Location{
		File:   file.Name,
		Line:   line,
		Column: column,
		Offset: u.index.Offset(position.Place{Line: line, Column: column}),
	}
}

func (u *Unit) location(offset int) cindex.Location {
	p := u.index.Place(offset)
	return cindex.Location{File: u.name, Line: p.Line, Column: p.Column, Offset: offset}
}

func (u *Unit) Tokens(r cindex.Range) []cindex.Token {
	// tokens never overlap, so their ends are sorted too
	i := sort.Search(len(u.spans), func(i int) bool { return u.spans[i].End() > r.Start.Offset })

	var out []cindex.Token
	for ; i < len(u.spans) && u.spans[i].Offset < r.End.Offset; i++ {
		out = append(out, u.tokens[i])
	}
	return out
}

func (u *Unit) CursorAt(loc cindex.Location) (cindex.Cursor, bool) {
	i := sort.Search(len(u.spans), func(i int) bool { return u.spans[i].End() > loc.Offset })
	if i < len(u.spans) && u.spans[i].Contains(loc.Offset) && u.tokens[i].Cursor != nil {
		return u.tokens[i].Cursor, true
	}

	n := u.root.deepest(loc.Offset)
	if n == nil {
		return nil, false
	}
	return cursorFor(n, u.tu), true
}

// cursorFor is the cursor a node belongs to: its own, or the nearest
// ancestor's. Bodies of preprocessor conditionals skip the directive.
func cursorFor(n *node, fallback *Cursor) *Cursor {
	var prev *node
	for p := n; p != nil; prev, p = p, p.parent {
		if p.cursor == nil {
			continue
		}
		if p.directive && prev != nil && prev.named && prev.field == "" {
			continue
		}
		return p.cursor
	}
	return fallback
}

// Cursor is a node of the unit's AST.
type Cursor struct {
	unit   *Unit
	kind   cindex.CursorKind
	typ    cindex.Type
	name   string
	at     int
	start  int
	end    int
	parent *Cursor
	ref    *Cursor

	// decl cursors refer to themselves; def marks the defining one.
	decl bool
	def  bool
	// record is the record a value of this entity's type has members of.
	record *Cursor
	// scope holds the members of records and namespaces.
	scope *scope
}

func (c *Cursor) Kind() cindex.CursorKind   { return c.kind }
func (c *Cursor) Type() cindex.Type         { return c.typ }
func (c *Cursor) Spelling() string          { return c.name }
func (c *Cursor) Location() cindex.Location { return c.unit.location(c.at) }

func (c *Cursor) Extent() cindex.Range {
	return cindex.Range{Start: c.unit.location(c.start), End: c.unit.location(c.end)}
}

func (c *Cursor) Definition() (cindex.Cursor, bool) {
	target := c
	if !c.decl {
		if c.ref == nil {
			return nil, false
		}
		target = c.ref
	}
	if target.def {
		return target, true
	}
	if d := c.unit.defs[target.key()]; d != nil {
		return d, true
	}
	return nil, false
}

func (c *Cursor) Referenced() (cindex.Cursor, bool) {
	if c.decl {
		return c, true
	}
	if c.ref == nil {
		return nil, false
	}
	return c.ref, true
}

func (c *Cursor) SemanticParent() (cindex.Cursor, bool) {
	if c.parent == nil {
		return nil, false
	}
	return c.parent, true
}

func (c *Cursor) String() string {
	return c.kind.String() + " " + c.name
}

type defKey struct {
	parent *Cursor
	name   string
	class  int
}

func (c *Cursor) key() defKey {
	class := int(c.kind)
	switch {
	case isRecord(c.kind):
		class = -1
	case isFunction(c.kind):
		class = -2
	case c.kind == cindex.VarDecl:
		class = -3
	}
	return defKey{parent: c.parent, name: c.name, class: class}
}

func isRecord(k cindex.CursorKind) bool {
	switch k {
	case cindex.StructDecl, cindex.ClassDecl, cindex.UnionDecl, cindex.ClassTemplate,
		cindex.ClassTemplatePartialSpecialization:
		return true
	}
	return false
}

func isFunction(k cindex.CursorKind) bool {
	switch k {
	case cindex.FunctionDecl, cindex.CXXMethod, cindex.Constructor, cindex.Destructor,
		cindex.ConversionFunction, cindex.FunctionTemplate:
		return true
	}
	return false
}

func isType(c *Cursor) bool {
	switch c.kind {
	case cindex.EnumDecl, cindex.TypedefDecl, cindex.TypeAliasDecl, cindex.TypeAliasTemplateDecl,
		cindex.TemplateTypeParameter, cindex.TemplateTemplateParameter:
		return true
	}
	return isRecord(c.kind)
}

func isValue(c *Cursor) bool {
	switch c.kind {
	case cindex.VarDecl, cindex.ParmDecl, cindex.FieldDecl, cindex.EnumConstantDecl,
		cindex.NonTypeTemplateParameter:
		return true
	}
	return isFunction(c.kind) && c.kind != cindex.Constructor && c.kind != cindex.Destructor
}

func isScope(c *Cursor) bool {
	return c.kind == cindex.Namespace || c.kind == cindex.NamespaceAlias || isType(c)
}

func anyDecl(*Cursor) bool { return true }

// scope is a lexical scope: the translation unit, a namespace, a record
// body, a function or a block.
type scope struct {
	parent *scope
	owner  *Cursor
	names  map[string][]*Cursor
	labels map[string]*Cursor
	using  []*scope
	bases  []*scope
	// transparent scopes, like template parameter lists, pass new
	// declarations up to their parent.
	transparent bool
	fn          bool
}

func newScope(parent *scope, owner *Cursor) *scope {
	return &scope{parent: parent, owner: owner, names: map[string][]*Cursor{}}
}

func (s *scope) add(c *Cursor) {
	for s.transparent && s.parent != nil {
		s = s.parent
	}
	if c.name == "" {
		return
	}
	s.names[c.name] = append(s.names[c.name], c)
}

// local searches s, its base classes and the namespaces it uses.
func (s *scope) local(name string, want func(*Cursor) bool, depth int) *Cursor {
	if s == nil || depth > 8 {
		return nil
	}
	for _, c := range s.names[name] {
		if want(c) {
			return c
		}
	}
	for _, b := range s.bases {
		if c := b.local(name, want, depth+1); c != nil {
			return c
		}
	}
	for _, u := range s.using {
		if c := u.local(name, want, depth+1); c != nil {
			return c
		}
	}
	return nil
}

// lookup searches outward from s. The scope the name was found in is
// returned with it.
func (s *scope) lookup(name string, want func(*Cursor) bool) (*Cursor, *scope) {
	for sc := s; sc != nil; sc = sc.parent {
		if c := sc.local(name, want, 0); c != nil {
			return c, sc
		}
	}
	return nil, nil
}

// lookupPrefer falls back to any declaration when none matches want.
func (s *scope) lookupPrefer(name string, want func(*Cursor) bool) (*Cursor, *scope) {
	if c, sc := s.lookup(name, want); c != nil {
		return c, sc
	}
	return s.lookup(name, anyDecl)
}

func (s *scope) function() *scope {
	for sc := s; sc != nil; sc = sc.parent {
		if sc.fn {
			return sc
		}
	}
	return nil
}

// record returns the innermost enclosing record scope.
func (s *scope) record() *Cursor {
	for sc := s; sc != nil; sc = sc.parent {
		if sc.owner != nil && isRecord(sc.owner.kind) && sc.owner.scope == sc {
			return sc.owner
		}
		if sc.fn && sc.owner != nil && sc.owner.parent != nil && isRecord(sc.owner.parent.kind) {
			return sc.owner.parent
		}
	}
	return nil
}
