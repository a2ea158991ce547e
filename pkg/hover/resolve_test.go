package hover_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
	"github.com/unnamed42/chromatica.nvim/pkg/cindex/cindextest"
	"github.com/unnamed42/chromatica.nvim/pkg/hover"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.TestWriter{T: t}).With().Timestamp().Logger().WithContext(context.Background())
}

// pointUnit models
//
//	struct Point { Point(int x); ~Point(); };
//	Point p(5);
//	Point q = Point(5);
//	/* note */
//	void f() { /* f */ }
type pointUnit struct {
	*cindextest.Unit
	structDecl *cindextest.Cursor
	ctor       *cindextest.Cursor
	dtor       *cindextest.Cursor
	varP       *cindextest.Cursor
}

func newPointUnit() *pointUnit {
	u := cindextest.NewUnit("point.cpp")
	tu := u.AddCursor(&cindextest.Cursor{K: cindex.TranslationUnit, Name: "point.cpp", Ext: u.Span(1, 1, 6, 1)})

	st := u.AddCursor(&cindextest.Cursor{K: cindex.StructDecl, Name: "Point", T: cindex.Type{Kind: cindex.TypeRecord, Spelling: "Point"}, Ext: u.Span(1, 1, 1, 41), Parent: tu})
	st.Loc = cindex.Location{File: u.Name, Line: 1, Column: 8}
	st.Def, st.Ref = st, st
	ctor := u.AddCursor(&cindextest.Cursor{K: cindex.Constructor, Name: "Point", Ext: u.Span(1, 16, 1, 28), Parent: st})
	ctor.Ref = ctor
	dtor := u.AddCursor(&cindextest.Cursor{K: cindex.Destructor, Name: "~Point", Ext: u.Span(1, 30, 1, 38), Parent: st})
	dtor.Ref = dtor
	parm := u.AddCursor(&cindextest.Cursor{K: cindex.ParmDecl, Name: "x", T: cindex.Type{Kind: cindex.TypeInt, Spelling: "int"}, Ext: u.Span(1, 22, 1, 27), Parent: ctor})
	parm.Def, parm.Ref = parm, parm

	u.AddToken(cindex.TokenKeyword, "struct", 1, 1, st)
	u.AddToken(cindex.TokenIdentifier, "Point", 1, 8, st)
	u.AddToken(cindex.TokenPunctuation, "{", 1, 14, st)
	u.AddToken(cindex.TokenIdentifier, "Point", 1, 16, ctor)
	u.AddToken(cindex.TokenPunctuation, "(", 1, 21, ctor)
	u.AddToken(cindex.TokenKeyword, "int", 1, 22, parm)
	u.AddToken(cindex.TokenIdentifier, "x", 1, 26, parm)
	u.AddToken(cindex.TokenPunctuation, ")", 1, 27, ctor)
	u.AddToken(cindex.TokenPunctuation, ";", 1, 28, st)
	u.AddToken(cindex.TokenPunctuation, "~", 1, 30, dtor)
	u.AddToken(cindex.TokenIdentifier, "Point", 1, 31, dtor)
	u.AddToken(cindex.TokenPunctuation, "(", 1, 36, dtor)
	u.AddToken(cindex.TokenPunctuation, ")", 1, 37, dtor)
	u.AddToken(cindex.TokenPunctuation, ";", 1, 38, st)
	u.AddToken(cindex.TokenPunctuation, "}", 1, 40, st)
	u.AddToken(cindex.TokenPunctuation, ";", 1, 41, tu)

	p := u.AddCursor(&cindextest.Cursor{K: cindex.VarDecl, Name: "p", T: cindex.Type{Kind: cindex.TypeRecord, Spelling: "Point"}, Ext: u.Span(2, 1, 2, 11), Parent: tu})
	p.Loc = cindex.Location{File: u.Name, Line: 2, Column: 7}
	p.Def, p.Ref = p, p
	typeRef := u.AddCursor(&cindextest.Cursor{K: cindex.TypeRef, Name: "struct Point", Ext: u.Span(2, 1, 2, 6), Ref: st})
	lit := u.AddCursor(&cindextest.Cursor{K: cindex.IntegerLiteral, T: cindex.Type{Kind: cindex.TypeInt}, Ext: u.Span(2, 9, 2, 10)})

	u.AddToken(cindex.TokenIdentifier, "Point", 2, 1, typeRef)
	u.AddToken(cindex.TokenIdentifier, "p", 2, 7, p)
	u.AddToken(cindex.TokenPunctuation, "(", 2, 8, p)
	u.AddToken(cindex.TokenLiteral, "5", 2, 9, lit)
	u.AddToken(cindex.TokenPunctuation, ")", 2, 10, p)
	u.AddToken(cindex.TokenPunctuation, ";", 2, 11, tu)

	q := u.AddCursor(&cindextest.Cursor{K: cindex.VarDecl, Name: "q", T: cindex.Type{Kind: cindex.TypeRecord, Spelling: "Point"}, Ext: u.Span(3, 1, 3, 19), Parent: tu})
	q.Def, q.Ref = q, q
	call := u.AddCursor(&cindextest.Cursor{K: cindex.CallExpr, Name: "Point", T: cindex.Type{Kind: cindex.TypeRecord}, Ext: u.Span(3, 11, 3, 19), Ref: ctor})
	qRef := u.AddCursor(&cindextest.Cursor{K: cindex.TypeRef, Name: "struct Point", Ext: u.Span(3, 1, 3, 6), Ref: st})

	u.AddToken(cindex.TokenIdentifier, "Point", 3, 1, qRef)
	u.AddToken(cindex.TokenIdentifier, "q", 3, 7, q)
	u.AddToken(cindex.TokenPunctuation, "=", 3, 9, q)
	u.AddToken(cindex.TokenIdentifier, "Point", 3, 11, call)
	u.AddToken(cindex.TokenPunctuation, "(", 3, 16, call)
	u.AddToken(cindex.TokenLiteral, "5", 3, 17, lit)
	u.AddToken(cindex.TokenPunctuation, ")", 3, 18, call)

	u.AddToken(cindex.TokenComment, "/* note */", 4, 1, nil)

	f := u.AddCursor(&cindextest.Cursor{K: cindex.FunctionDecl, Name: "f", T: cindex.Type{Kind: cindex.TypeFunctionProto, Spelling: "void ()"}, Ext: u.Span(5, 1, 5, 21), Parent: tu})
	f.Def, f.Ref = f, f
	u.AddToken(cindex.TokenKeyword, "void", 5, 1, f)
	u.AddToken(cindex.TokenIdentifier, "f", 5, 6, f)
	u.AddToken(cindex.TokenPunctuation, "(", 5, 7, f)
	u.AddToken(cindex.TokenPunctuation, ")", 5, 8, f)
	u.AddToken(cindex.TokenPunctuation, "{", 5, 10, f)
	u.AddToken(cindex.TokenComment, "/* f */", 5, 12, nil)
	u.AddToken(cindex.TokenPunctuation, "}", 5, 20, f)

	return &pointUnit{Unit: u, structDecl: st, ctor: ctor, dtor: dtor, varP: p}
}

func TestResolveSymbol(t *testing.T) {
	u := newPointUnit()

	tests := []struct {
		name     string
		line     int
		col      int
		wantKind cindex.CursorKind
		wantName string
		wantNone bool
	}{
		{name: "struct_name", line: 1, col: 10, wantKind: cindex.StructDecl, wantName: "Point"},
		{name: "constructor_declaration", line: 1, col: 16, wantKind: cindex.StructDecl, wantName: "Point"},
		{name: "destructor_declaration", line: 1, col: 33, wantKind: cindex.StructDecl, wantName: "Point"},
		{name: "parameter", line: 1, col: 26, wantKind: cindex.ParmDecl, wantName: "x"},
		{name: "type_reference", line: 2, col: 1, wantKind: cindex.StructDecl, wantName: "Point"},
		{name: "type_reference_last_byte", line: 2, col: 5, wantKind: cindex.StructDecl, wantName: "Point"},
		{name: "variable", line: 2, col: 7, wantKind: cindex.VarDecl, wantName: "p"},
		{name: "constructor_call", line: 3, col: 12, wantKind: cindex.StructDecl, wantName: "Point"},
		{name: "function", line: 5, col: 6, wantKind: cindex.FunctionDecl, wantName: "f"},
		{name: "whitespace_in_struct", line: 1, col: 7, wantNone: true},
		{name: "whitespace_after_type", line: 2, col: 6, wantNone: true},
		{name: "keyword", line: 1, col: 2, wantNone: true},
		{name: "punctuation", line: 1, col: 14, wantNone: true},
		{name: "literal", line: 2, col: 9, wantNone: true},
		{name: "block_comment", line: 4, col: 4, wantNone: true},
		{name: "comment_inside_function", line: 5, col: 15, wantNone: true},
		{name: "past_everything", line: 40, col: 1, wantNone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym, ok := hover.ResolveSymbol(testContext(t), u, "point.cpp", tt.line, tt.col)
			if tt.wantNone {
				assert.False(t, ok)
				assert.Nil(t, sym)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, sym.Kind())
			assert.Equal(t, tt.wantName, sym.Spelling())
		})
	}
}

func TestResolveSymbolNeverReturnsSpecialMembers(t *testing.T) {
	u := newPointUnit()
	for line := 1; line <= 5; line++ {
		for col := 1; col <= 45; col++ {
			sym, ok := hover.ResolveSymbol(testContext(t), u, "point.cpp", line, col)
			if !ok {
				continue
			}
			assert.NotEqual(t, cindex.Constructor, sym.Kind(), "%d:%d", line, col)
			assert.NotEqual(t, cindex.Destructor, sym.Kind(), "%d:%d", line, col)
		}
	}
}

func TestResolveSymbolSpellingMismatch(t *testing.T) {
	u := cindextest.NewUnit("m.c")
	target := u.AddCursor(&cindextest.Cursor{K: cindex.VarDecl, Name: "target", Ext: u.Span(1, 5, 1, 11)})
	target.Def = target
	ref := u.AddCursor(&cindextest.Cursor{K: cindex.DeclRefExpr, Name: "alias", Ext: u.Span(2, 1, 2, 6), Ref: target})
	u.AddToken(cindex.TokenIdentifier, "alias", 2, 1, ref)

	sym, ok := hover.ResolveSymbol(testContext(t), u, "m.c", 2, 3)
	assert.False(t, ok)
	assert.Nil(t, sym)
}

func TestResolveSymbolMacros(t *testing.T) {
	u := cindextest.NewUnit("macro.c")
	def := u.AddCursor(&cindextest.Cursor{K: cindex.MacroDefinition, Name: "MAX", Ext: u.Span(1, 9, 1, 16)})
	use := u.AddCursor(&cindextest.Cursor{K: cindex.MacroInstantiation, Name: "MAX", Ext: u.Span(2, 8, 2, 11), Ref: def})
	u.AddToken(cindex.TokenIdentifier, "MAX", 1, 9, def)
	u.AddToken(cindex.TokenIdentifier, "MAX", 2, 8, use)

	sym, ok := hover.ResolveSymbol(testContext(t), u, "macro.c", 1, 10)
	require.True(t, ok)
	assert.Same(t, def, sym)

	sym, ok = hover.ResolveSymbol(testContext(t), u, "macro.c", 2, 8)
	require.True(t, ok)
	assert.Same(t, def, sym)
}

func TestSymbol(t *testing.T) {
	decl := &cindextest.Cursor{K: cindex.FunctionDecl, Name: "g"}
	def := &cindextest.Cursor{K: cindex.FunctionDecl, Name: "g"}
	decl.Def, decl.Ref = def, decl

	sym, ok := hover.Symbol(decl)
	require.True(t, ok)
	assert.Same(t, def, sym, "definition wins over the reference")

	orphanCtor := &cindextest.Cursor{K: cindex.Constructor, Name: "T"}
	call := &cindextest.Cursor{K: cindex.CallExpr, Name: "T", Ref: orphanCtor}
	_, ok = hover.Symbol(call)
	assert.False(t, ok, "constructor without a parent")

	_, ok = hover.Symbol(&cindextest.Cursor{K: cindex.IntegerLiteral})
	assert.False(t, ok)
}

func TestResolveSymbolUnknownFile(t *testing.T) {
	u := &MockUnit{}
	u.On("File", "missing.c").Return(cindex.File{}, false)

	sym, ok := hover.ResolveSymbol(testContext(t), u, "missing.c", 1, 1)
	assert.False(t, ok)
	assert.Nil(t, sym)

	u.AssertExpectations(t)
	u.AssertNotCalled(t, "CursorAt", mock.Anything)
	u.AssertNotCalled(t, "Tokens", mock.Anything)
}

func TestResolveSymbolNoCursor(t *testing.T) {
	file := cindex.File{Name: "a.c"}
	loc := cindex.Location{File: "a.c", Line: 3, Column: 4}

	u := &MockUnit{}
	u.On("File", "a.c").Return(file, true)
	u.On("Location", file, 3, 4).Return(loc)
	u.On("CursorAt", loc).Return(nil, false)

	_, ok := hover.ResolveSymbol(testContext(t), u, "a.c", 3, 4)
	assert.False(t, ok)

	u.AssertExpectations(t)
	u.AssertNotCalled(t, "Tokens", mock.Anything)
}
