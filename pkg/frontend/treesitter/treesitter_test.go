package treesitter_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
	"github.com/unnamed42/chromatica.nvim/pkg/frontend/treesitter"
	"github.com/unnamed42/chromatica.nvim/pkg/hover"
	"github.com/unnamed42/chromatica.nvim/pkg/semtok"
	"github.com/unnamed42/chromatica.nvim/pkg/syntax"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.TestWriter{T: t}).With().Timestamp().Logger().WithContext(context.Background())
}

func parse(t *testing.T, name, src string) *treesitter.Unit {
	t.Helper()
	u, err := treesitter.Parse(testContext(t), name, []byte(src))
	require.NoError(t, err)
	return u
}

func tokenAt(t *testing.T, u *treesitter.Unit, line, col int) cindex.Token {
	t.Helper()
	file, ok := u.File(u.Name())
	require.True(t, ok)
	loc := u.Location(file, line, col)
	toks := u.Tokens(cindex.Range{Start: loc, End: u.Location(file, line+1, 1)})
	require.NotEmpty(t, toks, "no token at %d:%d", line, col)
	require.Equal(t, col, toks[0].Location.Column, "no token starts at %d:%d", line, col)
	return toks[0]
}

func cursorKind(tok cindex.Token) cindex.CursorKind {
	if tok.Cursor == nil {
		return cindex.NoDeclFound
	}
	return tok.Cursor.Kind()
}

// labelAt finds the group a highlighted token at line:col landed in.
func labelAt(h semtok.Highlights, line, col int) syntax.Label {
	for label, positions := range h {
		for _, p := range positions {
			if p.Line == line && p.Column == col {
				return label
			}
		}
	}
	return syntax.None
}

func TestMacroTokens(t *testing.T) {
	u := parse(t, "macro.c", "#define MAX 100\nint a = MAX;\n")

	tests := []struct {
		name     string
		line     int
		col      int
		spelling string
		tok      cindex.TokenKind
		kind     cindex.CursorKind
	}{
		{name: "hash", line: 1, col: 1, spelling: "#", tok: cindex.TokenPunctuation, kind: cindex.MacroDefinition},
		{name: "directive", line: 1, col: 2, spelling: "define", tok: cindex.TokenKeyword, kind: cindex.MacroDefinition},
		{name: "macro_name", line: 1, col: 9, spelling: "MAX", tok: cindex.TokenIdentifier, kind: cindex.MacroDefinition},
		{name: "macro_value", line: 1, col: 13, spelling: "100", tok: cindex.TokenLiteral, kind: cindex.IntegerLiteral},
		{name: "variable", line: 2, col: 5, spelling: "a", tok: cindex.TokenIdentifier, kind: cindex.VarDecl},
		{name: "macro_use", line: 2, col: 9, spelling: "MAX", tok: cindex.TokenIdentifier, kind: cindex.MacroInstantiation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := tokenAt(t, u, tt.line, tt.col)
			assert.Equal(t, tt.spelling, tok.Spelling)
			assert.Equal(t, tt.tok, tok.Kind)
			assert.Equal(t, tt.kind, cursorKind(tok))
		})
	}

	h, ok := semtok.Extract(testContext(t), u, "macro.c", 1, 1)
	require.True(t, ok)
	assert.Equal(t, semtok.Highlights{
		syntax.Keyword:         {{Line: 1, Column: 2, Length: 6}},
		syntax.MacroDefinition: {{Line: 1, Column: 9, Length: 3}},
		syntax.Number:          {{Line: 1, Column: 13, Length: 3}},
	}, h)
}

const shapes = `struct Point {
  int x;
  int get() { return x; }
};
enum Color { Red, Green };
int add(int a, int b) { return a + b; }
void use(Point p) {
  int v = p.x;
  v = p.get();
  Color c = Red;
  add(v, 1);
}
`

func TestHighlightLabels(t *testing.T) {
	u := parse(t, "shapes.cpp", shapes)

	h, ok := semtok.Extract(testContext(t), u, "shapes.cpp", 1, 12)
	require.True(t, ok)

	tests := []struct {
		name string
		line int
		col  int
		want syntax.Label
	}{
		{name: "struct_name", line: 1, col: 8, want: syntax.StructDecl},
		{name: "field", line: 2, col: 7, want: syntax.FieldDecl},
		{name: "method", line: 3, col: 7, want: syntax.FunctionDecl},
		{name: "implicit_member", line: 3, col: 22, want: syntax.MemberRefExprVar},
		{name: "enum_name", line: 5, col: 6, want: syntax.EnumDecl},
		{name: "enumerator", line: 5, col: 14, want: syntax.EnumConstantDecl},
		{name: "function", line: 6, col: 5, want: syntax.FunctionDecl},
		{name: "parameter", line: 6, col: 13, want: syntax.ParmDecl},
		{name: "parameter_use", line: 6, col: 32, want: syntax.Variable},
		{name: "type_ref", line: 7, col: 10, want: syntax.TypeRef},
		{name: "record_parameter", line: 7, col: 16, want: syntax.ParmDecl},
		{name: "record_variable", line: 8, col: 11, want: syntax.Variable},
		{name: "member_variable", line: 8, col: 13, want: syntax.MemberRefExprVar},
		{name: "member_call", line: 9, col: 9, want: syntax.MemberRefExprCall},
		{name: "enum_type_ref", line: 10, col: 3, want: syntax.TypeRef},
		{name: "enum_constant", line: 10, col: 13, want: syntax.EnumConstant},
		{name: "function_call", line: 11, col: 3, want: syntax.Function},
		{name: "number", line: 11, col: 10, want: syntax.Number},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labelAt(h, tt.line, tt.col))
		})
	}
}

func TestMultiLineComment(t *testing.T) {
	u := parse(t, "c.c", "/* one\n   two\n   three */\nint x;\n")

	h, ok := semtok.Extract(testContext(t), u, "c.c", 1, 4)
	require.True(t, ok)
	require.Len(t, h[syntax.Comment], 1)
	assert.Equal(t, semtok.Position{Line: 1, Column: 1, Length: 25, ExtraLines: 2}, h[syntax.Comment][0])

	tok := tokenAt(t, u, 1, 1)
	assert.Nil(t, tok.Cursor)
}

func TestResolveConstructorUses(t *testing.T) {
	src := "struct Point { Point(int x); };\nPoint p(5);\nPoint q = Point(5);\n"
	u := parse(t, "point.cpp", src)
	ctx := testContext(t)

	tests := []struct {
		name string
		line int
		col  int
	}{
		{name: "declaration", line: 1, col: 8},
		{name: "type_of_variable", line: 2, col: 1},
		{name: "temporary", line: 3, col: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym, ok := hover.ResolveSymbol(ctx, u, "point.cpp", tt.line, tt.col)
			require.True(t, ok)
			assert.Equal(t, cindex.StructDecl, sym.Kind())
			assert.Equal(t, "Point", sym.Spelling())
			assert.Equal(t, 1, sym.Location().Line)
			assert.Equal(t, 8, sym.Location().Column)
		})
	}
}

func TestResolveOutOfLineDefinition(t *testing.T) {
	src := `struct Counter {
  void bump();
  int n;
};
void Counter::bump() { n++; }
int main() {
  Counter c;
  c.bump();
}
`
	u := parse(t, "counter.cpp", src)
	ctx := testContext(t)

	sym, ok := hover.ResolveSymbol(ctx, u, "counter.cpp", 8, 5)
	require.True(t, ok)
	assert.Equal(t, cindex.CXXMethod, sym.Kind())
	assert.Equal(t, "bump", sym.Spelling())
	assert.Equal(t, 5, sym.Location().Line)

	parent, ok := sym.SemanticParent()
	require.True(t, ok)
	assert.Equal(t, "Counter", parent.Spelling())

	field, ok := hover.ResolveSymbol(ctx, u, "counter.cpp", 5, 24)
	require.True(t, ok)
	assert.Equal(t, cindex.FieldDecl, field.Kind())
	assert.Equal(t, 3, field.Location().Line)
}

func TestResolveNothing(t *testing.T) {
	u := parse(t, "blank.c", "int x;\n\n// note\n/* x\n   x */ int y;\n")
	ctx := testContext(t)

	_, ok := hover.ResolveSymbol(ctx, u, "blank.c", 2, 1)
	assert.False(t, ok)

	_, ok = hover.ResolveSymbol(ctx, u, "blank.c", 3, 4)
	assert.False(t, ok)

	// "x" inside a block comment is not the variable x
	_, ok = hover.ResolveSymbol(ctx, u, "blank.c", 4, 4)
	assert.False(t, ok)

	_, ok = hover.ResolveSymbol(ctx, u, "blank.c", 5, 4)
	assert.False(t, ok)

	sym, ok := hover.ResolveSymbol(ctx, u, "blank.c", 5, 13)
	require.True(t, ok)
	assert.Equal(t, "y", sym.Spelling())

	_, ok = hover.ResolveSymbol(ctx, u, "other.c", 1, 5)
	assert.False(t, ok)

	sym, ok = hover.ResolveSymbol(ctx, u, "blank.c", 1, 5)
	require.True(t, ok)
	assert.Equal(t, cindex.VarDecl, sym.Kind())
}

func TestNamespaceLookup(t *testing.T) {
	src := `namespace geo {
int area;
}
int f() { return geo::area; }
`
	u := parse(t, "ns.cpp", src)

	ns := tokenAt(t, u, 4, 18)
	assert.Equal(t, "geo", ns.Spelling)
	assert.Equal(t, cindex.NamespaceRef, cursorKind(ns))

	area := tokenAt(t, u, 4, 23)
	require.Equal(t, cindex.DeclRefExpr, cursorKind(area))
	ref, ok := area.Cursor.Referenced()
	require.True(t, ok)
	assert.Equal(t, cindex.VarDecl, ref.Kind())
	assert.Equal(t, 2, ref.Location().Line)
}

func TestParseFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/a.c", []byte("int f(void);\n"), 0o644))

	u, err := treesitter.ParseFile(testContext(t), fs, "/src/a.c")
	require.NoError(t, err)
	assert.Equal(t, "/src/a.c", u.Name())

	_, err = treesitter.ParseFile(testContext(t), fs, "/src/missing.c")
	assert.Error(t, err)
}

func TestEmptyParameterListInC(t *testing.T) {
	u := parse(t, "k.c", "int f();\nint g(void);\n")

	f := tokenAt(t, u, 1, 5)
	assert.Equal(t, cindex.TypeFunctionNoProto, f.Cursor.Type().Kind)

	g := tokenAt(t, u, 2, 5)
	assert.Equal(t, cindex.TypeFunctionProto, g.Cursor.Type().Kind)
}

const templates = `template <typename T>
T id(T x) { return x; }
template <class T> using V = T;
class Base {};
class Derived : public Base {};
`

func TestTemplateAndBaseExtents(t *testing.T) {
	u := parse(t, "templates.cpp", templates)

	tests := []struct {
		name  string
		line  int
		col   int
		kind  cindex.CursorKind
		label syntax.Label
	}{
		{name: "function_template_keyword", line: 1, col: 1, kind: cindex.FunctionTemplate, label: syntax.Type},
		{name: "alias_template_keyword", line: 3, col: 1, kind: cindex.TypeAliasTemplateDecl, label: syntax.Type},
		{name: "alias_template_name", line: 3, col: 26, kind: cindex.TypeAliasTemplateDecl, label: syntax.Decl},
		{name: "base_access", line: 5, col: 17, kind: cindex.CXXBaseSpecifier, label: syntax.Keyword},
	}

	h, ok := semtok.Extract(testContext(t), u, "templates.cpp", 1, 5)
	require.True(t, ok)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := tokenAt(t, u, tt.line, tt.col)
			assert.Equal(t, tt.kind, cursorKind(tok))
			assert.Equal(t, tt.label, labelAt(h, tt.line, tt.col))
		})
	}

	base := tokenAt(t, u, 5, 17)
	ref, ok := base.Cursor.Referenced()
	require.True(t, ok)
	assert.Equal(t, "Base", ref.Spelling())
	assert.Equal(t, 4, ref.Location().Line)
}
