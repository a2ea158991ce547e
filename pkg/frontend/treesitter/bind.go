package treesitter

import (
	"strings"

	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
)

// nodeKinds are the cursor kinds of expression and statement nodes that need
// no name resolution.
var nodeKinds = map[string]cindex.CursorKind{
	"compound_statement":           cindex.CompoundStmt,
	"if_statement":                 cindex.IfStmt,
	"else_clause":                  cindex.IfStmt,
	"switch_statement":             cindex.SwitchStmt,
	"while_statement":              cindex.WhileStmt,
	"do_statement":                 cindex.DoStmt,
	"for_statement":                cindex.ForStmt,
	"for_range_loop":               cindex.CXXForRangeStmt,
	"goto_statement":               cindex.GotoStmt,
	"continue_statement":           cindex.ContinueStmt,
	"break_statement":              cindex.BreakStmt,
	"return_statement":             cindex.ReturnStmt,
	"co_return_statement":          cindex.ReturnStmt,
	"expression_statement":         cindex.UnexposedStmt,
	"try_statement":                cindex.CXXTryStmt,
	"catch_clause":                 cindex.CXXCatchStmt,
	"throw_statement":              cindex.CXXThrowExpr,
	"seh_try_statement":            cindex.SEHTryStmt,
	"seh_except_clause":            cindex.SEHExceptStmt,
	"seh_finally_clause":           cindex.SEHFinallyStmt,
	"gnu_asm_expression":           cindex.AsmStmt,
	"parenthesized_expression":     cindex.ParenExpr,
	"unary_expression":             cindex.UnaryOperator,
	"pointer_expression":           cindex.UnaryOperator,
	"update_expression":            cindex.UnaryOperator,
	"binary_expression":            cindex.BinaryOperator,
	"comma_expression":             cindex.BinaryOperator,
	"conditional_expression":       cindex.ConditionalOperator,
	"subscript_expression":         cindex.ArraySubscriptExpr,
	"cast_expression":              cindex.CStyleCastExpr,
	"compound_literal_expression":  cindex.CompoundLiteralExpr,
	"initializer_list":             cindex.InitListExpr,
	"sizeof_expression":            cindex.UnaryExpr,
	"alignof_expression":           cindex.UnaryExpr,
	"offsetof_expression":          cindex.UnaryExpr,
	"generic_expression":           cindex.GenericSelectionExpr,
	"new_expression":               cindex.CXXNewExpr,
	"delete_expression":            cindex.CXXDeleteExpr,
	"lambda_expression":            cindex.LambdaExpr,
	"parameter_pack_expansion":     cindex.PackExpansionExpr,
	"string_literal":               cindex.StringLiteral,
	"raw_string_literal":           cindex.StringLiteral,
	"concatenated_string":          cindex.StringLiteral,
	"char_literal":                 cindex.CharacterLiteral,
	"true":                         cindex.CXXBoolLiteralExpr,
	"false":                        cindex.CXXBoolLiteralExpr,
	"this":                         cindex.CXXThisExpr,
	"attribute_specifier":          cindex.UnexposedAttr,
	"attribute_declaration":        cindex.UnexposedAttr,
	"ms_declspec_modifier":         cindex.UnexposedAttr,
	"ERROR":                        cindex.InvalidCode,
	"template_argument_list":       cindex.UnexposedExpr,
	"user_defined_literal":         cindex.UnexposedExpr,
	"co_await_expression":          cindex.UnexposedExpr,
	"requires_expression":          cindex.UnexposedExpr,
	"fold_expression":              cindex.UnexposedExpr,
	"field_initializer_list":       cindex.UnexposedExpr,
	"condition_clause":             cindex.UnexposedExpr,
	"argument_list":                cindex.UnexposedExpr,
	"abstract_function_declarator": cindex.UnexposedExpr,
}

var literalTypes = map[cindex.CursorKind]cindex.TypeKind{
	cindex.StringLiteral:      cindex.TypeConstantArray,
	cindex.CharacterLiteral:   cindex.TypeCharS,
	cindex.CXXBoolLiteralExpr: cindex.TypeBool,
}

var castKinds = map[string]cindex.CursorKind{
	"static_cast":      cindex.CXXStaticCastExpr,
	"dynamic_cast":     cindex.CXXDynamicCastExpr,
	"reinterpret_cast": cindex.CXXReinterpretCastExpr,
	"const_cast":       cindex.CXXConstCastExpr,
}

func isDirective(kind string) bool {
	switch kind {
	case "preproc_def", "preproc_function_def", "preproc_include", "preproc_call",
		"preproc_if", "preproc_ifdef", "preproc_elif", "preproc_elifdef", "preproc_else":
		return true
	}
	return false
}

// bind attaches reference cursors to names and expression cursors to the
// nodes that have none yet. Names inside directive lines stay with the
// directive.
func (b *builder) bind(n *node, inDirective bool) {
	switch n.kind {
	case "number_literal":
		if n.cursor == nil {
			n.cursor = b.literal(n.start, n.end)
		}
	case "null":
		if n.cursor == nil && !inDirective {
			if n.text(b.src) == "NULL" {
				n.cursor = b.ref(cindex.MacroInstantiation, n, nil)
			} else {
				n.cursor = b.newCursor(cindex.CXXNullPtrLiteralExpr, n, "")
				n.cursor.typ = cindex.Type{Kind: cindex.TypeNullPtr, Spelling: "std::nullptr_t"}
			}
		}
	}

	if n.cursor == nil && !inDirective {
		switch n.kind {
		case "call_expression":
			b.bindCall(n)
		case "field_expression":
			b.bindMember(n)
		case "identifier":
			b.bindIdentifier(n)
		case "type_identifier":
			b.bindType(n)
		case "namespace_identifier":
			b.bindNamespace(n)
		case "field_identifier":
			b.bindField(n)
		case "statement_identifier":
			b.bindLabel(n)
		case "case_statement":
			kind := cindex.CaseStmt
			if n.hasToken("default") {
				kind = cindex.DefaultStmt
			}
			n.cursor = b.newCursor(kind, n, "")
		case "assignment_expression":
			kind := cindex.CompoundAssignOperator
			if op := n.child("operator"); op != nil && op.kind == "=" {
				kind = cindex.BinaryOperator
			}
			n.cursor = b.newCursor(kind, n, "")
		case "base_class_clause":
			b.bindBases(n)
		case "virtual_specifier":
			kind := cindex.CXXOverrideAttr
			if n.text(b.src) == "final" {
				kind = cindex.CXXFinalAttr
			}
			n.cursor = b.newCursor(kind, n, "")
		default:
			if kind, ok := nodeKinds[n.kind]; ok {
				c := b.newCursor(kind, n, "")
				if t, ok := literalTypes[kind]; ok {
					c.name = n.text(b.src)
					c.typ = cindex.Type{Kind: t}
				}
				n.cursor = c
			}
		}
	}

	directive := isDirective(n.kind)
	for _, ch := range n.children {
		in := inDirective
		if directive {
			in = ch.field != "" && ch.field != "alternative"
		}
		b.bind(ch, in)
	}
}

// bindBases gives every base in a base clause its own specifier cursor,
// spanning its access and virtual keywords and the base name.
func (b *builder) bindBases(n *node) {
	var seg []*node
	flush := func() {
		if len(seg) == 0 {
			return
		}
		last := seg[len(seg)-1]
		c := b.span(cindex.CXXBaseSpecifier, seg[0].start, last.end, compact(last.text(b.src)))
		for _, s := range seg {
			switch s.kind {
			case "type_identifier", "qualified_identifier", "template_type":
				if to := b.resolveName(s, isType); to != nil {
					c.ref, c.typ = to, to.typ
				}
			case "access_specifier", "virtual":
				s.cursor = c
			}
		}
		seg = nil
	}
	for _, ch := range n.children {
		switch ch.kind {
		case ":", ",":
			flush()
		case "comment", "attribute_declaration", "...":
		default:
			seg = append(seg, ch)
		}
	}
	flush()
}

func (b *builder) ref(kind cindex.CursorKind, n *node, to *Cursor) *Cursor {
	c := b.newCursor(kind, n, n.text(b.src))
	c.ref = to
	if to != nil {
		c.typ = to.typ
	}
	return c
}

// numberKind classifies a numeric literal by its spelling.
func numberKind(text string) (cindex.CursorKind, cindex.TypeKind) {
	t := strings.ToLower(strings.ReplaceAll(text, "'", ""))
	if strings.HasSuffix(t, "i") || strings.HasSuffix(t, "j") {
		return cindex.ImaginaryLiteral, cindex.TypeComplex
	}
	if strings.HasPrefix(t, "0x") {
		if strings.ContainsAny(t, ".p") {
			return cindex.FloatingLiteral, cindex.TypeDouble
		}
		return cindex.IntegerLiteral, cindex.TypeInt
	}
	if strings.ContainsAny(t, ".e") {
		if strings.HasSuffix(t, "f") {
			return cindex.FloatingLiteral, cindex.TypeFloat
		}
		return cindex.FloatingLiteral, cindex.TypeDouble
	}
	return cindex.IntegerLiteral, cindex.TypeInt
}

func (b *builder) literal(start, end int) *Cursor {
	text := string(b.src[start:end])
	kind, t := numberKind(text)
	c := b.span(kind, start, end, text)
	c.typ = cindex.Type{Kind: t}
	return c
}

// isCallee reports whether n names the function of a call expression.
func isCallee(n *node) bool {
	p := n
	for p.parent != nil {
		switch p.parent.kind {
		case "qualified_identifier", "template_function", "template_method":
			if p.field != "name" {
				return false
			}
		case "field_expression":
			if p.field != "field" {
				return false
			}
		case "parenthesized_expression":
		case "call_expression":
			return p.field == "function"
		default:
			return false
		}
		p = p.parent
	}
	return false
}

func (b *builder) bindIdentifier(n *node) {
	name := n.text(b.src)
	if m := b.macro(name, n.start); m != nil {
		n.cursor = b.ref(cindex.MacroInstantiation, n, m)
		return
	}

	callee := isCallee(n)
	d, home := b.resolveRef(n, isValue)
	if d == nil {
		c := b.ref(cindex.DeclRefExpr, n, nil)
		c.typ = cindex.Type{Kind: cindex.TypeUnexposed}
		if callee {
			c.typ = cindex.Type{Kind: cindex.TypeFunctionNoProto}
		}
		n.cursor = c
		return
	}

	switch {
	case d.kind == cindex.Namespace || d.kind == cindex.NamespaceAlias:
		n.cursor = b.ref(cindex.NamespaceRef, n, d)
	case d.kind == cindex.ClassTemplate:
		n.cursor = b.ref(cindex.TemplateRef, n, d)
	case isType(d):
		n.cursor = b.ref(cindex.TypeRef, n, d)
	case d.kind == cindex.LabelStmt:
		n.cursor = b.ref(cindex.LabelRef, n, d)
	case d.kind == cindex.MacroDefinition:
		n.cursor = b.ref(cindex.MacroInstantiation, n, d)
	case (d.kind == cindex.FieldDecl || d.kind == cindex.CXXMethod) && home != nil && home.owner != nil && isRecord(home.owner.kind):
		c := b.ref(cindex.MemberRefExpr, n, d)
		if callee {
			c.typ = cindex.Type{Kind: cindex.TypeUnexposed}
		}
		n.cursor = c
	default:
		n.cursor = b.ref(cindex.DeclRefExpr, n, d)
	}
}

func (b *builder) bindType(n *node) {
	d, _ := b.resolveRef(n, isType)
	kind := cindex.TypeRef
	if d != nil && d.kind == cindex.ClassTemplate {
		kind = cindex.TemplateRef
	}
	n.cursor = b.ref(kind, n, d)
}

func (b *builder) bindNamespace(n *node) {
	d, _ := b.resolveRef(n, isScope)
	kind := cindex.NamespaceRef
	switch {
	case d == nil:
	case d.kind == cindex.ClassTemplate:
		kind = cindex.TemplateRef
	case isType(d):
		kind = cindex.TypeRef
	}
	n.cursor = b.ref(kind, n, d)
}

func (b *builder) bindField(n *node) {
	switch n.parent.kind {
	case "field_initializer":
		d, _ := b.resolveRef(n, isValue)
		kind := cindex.MemberRef
		if d != nil && isType(d) {
			kind = cindex.TypeRef
		}
		n.cursor = b.ref(kind, n, d)
	case "field_designator":
		n.cursor = b.ref(cindex.MemberRef, n, nil)
	default:
		c := b.ref(cindex.MemberRefExpr, n, nil)
		c.typ = cindex.Type{Kind: cindex.TypeInvalid}
		n.cursor = c
	}
}

func (b *builder) bindLabel(n *node) {
	var d *Cursor
	if fs := b.scopeAt(n).function(); fs != nil {
		d = fs.labels[n.text(b.src)]
	}
	n.cursor = b.ref(cindex.LabelRef, n, d)
}

// bindMember resolves a field expression against the record of its
// argument.
func (b *builder) bindMember(n *node) *Cursor {
	if n.cursor != nil {
		return n.cursor
	}
	leaf := terminal(n.child("field"))
	name := ""
	if leaf != nil {
		name = leaf.text(b.src)
	}

	var d *Cursor
	if rec := b.recordOf(n.child("argument")); rec != nil && rec.scope != nil && name != "" {
		d = rec.scope.local(name, isValue, 0)
	}

	c := b.newCursor(cindex.MemberRefExpr, n, name)
	c.ref = d
	switch {
	case isCallee(n):
		c.typ = cindex.Type{Kind: cindex.TypeUnexposed}
	case d != nil:
		c.typ = d.typ
	default:
		c.typ = cindex.Type{Kind: cindex.TypeInvalid}
	}
	if leaf != nil {
		c.at = leaf.start
		leaf.cursor = c
	}
	n.cursor = c
	return c
}

// recordOf is the record an expression's value has members of.
func (b *builder) recordOf(expr *node) *Cursor {
	if expr == nil {
		return nil
	}
	switch expr.kind {
	case "identifier", "qualified_identifier":
		leaf := terminal(expr)
		if leaf != nil && leaf.cursor != nil && leaf.cursor.ref != nil {
			return recordOfDecl(leaf.cursor.ref)
		}
		d, _ := b.resolveRef(leaf, isValue)
		return recordOfDecl(d)
	case "this":
		return b.scopeAt(expr).record()
	case "field_expression":
		if m := b.bindMember(expr); m.ref != nil {
			return m.ref.record
		}
	case "parenthesized_expression":
		return b.recordOf(expr.firstNamed())
	case "pointer_expression", "subscript_expression":
		return b.recordOf(expr.child("argument"))
	case "cast_expression":
		_, rec := b.baseType(expr.child("type"))
		return rec
	case "call_expression":
		fn := expr.child("function")
		if fn == nil {
			return nil
		}
		if fn.kind == "field_expression" {
			if m := b.bindMember(fn); m.ref != nil {
				return m.ref.record
			}
			return nil
		}
		d, _ := b.resolveRef(terminal(fn), isValue)
		if d != nil && isType(d) {
			return recordOfDecl(d)
		}
		if d != nil {
			return d.record
		}
	}
	return nil
}

// constructor is the first constructor declared in rec.
func constructor(rec *Cursor) *Cursor {
	if rec == nil || rec.scope == nil {
		return nil
	}
	for _, c := range rec.scope.names[rec.name] {
		if c.kind == cindex.Constructor {
			return c
		}
	}
	return nil
}

func (b *builder) bindCall(n *node) {
	fn := n.child("function")
	if fn != nil && fn.kind == "template_function" {
		if name := fn.child("name"); name != nil {
			if kind, ok := castKinds[name.text(b.src)]; ok {
				c := b.newCursor(kind, n, name.text(b.src))
				n.cursor = c
				name.cursor = c
				name.keyword = true
				return
			}
		}
	}

	c := b.newCursor(cindex.CallExpr, n, "")
	c.typ = cindex.Type{Kind: cindex.TypeUnexposed}
	n.cursor = c
	if fn == nil {
		return
	}

	if fn.kind == "field_expression" {
		m := b.bindMember(fn)
		c.name, c.ref = m.name, m.ref
		return
	}

	leaf := terminal(fn)
	if leaf == nil {
		return
	}
	switch leaf.kind {
	case "identifier", "type_identifier", "field_identifier":
	default:
		return
	}
	c.name = leaf.text(b.src)
	if b.macro(c.name, leaf.start) != nil {
		return
	}

	d, _ := b.resolveRef(leaf, isValue)
	if d != nil && isType(d) {
		c.ref = d
		if ctor := constructor(recordOfDecl(d)); ctor != nil {
			c.ref = ctor
		}
		c.typ = cindex.Type{Kind: cindex.TypeRecord, Spelling: d.name}
		leaf.cursor = c
		return
	}
	if d != nil {
		c.ref = d
		c.record = d.record
	}
}
