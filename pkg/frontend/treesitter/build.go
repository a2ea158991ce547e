package treesitter

import (
	"bytes"
	"strings"

	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
)

// builder turns the mirrored tree into cursors. It runs two passes: declare
// creates declaration cursors and scopes in source order, bind resolves the
// names used in expressions and types against them.
type builder struct {
	u      *Unit
	src    []byte
	c      bool
	global *scope
	macros map[string][]*Cursor
}

// env is the declaration context handed down the tree.
type env struct {
	sc *scope
	// template is set for the declaration directly under a template.
	template bool
	// tmpl is set inside a template template parameter list.
	tmpl bool
	// params receives the parameters of paramsOf.
	params   *scope
	paramsOf *node
}

func (e env) next() env {
	e.template = false
	return e
}

func (b *builder) span(kind cindex.CursorKind, start, end int, name string) *Cursor {
	return &Cursor{unit: b.u, kind: kind, name: name, at: start, start: start, end: end}
}

func (b *builder) newCursor(kind cindex.CursorKind, n *node, name string) *Cursor {
	return b.span(kind, n.start, n.end, name)
}

// newDecl creates a declaration cursor spanning n and named by name.
func (b *builder) newDecl(kind cindex.CursorKind, n, name *node, parent *Cursor, def bool) *Cursor {
	c := b.newCursor(kind, n, "")
	c.decl, c.def, c.parent = true, def, parent
	if name != nil {
		c.name = compact(name.text(b.src))
		c.at = name.start
	}
	return c
}

func (b *builder) register(sc *scope, c *Cursor) {
	sc.add(c)
	if !c.def || c.name == "" {
		return
	}
	if _, ok := b.u.defs[c.key()]; !ok {
		b.u.defs[c.key()] = c
	}
}

func (b *builder) declareChildren(n *node, e env) {
	for _, ch := range n.children {
		b.declare(ch, e)
	}
}

func (b *builder) declare(n *node, e env) {
	n.scope = e.sc
	owner := e.sc.owner

	switch n.kind {
	case "preproc_def", "preproc_function_def":
		name := n.child("name")
		c := b.newDecl(cindex.MacroDefinition, n, name, b.u.tu, true)
		c.end = trimEnd(b.src, n.start, n.end)
		b.macros[c.name] = append(b.macros[c.name], c)
		n.cursor = c
		if name != nil {
			name.cursor = c
		}

	case "preproc_include":
		c := b.newCursor(cindex.InclusionDirective, n, "")
		c.end = trimEnd(b.src, n.start, n.end)
		c.parent = b.u.tu
		if p := n.child("path"); p != nil {
			c.name = strings.Trim(p.text(b.src), `"<>`)
		}
		n.cursor = c

	case "preproc_if", "preproc_ifdef", "preproc_elif", "preproc_elifdef", "preproc_else":
		c := b.span(cindex.PreprocessingDirective, n.start, lineEnd(b.src, n.start), "")
		if name := n.child("name"); name != nil {
			c.name = name.text(b.src)
		}
		n.cursor, n.directive = c, true

	case "preproc_call":
		c := b.newCursor(cindex.PreprocessingDirective, n, "")
		c.end = trimEnd(b.src, n.start, n.end)
		if d := n.child("directive"); d != nil {
			c.name = strings.TrimPrefix(d.text(b.src), "#")
		}
		n.cursor = c

	case "struct_specifier", "class_specifier", "union_specifier":
		b.declareRecord(n, e)
		return

	case "enum_specifier":
		b.declareEnum(n, e)
		return

	case "function_definition":
		b.declareFunctionDefinition(n, e)
		return

	case "declaration", "field_declaration":
		b.declareDeclaration(n, e)
		return

	case "type_definition":
		b.declareTypedef(n, e)
		return

	case "alias_declaration":
		kind := cindex.TypeAliasDecl
		if e.template {
			kind = cindex.TypeAliasTemplateDecl
		}
		b.declareChildren(n, e.next())
		name := n.child("name")
		c := b.newDecl(kind, n, name, owner, true)
		_, c.record = b.baseType(n.child("type"))
		if name != nil {
			c.typ = cindex.Type{Kind: cindex.TypeTypedef, Spelling: name.text(b.src)}
			name.cursor = c
		}
		b.register(e.sc, c)
		n.cursor = c
		return

	case "namespace_definition":
		b.declareNamespace(n, e)
		return

	case "namespace_alias_definition":
		b.declareChildren(n, e.next())
		name := n.child("name")
		c := b.newDecl(cindex.NamespaceAlias, n, name, owner, true)
		for _, ch := range n.children {
			if ch.named && ch != name && ch.kind != "comment" {
				if target := b.resolveName(lastIdentifier(ch), isScope); target != nil {
					c.scope = scopeOf(target)
				}
			}
		}
		b.register(e.sc, c)
		n.cursor = c
		if name != nil {
			name.cursor = c
		}
		return

	case "using_declaration":
		b.declareChildren(n, e.next())
		target := n.firstNamed()
		if n.hasToken("namespace") {
			c := b.newCursor(cindex.UsingDirective, n, "")
			c.decl, c.def, c.parent = true, true, owner
			if target != nil {
				c.name = compact(target.text(b.src))
				if ns := scopeOf(b.resolveName(target, isScope)); ns != nil {
					home := e.sc
					for home.transparent && home.parent != nil {
						home = home.parent
					}
					home.using = append(home.using, ns)
				}
			}
			n.cursor = c
			return
		}
		c := b.newDecl(cindex.UsingDeclaration, n, terminal(target), owner, true)
		if target != nil {
			if d := b.resolveName(target, anyDecl); d != nil && d.name == c.name {
				e.sc.add(d)
			}
		}
		n.cursor = c
		return

	case "linkage_specification":
		c := b.newCursor(cindex.LinkageSpec, n, "")
		c.decl, c.def, c.parent = true, true, owner
		n.cursor = c

	case "access_specifier":
		// the access of a base belongs to its base specifier
		if n.parent != nil && n.parent.kind == "base_class_clause" {
			break
		}
		c := b.newCursor(cindex.CXXAccessSpecifier, n, "")
		c.decl, c.def, c.parent = true, true, owner
		n.cursor = c

	case "friend_declaration":
		c := b.newCursor(cindex.FriendDecl, n, "")
		c.decl, c.def, c.parent = true, true, owner
		n.cursor = c
		e.sc = newScope(e.sc, owner)

	case "static_assert_declaration":
		c := b.newCursor(cindex.StaticAssert, n, "")
		c.decl, c.def, c.parent = true, true, owner
		n.cursor = c

	case "template_declaration":
		ts := newScope(e.sc, owner)
		ts.transparent = true
		for _, ch := range n.children {
			b.declare(ch, env{sc: ts, template: true})
		}
		// the templated declaration covers the template keyword
		for _, ch := range n.children {
			if ch.field == "parameters" || ch.cursor == nil || !ch.cursor.decl {
				continue
			}
			ch.cursor.start = n.start
			n.cursor = ch.cursor
			break
		}
		return

	case "template_template_parameter_declaration":
		inner := e.next()
		inner.tmpl = true
		b.declareChildren(n, inner)
		return

	case "type_parameter_declaration", "optional_type_parameter_declaration", "variadic_type_parameter_declaration":
		name := n.child("name")
		if name == nil {
			name = n.firstOfKind("type_identifier")
		}
		kind := cindex.TemplateTypeParameter
		if e.tmpl {
			kind = cindex.TemplateTemplateParameter
		}
		c := b.newDecl(kind, n, name, owner, true)
		if name != nil {
			c.typ = cindex.Type{Kind: cindex.TypeUnexposed, Spelling: name.text(b.src)}
			name.cursor = c
		}
		b.register(e.sc, c)
		n.cursor = c

	case "parameter_declaration", "optional_parameter_declaration", "variadic_parameter_declaration":
		b.declareParameter(n, e)
		return

	case "parameter_list":
		switch {
		case n == e.paramsOf && e.params != nil:
			e.sc = e.params
		case n.parent != nil && n.parent.kind == "catch_clause":
		default:
			e.sc = newScope(e.sc, owner)
		}
		n.scope = e.sc

	case "labeled_statement":
		label := n.child("label")
		c := b.newDecl(cindex.LabelStmt, n, label, owner, true)
		if fs := e.sc.function(); fs != nil && c.name != "" {
			fs.labels[c.name] = c
		}
		if label != nil {
			label.cursor = c
		}
		n.cursor = c

	case "lambda_expression":
		e.sc = newScope(e.sc, owner)
		e.sc.fn = true
		e.sc.labels = map[string]*Cursor{}
		if d := n.child("declarator"); d != nil {
			e.params, e.paramsOf = e.sc, d.child("parameters")
		}
		n.scope = e.sc

	case "for_range_loop":
		e.sc = newScope(e.sc, owner)
		n.scope = e.sc
		typ := n.child("type")
		if typ != nil {
			b.declare(typ, e.next())
		}
		if dn := n.child("declarator"); dn != nil {
			d := analyze(dn)
			if d.leaf != nil {
				c := b.newDecl(cindex.VarDecl, dn, d.name, owner, true)
				c.typ, c.record = b.typeOf(typ, d)
				b.register(e.sc, c)
				d.leaf.cursor = c
			}
		}
		for _, ch := range n.children {
			if ch != typ {
				b.declare(ch, e.next())
			}
		}
		return

	case "compound_statement", "for_statement", "if_statement", "while_statement",
		"switch_statement", "catch_clause", "do_statement":
		e.sc = newScope(e.sc, owner)
		n.scope = e.sc
	}

	b.declareChildren(n, e.next())
}

func (b *builder) declareRecord(n *node, e env) {
	kind := cindex.StructDecl
	switch n.kind {
	case "class_specifier":
		kind = cindex.ClassDecl
	case "union_specifier":
		kind = cindex.UnionDecl
	}

	name := n.child("name")
	leaf := terminal(name)
	body := n.child("body")
	if body == nil {
		// "struct X;" on its own is a forward declaration; anything else
		// is a use of the name.
		if n.field == "" && leaf != nil && n.parent != nil && n.parent.kind != "template_argument_list" {
			c := b.newDecl(kind, n, leaf, e.sc.owner, false)
			c.typ = cindex.Type{Kind: cindex.TypeRecord, Spelling: c.name}
			b.register(e.sc, c)
			n.cursor = c
			leaf.cursor = c
		}
		b.declareChildren(n, e.next())
		return
	}

	if e.template {
		kind = cindex.ClassTemplate
		if name != nil && name.kind == "template_type" {
			kind = cindex.ClassTemplatePartialSpecialization
		}
	}

	c := b.newDecl(kind, n, leaf, e.sc.owner, true)
	c.typ = cindex.Type{Kind: cindex.TypeRecord, Spelling: c.name}
	c.record = c
	rs := newScope(e.sc, c)
	c.scope = rs
	b.register(e.sc, c)
	n.cursor = c
	if leaf != nil {
		leaf.cursor = c
	}

	for _, ch := range n.children {
		switch {
		case ch == body:
			b.declare(ch, env{sc: rs})
			body.scope = rs
		case ch.kind == "base_class_clause":
			b.declare(ch, e.next())
			for _, base := range ch.children {
				switch base.kind {
				case "type_identifier", "qualified_identifier", "template_type":
					if rec := recordOfDecl(b.resolveName(base, isType)); rec != nil && rec.scope != nil {
						rs.bases = append(rs.bases, rec.scope)
					}
				}
			}
		default:
			b.declare(ch, e.next())
		}
	}
}

func (b *builder) declareEnum(n *node, e env) {
	name := n.child("name")
	body := n.child("body")
	if body == nil {
		b.declareChildren(n, e.next())
		return
	}

	scoped := n.hasToken("class") || n.hasToken("struct")
	c := b.newDecl(cindex.EnumDecl, n, name, e.sc.owner, true)
	c.typ = cindex.Type{Kind: cindex.TypeEnum, Spelling: c.name}
	es := newScope(e.sc, c)
	c.scope = es
	b.register(e.sc, c)
	n.cursor = c
	if name != nil {
		name.cursor = c
	}

	for _, ch := range n.children {
		if ch != body {
			b.declare(ch, e.next())
			continue
		}
		body.scope = e.sc
		for _, en := range body.children {
			if en.kind != "enumerator" {
				b.declare(en, e.next())
				continue
			}
			en.scope = e.sc
			ename := en.child("name")
			ec := b.newDecl(cindex.EnumConstantDecl, en, ename, c, true)
			ec.typ = cindex.Type{Kind: cindex.TypeEnum, Spelling: c.name}
			b.register(es, ec)
			if !scoped {
				e.sc.add(ec)
			}
			en.cursor = ec
			if ename != nil {
				ename.cursor = ec
			}
			b.declareChildren(en, e.next())
		}
	}
}

// declareFunction creates the cursor for a function declarator and the
// scope its parameters and body live in.
func (b *builder) declareFunction(n, typ *node, d declarator, e env, def bool) (*Cursor, *scope) {
	owner := e.sc.owner
	home := e.sc
	if d.qualified && d.leaf != nil {
		if sc, local, ok := b.lookupScope(d.leaf); ok && local && sc != nil {
			home, owner = sc, sc.owner
		}
	}

	kind := cindex.FunctionDecl
	switch {
	case d.name != nil && d.name.kind == "destructor_name":
		kind = cindex.Destructor
	case d.name != nil && d.name.kind == "operator_cast":
		kind = cindex.ConversionFunction
	case owner != nil && isRecord(owner.kind):
		kind = cindex.CXXMethod
		if d.leaf != nil && d.leaf.text(b.src) == owner.name {
			kind = cindex.Constructor
		}
	}
	if e.template && kind != cindex.Destructor {
		kind = cindex.FunctionTemplate
	}

	c := b.newDecl(kind, n, d.name, owner, def)
	c.typ, c.record = b.typeOf(typ, d)
	if d.leaf != nil {
		d.leaf.cursor = c
	} else if d.name != nil {
		d.name.cursor = c
	}
	b.register(home, c)

	fs := newScope(home, c)
	fs.fn = true
	fs.labels = map[string]*Cursor{}
	return c, fs
}

func paramsOf(d declarator) *node {
	if d.fn == nil {
		return nil
	}
	return d.fn.child("parameters")
}

func (b *builder) declareFunctionDefinition(n *node, e env) {
	typ := n.child("type")
	if typ != nil {
		b.declare(typ, e.next())
	}
	dn := n.child("declarator")
	if dn == nil {
		for _, ch := range n.children {
			if ch != typ {
				b.declare(ch, e.next())
			}
		}
		return
	}

	d := analyze(dn)
	c, fs := b.declareFunction(n, typ, d, e, true)
	n.cursor = c

	for _, ch := range n.children {
		switch ch {
		case typ:
		case dn:
			b.declare(dn, env{sc: e.sc, params: fs, paramsOf: paramsOf(d)})
		default:
			b.declare(ch, env{sc: fs})
		}
	}
}

func (b *builder) hasSpecifier(n *node, word string) bool {
	for _, ch := range n.children {
		if ch.kind == "storage_class_specifier" && ch.text(b.src) == word {
			return true
		}
	}
	return false
}

func (b *builder) declareDeclaration(n *node, e env) {
	typ := n.child("type")
	if typ != nil {
		b.declare(typ, e.next())
	}
	extern := b.hasSpecifier(n, "extern")
	static := b.hasSpecifier(n, "static")
	field := n.kind == "field_declaration"

	var first *Cursor
	for _, ch := range n.children {
		if ch == typ {
			continue
		}
		if ch.field != "declarator" {
			b.declare(ch, e.next())
			continue
		}

		d := analyze(ch)
		if d.name == nil {
			b.declare(ch, e.next())
			continue
		}

		var c *Cursor
		if d.wrap == wrapFunction {
			var fs *scope
			c, fs = b.declareFunction(ch, typ, d, e, false)
			b.declare(ch, env{sc: e.sc, params: fs, paramsOf: paramsOf(d)})
		} else {
			kind := cindex.VarDecl
			if field && !static {
				kind = cindex.FieldDecl
			}
			def := !(extern && d.init == nil) && !(field && static)
			c = b.newDecl(kind, ch, d.name, e.sc.owner, def)
			c.typ, c.record = b.typeOf(typ, d)

			home := e.sc
			if d.qualified && d.leaf != nil {
				if sc, local, ok := b.lookupScope(d.leaf); ok && local && sc != nil {
					home, c.parent = sc, sc.owner
				}
			}
			b.register(home, c)
			if d.leaf != nil {
				d.leaf.cursor = c
			}
			b.declare(ch, e.next())
		}

		if ch.cursor == nil {
			ch.cursor = c
		}
		if first == nil {
			first = c
			c.start = n.start
		}
	}
	if first != nil {
		n.cursor = first
	}
}

func (b *builder) declareTypedef(n *node, e env) {
	typ := n.child("type")
	if typ != nil {
		b.declare(typ, e.next())
	}

	var first *Cursor
	for _, ch := range n.children {
		if ch == typ {
			continue
		}
		d := declarator{}
		if ch.field == "declarator" {
			d = analyze(ch)
		}
		if d.leaf == nil {
			b.declare(ch, e.next())
			continue
		}

		c := b.newDecl(cindex.TypedefDecl, ch, d.name, e.sc.owner, true)
		_, c.record = b.typeOf(typ, d)
		c.typ = cindex.Type{Kind: cindex.TypeTypedef, Spelling: c.name}
		b.register(e.sc, c)
		d.leaf.cursor = c
		b.declare(ch, e.next())
		if first == nil {
			first = c
			c.start = n.start
		}
	}
	if first != nil {
		n.cursor = first
	}
}

func (b *builder) declareParameter(n *node, e env) {
	typ := n.child("type")
	if typ != nil {
		b.declare(typ, e.next())
	}

	kind := cindex.ParmDecl
	if n.parent != nil && n.parent.kind == "template_parameter_list" {
		kind = cindex.NonTypeTemplateParameter
	}

	if dn := n.child("declarator"); dn != nil {
		d := analyze(dn)
		if d.leaf != nil {
			c := b.newDecl(kind, n, d.name, e.sc.owner, true)
			c.typ, c.record = b.typeOf(typ, d)
			b.register(e.sc, c)
			d.leaf.cursor = c
			n.cursor = c
		}
	}

	for _, ch := range n.children {
		if ch != typ {
			b.declare(ch, e.next())
		}
	}
}

func (b *builder) declareNamespace(n *node, e env) {
	name := n.child("name")
	body := n.child("body")

	var ids []*node
	switch {
	case name == nil:
	case name.kind == "nested_namespace_specifier":
		for _, ch := range name.children {
			if ch.kind == "namespace_identifier" {
				ids = append(ids, ch)
			}
		}
	default:
		ids = []*node{name}
	}

	sc := e.sc
	var c *Cursor
	if len(ids) == 0 {
		c = b.newDecl(cindex.Namespace, n, nil, sc.owner, true)
		c.scope = newScope(sc, c)
		sc.using = append(sc.using, c.scope)
	}
	for _, id := range ids {
		c = b.newDecl(cindex.Namespace, n, id, sc.owner, true)
		if open := sc.local(c.name, func(o *Cursor) bool { return o.kind == cindex.Namespace }, 0); open != nil {
			c.scope = open.scope
		} else {
			c.scope = newScope(sc, c)
		}
		b.register(sc, c)
		id.cursor = c
		id.scope = sc
		sc = c.scope
	}
	if n.hasToken("inline") {
		e.sc.using = append(e.sc.using, c.scope)
	}
	n.cursor = c

	for _, ch := range n.children {
		switch ch {
		case body:
			b.declare(ch, env{sc: c.scope})
			body.scope = c.scope
		case name:
			ch.scope = e.sc
		default:
			b.declare(ch, e.next())
		}
	}
}

// lastIdentifier is the innermost name of a namespace path.
func lastIdentifier(n *node) *node {
	if n.kind != "nested_namespace_specifier" {
		return n
	}
	var last *node
	for _, ch := range n.children {
		if ch.named {
			last = ch
		}
	}
	if last == nil {
		return n
	}
	return lastIdentifier(last)
}

// lineEnd is the offset of the newline ending the line holding offset.
func lineEnd(src []byte, offset int) int {
	if i := bytes.IndexByte(src[offset:], '\n'); i >= 0 {
		return offset + i
	}
	return len(src)
}

// trimEnd drops trailing whitespace from [start, end).
func trimEnd(src []byte, start, end int) int {
	for end > start {
		switch src[end-1] {
		case ' ', '\t', '\r', '\n':
			end--
			continue
		}
		break
	}
	return end
}
