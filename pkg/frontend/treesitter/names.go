package treesitter

// terminal is the token a possibly qualified or templated name ends in.
func terminal(n *node) *node {
	for n != nil {
		switch n.kind {
		case "qualified_identifier", "qualified_field_identifier", "qualified_type_identifier":
			n = n.child("name")
		case "template_type", "template_function", "template_method":
			n = n.child("name")
		case "destructor_name":
			return n.firstOfKind("identifier")
		default:
			return n
		}
	}
	return nil
}

// scopeAt is the innermost scope recorded on n or its ancestors.
func (b *builder) scopeAt(n *node) *scope {
	for p := n; p != nil; p = p.parent {
		if p.scope != nil {
			return p.scope
		}
	}
	return b.global
}

// scopeOf is the scope holding the members of c.
func scopeOf(c *Cursor) *scope {
	if c == nil {
		return nil
	}
	if c.scope != nil {
		return c.scope
	}
	if c.record != nil {
		return c.record.scope
	}
	return nil
}

// lookupScope is where the name n is looked up. Names after a "::" are
// searched only in the qualifying scope; local reports that case. ok is
// false when the qualifier does not resolve.
func (b *builder) lookupScope(n *node) (sc *scope, local bool, ok bool) {
	p := n
	if p.parent != nil {
		switch p.parent.kind {
		case "template_type", "template_function", "template_method":
			if p.field == "name" {
				p = p.parent
			}
		case "destructor_name":
			p = p.parent
		}
	}

	if q := p.parent; q != nil && (q.kind == "qualified_identifier" || q.kind == "qualified_field_identifier" || q.kind == "qualified_type_identifier") {
		switch p.field {
		case "scope":
			return b.lookupScope(q)
		case "name":
			s := q.child("scope")
			if s == nil {
				return b.global, true, true
			}
			inner := scopeOf(b.resolveName(s, isScope))
			if inner == nil {
				return nil, true, false
			}
			return inner, true, true
		}
	}
	return b.scopeAt(n), false, true
}

// resolveRef finds the declaration the leaf n names, preferring ones
// accepted by want. The scope it was found in is returned with it.
func (b *builder) resolveRef(n *node, want func(*Cursor) bool) (*Cursor, *scope) {
	if n == nil {
		return nil, nil
	}
	sc, local, ok := b.lookupScope(n)
	if !ok {
		return nil, nil
	}
	name := n.text(b.src)
	if local {
		if c := sc.local(name, want, 0); c != nil {
			return c, sc
		}
		if c := sc.local(name, anyDecl, 0); c != nil {
			return c, sc
		}
		return nil, nil
	}
	return sc.lookupPrefer(name, want)
}

func (b *builder) resolveName(n *node, want func(*Cursor) bool) *Cursor {
	c, _ := b.resolveRef(terminal(n), want)
	return c
}

// macro returns the latest definition of name made before offset.
func (b *builder) macro(name string, offset int) *Cursor {
	var found *Cursor
	for _, m := range b.macros[name] {
		if m.at < offset {
			found = m
		}
	}
	return found
}
