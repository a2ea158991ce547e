package treesitter

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// node is a Go-side copy of a syntax tree node. The C tree is released right
// after parsing; everything later works on these.
type node struct {
	kind     string
	named    bool
	field    string
	start    int
	end      int
	parent   *node
	children []*node

	// cursor is the cursor this node stands for, if any.
	cursor *Cursor
	// scope is the lexical scope names in this node are looked up in.
	scope *scope
	// directive marks preprocessor conditionals, whose bodies do not
	// belong to the directive cursor.
	directive bool
	// keyword marks identifiers that act as keywords, like static_cast.
	keyword bool
}

func mirror(root *tree_sitter.Node) *node {
	top := &node{
		kind:  root.Kind(),
		named: root.IsNamed(),
		start: int(root.StartByte()),
		end:   int(root.EndByte()),
	}

	tc := root.Walk()
	defer tc.Close()

	if !tc.GotoFirstChild() {
		return top
	}

	cur := top
	for {
		n := tc.Node()
		child := &node{
			kind:   n.Kind(),
			named:  n.IsNamed(),
			field:  tc.FieldName(),
			start:  int(n.StartByte()),
			end:    int(n.EndByte()),
			parent: cur,
		}
		cur.children = append(cur.children, child)

		if tc.GotoFirstChild() {
			cur = child
			continue
		}
		for !tc.GotoNextSibling() {
			if cur == top || !tc.GotoParent() {
				return top
			}
			cur = cur.parent
		}
	}
}

func (n *node) child(field string) *node {
	for _, c := range n.children {
		if c.field == field {
			return c
		}
	}
	return nil
}

func (n *node) childrenByField(field string) []*node {
	var out []*node
	for _, c := range n.children {
		if c.field == field {
			out = append(out, c)
		}
	}
	return out
}

func (n *node) firstNamed() *node {
	for _, c := range n.children {
		if c.named && c.kind != "comment" {
			return c
		}
	}
	return nil
}

func (n *node) firstOfKind(kinds ...string) *node {
	for _, c := range n.children {
		for _, k := range kinds {
			if c.kind == k {
				return c
			}
		}
	}
	return nil
}

// hasToken reports whether an anonymous child spells tok.
func (n *node) hasToken(tok string) bool {
	for _, c := range n.children {
		if !c.named && c.kind == tok {
			return true
		}
	}
	return false
}

func (n *node) contains(offset int) bool {
	return offset >= n.start && offset < n.end
}

func (n *node) text(src []byte) string {
	return string(src[n.start:n.end])
}

// deepest returns the innermost node whose span holds offset.
func (n *node) deepest(offset int) *node {
	if !n.contains(offset) {
		return nil
	}
	cur := n
	for {
		var next *node
		for _, c := range cur.children {
			if c.contains(offset) {
				next = c
				break
			}
		}
		if next == nil {
			return cur
		}
		cur = next
	}
}

// compact collapses runs of whitespace for display.
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
