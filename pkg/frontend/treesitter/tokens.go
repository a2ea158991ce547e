package treesitter

import (
	"strings"

	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
	"github.com/unnamed42/chromatica.nvim/pkg/position"
)

// atomic nodes become one token each, whatever their inner structure.
var atomic = map[string]bool{
	"comment":              true,
	"string_literal":       true,
	"raw_string_literal":   true,
	"char_literal":         true,
	"system_lib_string":    true,
	"number_literal":       true,
	"user_defined_literal": true,
	"primitive_type":       true,
	"null":                 true,
	"true":                 true,
	"false":                true,
	"this":                 true,
}

var keywords = map[string]bool{}

func init() {
	for _, k := range strings.Fields(`
		alignas alignof asm auto bool break case catch char char8_t char16_t
		char32_t class co_await co_return co_yield concept const consteval
		constexpr constinit const_cast continue decltype default delete do
		double dynamic_cast else enum explicit export extern false float for
		friend goto if inline int long mutable namespace new noexcept nullptr
		operator private protected public register reinterpret_cast requires
		restrict return short signed sizeof static static_assert static_cast
		struct switch template this thread_local throw true try typedef typeid
		typename union unsigned using virtual void volatile wchar_t while
		_Alignas _Alignof _Atomic _Bool _Complex _Generic _Noreturn
		_Static_assert _Thread_local defined`) {
		keywords[k] = true
	}
}

type tokenizer struct {
	b      *builder
	tokens []cindex.Token
	spans  []position.RawPosition
}

func (b *builder) tokenize(root *node) ([]cindex.Token, []position.RawPosition) {
	t := &tokenizer{b: b}
	t.walk(root)
	return t.tokens, t.spans
}

func (t *tokenizer) emit(kind cindex.TokenKind, start, end int, c *Cursor) {
	if end <= start {
		return
	}
	text := string(t.b.src[start:end])
	tok := cindex.Token{Kind: kind, Spelling: text, Location: t.b.u.location(start)}
	if c != nil && kind != cindex.TokenComment {
		tok.Cursor = c
	}
	t.tokens = append(t.tokens, tok)
	t.spans = append(t.spans, position.NewBasicPosition(text, start))
}

func (t *tokenizer) walk(n *node) {
	if n.end <= n.start {
		return
	}
	switch {
	case atomic[n.kind]:
		t.emit(t.kindOf(n), n.start, n.end, cursorFor(n, t.b.u.tu))
	case n.kind == "preproc_arg":
		t.lex(n)
	case len(n.children) == 0:
		t.leaf(n)
	default:
		for _, ch := range n.children {
			t.walk(ch)
		}
	}
}

func (t *tokenizer) kindOf(n *node) cindex.TokenKind {
	switch n.kind {
	case "comment":
		return cindex.TokenComment
	case "identifier", "type_identifier", "field_identifier", "namespace_identifier", "statement_identifier":
		if n.keyword {
			return cindex.TokenKeyword
		}
		return cindex.TokenIdentifier
	case "string_literal", "raw_string_literal", "char_literal", "system_lib_string",
		"number_literal", "user_defined_literal":
		return cindex.TokenLiteral
	case "null":
		if n.text(t.b.src) == "NULL" {
			return cindex.TokenIdentifier
		}
		return cindex.TokenKeyword
	case "primitive_type", "true", "false", "this", "auto":
		return cindex.TokenKeyword
	}
	if isWord(n.text(t.b.src)) {
		return cindex.TokenKeyword
	}
	return cindex.TokenPunctuation
}

func (t *tokenizer) leaf(n *node) {
	text := n.text(t.b.src)
	if strings.TrimSpace(text) == "" {
		return
	}
	c := cursorFor(n, t.b.u.tu)

	// "#define" and friends: a hash then the directive name
	if len(text) > 1 && text[0] == '#' {
		t.emit(cindex.TokenPunctuation, n.start, n.start+1, c)
		i := 1
		for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
			i++
		}
		t.emit(cindex.TokenKeyword, n.start+i, trimEnd(t.b.src, n.start+i, n.end), c)
		return
	}

	start, end := n.start, trimEnd(t.b.src, n.start, n.end)
	t.emit(t.kindOf(n), start, end, c)
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdent(s[i]) {
			return false
		}
	}
	return true
}

func isIdent(ch byte) bool {
	return ch == '_' || ch == '$' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// lex splits the unparsed text of a directive into tokens. Macro names
// defined earlier in the file become instantiations; everything else belongs
// to the directive.
func (t *tokenizer) lex(n *node) {
	src := t.b.src
	base := cursorFor(n, t.b.u.tu)
	i, end := n.start, n.end

	for i < end {
		ch := src[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			i++
		case ch == '\\':
			i++
		case ch == '/' && i+1 < end && src[i+1] == '/':
			j := i
			for j < end && src[j] != '\n' {
				j++
			}
			t.emit(cindex.TokenComment, i, j, nil)
			i = j
		case ch == '/' && i+1 < end && src[i+1] == '*':
			j := strings.Index(string(src[i+2:end]), "*/")
			if j < 0 {
				j = end
			} else {
				j = i + 2 + j + 2
			}
			t.emit(cindex.TokenComment, i, j, nil)
			i = j
		case isDigit(ch) || ch == '.' && i+1 < end && isDigit(src[i+1]):
			j := i + 1
			for j < end {
				c := src[j]
				if isIdent(c) || c == '.' || c == '\'' {
					j++
					continue
				}
				if (c == '+' || c == '-') && strings.ContainsRune("eEpP", rune(src[j-1])) {
					j++
					continue
				}
				break
			}
			t.emit(cindex.TokenLiteral, i, j, t.b.literal(i, j))
			i = j
		case ch == '"' || ch == '\'':
			j := i + 1
			for j < end && src[j] != ch && src[j] != '\n' {
				if src[j] == '\\' {
					j++
				}
				j++
			}
			if j < end && src[j] == ch {
				j++
			}
			if j > end {
				j = end
			}
			kind := cindex.StringLiteral
			typ := cindex.TypeConstantArray
			if ch == '\'' {
				kind, typ = cindex.CharacterLiteral, cindex.TypeCharS
			}
			c := t.b.span(kind, i, j, string(src[i:j]))
			c.typ = cindex.Type{Kind: typ}
			t.emit(cindex.TokenLiteral, i, j, c)
			i = j
		case isIdent(ch):
			j := i + 1
			for j < end && isIdent(src[j]) {
				j++
			}
			word := string(src[i:j])
			switch {
			case keywords[word]:
				t.emit(cindex.TokenKeyword, i, j, base)
			default:
				c := base
				if m := t.b.macro(word, i); m != nil && m != base {
					c = t.b.span(cindex.MacroInstantiation, i, j, word)
					c.ref = m
				}
				t.emit(cindex.TokenIdentifier, i, j, c)
			}
			i = j
		default:
			t.emit(cindex.TokenPunctuation, i, i+1, base)
			i++
		}
	}
}
