package syntax

import (
	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
)

// Classify labels a token of kind tok owned by a cursor of kind k whose type
// has kind t. None means the token is not highlighted.
func Classify(tok cindex.TokenKind, k cindex.CursorKind, t cindex.TypeKind) Label {
	switch tok {
	case cindex.TokenIdentifier:
		return IdentifierLabel(k, t)
	case cindex.TokenKeyword:
		return KeywordLabel(k)
	case cindex.TokenLiteral:
		return LiteralLabel(k)
	case cindex.TokenComment:
		return Comment
	default:
		return None
	}
}

// IdentifierLabel never returns None.
func IdentifierLabel(k cindex.CursorKind, t cindex.TypeKind) Label {
	e := Lookup(k)
	switch e.Kind {
	case Direct:
		return e.Label
	case Nested:
		if l, ok := e.ByType(t); ok {
			return l
		}
		if k == cindex.MemberRefExpr {
			return MemberRefExprVar
		}
	}
	return Fallback(k)
}

// KeywordLabel labels keywords by the construct they introduce.
func KeywordLabel(k cindex.CursorKind) Label {
	switch {
	case k.IsStatement(), k.IsAttribute(), k.IsExpression():
		if e := Lookup(k); e.Kind == Direct {
			return e.Label
		}
		return None
	case k.IsDeclaration():
		return declarationFallback(k)
	default:
		return Keyword
	}
}

// Fallback is the label for identifiers whose cursor kind has no usable
// table entry.
func Fallback(k cindex.CursorKind) Label {
	switch {
	case k.IsPreprocessing():
		return Prepro
	case k.IsDeclaration():
		return Decl
	case k.IsReference():
		return Ref
	default:
		return DefaultSyntax
	}
}

// declarationFallback labels keywords inside a declaration, which only
// appear in its type and qualifier part.
func declarationFallback(k cindex.CursorKind) Label {
	if k == cindex.TypeAliasDecl {
		return TypeAliasStatement
	}
	return Type
}
