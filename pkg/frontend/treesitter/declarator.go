package treesitter

import (
	"strings"

	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
)

type wrap int

const (
	wrapNone wrap = iota
	wrapPointer
	wrapLRef
	wrapRRef
	wrapArray
	wrapFunction
)

// declarator is the shape of one declarator: the name it declares and the
// derivation closest to that name, which decides the entity's type.
type declarator struct {
	node *node
	// name is the node spelling the declared name; leaf is the token
	// the declaration cursor is attached to.
	name *node
	leaf *node
	// quals are the scope parts of a qualified name, outermost first. A
	// nil entry is the global scope.
	quals     []*node
	qualified bool
	wrap      wrap
	fn        *node
	arraySize *node
	init      *node
}

func analyze(d *node) declarator {
	out := declarator{node: d}
	cur := d
	for cur != nil {
		switch cur.kind {
		case "init_declarator":
			out.init = cur.child("value")
			cur = cur.child("declarator")
		case "pointer_declarator", "pointer_field_declarator", "pointer_type_declarator":
			out.wrap = wrapPointer
			cur = cur.child("declarator")
		case "reference_declarator", "reference_field_declarator":
			out.wrap = wrapLRef
			if cur.hasToken("&&") {
				out.wrap = wrapRRef
			}
			cur = cur.firstNamed()
		case "array_declarator", "array_field_declarator", "array_type_declarator":
			out.wrap = wrapArray
			out.arraySize = cur.child("size")
			cur = cur.child("declarator")
		case "function_declarator", "function_field_declarator", "function_type_declarator":
			out.wrap = wrapFunction
			out.fn = cur
			cur = cur.child("declarator")
		case "parenthesized_declarator", "parenthesized_field_declarator", "parenthesized_type_declarator",
			"attributed_declarator", "attributed_field_declarator", "attributed_type_declarator",
			"variadic_declarator":
			cur = cur.firstNamed()
		case "qualified_identifier":
			out.quals = append(out.quals, cur.child("scope"))
			out.qualified = true
			cur = cur.child("name")
		case "template_function", "template_type":
			cur = cur.child("name")
		case "destructor_name":
			out.name = cur
			out.leaf = cur.firstOfKind("identifier")
			return out
		case "operator_cast":
			out.name = cur
			out.wrap = wrapFunction
			out.fn = cur
			return out
		case "identifier", "field_identifier", "type_identifier", "operator_name", "namespace_identifier":
			out.name = cur
			out.leaf = cur
			return out
		default:
			return out
		}
	}
	return out
}

var primitiveTypes = map[string]cindex.TypeKind{
	"void":          cindex.TypeVoid,
	"bool":          cindex.TypeBool,
	"_Bool":         cindex.TypeBool,
	"char":          cindex.TypeCharS,
	"signed char":   cindex.TypeSChar,
	"unsigned char": cindex.TypeUChar,
	"wchar_t":       cindex.TypeWChar,
	"char8_t":       cindex.TypeUChar,
	"char16_t":      cindex.TypeChar16,
	"char32_t":      cindex.TypeChar32,
	"short":         cindex.TypeShort,
	"int":           cindex.TypeInt,
	"long":          cindex.TypeLong,
	"long long":     cindex.TypeLongLong,
	"__int128":      cindex.TypeInt128,
	"float":         cindex.TypeFloat,
	"double":        cindex.TypeDouble,
	"long double":   cindex.TypeLongDouble,
	"_Float16":      cindex.TypeFloat16,
	"__float128":    cindex.TypeFloat128,
	"nullptr_t":     cindex.TypeNullPtr,
}

// sizedType works out the kind of combinations like "unsigned long int".
func sizedType(words []string) cindex.TypeKind {
	unsigned, longs, short := false, 0, false
	base := "int"
	for _, w := range words {
		switch w {
		case "unsigned":
			unsigned = true
		case "signed":
		case "long":
			longs++
		case "short":
			short = true
		default:
			base = w
		}
	}

	switch base {
	case "char":
		if unsigned {
			return cindex.TypeUChar
		}
		return cindex.TypeSChar
	case "double":
		if longs > 0 {
			return cindex.TypeLongDouble
		}
		return cindex.TypeDouble
	case "__int128":
		if unsigned {
			return cindex.TypeUInt128
		}
		return cindex.TypeInt128
	}

	switch {
	case short && unsigned:
		return cindex.TypeUShort
	case short:
		return cindex.TypeShort
	case longs >= 2 && unsigned:
		return cindex.TypeULongLong
	case longs >= 2:
		return cindex.TypeLongLong
	case longs == 1 && unsigned:
		return cindex.TypeULong
	case longs == 1:
		return cindex.TypeLong
	case unsigned:
		return cindex.TypeUInt
	}
	return cindex.TypeInt
}

// baseType is the type named by a type specifier, with the record whose
// members values of that type have.
func (b *builder) baseType(t *node) (cindex.TypeKind, *Cursor) {
	if t == nil {
		return cindex.TypeInvalid, nil
	}

	switch t.kind {
	case "primitive_type":
		if k, ok := primitiveTypes[t.text(b.src)]; ok {
			return k, nil
		}
		// size_t, uint8_t and friends
		return cindex.TypeTypedef, nil
	case "sized_type_specifier":
		return sizedType(strings.Fields(t.text(b.src))), nil
	case "struct_specifier", "class_specifier", "union_specifier":
		if t.cursor != nil {
			return cindex.TypeRecord, t.cursor
		}
		if name := t.child("name"); name != nil {
			if c := b.resolveName(name, isType); c != nil {
				return cindex.TypeRecord, recordOfDecl(c)
			}
		}
		return cindex.TypeRecord, nil
	case "enum_specifier":
		return cindex.TypeEnum, nil
	case "placeholder_type_specifier", "auto":
		return cindex.TypeAuto, nil
	case "decltype":
		return cindex.TypeUnexposed, nil
	case "type_descriptor":
		return b.baseType(t.child("type"))
	case "type_identifier", "qualified_identifier", "template_type":
		c := b.resolveName(t, isType)
		if c == nil {
			if t.kind == "template_type" {
				return cindex.TypeUnexposed, nil
			}
			return cindex.TypeTypedef, nil
		}
		switch {
		case isRecord(c.kind):
			if t.kind == "template_type" {
				return cindex.TypeUnexposed, c
			}
			return cindex.TypeRecord, c
		case c.kind == cindex.EnumDecl:
			return cindex.TypeEnum, nil
		case c.kind == cindex.TypedefDecl || c.kind == cindex.TypeAliasDecl:
			return cindex.TypeTypedef, c.record
		}
		return cindex.TypeUnexposed, nil
	}
	return cindex.TypeUnexposed, nil
}

// typeOf derives the type of the entity d declares.
func (b *builder) typeOf(t *node, d declarator) (cindex.Type, *Cursor) {
	kind, rec := b.baseType(t)
	spelling := ""
	if t != nil {
		spelling = compact(t.text(b.src))
	}

	switch d.wrap {
	case wrapPointer:
		return cindex.Type{Kind: cindex.TypePointer, Spelling: spelling + " *"}, rec
	case wrapLRef:
		return cindex.Type{Kind: cindex.TypeLValueReference, Spelling: spelling + " &"}, rec
	case wrapRRef:
		return cindex.Type{Kind: cindex.TypeRValueReference, Spelling: spelling + " &&"}, rec
	case wrapArray:
		k := cindex.TypeVariableArray
		switch {
		case d.arraySize == nil:
			k = cindex.TypeIncompleteArray
		case d.arraySize.kind == "number_literal":
			k = cindex.TypeConstantArray
		}
		return cindex.Type{Kind: k, Spelling: spelling + " []"}, rec
	case wrapFunction:
		params := "()"
		if d.fn != nil {
			if p := d.fn.child("parameters"); p != nil {
				params = compact(p.text(b.src))
			}
		}
		k := cindex.TypeFunctionProto
		if b.c && params == "()" {
			k = cindex.TypeFunctionNoProto
		}
		if spelling != "" {
			spelling += " "
		}
		return cindex.Type{Kind: k, Spelling: spelling + params}, rec
	}
	return cindex.Type{Kind: kind, Spelling: spelling}, rec
}

func recordOfDecl(c *Cursor) *Cursor {
	if c == nil {
		return nil
	}
	if isRecord(c.kind) {
		return c
	}
	return c.record
}
