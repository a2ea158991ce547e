// Package treesitter is a cindex front-end backed by the tree-sitter C++
// grammar. It parses one file without a preprocessor or include paths and
// rebuilds from the syntax tree the cursors, types and references the
// highlighter asks for:
//
//	source ──► tree-sitter ──► mirror ──► declare ──► bind ──► tokenize
//	                             │           │          │          │
//	                          Go nodes   decl cursors  refs     tokens with
//	                                     and scopes   to decls  innermost cursor
//
// Name lookup follows C++ scoping loosely: blocks, functions, records with
// their bases, namespaces with using-directives. It has no overload
// resolution and no template instantiation.
package treesitter

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	"gitlab.com/tozd/go/errors"

	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
	"github.com/unnamed42/chromatica.nvim/pkg/position"
)

// Parse builds a unit for the file name holding src. Files ending in .c get
// C rules for empty parameter lists.
func Parse(ctx context.Context, name string, src []byte) (*Unit, error) {
	started := time.Now()

	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(tree_sitter.NewLanguage(tree_sitter_cpp.Language())); err != nil {
		return nil, errors.Errorf("setting c++ language: %w", err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, errors.Errorf("parsing %s: no tree produced", name)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		zerolog.Ctx(ctx).Warn().Str("file", name).Msg("syntax errors in file, highlighting may be partial")
	}

	u := &Unit{
		name:  name,
		src:   src,
		index: position.NewIndex(src),
		root:  mirror(root),
		defs:  map[defKey]*Cursor{},
	}
	u.tu = &Cursor{unit: u, kind: cindex.TranslationUnit, name: name, end: len(src)}
	u.root.cursor = u.tu

	b := &builder{
		u:      u,
		src:    src,
		c:      filepath.Ext(name) == ".c",
		global: newScope(nil, u.tu),
		macros: map[string][]*Cursor{},
	}
	b.declare(u.root, env{sc: b.global})
	b.bind(u.root, false)
	u.tokens, u.spans = b.tokenize(u.root)

	zerolog.Ctx(ctx).Debug().
		Str("file", name).
		Int("bytes", len(src)).
		Int("tokens", len(u.tokens)).
		Int("definitions", len(u.defs)).
		Dur("took", time.Since(started)).
		Msg("parsed translation unit")

	return u, nil
}

// ParseFile reads path from fs and parses it under that name.
func ParseFile(ctx context.Context, fs afero.Fs, path string) (*Unit, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}
	return Parse(ctx, path, src)
}
