package hover

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
)

// ResolveSymbol finds the declaration the token at line:col of filename
// denotes. It reports false for unknown files, whitespace, comments and
// anything that does not resolve to a symbol spelled like the token.
func ResolveSymbol(ctx context.Context, unit cindex.Unit, filename string, line, col int) (cindex.Cursor, bool) {
	logger := zerolog.Ctx(ctx).With().Str("file", filename).Int("line", line).Int("column", col).Logger()

	file, ok := unit.File(filename)
	if !ok {
		logger.Debug().Msg("file not part of translation unit")
		return nil, false
	}

	cursor, ok := unit.CursorAt(unit.Location(file, line, col))
	if !ok {
		logger.Trace().Msg("no cursor at location")
		return nil, false
	}

	for _, tok := range unit.Tokens(cursor.Extent()) {
		if tok.Kind == cindex.TokenComment || tok.Location.Line != line {
			continue
		}
		if col < tok.Location.Column || col >= tok.Location.Column+len(tok.Spelling) {
			continue
		}

		sym, ok := Symbol(cursor)
		if ok && sym.Spelling() == tok.Spelling {
			logger.Trace().Str("cursor", cursor.Kind().String()).Str("symbol", sym.Kind().String()).Msg("resolved symbol")
			return sym, true
		}
	}

	logger.Trace().Str("cursor", cursor.Kind().String()).Msg("no symbol at location")
	return nil, false
}

// Symbol maps a cursor to the declaration it stands for: the definition if
// there is one, else the referenced declaration. Constructors and
// destructors stand for their class.
func Symbol(c cindex.Cursor) (cindex.Cursor, bool) {
	if c.Kind() == cindex.MacroDefinition {
		return c, true
	}

	sym, ok := c.Definition()
	if !ok {
		sym, ok = c.Referenced()
	}
	if !ok {
		return nil, false
	}

	if k := sym.Kind(); k == cindex.Constructor || k == cindex.Destructor {
		return sym.SemanticParent()
	}
	return sym, true
}
