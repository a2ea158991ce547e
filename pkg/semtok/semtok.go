package semtok

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
	"github.com/unnamed42/chromatica.nvim/pkg/position"
	"github.com/unnamed42/chromatica.nvim/pkg/syntax"
)

// Extract classifies every token on lines [begin, end] of filename. The
// second result is false when the unit does not know the file.
func Extract(ctx context.Context, unit cindex.Unit, filename string, begin, end int, opts ...Option) (Highlights, bool) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	file, ok := unit.File(filename)
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("file", filename).Msg("file not part of translation unit")
		return nil, false
	}

	extent := cindex.Range{
		Start: unit.Location(file, begin, 1),
		End:   unit.Location(file, end+1, 1),
	}

	out := Highlights{}
	for _, tok := range unit.Tokens(extent) {
		ck, tk := kindsOf(tok.Cursor)
		label := syntax.Classify(tok.Kind, ck, tk)
		pos := Position{
			Line:       tok.Location.Line,
			Column:     tok.Location.Column,
			Length:     len(tok.Spelling),
			ExtraLines: position.ExtraLines(tok.Spelling),
		}

		if o.tracer != nil && tok.Kind != cindex.TokenPunctuation {
			o.tracer.Trace(TraceEvent{
				Spelling:   tok.Spelling,
				Label:      label,
				Position:   pos,
				TokenKind:  tok.Kind,
				CursorKind: ck,
				TypeKind:   tk,
			})
		}

		if label == syntax.None {
			continue
		}
		out[label] = append(out[label], pos)
	}

	zerolog.Ctx(ctx).Trace().
		Str("file", filename).
		Int("begin", begin).
		Int("end", end).
		Int("tokens", out.Count()).
		Int("groups", len(out)).
		Msg("extracted highlights")

	return out, true
}

// kindsOf treats a token without a cursor as one with no declaration.
func kindsOf(c cindex.Cursor) (cindex.CursorKind, cindex.TypeKind) {
	if c == nil {
		return cindex.NoDeclFound, cindex.TypeInvalid
	}
	return c.Kind(), c.Type().Kind
}
