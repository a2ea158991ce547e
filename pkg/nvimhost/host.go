// Package nvimhost exposes the highlighter and the symbol resolver to neovim
// as remote-plugin functions:
//
//	ChromaticaHighlight(bufnr, lbegin, lend)  -> {group: [[line, col, len, extra], ...]}
//	ChromaticaSymbol(bufnr, line, col)        -> {name, kind, type, ...} or v:null
//
// Each call reads the live buffer, parses it and answers from that unit, so
// unsaved edits are always seen.
package nvimhost

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/neovim/go-client/nvim"
	"github.com/neovim/go-client/nvim/plugin"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
	"github.com/unnamed42/chromatica.nvim/pkg/frontend/treesitter"
	"github.com/unnamed42/chromatica.nvim/pkg/hover"
	"github.com/unnamed42/chromatica.nvim/pkg/semtok"
)

const (
	HighlightFunction = "ChromaticaHighlight"
	SymbolFunction    = "ChromaticaSymbol"
)

// Editor is the part of the neovim API the host reads buffers through.
// *nvim.Nvim satisfies it.
type Editor interface {
	BufferName(buffer nvim.Buffer) (string, error)
	BufferLines(buffer nvim.Buffer, start, end int, strict bool) ([][]byte, error)
}

var _ Editor = (*nvim.Nvim)(nil)

// ParseFunc turns buffer contents into a unit.
type ParseFunc func(ctx context.Context, name string, src []byte) (cindex.Unit, error)

// TreeSitter parses with the tree-sitter front-end.
func TreeSitter(ctx context.Context, name string, src []byte) (cindex.Unit, error) {
	u, err := treesitter.Parse(ctx, name, src)
	if err != nil {
		return nil, err
	}
	return u, nil
}

type Host struct {
	ctx    context.Context
	editor Editor
	parse  ParseFunc
	opts   []semtok.Option
	trace  *semtok.TraceFile
}

// New tags the context logger with a session id; opts are passed to every
// extraction.
func New(ctx context.Context, editor Editor, parse ParseFunc, opts ...semtok.Option) *Host {
	logger := zerolog.Ctx(ctx).With().Str("session", xid.New().String()).Logger()
	return &Host{
		ctx:    logger.WithContext(ctx),
		editor: editor,
		parse:  parse,
		opts:   opts,
	}
}

// TraceTo writes the trace of every highlight request to tf, replacing the
// previous one.
func (h *Host) TraceTo(tf *semtok.TraceFile) {
	h.trace = tf
}

// Register installs the host's functions on p.
func (h *Host) Register(p *plugin.Plugin) {
	p.HandleFunction(&plugin.FunctionOptions{Name: HighlightFunction}, h.Highlight)
	p.HandleFunction(&plugin.FunctionOptions{Name: SymbolFunction}, h.Symbol)
}

func (h *Host) load(bufnr int) (cindex.Unit, string, error) {
	buf := nvim.Buffer(bufnr)

	name, err := h.editor.BufferName(buf)
	if err != nil {
		return nil, "", errors.Errorf("getting name of buffer %d: %w", bufnr, err)
	}

	lines, err := h.editor.BufferLines(buf, 0, -1, true)
	if err != nil {
		return nil, "", errors.Errorf("getting lines of buffer %d: %w", bufnr, err)
	}

	src := bytes.Join(lines, []byte("\n"))
	if len(lines) > 0 {
		src = append(src, '\n')
	}

	unit, err := h.parse(h.ctx, name, src)
	if err != nil {
		return nil, "", errors.Errorf("parsing buffer %d: %w", bufnr, err)
	}
	return unit, name, nil
}

// Highlight answers ChromaticaHighlight. An unknown file yields an empty map.
func (h *Host) Highlight(args []interface{}) (map[string][][]int, error) {
	nums, err := ints(args, "bufnr", "lbegin", "lend")
	if err != nil {
		return nil, err
	}

	unit, name, err := h.load(nums[0])
	if err != nil {
		return nil, err
	}

	var (
		hl semtok.Highlights
		ok bool
	)
	extract := func(opts ...semtok.Option) {
		hl, ok = semtok.Extract(h.ctx, unit, name, nums[1], nums[2], append(opts, h.opts...)...)
	}
	if h.trace == nil {
		extract()
	} else if err := h.trace.Session(func(t semtok.Tracer) error {
		extract(semtok.WithTracer(t))
		return nil
	}); err != nil {
		return nil, err
	}
	if !ok {
		return map[string][][]int{}, nil
	}

	zerolog.Ctx(h.ctx).Debug().
		Int("bufnr", nums[0]).
		Int("tokens", hl.Count()).
		Msg("highlight request")

	return hl.Tuples(), nil
}

// Symbol answers ChromaticaSymbol. Nothing resolvable yields nil.
func (h *Host) Symbol(args []interface{}) (map[string]interface{}, error) {
	nums, err := ints(args, "bufnr", "line", "col")
	if err != nil {
		return nil, err
	}

	unit, name, err := h.load(nums[0])
	if err != nil {
		return nil, err
	}

	sym, ok := hover.ResolveSymbol(h.ctx, unit, name, nums[1], nums[2])
	if !ok {
		return nil, nil
	}

	info, err := hover.Describe(sym)
	if err != nil {
		return nil, errors.Errorf("describing symbol: %w", err)
	}
	return info.Map(), nil
}

// ints coerces positional arguments. Vimscript hands numbers over as
// integers, floats or strings depending on where they came from.
func ints(args []interface{}, names ...string) ([]int, error) {
	if len(args) < len(names) {
		return nil, errors.Errorf("expected %d arguments (%s), got %d", len(names), strings.Join(names, ", "), len(args))
	}

	out := make([]int, len(names))
	for i, name := range names {
		n, err := toInt(args[i])
		if err != nil {
			return nil, errors.Errorf("argument %s: %w", name, err)
		}
		out[i] = n
	}
	return out, nil
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float32:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, errors.Errorf("not a number: %q", n)
		}
		return i, nil
	case []byte:
		return toInt(string(n))
	}
	return 0, errors.Errorf("unsupported type %T", v)
}
