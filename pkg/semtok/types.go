package semtok

import (
	"sort"

	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
	"github.com/unnamed42/chromatica.nvim/pkg/syntax"
)

// Position is where a highlighted token sits. Column and Length count bytes.
type Position struct {
	Line       int `json:"line" yaml:"line"`
	Column     int `json:"column" yaml:"column"`
	Length     int `json:"length" yaml:"length"`
	ExtraLines int `json:"extra_lines" yaml:"extra_lines"`
}

// Tuple is the [line, column, length, extra lines] form the editor expects.
func (p Position) Tuple() []int {
	return []int{p.Line, p.Column, p.Length, p.ExtraLines}
}

// Highlights groups token positions by label, each list in source order.
type Highlights map[syntax.Label][]Position

// Labels returns the labels present, sorted.
func (h Highlights) Labels() []syntax.Label {
	labels := make([]syntax.Label, 0, len(h))
	for l := range h {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// Tuples converts the grouping to the shape sent over RPC.
func (h Highlights) Tuples() map[string][][]int {
	out := make(map[string][][]int, len(h))
	for l, ps := range h {
		tuples := make([][]int, 0, len(ps))
		for _, p := range ps {
			tuples = append(tuples, p.Tuple())
		}
		out[string(l)] = tuples
	}
	return out
}

// Count is the total number of highlighted tokens.
func (h Highlights) Count() int {
	n := 0
	for _, ps := range h {
		n += len(ps)
	}
	return n
}

// TraceEvent describes one classified token.
type TraceEvent struct {
	Spelling   string
	Label      syntax.Label
	Position   Position
	TokenKind  cindex.TokenKind
	CursorKind cindex.CursorKind
	TypeKind   cindex.TypeKind
}

// Tracer receives an event for every token that is not punctuation.
type Tracer interface {
	Trace(ev TraceEvent)
}

type TracerFunc func(ev TraceEvent)

func (f TracerFunc) Trace(ev TraceEvent) { f(ev) }

type Option func(*options)

type options struct {
	tracer Tracer
}

// WithTracer reports every classified token to t.
func WithTracer(t Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}
