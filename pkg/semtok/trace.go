package semtok

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
)

// DefaultTracePath is where the trace goes when no path is configured.
const DefaultTracePath = "AST_out.log"

// ANSITracer writes one colored line per token:
//
//	spelling label [line, column, length] token-kind cursor-kind type-kind
//
// Colors are always on, since the trace is meant to be read with a pager
// that understands them.
type ANSITracer struct {
	mu  sync.Mutex
	w   io.Writer
	err error

	spelling *color.Color
	label    *color.Color
	none     *color.Color
	token    *color.Color
	cursor   *color.Color
	typ      *color.Color
}

func NewANSITracer(w io.Writer) *ANSITracer {
	forced := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		c.EnableColor()
		return c
	}
	return &ANSITracer{
		w:        w,
		spelling: forced(color.FgGreen),
		label:    forced(color.FgBlue),
		none:     forced(color.FgRed),
		token:    forced(color.Bold, color.FgYellow),
		cursor:   forced(color.FgCyan),
		typ:      forced(color.FgMagenta),
	}
}

func (t *ANSITracer) Trace(ev TraceEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.err != nil {
		return
	}

	label := t.label.Sprint(ev.Label)
	if ev.Label == "" {
		label = t.none.Sprint("None")
	}

	_, err := fmt.Fprintf(t.w, "%s %s [%d, %d, %d] %s %s %s\n",
		t.spelling.Sprint(ev.Spelling),
		label,
		ev.Position.Line, ev.Position.Column, ev.Position.Length,
		t.token.Sprint(ev.TokenKind),
		t.cursor.Sprint(ev.CursorKind),
		t.typ.Sprint(ev.TypeKind),
	)
	if err != nil {
		t.err = errors.Errorf("writing trace: %w", err)
	}
}

// Err is the first write error, if any. Tracing stops after it.
func (t *ANSITracer) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// CreateTraceFile truncates or creates the trace file at path.
func CreateTraceFile(fs afero.Fs, path string) (afero.File, *ANSITracer, error) {
	if path == "" {
		path = DefaultTracePath
	}
	f, err := fs.Create(path)
	if err != nil {
		return nil, nil, errors.Errorf("creating trace file %s: %w", path, err)
	}
	return f, NewANSITracer(f), nil
}

// TraceFile is a trace destination that starts over for every session, so
// the file only ever holds the trace of the latest request.
type TraceFile struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

func NewTraceFile(fs afero.Fs, path string) *TraceFile {
	return &TraceFile{fs: fs, path: path}
}

// Session truncates the file and runs fn with a tracer writing to it.
// Sessions are serialized.
func (t *TraceFile) Session(fn func(Tracer) error) (err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, tracer, err := CreateTraceFile(t.fs, t.path)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	if err := fn(tracer); err != nil {
		return err
	}
	return tracer.Err()
}
