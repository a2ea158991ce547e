package nvimhost_test

import (
	"context"
	"testing"

	"github.com/neovim/go-client/nvim"
	"github.com/neovim/go-client/nvim/plugin"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/unnamed42/chromatica.nvim/pkg/nvimhost"
	"github.com/unnamed42/chromatica.nvim/pkg/semtok"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.TestWriter{T: t}).With().Timestamp().Logger().WithContext(context.Background())
}

func bufferEditor(name string, lines ...string) *MockEditor {
	raw := make([][]byte, 0, len(lines))
	for _, l := range lines {
		raw = append(raw, []byte(l))
	}
	ed := &MockEditor{}
	ed.On("BufferName", nvim.Buffer(1)).Return(name, nil)
	ed.On("BufferLines", nvim.Buffer(1), 0, -1, true).Return(raw, nil)
	return ed
}

func TestHighlight(t *testing.T) {
	ed := bufferEditor("/w/add.cpp", "int add(int a) { return a; }")

	var traced []semtok.TraceEvent
	host := nvimhost.New(testContext(t), ed, nvimhost.TreeSitter, semtok.WithTracer(semtok.TracerFunc(func(ev semtok.TraceEvent) {
		traced = append(traced, ev)
	})))

	got, err := host.Highlight([]interface{}{int64(1), int64(1), "1"})
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1, 5, 3, 0}}, got["chromaticaFunctionDecl"])
	assert.Equal(t, [][]int{{1, 13, 1, 0}}, got["chromaticaParmDecl"])
	assert.Equal(t, [][]int{{1, 25, 1, 0}}, got["Variable"])
	assert.NotEmpty(t, traced)
	ed.AssertExpectations(t)
}

func TestHighlightTraceIsPerRequest(t *testing.T) {
	ed := &MockEditor{}
	ed.On("BufferName", nvim.Buffer(1)).Return("/w/first.c", nil)
	ed.On("BufferLines", nvim.Buffer(1), 0, -1, true).Return([][]byte{[]byte("int first;")}, nil)
	ed.On("BufferName", nvim.Buffer(2)).Return("/w/second.c", nil)
	ed.On("BufferLines", nvim.Buffer(2), 0, -1, true).Return([][]byte{[]byte("int second;")}, nil)

	fs := afero.NewMemMapFs()
	host := nvimhost.New(testContext(t), ed, nvimhost.TreeSitter)
	host.TraceTo(semtok.NewTraceFile(fs, "/AST_out.log"))

	_, err := host.Highlight([]interface{}{1, 1, 1})
	require.NoError(t, err)
	data, err := afero.ReadFile(fs, "/AST_out.log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")

	got, err := host.Highlight([]interface{}{2, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 5, 6, 0}}, got["chromaticaVarDecl"])

	data, err = afero.ReadFile(fs, "/AST_out.log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "second")
	assert.NotContains(t, string(data), "first")
	ed.AssertExpectations(t)
}

func TestHighlightMissingArguments(t *testing.T) {
	host := nvimhost.New(testContext(t), &MockEditor{}, nil)

	got, err := host.Highlight([]interface{}{1, 1})
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestHighlightEditorError(t *testing.T) {
	ed := &MockEditor{}
	ed.On("BufferName", nvim.Buffer(3)).Return("", errors.New("invalid buffer"))

	host := nvimhost.New(testContext(t), ed, nvimhost.TreeSitter)
	_, err := host.Highlight([]interface{}{3, 1, 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid buffer")
}

func TestSymbol(t *testing.T) {
	ed := bufferEditor("/w/point.cpp",
		"struct Point { int x; };",
		"Point origin;",
	)
	host := nvimhost.New(testContext(t), ed, nvimhost.TreeSitter)

	got, err := host.Symbol([]interface{}{uint64(1), 2.0, int8(1)})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Point", got["name"])
	assert.Equal(t, "StructDecl", got["kind"])
	assert.Equal(t, 1, got["line"])
	assert.Equal(t, 8, got["column"])

	got, err = host.Symbol([]interface{}{1, 1, 25})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSymbolBadArguments(t *testing.T) {
	host := nvimhost.New(testContext(t), &MockEditor{}, nvimhost.TreeSitter)

	_, err := host.Symbol([]interface{}{1, "two", 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument line")

	_, err = host.Symbol([]interface{}{1, []int{2}, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestRegisterManifest(t *testing.T) {
	p := plugin.New(nil)
	nvimhost.New(testContext(t), &MockEditor{}, nvimhost.TreeSitter).Register(p)

	manifest := string(p.Manifest("chromatica"))
	assert.Contains(t, manifest, nvimhost.HighlightFunction)
	assert.Contains(t, manifest, nvimhost.SymbolFunction)
}
