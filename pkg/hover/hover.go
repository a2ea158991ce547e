// Package hover resolves source positions to the symbols they denote and
// describes those symbols for display.
package hover

import (
	"fmt"
	"strings"

	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
	"gitlab.com/tozd/go/errors"
)

// Info is what the editor shows for a symbol.
type Info struct {
	Name   string `json:"name" yaml:"name"`
	Kind   string `json:"kind" yaml:"kind"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`
	File   string `json:"file" yaml:"file"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
	// Markdown is a ready-to-render summary
	Markdown string `json:"markdown" yaml:"markdown"`
}

// Describe formats a resolved symbol.
func Describe(sym cindex.Cursor) (*Info, error) {
	if sym == nil {
		return nil, errors.New("symbol cannot be nil")
	}

	loc := sym.Location()
	info := &Info{
		Name:   sym.Spelling(),
		Kind:   sym.Kind().String(),
		Type:   sym.Type().Spelling,
		File:   loc.File,
		Line:   loc.Line,
		Column: loc.Column,
	}
	if parent, ok := sym.SemanticParent(); ok && parent.Kind() != cindex.TranslationUnit {
		info.Parent = parent.Spelling()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("### %s\n\n", info.Kind))
	sb.WriteString("```cpp\n")
	if info.Type != "" && info.Type != info.Name {
		sb.WriteString(info.Type + " ")
	}
	if info.Parent != "" {
		sb.WriteString(info.Parent + "::")
	}
	sb.WriteString(info.Name)
	sb.WriteString("\n```\n\n")
	sb.WriteString(fmt.Sprintf("Defined at `%s`", loc))
	info.Markdown = sb.String()

	return info, nil
}

// Map is the loosely typed form sent to the editor.
func (i *Info) Map() map[string]interface{} {
	return map[string]interface{}{
		"name":     i.Name,
		"kind":     i.Kind,
		"type":     i.Type,
		"parent":   i.Parent,
		"file":     i.File,
		"line":     i.Line,
		"column":   i.Column,
		"markdown": i.Markdown,
	}
}
