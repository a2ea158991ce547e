// Package output renders command results in the format picked by --format.
package output

import (
	"encoding/json"
	"io"

	"github.com/k0kubun/pp/v3"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Formats are the accepted --format values.
var Formats = []string{"json", "yaml", "pretty"}

func Write(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Errorf("encoding json: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return errors.Errorf("closing yaml encoder: %w", err)
		}
	case "pretty":
		printer := pp.New()
		printer.SetOutput(w)
		printer.SetColoringEnabled(false)
		if _, err := printer.Println(v); err != nil {
			return errors.Errorf("printing: %w", err)
		}
	default:
		return errors.Errorf("unknown format %q, want one of %v", format, Formats)
	}
	return nil
}
