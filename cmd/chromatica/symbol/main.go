package symbol

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/unnamed42/chromatica.nvim/cmd/chromatica/output"
	"github.com/unnamed42/chromatica.nvim/pkg/frontend/treesitter"
	"github.com/unnamed42/chromatica.nvim/pkg/hover"
)

type Handler struct {
	format string

	fs  afero.Fs
	out io.Writer
}

func NewSymbolCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "symbol FILE LINE COL",
		Short: "show the declaration the token at a position refers to",
		Args:  cobra.ExactArgs(3),
	}

	cmd.Flags().StringVar(&me.format, "format", "text", "output format: text, "+strings.Join(output.Formats, ", "))

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.out = cmd.OutOrStdout()
		return me.Run(cmd.Context(), args[0], args[1], args[2])
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, file, lineArg, colArg string) error {
	line, err := strconv.Atoi(lineArg)
	if err != nil {
		return errors.Errorf("invalid line %q: %w", lineArg, err)
	}
	col, err := strconv.Atoi(colArg)
	if err != nil {
		return errors.Errorf("invalid column %q: %w", colArg, err)
	}

	unit, err := treesitter.ParseFile(ctx, me.fs, file)
	if err != nil {
		return err
	}

	sym, ok := hover.ResolveSymbol(ctx, unit, file, line, col)
	if !ok {
		_, err := fmt.Fprintln(me.out, "no symbol")
		return err
	}

	info, err := hover.Describe(sym)
	if err != nil {
		return err
	}

	if me.format == "text" {
		_, err := fmt.Fprintln(me.out, info.Markdown)
		return err
	}
	return output.Write(me.out, me.format, info)
}
