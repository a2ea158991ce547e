package serve_nvim

import (
	"context"
	"io"
	"os"

	"github.com/neovim/go-client/nvim"
	"github.com/neovim/go-client/nvim/plugin"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/unnamed42/chromatica.nvim/pkg/config"
	"github.com/unnamed42/chromatica.nvim/pkg/nvimhost"
	"github.com/unnamed42/chromatica.nvim/pkg/semtok"
)

type Handler struct {
	manifest string

	fs afero.Fs
}

func NewServeNvimCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "serve-nvim",
		Short: "run as a neovim remote plugin over stdio",
	}

	cmd.Flags().StringVar(&me.manifest, "manifest", "", "print the plugin manifest for the given host name and exit")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if me.manifest != "" {
			return me.WriteManifest(cmd.Context(), cmd.OutOrStdout())
		}
		return me.Run(cmd.Context())
	}

	return cmd
}

// WriteManifest prints the remote#host#RegisterPlugin call for the host.
func (me *Handler) WriteManifest(ctx context.Context, w io.Writer) error {
	p := plugin.New(nil)
	nvimhost.New(ctx, nil, nvimhost.TreeSitter).Register(p)
	if _, err := w.Write(p.Manifest(me.manifest)); err != nil {
		return errors.Errorf("writing manifest: %w", err)
	}
	return nil
}

func (me *Handler) Run(ctx context.Context) (err error) {
	cfg := config.FromContext(ctx)
	logger := zerolog.Ctx(ctx)

	v, err := nvim.New(os.Stdin, os.Stdout, os.Stdout, func(format string, args ...interface{}) {
		logger.Debug().Msgf(format, args...)
	})
	if err != nil {
		return errors.Errorf("connecting to neovim: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(v))

	p := plugin.New(v)
	host := nvimhost.New(ctx, v, nvimhost.TreeSitter)
	if cfg.Trace.Enabled {
		host.TraceTo(semtok.NewTraceFile(me.fs, cfg.Trace.Path))
	}
	host.Register(p)

	logger.Info().Msg("serving neovim")
	if err := v.Serve(); err != nil {
		return errors.Errorf("serving neovim: %w", err)
	}
	return nil
}
