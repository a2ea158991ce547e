package highlight

import (
	"context"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/unnamed42/chromatica.nvim/cmd/chromatica/output"
	"github.com/unnamed42/chromatica.nvim/pkg/config"
	"github.com/unnamed42/chromatica.nvim/pkg/frontend/treesitter"
	"github.com/unnamed42/chromatica.nvim/pkg/semtok"
)

type Handler struct {
	lines     string
	format    string
	trace     bool
	traceFile string
	watch     bool
	jobs      int

	fs  afero.Fs
	out io.Writer
}

func NewHighlightCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "highlight FILE|GLOB...",
		Short: "print the highlight groups of C-family source files",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.Flags().StringVar(&me.lines, "lines", "", "line range B:E to highlight (default: whole file)")
	cmd.Flags().StringVar(&me.format, "format", "json", "output format: "+strings.Join(output.Formats, ", "))
	cmd.Flags().BoolVar(&me.trace, "trace", false, "write a per-token trace")
	cmd.Flags().StringVar(&me.traceFile, "trace-file", "", "trace destination (default from config, then "+semtok.DefaultTracePath+")")
	cmd.Flags().BoolVar(&me.watch, "watch", false, "highlight again whenever a file is written")
	cmd.Flags().IntVar(&me.jobs, "jobs", 4, "files processed in parallel")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.out = cmd.OutOrStdout()
		return me.Run(cmd.Context(), args)
	}

	return cmd
}

// FileResult is the output for one file.
type FileResult struct {
	File       string             `json:"file" yaml:"file"`
	Highlights map[string][][]int `json:"highlights" yaml:"highlights"`
}

func (me *Handler) Run(ctx context.Context, args []string) error {
	cfg := config.FromContext(ctx)

	begin, end, err := parseLines(me.lines)
	if err != nil {
		return err
	}

	files, err := me.expand(ctx, cfg, args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no matching files")
	}

	var tf *semtok.TraceFile
	if me.trace || cfg.Trace.Enabled {
		path := me.traceFile
		if path == "" {
			path = cfg.Trace.Path
		}
		tf = semtok.NewTraceFile(me.fs, path)
	}

	var results []*FileResult
	err = me.traced(tf, func(opts []semtok.Option) (err error) {
		results, err = me.highlightAll(ctx, files, begin, end, opts)
		return err
	})
	if err != nil {
		return err
	}
	if err := output.Write(me.out, me.format, results); err != nil {
		return err
	}

	if !me.watch {
		return nil
	}
	return me.watchFiles(ctx, files, begin, end, tf)
}

// traced runs one highlighting pass, with a fresh trace when tf is set.
func (me *Handler) traced(tf *semtok.TraceFile, fn func(opts []semtok.Option) error) error {
	if tf == nil {
		return fn(nil)
	}
	return tf.Session(func(t semtok.Tracer) error {
		return fn([]semtok.Option{semtok.WithTracer(t)})
	})
}

func (me *Handler) highlightAll(ctx context.Context, files []string, begin, end int, opts []semtok.Option) ([]*FileResult, error) {
	results := make([]*FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	if me.jobs > 0 {
		g.SetLimit(me.jobs)
	}
	for i, file := range files {
		g.Go(func() error {
			res, err := me.highlightOne(gctx, file, begin, end, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (me *Handler) highlightOne(ctx context.Context, file string, begin, end int, opts []semtok.Option) (*FileResult, error) {
	unit, err := treesitter.ParseFile(ctx, me.fs, file)
	if err != nil {
		return nil, err
	}

	if end <= 0 {
		end = strings.Count(string(unit.Source()), "\n") + 1
	}

	hl, ok := semtok.Extract(ctx, unit, file, begin, end, opts...)
	if !ok {
		return nil, errors.Errorf("%s is not part of its own translation unit", file)
	}

	return &FileResult{File: file, Highlights: hl.Tuples()}, nil
}

// expand resolves globs against the filesystem. Glob matches are filtered
// by the configured patterns; plain paths are taken as given.
func (me *Handler) expand(ctx context.Context, cfg *config.Config, args []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	add := func(f string) {
		if !seen[f] {
			seen[f] = true
			files = append(files, f)
		}
	}

	for _, arg := range args {
		if !hasMeta(arg) {
			add(arg)
			continue
		}

		base, pattern := doublestar.SplitPattern(filepath.ToSlash(arg))
		matches, err := doublestar.Glob(afero.NewIOFS(afero.NewBasePathFs(me.fs, base)), pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("expanding %s: %w", arg, err)
		}
		for _, m := range matches {
			path := filepath.Join(base, filepath.FromSlash(m))
			if !cfg.Matches(path) {
				zerolog.Ctx(ctx).Debug().Str("file", path).Msg("skipping file outside configured patterns")
				continue
			}
			add(path)
		}
	}
	return files, nil
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// parseLines reads "B:E". An empty range means the whole file.
func parseLines(s string) (int, int, error) {
	if s == "" {
		return 1, 0, nil
	}
	b, e, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, errors.Errorf("invalid --lines %q, want B:E", s)
	}
	begin, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, errors.Errorf("invalid --lines begin %q: %w", b, err)
	}
	end, err := strconv.Atoi(e)
	if err != nil {
		return 0, 0, errors.Errorf("invalid --lines end %q: %w", e, err)
	}
	if begin < 1 || end < begin {
		return 0, 0, errors.Errorf("invalid --lines %q: need 1 <= B <= E", s)
	}
	return begin, end, nil
}

func (me *Handler) watchFiles(ctx context.Context, files []string, begin, end int, tf *semtok.TraceFile) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	watched := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return errors.Errorf("resolving %s: %w", f, err)
		}
		watched[abs] = true
		// editors replace files on save, so watch the directory
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return errors.Errorf("watching %s: %w", f, err)
		}
	}

	logger := zerolog.Ctx(ctx)
	logger.Info().Int("files", len(files)).Msg("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watch error")
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !watched[ev.Name] {
				continue
			}
			var res *FileResult
			err := me.traced(tf, func(opts []semtok.Option) (err error) {
				res, err = me.highlightOne(ctx, ev.Name, begin, end, opts)
				return err
			})
			if err != nil {
				logger.Error().Err(err).Str("file", ev.Name).Msg("highlight failed")
				continue
			}
			if err := output.Write(me.out, me.format, []*FileResult{res}); err != nil {
				return err
			}
			logger.Debug().Str("file", ev.Name).Msg("highlighted after change")
		}
	}
}
