package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/unnamed42/chromatica.nvim/cmd/chromatica/highlight"
	serve_nvim "github.com/unnamed42/chromatica.nvim/cmd/chromatica/serve-nvim"
	"github.com/unnamed42/chromatica.nvim/cmd/chromatica/symbol"
	"github.com/unnamed42/chromatica.nvim/pkg/config"
	logging "github.com/unnamed42/chromatica.nvim/pkg/debug"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath string
		debugLog   bool
	)

	rootCmd := &cobra.Command{
		Use:           "chromatica",
		Short:         "semantic highlighting for C, C++ and Objective-C",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: nearest .chromatica.{yaml,yml,hcl})")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(afero.NewOsFs(), configPath)
		if err != nil {
			return err
		}
		if debugLog {
			cfg.Log.Level = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return errors.Errorf("invalid config: %w", err)
		}

		// stdout belongs to command output and to the neovim RPC stream
		logger := logging.NewLogger(os.Stderr, cfg.Level(), cfg.Log.Color)
		cmd.SetContext(config.WithContext(logger.WithContext(cmd.Context()), cfg))
		return nil
	}

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)
	rootCmd.AddCommand(highlight.NewHighlightCommand())
	rootCmd.AddCommand(symbol.NewSymbolCommand())
	rootCmd.AddCommand(serve_nvim.NewServeNvimCommand())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}

func loadConfig(fs afero.Fs, path string) (*config.Config, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return config.Default(), nil
		}
		found, ok := config.Discover(fs, wd)
		if !ok {
			return config.Default(), nil
		}
		path = found
	}

	cfg, err := config.Load(fs, path)
	if err != nil {
		return nil, errors.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}
