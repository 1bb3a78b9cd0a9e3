package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/logandonley/fontlist/internal/app"
	"github.com/logandonley/fontlist/internal/config"
	"github.com/logandonley/fontlist/internal/logging"
	"github.com/logandonley/fontlist/pkg/fontlist"
)

// commandContext carries flag values and the state built during startup
type commandContext struct {
	configPath string
	logLevel   string
	logFormat  string
	fontDirs   []string
	noSystem   bool

	cfg    *config.Config
	logger *slog.Logger
	app    *app.App
}

func newRootCmd() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:   "fontlist",
		Short: "fontlist lists the fonts installed on this machine",
		Long: `List the font families and styles installed on Linux, macOS and Windows,
and serve them to a web front-end over a local HTTP bridge.

Examples:
  # Print installed fonts
  fontlist list

  # Print installed fonts as JSON, including an extra directory
  fontlist list --format json --font-dir ~/projects/brand-fonts

  # Serve the list_installed_fonts command to a front-end
  fontlist serve --bind 127.0.0.1:7878

  # Run a command in-process
  fontlist invoke list_installed_fonts`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configPath, "config", "c", "", "Path to the config file")
	flags.StringVar(&ctx.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&ctx.logFormat, "log-format", "", "Log format (console, json)")
	flags.StringArrayVar(&ctx.fontDirs, "font-dir", nil, "Additional font directory (repeatable)")
	flags.BoolVar(&ctx.noSystem, "no-system", false, "Only scan directories given with --font-dir or the config file")

	rootCmd.AddCommand(newListCmd(ctx))
	rootCmd.AddCommand(newServeCmd(ctx))
	rootCmd.AddCommand(newInvokeCmd(ctx))

	return rootCmd
}

// setup loads the configuration and opens the font catalog. Any failure here
// aborts before a command runs.
func (c *commandContext) setup(cmd *cobra.Command) error {
	if skipsSetup(cmd) {
		return nil
	}

	cfg, _, _, err := config.Parse(c.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if c.logLevel != "" {
		cfg.Logging.Level = c.logLevel
	}
	if c.logFormat != "" {
		cfg.Logging.Format = c.logFormat
	}
	cfg.Fonts.ExtraDirs = append(cfg.Fonts.ExtraDirs, c.fontDirs...)
	if c.noSystem {
		cfg.Fonts.IncludeSystem = false
	}
	if err := cfg.Normalize(); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	opts := []fontlist.Option{
		fontlist.WithLogger(logger),
		fontlist.WithExtraDirs(cfg.Fonts.ExtraDirs...),
	}
	if !cfg.Fonts.IncludeSystem {
		opts = append(opts, fontlist.WithoutPlatformDirs())
	}

	catalog, err := fontlist.Open(cmd.Context(), opts...)
	if err != nil {
		return fmt.Errorf("opening font catalog: %w", err)
	}

	application, err := app.New(catalog, logger)
	if err != nil {
		return fmt.Errorf("initializing app: %w", err)
	}

	c.cfg = cfg
	c.logger = logger
	c.app = application
	return nil
}

// skipsSetup reports whether cmd is help or shell completion, which never
// touch the catalog
func skipsSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}
