package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/logandonley/fontlist/internal/bridge"
)

func newServeCmd(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve commands to a front-end over local HTTP",
		Long: `Start the HTTP bridge. A front-end lists fonts with:

  POST /invoke/list_installed_fonts

The server stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := ctx.cfg.Bridge.Bind
			if bind != "" {
				addr = bind
			}

			server, err := bridge.NewServer(addr, bridge.RouterConfig{
				App:          ctx.app,
				AllowOrigins: ctx.cfg.Bridge.AllowOrigins,
				Logger:       ctx.logger,
			})
			if err != nil {
				return err
			}

			sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.ListenAndServe(sigCtx)
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Address to listen on (overrides bridge.bind)")
	return cmd
}
