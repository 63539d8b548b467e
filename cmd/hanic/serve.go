package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gg582/hanic/internal/app"
	"github.com/gg582/hanic/internal/common"
)

func newServeCommand(g *globals) *cobra.Command {
	var socket string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve line conversions on a unix socket",
		Long: "Listens on a unix socket; every line a client writes is answered with its composed " +
			"Hangul on one line. Stops on SIGINT or SIGTERM.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv, err := app.StartTranslationServer(socket, g.cfg, g.log.Logger)
			if err != nil {
				return err
			}
			defer srv.Close()
			g.log.Info("translation server listening", "socket", srv.Addr(), "layout", g.cfg.LayoutName)

			select {
			case <-ctx.Done():
				g.log.Info("translation server stopping")
				return nil
			case err := <-srv.Err():
				return err
			}
		},
	}
	cmd.Flags().StringVar(&socket, "socket", common.DefaultSocketPath(), "unix socket to listen on")
	return cmd
}
