package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/RedPaladin7/pokerhands/api"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the poker hands HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commandConfig(cmd)
			if err != nil {
				return err
			}

			server := api.NewServer(api.ServerConfig{
				Version:    Version,
				ListenAddr: cfg.APIAddr,
				MaxPlayers: cfg.MaxPlayers,
				Seed:       cfg.Seed,
			})

			logrus.Info("===========================================")
			logrus.Info("  Poker Hands")
			logrus.Info("===========================================")
			logrus.Infof("Version:        %s", Version)
			logrus.Infof("API Address:    http://%s", server.ListenAddr)
			logrus.Infof("Max Players:    %d", server.MaxPlayers)
			logrus.Info("API Endpoints:")
			logrus.Infof("  Health:       GET  http://%s/api/health", server.ListenAddr)
			logrus.Infof("  Deal:         GET  http://%s/api/players/{names}", server.ListenAddr)
			logrus.Infof("  Evaluate:     POST http://%s/api/evaluate", server.ListenAddr)
			logrus.Info("===========================================")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := server.Run(ctx); err != nil {
				return err
			}
			logrus.Info("Server stopped")
			return nil
		},
	}
	cmd.Flags().String(keyAPIAddr, "localhost:8080", "HTTP API listen address")
	return cmd
}
