/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/waltzrobotics/statebank/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the archive inspection API",
	Long: `Serve starts a read-only HTTP API over the configured data
directory: archive listings, decoded headers, printed states and Prometheus
metrics.

Example:
  statebank serve --config statebank.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromContext(cmd)
		if err != nil {
			return err
		}
		sp, err := cfg.Space.Build()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
			return fmt.Errorf("failed to create data dir: %w", err)
		}

		return api.StartServer(sp, api.ServerConfig{
			DataDir: cfg.DataDir,
			Bind:    cfg.Bind,
			Port:    cfg.Port,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
