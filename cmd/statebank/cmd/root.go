/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/waltzrobotics/statebank/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "statebank",
	Short: "statebank - precomputed state archives",
	Long: `statebank generates, stores and inspects binary archives of
precomputed state-space samples. Archives written for a space can only be
loaded by a space with the same signature.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg := config.DefaultConfig()
		if configPath != "" {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		}
		// Store in command context
		cmd.SetContext(context.WithValue(cmd.Context(), configKey, cfg))
		return nil
	},
}

type contextKey string

// configKey is the command-context key the loaded config is stored under
const configKey contextKey = "config"

// configFromContext retrieves the config placed by the root command
func configFromContext(cmd *cobra.Command) (*config.Config, error) {
	cfg, ok := cmd.Context().Value(configKey).(*config.Config)
	if !ok {
		return nil, fmt.Errorf("config not found in context")
	}
	return cfg, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a statebank config file (defaults used when empty)")
}
