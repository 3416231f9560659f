/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/waltzrobotics/statebank/pkg/storage"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Check that an archive loads cleanly for the configured space",
	Long: `Verify performs a full load of an archive against the configured
state space and reports whether the header and body validate.

Example:
  statebank verify states.bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromContext(cmd)
		if err != nil {
			return err
		}
		sp, err := cfg.Space.Build()
		if err != nil {
			return err
		}

		store := storage.New(sp)
		defer store.Clear()
		if err := store.LoadFile(args[0]); err != nil {
			return fmt.Errorf("archive is not loadable: %w", err)
		}

		fmt.Printf("OK: %d %s states\n", store.Len(), sp.Name())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
