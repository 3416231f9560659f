/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/waltzrobotics/statebank/pkg/storage"
)

// printCmd represents the print command
var printCmd = &cobra.Command{
	Use:   "print <file>",
	Short: "Load an archive and print every state",
	Long: `Print loads an archive with the configured state space and writes one
human-readable line per state to stdout.

Example:
  statebank print states.bin`,
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
			return fmt.Errorf("failed to load archive: %w", err)
		}

		store.Print(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
