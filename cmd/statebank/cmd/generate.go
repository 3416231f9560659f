/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/waltzrobotics/statebank/pkg/storage"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <count> <file>",
	Short: "Generate uniform samples and store them as an archive",
	Long: `Generate draws uniform samples from the configured state space and
writes them to a binary archive.

Example:
  statebank generate 1000 states.bin`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[0])
		if err != nil || count < 0 {
			return fmt.Errorf("count must be a non-negative integer, got %q", args[0])
		}

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
		store.Generate(count)
		if err := store.StoreFile(args[1]); err != nil {
			return fmt.Errorf("failed to store archive: %w", err)
		}

		fmt.Printf("Stored %d %s states in %s\n", store.Len(), sp.Name(), args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
