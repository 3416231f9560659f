/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/waltzrobotics/statebank/pkg/codec"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print the header of an archive",
	Long: `Info decodes an archive header without loading any states and prints
the stored signature, state count and metadata size.

Example:
  statebank info states.bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer f.Close()

		header, err := codec.InspectHeader(bufio.NewReader(f))
		if err != nil {
			return fmt.Errorf("failed to read header: %w", err)
		}

		fmt.Printf("signature:     [%s]\n", header.Signature)
		fmt.Printf("state count:   %d\n", header.StateCount)
		fmt.Printf("metadata size: %d\n", header.MetadataSize)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
