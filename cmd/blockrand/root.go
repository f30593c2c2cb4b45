package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blockrand",
	Short: "blockrand generates balanced multi-factorial randomization lists",
	Long: `blockrand builds randomization lists for multi-factorial study designs
and exports them as per-factor CSV files ready for REDCap import.

Every factor is exactly balanced: each contiguous block of 2^k rows
contains every combination of the k factors exactly once, in random
order, so every factor column averages exactly 0.5 per block.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
