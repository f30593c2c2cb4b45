package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blockrand/factorial"
	"github.com/katalvlaran/blockrand/redcap"
)

// verifyCmd re-reads previously exported CSVs and checks block balance.
var verifyCmd = &cobra.Command{
	Use:   "verify <file_prefix> <factor_count>",
	Short: "Verify block balance of previously generated CSV files",
	Long: `Reads the <factor_count> files <file_prefix>_NN.csv back, reconstructs
the allocation table and recomputes the per-block mean of every factor.
A balanced list reports 0.5 everywhere; anything else exits non-zero.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		factorCount, err := strconv.Atoi(args[1])
		if err != nil {
			fatalUsage(cmd, fmt.Sprintf("factor_count must be an integer, got %q", args[1]))
		}

		tbl, err := redcap.Read(args[0], factorCount)
		if err != nil {
			fatal(err)
		}

		means, err := factorial.VerifyBalance(tbl)
		if err != nil {
			fatal(err)
		}

		for b, block := range means.Means {
			fmt.Printf("block %d: %v\n", b+1, block)
		}
		if !means.Balanced() {
			fatal(fmt.Errorf("list is not balanced: at least one block mean deviates from 0.5"))
		}
		fmt.Printf("balanced: %d blocks of %d rows, %d factors\n", means.Blocks(), means.BlockSize, factorCount)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
