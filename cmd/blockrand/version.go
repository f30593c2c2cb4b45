package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blockrand"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of blockrand",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("blockrand version %s\n", blockrand.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
