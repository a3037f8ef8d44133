package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vastitch/vastitch"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of vastitch",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vastitch version %s\n", strings.TrimSpace(vastitch.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
