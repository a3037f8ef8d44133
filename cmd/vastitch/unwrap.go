package main

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	unwrapInput  string
	unwrapPretty bool
)

var unwrapCmd = &cobra.Command{
	Use:   "unwrap",
	Short: "Follow a wrapper chain to its InLine ad",
	Long: `Resolve a VAST wrapper chain starting at the given location and print
the terminal document containing the InLine ad. Tracking data of the
intermediate wrappers is not merged; use stitch for that.`,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(cmd)

		doc, err := client.Unwrap(context.Background(), unwrapInput)
		if err != nil {
			fatal("Failed to unwrap chain", err)
		}

		writeDocument(doc, unwrapPretty, "")
	},
}

func init() {
	rootCmd.AddCommand(unwrapCmd)
	unwrapCmd.Flags().StringVarP(&unwrapInput, "input", "i", "", "VAST file path or URL")
	unwrapCmd.Flags().BoolVarP(&unwrapPretty, "pretty", "p", false, "Indent the output")
	unwrapCmd.MarkFlagRequired("input")
}
