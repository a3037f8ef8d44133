package main

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	stitchInput  string
	stitchOutput string
	stitchPretty bool
)

var stitchCmd = &cobra.Command{
	Use:   "stitch",
	Short: "Resolve a wrapper chain and merge it into one document",
	Long: `Resolve a VAST wrapper chain and stitch the impressions, error pixels
and tracking events of every wrapper level into the terminal InLine ad.
The result is a single self-contained VAST document.`,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(cmd)

		doc, err := client.Stitch(context.Background(), stitchInput)
		if err != nil {
			fatal("Failed to stitch chain", err)
		}

		writeDocument(doc, stitchPretty, stitchOutput)
	},
}

func init() {
	rootCmd.AddCommand(stitchCmd)
	stitchCmd.Flags().StringVarP(&stitchInput, "input", "i", "", "VAST file path or URL")
	stitchCmd.Flags().StringVarP(&stitchOutput, "output", "o", "", "Output file (stdout if omitted)")
	stitchCmd.Flags().BoolVarP(&stitchPretty, "pretty", "p", false, "Indent the output")
	stitchCmd.MarkFlagRequired("input")
}
