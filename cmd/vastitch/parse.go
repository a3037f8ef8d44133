package main

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	parseInput  string
	parsePretty bool
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a VAST document and print it",
	Long:  `Fetch a VAST document from a file path or URL, parse it, and print the normalized XML. Wrappers are not followed.`,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(cmd)

		doc, err := client.Parse(context.Background(), parseInput)
		if err != nil {
			fatal("Failed to parse document", err)
		}

		writeDocument(doc, parsePretty, "")
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseInput, "input", "i", "", "VAST file path or URL")
	parseCmd.Flags().BoolVarP(&parsePretty, "pretty", "p", false, "Indent the output")
	parseCmd.MarkFlagRequired("input")
}
