package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vastitch/vastitch"
	"github.com/vastitch/vastitch/internal/platform"
	"github.com/vastitch/vastitch/pkg/vast"
)

var (
	verbose    bool
	configPath string
	maxDepth   int
	timeout    time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vastitch",
	Short: "Parse, unwrap and stitch VAST ad documents",
	Long: `Vastitch follows VAST wrapper chains and merges the tracking data of
every level into the terminal InLine ad, producing one self-contained
document instead of a chain of redirects.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newClient builds a client from the config file and any flags the user
// set on this invocation. Flags win over the file.
func newClient(cmd *cobra.Command, extra ...vastitch.Option) *vastitch.Client {
	cfg, err := platform.LoadConfig(configPath)
	if err != nil {
		fatal("Failed to load config", err)
	}

	opts := cfg.Options()
	if cmd.Flags().Changed("max-depth") {
		opts = append(opts, vastitch.WithMaxDepth(maxDepth))
	}
	if cmd.Flags().Changed("timeout") {
		opts = append(opts, vastitch.WithFetchTimeout(timeout))
	}
	opts = append(opts, vastitch.WithLogger(slog.Default()))
	opts = append(opts, extra...)

	return vastitch.New(opts...)
}

// writeDocument serializes doc and writes it to path, or stdout when path
// is empty.
func writeDocument(doc *vast.Document, pretty bool, path string) {
	data, err := doc.Marshal(pretty)
	if err != nil {
		fatal("Failed to serialize document", err)
	}

	if path == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		fatal("Failed to write output", err)
	}
	fmt.Printf("Written to %s\n", path)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default .vastitch.yaml if present)")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 5, "Maximum number of wrappers to follow")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 3*time.Second, "Per-request fetch timeout")
}
