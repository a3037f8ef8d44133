package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vastitch/vastitch"
	"github.com/vastitch/vastitch/pkg/watch"
)

var (
	watchPattern string
	watchOutput  string
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-stitch VAST samples whenever they change",
	Long: `Watch a directory of local VAST samples and re-run stitching for every
file that changes. Stitched documents go to the output directory, or to
stdout when none is given. Intended for test-harness workflows.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := args[0]
		client := newClient(cmd, vastitch.WithBaseDir(dir))

		if watchOutput != "" {
			if err := os.MkdirAll(watchOutput, 0755); err != nil {
				fatal("Failed to create output directory", err)
			}
		}

		watcher, err := watch.New(dir, watchPattern, slog.Default())
		if err != nil {
			fatal("Failed to create watcher", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		changed := make(chan string)
		go func() {
			if err := watcher.Run(ctx, changed); err != nil {
				fmt.Fprintf(os.Stderr, "Watcher stopped: %v\n", err)
			}
			close(changed)
		}()

		fmt.Printf("Watching %s (pattern %q)\n", dir, watchPattern)
		for path := range changed {
			restitch(ctx, client, path)
		}
	},
}

// restitch runs one stitch pass for a changed sample and reports the
// outcome without terminating the watch loop.
func restitch(ctx context.Context, client *vastitch.Client, path string) {
	doc, err := client.Stitch(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stitch %s: %v\n", path, err)
		return
	}

	out := ""
	if watchOutput != "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		out = filepath.Join(watchOutput, base+".stitched.xml")
	}
	writeDocument(doc, true, out)
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", watch.DefaultPattern, "Glob pattern of files to watch")
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Directory for stitched output (stdout if omitted)")
}
