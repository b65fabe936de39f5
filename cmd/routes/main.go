// Command routes is the front end for dual-metric shortest-path queries:
// one-shot file queries and an HTTP serve mode over a loaded graph.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "routes",
	Short: "Dual-metric shortest-path queries over directed graphs",
	Long: `routes computes single-pair shortest paths over directed graphs whose
edges carry two independent weights, a distance cost and a travel-time cost.
One weight drives each query; both totals are reported.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}

	rootCmd.AddCommand(queryCmd, serveCmd)
}
