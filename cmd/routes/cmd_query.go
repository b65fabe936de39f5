package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/methan6427/Dijkstra-2026/dijkstra"
	"github.com/methan6427/Dijkstra-2026/routefile"
)

var queryCmd = &cobra.Command{
	Use:   "query <file>",
	Short: "Run the query described by a route file",
	Long: `query loads a route file (header "start end metric", then one
"source target distance time" record per line) and prints the shortest path
per requested metric, or "no path found" when the destination is
unreachable.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	q, err := routefile.LoadFile(args[0], routefile.WithProgress(func(edges int) {
		slog.Debug("loading graph", "edges", edges)
	}))
	if err != nil {
		return err
	}
	slog.Debug("graph loaded",
		"nodes", q.Graph.NodeCount(), "edges", q.Graph.EdgeCount(),
		"start", q.Start, "end", q.End, "metric", q.Metric.String())

	results, err := q.Run()
	if errors.Is(err, dijkstra.ErrNoPath) {
		// An unreachable destination is a normal answer, not a failure.
		fmt.Fprintln(cmd.OutOrStdout(), "no path found")

		return nil
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		fmt.Fprintf(out, "metric %s: %s\n", res.Metric, strings.Join(res.Path, " -> "))
		fmt.Fprintf(out, "  total distance: %g\n", res.TotalDistance)
		fmt.Fprintf(out, "  total time:     %g\n", res.TotalTime)
	}

	return nil
}
