package routefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/methan6427/Dijkstra-2026/core"
	"github.com/methan6427/Dijkstra-2026/dijkstra"
)

// Load parses the wire format from r into a ready-to-run Query.
//
// The first content line (non-blank, non-comment) is the header; every
// later content line is an edge record. Parse failures carry the 1-based
// line number and wrap the matching sentinel error.
func Load(r io.Reader, opts ...Option) (*Query, error) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	scanner := bufio.NewScanner(r)

	q := &Query{Graph: core.NewGraph()}
	headerSeen := false
	lineNo := 0
	edges := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !headerSeen {
			if err := parseHeader(line, lineNo, q); err != nil {
				return nil, err
			}
			headerSeen = true

			continue
		}

		if err := parseEdge(line, lineNo, q.Graph); err != nil {
			return nil, err
		}
		edges++
		if cfg.Progress != nil && edges%progressInterval == 0 {
			cfg.Progress(edges)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("routefile: read failed: %w", err)
	}
	if !headerSeen {
		return nil, ErrEmptyInput
	}

	// Endpoints may legitimately have no edge records (zero out-degree or a
	// trivially empty graph); register them so the engine recognizes the id
	// space the header was written against.
	_ = q.Graph.AddNode(q.Start)
	_ = q.Graph.AddNode(q.End)

	if cfg.Progress != nil {
		cfg.Progress(edges)
	}

	return q, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, opts ...Option) (*Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("routefile: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// parseHeader fills q.Start, q.End and q.Metric from the header record.
func parseHeader(line string, lineNo int, q *Query) error {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return fmt.Errorf("%w: line %d: want 3 fields, got %d", ErrBadHeader, lineNo, len(fields))
	}

	q.Start = fields[0]
	q.End = fields[1]

	switch fields[2] {
	case "1":
		q.Metric = dijkstra.MetricDistance
	case "2":
		q.Metric = dijkstra.MetricTime
	case "3":
		q.Metric = dijkstra.MetricBoth
	default:
		return fmt.Errorf("%w: line %d: got %q", ErrBadMetricCode, lineNo, fields[2])
	}

	return nil
}

// parseEdge appends one directed arc from an edge record.
func parseEdge(line string, lineNo int, g *core.Graph) error {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return fmt.Errorf("%w: line %d: want 4 fields, got %d", ErrBadEdgeRecord, lineNo, len(fields))
	}

	distance, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return fmt.Errorf("%w: line %d: bad distance %q", ErrBadEdgeRecord, lineNo, fields[2])
	}
	timeCost, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return fmt.Errorf("%w: line %d: bad time %q", ErrBadEdgeRecord, lineNo, fields[3])
	}

	if err := g.AddEdge(fields[0], fields[1], distance, timeCost); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrBadEdgeRecord, lineNo, err)
	}

	return nil
}
