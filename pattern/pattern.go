// pattern.go — participle grammar and graph assembly.

package pattern

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/isomatch/isomatch/graph"
)

// The grammar mirrors how the expressions read: an expression is runs
// split by separators, a run is a start node plus hops, and every hop
// names its channel, an optional multiplicity and the next node.

type exprAST struct {
	Runs []*runAST `parser:"@@ ((\";\" | \",\") @@?)*"`
}

type runAST struct {
	Start string    `parser:"@Ident"`
	Hops  []*hopAST `parser:"@@*"`
}

type hopAST struct {
	Channel string `parser:"\"-\" @Ident"`
	Mult    *int   `parser:"(\"*\" @Int)?"`
	Target  string `parser:"\"-\" \">\" @Ident"`
}

var parser = participle.MustBuild[exprAST]()

// Parse builds a graph from an edge-run expression. Hops without an
// explicit multiplicity count 1.
//
// Errors:
//   - ErrSyntax on malformed input or a multiplicity below 1;
//   - graph.ErrNoChannels when the expression declares nodes but no edges
//     (a graph needs at least one channel).
func Parse(expr string) (*graph.Graph, error) {
	ast, err := parser.ParseString("", expr)
	if err != nil {
		return nil, fmt.Errorf("Parse: %v: %w", err, ErrSyntax)
	}

	// First-appearance identity order, duplicates collapsed.
	nodes := linkedhashset.New()
	channels := linkedhashset.New()

	var edges []graph.Edge
	for _, run := range ast.Runs {
		src := run.Start
		nodes.Add(src)
		for _, hop := range run.Hops {
			count := 1
			if hop.Mult != nil {
				count = *hop.Mult
				if count < 1 {
					return nil, fmt.Errorf("Parse: %s -%s-> %s has multiplicity %d: %w",
						src, hop.Channel, hop.Target, count, ErrSyntax)
				}
			}
			channels.Add(hop.Channel)
			nodes.Add(hop.Target)
			edges = append(edges, graph.Edge{
				Source:  src,
				Target:  hop.Target,
				Channel: hop.Channel,
				Count:   float64(count),
			})
			src = hop.Target
		}
	}

	ids := make([]string, 0, nodes.Size())
	for _, v := range nodes.Values() {
		ids = append(ids, v.(string))
	}
	names := make([]string, 0, channels.Size())
	for _, v := range channels.Values() {
		names = append(names, v.(string))
	}

	g, err := graph.NewFromEdges(edges,
		graph.WithNodes(ids...), graph.WithChannels(names...))
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return g, nil
}
