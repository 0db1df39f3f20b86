package main

import (
	"fmt"
	"strconv"
	"strings"

	igraph "github.com/wippyai/igraph-go"
)

type operation struct {
	name string
	help string
	run  func(lib *igraph.Library, g *igraph.Graph) (string, error)
}

var operations = []operation{
	{"summary", "vertex and edge counts, directedness, connectivity", summary},
	{"edges", "edge list", func(_ *igraph.Library, g *igraph.Graph) (string, error) {
		edges, err := g.EdgeList()
		if err != nil {
			return "", err
		}
		parts := make([]string, len(edges))
		for i, e := range edges {
			parts[i] = fmt.Sprintf("%d-%d", e.From, e.To)
		}
		return strings.Join(parts, " "), nil
	}},
	{"degree", "degree of every vertex", func(_ *igraph.Library, g *igraph.Graph) (string, error) {
		deg, err := g.Degree(igraph.All, igraph.LoopsTwice)
		return formatInts(deg), err
	}},
	{"distances", "all-pairs shortest path lengths", func(_ *igraph.Library, g *igraph.Graph) (string, error) {
		rows, err := g.Distances(igraph.Out)
		if err != nil {
			return "", err
		}
		lines := make([]string, len(rows))
		for i, r := range rows {
			lines[i] = formatFloats(r)
		}
		return strings.Join(lines, "\n"), nil
	}},
	{"diameter", "longest shortest path", func(_ *igraph.Library, g *igraph.Graph) (string, error) {
		d, err := g.Diameter(true)
		return formatFloat(d), err
	}},
	{"betweenness", "betweenness centrality", func(_ *igraph.Library, g *igraph.Graph) (string, error) {
		res, err := g.Betweenness(true)
		return formatFloats(res), err
	}},
	{"closeness", "normalized closeness centrality", func(_ *igraph.Library, g *igraph.Graph) (string, error) {
		res, err := g.Closeness(igraph.All)
		return formatFloats(res), err
	}},
	{"pagerank", "PageRank with damping 0.85", func(_ *igraph.Library, g *igraph.Graph) (string, error) {
		res, err := g.PageRank(0.85)
		return formatFloats(res), err
	}},
	{"components", "weakly connected components", func(_ *igraph.Library, g *igraph.Graph) (string, error) {
		c, err := g.ConnectedComponents(igraph.Weak)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("count: %d\nsizes: %s\nmembership: %s",
			c.Count, formatInts(c.Sizes), formatInts(c.Membership)), nil
	}},
	{"leiden", "Leiden communities, resolution 1", func(_ *igraph.Library, g *igraph.Graph) (string, error) {
		p, err := g.CommunityLeiden(1)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("clusters: %d\nquality: %s\nmembership: %s",
			p.Clusters, formatFloat(p.Quality), formatInts(p.Membership)), nil
	}},
	{"labelprop", "label propagation communities", func(_ *igraph.Library, g *igraph.Graph) (string, error) {
		m, err := g.CommunityLabelPropagation()
		return formatInts(m), err
	}},
	{"fastgreedy", "greedy modularity communities", func(_ *igraph.Library, g *igraph.Graph) (string, error) {
		m, q, err := g.CommunityFastGreedy()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("membership: %s\nmodularity: %s", formatInts(m), formatFloats(q)), nil
	}},
	{"triangles", "triangle embeddings found by VF2", triangles},
}

func summary(_ *igraph.Library, g *igraph.Graph) (string, error) {
	connected, err := g.IsConnected(igraph.Weak)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("vertices: %d\nedges: %d\ndirected: %t\nconnected: %t",
		g.VCount(), g.ECount(), g.IsDirected(), connected), nil
}

func triangles(lib *igraph.Library, g *igraph.Graph) (string, error) {
	pattern, err := lib.Full(3, g.IsDirected(), false)
	if err != nil {
		return "", err
	}
	defer pattern.Close()
	n, err := g.CountSubisomorphismsVF2(pattern)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n, 10), nil
}

// selectOperations resolves a comma-separated list; "all" selects every
// operation in catalogue order.
func selectOperations(list string) ([]operation, error) {
	if strings.TrimSpace(list) == "all" {
		return operations, nil
	}
	var ops []operation
	for _, name := range strings.Split(list, ",") {
		op, ok := lookupOperation(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown operation %q", name)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func lookupOperation(name string) (operation, bool) {
	for _, op := range operations {
		if op.name == name {
			return op, true
		}
	}
	return operation{}, false
}

func formatFloat(x float64) string { return strconv.FormatFloat(x, 'g', 6, 64) }

func formatFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = formatFloat(x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatInts(xs []int64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatInt(x, 10)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
