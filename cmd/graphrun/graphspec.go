package main

import (
	"fmt"
	"strconv"
	"strings"

	igraph "github.com/wippyai/igraph-go"
)

type graphKind struct {
	name  string
	usage string
	args  int
	build func(lib *igraph.Library, args []string, directed bool) (*igraph.Graph, error)
}

var graphKinds = []graphKind{
	{"empty", "empty:N", 1, func(lib *igraph.Library, a []string, d bool) (*igraph.Graph, error) {
		n, err := intArg(a[0])
		if err != nil {
			return nil, err
		}
		return lib.Empty(n, d)
	}},
	{"famous", "famous:NAME (Petersen, Zachary, ...)", 1, func(lib *igraph.Library, a []string, _ bool) (*igraph.Graph, error) {
		return lib.Famous(a[0])
	}},
	{"ring", "ring:N", 1, func(lib *igraph.Library, a []string, d bool) (*igraph.Graph, error) {
		n, err := intArg(a[0])
		if err != nil {
			return nil, err
		}
		return lib.Ring(n, d, false, true)
	}},
	{"path", "path:N", 1, func(lib *igraph.Library, a []string, d bool) (*igraph.Graph, error) {
		n, err := intArg(a[0])
		if err != nil {
			return nil, err
		}
		return lib.Ring(n, d, false, false)
	}},
	{"star", "star:N", 1, func(lib *igraph.Library, a []string, d bool) (*igraph.Graph, error) {
		n, err := intArg(a[0])
		if err != nil {
			return nil, err
		}
		mode := igraph.StarUndirected
		if d {
			mode = igraph.StarOut
		}
		return lib.Star(n, mode, 0)
	}},
	{"full", "full:N", 1, func(lib *igraph.Library, a []string, d bool) (*igraph.Graph, error) {
		n, err := intArg(a[0])
		if err != nil {
			return nil, err
		}
		return lib.Full(n, d, false)
	}},
	{"tree", "tree:N:CHILDREN", 2, func(lib *igraph.Library, a []string, d bool) (*igraph.Graph, error) {
		n, err := intArg(a[0])
		if err != nil {
			return nil, err
		}
		k, err := intArg(a[1])
		if err != nil {
			return nil, err
		}
		mode := igraph.TreeUndirected
		if d {
			mode = igraph.TreeOut
		}
		return lib.KaryTree(n, k, mode)
	}},
	{"gnp", "gnp:N:P", 2, func(lib *igraph.Library, a []string, d bool) (*igraph.Graph, error) {
		n, err := intArg(a[0])
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(a[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad probability %q", a[1])
		}
		return lib.ErdosRenyiGNP(n, p, d, false)
	}},
	{"gnm", "gnm:N:M", 2, func(lib *igraph.Library, a []string, d bool) (*igraph.Graph, error) {
		n, err := intArg(a[0])
		if err != nil {
			return nil, err
		}
		m, err := intArg(a[1])
		if err != nil {
			return nil, err
		}
		return lib.ErdosRenyiGNM(n, m, d, false)
	}},
	{"barabasi", "barabasi:N:M", 2, func(lib *igraph.Library, a []string, d bool) (*igraph.Graph, error) {
		n, err := intArg(a[0])
		if err != nil {
			return nil, err
		}
		m, err := intArg(a[1])
		if err != nil {
			return nil, err
		}
		return lib.Barabasi(n, m, d)
	}},
	{"edges", "edges:A-B,C-D,...", 1, func(lib *igraph.Library, a []string, d bool) (*igraph.Graph, error) {
		edges, n, err := parseEdges(a[0])
		if err != nil {
			return nil, err
		}
		return lib.FromEdges(edges, n, d)
	}},
}

// buildGraph parses "kind:arg[:arg]" and builds the graph it names.
func buildGraph(lib *igraph.Library, spec string, directed bool) (*igraph.Graph, error) {
	kind, rest, _ := strings.Cut(strings.TrimSpace(spec), ":")
	for _, k := range graphKinds {
		if k.name != kind {
			continue
		}
		var args []string
		if rest != "" {
			args = strings.SplitN(rest, ":", k.args)
		}
		if len(args) != k.args {
			return nil, fmt.Errorf("usage: %s", k.usage)
		}
		g, err := k.build(lib, args, directed)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", kind, err)
		}
		return g, nil
	}
	return nil, fmt.Errorf("unknown graph kind %q", kind)
}

func intArg(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad integer %q", s)
	}
	return n, nil
}

// parseEdges reads "0-1,1-2" and returns the pairs with a vertex count one
// past the largest id.
func parseEdges(s string) ([]igraph.Edge, int64, error) {
	var (
		edges []igraph.Edge
		n     int64
	)
	for _, pair := range strings.Split(s, ",") {
		a, b, ok := strings.Cut(strings.TrimSpace(pair), "-")
		if !ok {
			return nil, 0, fmt.Errorf("bad edge %q", pair)
		}
		from, err := intArg(a)
		if err != nil {
			return nil, 0, err
		}
		to, err := intArg(b)
		if err != nil {
			return nil, 0, err
		}
		edges = append(edges, igraph.Edge{From: from, To: to})
		n = max(n, from+1, to+1)
	}
	return edges, n, nil
}
