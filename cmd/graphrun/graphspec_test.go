package main

import (
	"strings"
	"testing"

	igraph "github.com/wippyai/igraph-go"
	"github.com/wippyai/igraph-go/abi"
	"github.com/wippyai/igraph-go/enginetest"
)

func newTestLibrary(t *testing.T) (*igraph.Library, *enginetest.Fake) {
	t.Helper()
	f := enginetest.New()
	t.Cleanup(func() {
		if live := f.Live(abi.KindGraph); live != 0 {
			t.Errorf("%d graphs left alive", live)
		}
	})
	return igraph.New(f), f
}

func TestBuildGraph(t *testing.T) {
	tests := []struct {
		spec     string
		directed bool
		vertices int64
		edges    int64
	}{
		{"empty:5", false, 5, 0},
		{"famous:Petersen", false, 10, 15},
		{"ring:6", false, 6, 6},
		{"path:6", false, 6, 5},
		{"star:5", true, 5, 4},
		{"full:4", false, 4, 6},
		{"tree:7:2", false, 7, 6},
		{"gnm:10:12", false, 10, 12},
		{"gnp:8:0", false, 8, 0},
		{"barabasi:10:1", false, 10, 9},
		{"edges:0-1,1-2,2-0", false, 3, 3},
		{" edges:0-4 ", true, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			lib, _ := newTestLibrary(t)
			g, err := buildGraph(lib, tt.spec, tt.directed)
			if err != nil {
				t.Fatal(err)
			}
			defer g.Close()
			if g.VCount() != tt.vertices || g.ECount() != tt.edges {
				t.Errorf("got %d vertices, %d edges; want %d, %d",
					g.VCount(), g.ECount(), tt.vertices, tt.edges)
			}
			if g.IsDirected() != tt.directed && !strings.HasPrefix(tt.spec, "famous") {
				t.Errorf("directed = %v", g.IsDirected())
			}
		})
	}
}

func TestBuildGraph_Errors(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"", "unknown graph kind"},
		{"cube:3", "unknown graph kind"},
		{"ring", "usage: ring:N"},
		{"tree:7", "usage: tree:N:CHILDREN"},
		{"ring:x", "bad integer"},
		{"gnp:5:often", "bad probability"},
		{"edges:0-1,2", "bad edge"},
		{"edges:0-z", "bad integer"},
		{"famous:Nowhere", "build famous"},
		{"empty:-1", "build empty"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			lib, _ := newTestLibrary(t)
			g, err := buildGraph(lib, tt.spec, false)
			if err == nil {
				g.Close()
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestParseEdges(t *testing.T) {
	edges, n, err := parseEdges("3-1, 0-7")
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Errorf("n = %d, want 8", n)
	}
	want := []igraph.Edge{{From: 3, To: 1}, {From: 0, To: 7}}
	if len(edges) != len(want) || edges[0] != want[0] || edges[1] != want[1] {
		t.Errorf("edges = %v", edges)
	}
}
