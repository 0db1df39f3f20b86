package main

import (
	"strings"
	"testing"
)

func TestOperations_Triangle(t *testing.T) {
	lib, f := newTestLibrary(t)
	f.ScriptSubisomorphisms([][]int64{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}})

	g, err := buildGraph(lib, "edges:0-1,1-2,2-0", false)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	tests := []struct {
		op   string
		want string
	}{
		{"summary", "vertices: 3\nedges: 3\ndirected: false\nconnected: true"},
		{"edges", "0-1 1-2 0-2"},
		{"degree", "[2 2 2]"},
		{"distances", "[0 1 1]\n[1 0 1]\n[1 1 0]"},
		{"diameter", "1"},
		{"betweenness", "[0 0 0]"},
		{"closeness", "[1 1 1]"},
		{"components", "count: 1\nsizes: [3]\nmembership: [0 0 0]"},
		{"labelprop", "[0 0 0]"},
		{"triangles", "6"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			op, ok := lookupOperation(tt.op)
			if !ok {
				t.Fatalf("operation %q not found", tt.op)
			}
			got, err := op.run(lib, g)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperations_ScriptedCommunities(t *testing.T) {
	lib, f := newTestLibrary(t)
	f.ScriptLeiden([]int64{0, 0, 1, 1}, 2, 0.5)
	f.ScriptFastGreedy([]int64{0, 0, 1, 1}, []float64{0, 0.25})

	g, err := buildGraph(lib, "edges:0-1,2-3", false)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	leiden, _ := lookupOperation("leiden")
	got, err := leiden.run(lib, g)
	if err != nil {
		t.Fatal(err)
	}
	if got != "clusters: 2\nquality: 0.5\nmembership: [0 0 1 1]" {
		t.Errorf("leiden = %q", got)
	}

	fg, _ := lookupOperation("fastgreedy")
	got, err = fg.run(lib, g)
	if err != nil {
		t.Fatal(err)
	}
	if got != "membership: [0 0 1 1]\nmodularity: [0 0.25]" {
		t.Errorf("fastgreedy = %q", got)
	}
}

func TestOperations_EngineErrorSurfaces(t *testing.T) {
	lib, _ := newTestLibrary(t)
	g, err := buildGraph(lib, "ring:4", false)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	leiden, _ := lookupOperation("leiden")
	if _, err := leiden.run(lib, g); err == nil || !strings.Contains(err.Error(), "unimplemented") {
		t.Errorf("unscripted leiden: %v", err)
	}
}

func TestSelectOperations(t *testing.T) {
	all, err := selectOperations("all")
	if err != nil || len(all) != len(operations) {
		t.Fatalf("all: %d ops, %v", len(all), err)
	}

	ops, err := selectOperations("degree, pagerank")
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 2 || ops[0].name != "degree" || ops[1].name != "pagerank" {
		t.Errorf("got %v", ops)
	}

	if _, err := selectOperations("degree,shortest"); err == nil {
		t.Error("unknown operation accepted")
	}
}

func TestFormat(t *testing.T) {
	if got := formatFloats([]float64{0.25, 1.0 / 3}); got != "[0.25 0.333333]" {
		t.Errorf("formatFloats = %q", got)
	}
	if got := formatInts(nil); got != "[]" {
		t.Errorf("formatInts(nil) = %q", got)
	}
}
