package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	igraph "github.com/wippyai/igraph-go"
	"github.com/wippyai/igraph-go/abi"
	"github.com/wippyai/igraph-go/engine"
)

// nativeBackend is set when the binary is built with -tags igraphnative.
var nativeBackend func() abi.Engine

func main() {
	var (
		wasmFile    = flag.String("wasm", "", "Path to the igraph wasm module")
		useNative   = flag.Bool("native", false, "Use the linked libigraph (build with -tags igraphnative)")
		pages       = flag.Uint("pages", 0, "Guest memory limit in 64KB pages (0 keeps the wazero default)")
		graphSpec   = flag.String("graph", "famous:Zachary", "Graph to build, e.g. ring:10, gnp:50:0.1, edges:0-1,1-2")
		directed    = flag.Bool("directed", false, "Build a directed graph where the generator supports it")
		opList      = flag.String("op", "summary", "Comma-separated operations to run, or \"all\"")
		list        = flag.Bool("list", false, "List operations and graph kinds, then exit")
		verbose     = flag.Bool("v", false, "Log engine activity to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *list {
		printCatalogue()
		return
	}

	if *wasmFile == "" && !*useNative {
		fmt.Fprintln(os.Stderr, "Usage: graphrun -wasm <igraph.wasm> [-graph spec] [-op a,b,...]")
		fmt.Fprintln(os.Stderr, "       graphrun -native [-graph spec] [-op a,b,...]")
		fmt.Fprintln(os.Stderr, "       graphrun -wasm <igraph.wasm> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       graphrun -list")
		os.Exit(1)
	}

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	eng, closeEngine, err := openEngine(ctx, *wasmFile, *useNative, uint32(*pages), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeEngine()

	lib := igraph.New(eng, igraph.WithLogger(log), igraph.WithLeakReclaim(true))

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(lib, *graphSpec, *directed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(lib, *graphSpec, *directed, *opList); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openEngine(ctx context.Context, wasmFile string, useNative bool, pages uint32, log *zap.Logger) (abi.Engine, func(), error) {
	if useNative {
		if nativeBackend == nil {
			return nil, nil, fmt.Errorf("native backend not compiled in; rebuild with -tags igraphnative")
		}
		return nativeBackend(), func() {}, nil
	}

	data, err := os.ReadFile(wasmFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	engine.SetLogger(log)
	eng, err := engine.New(ctx, data, &engine.Config{MemoryLimitPages: pages})
	if err != nil {
		return nil, nil, fmt.Errorf("load engine: %w", err)
	}
	return eng, func() { _ = eng.Close(ctx) }, nil
}

func run(lib *igraph.Library, spec string, directed bool, opList string) error {
	g, err := buildGraph(lib, spec, directed)
	if err != nil {
		return err
	}
	defer g.Close()

	ops, err := selectOperations(opList)
	if err != nil {
		return err
	}

	header, plain := headerStyle.Render, !term.IsTerminal(int(os.Stdout.Fd()))
	if plain {
		header = func(s ...string) string { return strings.Join(s, " ") }
	}

	fmt.Printf("Graph: %s\n", spec)
	for _, op := range ops {
		out, err := op.run(lib, g)
		fmt.Printf("\n%s\n", header(op.name))
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		fmt.Println(out)
	}
	return nil
}

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#98FB98"))

func printCatalogue() {
	fmt.Println("Graph kinds:")
	for _, k := range graphKinds {
		fmt.Printf("  %-10s %s\n", k.name, k.usage)
	}
	fmt.Println("\nOperations:")
	for _, op := range operations {
		fmt.Printf("  %-12s %s\n", op.name, op.help)
	}
}
