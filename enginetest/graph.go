package enginetest

import (
	"cmp"
	"slices"
	"strings"

	"github.com/wippyai/igraph-go/abi"
)

// graph is an edge list. Undirected edges are stored with from <= to, the
// order igraph_edge reports them in.
type graph struct {
	from, to []int64
	n        int64
	directed bool
}

func (g *graph) clone() *graph {
	return &graph{
		n:        g.n,
		directed: g.directed,
		from:     slices.Clone(g.from),
		to:       slices.Clone(g.to),
	}
}

func (g *graph) ecount() int64 {
	return int64(len(g.from))
}

func (g *graph) add(u, v int64) {
	if !g.directed && u > v {
		u, v = v, u
	}
	g.from = append(g.from, u)
	g.to = append(g.to, v)
}

// addPairs validates and appends a flat edge vector. Nothing is added when
// any endpoint is invalid.
func (g *graph) addPairs(flat []int64) abi.Status {
	if len(flat)%2 != 0 {
		return abi.StatusInvalidValue
	}
	for _, v := range flat {
		if v < 0 || v >= g.n {
			return abi.StatusInvalidVertexID
		}
	}
	for i := 0; i < len(flat); i += 2 {
		g.add(flat[i], flat[i+1])
	}
	return success
}

// adjacency lists neighbors per vertex following mode. Loops appear twice
// when both directions are followed.
func (g *graph) adjacency(mode abi.NeighborMode) [][]int64 {
	adj := make([][]int64, g.n)
	out := !g.directed || mode == abi.NeighborOut || mode == abi.NeighborAll
	in := !g.directed || mode == abi.NeighborIn || mode == abi.NeighborAll
	for e := range g.from {
		u, v := g.from[e], g.to[e]
		if out {
			adj[u] = append(adj[u], v)
		}
		if in {
			adj[v] = append(adj[v], u)
		}
	}
	for i := range adj {
		slices.Sort(adj[i])
	}
	return adj
}

func validMode(mode abi.NeighborMode) bool {
	return mode == abi.NeighborOut || mode == abi.NeighborIn || mode == abi.NeighborAll
}

func (f *Fake) Destroy(g abi.Ptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_destroy")
	f.destroy(g, abi.KindGraph)
}

func (f *Fake) Copy(to, from abi.Ptr) abi.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.enter("gi_copy"); st != success {
		return st
	}
	src := f.graph(from)
	if src == nil {
		return abi.StatusInternal
	}
	return f.init(to, abi.KindGraph, func() (any, abi.Status) {
		return src.clone(), success
	})
}

// construct builds a graph into uninitialized storage. Derived graphs use it
// too, reading their inputs inside build.
func (f *Fake) construct(op string, p abi.Ptr, build func() (*graph, abi.Status)) abi.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.enter(op); st != success {
		return st
	}
	return f.init(p, abi.KindGraph, func() (any, abi.Status) {
		g, st := build()
		if st != success {
			return nil, st
		}
		return g, success
	})
}

func (f *Fake) Empty(p abi.Ptr, n int64, directed bool) abi.Status {
	return f.construct("gi_empty", p, func() (*graph, abi.Status) {
		if n < 0 {
			return nil, abi.StatusInvalidValue
		}
		return &graph{n: n, directed: directed}, success
	})
}

func (f *Fake) Create(p abi.Ptr, edges abi.Ptr, n int64, directed bool) abi.Status {
	return f.construct("gi_create", p, func() (*graph, abi.Status) {
		ev := f.ivec(edges)
		if ev == nil {
			return nil, abi.StatusInternal
		}
		if n < 0 || len(*ev)%2 != 0 {
			return nil, abi.StatusInvalidValue
		}
		for _, v := range *ev {
			if v < 0 {
				return nil, abi.StatusInvalidVertexID
			}
			n = max(n, v+1)
		}
		g := &graph{n: n, directed: directed}
		return g, g.addPairs(*ev)
	})
}

var famous = map[string]struct {
	edges []int64
	n     int64
}{
	"bull":        {n: 5, edges: []int64{0, 1, 0, 2, 1, 2, 1, 3, 2, 4}},
	"tetrahedron": {n: 4, edges: []int64{0, 3, 1, 3, 2, 3, 0, 1, 1, 2, 0, 2}},
	"cubical": {n: 8, edges: []int64{
		0, 1, 1, 2, 2, 3, 0, 3, 4, 5, 5, 6, 6, 7, 4, 7, 0, 4, 1, 5, 2, 6, 3, 7,
	}},
	"petersen": {n: 10, edges: []int64{
		0, 1, 0, 4, 0, 5, 1, 2, 1, 6, 2, 3, 2, 7, 3, 4, 3, 8, 4, 9,
		5, 7, 5, 8, 6, 8, 6, 9, 7, 9,
	}},
}

// Famous knows a handful of igraph's named graphs. Other names fail with
// StatusInvalidValue, as igraph does for names it does not know.
func (f *Fake) Famous(p abi.Ptr, name string) abi.Status {
	return f.construct("gi_famous", p, func() (*graph, abi.Status) {
		spec, found := famous[strings.ToLower(name)]
		if !found {
			return nil, abi.StatusInvalidValue
		}
		g := &graph{n: spec.n}
		return g, g.addPairs(spec.edges)
	})
}

func (f *Fake) Ring(p abi.Ptr, n int64, directed, mutual, circular bool) abi.Status {
	return f.construct("gi_ring", p, func() (*graph, abi.Status) {
		if n < 0 {
			return nil, abi.StatusInvalidValue
		}
		g := &graph{n: n, directed: directed}
		link := func(u, v int64) {
			g.add(u, v)
			if directed && mutual {
				g.add(v, u)
			}
		}
		for i := int64(0); i+1 < n; i++ {
			link(i, i+1)
		}
		if circular && n > 0 {
			link(n-1, 0)
		}
		return g, success
	})
}

func (f *Fake) Star(p abi.Ptr, n int64, mode abi.StarMode, center int64) abi.Status {
	return f.construct("gi_star", p, func() (*graph, abi.Status) {
		if n < 0 {
			return nil, abi.StatusInvalidValue
		}
		if n > 0 && (center < 0 || center >= n) {
			return nil, abi.StatusInvalidVertexID
		}
		g := &graph{n: n, directed: mode != abi.StarUndirected}
		for i := int64(0); i < n; i++ {
			if i == center {
				continue
			}
			switch mode {
			case abi.StarOut, abi.StarUndirected:
				g.add(center, i)
			case abi.StarIn:
				g.add(i, center)
			case abi.StarMutual:
				g.add(center, i)
				g.add(i, center)
			default:
				return nil, abi.StatusInvalidMode
			}
		}
		return g, success
	})
}

func (f *Fake) Full(p abi.Ptr, n int64, directed, loops bool) abi.Status {
	return f.construct("gi_full", p, func() (*graph, abi.Status) {
		if n < 0 {
			return nil, abi.StatusInvalidValue
		}
		g := &graph{n: n, directed: directed}
		for i := int64(0); i < n; i++ {
			for j := int64(0); j < n; j++ {
				switch {
				case i == j && !loops:
				case !directed && j < i:
				default:
					g.add(i, j)
				}
			}
		}
		return g, success
	})
}

func (f *Fake) KaryTree(p abi.Ptr, n, children int64, mode abi.TreeMode) abi.Status {
	return f.construct("gi_kary_tree", p, func() (*graph, abi.Status) {
		if n < 0 || children <= 0 {
			return nil, abi.StatusInvalidValue
		}
		g := &graph{n: n, directed: mode != abi.TreeUndirected}
		for v := int64(1); v < n; v++ {
			parent := (v - 1) / children
			switch mode {
			case abi.TreeOut, abi.TreeUndirected:
				g.add(parent, v)
			case abi.TreeIn:
				g.add(v, parent)
			default:
				return nil, abi.StatusInvalidMode
			}
		}
		return g, success
	})
}

// candidates lists every vertex pair a simple random graph may contain.
func candidates(n int64, directed, loops bool) [][2]int64 {
	var out [][2]int64
	for i := int64(0); i < n; i++ {
		for j := int64(0); j < n; j++ {
			switch {
			case i == j && !loops:
			case !directed && j < i:
			default:
				out = append(out, [2]int64{i, j})
			}
		}
	}
	return out
}

func (f *Fake) ErdosRenyiGNP(p abi.Ptr, n int64, prob float64, directed, loops bool) abi.Status {
	return f.construct("gi_erdos_renyi_gnp", p, func() (*graph, abi.Status) {
		if n < 0 || prob < 0 || prob > 1 {
			return nil, abi.StatusInvalidValue
		}
		g := &graph{n: n, directed: directed}
		for _, c := range candidates(n, directed, loops) {
			if f.rng.Float64() < prob {
				g.add(c[0], c[1])
			}
		}
		return g, success
	})
}

func (f *Fake) ErdosRenyiGNM(p abi.Ptr, n, m int64, directed, loops bool) abi.Status {
	return f.construct("gi_erdos_renyi_gnm", p, func() (*graph, abi.Status) {
		if n < 0 || m < 0 {
			return nil, abi.StatusInvalidValue
		}
		pool := candidates(n, directed, loops)
		if m > int64(len(pool)) {
			return nil, abi.StatusInvalidValue
		}
		f.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		chosen := pool[:m]
		slices.SortFunc(chosen, func(a, b [2]int64) int {
			return cmp.Or(cmp.Compare(a[0], b[0]), cmp.Compare(a[1], b[1]))
		})
		g := &graph{n: n, directed: directed}
		for _, c := range chosen {
			g.add(c[0], c[1])
		}
		return g, success
	})
}

// Barabasi attaches each new vertex to min(m, v) distinct earlier vertices,
// chosen with probability proportional to degree plus one.
func (f *Fake) Barabasi(p abi.Ptr, n, m int64, directed bool) abi.Status {
	return f.construct("gi_barabasi", p, func() (*graph, abi.Status) {
		if n < 0 || m < 0 {
			return nil, abi.StatusInvalidValue
		}
		g := &graph{n: n, directed: directed}
		deg := make([]int64, n)
		for v := int64(1); v < n; v++ {
			picked := make(map[int64]bool)
			for int64(len(picked)) < min(m, v) {
				var total int64
				for u := int64(0); u < v; u++ {
					if !picked[u] {
						total += deg[u] + 1
					}
				}
				r := f.rng.Int64N(total)
				for u := int64(0); u < v; u++ {
					if picked[u] {
						continue
					}
					r -= deg[u] + 1
					if r < 0 {
						picked[u] = true
						g.add(v, u)
						deg[u]++
						deg[v]++
						break
					}
				}
			}
		}
		return g, success
	})
}

func (f *Fake) VCount(p abi.Ptr) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_vcount")
	if g := f.graph(p); g != nil {
		return g.n
	}
	return 0
}

func (f *Fake) ECount(p abi.Ptr) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_ecount")
	if g := f.graph(p); g != nil {
		return g.ecount()
	}
	return 0
}

func (f *Fake) IsDirected(p abi.Ptr) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_is_directed")
	if g := f.graph(p); g != nil {
		return g.directed
	}
	return false
}

// read runs a fallible query against a live graph.
func (f *Fake) read(op string, p abi.Ptr, fn func(g *graph) abi.Status) abi.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.enter(op); st != success {
		return st
	}
	g := f.graph(p)
	if g == nil {
		return abi.StatusInternal
	}
	return fn(g)
}

func (f *Fake) Neighbors(p, res abi.Ptr, vid int64, mode abi.NeighborMode) abi.Status {
	return f.read("gi_neighbors", p, func(g *graph) abi.Status {
		if vid < 0 || vid >= g.n {
			return abi.StatusInvalidVertexID
		}
		if !validMode(mode) {
			return abi.StatusInvalidMode
		}
		nb := g.adjacency(mode)[vid]
		if nb == nil {
			nb = []int64{}
		}
		return f.putInts(res, nb)
	})
}

func (f *Fake) Degree(p, res abi.Ptr, mode abi.NeighborMode, loops abi.Loops) abi.Status {
	return f.read("gi_degree", p, func(g *graph) abi.Status {
		if !validMode(mode) {
			return abi.StatusInvalidMode
		}
		both := !g.directed || mode == abi.NeighborAll
		deg := make([]int64, g.n)
		for e := range g.from {
			u, v := g.from[e], g.to[e]
			if u == v {
				switch {
				case loops == abi.NoLoops:
				case both && loops == abi.LoopsTwice:
					deg[u] += 2
				default:
					deg[u]++
				}
				continue
			}
			if both || mode == abi.NeighborOut {
				deg[u]++
			}
			if both || mode == abi.NeighborIn {
				deg[v]++
			}
		}
		return f.putInts(res, deg)
	})
}

func (f *Fake) Edge(p abi.Ptr, eid int64) (from, to int64, st abi.Status) {
	st = f.read("gi_edge", p, func(g *graph) abi.Status {
		if eid < 0 || eid >= g.ecount() {
			return abi.StatusInvalidEdgeID
		}
		from, to = g.from[eid], g.to[eid]
		return success
	})
	return from, to, st
}

func (f *Fake) AreAdjacent(p abi.Ptr, v1, v2 int64) (adjacent bool, st abi.Status) {
	st = f.read("gi_are_adjacent", p, func(g *graph) abi.Status {
		if v1 < 0 || v1 >= g.n || v2 < 0 || v2 >= g.n {
			return abi.StatusInvalidVertexID
		}
		for e := range g.from {
			u, v := g.from[e], g.to[e]
			if (u == v1 && v == v2) || (!g.directed && u == v2 && v == v1) {
				adjacent = true
				break
			}
		}
		return success
	})
	return adjacent, st
}

func (f *Fake) EdgeList(p, res abi.Ptr) abi.Status {
	return f.read("gi_get_edgelist", p, func(g *graph) abi.Status {
		flat := make([]int64, 0, 2*len(g.from))
		for e := range g.from {
			flat = append(flat, g.from[e], g.to[e])
		}
		return f.putInts(res, flat)
	})
}

// write runs an in-place mutation. fn works on a copy that replaces the
// graph only on success, so failures leave the graph unchanged.
func (f *Fake) write(op string, p abi.Ptr, fn func(g *graph) abi.Status) abi.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.enter(op); st != success {
		return st
	}
	g := f.graph(p)
	if g == nil {
		return abi.StatusInternal
	}
	work := g.clone()
	if st := fn(work); st != success {
		return st
	}
	*g = *work
	return success
}

func (f *Fake) AddVertices(p abi.Ptr, n int64) abi.Status {
	return f.write("gi_add_vertices", p, func(g *graph) abi.Status {
		if n < 0 {
			return abi.StatusInvalidValue
		}
		g.n += n
		return success
	})
}

func (f *Fake) AddEdges(p, edges abi.Ptr) abi.Status {
	return f.write("gi_add_edges", p, func(g *graph) abi.Status {
		ev := f.ivec(edges)
		if ev == nil {
			return abi.StatusInternal
		}
		return g.addPairs(*ev)
	})
}

func (f *Fake) DeleteVertices(p, vids abi.Ptr) abi.Status {
	return f.write("gi_delete_vertices", p, func(g *graph) abi.Status {
		vs := f.ivec(vids)
		if vs == nil {
			return abi.StatusInternal
		}
		drop := make(map[int64]bool, len(*vs))
		for _, v := range *vs {
			if v < 0 || v >= g.n {
				return abi.StatusInvalidVertexID
			}
			drop[v] = true
		}
		remap := make([]int64, g.n)
		next := int64(0)
		for v := range remap {
			if drop[int64(v)] {
				remap[v] = -1
				continue
			}
			remap[v] = next
			next++
		}
		kept := &graph{n: next, directed: g.directed}
		for e := range g.from {
			u, v := remap[g.from[e]], remap[g.to[e]]
			if u >= 0 && v >= 0 {
				kept.add(u, v)
			}
		}
		*g = *kept
		return success
	})
}

func (f *Fake) DeleteEdges(p, eids abi.Ptr) abi.Status {
	return f.write("gi_delete_edges", p, func(g *graph) abi.Status {
		es := f.ivec(eids)
		if es == nil {
			return abi.StatusInternal
		}
		drop := make(map[int64]bool, len(*es))
		for _, e := range *es {
			if e < 0 || e >= g.ecount() {
				return abi.StatusInvalidEdgeID
			}
			drop[e] = true
		}
		kept := &graph{n: g.n, directed: g.directed}
		for e := range g.from {
			if !drop[int64(e)] {
				kept.add(g.from[e], g.to[e])
			}
		}
		*g = *kept
		return success
	})
}

func (f *Fake) Simplify(p abi.Ptr, multiple, loops bool) abi.Status {
	return f.write("gi_simplify", p, func(g *graph) abi.Status {
		pairs := g.pairs()
		slices.SortFunc(pairs, comparePairs)
		out := &graph{n: g.n, directed: g.directed}
		for i, e := range pairs {
			if loops && e[0] == e[1] {
				continue
			}
			if multiple && i > 0 && pairs[i-1] == e {
				continue
			}
			out.add(e[0], e[1])
		}
		*g = *out
		return success
	})
}

func (f *Fake) ToDirected(p abi.Ptr, mode abi.ToDirectedMode) abi.Status {
	return f.write("gi_to_directed", p, func(g *graph) abi.Status {
		if g.directed {
			return success
		}
		out := &graph{n: g.n, directed: true}
		switch mode {
		case abi.ToDirectedArbitrary, abi.ToDirectedAcyclic:
			for e := range g.from {
				out.add(g.from[e], g.to[e])
			}
		case abi.ToDirectedMutual:
			for e := range g.from {
				out.add(g.from[e], g.to[e])
			}
			for e := range g.from {
				out.add(g.to[e], g.from[e])
			}
		case abi.ToDirectedRandom:
			for e := range g.from {
				if f.rng.IntN(2) == 0 {
					out.add(g.from[e], g.to[e])
				} else {
					out.add(g.to[e], g.from[e])
				}
			}
		default:
			return abi.StatusInvalidMode
		}
		*g = *out
		return success
	})
}

func (f *Fake) ToUndirected(p abi.Ptr, mode abi.ToUndirectedMode) abi.Status {
	return f.write("gi_to_undirected", p, func(g *graph) abi.Status {
		if !g.directed {
			return success
		}
		out := &graph{n: g.n}
		switch mode {
		case abi.ToUndirectedEach:
			for e := range g.from {
				out.add(g.from[e], g.to[e])
			}
		case abi.ToUndirectedCollapse:
			seen := make(map[[2]int64]bool)
			for e := range g.from {
				key := [2]int64{min(g.from[e], g.to[e]), max(g.from[e], g.to[e])}
				if !seen[key] {
					seen[key] = true
					out.add(key[0], key[1])
				}
			}
		case abi.ToUndirectedMutual:
			arcs := make(map[[2]int64]int)
			for e := range g.from {
				arcs[[2]int64{g.from[e], g.to[e]}]++
			}
			for e := range g.from {
				u, v := g.from[e], g.to[e]
				if u == v {
					out.add(u, v)
					continue
				}
				if u < v && arcs[[2]int64{u, v}] > 0 && arcs[[2]int64{v, u}] > 0 {
					arcs[[2]int64{u, v}]--
					arcs[[2]int64{v, u}]--
					out.add(u, v)
				}
			}
		default:
			return abi.StatusInvalidMode
		}
		*g = *out
		return success
	})
}

func (f *Fake) InducedSubgraph(p, res, vids abi.Ptr) abi.Status {
	return f.construct("gi_induced_subgraph", res, func() (*graph, abi.Status) {
		g := f.graph(p)
		vs := f.ivec(vids)
		if g == nil || vs == nil {
			return nil, abi.StatusInternal
		}
		keep := make([]bool, g.n)
		for _, v := range *vs {
			if v < 0 || v >= g.n {
				return nil, abi.StatusInvalidVertexID
			}
			keep[v] = true
		}
		remap := make([]int64, g.n)
		next := int64(0)
		for v := range remap {
			remap[v] = -1
			if keep[v] {
				remap[v] = next
				next++
			}
		}
		sub := &graph{n: next, directed: g.directed}
		for e := range g.from {
			u, v := remap[g.from[e]], remap[g.to[e]]
			if u >= 0 && v >= 0 {
				sub.add(u, v)
			}
		}
		return sub, success
	})
}

// Union keeps every edge of either graph; an edge present k times in one
// input and l times in the other appears max(k, l) times.
func (f *Fake) Union(res, left, right abi.Ptr) abi.Status {
	return f.construct("gi_union", res, func() (*graph, abi.Status) {
		l, r := f.graph(left), f.graph(right)
		if l == nil || r == nil {
			return nil, abi.StatusInternal
		}
		if l.directed != r.directed {
			return nil, abi.StatusInvalidValue
		}
		count := func(g *graph) map[[2]int64]int {
			m := make(map[[2]int64]int)
			for _, e := range g.pairs() {
				m[e]++
			}
			return m
		}
		cl, cr := count(l), count(r)
		keys := make([][2]int64, 0, len(cl)+len(cr))
		for k := range cl {
			keys = append(keys, k)
		}
		for k := range cr {
			if _, dup := cl[k]; !dup {
				keys = append(keys, k)
			}
		}
		slices.SortFunc(keys, comparePairs)

		u := &graph{n: max(l.n, r.n), directed: l.directed}
		for _, k := range keys {
			for range max(cl[k], cr[k]) {
				u.add(k[0], k[1])
			}
		}
		return u, success
	})
}

func (g *graph) pairs() [][2]int64 {
	out := make([][2]int64, len(g.from))
	for e := range g.from {
		out[e] = [2]int64{g.from[e], g.to[e]}
	}
	return out
}

func comparePairs(a, b [2]int64) int {
	return cmp.Or(cmp.Compare(a[0], b[0]), cmp.Compare(a[1], b[1]))
}

func (f *Fake) putInts(p abi.Ptr, xs []int64) abi.Status {
	if !f.setInts(p, xs) {
		return abi.StatusInternal
	}
	return success
}

func (f *Fake) putReals(p abi.Ptr, xs []float64) abi.Status {
	if !f.setReals(p, xs) {
		return abi.StatusInternal
	}
	return success
}
