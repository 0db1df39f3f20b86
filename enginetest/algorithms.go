package enginetest

import (
	"math"
	"slices"

	"github.com/wippyai/igraph-go/abi"
)

// bfs returns hop distances from src, -1 for unreachable vertices.
func bfs(adj [][]int64, src int64) []int64 {
	dist := make([]int64, len(adj))
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0
	queue := []int64{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

func (f *Fake) Distances(p, res abi.Ptr, mode abi.NeighborMode) abi.Status {
	return f.read("gi_distances", p, func(g *graph) abi.Status {
		if !validMode(mode) {
			return abi.StatusInvalidMode
		}
		m := f.mat(res)
		if m == nil {
			return abi.StatusInternal
		}
		adj := g.adjacency(mode)
		out := newMatrix(g.n, g.n)
		for u := int64(0); u < g.n; u++ {
			for v, d := range bfs(adj, u) {
				x := math.Inf(1)
				if d >= 0 {
					x = float64(d)
				}
				*out.at(u, int64(v)) = x
			}
		}
		*m = *out
		return success
	})
}

// Diameter returns the longest finite distance. The null graph yields NaN.
func (f *Fake) Diameter(p abi.Ptr, directed bool) (diameter float64, st abi.Status) {
	st = f.read("gi_diameter", p, func(g *graph) abi.Status {
		if g.n == 0 {
			diameter = math.NaN()
			return success
		}
		mode := abi.NeighborAll
		if directed {
			mode = abi.NeighborOut
		}
		adj := g.adjacency(mode)
		var longest int64
		for u := int64(0); u < g.n; u++ {
			for _, d := range bfs(adj, u) {
				longest = max(longest, d)
			}
		}
		diameter = float64(longest)
		return success
	})
	return diameter, st
}

// Betweenness is Brandes' algorithm on unweighted edges.
func (f *Fake) Betweenness(p, res abi.Ptr, directed bool) abi.Status {
	return f.read("gi_betweenness", p, func(g *graph) abi.Status {
		mode := abi.NeighborAll
		if directed && g.directed {
			mode = abi.NeighborOut
		}
		adj := g.adjacency(mode)
		cb := make([]float64, g.n)
		for s := int64(0); s < g.n; s++ {
			var stack []int64
			preds := make([][]int64, g.n)
			sigma := make([]float64, g.n)
			dist := make([]int64, g.n)
			for i := range dist {
				dist[i] = -1
			}
			sigma[s], dist[s] = 1, 0
			queue := []int64{s}
			for len(queue) > 0 {
				u := queue[0]
				queue = queue[1:]
				stack = append(stack, u)
				for _, v := range adj[u] {
					if v == u {
						continue
					}
					if dist[v] < 0 {
						dist[v] = dist[u] + 1
						queue = append(queue, v)
					}
					if dist[v] == dist[u]+1 {
						sigma[v] += sigma[u]
						preds[v] = append(preds[v], u)
					}
				}
			}
			delta := make([]float64, g.n)
			for i := len(stack) - 1; i >= 0; i-- {
				w := stack[i]
				for _, v := range preds[w] {
					delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
				}
				if w != s {
					cb[w] += delta[w]
				}
			}
		}
		if mode == abi.NeighborAll {
			for i := range cb {
				cb[i] /= 2
			}
		}
		return f.putReals(res, cb)
	})
}

// Closeness is computed over reachable vertices only and normalized. A
// vertex that reaches nothing gets NaN.
func (f *Fake) Closeness(p, res abi.Ptr, mode abi.NeighborMode) abi.Status {
	return f.read("gi_closeness", p, func(g *graph) abi.Status {
		if !validMode(mode) {
			return abi.StatusInvalidMode
		}
		adj := g.adjacency(mode)
		out := make([]float64, g.n)
		for u := int64(0); u < g.n; u++ {
			var sum, reached int64
			for _, d := range bfs(adj, u) {
				if d > 0 {
					sum += d
					reached++
				}
			}
			if reached == 0 {
				out[u] = math.NaN()
				continue
			}
			out[u] = float64(reached) / float64(sum)
		}
		return f.putReals(res, out)
	})
}

// PageRank uses power iteration. Dangling vertices spread their rank evenly.
func (f *Fake) PageRank(p, res abi.Ptr, damping float64) (eigenvalue float64, st abi.Status) {
	st = f.read("gi_pagerank", p, func(g *graph) abi.Status {
		if damping < 0 || damping > 1 {
			return abi.StatusInvalidValue
		}
		n := g.n
		if n == 0 {
			return f.putReals(res, []float64{})
		}
		adj := g.adjacency(abi.NeighborOut)
		rank := make([]float64, n)
		for i := range rank {
			rank[i] = 1 / float64(n)
		}
		for range 200 {
			next := make([]float64, n)
			var dangling float64
			for u, nb := range adj {
				if len(nb) == 0 {
					dangling += rank[u]
					continue
				}
				share := rank[u] / float64(len(nb))
				for _, v := range nb {
					next[v] += damping * share
				}
			}
			base := (1-damping)/float64(n) + damping*dangling/float64(n)
			var diff float64
			for i := range next {
				next[i] += base
				diff += math.Abs(next[i] - rank[i])
			}
			rank = next
			if diff < 1e-12 {
				break
			}
		}
		eigenvalue = 1
		return f.putReals(res, rank)
	})
	return eigenvalue, st
}

// weakComponents labels components in order of their lowest vertex.
func (g *graph) weakComponents() []int64 {
	adj := g.adjacency(abi.NeighborAll)
	membership := make([]int64, g.n)
	for i := range membership {
		membership[i] = -1
	}
	var next int64
	for s := int64(0); s < g.n; s++ {
		if membership[s] >= 0 {
			continue
		}
		for v, d := range bfs(adj, s) {
			if d >= 0 {
				membership[v] = next
			}
		}
		next++
	}
	return membership
}

// strongComponents is Kosaraju's algorithm.
func (g *graph) strongComponents() []int64 {
	if !g.directed {
		return g.weakComponents()
	}
	out, in := g.adjacency(abi.NeighborOut), g.adjacency(abi.NeighborIn)

	visited := make([]bool, g.n)
	order := make([]int64, 0, g.n)
	var visit func(u int64)
	visit = func(u int64) {
		visited[u] = true
		for _, v := range out[u] {
			if !visited[v] {
				visit(v)
			}
		}
		order = append(order, u)
	}
	for u := int64(0); u < g.n; u++ {
		if !visited[u] {
			visit(u)
		}
	}

	membership := make([]int64, g.n)
	for i := range membership {
		membership[i] = -1
	}
	var next int64
	var assign func(u int64)
	assign = func(u int64) {
		membership[u] = next
		for _, v := range in[u] {
			if membership[v] < 0 {
				assign(v)
			}
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		if u := order[i]; membership[u] < 0 {
			assign(u)
			next++
		}
	}
	return membership
}

func (g *graph) components(mode abi.Connectedness) ([]int64, abi.Status) {
	switch mode {
	case abi.Weak:
		return g.weakComponents(), success
	case abi.Strong:
		return g.strongComponents(), success
	default:
		return nil, abi.StatusInvalidMode
	}
}

// IsConnected treats the null graph as disconnected.
func (f *Fake) IsConnected(p abi.Ptr, mode abi.Connectedness) (connected bool, st abi.Status) {
	st = f.read("gi_is_connected", p, func(g *graph) abi.Status {
		membership, st := g.components(mode)
		if st != success {
			return st
		}
		connected = g.n > 0 && slices.Max(membership) == 0
		return success
	})
	return connected, st
}

func (f *Fake) ConnectedComponents(p, membership, csize abi.Ptr, mode abi.Connectedness) (count int64, st abi.Status) {
	st = f.read("gi_connected_components", p, func(g *graph) abi.Status {
		mem, st := g.components(mode)
		if st != success {
			return st
		}
		if g.n > 0 {
			count = slices.Max(mem) + 1
		}
		sizes := make([]int64, count)
		for _, c := range mem {
			sizes[c]++
		}
		if st := f.putInts(membership, mem); st != success {
			return st
		}
		return f.putInts(csize, sizes)
	})
	return count, st
}

func (f *Fake) CommunityLeiden(p, membership abi.Ptr, resolution, beta float64, iterations int64) (clusters int64, quality float64, st abi.Status) {
	st = f.read("gi_community_leiden", p, func(g *graph) abi.Status {
		r := f.scripts.leiden
		if r == nil {
			return abi.StatusUnimplemented
		}
		clusters, quality = r.clusters, r.quality
		return f.putInts(membership, slices.Clone(r.membership))
	})
	return clusters, quality, st
}

// CommunityLabelPropagation is a deterministic variant: vertices in id order
// adopt the most frequent neighbor label, ties going to the smallest, until
// nothing changes. Labels are renumbered from zero.
func (f *Fake) CommunityLabelPropagation(p, membership abi.Ptr) abi.Status {
	return f.read("gi_community_label_propagation", p, func(g *graph) abi.Status {
		adj := g.adjacency(abi.NeighborAll)
		label := make([]int64, g.n)
		for i := range label {
			label[i] = int64(i)
		}
		for changed, rounds := true, 0; changed && rounds < 100; rounds++ {
			changed = false
			for u, nb := range adj {
				if len(nb) == 0 {
					continue
				}
				freq := make(map[int64]int)
				for _, v := range nb {
					freq[label[v]]++
				}
				best, bestCount := label[u], freq[label[u]]
				for l, c := range freq {
					if c > bestCount || (c == bestCount && l < best) {
						best, bestCount = l, c
					}
				}
				if best != label[u] {
					label[u] = best
					changed = true
				}
			}
		}
		renumber := make(map[int64]int64)
		for i, l := range label {
			id, seen := renumber[l]
			if !seen {
				id = int64(len(renumber))
				renumber[l] = id
			}
			label[i] = id
		}
		return f.putInts(membership, label)
	})
}

func (f *Fake) CommunityFastGreedy(p, modularity, membership abi.Ptr) abi.Status {
	return f.read("gi_community_fastgreedy", p, func(g *graph) abi.Status {
		r := f.scripts.fastGreedy
		if r == nil {
			return abi.StatusUnimplemented
		}
		if st := f.putReals(modularity, slices.Clone(r.modularity)); st != success {
			return st
		}
		return f.putInts(membership, slices.Clone(r.membership))
	})
}

func (f *Fake) CountSubisomorphismsVF2(p, pattern abi.Ptr) (count int64, st abi.Status) {
	st = f.read("gi_count_subisomorphisms_vf2", p, func(g *graph) abi.Status {
		if f.graph(pattern) == nil {
			return abi.StatusInternal
		}
		if !f.scripts.haveSubiso {
			return abi.StatusUnimplemented
		}
		count = int64(len(f.scripts.subisomorphisms))
		return success
	})
	return count, st
}

func (f *Fake) SubisomorphismsVF2(p, pattern, maps abi.Ptr) abi.Status {
	return f.read("gi_get_subisomorphisms_vf2", p, func(g *graph) abi.Status {
		if f.graph(pattern) == nil {
			return abi.StatusInternal
		}
		if !f.scripts.haveSubiso {
			return abi.StatusUnimplemented
		}
		l := f.list(maps)
		if l == nil {
			return abi.StatusInternal
		}
		*l = cloneLists(f.scripts.subisomorphisms)
		return success
	})
}
