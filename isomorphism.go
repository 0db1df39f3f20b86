package igraph

// CountSubisomorphismsVF2 counts the subgraphs of g isomorphic to pattern.
func (g *Graph) CountSubisomorphismsVF2(pattern *Graph) (int64, error) {
	p, q, done, err := g.enterPair("igraph_count_subisomorphisms_vf2", pattern)
	if err != nil {
		return 0, err
	}
	defer done()

	lib := g.h.lib
	n, st := lib.eng.CountSubisomorphismsVF2(p, q)
	if err := lib.check("igraph_count_subisomorphisms_vf2", st); err != nil {
		return 0, err
	}
	return n, nil
}

// SubisomorphismsVF2 lists every mapping of pattern into g. Element i of a
// mapping is the vertex of g matched to vertex i of pattern.
func (g *Graph) SubisomorphismsVF2(pattern *Graph) ([][]int64, error) {
	p, q, done, err := g.enterPair("igraph_get_subisomorphisms_vf2", pattern)
	if err != nil {
		return nil, err
	}
	defer done()

	lib := g.h.lib
	maps, err := lib.NewVectorIntList()
	if err != nil {
		return nil, err
	}
	defer maps.Close()

	if err := lib.check("igraph_get_subisomorphisms_vf2",
		lib.eng.SubisomorphismsVF2(p, q, maps.h.raw())); err != nil {
		return nil, err
	}
	return readList(lib.eng, maps.h.raw()), nil
}
