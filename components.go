package igraph

import "github.com/wippyai/igraph-go/abi"

// Components is the result of ConnectedComponents.
type Components struct {
	// Membership maps each vertex to its component id.
	Membership []int64
	// Sizes holds the vertex count of each component.
	Sizes []int64
	Count int64
}

// IsConnected reports whether the graph is connected. The null graph is
// disconnected.
func (g *Graph) IsConnected(mode Connectedness) (bool, error) {
	return scalar(g, "igraph_is_connected", func(eng abi.Engine, p abi.Ptr) (bool, abi.Status) {
		return eng.IsConnected(p, mode)
	})
}

// ConnectedComponents labels the weakly or strongly connected components.
func (g *Graph) ConnectedComponents(mode Connectedness) (Components, error) {
	p, err := g.enter()
	if err != nil {
		return Components{}, err
	}
	defer g.h.release()

	lib := g.h.lib
	membership, err := lib.NewVectorInt()
	if err != nil {
		return Components{}, err
	}
	defer membership.Close()
	sizes, err := lib.NewVectorInt()
	if err != nil {
		return Components{}, err
	}
	defer sizes.Close()

	n, st := lib.eng.ConnectedComponents(p, membership.h.raw(), sizes.h.raw(), mode)
	if err := lib.check("igraph_connected_components", st); err != nil {
		return Components{}, err
	}
	return Components{
		Membership: readVectorInt(lib.eng, membership.h.raw()),
		Sizes:      readVectorInt(lib.eng, sizes.h.raw()),
		Count:      n,
	}, nil
}
