package igraph

import "github.com/wippyai/igraph-go/abi"

// Leiden parameters fixed by CommunityLeiden.
const (
	LeidenBeta       = 0.01
	LeidenIterations = 10
)

// Partition is the result of CommunityLeiden.
type Partition struct {
	Membership []int64
	Clusters   int64
	Quality    float64
}

// CommunityLeiden runs unweighted Leiden with the given resolution, starting
// from singletons.
func (g *Graph) CommunityLeiden(resolution float64) (Partition, error) {
	p, err := g.enter()
	if err != nil {
		return Partition{}, err
	}
	defer g.h.release()

	lib := g.h.lib
	membership, err := lib.NewVectorInt()
	if err != nil {
		return Partition{}, err
	}
	defer membership.Close()

	clusters, quality, st := lib.eng.CommunityLeiden(p, membership.h.raw(),
		resolution, LeidenBeta, LeidenIterations)
	if err := lib.check("igraph_community_leiden", st); err != nil {
		return Partition{}, err
	}
	return Partition{
		Membership: readVectorInt(lib.eng, membership.h.raw()),
		Clusters:   clusters,
		Quality:    quality,
	}, nil
}

// CommunityLabelPropagation returns a membership vector found by label
// propagation over all edge directions.
func (g *Graph) CommunityLabelPropagation() ([]int64, error) {
	return intResult(g, "igraph_community_label_propagation", func(eng abi.Engine, p, res abi.Ptr) abi.Status {
		return eng.CommunityLabelPropagation(p, res)
	})
}

// CommunityFastGreedy returns the membership at maximum modularity and the
// modularity after each merge.
func (g *Graph) CommunityFastGreedy() (membership []int64, modularity []float64, err error) {
	p, err := g.enter()
	if err != nil {
		return nil, nil, err
	}
	defer g.h.release()

	lib := g.h.lib
	mem, err := lib.NewVectorInt()
	if err != nil {
		return nil, nil, err
	}
	defer mem.Close()
	mod, err := lib.NewVector()
	if err != nil {
		return nil, nil, err
	}
	defer mod.Close()

	if err := lib.check("igraph_community_fastgreedy",
		lib.eng.CommunityFastGreedy(p, mod.h.raw(), mem.h.raw())); err != nil {
		return nil, nil, err
	}
	return readVectorInt(lib.eng, mem.h.raw()), readVector(lib.eng, mod.h.raw()), nil
}
