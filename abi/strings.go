package abi

import "strconv"

func (s Status) String() string {
	return "status(" + strconv.Itoa(int(s)) + ")"
}

func (m NeighborMode) String() string {
	switch m {
	case NeighborOut:
		return "out"
	case NeighborIn:
		return "in"
	case NeighborAll:
		return "all"
	}
	return "neighbor_mode(" + strconv.Itoa(int(m)) + ")"
}

func (c Connectedness) String() string {
	switch c {
	case Weak:
		return "weak"
	case Strong:
		return "strong"
	}
	return "connectedness(" + strconv.Itoa(int(c)) + ")"
}

func (l Loops) String() string {
	switch l {
	case NoLoops:
		return "no_loops"
	case LoopsTwice:
		return "loops_twice"
	case LoopsOnce:
		return "loops_once"
	}
	return "loops(" + strconv.Itoa(int(l)) + ")"
}

func (m StarMode) String() string {
	switch m {
	case StarOut:
		return "out"
	case StarIn:
		return "in"
	case StarUndirected:
		return "undirected"
	case StarMutual:
		return "mutual"
	}
	return "star_mode(" + strconv.Itoa(int(m)) + ")"
}

func (m TreeMode) String() string {
	switch m {
	case TreeOut:
		return "out"
	case TreeIn:
		return "in"
	case TreeUndirected:
		return "undirected"
	}
	return "tree_mode(" + strconv.Itoa(int(m)) + ")"
}

func (m ToDirectedMode) String() string {
	switch m {
	case ToDirectedArbitrary:
		return "arbitrary"
	case ToDirectedMutual:
		return "mutual"
	case ToDirectedRandom:
		return "random"
	case ToDirectedAcyclic:
		return "acyclic"
	}
	return "to_directed(" + strconv.Itoa(int(m)) + ")"
}

func (m ToUndirectedMode) String() string {
	switch m {
	case ToUndirectedEach:
		return "each"
	case ToUndirectedCollapse:
		return "collapse"
	case ToUndirectedMutual:
		return "mutual"
	}
	return "to_undirected(" + strconv.Itoa(int(m)) + ")"
}
