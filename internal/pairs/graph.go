package pairs

// Graph is a weighted view over a set of pairs: nodes are numbers, edges are
// co-occurrence counts. The mixed strategy walks it by repeatedly expanding
// its number set across the highest-mass frontier edges.
type Graph struct {
	edges []PairCount
}

// NewGraph builds a graph from a pair list, typically the top-ranked slice
// of a Table.
func NewGraph(edges []PairCount) *Graph {
	g := &Graph{edges: make([]PairCount, len(edges))}
	copy(g.edges, edges)
	return g
}

// Edge is one frontier edge: the pair, its weight, and the endpoint that
// lies outside the set being expanded.
type Edge struct {
	Pair    Pair
	Count   int
	Outside int
}

// Frontier returns the edges with exactly one endpoint inside the set. An
// edge with both or neither endpoint inside cannot grow the set and is
// skipped.
func (g *Graph) Frontier(inside map[int]bool) []Edge {
	var frontier []Edge
	for _, e := range g.edges {
		inA, inB := inside[e.Pair.A], inside[e.Pair.B]
		if inA == inB {
			continue
		}
		outside := e.Pair.A
		if inA {
			outside = e.Pair.B
		}
		frontier = append(frontier, Edge{Pair: e.Pair, Count: e.Count, Outside: outside})
	}
	return frontier
}
