package layout

import "fmt"

// CycleError is returned by TopologicalSort when the graph is not acyclic.
type CycleError struct {
	// Remaining is the number of edges left once no more nodes could be removed.
	Remaining int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("graph is not acyclic: %d edge(s) form a cycle", e.Remaining)
}

type edge[T comparable] struct {
	from, to T
}

// Graph is a directed graph over comparable nodes.
// Nodes keep their insertion order, which breaks ties during sorting.
type Graph[T comparable] struct {
	nodes []T
	index map[T]int
	edges []edge[T]
}

// NewGraph creates an empty graph.
func NewGraph[T comparable]() *Graph[T] {
	return &Graph[T]{index: make(map[T]int)}
}

// AddNode adds n if it is not already present.
func (g *Graph[T]) AddNode(n T) {
	if _, ok := g.index[n]; ok {
		return
	}
	g.index[n] = len(g.nodes)
	g.nodes = append(g.nodes, n)
}

// AddEdge adds a directed edge from -> to. Duplicate edges are ignored.
// Endpoints that are not yet nodes are added.
func (g *Graph[T]) AddEdge(from, to T) {
	for _, e := range g.edges {
		if e.from == from && e.to == to {
			return
		}
	}
	g.AddNode(from)
	g.AddNode(to)
	g.edges = append(g.edges, edge[T]{from: from, to: to})
}

// Len returns the number of nodes.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// Nodes returns the nodes in insertion order.
func (g *Graph[T]) Nodes() []T {
	return append([]T(nil), g.nodes...)
}

// TopologicalSort orders the nodes so that every edge points forward, using
// Kahn's algorithm. Among nodes that are ready at the same time, the one
// inserted first comes first. The graph itself is not modified.
func (g *Graph[T]) TopologicalSort() ([]T, error) {
	incoming := make([]int, len(g.nodes))
	outgoing := make([][]int, len(g.nodes))
	for _, e := range g.edges {
		from, to := g.index[e.from], g.index[e.to]
		incoming[to]++
		outgoing[from] = append(outgoing[from], to)
	}

	queue := make([]int, 0, len(g.nodes))
	for i := range g.nodes {
		if incoming[i] == 0 {
			queue = append(queue, i)
		}
	}

	result := make([]T, 0, len(g.nodes))
	removed := 0
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		result = append(result, g.nodes[n])

		for _, m := range outgoing[n] {
			removed++
			incoming[m]--
			if incoming[m] == 0 {
				queue = append(queue, m)
			}
		}
	}

	if remaining := len(g.edges) - removed; remaining > 0 {
		return nil, &CycleError{Remaining: remaining}
	}
	return result, nil
}
