// Package lir builds register interference graphs from the liveness
// analyzer's output and colors them, the way the teacher's regalloc.go
// built a register interference graph from LiveNode dependencies and
// assigned physical registers — adapted here to assign abstract palette
// colors instead of hardware registers.
package lir

import (
	"gonum.org/v1/gonum/graph/simple"
	"golang.org/x/exp/slices"

	"vslcra/src/ir"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Graph is a register interference graph: an undirected simple graph whose
// nodes are named by ir.Variable and whose edge weight is 1 for an active
// (interfering) pair and 0 for a pair virtually disabled during
// simplification (spec §4.4). It wraps gonum's WeightedUndirectedGraph,
// which stores nodes and edges in Go maps with no defined iteration order,
// and additionally tracks insertion order in a plain slice so that node and
// edge iteration stays stable and reproducible (spec §9, property P7).
type Graph struct {
	g      *simple.WeightedUndirectedGraph
	order  []ir.Variable
	ids    map[ir.Variable]int64
	names  map[int64]ir.Variable
	nextID int64
}

// Edge is a canonicalized RIG edge, smaller node index first, for the
// renderer (spec §6.2).
type Edge struct {
	A, B   ir.Variable
	Weight float64
}

// ---------------------
// ----- Functions -----
// ---------------------

// NewGraph returns an empty register interference graph.
func NewGraph() *Graph {
	return &Graph{
		g:     simple.NewWeightedUndirectedGraph(0, 0),
		ids:   make(map[ir.Variable]int64),
		names: make(map[int64]ir.Variable),
	}
}

// EnsureNode adds v to the graph if absent and returns its gonum node ID.
// Satisfies R3: calling this for every statement's def, even one that never
// appears in a later live set, makes v surface as an isolated node.
func (gr *Graph) EnsureNode(v ir.Variable) int64 {
	if id, ok := gr.ids[v]; ok {
		return id
	}
	id := gr.nextID
	gr.nextID++
	gr.g.AddNode(simple.Node(id))
	gr.ids[v] = id
	gr.names[id] = v
	gr.order = append(gr.order, v)
	return id
}

// AddEdge records that x and y interfere, creating both nodes if needed and
// setting the edge weight to 1. Self-loops are rejected (R1); re-adding an
// existing pair is idempotent (R2) since gonum identifies an edge by its
// endpoint pair.
func (gr *Graph) AddEdge(x, y ir.Variable) {
	if x == y {
		return
	}
	xi, yi := gr.EnsureNode(x), gr.EnsureNode(y)
	gr.g.SetWeightedEdge(gr.g.NewWeightedEdge(simple.Node(xi), simple.Node(yi), 1))
}

// Order returns the graph's nodes in insertion order.
func (gr *Graph) Order() []ir.Variable {
	return gr.order
}

// ActiveDegree returns the count of v's incident edges whose weight is > 0.
func (gr *Graph) ActiveDegree(v ir.Variable) int {
	id, ok := gr.ids[v]
	if !ok {
		return 0
	}
	count := 0
	to := gr.g.From(id)
	for to.Next() {
		nid := to.Node().ID()
		if w, ok := gr.g.Weight(id, nid); ok && w > 0 {
			count++
		}
	}
	return count
}

// Neighbors returns the structural neighbors of v (regardless of current
// edge weight), in insertion order. Edge weight toggling never removes a
// neighbor relationship from the underlying graph, only whether it counts
// toward active degree.
func (gr *Graph) Neighbors(v ir.Variable) []ir.Variable {
	id, ok := gr.ids[v]
	if !ok {
		return nil
	}
	res := make([]ir.Variable, 0)
	to := gr.g.From(id)
	for to.Next() {
		res = append(res, gr.names[to.Node().ID()])
	}
	slices.SortFunc(res, func(a, b ir.Variable) int { return int(gr.ids[a] - gr.ids[b]) })
	return res
}

// DisconnectNodesOfDegree implements spec §4.5's atomic disconnect step: for
// every node v with ActiveDegree(v) == d, set every incident edge's weight
// to 0, virtually removing v from the graph. The set of degree-d nodes is
// taken before any edge is changed, so a node whose degree only drops to d
// during this call is left for the next call. Returns the nodes that changed
// at least one edge, in graph iteration (insertion) order.
func (gr *Graph) DisconnectNodesOfDegree(d int) []ir.Variable {
	var candidates []ir.Variable
	for _, v := range gr.order {
		if gr.ActiveDegree(v) == d {
			candidates = append(candidates, v)
		}
	}
	var changed []ir.Variable
	for _, v := range candidates {
		id := gr.ids[v]
		to := gr.g.From(id)
		var neighbors []int64
		for to.Next() {
			neighbors = append(neighbors, to.Node().ID())
		}
		touched := false
		for _, nid := range neighbors {
			if w, ok := gr.g.Weight(id, nid); ok && w > 0 {
				gr.g.SetWeightedEdge(gr.g.NewWeightedEdge(simple.Node(id), simple.Node(nid), 0))
				touched = true
			}
		}
		if touched {
			changed = append(changed, v)
		}
	}
	return changed
}

// ReconnectAll sets every edge in the graph back to weight 1, undoing any
// DisconnectNodesOfDegree calls. This is the "weight trick" of spec §4.4:
// node removal is reversible because the edge is only ever reweighted, never
// structurally deleted.
func (gr *Graph) ReconnectAll() {
	edges := gr.g.Edges()
	for edges.Next() {
		e := edges.Edge()
		gr.g.SetWeightedEdge(gr.g.NewWeightedEdge(e.From(), e.To(), 1))
	}
}

// Edges returns every structural edge in the graph with weight > 0,
// canonicalized smaller-index-first and ordered by (A, B) insertion index,
// for the DOT renderer (spec §6.2).
func (gr *Graph) Edges() []Edge {
	var res []Edge
	seen := make(map[[2]int64]bool)
	it := gr.g.Edges()
	for it.Next() {
		e := it.Edge()
		a, b := e.From().ID(), e.To().ID()
		if a > b {
			a, b = b, a
		}
		key := [2]int64{a, b}
		if seen[key] {
			continue
		}
		seen[key] = true
		if w, ok := gr.g.Weight(a, b); ok && w > 0 {
			res = append(res, Edge{A: gr.names[a], B: gr.names[b], Weight: w})
		}
	}
	slices.SortFunc(res, func(x, y Edge) int {
		if d := int(gr.ids[x.A] - gr.ids[y.A]); d != 0 {
			return d
		}
		return int(gr.ids[x.B] - gr.ids[y.B])
	})
	return res
}

// Build constructs a register interference graph from a function's liveness
// points (spec §4.4): every live-in set contributes a clique of edges, and
// every def surfaces at least as a node even when it never shares a live set
// with another variable (R3).
func Build(pts []ir.Point) *Graph {
	gr := NewGraph()
	for _, p := range pts {
		for _, d := range p.Def {
			gr.EnsureNode(d)
		}
		for _, v := range p.LiveIn {
			gr.EnsureNode(v)
		}
		for i1 := 0; i1 < len(p.LiveIn); i1++ {
			for i2 := i1 + 1; i2 < len(p.LiveIn); i2++ {
				gr.AddEdge(p.LiveIn[i1], p.LiveIn[i2])
			}
		}
	}
	return gr
}
