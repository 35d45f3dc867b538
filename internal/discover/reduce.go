package discover

import (
	"sort"

	"github.com/ocpm/declareminer/internal/declare"
)

// reduceArcs applies a path-based dominance sweep: an arc is
// redundant if some other path of active arcs from its source to its
// target exists where every hop is at least as strict, both in arc
// type and in label. Lossless mode additionally refuses any hop after
// the first whose Any set overlaps the candidate's Any set, since
// collapsing through it would lose which object satisfied the Any
// involvement. Arcs are sorted first so the sweep is
// deterministic, and an arc found redundant is deactivated
// immediately rather than after the full pass, so cycles of
// mutually-dominating arcs don't eliminate each other entirely.
func reduceArcs(arcs []declare.Arc, lossless bool) []declare.Arc {
	sorted := append([]declare.Arc(nil), arcs...)
	sortArcs(sorted)

	adj := map[string][]int{}
	for i, a := range sorted {
		adj[a.From] = append(adj[a.From], i)
	}

	active := make([]bool, len(sorted))
	for i := range active {
		active[i] = true
	}

	for i := range sorted {
		if hasDominatingPath(i, sorted, adj, active, lossless) {
			active[i] = false
		}
	}

	out := make([]declare.Arc, 0, len(sorted))
	for i, a := range sorted {
		if active[i] {
			out = append(out, a)
		}
	}
	return out
}

type bfsNode struct {
	node  string
	depth int
}

func hasDominatingPath(candidateIdx int, arcs []declare.Arc, adj map[string][]int, active []bool, lossless bool) bool {
	c := arcs[candidateIdx]

	queue := []bfsNode{{c.From, 0}}
	visited := map[string]bool{c.From: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.node == c.To {
			return true
		}

		for _, edgeIdx := range adj[cur.node] {
			if !active[edgeIdx] || edgeIdx == candidateIdx {
				continue
			}
			edge := arcs[edgeIdx]

			dominated := c.Type.IsDominatedByOrEq(edge.Type) && c.Label.IsDominatedBy(edge.Label)
			if !dominated {
				continue
			}

			if lossless && cur.depth >= 1 && anyOverlap(c.Label.Any, edge.Label.Any) {
				continue
			}

			if !visited[edge.To] {
				visited[edge.To] = true
				queue = append(queue, bfsNode{edge.To, cur.depth + 1})
			}
		}
	}
	return false
}

func anyOverlap(a, b []declare.ObjectTypeAssociation) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// sortArcs orders arcs deterministically: by source, target, arc type,
// then label.
func sortArcs(arcs []declare.Arc) {
	sort.Slice(arcs, func(i, j int) bool {
		a, b := arcs[i], arcs[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return labelKey(a.Label) < labelKey(b.Label)
	})
}
