package abstraction

import "github.com/ocpm/declareminer/internal/ocpt"

// FromTree computes the tree abstraction: semantics are propagated
// once, then the directly-follows fragment is derived per object type
// from the tree's own recursion. When t is invalid, the zero-value
// empty abstraction is returned rather than an error.
func FromTree(t ocpt.Tree) Abstraction {
	if !t.IsValid() {
		return Abstraction{}
	}
	sem := ocpt.PropagateSemantics(t)

	universe := map[string]bool{}
	for _, s := range sem {
		for ot := range s.Related {
			universe[ot] = true
		}
	}

	out := Abstraction{}
	for ot := range universe {
		df := ocpt.ComputeDirectlyFollows(t.Root, ot, sem)
		sets := newSets()
		for a := range df.Start {
			sets.Start[a] = true
		}
		for a := range df.End {
			sets.End[a] = true
		}
		for p := range df.Pairs {
			sets.DF[p] = true
		}
		for a, s := range sem {
			if s.Related[ot] {
				sets.Related[a] = true
			}
			if s.Divergent[ot] {
				sets.Divergent[a] = true
			}
			if s.Convergent[ot] {
				sets.Convergent[a] = true
			}
			if s.Deficient[ot] {
				sets.Deficient[a] = true
			}
			if s.Optional[ot] {
				sets.Optional[a] = true
			}
		}
		out[ot] = sets
	}
	return out
}
