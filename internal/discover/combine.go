package discover

import (
	"github.com/ocpm/declareminer/internal/declare"
	"github.com/ocpm/declareminer/internal/ocel"
)

// combineLabels repeatedly pairs up surviving labels via Combine,
// keeping a combination only when it passes the threshold check (and,
// when iterationCheck holds, only when its total entry count grows by
// exactly one per round — this keeps the lattice walk from jumping
// straight to a large, over-specific label). The working set shrinks
// each round to the combinations not dominated by another combination
// from the same round, and the loop stops once a round produces
// nothing new. A label surviving from an earlier round is dropped
// once some label reachable by the final round dominates it.
func combineLabels(s *ocel.IndexedOCEL, labels []declare.ArcLabel, act1, act2 string, arcType declare.ArcType, counts declare.Counts, threshold float64, iterationCheck bool) []declare.ArcLabel {
	old := map[string]declare.ArcLabel{}
	for _, l := range labels {
		old[labelKey(l)] = l
	}
	current := append([]declare.ArcLabel(nil), labels...)
	iteration := 1

	for {
		newRes := map[string]declare.ArcLabel{}
		for i := 0; i < len(current); i++ {
			for j := i + 1; j < len(current); j++ {
				a, b := current[i], current[j]
				if a.IsDominatedBy(b) || b.IsDominatedBy(a) {
					continue
				}
				combined := a.Combine(b)
				n := len(combined.All) + len(combined.Any) + len(combined.Each)
				if iterationCheck && n != iteration+1 {
					continue
				}
				arc := declare.Arc{From: act1, To: act2, Type: arcType, Label: combined, Counts: counts}
				if declare.SatisfiedAtThreshold(s, arc, threshold) {
					newRes[labelKey(combined)] = combined
				}
			}
		}
		if len(newRes) == 0 {
			break
		}

		for k, a := range old {
			for _, a2 := range newRes {
				if labelKey(a) != labelKey(a2) && a.IsDominatedBy(a2) {
					delete(old, k)
					break
				}
			}
		}
		for k, a2 := range newRes {
			old[k] = a2
		}

		var next []declare.ArcLabel
		for _, a := range newRes {
			dominated := false
			for _, a2 := range newRes {
				if labelKey(a) != labelKey(a2) && a.IsDominatedBy(a2) {
					dominated = true
					break
				}
			}
			if !dominated {
				next = append(next, a)
			}
		}
		current = next
		iteration++
	}

	prevOld := old
	final := map[string]declare.ArcLabel{}
	for k, a := range old {
		dominated := false
		for k2, a2 := range prevOld {
			if k != k2 && a.IsDominatedBy(a2) {
				dominated = true
				break
			}
		}
		if !dominated {
			final[k] = a
		}
	}

	out := make([]declare.ArcLabel, 0, len(final))
	for _, a := range final {
		out = append(out, a)
	}
	return out
}
