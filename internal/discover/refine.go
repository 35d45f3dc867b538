package discover

import (
	"github.com/ocpm/declareminer/internal/declare"
	"github.com/ocpm/declareminer/internal/ocel"
)

// refineArcs revisits every activity pair that survived so far and
// tries to sharpen each arc's label: re-generate single-association
// candidates at (min 1, unbounded) counts, combine each one not
// already dominated by the arc's own label with that label, keep the
// combinations that still satisfy the arc's own arc type under the
// filter counts, then close the surviving set under combineLabels
// again before rebuilding one arc per resulting label.
func refineArcs(s *ocel.IndexedOCEL, cat Catalog, arcs []declare.Arc, opts Options) []declare.Arc {
	type pairKey struct{ from, to string }
	pairs := map[pairKey]bool{}
	for _, a := range arcs {
		pairs[pairKey{a.From, a.To}] = true
	}

	one := declare.ExactlyMin(1)
	var out []declare.Arc
	for pair := range pairs {
		act1, act2 := pair.from, pair.to
		var pairArcs []declare.Arc
		for _, a := range arcs {
			if a.From == act1 && a.To == act2 {
				pairArcs = append(pairArcs, a)
			}
		}

		cands := candidatesForPair(cat, act1, act2, opts.O2OMode)
		oiLabels := getOiLabels(s, act1, act2, declare.AS, cands, one, opts.NoiseThreshold)

		for _, arc := range pairArcs {
			var labels []declare.ArcLabel
			for _, l := range oiLabels {
				if l.IsDominatedBy(arc.Label) {
					continue
				}
				combined := l.Combine(arc.Label)
				test := declare.Arc{From: act1, To: act2, Type: arc.Type, Label: combined, Counts: opts.CountsForFilter}
				if declare.SatisfiedAtThreshold(s, test, opts.NoiseThreshold) {
					labels = append(labels, combined)
				}
			}
			labels = append(labels, arc.Label)

			combined := combineLabels(s, labels, act1, act2, arc.Type, opts.CountsForGeneration, opts.NoiseThreshold, false)
			for _, l := range combined {
				out = append(out, declare.Arc{From: act1, To: act2, Type: arc.Type, Label: l, Counts: one})
			}
		}
	}
	return out
}
