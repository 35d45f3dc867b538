package discover

import (
	"github.com/ocpm/declareminer/internal/declare"
	"github.com/ocpm/declareminer/internal/ocel"
)

// strengthenAS takes an AS arc already known to satisfy the threshold
// (with its max count dropped) and tries to replace it with a
// temporally stricter one: EF, tightened further to DF when that also
// holds; EP, tightened further to DP; falling back to the weaker of
// each pair when the stricter one fails. If neither direction yields
// anything and a isn't a self-loop, AS is re-admitted as the result.
func strengthenAS(s *ocel.IndexedOCEL, a declare.Arc, threshold float64, considered map[declare.ArcType]bool) []declare.Arc {
	var out []declare.Arc
	consider := func(t declare.ArcType) bool {
		if considered == nil {
			return true
		}
		return considered[t]
	}

	if consider(declare.EF) {
		a.Type = declare.EF
		if declare.SatisfiedAtThreshold(s, a, threshold) {
			a.Type = declare.DF
			if consider(declare.DF) && declare.SatisfiedAtThreshold(s, a, threshold) {
				out = append(out, a)
			} else {
				a.Type = declare.EF
				out = append(out, a)
			}
		}
	} else if consider(declare.DF) {
		a.Type = declare.DF
		if declare.SatisfiedAtThreshold(s, a, threshold) {
			out = append(out, a)
		}
	}

	if consider(declare.EP) {
		a.Type = declare.EP
		if declare.SatisfiedAtThreshold(s, a, threshold) {
			a.Type = declare.DP
			if consider(declare.DP) && declare.SatisfiedAtThreshold(s, a, threshold) {
				out = append(out, a)
			} else {
				a.Type = declare.EP
				out = append(out, a)
			}
		}
	} else if consider(declare.DP) {
		a.Type = declare.DP
		if declare.SatisfiedAtThreshold(s, a, threshold) {
			out = append(out, a)
		}
	}

	if len(out) == 0 && consider(declare.AS) && a.From != a.To {
		a.Type = declare.AS
		if declare.SatisfiedAtThreshold(s, a, threshold) {
			out = append(out, a)
		}
	}
	return out
}
