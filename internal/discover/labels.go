package discover

import (
	"strings"

	"github.com/ocpm/declareminer/internal/declare"
	"github.com/ocpm/declareminer/internal/ocel"
)

// getOiLabels tests each candidate association on its own, as a
// single-entry Any label, at the given arc type and counts. A
// candidate that fails is dropped entirely. One that passes and
// cannot carry multiple objects per instance is recorded directly as
// an Each label (Any and Each agree on a single object). One that
// passes and can carry multiple is kept as Any, then escalated to
// Each (every occurring object must independently satisfy the arc)
// and, if that also holds, to All (every occurring object must be
// covered by a single binding) — each escalation only attempted once
// the weaker one has already passed.
func getOiLabels(s *ocel.IndexedOCEL, act1, act2 string, arcType declare.ArcType, cands []candidate, counts declare.Counts, threshold float64) []declare.ArcLabel {
	var out []declare.ArcLabel
	for _, c := range cands {
		anyLabel := declare.ArcLabel{Any: []declare.ObjectTypeAssociation{c.Assoc}}
		arc := declare.Arc{From: act1, To: act2, Type: arcType, Label: anyLabel, Counts: counts}
		if !declare.SatisfiedAtThreshold(s, arc, threshold) {
			continue
		}
		if !c.Multiple {
			out = append(out, declare.ArcLabel{Each: []declare.ObjectTypeAssociation{c.Assoc}})
			continue
		}
		out = append(out, anyLabel)

		eachLabel := declare.ArcLabel{Each: []declare.ObjectTypeAssociation{c.Assoc}}
		arc.Label = eachLabel
		if !declare.SatisfiedAtThreshold(s, arc, threshold) {
			continue
		}
		out = append(out, eachLabel)

		allLabel := declare.ArcLabel{All: []declare.ObjectTypeAssociation{c.Assoc}}
		arc.Label = allLabel
		if declare.SatisfiedAtThreshold(s, arc, threshold) {
			out = append(out, allLabel)
		}
	}
	return out
}

// labelKey is a canonical string for an ArcLabel, used to de-duplicate
// and compare labels produced by Combine (whose All/Each/Any lists are
// always sorted).
func labelKey(l declare.ArcLabel) string {
	var b strings.Builder
	for _, a := range l.Each {
		b.WriteString("E:")
		b.WriteString(a.String())
		b.WriteByte(';')
	}
	for _, a := range l.All {
		b.WriteString("A:")
		b.WriteString(a.String())
		b.WriteByte(';')
	}
	for _, a := range l.Any {
		b.WriteString("N:")
		b.WriteString(a.String())
		b.WriteByte(';')
	}
	return b.String()
}

// dropDominated removes any label that is implied by some other,
// distinct label in the set.
func dropDominated(labels []declare.ArcLabel) []declare.ArcLabel {
	var out []declare.ArcLabel
	for i, a := range labels {
		dominated := false
		for j, b := range labels {
			if i == j || labelKey(a) == labelKey(b) {
				continue
			}
			if a.IsDominatedBy(b) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, a)
		}
	}
	return out
}
