package discover

import "github.com/ocpm/declareminer/internal/declare"

// candidate is a single object-type association proposed for an
// activity pair, tagged with whether more than one object of its
// target type can appear in one instance (making Each/All meaningful
// in addition to Any).
type candidate struct {
	Assoc    declare.ObjectTypeAssociation
	Multiple bool
}

// candidatesForPair proposes every object-type association that could
// plausibly bind act1 to act2: object types directly related to both
// (Simple), plus, depending on mode, object types reached from an
// act1-related type via one forward or reverse O2O hop that lands on
// a type related to act2.
func candidatesForPair(cat Catalog, act1, act2 string, mode O2OMode) []candidate {
	obs1 := cat.ActivityObject[act1]
	obs2 := cat.ActivityObject[act2]

	var out []candidate
	for ot, c1 := range obs1 {
		if _, ok := obs2[ot]; ok {
			out = append(out, candidate{Assoc: declare.NewSimple(ot), Multiple: c1.Max > 1})
		}
	}

	if mode == O2ODirect || mode == O2OBidirectional {
		for ot, c1 := range obs1 {
			for ot2, hop := range cat.ObjectToObject[ot] {
				if _, ok := obs2[ot2]; ok {
					out = append(out, candidate{
						Assoc:    declare.NewO2O(ot, ot2),
						Multiple: c1.Max > 1 || hop.Max > 1,
					})
				}
			}
		}
	}

	if mode == O2OReversed || mode == O2OBidirectional {
		for ot, c1 := range obs1 {
			for ot2, hop := range cat.ObjectToObjectRev[ot] {
				if _, ok := obs2[ot2]; ok {
					out = append(out, candidate{
						Assoc:    declare.NewO2OReversed(ot, ot2),
						Multiple: c1.Max > 1 || hop.Max > 1,
					})
				}
			}
		}
	}
	return out
}
