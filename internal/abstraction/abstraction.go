// Package abstraction implements the seven-family language abstraction
// extracted either from an OCEL log directly or from an OCPT's
// directly-follows derivation, plus the footprint scorer that compares
// two abstractions.
package abstraction

// Sets is the seven-family per-object-type abstraction: Start, End and
// DF describe the directly-follows language restricted to one object
// type; Related, Divergent, Convergent, Deficient, Optional classify
// each event type's involvement with that object type.
type Sets struct {
	Start      map[string]bool
	End        map[string]bool
	DF         map[[2]string]bool
	Related    map[string]bool
	Divergent  map[string]bool
	Convergent map[string]bool
	Deficient  map[string]bool
	Optional   map[string]bool
}

func newSets() Sets {
	return Sets{
		Start:      map[string]bool{},
		End:        map[string]bool{},
		DF:         map[[2]string]bool{},
		Related:    map[string]bool{},
		Divergent:  map[string]bool{},
		Convergent: map[string]bool{},
		Deficient:  map[string]bool{},
		Optional:   map[string]bool{},
	}
}

// Abstraction maps object type -> its Sets.
type Abstraction map[string]Sets

// ObjectTypes returns the abstraction's object-type universe.
func (a Abstraction) ObjectTypes() []string {
	out := make([]string, 0, len(a))
	for ot := range a {
		out = append(out, ot)
	}
	return out
}
