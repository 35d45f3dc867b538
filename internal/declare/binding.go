package declare

import (
	"sort"

	"github.com/ocpm/declareminer/internal/ocel"
)

// FilterKind tags a SetFilter variant.
type FilterKind int

const (
	FilterAny FilterKind = iota
	FilterAll
)

// SetFilter is a predicate over an event's referenced-object set: Any
// requires at least one listed object present, All requires every
// listed object present. Items are sorted to allow binary-search
// membership tests against an event's (already sorted) object list.
type SetFilter struct {
	Kind  FilterKind
	Items []ocel.ObjectIndex
}

// Check reports whether set (assumed sorted) satisfies the filter.
func (f SetFilter) Check(set []ocel.ObjectIndex) bool {
	switch f.Kind {
	case FilterAny:
		for _, o := range f.Items {
			if containsSorted(set, o) {
				return true
			}
		}
		return false
	default:
		for _, o := range f.Items {
			if !containsSorted(set, o) {
				return false
			}
		}
		return true
	}
}

func containsSorted(set []ocel.ObjectIndex, target ocel.ObjectIndex) bool {
	lo, hi := 0, len(set)
	for lo < hi {
		mid := (lo + hi) / 2
		if set[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(set) && set[lo] == target
}

func sortedObjects(in []ocel.ObjectIndex) []ocel.ObjectIndex {
	out := append([]ocel.ObjectIndex(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Binding is one fully resolved object-involvement scenario for a
// source node: a list of SetFilters that a candidate target event's
// object set must satisfy.
type Binding []SetFilter

// GetBindings enumerates every binding for a label at a source node:
// the Each list's candidate object sets (sorted by
// descending object-type population, for early pruning) are combined
// via Cartesian product, one binding per product tuple; the All list
// contributes one All(full-candidate-set) filter per entry plus an
// All(current Each tuple) filter; the Any list contributes one Any
// filter per entry, collapsed to a singleton All filter when it has
// exactly one candidate.
func GetBindings(s *ocel.IndexedOCEL, label ArcLabel, n EventOrSynthetic) []Binding {
	each := sortByPopulationDesc(s, label.Each)
	all := sortByPopulationDesc(s, label.All)
	any := sortByPopulationDesc(s, label.Any)

	eachCandidates := make([][]ocel.ObjectIndex, len(each))
	for i, a := range each {
		eachCandidates[i] = sortedObjects(a.GetForEvent(s, n))
	}

	products := cartesianProduct(eachCandidates)

	var bindings []Binding
	for _, product := range products {
		var b Binding
		for _, a := range all {
			b = append(b, SetFilter{Kind: FilterAll, Items: sortedObjects(a.GetForEvent(s, n))})
		}
		if len(product) > 0 {
			b = append(b, SetFilter{Kind: FilterAll, Items: append([]ocel.ObjectIndex(nil), product...)})
		}
		for _, a := range any {
			items := sortedObjects(a.GetForEvent(s, n))
			if len(items) == 1 {
				b = append(b, SetFilter{Kind: FilterAll, Items: items})
			} else {
				b = append(b, SetFilter{Kind: FilterAny, Items: items})
			}
		}
		bindings = append(bindings, b)
	}
	return bindings
}

func sortByPopulationDesc(s *ocel.IndexedOCEL, assocs []ObjectTypeAssociation) []ObjectTypeAssociation {
	out := append([]ObjectTypeAssociation(nil), assocs...)
	sort.SliceStable(out, func(i, j int) bool {
		return len(s.ObjectsOfType(out[i].TargetObjectType())) > len(s.ObjectsOfType(out[j].TargetObjectType()))
	})
	return out
}

// cartesianProduct returns every tuple from the product of the given
// candidate lists (one item from each list, in order). An empty input
// list yields a single empty-tuple result, matching multi_cartesian_product's
// behavior on zero iterators.
func cartesianProduct(lists [][]ocel.ObjectIndex) [][]ocel.ObjectIndex {
	result := [][]ocel.ObjectIndex{{}}
	for _, list := range lists {
		var next [][]ocel.ObjectIndex
		for _, prefix := range result {
			for _, item := range list {
				tuple := append(append([]ocel.ObjectIndex(nil), prefix...), item)
				next = append(next, tuple)
			}
		}
		result = next
	}
	return result
}
