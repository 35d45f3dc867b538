package declare

import "sort"

// Combine merges two arc labels: the union of All sets takes
// precedence, then Each minus All, then Any minus both. Results are
// sorted for determinism.
func (l ArcLabel) Combine(other ArcLabel) ArcLabel {
	all := unionAssoc(l.All, other.All)
	each := diffAssoc(unionAssoc(l.Each, other.Each), all)
	any := diffAssoc(diffAssoc(unionAssoc(l.Any, other.Any), all), each)
	return ArcLabel{Each: sortAssoc(each), All: sortAssoc(all), Any: sortAssoc(any)}
}

// IsDominatedBy tests whether l is implied by other: every All entry
// of l is in other.All; every Each entry of l is in other.Each or
// other.All; every Any entry of l is in other.Any, other.Each, or
// other.All.
func (l ArcLabel) IsDominatedBy(other ArcLabel) bool {
	for _, a := range l.All {
		if !containsAssoc(other.All, a) {
			return false
		}
	}
	for _, a := range l.Each {
		if !containsAssoc(other.Each, a) && !containsAssoc(other.All, a) {
			return false
		}
	}
	for _, a := range l.Any {
		if !containsAssoc(other.Any, a) && !containsAssoc(other.Each, a) && !containsAssoc(other.All, a) {
			return false
		}
	}
	return true
}

func containsAssoc(list []ObjectTypeAssociation, a ObjectTypeAssociation) bool {
	for _, x := range list {
		if x == a {
			return true
		}
	}
	return false
}

func unionAssoc(a, b []ObjectTypeAssociation) []ObjectTypeAssociation {
	seen := map[ObjectTypeAssociation]bool{}
	var out []ObjectTypeAssociation
	for _, x := range a {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	for _, x := range b {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

func diffAssoc(a, minus []ObjectTypeAssociation) []ObjectTypeAssociation {
	var out []ObjectTypeAssociation
	for _, x := range a {
		if !containsAssoc(minus, x) {
			out = append(out, x)
		}
	}
	return out
}

func sortAssoc(a []ObjectTypeAssociation) []ObjectTypeAssociation {
	sort.Slice(a, func(i, j int) bool { return a[i].String() < a[j].String() })
	return a
}
