package discover

import "github.com/ocpm/declareminer/internal/ocel"

// InvolvementCounts is discovery's local name for the same (min, max)
// per-instance object count query exposed on IndexedOCEL directly.
type InvolvementCounts = ocel.ObjectInvolvementCounts

// Catalog is the object-involvement catalog a discovery run starts
// from: per activity, how many objects of each type its events carry;
// per object type, how many objects of each other type its objects
// reference directly (forward O2O) and are referenced by (reverse
// O2O).
type Catalog struct {
	ActivityObject    map[string]map[string]InvolvementCounts
	ObjectToObject    map[string]map[string]InvolvementCounts
	ObjectToObjectRev map[string]map[string]InvolvementCounts
}

// BuildCatalog scans every event and every O2O edge once to populate
// the three involvement tables, via the store's own involvement
// queries.
func BuildCatalog(s *ocel.IndexedOCEL) Catalog {
	return Catalog{
		ActivityObject:    s.ActivityObjectInvolvements(),
		ObjectToObject:    s.ObjectToObjectInvolvements(),
		ObjectToObjectRev: s.ReverseObjectToObjectInvolvements(),
	}
}
