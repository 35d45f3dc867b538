package declare

import (
	"strconv"
	"strings"
)

// AsTemplateString renders the label in the OC-DECLARE template
// notation: "Each(order)", "All(order,item)", "Any(order)", or a
// comma-joined combination of whichever of the three lists are
// non-empty.
func (l ArcLabel) AsTemplateString() string {
	var parts []string
	if len(l.Each) > 0 {
		parts = append(parts, "Each("+joinAssociations(l.Each)+")")
	}
	if len(l.All) > 0 {
		parts = append(parts, "All("+joinAssociations(l.All)+")")
	}
	if len(l.Any) > 0 {
		parts = append(parts, "Any("+joinAssociations(l.Any)+")")
	}
	return strings.Join(parts, ",")
}

func joinAssociations(assocs []ObjectTypeAssociation) string {
	strs := make([]string, len(assocs))
	for i, a := range assocs {
		strs[i] = a.String()
	}
	return strings.Join(strs, ",")
}

// AsTemplateString renders the arc in the OC-DECLARE template
// notation: "DF(place, pay, Each(order), 1, inf)".
func (a Arc) AsTemplateString() string {
	return a.Type.String() + "(" + a.From + ", " + a.To + ", " + a.Label.AsTemplateString() + ", " +
		boundString(a.Counts.Min, a.Counts.HasMin, 0) + ", " + boundString(a.Counts.Max, a.Counts.HasMax, -1) + ")"
}

func boundString(v *int, has bool, defaultInf int) string {
	if !has {
		if defaultInf < 0 {
			return "inf"
		}
		return strconv.Itoa(defaultInf)
	}
	return strconv.Itoa(*v)
}
