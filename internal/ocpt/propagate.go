package ocpt

// ObjectTypeSets is the five-map semantic annotation of an activity
// (event type) produced by bottom-up propagation over an OCPT:
// Related, Divergent, Optional, Convergent, Deficient, each a set of
// object types.
type ObjectTypeSets struct {
	Related    map[string]bool
	Divergent  map[string]bool
	Optional   map[string]bool
	Convergent map[string]bool
	Deficient  map[string]bool
}

func newSets() ObjectTypeSets {
	return ObjectTypeSets{
		Related:    map[string]bool{},
		Divergent:  map[string]bool{},
		Optional:   map[string]bool{},
		Convergent: map[string]bool{},
		Deficient:  map[string]bool{},
	}
}

// Semantics maps activity (leaf label) -> its propagated sets, for
// every real activity label reachable in the tree. Tau leaves do not
// contribute labels. When the same activity labels more than one leaf,
// their declared sets are unioned rather than having the later leaf
// shadow the earlier one.
type Semantics map[string]ObjectTypeSets

// PropagateSemantics computes the five-map bottom-up annotation:
// Related and Divergent are unions over
// children (a Loop additionally re-adds the Related types of every
// activity anywhere below it to Divergent, since looping makes any
// related object type potentially repeat); Optional collects every
// related type of a leaf that sits anywhere below an ExclusiveChoice
// ancestor, plus every Divergent type; Convergent and Deficient start
// from the per-leaf declared sets and keep only those candidate object
// types for which every "competing" related type of the same activity
// is itself resolved one way or another along every execution path
// through the tree. This widening is
// intentionally asymmetric between Convergent and Deficient: the two
// use different auto-accept conditions and swap which side of the
// (candidate, competitor) pair they inspect.
func PropagateSemantics(t Tree) Semantics {
	activities := map[string]bool{}
	collectActivities(t.Root, activities)

	related := perActivity(t.Root, func(l *LeafNode) map[string]bool { return l.Related })
	declaredDiv := perActivity(t.Root, func(l *LeafNode) map[string]bool { return l.Divergent })
	leafConv := perActivity(t.Root, func(l *LeafNode) map[string]bool { return l.Convergent })
	leafDef := perActivity(t.Root, func(l *LeafNode) map[string]bool { return l.Deficient })
	optional := perActivityOptional(t.Root, false)

	divergent := map[string]map[string]bool{}
	for a := range activities {
		set := map[string]bool{}
		for ot := range declaredDiv[a] {
			set[ot] = true
		}
		if isInLoopBody(t.Root, a) {
			for ot := range related[a] {
				set[ot] = true
			}
		}
		divergent[a] = set
	}

	optionalFull := map[string]map[string]bool{}
	for a := range activities {
		set := map[string]bool{}
		for ot := range optional[a] {
			set[ot] = true
		}
		for ot := range divergent[a] {
			set[ot] = true
		}
		optionalFull[a] = set
	}

	conv := widenConvergent(t.Root, activities, related, optionalFull, divergent, leafConv, leafDef)
	def := widenDeficient(t.Root, activities, related, optionalFull, divergent, leafConv, leafDef)

	out := Semantics{}
	for a := range activities {
		s := newSets()
		for ot := range related[a] {
			s.Related[ot] = true
		}
		for ot := range divergent[a] {
			s.Divergent[ot] = true
		}
		for ot := range optionalFull[a] {
			s.Optional[ot] = true
		}
		for ot := range conv[a] {
			s.Convergent[ot] = true
		}
		for ot := range def[a] {
			s.Deficient[ot] = true
		}
		out[a] = s
	}
	return out
}

func collectActivities(n *Node, into map[string]bool) {
	if n.Leaf != nil {
		if !n.Leaf.Label.IsTau {
			into[n.Leaf.Label.Activity] = true
		}
		return
	}
	for _, c := range n.Op.Children {
		collectActivities(c, into)
	}
}

// perActivity merges a per-leaf set selector across every leaf sharing
// an activity label.
func perActivity(n *Node, pick func(*LeafNode) map[string]bool) map[string]map[string]bool {
	out := map[string]map[string]bool{}
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Leaf != nil {
			if n.Leaf.Label.IsTau {
				return
			}
			a := n.Leaf.Label.Activity
			if out[a] == nil {
				out[a] = map[string]bool{}
			}
			for ot := range pick(n.Leaf) {
				out[a][ot] = true
			}
			return
		}
		for _, c := range n.Op.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

func perActivityOptional(n *Node, ancestorChoice bool) map[string]map[string]bool {
	out := map[string]map[string]bool{}
	if n.Op != nil && n.Op.Kind == ExclusiveChoice {
		ancestorChoice = true
	}
	if n.Leaf != nil {
		if !n.Leaf.Label.IsTau && ancestorChoice {
			out[n.Leaf.Label.Activity] = map[string]bool{}
			for ot := range n.Leaf.Related {
				out[n.Leaf.Label.Activity][ot] = true
			}
		}
		return out
	}
	for _, c := range n.Op.Children {
		for a, ots := range perActivityOptional(c, ancestorChoice) {
			if out[a] == nil {
				out[a] = map[string]bool{}
			}
			for ot := range ots {
				out[a][ot] = true
			}
		}
	}
	return out
}

// isInLoopBody reports whether activity a occurs under some Loop
// operator anywhere in the tree (used to widen its Divergent set, per
// compute_div's Loop special case).
func isInLoopBody(n *Node, a string) bool {
	var walk func(*Node, bool) bool
	walk = func(n *Node, underLoop bool) bool {
		if n.Leaf != nil {
			return underLoop && !n.Leaf.Label.IsTau && n.Leaf.Label.Activity == a
		}
		childUnderLoop := underLoop || n.Op.Kind == Loop
		for _, c := range n.Op.Children {
			if walk(c, childUnderLoop) {
				return true
			}
		}
		return false
	}
	return walk(n, false)
}

// widenConvergent implements compute_conv: a declared convergent entry
// is kept outright if the same object type is divergent or deficient
// for that activity; otherwise it is a candidate that must defeat
// every competitor (every other related type for that activity, minus
// ones already convergent or optional) via checkConvCompetitor along
// every path in the tree.
func widenConvergent(root *Node, activities map[string]bool, related, optional, divergent, leafConv, leafDef map[string]map[string]bool) map[string]map[string]bool {
	out := map[string]map[string]bool{}
	for a := range activities {
		out[a] = map[string]bool{}
		for cand := range leafConv[a] {
			if divergent[a][cand] || leafDef[a][cand] {
				out[a][cand] = true
				continue
			}
			if passesCompetitors(root, a, cand, related[a], union(leafConv[a], optional[a]), checkConvCompetitor, optional) {
				out[a][cand] = true
			}
		}
	}
	return out
}

// widenDeficient implements compute_def symmetrically, but with the
// candidate's own resolved set being Deficient (not Convergent), the
// auto-accept condition being Convergent-or-Optional (not
// Divergent-or-Deficient), and checkDefCompetitor swapping which side
// of the (candidate, competitor) pair each leaf test inspects.
func widenDeficient(root *Node, activities map[string]bool, related, optional, divergent, leafConv, leafDef map[string]map[string]bool) map[string]map[string]bool {
	out := map[string]map[string]bool{}
	for a := range activities {
		out[a] = map[string]bool{}
		for cand := range leafDef[a] {
			if leafConv[a][cand] || optional[a][cand] {
				out[a][cand] = true
				continue
			}
			if passesCompetitors(root, a, cand, related[a], union(leafDef[a], divergent[a]), checkDefCompetitor, optional) {
				out[a][cand] = true
			}
		}
	}
	return out
}

func union(a, b map[string]bool) map[string]bool {
	out := map[string]bool{}
	for k := range a {
		out[k] = true
	}
	for k := range b {
		out[k] = true
	}
	return out
}

func passesCompetitors(root *Node, activity, cand string, related, resolved map[string]bool,
	check func(n *Node, cand, comp string, optional map[string]map[string]bool) bool, optional map[string]map[string]bool) bool {
	for comp := range related {
		if comp == cand || resolved[comp] {
			continue
		}
		if !check(root, cand, comp, optional) {
			return false
		}
	}
	return true
}

func checkConvCompetitor(n *Node, cand, comp string, optional map[string]map[string]bool) bool {
	if n.Leaf != nil {
		l := n.Leaf
		if l.Label.IsTau {
			return true
		}
		return optional[l.Label.Activity][cand] || l.Convergent[cand] || l.Divergent[comp] || l.Deficient[comp]
	}
	switch n.Op.Kind {
	case Sequence, Concurrency:
		for _, c := range n.Op.Children {
			if !checkConvCompetitor(c, cand, comp, optional) {
				return false
			}
		}
		return true
	case ExclusiveChoice:
		for _, c := range n.Op.Children {
			if checkConvCompetitor(c, cand, comp, optional) {
				return true
			}
		}
		return false
	case Loop:
		return checkConvCompetitor(n.Op.Children[0], cand, comp, optional)
	}
	return false
}

func checkDefCompetitor(n *Node, cand, comp string, optional map[string]map[string]bool) bool {
	if n.Leaf != nil {
		l := n.Leaf
		if l.Label.IsTau {
			return true
		}
		return optional[l.Label.Activity][comp] || l.Convergent[comp] || l.Divergent[cand] || l.Deficient[cand]
	}
	switch n.Op.Kind {
	case Sequence, Concurrency:
		for _, c := range n.Op.Children {
			if !checkDefCompetitor(c, cand, comp, optional) {
				return false
			}
		}
		return true
	case ExclusiveChoice:
		for _, c := range n.Op.Children {
			if checkDefCompetitor(c, cand, comp, optional) {
				return true
			}
		}
		return false
	case Loop:
		return checkDefCompetitor(n.Op.Children[0], cand, comp, optional)
	}
	return false
}
