package ocpt

// IsValid checks the structural invariants an OCPT must satisfy: every
// operator has the minimum arity for its kind, and every
// leaf's Divergent/Convergent/Deficient sets are subsets of its
// Related set (an object type cannot diverge, converge, or be
// deficient for an activity it is not even related to).
func (t Tree) IsValid() bool {
	if t.Root == nil {
		return false
	}
	return t.Root.isValid()
}

func (n *Node) isValid() bool {
	if n.Leaf != nil {
		return subsetOf(n.Leaf.Divergent, n.Leaf.Related) &&
			subsetOf(n.Leaf.Convergent, n.Leaf.Related) &&
			subsetOf(n.Leaf.Deficient, n.Leaf.Related)
	}
	op := n.Op
	min := 1
	if op.Kind == Loop {
		min = 2
	}
	if len(op.Children) < min {
		return false
	}
	for _, c := range op.Children {
		if !c.isValid() {
			return false
		}
	}
	return true
}

func subsetOf(a, b map[string]bool) bool {
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
