package egraph

// EraseNode removes the specific leaf e-node {Op: op} from the class of
// id, without altering congruence of any other node (spec.md §6,
// "E-graph primitive not in the standard API"). Only the exact leaf is
// removed; if op appears nested inside a larger term elsewhere in the
// class, that occurrence is untouched (spec.md §9, design note 3) — this
// is acceptable because the case-splitter always unions the retired
// scrutinee's class with the newly built constructor application before
// calling EraseNode, so extraction never needs the erased leaf again.
func (g *EGraph) EraseNode(id int, op ENode) {
	root := g.Find(id)
	nodes := g.classes[root]
	out := nodes[:0]
	for _, n := range nodes {
		if n.Op == op.Op && len(n.Children) == len(op.Children) && sameChildren(n, op, g.Find) {
			continue
		}
		out = append(out, n)
	}
	g.classes[root] = out
	// The erased node's hashcons entry, if it still points at this class,
	// must go too, or a later Add of the same term would resurrect it.
	key := op.key(g.Find)
	if existing, ok := g.hashcons[key]; ok && existing == root {
		delete(g.hashcons, key)
	}
}

func sameChildren(a, b ENode, find func(int) int) bool {
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if find(a.Children[i]) != find(b.Children[i]) {
			return false
		}
	}
	return true
}
