package egraph

import "github.com/aditya-giri/cyclegg/pkg/term"

// Match is one result of searching a pattern against the e-graph: the
// class id the pattern's root matched, and the substitution from pattern
// wildcard to class id that makes the match hold.
type Match struct {
	Class int
	Subst map[term.Symbol]int
}

// Search returns every match of pattern anywhere in the e-graph
// (spec.md §4.1: "search(pattern) -> list of (class_id, substitution)").
func (g *EGraph) Search(pattern term.Pattern) []Match {
	var matches []Match
	for _, id := range g.ClassIDs() {
		root := g.Find(id)
		if root != id {
			continue
		}
		for _, sub := range g.searchInClass(pattern.Expr, root) {
			matches = append(matches, Match{Class: root, Subst: sub})
		}
	}
	return matches
}

// searchInClass returns every substitution under which pattern matches
// some e-node in the class of classID.
func (g *EGraph) searchInClass(pattern term.Expr, classID int) []map[term.Symbol]int {
	if pattern.IsLeaf() && term.IsWildcard(pattern.Op) {
		name := term.FromWildcard(pattern.Op)
		return []map[term.Symbol]int{{name: g.Find(classID)}}
	}
	var results []map[term.Symbol]int
	for _, n := range g.NodesOf(classID) {
		if n.Op != pattern.Op || len(n.Children) != len(pattern.Children) {
			continue
		}
		results = append(results, g.matchChildren(pattern.Children, n.Children, map[term.Symbol]int{})...)
	}
	return results
}

// matchChildren matches pattern children against e-node children
// pairwise, threading a growing substitution and rejecting inconsistent
// bindings (the same wildcard bound to two different classes).
func (g *EGraph) matchChildren(patChildren []term.Expr, nodeChildren []int, base map[term.Symbol]int) []map[term.Symbol]int {
	if len(patChildren) == 0 {
		return []map[term.Symbol]int{base}
	}
	var out []map[term.Symbol]int
	for _, sub := range g.searchInClass(patChildren[0], nodeChildren[0]) {
		merged, ok := mergeSubst(base, sub)
		if !ok {
			continue
		}
		out = append(out, g.matchChildren(patChildren[1:], nodeChildren[1:], merged)...)
	}
	return out
}

func mergeSubst(a, b map[term.Symbol]int) (map[term.Symbol]int, bool) {
	out := make(map[term.Symbol]int, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if existing, ok := out[k]; ok && existing != v {
			return nil, false
		}
		out[k] = v
	}
	return out, true
}
