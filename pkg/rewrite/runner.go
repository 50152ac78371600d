package rewrite

import "github.com/aditya-giri/cyclegg/pkg/egraph"

// Saturate runs the rewrite system against g to a fixpoint or until limits
// is exhausted (spec.md §4.2); either termination is treated identically
// by the caller. Saturate mutates g in place and also returns it for
// call-site convenience, matching the teacher's propagation fixpoint loop
// generalized from constraint domain-pruning to e-graph rewriting.
func Saturate(g *egraph.EGraph, rewrites []Rewrite, limits Limits) *egraph.EGraph {
	for iter := 0; iter < limits.MaxIterations; iter++ {
		if g.Size() > limits.MaxNodes {
			break
		}
		changed := applyOnce(g, rewrites)
		g.Rebuild()
		if !changed {
			break
		}
	}
	return g
}

// applyOnce searches every rewrite's pattern, applies whichever matches
// produce a right-hand side, and unions the result into the matched
// class. It returns whether any union actually changed the graph's
// equivalence structure.
func applyOnce(g *egraph.EGraph, rewrites []Rewrite) bool {
	type pending struct {
		class int
		rhs   int
	}
	var unions []pending
	for _, rw := range rewrites {
		for _, m := range g.Search(rw.LHS) {
			rhsExpr, ok := rw.Applier.Apply(g, m)
			if !ok {
				continue
			}
			rhsID := g.Add(rhsExpr)
			unions = append(unions, pending{class: m.Class, rhs: rhsID})
		}
	}
	changed := false
	for _, u := range unions {
		if g.Find(u.class) != g.Find(u.rhs) {
			changed = true
		}
		g.Union(u.class, u.rhs)
	}
	return changed
}
