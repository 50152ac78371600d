package prover

import (
	"fmt"
	"strings"

	"github.com/aditya-giri/cyclegg/pkg/egraph"
	"github.com/aditya-giri/cyclegg/pkg/rewrite"
	"github.com/aditya-giri/cyclegg/pkg/term"
)

// isDescendant reports whether child's name has ancestor's name as a
// prefix followed by a "-"-delimited trace, the fresh-variable naming
// scheme case-split uses to encode provenance (spec.md §6, §4.5: fresh
// variables are named "<var>-<size><index>").
func isDescendant(child, ancestor string) bool {
	if child == ancestor {
		return false
	}
	prefix := ancestor + "-"
	return strings.HasPrefix(child, prefix)
}

// varDepth returns the number of hyphen-separated case-split segments
// encoded in name, the depth-bound accounting of spec.md §4.5 ("no fresh
// variable exceeds MAX_SPLIT_DEPTH hyphen-separated segments").
func varDepth(name string) int {
	return strings.Count(name, "-")
}

// smallerVar is the soundness gate of spec.md §4.4: a substitution is
// acceptable only if, componentwise over the scrutinee tuple, every image
// is the same variable or a strict descendant, and at least one is a
// strict descendant. Ported from goal.rs's SmallerVar/smaller_tuple.
type smallerVar struct {
	scrutinees []term.Symbol
}

// Check implements rewrite.Condition.
func (c smallerVar) Check(g *egraph.EGraph, m egraph.Match) bool {
	hasStrictlySmaller := false
	for _, v := range c.scrutinees {
		classID, ok := m.Subst[v]
		if !ok {
			continue // lemma has fewer parameters than the current scrutinee tuple
		}
		_, expr := g.Extract(classID, egraph.AstSize)
		varName := v.String()
		exprName := expr.String()
		if isDescendant(exprName, varName) {
			hasStrictlySmaller = true
		} else if exprName != varName {
			return false
		}
	}
	return hasStrictlySmaller
}

// mkLemmaRewrites synthesizes candidate induction-hypothesis rewrites from
// the goal's own current equivalence classes (spec.md §4.4): every pair of
// representative expressions drawn from the lhs and rhs classes becomes a
// candidate lemma lhs' => rhs' (or rhs' => lhs', whichever direction has no
// unbound wildcards), gated by smallerVar so it can only fire on strictly
// smaller instances of the current scrutinee tuple.
func (g *Goal) mkLemmaRewrites() []rewrite.Rewrite {
	lhsID := g.EGraph.Find(g.lhsID)
	rhsID := g.EGraph.Find(g.rhsID)
	exprs := g.EGraph.AllExpressions([]int{lhsID, rhsID})

	isVar := func(s term.Symbol) bool { return g.local.Contains(s) }
	cond := smallerVar{scrutinees: append([]term.Symbol(nil), g.scrutinees...)}

	var lemmas []rewrite.Rewrite
	for _, lhsExpr := range exprs[lhsID] {
		for _, rhsExpr := range exprs[rhsID] {
			lhsPat := term.ToPattern(lhsExpr, isVar)
			rhsPat := term.ToPattern(rhsExpr, isVar)
			name := fmt.Sprintf("lemma-%s=%s", lhsExpr, rhsExpr)

			switch {
			case rhsPat.VarsSubsetOf(lhsPat):
				lemmas = append(lemmas, rewrite.NewConditional(name, lhsPat, rhsPat, cond))
			case lhsPat.VarsSubsetOf(rhsPat):
				lemmas = append(lemmas, rewrite.NewConditional(name, rhsPat, lhsPat, cond))
			default:
				g.logf("debug", "cannot create a lemma from %s and %s: unbound wildcards on both sides", lhsExpr, rhsExpr)
			}
		}
	}
	return lemmas
}
