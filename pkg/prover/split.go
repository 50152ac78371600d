package prover

import (
	"fmt"

	"github.com/aditya-giri/cyclegg/pkg/egraph"
	"github.com/aditya-giri/cyclegg/pkg/term"
)

// splitIte promotes every irreducible ITE guard to a fresh Boolean
// scrutinee (spec.md §4.6): if the egraph contains an "(ite ?g ?x ?y)"
// match whose guard class contains no reducible symbol (a Boolean
// constant or an existing scrutinee), a fresh variable is unioned into
// that class and pushed to the FRONT of the scrutinee queue, since
// splitting a condition doesn't introduce new datatype variables and is
// cheaper to resolve first.
func (g *Goal) splitIte() {
	guardWildcard := term.Intern("?g")
	xWildcard := term.Intern("?x")
	yWildcard := term.Intern("?y")
	pattern := term.Pattern{Expr: term.App(term.ITE, term.Leaf(guardWildcard), term.Leaf(xWildcard), term.Leaf(yWildcard))}

	reducible := make(map[term.Symbol]bool, len(g.scrutinees)+2)
	reducible[term.True] = true
	reducible[term.False] = true
	for _, s := range g.scrutinees {
		reducible[s] = true
	}

	irreducibleGuards := make(map[int]struct{})
	for _, m := range g.EGraph.Search(pattern) {
		guardClass, ok := m.Subst[term.Intern("g")]
		if !ok {
			continue
		}
		isReducible := false
		for _, n := range g.EGraph.NodesOf(guardClass) {
			if reducible[n.Op] {
				isReducible = true
				break
			}
		}
		if !isReducible {
			irreducibleGuards[g.EGraph.Find(guardClass)] = struct{}{}
		}
	}

	for guardID := range irreducibleGuards {
		freshVar := term.Intern(fmt.Sprintf("g-%d", guardID))
		_, expr := g.EGraph.Extract(guardID, egraph.AstSize)
		g.logf("debug", "adding scrutinee %s to split condition %s", freshVar, expr)

		g.local.Insert(freshVar, term.BoolTy)
		g.scrutinees = append([]term.Symbol{freshVar}, g.scrutinees...)

		newID := g.EGraph.Add(term.Leaf(freshVar))
		g.EGraph.Union(guardID, g.EGraph.Find(newID))
	}
	g.EGraph.Rebuild()
}

// caseSplit consumes g, producing one child goal per constructor of the
// front scrutinee's datatype (spec.md §4.5). Constructors are enumerated
// in reverse declaration order so that, once pushed onto a LIFO proof
// stack, base-case constructors are the first popped. Each child unions
// the scrutinee's class with a fresh constructor application built from
// brand-new scrutinee variables, erases the now-stale scrutinee leaf, and
// — if the constructor takes at least one argument — inherits the
// lemmas synthesized from g's own current equivalence classes.
func (g *Goal) caseSplit() []*Goal {
	lemmas := g.mkLemmaRewrites()

	var_ := g.scrutinees[0]
	g.scrutinees = g.scrutinees[1:]
	g.logf("debug", "case-split on %s", var_)

	varID, ok := g.EGraph.Lookup(term.Leaf(var_))
	if !ok {
		panic(fmt.Sprintf("prover: scrutinee %s missing from e-graph", var_))
	}
	ty, ok := g.local.Get(var_)
	if !ok {
		panic(fmt.Sprintf("prover: scrutinee %s missing from local context", var_))
	}
	dt, err := ty.Datatype()
	if err != nil {
		panic(fmt.Sprintf("prover: scrutinee %s has non-datatype type: %v", var_, err))
	}
	cons, ok := g.e.Constructors(dt)
	if !ok {
		panic(fmt.Sprintf("prover: unknown datatype %s", dt))
	}

	var children []*Goal
	for i := len(cons) - 1; i >= 0; i-- {
		con := cons[i]
		child := g.clone()

		argTy, ok := g.gam.Get(con)
		if !ok {
			panic(fmt.Sprintf("prover: unknown constructor %s", con))
		}
		conArgs := argTy.Args()

		freshVars := make([]term.Symbol, len(conArgs))
		for j, at := range conArgs {
			freshName := fmt.Sprintf("%s-%d%d", var_, g.EGraph.Size(), j)
			depth := varDepth(freshName)
			freshVar := term.Intern(freshName)
			freshVars[j] = freshVar
			child.local.Insert(freshVar, at)
			child.addScrutinee(freshVar, at, depth)
		}

		conArgExprs := make([]term.Expr, len(freshVars))
		for j, fv := range freshVars {
			conArgExprs[j] = term.Leaf(fv)
		}
		conApp := term.Leaf(con)
		if len(conArgExprs) > 0 {
			conApp = term.App(con, conArgExprs...)
		}

		childName := g.Name
		if childName == "top" {
			childName = ""
		} else {
			childName = childName + ":"
		}
		child.Name = fmt.Sprintf("%s%s=%s", childName, var_, conApp)

		conAppID := child.EGraph.Add(conApp)
		child.EGraph.Union(varID, conAppID)
		child.EGraph.Rebuild()

		child.EGraph.EraseNode(varID, egraph.ENode{Op: var_})
		child.local.Remove(var_)

		if len(freshVars) > 0 {
			child.rewrites = append(child.rewrites, lemmas...)
		}

		children = append(children, child)
	}
	return children
}
