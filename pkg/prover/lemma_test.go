package prover

import (
	"testing"

	"github.com/aditya-giri/cyclegg/pkg/egraph"
	"github.com/aditya-giri/cyclegg/pkg/term"
	"github.com/stretchr/testify/require"
)

func TestIsDescendant(t *testing.T) {
	require.True(t, isDescendant("x-30", "x"))
	require.True(t, isDescendant("x-30-41", "x-30"))
	require.False(t, isDescendant("x-30", "x-30"))
	require.False(t, isDescendant("y-30", "x"))
	require.False(t, isDescendant("x", "x-30"))
}

func TestVarDepth(t *testing.T) {
	require.Equal(t, 0, varDepth("x"))
	require.Equal(t, 1, varDepth("x-30"))
	require.Equal(t, 2, varDepth("x-30-41"))
}

func TestSmallerVarAcceptsStrictDescendant(t *testing.T) {
	x := term.Intern("x")
	g := egraph.New()
	descendantExpr := term.Leaf(term.Intern("x-10"))
	id := g.Add(descendantExpr)
	g.Rebuild()

	cond := smallerVar{scrutinees: []term.Symbol{x}}
	m := egraph.Match{Class: id, Subst: map[term.Symbol]int{term.Intern("x"): id}}
	require.True(t, cond.Check(g, m))
}

func TestSmallerVarRejectsUnrelatedVar(t *testing.T) {
	x := term.Intern("x")
	g := egraph.New()
	unrelated := term.Leaf(term.Intern("y"))
	id := g.Add(unrelated)
	g.Rebuild()

	cond := smallerVar{scrutinees: []term.Symbol{x}}
	m := egraph.Match{Class: id, Subst: map[term.Symbol]int{term.Intern("x"): id}}
	require.False(t, cond.Check(g, m))
}

func TestSmallerVarRejectsAllEqual(t *testing.T) {
	x := term.Intern("x")
	g := egraph.New()
	sameVar := term.Leaf(x)
	id := g.Add(sameVar)
	g.Rebuild()

	cond := smallerVar{scrutinees: []term.Symbol{x}}
	m := egraph.Match{Class: id, Subst: map[term.Symbol]int{term.Intern("x"): id}}
	require.False(t, cond.Check(g, m))
}

func TestMkLemmaRewritesSynthesizesFromCurrentClasses(t *testing.T) {
	e, gam := natEnv()
	x := term.Intern("x")
	lhs := term.App(term.Intern("add"), term.Leaf(x), term.Leaf(term.Intern("Z")))
	rhs := term.Leaf(x)
	g := Top("top", lhs, rhs, []Param{{Name: x, Type: term.NewDatatype("Nat")}}, e, gam, addRewrites(), testConfig(2))
	g.Saturate()

	lemmas := g.mkLemmaRewrites()
	require.NotEmpty(t, lemmas)
}
