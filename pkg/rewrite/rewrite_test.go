package rewrite

import (
	"testing"

	"github.com/aditya-giri/cyclegg/pkg/egraph"
	"github.com/aditya-giri/cyclegg/pkg/term"
	"github.com/stretchr/testify/require"
)

func mustParse(s string) term.Expr {
	e, err := term.ParseExpr(s)
	if err != nil {
		panic(err)
	}
	return e
}

func pat(s string) term.Pattern {
	return term.Pattern{Expr: mustParse(s)}
}

type alwaysTrue struct{}

func (alwaysTrue) Check(*egraph.EGraph, egraph.Match) bool { return true }

type alwaysFalse struct{}

func (alwaysFalse) Check(*egraph.EGraph, egraph.Match) bool { return false }

func TestUnconditionalRewriteApplies(t *testing.T) {
	g := egraph.New()
	id := g.Add(mustParse("(id x)"))
	rw := New("id-elim", pat("(id ?a)"), pat("?a"))
	rhs, ok := rw.Applier.Apply(g, egraph.Match{Class: id, Subst: map[term.Symbol]int{term.Intern("a"): g.Add(mustParse("x"))}})
	require.True(t, ok)
	require.Equal(t, "x", rhs.String())
}

func TestConditionalRewriteSkippedWhenFalse(t *testing.T) {
	rw := NewConditional("cond", pat("?a"), pat("?a"), alwaysFalse{})
	g := egraph.New()
	_, ok := rw.Applier.Apply(g, egraph.Match{Subst: map[term.Symbol]int{}})
	require.False(t, ok)
}

func TestConditionalRewriteAppliesWhenTrue(t *testing.T) {
	rw := NewConditional("cond", pat("?a"), pat("?a"), alwaysTrue{})
	g := egraph.New()
	id := g.Add(mustParse("x"))
	_, ok := rw.Applier.Apply(g, egraph.Match{Subst: map[term.Symbol]int{term.Intern("a"): id}})
	require.True(t, ok)
}
