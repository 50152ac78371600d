package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToPatternReplacesVars(t *testing.T) {
	isVar := func(s Symbol) bool { return s.String() == "x" }
	e := App(Intern("S"), Leaf(Intern("x")))
	p := ToPattern(e, isVar)
	require.Equal(t, "(S ?x)", p.String())
}

func TestPatternVars(t *testing.T) {
	isVar := func(s Symbol) bool { return s.String() == "x" || s.String() == "y" }
	p := ToPattern(App(Intern("add"), Leaf(Intern("x")), Leaf(Intern("y"))), isVar)
	vars := p.Vars()
	require.Len(t, vars, 2)
}

func TestVarsSubsetOf(t *testing.T) {
	isVar := func(s Symbol) bool { return true }
	pl := ToPattern(App(Intern("add"), Leaf(Intern("x")), Leaf(Intern("Z"))), isVar)
	pr := ToPattern(Leaf(Intern("x")), isVar)
	require.True(t, pr.VarsSubsetOf(pl))
	require.False(t, pl.VarsSubsetOf(pr))
}

func TestInstantiate(t *testing.T) {
	isVar := func(s Symbol) bool { return s.String() == "x" }
	p := ToPattern(App(Intern("S"), Leaf(Intern("x"))), isVar)
	sub := Subst{Intern("x"): Leaf(Intern("Z"))}
	got := p.Instantiate(sub)
	require.Equal(t, "(S Z)", got.String())
}

func TestInstantiateLeavesUnboundWildcard(t *testing.T) {
	isVar := func(s Symbol) bool { return s.String() == "x" }
	p := ToPattern(Leaf(Intern("x")), isVar)
	got := p.Instantiate(Subst{})
	require.Equal(t, "?x", got.String())
}
