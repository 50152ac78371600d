package prover

import (
	"testing"

	"github.com/aditya-giri/cyclegg/pkg/term"
	"github.com/stretchr/testify/require"
)

func TestTopSeedsEgraphAndScrutinees(t *testing.T) {
	e, gam := natEnv()
	x := term.Intern("x")
	lhs := term.App(term.Intern("add"), term.Leaf(x), term.Leaf(term.Intern("Z")))
	rhs := term.Leaf(x)
	params := []Param{{Name: x, Type: term.NewDatatype("Nat")}}

	g := Top("top", lhs, rhs, params, e, gam, addRewrites(), testConfig(2))

	require.False(t, g.Done())
	require.Equal(t, []term.Symbol{x}, g.scrutinees)
	require.Equal(t, lhs.String(), g.GetLHS().String())
	require.Equal(t, rhs.String(), g.GetRHS().String())
}

func TestDoneWhenBothSidesAreTheSameTerm(t *testing.T) {
	e, gam := natEnv()
	lhs := term.Leaf(term.Intern("Z"))
	rhs := term.Leaf(term.Intern("Z"))
	g := Top("top", lhs, rhs, nil, e, gam, nil, testConfig(2))
	require.True(t, g.Done())
}

func TestSaturateDischargesByRewriting(t *testing.T) {
	e, gam := natEnv()
	x := term.Intern("x")
	lhs := term.App(term.Intern("add"), term.Leaf(term.Intern("Z")), term.Leaf(x))
	rhs := term.Leaf(x)
	g := Top("top", lhs, rhs, nil, e, gam, addRewrites(), testConfig(2))
	require.False(t, g.Done())
	g.Saturate()
	require.True(t, g.Done())
}

func TestAddScrutineeRespectsDepthBound(t *testing.T) {
	e, gam := natEnv()
	g := Top("top", term.Leaf(term.Intern("Z")), term.Leaf(term.Intern("Z")), nil, e, gam, nil, testConfig(0))
	g.addScrutinee(term.Intern("x"), term.NewDatatype("Nat"), 0)
	require.True(t, g.frontIsBoundExceeded())
}

func TestCloneIsIndependent(t *testing.T) {
	e, gam := natEnv()
	x := term.Intern("x")
	g := Top("top", term.Leaf(x), term.Leaf(x), []Param{{Name: x, Type: term.NewDatatype("Nat")}}, e, gam, nil, testConfig(2))
	child := g.clone()
	child.scrutinees = append(child.scrutinees, term.Intern("extra"))
	require.NotEqual(t, len(g.scrutinees), len(child.scrutinees))
}
