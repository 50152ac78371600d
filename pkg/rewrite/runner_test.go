package rewrite

import (
	"testing"

	"github.com/aditya-giri/cyclegg/pkg/egraph"
	"github.com/stretchr/testify/require"
)

func TestSaturateAppliesNatAddRewrites(t *testing.T) {
	g := egraph.New()
	lhs := g.Add(mustParse("(add Z y)"))
	rhsID := g.Add(mustParse("y"))

	rewrites := []Rewrite{
		New("add-z", pat("(add Z ?y)"), pat("?y")),
	}
	Saturate(g, rewrites, DefaultLimits)
	require.Equal(t, g.Find(lhs), g.Find(rhsID))
}

func TestSaturateStopsAtFixpoint(t *testing.T) {
	g := egraph.New()
	g.Add(mustParse("x"))
	rewrites := []Rewrite{New("noop", pat("?a"), pat("?a"))}
	// Should terminate quickly even though the rewrite always "matches".
	Saturate(g, rewrites, Limits{MaxIterations: 5, MaxNodes: 100})
}

func TestSaturateRespectsNodeBudget(t *testing.T) {
	g := egraph.New()
	g.Add(mustParse("x"))
	rewrites := []Rewrite{New("grow", pat("?a"), pat("(S ?a)"))}
	Saturate(g, rewrites, Limits{MaxIterations: 1000, MaxNodes: 20})
	require.Less(t, g.Size(), 1000) // bounded, not unbounded growth
}
