// Package prover implements the proof goal, lemma synthesizer, case- and
// conditional-splitters, and driver loop of spec.md §4 — the hard,
// interesting core of cyclegg. Goal is ported directly from
// original_source/src/goal.rs's Goal struct and impl; the surrounding
// control structures (proof-state stack, saturation driver) follow the
// same shape but are re-expressed in idiomatic Go.
package prover

import (
	"fmt"

	"github.com/aditya-giri/cyclegg/internal/config"
	"github.com/aditya-giri/cyclegg/pkg/egraph"
	"github.com/aditya-giri/cyclegg/pkg/env"
	"github.com/aditya-giri/cyclegg/pkg/rewrite"
	"github.com/aditya-giri/cyclegg/pkg/term"
)

// Param is a universally-quantified parameter of a conjecture: a name and
// its type.
type Param struct {
	Name term.Symbol
	Type term.Type
}

// Goal is a single proof obligation (spec.md §3): an e-graph, its active
// rewrite set, a local context of universally-quantified variables, a
// queue of remaining case-split scrutinees, and the two sides to equate.
type Goal struct {
	Name string

	EGraph   *egraph.EGraph
	rewrites []rewrite.Rewrite

	local *env.Context

	// scrutinees is the ordered queue S of spec.md §3: traversed
	// front-to-back, ITE guards pushed to the front, datatype-argument
	// fresh variables pushed to the back.
	scrutinees []term.Symbol

	lhsID int
	rhsID int

	e   *env.Env
	gam *env.Context

	cfg config.Config
}

// Top creates the initial goal for conjecture lhs = rhs (spec.md §4.3):
// seed an empty e-graph with lhs and rhs, rebuild, record the two class
// ids, copy r0 as the initial rewrite set, install params in Γˡ, and for
// each parameter whose type is a datatype in e, push it onto S.
func Top(name string, lhs, rhs term.Expr, params []Param, e *env.Env, global *env.Context, r0 []rewrite.Rewrite, cfg config.Config) *Goal {
	g := egraph.New()
	lhsID := g.Add(lhs)
	rhsID := g.Add(rhs)
	g.Rebuild()

	goal := &Goal{
		Name:     name,
		EGraph:   g,
		rewrites: append([]rewrite.Rewrite(nil), r0...),
		local:    env.NewContext(),
		lhsID:    lhsID,
		rhsID:    rhsID,
		e:        e,
		gam:      global,
		cfg:      cfg,
	}
	for _, p := range params {
		goal.local.Insert(p.Name, p.Type)
	}
	for _, p := range params {
		goal.addScrutinee(p.Name, p.Type, 0)
	}
	return goal
}

// GetLHS extracts a minimum-AST-size representative of the lhs side, used
// only for display (spec.md §4.3).
func (g *Goal) GetLHS() term.Expr {
	_, e := g.EGraph.Extract(g.lhsID, egraph.AstSize)
	return e
}

// GetRHS extracts a minimum-AST-size representative of the rhs side, used
// only for display.
func (g *Goal) GetRHS() term.Expr {
	_, e := g.EGraph.Extract(g.rhsID, egraph.AstSize)
	return e
}

// Done holds iff the two sides are in the same e-class (spec.md §4.3).
func (g *Goal) Done() bool {
	return g.EGraph.Find(g.lhsID) == g.EGraph.Find(g.rhsID)
}

// Saturate runs the rewrite system against G and installs the resulting
// e-graph (spec.md §4.3).
func (g *Goal) Saturate() *Goal {
	rewrite.Saturate(g.EGraph, g.rewrites, rewrite.DefaultLimits)
	return g
}

// scrutineesEmpty reports whether S is empty.
func (g *Goal) scrutineesEmpty() bool { return len(g.scrutinees) == 0 }

// frontIsBoundExceeded reports whether S's front is the depth-bound
// sentinel (spec.md §4.7).
func (g *Goal) frontIsBoundExceeded() bool {
	return len(g.scrutinees) > 0 && g.scrutinees[0] == term.BoundsHit
}

// addScrutinee adds var as a scrutinee if its type is a datatype known to
// e (spec.md §4.5 step 3c, §4.3); if the depth bound is exceeded, the
// sentinel is pushed instead so the driver can report UNKNOWN.
func (g *Goal) addScrutinee(v term.Symbol, ty term.Type, depth int) {
	dt, err := ty.Datatype()
	if err != nil || !g.e.Contains(dt) {
		return
	}
	if depth < g.cfg.MaxSplitDepth {
		g.scrutinees = append(g.scrutinees, v)
	} else {
		g.scrutinees = append(g.scrutinees, term.BoundsHit)
	}
}

// clone produces an independent deep copy of g, the per-subgoal isolation
// spec.md §5 requires at case-split time.
func (g *Goal) clone() *Goal {
	return &Goal{
		Name:       g.Name,
		EGraph:     g.EGraph.Clone(),
		rewrites:   append([]rewrite.Rewrite(nil), g.rewrites...),
		local:      g.local.Clone(),
		scrutinees: append([]term.Symbol(nil), g.scrutinees...),
		lhsID:      g.lhsID,
		rhsID:      g.rhsID,
		e:          g.e,
		gam:        g.gam,
		cfg:        g.cfg,
	}
}

func (g *Goal) logf(level string, format string, args ...interface{}) {
	if g.cfg.Logger == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	switch level {
	case "debug":
		g.cfg.Logger.Debug(msg)
	case "trace":
		g.cfg.Logger.Trace(msg)
	default:
		g.cfg.Logger.Warn(msg)
	}
}
