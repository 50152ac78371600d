// Package rewrite implements the conditional pattern-to-pattern rewrite
// system of spec.md §4.2: a Rewrite pairs a left-hand pattern with an
// Applier, optionally gated by a side condition, and the saturation
// runner (runner.go) applies every rewrite to every match until a
// fixpoint or a resource bound is hit.
//
// The conditional-applier shape and the "check the condition at apply
// time, not at rewrite-creation time" discipline are ported directly from
// original_source/src/goal.rs's Condition/ConditionalApplier/SmallerVar —
// spec.md §9 is explicit that this is the only soundness safeguard for
// cyclic-proof lemmas, since e-graph matching only discovers substitutions
// dynamically.
package rewrite

import (
	"github.com/aditya-giri/cyclegg/pkg/egraph"
	"github.com/aditya-giri/cyclegg/pkg/term"
)

// Applier produces the right-hand side term to union into a matched
// class, given the e-graph and the match's substitution. Appliers that
// always apply (unconditional rewrites) simply ignore any gating.
type Applier interface {
	Apply(g *egraph.EGraph, m egraph.Match) (term.Expr, bool)
}

// PatternApplier is an unconditional applier: its right-hand pattern is
// always instantiated against the match's substitution.
type PatternApplier struct {
	RHS term.Pattern
}

// Apply implements Applier.
func (a PatternApplier) Apply(g *egraph.EGraph, m egraph.Match) (term.Expr, bool) {
	return instantiateFromClasses(g, a.RHS, m.Subst), true
}

// Condition gates a ConditionalApplier: it is checked at apply time
// against the live e-graph and the current match, and may reject the
// application (spec.md §7: "not an error; the applier is silently
// skipped... how induction soundness is enforced").
type Condition interface {
	Check(g *egraph.EGraph, m egraph.Match) bool
}

// ConditionalApplier applies its inner Applier only when Condition holds.
type ConditionalApplier struct {
	Condition Condition
	Inner     Applier
}

// Apply implements Applier.
func (a ConditionalApplier) Apply(g *egraph.EGraph, m egraph.Match) (term.Expr, bool) {
	if !a.Condition.Check(g, m) {
		return term.Expr{}, false
	}
	return a.Inner.Apply(g, m)
}

// Rewrite is name, lhs_pattern, applier (spec.md §4.2).
type Rewrite struct {
	Name    string
	LHS     term.Pattern
	Applier Applier
}

// New builds an unconditional rewrite LHS => RHS.
func New(name string, lhs, rhs term.Pattern) Rewrite {
	return Rewrite{Name: name, LHS: lhs, Applier: PatternApplier{RHS: rhs}}
}

// NewConditional builds a rewrite LHS => RHS that only fires when cond
// holds at application time.
func NewConditional(name string, lhs, rhs term.Pattern, cond Condition) Rewrite {
	return Rewrite{
		Name:    name,
		LHS:     lhs,
		Applier: ConditionalApplier{Condition: cond, Inner: PatternApplier{RHS: rhs}},
	}
}

// instantiateFromClasses extracts a representative expression for each
// bound class id in sub, then instantiates pattern's wildcards with those
// expressions before re-adding the result to the e-graph.
func instantiateFromClasses(g *egraph.EGraph, pattern term.Pattern, sub map[term.Symbol]int) term.Expr {
	exprSub := make(term.Subst, len(sub))
	for name, classID := range sub {
		_, e := g.Extract(classID, egraph.AstSize)
		exprSub[name] = e
	}
	return pattern.Instantiate(exprSub)
}
