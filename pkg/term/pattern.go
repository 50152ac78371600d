package term

import "strings"

// Pattern is an Expr that may additionally contain wildcards: leaf symbols
// prefixed with WildcardPr, used as pattern variables. Patterns are used by
// the rewrite system (pkg/rewrite) as rewrite left-hand sides and by the
// lemma synthesizer (pkg/prover) as synthesized induction hypotheses.
type Pattern struct {
	Expr
}

// IsWildcard reports whether sym names a pattern variable.
func IsWildcard(sym Symbol) bool {
	return strings.HasPrefix(sym.String(), WildcardPr)
}

// ToWildcard returns the wildcard symbol naming var.
func ToWildcard(v Symbol) Symbol {
	return Intern(WildcardPr + v.String())
}

// FromWildcard strips the wildcard sigil, returning the underlying name.
func FromWildcard(w Symbol) Symbol {
	return Intern(strings.TrimPrefix(w.String(), WildcardPr))
}

// ToPattern replaces every leaf symbol for which isVar returns true with a
// wildcard of the same name, producing a Pattern from an ordinary Expr.
// This is how the lemma synthesizer turns a concrete representative term
// into a reusable rewrite pattern (spec.md §4.4 step 2a).
func ToPattern(e Expr, isVar func(Symbol) bool) Pattern {
	return Pattern{toPatternExpr(e, isVar)}
}

func toPatternExpr(e Expr, isVar func(Symbol) bool) Expr {
	if e.IsLeaf() {
		if isVar(e.Op) {
			return Leaf(ToWildcard(e.Op))
		}
		return Leaf(e.Op)
	}
	children := make([]Expr, len(e.Children))
	for i, c := range e.Children {
		children[i] = toPatternExpr(c, isVar)
	}
	return Expr{Op: e.Op, Children: children}
}

// Vars returns the set of wildcard variable names (without the sigil)
// appearing in the pattern.
func (p Pattern) Vars() map[Symbol]struct{} {
	out := make(map[Symbol]struct{})
	p.collectPatternVars(out)
	return out
}

func (p Pattern) collectPatternVars(out map[Symbol]struct{}) {
	collect(p.Expr, out)
}

func collect(e Expr, out map[Symbol]struct{}) {
	if e.IsLeaf() {
		if IsWildcard(e.Op) {
			out[FromWildcard(e.Op)] = struct{}{}
		}
		return
	}
	for _, c := range e.Children {
		collect(c, out)
	}
}

// VarsSubsetOf reports whether every variable of p also appears in other.
func (p Pattern) VarsSubsetOf(other Pattern) bool {
	ov := other.Vars()
	for v := range p.Vars() {
		if _, ok := ov[v]; !ok {
			return false
		}
	}
	return true
}

// Subst maps wildcard variable names to their bound expressions. An
// e-graph match (pkg/egraph's Search) binds wildcards to class ids;
// pkg/rewrite turns that into a Subst by extracting one representative
// expression per bound class.
type Subst map[Symbol]Expr

// Instantiate substitutes every wildcard in p with its binding in sub,
// producing a ground (or partially ground, if sub is incomplete) Expr.
// Wildcards absent from sub are left as wildcard leaves.
func (p Pattern) Instantiate(sub Subst) Expr {
	return instantiate(p.Expr, sub)
}

func instantiate(e Expr, sub Subst) Expr {
	if e.IsLeaf() {
		if IsWildcard(e.Op) {
			if bound, ok := sub[FromWildcard(e.Op)]; ok {
				return bound
			}
		}
		return Leaf(e.Op)
	}
	children := make([]Expr, len(e.Children))
	for i, c := range e.Children {
		children[i] = instantiate(c, sub)
	}
	return Expr{Op: e.Op, Children: children}
}
