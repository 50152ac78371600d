package term

import "strings"

// Expr is a rooted term tree: an operator symbol applied to an ordered
// list of child expressions. A leaf (nullary operator, e.g. a constructor,
// variable, or constant) has no children. Expr values are immutable; every
// mutating-looking operation returns a new value, matching the teacher's
// Term.Clone() discipline for a sharing-free value type.
type Expr struct {
	Op       Symbol
	Children []Expr
}

// Leaf builds a nullary expression.
func Leaf(op Symbol) Expr { return Expr{Op: op} }

// App builds a compound expression applying op to children.
func App(op Symbol, children ...Expr) Expr {
	return Expr{Op: op, Children: children}
}

// IsLeaf reports whether e has no children.
func (e Expr) IsLeaf() bool { return len(e.Children) == 0 }

// Arity returns the number of children.
func (e Expr) Arity() int { return len(e.Children) }

// String renders e in "(op arg1 arg2)" surface form, or just "op" for a
// leaf, matching the render(parse(s)) = canonical(s) contract of spec.md §6.
func (e Expr) String() string {
	if e.IsLeaf() {
		return e.Op.String()
	}
	parts := make([]string, len(e.Children))
	for i, c := range e.Children {
		parts[i] = c.String()
	}
	return "(" + e.Op.String() + " " + strings.Join(parts, " ") + ")"
}

// Equal reports structural equality (not e-graph equivalence).
func (e Expr) Equal(other Expr) bool {
	if e.Op != other.Op || len(e.Children) != len(other.Children) {
		return false
	}
	for i := range e.Children {
		if !e.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of e. Expr is an immutable value type, so
// Clone is provided for parity with the teacher's Term.Clone() contract and
// to guarantee no accidental slice aliasing across case-split clones.
func (e Expr) Clone() Expr {
	if e.IsLeaf() {
		return Expr{Op: e.Op}
	}
	children := make([]Expr, len(e.Children))
	for i, c := range e.Children {
		children[i] = c.Clone()
	}
	return Expr{Op: e.Op, Children: children}
}

// Size returns the AST node count of e, used by the default cost function
// for e-graph extraction (spec.md §4.3 "minimum-AST-size representative").
func (e Expr) Size() int {
	size := 1
	for _, c := range e.Children {
		size += c.Size()
	}
	return size
}

// Vars returns the set of leaf symbols of e that are bound in isVar.
func (e Expr) Vars(isVar func(Symbol) bool) map[Symbol]struct{} {
	out := make(map[Symbol]struct{})
	e.collectVars(isVar, out)
	return out
}

func (e Expr) collectVars(isVar func(Symbol) bool, out map[Symbol]struct{}) {
	if e.IsLeaf() {
		if isVar(e.Op) {
			out[e.Op] = struct{}{}
		}
		return
	}
	for _, c := range e.Children {
		c.collectVars(isVar, out)
	}
}
