// Package env holds the two immutable lookup tables the prover core
// consumes from its caller (spec.md §3, §6): the datatype environment E
// (datatype name -> ordered constructor list) and contexts mapping
// symbols to types (used for both the global context Γᵍ and, via a
// separate mutable value, local contexts Γˡ). Grounded on the teacher's
// fact_store.go/pldb.go map-keyed-by-symbol store shape, generalized from
// "facts about a predicate" to "constructors of a datatype."
package env

import "github.com/aditya-giri/cyclegg/pkg/term"

// Env maps datatype name to its ordered list of constructor symbols.
// Order is significant (spec.md §3): base constructors should come first
// so that, after the case-splitter's reverse enumeration (spec.md §4.5),
// they are the last pushed and therefore the first popped off the proof
// stack, which empirically improves proof search.
type Env struct {
	constructors map[string][]term.Symbol
}

// New returns an empty Env.
func New() *Env {
	return &Env{constructors: make(map[string][]term.Symbol)}
}

// Declare registers a datatype with its constructors, in the given order.
func (e *Env) Declare(datatype string, constructors ...term.Symbol) {
	e.constructors[datatype] = append([]term.Symbol(nil), constructors...)
}

// Constructors returns the ordered constructor list of datatype, and
// whether it is known to e.
func (e *Env) Constructors(datatype string) ([]term.Symbol, bool) {
	cs, ok := e.constructors[datatype]
	return cs, ok
}

// Contains reports whether datatype is declared in e.
func (e *Env) Contains(datatype string) bool {
	_, ok := e.constructors[datatype]
	return ok
}

// Clone returns an independent copy of e. Env is conceptually immutable
// during proof search (spec.md §3), but Clone exists so goal construction
// can hold its own reference without aliasing concerns if a future caller
// chooses to mutate one copy.
func (e *Env) Clone() *Env {
	out := New()
	for k, v := range e.constructors {
		out.constructors[k] = append([]term.Symbol(nil), v...)
	}
	return out
}
