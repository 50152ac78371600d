package env

import "github.com/aditya-giri/cyclegg/pkg/term"

// Context maps symbol to type, holding either the global context Γᵍ
// (constructors and top-level definitions, immutable during search) or a
// subgoal's local context Γˡ (universally-quantified variables plus fresh
// variables introduced by case-splitting, mutated monotonically within a
// subgoal by adding fresh variables and deleting a retired scrutinee).
type Context struct {
	bindings map[term.Symbol]term.Type
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{bindings: make(map[term.Symbol]term.Type)}
}

// Insert binds sym to ty, overwriting any existing binding.
func (c *Context) Insert(sym term.Symbol, ty term.Type) {
	c.bindings[sym] = ty
}

// Get returns the type bound to sym, and whether it is bound.
func (c *Context) Get(sym term.Symbol) (term.Type, bool) {
	ty, ok := c.bindings[sym]
	return ty, ok
}

// Contains reports whether sym is bound.
func (c *Context) Contains(sym term.Symbol) bool {
	_, ok := c.bindings[sym]
	return ok
}

// Remove deletes sym's binding, used when a scrutinee is instantiated by
// case-splitting and must no longer appear as a standalone leaf.
func (c *Context) Remove(sym term.Symbol) {
	delete(c.bindings, sym)
}

// Clone returns an independent copy of c, the per-subgoal isolation
// case-splitting needs (spec.md §5: "each subgoal owns a deep clone").
func (c *Context) Clone() *Context {
	out := NewContext()
	for k, v := range c.bindings {
		out.bindings[k] = v
	}
	return out
}
