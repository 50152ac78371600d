// Package egraph implements the congruence-closed e-graph spec.md §4.1
// assumes is supplied by an off-the-shelf library. No Go e-graph library
// exists in the retrieved example pack or (to this author's knowledge) in
// the wider ecosystem — the `egg` crate the original Rust prover used is
// Rust-only — so this package is a from-scratch implementation, grounded
// on the teacher's (gokanlogic) union-find/clone-on-write store discipline
// in constraint_store.go and store_ops.go, generalized from "bindings and
// constraints over logic variables" to "congruence classes of e-nodes."
//
// The API surface covers the contract spec.md §4.1 lists: add, union,
// find, lookup, search, extract, per-class node iteration, and rebuild;
// it adds ClassIDs, Size, Clone, EraseNode and AllExpressions for the
// prover and diagnostics.
package egraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aditya-giri/cyclegg/pkg/term"
)

// ENode is a single e-graph node: an operator symbol applied to an ordered
// list of child e-class ids.
type ENode struct {
	Op       term.Symbol
	Children []int
}

func (n ENode) key(find func(int) int) string {
	var b strings.Builder
	b.WriteString(n.Op.String())
	for _, c := range n.Children {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(find(c)))
	}
	return b.String()
}

// EGraph is a congruence-closed set of equivalence classes of e-nodes.
// The zero value is not ready for use; construct with New.
type EGraph struct {
	parent   []int // union-find parent pointers, indexed by id
	classes  map[int][]ENode
	hashcons map[string]int
	dirty    map[int]struct{}
}

// New returns an empty e-graph.
func New() *EGraph {
	return &EGraph{
		classes:  make(map[int][]ENode),
		hashcons: make(map[string]int),
		dirty:    make(map[int]struct{}),
	}
}

func (g *EGraph) newClass(n ENode) int {
	id := len(g.parent)
	g.parent = append(g.parent, id)
	g.classes[id] = []ENode{n}
	return id
}

// Find returns the canonical representative id of the class containing id,
// with path compression.
func (g *EGraph) Find(id int) int {
	root := id
	for g.parent[root] != root {
		root = g.parent[root]
	}
	for id != root {
		next := g.parent[id]
		g.parent[id] = root
		id = next
	}
	return root
}

// Add inserts term e, sharing structurally equal sub-terms, and returns
// the class id of its root node.
func (g *EGraph) Add(e term.Expr) int {
	childIDs := make([]int, len(e.Children))
	for i, c := range e.Children {
		childIDs[i] = g.Add(c)
	}
	n := ENode{Op: e.Op, Children: childIDs}
	key := n.key(g.Find)
	if id, ok := g.hashcons[key]; ok {
		return id
	}
	id := g.newClass(n)
	g.hashcons[key] = id
	return id
}

// Lookup returns the class id of term e if every sub-term of e is already
// present, or ok=false if any is missing. Lookup never mutates the graph.
func (g *EGraph) Lookup(e term.Expr) (id int, ok bool) {
	childIDs := make([]int, len(e.Children))
	for i, c := range e.Children {
		cid, cok := g.Lookup(c)
		if !cok {
			return 0, false
		}
		childIDs[i] = cid
	}
	n := ENode{Op: e.Op, Children: childIDs}
	id, ok = g.hashcons[n.key(g.Find)]
	return id, ok
}

// Union asserts that the classes of a and b are equivalent. Rebuild must
// be called before further queries observe the merge (spec.md §4.1).
func (g *EGraph) Union(a, b int) int {
	ra, rb := g.Find(a), g.Find(b)
	if ra == rb {
		return ra
	}
	// Merge the smaller class into the larger, matching the union-find
	// "union by size" discipline the teacher's store machinery already uses
	// for its own equivalence bookkeeping.
	if len(g.classes[ra]) < len(g.classes[rb]) {
		ra, rb = rb, ra
	}
	g.parent[rb] = ra
	g.classes[ra] = append(g.classes[ra], g.classes[rb]...)
	delete(g.classes, rb)
	g.dirty[ra] = struct{}{}
	return ra
}

// Rebuild restores hashcons canonicity and congruence after a batch of
// additions and unions: any two e-nodes that become congruent (same
// operator, canonically-equal children) after a union are merged, and the
// process repeats to a fixpoint, since merging can itself create new
// congruences (a classic e-graph "upward merging" pass).
func (g *EGraph) Rebuild() {
	if len(g.dirty) == 0 && !g.hashconsStale() {
		return
	}
	for {
		changed := false
		newHashcons := make(map[string]int, len(g.hashcons))
		for id, nodes := range g.classes {
			root := g.Find(id)
			if root != id {
				continue // already merged away; its nodes were appended to root
			}
			for _, n := range nodes {
				key := n.key(g.Find)
				if existing, ok := newHashcons[key]; ok {
					if g.Find(existing) != g.Find(root) {
						g.Union(existing, root)
						changed = true
					}
				} else {
					newHashcons[key] = root
				}
			}
		}
		g.hashcons = newHashcons
		if !changed {
			break
		}
	}
	g.dirty = make(map[int]struct{})
}

// hashconsStale reports whether any class referenced by hashcons has been
// merged away since the last rebuild, so a fresh Add/Lookup wouldn't see
// it under its current canonical id.
func (g *EGraph) hashconsStale() bool {
	for _, id := range g.hashcons {
		if g.Find(id) != id {
			return true
		}
	}
	return false
}

// NodesOf returns the e-nodes belonging to the class of id (after
// resolving id to its canonical representative). Used directly by the
// conditional-splitter's reducibility check (spec.md §4.6: "any e-node in
// that class has an operator symbol equal to...").
func (g *EGraph) NodesOf(id int) []ENode {
	return g.classes[g.Find(id)]
}

// ClassIDs returns every live (canonical) class id currently in the graph.
func (g *EGraph) ClassIDs() []int {
	ids := make([]int, 0, len(g.classes))
	for id := range g.classes {
		ids = append(ids, id)
	}
	return ids
}

// Size returns the total number of e-nodes across all classes, used for
// the fresh-variable-name suffix of spec.md §4.5 and for diagnostics.
func (g *EGraph) Size() int {
	n := 0
	for _, nodes := range g.classes {
		n += len(nodes)
	}
	return n
}

// Clone performs a deep value copy of the e-graph, the per-subgoal
// isolation spec.md §5 requires at case-split time ("each subgoal owns a
// deep clone of the parent's e-graph... after cloning, the parent is
// discarded").
func (g *EGraph) Clone() *EGraph {
	out := &EGraph{
		parent:   append([]int(nil), g.parent...),
		classes:  make(map[int][]ENode, len(g.classes)),
		hashcons: make(map[string]int, len(g.hashcons)),
		dirty:    make(map[int]struct{}, len(g.dirty)),
	}
	for id, nodes := range g.classes {
		out.classes[id] = append([]ENode(nil), nodes...)
	}
	for k, v := range g.hashcons {
		out.hashcons[k] = v
	}
	for k := range g.dirty {
		out.dirty[k] = struct{}{}
	}
	return out
}

func (n ENode) String() string {
	if len(n.Children) == 0 {
		return n.Op.String()
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = fmt.Sprintf("e%d", c)
	}
	return "(" + n.Op.String() + " " + strings.Join(parts, " ") + ")"
}
