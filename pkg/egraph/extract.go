package egraph

import "github.com/aditya-giri/cyclegg/pkg/term"

// CostFn assigns a cost to an operator given the already-resolved costs
// of its children; used to pick a representative term out of a class
// during extraction.
type CostFn func(op term.Symbol, childCosts []int) int

// AstSize is the default cost function: the AST node count of the
// extracted term, matching the repeated `Extractor::new(&egraph,
// AstSize)` use in original_source/src/goal.rs.
func AstSize(_ term.Symbol, childCosts []int) int {
	sum := 1
	for _, c := range childCosts {
		sum += c
	}
	return sum
}

// Extract picks a minimum-cost representative term from the class of id
// under costFn (spec.md §4.1: "extract(id, cost_fn) -> (cost, term)").
// Extraction is a shortest-path computation over the e-graph's node
// hypergraph (classes can be mutually recursive, so a single top-down walk
// is not enough); we relax a per-class best-cost table to a fixpoint,
// matching the structure of a Bellman-Ford relaxation over a DAG that may
// contain cycles introduced by unsound or vacuous equivalences.
func (g *EGraph) Extract(id int, costFn CostFn) (int, term.Expr) {
	const unset = -1
	bestCost := make(map[int]int)
	bestNode := make(map[int]ENode)
	for _, cid := range g.ClassIDs() {
		root := g.Find(cid)
		bestCost[root] = unset
	}
	for {
		changed := false
		for _, cid := range g.ClassIDs() {
			root := g.Find(cid)
			for _, n := range g.NodesOf(root) {
				childCosts := make([]int, len(n.Children))
				ready := true
				for i, c := range n.Children {
					cc, ok := bestCost[g.Find(c)]
					if !ok || cc == unset {
						ready = false
						break
					}
					childCosts[i] = cc
				}
				if !ready {
					continue
				}
				cost := costFn(n.Op, childCosts)
				if cur, ok := bestCost[root]; !ok || cur == unset || cost < cur {
					bestCost[root] = cost
					bestNode[root] = n
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	root := g.Find(id)
	return bestCost[root], g.reconstruct(root, bestNode)
}

func (g *EGraph) reconstruct(id int, bestNode map[int]ENode) term.Expr {
	n := bestNode[id]
	if len(n.Children) == 0 {
		return term.Leaf(n.Op)
	}
	children := make([]term.Expr, len(n.Children))
	for i, c := range n.Children {
		children[i] = g.reconstruct(g.Find(c), bestNode)
	}
	return term.App(n.Op, children...)
}
