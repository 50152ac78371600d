package egraph

import "github.com/aditya-giri/cyclegg/pkg/term"

// Enumeration caps for AllExpressions (spec.md §9, open question 1: "no
// specific bound is canonical... implementations should impose a clear
// enumeration cap"). See DESIGN.md for the rationale behind these numbers.
const (
	MaxExprsPerClass = 32
	MaxExprsBudget   = 4096
)

// AllExpressions enumerates a bounded set of distinct terms belonging to
// each of the given classes, used only by the lemma synthesizer (spec.md
// §4.1, "derived operation"). It respects cycles: if expanding a class
// would require expanding itself (an equivalence introduced, directly or
// transitively, by a self-referential union), that branch of the
// enumeration is pruned rather than looping forever.
func (g *EGraph) AllExpressions(classes []int) map[int][]term.Expr {
	out := make(map[int][]term.Expr, len(classes))
	memo := make(map[int][]term.Expr)
	budget := MaxExprsBudget
	for _, c := range classes {
		root := g.Find(c)
		out[root] = g.allExprsIn(root, memo, map[int]bool{}, &budget)
	}
	return out
}

func (g *EGraph) allExprsIn(id int, memo map[int][]term.Expr, onPath map[int]bool, budget *int) []term.Expr {
	root := g.Find(id)
	if es, ok := memo[root]; ok {
		return es
	}
	if onPath[root] || *budget <= 0 {
		return nil
	}
	onPath[root] = true
	defer delete(onPath, root)

	var exprs []term.Expr
	seen := make(map[string]bool)
	for _, n := range g.NodesOf(root) {
		if len(exprs) >= MaxExprsPerClass || *budget <= 0 {
			break
		}
		*budget--
		if len(n.Children) == 0 {
			e := term.Leaf(n.Op)
			if !seen[e.String()] {
				seen[e.String()] = true
				exprs = append(exprs, e)
			}
			continue
		}
		childOptions := make([][]term.Expr, len(n.Children))
		ok := true
		for i, c := range n.Children {
			opts := g.allExprsIn(c, memo, onPath, budget)
			if len(opts) == 0 {
				ok = false
				break
			}
			childOptions[i] = opts
		}
		if !ok {
			continue
		}
		for _, combo := range cartesianCapped(childOptions, MaxExprsPerClass-len(exprs)) {
			e := term.App(n.Op, combo...)
			if !seen[e.String()] {
				seen[e.String()] = true
				exprs = append(exprs, e)
			}
			if len(exprs) >= MaxExprsPerClass {
				break
			}
		}
	}
	memo[root] = exprs
	return exprs
}

// cartesianCapped enumerates the cartesian product of options, stopping
// once cap combinations have been produced, to keep branching factor from
// exploding per spec.md's "keep lemma synthesis tractable" guidance.
func cartesianCapped(options [][]term.Expr, cap int) [][]term.Expr {
	if cap <= 0 {
		return nil
	}
	result := [][]term.Expr{{}}
	for _, opts := range options {
		var next [][]term.Expr
		for _, prefix := range result {
			for _, o := range opts {
				if len(next) >= cap {
					break
				}
				combo := append(append([]term.Expr(nil), prefix...), o)
				next = append(next, combo)
			}
			if len(next) >= cap {
				break
			}
		}
		result = next
		if len(result) == 0 {
			break
		}
	}
	return result
}
