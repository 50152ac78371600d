package rewrite

// Limits bounds the saturation runner's resource use (spec.md §5: "bounded
// by internal iteration/time/size limits supplied at construction"). Both
// a normal fixpoint and a limit-triggered stop are treated identically by
// the core (spec.md §4.2): the goal simply continues with whatever
// e-graph it has.
type Limits struct {
	MaxIterations int
	MaxNodes      int
}

// DefaultLimits matches the bound the original Rust prover effectively
// relied on (egg's Runner::default node/iteration caps), scaled to a size
// appropriate for the per-subgoal e-graphs this prover saturates.
var DefaultLimits = Limits{MaxIterations: 30, MaxNodes: 10000}
