package prover

// Prove runs the top-level proof search loop of spec.md §4.7: repeatedly
// pop a subgoal, saturate it, and either discharge it, split an
// irreducible ITE guard, case-split its front scrutinee, or report a
// verdict if it can do none of those.
func Prove(goal *Goal) Outcome {
	state := proofState{goal}
	for !state.empty() {
		goal.logf("debug", "PROOF STATE: %s", state)
		g := state.pop()
		g = g.Saturate()

		if g.cfg.SaveGraphs && g.cfg.Dumper != nil {
			if err := g.cfg.Dumper.Dump(g.Name, g.EGraph); err != nil {
				g.logf("warn", "failed to dump e-graph for %s: %v", g.Name, err)
			}
		}

		if g.Done() {
			continue
		}

		g.splitIte()

		if g.scrutineesEmpty() {
			// No more variables to case-split on: this goal, and hence the
			// whole conjecture, is invalid.
			return Invalid
		}
		if g.frontIsBoundExceeded() {
			// This goal could be split further, but the depth bound stops us
			// from proving or disproving it.
			return Unknown
		}
		state.push(g.caseSplit()...)
	}
	return Valid
}
