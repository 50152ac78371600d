package prover

import "strings"

// Outcome is the three-valued verdict of spec.md §4.7: VALID (every goal
// discharged), INVALID (some goal ran out of scrutinees to split on), or
// UNKNOWN (some goal hit the case-split depth bound before either).
type Outcome int

const (
	Valid Outcome = iota
	Invalid
	Unknown
)

// String renders the outcome's bare name. Color is a display concern left
// to cmd/cyclegg (spec.md §6: the core never performs rendering itself).
func (o Outcome) String() string {
	switch o {
	case Valid:
		return "VALID"
	case Invalid:
		return "INVALID"
	case Unknown:
		return "UNKNOWN"
	default:
		return "???"
	}
}

// proofState is the LIFO stack of pending subgoals (spec.md §4.7): a list
// of goals all of which must be discharged for the conjecture to be
// valid.
type proofState []*Goal

func (s *proofState) push(g ...*Goal) {
	*s = append(*s, g...)
}

func (s *proofState) pop() *Goal {
	n := len(*s)
	g := (*s)[n-1]
	*s = (*s)[:n-1]
	return g
}

func (s proofState) empty() bool { return len(s) == 0 }

// String pretty-prints the stack as "[name1, name2, ...]", matching
// goal.rs's pretty_state.
func (s proofState) String() string {
	names := make([]string, len(s))
	for i, g := range s {
		names[i] = g.Name
	}
	return "[" + strings.Join(names, ", ") + "]"
}
