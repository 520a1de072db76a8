package dfa

import "github.com/coregx/bzregex/internal/sparse"

// Prune drops states unreachable from the start state and renumbers the
// remainder, preserving externally observable matching behavior (spec.md
// §4.5 "Unreachable / dead states" — not required by the contract, but
// permitted). Reachability is tracked with a SparseSet bounded by the
// automaton's known state count.
//
// Prune does not perform the stronger dead-state elimination (collapsing
// states from which no accepting state is reachable): that would also
// change what CurrentRegex reports for a dead state, which this module
// treats as observable. That optimization remains the future work spec.md
// §9 carries forward from the source design.
func Prune[S comparable](a *Automaton[S]) *Automaton[S] {
	n := len(a.States)
	visited := sparse.NewSparseSet(uint32(n))
	order := make([]int, 0, n)

	queue := []int{a.Start()}
	visited.Insert(uint32(a.Start()))
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		order = append(order, q)

		st := a.States[q]
		for _, next := range st.Transitions {
			if !visited.Contains(uint32(next)) {
				visited.Insert(uint32(next))
				queue = append(queue, next)
			}
		}
		if !visited.Contains(uint32(st.Default)) {
			visited.Insert(uint32(st.Default))
			queue = append(queue, st.Default)
		}
	}

	if len(order) == n {
		return a // already dense; nothing to prune
	}

	remap := make(map[int]int, len(order))
	for newIdx, oldIdx := range order {
		remap[oldIdx] = newIdx
	}

	states := make([]State[S], len(order))
	for newIdx, oldIdx := range order {
		old := a.States[oldIdx]
		transitions := make(map[S]int, len(old.Transitions))
		for s, next := range old.Transitions {
			transitions[s] = remap[next]
		}
		states[newIdx] = State[S]{
			Regex:       old.Regex,
			Accepting:   old.Accepting,
			Transitions: transitions,
			Default:     remap[old.Default],
		}
	}

	return &Automaton[S]{States: states}
}
