// Package dfa performs fixed-point exploration of Brzozowski derivatives
// under an input alphabet (plus a synthetic "everything else" class),
// producing a deterministic finite automaton, and provides a thin matcher
// that advances a state cursor over it (spec.md §3, §4.5, §4.6).
package dfa

import "github.com/coregx/bzregex/term"

// State is one node of a compiled Automaton.
type State[S comparable] struct {
	// Regex is the term this state represents, exposed for the matcher's
	// diagnostic CurrentRegex query.
	Regex *term.Term[S]

	// Accepting is the nullability of Regex.
	Accepting bool

	// Transitions maps every symbol that appears literally in the source
	// term to a successor state index. Any symbol not present here takes
	// Default instead.
	Transitions map[S]int

	// Default is the successor state index for any symbol not present in
	// Transitions — the derivative with respect to Exclude(Σ₀).
	Default int
}

// Automaton is a deterministic finite automaton over alphabet S, built by
// Build. States are interned: two terms that are structurally equal under
// the canonicalizing builder share a single state. The initial state is
// always index 0.
type Automaton[S comparable] struct {
	States []State[S]
}

// Start returns the initial state index (always 0).
func (a *Automaton[S]) Start() int { return 0 }

// Len returns the number of states in a.
func (a *Automaton[S]) Len() int { return len(a.States) }
