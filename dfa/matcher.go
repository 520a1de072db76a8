package dfa

import "github.com/coregx/bzregex/term"

func step[S comparable](a *Automaton[S], cur int, s S) int {
	st := &a.States[cur]
	if next, ok := st.Transitions[s]; ok {
		return next
	}
	return st.Default
}

// Matcher is a cursor over an Automaton that the Matcher does not own: the
// caller may create several Matchers over the same Automaton and advance
// them independently (spec.md §4.6, §9 "owned vs borrowed matcher").
type Matcher[S comparable] struct {
	automaton *Automaton[S]
	cur       int
}

// NewMatcher returns a Matcher positioned at automaton's start state.
func NewMatcher[S comparable](automaton *Automaton[S]) *Matcher[S] {
	return &Matcher[S]{automaton: automaton, cur: automaton.Start()}
}

// Advance feeds s to the cursor and returns whether the new state accepts.
func (m *Matcher[S]) Advance(s S) bool {
	m.cur = step(m.automaton, m.cur, s)
	return m.automaton.States[m.cur].Accepting
}

// AdvanceMany folds Advance over word and returns whether the final state
// accepts.
func (m *Matcher[S]) AdvanceMany(word []S) bool {
	accepting := m.automaton.States[m.cur].Accepting
	for _, s := range word {
		accepting = m.Advance(s)
	}
	return accepting
}

// CurrentRegex returns the term associated with the cursor's current
// state, for diagnostics.
func (m *Matcher[S]) CurrentRegex() *term.Term[S] {
	return m.automaton.States[m.cur].Regex
}

// Reset moves the cursor back to the start state.
func (m *Matcher[S]) Reset() {
	m.cur = m.automaton.Start()
}

// OwnedMatcher is a Matcher that owns its Automaton outright, convenient
// when the automaton will not outlive the matcher and the caller would
// rather not keep a separate reference around (spec.md §9).
type OwnedMatcher[S comparable] struct {
	automaton Automaton[S]
	cur       int
}

// NewOwnedMatcher takes ownership of automaton and returns a matcher
// positioned at its start state.
func NewOwnedMatcher[S comparable](automaton Automaton[S]) *OwnedMatcher[S] {
	return &OwnedMatcher[S]{automaton: automaton, cur: automaton.Start()}
}

func (m *OwnedMatcher[S]) Advance(s S) bool {
	m.cur = step(&m.automaton, m.cur, s)
	return m.automaton.States[m.cur].Accepting
}

func (m *OwnedMatcher[S]) AdvanceMany(word []S) bool {
	accepting := m.automaton.States[m.cur].Accepting
	for _, s := range word {
		accepting = m.Advance(s)
	}
	return accepting
}

func (m *OwnedMatcher[S]) CurrentRegex() *term.Term[S] {
	return m.automaton.States[m.cur].Regex
}

func (m *OwnedMatcher[S]) Reset() {
	m.cur = m.automaton.Start()
}
