package bzregex

import (
	"github.com/coregx/bzregex/alphabet"
	"github.com/coregx/bzregex/dfa"
	"github.com/coregx/bzregex/pretty"
	"github.com/coregx/bzregex/term"
)

// Regex is a compiled extended regular expression over alphabet S: an ASCF
// term paired with the DFA explored from its derivatives.
//
// A Regex is safe to use concurrently from multiple goroutines: NewMatcher
// and Match never mutate the Regex itself, only the Matcher they hand out.
type Regex[S comparable] struct {
	canonical *term.Term[S]
	automaton *dfa.Automaton[S]
}

// Compile builds a Regex over alphabet alpha from the term build produces,
// using term.NewCanonicalBuilder so that build never has to canonicalize
// its own output, and dfa.DefaultConfig for the state cap.
//
// There being no textual syntax, build is the analogue of a parsed
// pattern: a closure that constructs the term from the supplied Builder,
// typically with the help of the sugar package's combinators.
func Compile[S comparable](alpha alphabet.Alphabet[S], build func(term.Builder[S]) *term.Term[S]) (*Regex[S], error) {
	return CompileWithConfig(alpha, build, dfa.DefaultConfig())
}

// CompileWithConfig is Compile with an explicit dfa.Config, e.g. to raise
// or lower the state-explosion cap, or to opt into cfg.Prune.
func CompileWithConfig[S comparable](alpha alphabet.Alphabet[S], build func(term.Builder[S]) *term.Term[S], cfg dfa.Config) (*Regex[S], error) {
	cb := term.NewCanonicalBuilder[S](alpha)
	canonical := build(cb)

	b := dfa.NewBuilder[S](alpha, cb, cfg)
	automaton, err := b.Build(canonical)
	if err != nil {
		return nil, err
	}

	if cfg.Prune {
		automaton = dfa.Prune(automaton)
	}

	return &Regex[S]{canonical: canonical, automaton: automaton}, nil
}

// MustCompile is Compile, panicking on error. Useful for package-level
// Regex values built from terms known to stay within the state cap.
func MustCompile[S comparable](alpha alphabet.Alphabet[S], build func(term.Builder[S]) *term.Term[S]) *Regex[S] {
	re, err := Compile(alpha, build)
	if err != nil {
		panic("bzregex: Compile: " + err.Error())
	}
	return re
}

// Term returns the canonical (ASCF) term this Regex was compiled from.
func (re *Regex[S]) Term() *term.Term[S] { return re.canonical }

// ToAutomaton returns the DFA this Regex was compiled to. The returned
// automaton is shared; callers must not mutate its States.
func (re *Regex[S]) ToAutomaton() *dfa.Automaton[S] { return re.automaton }

// NewMatcher returns a streaming Matcher positioned at the start state,
// borrowing re's automaton.
func (re *Regex[S]) NewMatcher() *dfa.Matcher[S] {
	return dfa.NewMatcher(re.automaton)
}

// Match reports whether word is accepted in its entirety.
func (re *Regex[S]) Match(word []S) bool {
	return re.NewMatcher().AdvanceMany(word)
}

// String renders the compiled term using pretty.Default.
func (re *Regex[S]) String() string {
	return pretty.Default(re.canonical)
}
