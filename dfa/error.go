package dfa

import (
	"errors"
	"fmt"
)

// ErrStateExplosion is the sentinel wrapped by BuildError. Use errors.Is to
// test for it regardless of the offending limit/count.
var ErrStateExplosion = errors.New("dfa: state explosion")

// BuildError reports that Build exceeded a configured Config.MaxStates cap.
// This is the only failure mode DFA construction recognizes (spec.md §7):
// every other operation in this module is total.
type BuildError struct {
	Limit uint32
	Count uint32
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("dfa: state explosion: exceeded %d states (needed at least %d)", e.Limit, e.Count)
}

// Unwrap makes errors.Is(err, ErrStateExplosion) succeed for a *BuildError.
func (e *BuildError) Unwrap() error { return ErrStateExplosion }
