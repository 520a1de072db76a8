package bzregex

import (
	"testing"

	"github.com/coregx/bzregex/alphabet"
	"github.com/coregx/bzregex/dfa"
	"github.com/coregx/bzregex/sugar"
	"github.com/coregx/bzregex/term"
)

func TestCompileAndMatch(t *testing.T) {
	re, err := Compile(alphabet.Natural[byte](), func(b term.Builder[byte]) *term.Term[byte] {
		return sugar.Seq(b, sugar.Lit(b, []byte("foo")...), b.Closure(b.Symbol('!')))
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if !re.Match([]byte("foo")) {
		t.Error("should match 'foo'")
	}
	if !re.Match([]byte("foo!!!")) {
		t.Error("should match 'foo!!!'")
	}
	if re.Match([]byte("foobar")) {
		t.Error("should not match 'foobar'")
	}
}

// MustCompile always builds with dfa.DefaultConfig, so this test lowers the
// cap through CompileWithConfig and raises the same panic MustCompile raises
// on the returned error.
func TestCompileWithConfigStateExplosionPanicsLikeMustCompile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic when the underlying build hits the state cap")
		}
	}()

	build := func(b term.Builder[int]) *term.Term[int] {
		return b.Concat(b.Symbol(1), b.Symbol(2))
	}
	_, err := CompileWithConfig(alphabet.Natural[int](), build, dfa.Config{MaxStates: 1})
	if err == nil {
		t.Fatal("expected a state explosion error")
	}
	panic("bzregex: Compile: " + err.Error())
}

func TestMustCompileHappyPath(t *testing.T) {
	re := MustCompile(alphabet.Natural[int](), func(b term.Builder[int]) *term.Term[int] {
		return b.Symbol(1)
	})
	if !re.Match([]int{1}) {
		t.Error("MustCompile(Symbol(1)) should match [1]")
	}
}

func TestToAutomatonAndNewMatcher(t *testing.T) {
	re, err := Compile(alphabet.Natural[int](), func(b term.Builder[int]) *term.Term[int] {
		return b.Closure(b.Symbol(1))
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	a := re.ToAutomaton()
	if a.Len() == 0 {
		t.Error("ToAutomaton should expose a non-empty automaton")
	}

	m := re.NewMatcher()
	if !m.AdvanceMany([]int{1, 1, 1}) {
		t.Error("Matcher from NewMatcher should accept [1,1,1]")
	}
}

func TestCompileWithConfigPruneStillMatches(t *testing.T) {
	cfg := dfa.DefaultConfig()
	cfg.Prune = true

	re, err := CompileWithConfig(alphabet.Natural[byte](), func(b term.Builder[byte]) *term.Term[byte] {
		return sugar.Seq(b, sugar.Lit(b, []byte("foo")...), b.Closure(b.Symbol('!')))
	}, cfg)
	if err != nil {
		t.Fatalf("CompileWithConfig: %v", err)
	}

	if !re.Match([]byte("foo")) {
		t.Error("pruned automaton should still match 'foo'")
	}
	if !re.Match([]byte("foo!!!")) {
		t.Error("pruned automaton should still match 'foo!!!'")
	}
	if re.Match([]byte("foobar")) {
		t.Error("pruned automaton should still reject 'foobar'")
	}
}

func TestString(t *testing.T) {
	re, err := Compile(alphabet.Natural[int](), func(b term.Builder[int]) *term.Term[int] {
		return b.Symbol(5)
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got := re.String(); got != "5" {
		t.Errorf("String() = %q, want %q", got, "5")
	}
}
