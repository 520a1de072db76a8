package sugar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coregx/bzregex/alphabet"
	"github.com/coregx/bzregex/term"
)

func newCanon() *term.CanonicalBuilder[int] {
	return term.NewCanonicalBuilder[int](alphabet.Natural[int]())
}

func TestSeqEmptyIsEmptyString(t *testing.T) {
	b := newCanon()
	assert.True(t, term.Equal(Seq(b), b.EmptyString()), "Seq() should be EmptyString")
}

func TestSeqMatchesConcatenation(t *testing.T) {
	b := newCanon()
	r := Seq(b, b.Symbol(1), b.Symbol(2), b.Symbol(3))
	assert.True(t, term.IsMatch(r, []int{1, 2, 3}, b), "Seq(1,2,3) should match [1,2,3]")
	assert.False(t, term.IsMatch(r, []int{1, 2}, b), "Seq(1,2,3) should not match a prefix")
}

func TestAltEmptyIsEmptySet(t *testing.T) {
	b := newCanon()
	assert.True(t, term.Equal(Alt(b), b.EmptySet()), "Alt() should be EmptySet")
}

func TestAltMatchesAnyBranch(t *testing.T) {
	b := newCanon()
	r := Alt(b, b.Symbol(1), b.Symbol(2), b.Symbol(3))
	for _, w := range [][]int{{1}, {2}, {3}} {
		assert.Truef(t, term.IsMatch(r, w, b), "Alt(1,2,3) should match %v", w)
	}
	assert.False(t, term.IsMatch(r, []int{4}, b), "Alt(1,2,3) should not match [4]")
}

func TestOpt(t *testing.T) {
	b := newCanon()
	r := Opt(b, b.Symbol(1))
	assert.True(t, term.IsMatch(r, []int{}, b), "Opt(1) should match the empty word")
	assert.True(t, term.IsMatch(r, []int{1}, b), "Opt(1) should match [1]")
	assert.False(t, term.IsMatch(r, []int{1, 1}, b), "Opt(1) should not match [1,1]")
}

func TestPlus(t *testing.T) {
	b := newCanon()
	r := Plus(b, b.Symbol(1))
	assert.False(t, term.IsMatch(r, []int{}, b), "Plus(1) should not match the empty word")
	for _, w := range [][]int{{1}, {1, 1}, {1, 1, 1}} {
		assert.Truef(t, term.IsMatch(r, w, b), "Plus(1) should match %v", w)
	}
}

func TestLit(t *testing.T) {
	b := newCanon()
	r := Lit(b, 1, 2, 3)
	assert.True(t, term.IsMatch(r, []int{1, 2, 3}, b), "Lit(1,2,3) should match [1,2,3]")
	assert.False(t, term.IsMatch(r, []int{1, 2}, b), "Lit(1,2,3) should not match [1,2]")
}

func TestLitEmptyIsEmptyString(t *testing.T) {
	b := newCanon()
	assert.True(t, term.Equal(Lit[int](b), b.EmptyString()), "Lit() with no symbols should be EmptyString")
}

func TestNotIn(t *testing.T) {
	b := newCanon()
	r := NotIn(b, 1, 2)
	assert.False(t, term.IsMatch(r, []int{1}, b), "NotIn(1,2) should not match [1]")
	assert.False(t, term.IsMatch(r, []int{2}, b), "NotIn(1,2) should not match [2]")
	assert.True(t, term.IsMatch(r, []int{3}, b), "NotIn(1,2) should match [3]")
	assert.True(t, term.IsMatch(r, []int{}, b), "NotIn(1,2) should match the empty word (it's a language complement)")
}
