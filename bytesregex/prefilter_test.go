package bytesregex

import (
	"errors"
	"testing"
)

func TestNewPrefilterRejectsEmptySeq(t *testing.T) {
	_, err := NewPrefilter(&Seq{})
	if !errors.Is(err, ErrNoLiterals) {
		t.Fatalf("expected ErrNoLiterals, got %v", err)
	}
}

func TestPrefilterMaybeMatch(t *testing.T) {
	seq := &Seq{literals: []Literal{
		{Bytes: []byte("foo"), Complete: true},
		{Bytes: []byte("bar"), Complete: true},
	}}

	pf, err := NewPrefilter(seq)
	if err != nil {
		t.Fatalf("NewPrefilter: %v", err)
	}

	if !pf.MaybeMatch([]byte("xx foo yy")) {
		t.Error("haystack containing 'foo' should pass the prefilter")
	}
	if pf.MaybeMatch([]byte("xx nope yy")) {
		t.Error("haystack containing neither literal should be rejected")
	}
}
