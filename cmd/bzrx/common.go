package main

import (
	"github.com/coregx/bzregex/alphabet"
	"github.com/coregx/bzregex/term"
)

func newCanonicalBuilder(alpha alphabet.Alphabet[byte]) *term.CanonicalBuilder[byte] {
	return term.NewCanonicalBuilder[byte](alpha)
}
