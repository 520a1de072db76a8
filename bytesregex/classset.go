// Package bytesregex specializes the generic derivative engine to the byte
// alphabet: a literal extractor for the common case of a term that requires
// specific byte runs, an Aho-Corasick prefilter over those literals, and a
// boundary-tracking ClassSet for collecting Σ₀ ahead of DFA construction.
// None of this changes matching semantics; it only helps callers skip work.
package bytesregex

// ClassSet tracks byte boundaries where a term's transitions change, the
// same role nfa.ByteClassSet plays in a PCRE-style engine: every Symbol
// literal occurring in a term marks both its own value and the value just
// below it as a boundary, so that the classes produced by Classes() group
// together only bytes that the term can never distinguish between.
//
// It is backed by a plain [4]uint64 bitset rather than a library type: no
// general-purpose bitset package is grounded anywhere in the example pack,
// and a 256-bit fixed set is exactly what nfa.ByteClassSet already reaches
// for with the standard library.
type ClassSet struct {
	bits [4]uint64
}

// NewClassSet returns an empty ClassSet with no boundaries.
func NewClassSet() *ClassSet {
	return &ClassSet{}
}

// Mark records b as a byte whose transition may differ from its neighbors.
func (c *ClassSet) Mark(b byte) {
	if b > 0 {
		c.setBit(b - 1)
	}
	c.setBit(b)
}

func (c *ClassSet) setBit(b byte) {
	c.bits[b/64] |= 1 << (b % 64)
}

func (c *ClassSet) getBit(b byte) bool {
	return c.bits[b/64]&(1<<(b%64)) != 0
}

// Classes converts the boundary set into a 256-entry equivalence-class
// table: class[b] gives the index of the class byte b belongs to, assigned
// by walking 0..255 and incrementing the class number at each boundary.
func (c *ClassSet) Classes() [256]byte {
	var classes [256]byte
	class := byte(0)
	for b := 0; b < 256; b++ {
		classes[b] = class
		if c.getBit(byte(b)) {
			class++
		}
	}
	return classes
}

// NumClasses returns how many distinct classes Classes() would produce.
func (c *ClassSet) NumClasses() int {
	classes := c.Classes()
	max := classes[255]
	return int(max) + 1
}
