package term

import "github.com/coregx/bzregex/alphabet"

// testAlphabetOrder returns the natural int order, used throughout this package's
// tests wherever a CanonicalBuilder is needed.
func testAlphabetOrder() alphabet.Func[int] {
	return alphabet.Natural[int]()
}
