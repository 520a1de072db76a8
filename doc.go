// Package bzregex builds, simplifies, and matches extended regular
// expressions — union, concatenation, Kleene closure, intersection, and
// complement — over a derivative engine in the style of Brzozowski,
// rewriting every term toward an approximately-similar canonical form
// (ASCF) as it is built, then compiling the result to a DFA by exploring
// derivatives to a fixed point.
//
// There is no textual pattern syntax: terms are built programmatically
// through term.Builder, either directly or via the sugar package's
// combinators. This mirrors a library with no capture groups, anchors, or
// backtracking — the algebra alone decides what a term matches.
//
// Basic usage:
//
//	re, err := bzregex.Compile(alphabet.Natural[byte](), func(b term.Builder[byte]) *term.Term[byte] {
//	    return sugar.Seq(b, sugar.Lit(b, []byte("foo")...), b.Closure(b.Symbol('!')))
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.Match([]byte("foo!!!")) {
//	    fmt.Println("matched!")
//	}
//
// Performance characteristics:
//   - Matching is a fixed sequence of map lookups per input symbol: no
//     backtracking, worst case linear in the input length.
//   - Compilation explores reachable derivatives to a fixed point; ASCF
//     rewriting keeps structurally-equal derivatives merged into one state,
//     bounding (without fully eliminating) state explosion.
//
// Limitations:
//   - No textual syntax, capture groups, or anchors — those are outside
//     this library's scope; build terms programmatically instead.
package bzregex
