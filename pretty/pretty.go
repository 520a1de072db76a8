// Package pretty renders regex terms as human-readable strings, using the
// conventional symbols ∅, ε, juxtaposition for concatenation, *, |, &, and
// ¬. It is external to the algebraic core (spec.md §1): the core never
// needs to print itself, only a diagnostic caller does.
package pretty

import (
	"fmt"
	"strings"

	"github.com/coregx/bzregex/term"
)

// tier implements the precedence table of spec.md §6: Closure/Complement
// bind tighter than Concat/Or/And; leaves never need parenthesizing.
func tier(k term.Kind) int {
	switch k {
	case term.KindClosure, term.KindComplement:
		return 2
	case term.KindConcat, term.KindOr, term.KindAnd:
		return 1
	default:
		return 3
	}
}

// needsParens decides whether a child must be wrapped in parentheses under
// parent. Children of strictly tighter tier never need parens; children of
// strictly looser tier always do. Within the same tier, Concat/Or/And are
// each individually associative (so a chain of the same operator prints
// without parens) but the three operators carry no defined relative
// precedence among themselves, so mixing two different same-tier operators
// (or stacking Closure under Complement or vice versa) requires parens to
// keep the printed form unambiguous.
func needsParens(parentKind, childKind term.Kind) bool {
	pt, ct := tier(parentKind), tier(childKind)
	switch {
	case ct > pt:
		return false
	case ct < pt:
		return true
	default:
		return childKind != parentKind
	}
}

// Print renders t as a string, using fmtSym to render individual symbols.
func Print[S comparable](t *term.Term[S], fmtSym func(S) string) string {
	var b strings.Builder
	writeTop(&b, t, fmtSym)
	return b.String()
}

// Default renders t using fmt's "%v" for symbols — the common case for
// alphabets without a bespoke textual form.
func Default[S comparable](t *term.Term[S]) string {
	return Print(t, func(s S) string { return fmt.Sprintf("%v", s) })
}

func writeTop[S comparable](b *strings.Builder, t *term.Term[S], fmtSym func(S) string) {
	write(b, t, fmtSym)
}

func write[S comparable](b *strings.Builder, t *term.Term[S], fmtSym func(S) string) {
	switch t.Kind() {
	case term.KindEmptySet:
		b.WriteRune('∅')
	case term.KindEmptyString:
		b.WriteRune('ε')
	case term.KindSymbol:
		b.WriteString(fmtSym(t.Sym()))
	case term.KindClosure:
		writeOperand(b, t.Kind(), t.Left(), fmtSym)
		b.WriteByte('*')
	case term.KindComplement:
		b.WriteRune('¬')
		writeOperand(b, t.Kind(), t.Left(), fmtSym)
	case term.KindConcat:
		writeOperand(b, t.Kind(), t.Left(), fmtSym)
		writeOperand(b, t.Kind(), t.Right(), fmtSym)
	case term.KindOr:
		writeOperand(b, t.Kind(), t.Left(), fmtSym)
		b.WriteByte('|')
		writeOperand(b, t.Kind(), t.Right(), fmtSym)
	case term.KindAnd:
		writeOperand(b, t.Kind(), t.Left(), fmtSym)
		b.WriteByte('&')
		writeOperand(b, t.Kind(), t.Right(), fmtSym)
	}
}

func writeOperand[S comparable](b *strings.Builder, parentKind term.Kind, child *term.Term[S], fmtSym func(S) string) {
	paren := needsParens(parentKind, child.Kind())
	if paren {
		b.WriteByte('(')
	}
	write(b, child, fmtSym)
	if paren {
		b.WriteByte(')')
	}
}
