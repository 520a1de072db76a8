package pretty

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/coregx/bzregex/term"
)

// operator styling shared by every colorized render. Operators are dimmed,
// symbols are bold, so a long derivative chain stays readable in a terminal.
var (
	operatorColor = color.New(color.Faint)
	symbolColor   = color.New(color.Bold)
)

// PrintColor renders t the same way Print does, but wraps operators and
// symbols with ANSI styling for CLI diagnostics: operators dimmed, symbols
// bold. Intended for terminals; output honors color.NoColor the way every
// fatih/color caller's does, so it degrades to plain text when piped.
func PrintColor[S comparable](t *term.Term[S], fmtSym func(S) string) string {
	var b strings.Builder
	writeColor(&b, t, fmtSym)
	return b.String()
}

// DefaultColor is PrintColor with fmt's "%v" rendering of symbols.
func DefaultColor[S comparable](t *term.Term[S]) string {
	return PrintColor(t, func(s S) string { return fmt.Sprintf("%v", s) })
}

func writeColor[S comparable](b *strings.Builder, t *term.Term[S], fmtSym func(S) string) {
	switch t.Kind() {
	case term.KindEmptySet:
		b.WriteString(operatorColor.Sprint("∅"))
	case term.KindEmptyString:
		b.WriteString(operatorColor.Sprint("ε"))
	case term.KindSymbol:
		b.WriteString(symbolColor.Sprint(fmtSym(t.Sym())))
	case term.KindClosure:
		writeColorOperand(b, t.Kind(), t.Left(), fmtSym)
		b.WriteString(operatorColor.Sprint("*"))
	case term.KindComplement:
		b.WriteString(operatorColor.Sprint("¬"))
		writeColorOperand(b, t.Kind(), t.Left(), fmtSym)
	case term.KindConcat:
		writeColorOperand(b, t.Kind(), t.Left(), fmtSym)
		writeColorOperand(b, t.Kind(), t.Right(), fmtSym)
	case term.KindOr:
		writeColorOperand(b, t.Kind(), t.Left(), fmtSym)
		b.WriteString(operatorColor.Sprint("|"))
		writeColorOperand(b, t.Kind(), t.Right(), fmtSym)
	case term.KindAnd:
		writeColorOperand(b, t.Kind(), t.Left(), fmtSym)
		b.WriteString(operatorColor.Sprint("&"))
		writeColorOperand(b, t.Kind(), t.Right(), fmtSym)
	}
}

func writeColorOperand[S comparable](b *strings.Builder, parentKind term.Kind, child *term.Term[S], fmtSym func(S) string) {
	paren := needsParens(parentKind, child.Kind())
	if paren {
		b.WriteString(operatorColor.Sprint("("))
	}
	writeColor(b, child, fmtSym)
	if paren {
		b.WriteString(operatorColor.Sprint(")"))
	}
}
