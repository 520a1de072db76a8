package main

import (
	"fmt"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"

	"github.com/coregx/bzregex/alphabet"
	"github.com/coregx/bzregex/pretty"
	"github.com/coregx/bzregex/term"
)

func runDerive() error {
	var rulesPath, ruleName, word string

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Print the successive derivatives of a rule as it consumes a word, one byte at a time.")
	flagSet.StringVarP(&rulesPath, "rules", "r", "", "path to a rules.yaml file")
	flagSet.StringVarP(&ruleName, "rule", "n", "", "name of the rule to derive")
	flagSet.StringVarP(&word, "word", "w", "", "word to consume, one byte per character")

	if err := flagSet.Parse(); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}
	if rulesPath == "" || ruleName == "" {
		return fmt.Errorf("-rules and -rule are both required")
	}

	rf, err := LoadRuleFile(rulesPath)
	if err != nil {
		return err
	}
	rule, err := rf.Find(ruleName)
	if err != nil {
		return err
	}

	alpha := alphabet.Natural[byte]()
	cb := newCanonicalBuilder(alpha)
	current := rule.Pattern.Build(cb)

	gologger.Info().Msgf("%s = %s", rule.Name, pretty.PrintColor(current, formatByte))
	for _, b := range []byte(word) {
		current = term.DeriveSymbol(current, b, cb)
		gologger.Info().Msgf("  after %q: %s (nullable=%v)", string(b), pretty.PrintColor(current, formatByte), term.IsNullable(current))
	}
	return nil
}
