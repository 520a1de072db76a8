package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"

	"github.com/coregx/bzregex/alphabet"
	"github.com/coregx/bzregex/dfa"
)

func runMatch() error {
	var rulesPath, ruleName string

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Match lines read from stdin against one rule from a rules.yaml file.")
	flagSet.StringVarP(&rulesPath, "rules", "r", "", "path to a rules.yaml file")
	flagSet.StringVarP(&ruleName, "rule", "n", "", "name of the rule to match against")

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
	t := rule.Pattern.Build(cb)

	b := dfa.NewBuilder[byte](alpha, cb, dfa.DefaultConfig())
	automaton, err := b.Build(t)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Bytes()
		m := dfa.NewMatcher(automaton)
		if m.AdvanceMany(line) {
			gologger.Info().Msgf("match: %s", line)
		} else {
			gologger.Verbose().Msgf("no match: %s", line)
		}
	}
	return scanner.Err()
}
