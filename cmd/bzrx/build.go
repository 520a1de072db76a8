package main

import (
	"fmt"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"

	"github.com/coregx/bzregex/alphabet"
	"github.com/coregx/bzregex/bytesregex"
	"github.com/coregx/bzregex/dfa"
	"github.com/coregx/bzregex/pretty"
)

func runBuild() error {
	var rulesPath string
	var prune bool

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Compile every rule in a rules.yaml file and print its canonical form.")
	flagSet.StringVarP(&rulesPath, "rules", "r", "", "path to a rules.yaml file")
	flagSet.BoolVarP(&prune, "prune", "p", false, "drop unreachable states from each compiled automaton before reporting its size")

	if err := flagSet.Parse(); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}
	if rulesPath == "" {
		return fmt.Errorf("-rules is required")
	}

	rf, err := LoadRuleFile(rulesPath)
	if err != nil {
		return err
	}

	alpha := alphabet.Natural[byte]()
	cfg := dfa.DefaultConfig()
	cfg.Prune = prune
	for _, rule := range rf.Rules {
		cb := newCanonicalBuilder(alpha)
		t := rule.Pattern.Build(cb)

		b := dfa.NewBuilder[byte](alpha, cb, cfg)
		automaton, err := b.Build(t)
		if err != nil {
			gologger.Error().Msgf("%s: %v", rule.Name, err)
			continue
		}
		if cfg.Prune {
			automaton = dfa.Prune(automaton)
		}

		seq := bytesregex.ExtractLiterals(t)
		gologger.Info().Msgf("%s = %s (%d states, %d extracted literals)",
			rule.Name, pretty.PrintColor(t, formatByte), automaton.Len(), seq.Len())
	}
	return nil
}

func formatByte(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return string(b)
	}
	return fmt.Sprintf("\\x%02x", b)
}
