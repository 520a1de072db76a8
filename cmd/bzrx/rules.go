package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coregx/bzregex/sugar"
	"github.com/coregx/bzregex/term"
)

// Node is one node of a rule file's pattern mini-language: a YAML-friendly
// stand-in for a term.Builder call tree, since the library itself parses no
// textual regex syntax (that is outside its scope, not this CLI's).
type Node struct {
	Literal string `yaml:"literal,omitempty"`
	Seq     []Node `yaml:"seq,omitempty"`
	Or      []Node `yaml:"or,omitempty"`
	Star    *Node  `yaml:"star,omitempty"`
	Plus    *Node  `yaml:"plus,omitempty"`
	Opt     *Node  `yaml:"opt,omitempty"`
}

// Build compiles n through b, recursively, into a *term.Term[byte].
func (n Node) Build(b term.Builder[byte]) *term.Term[byte] {
	switch {
	case n.Literal != "":
		return sugar.Lit(b, []byte(n.Literal)...)
	case len(n.Seq) > 0:
		ts := make([]*term.Term[byte], len(n.Seq))
		for i, c := range n.Seq {
			ts[i] = c.Build(b)
		}
		return sugar.Seq(b, ts...)
	case len(n.Or) > 0:
		ts := make([]*term.Term[byte], len(n.Or))
		for i, c := range n.Or {
			ts[i] = c.Build(b)
		}
		return sugar.Alt(b, ts...)
	case n.Star != nil:
		return b.Closure(n.Star.Build(b))
	case n.Plus != nil:
		return sugar.Plus(b, n.Plus.Build(b))
	case n.Opt != nil:
		return sugar.Opt(b, n.Opt.Build(b))
	default:
		return b.EmptyString()
	}
}

// Rule names one pattern in a rule file.
type Rule struct {
	Name    string `yaml:"name"`
	Pattern Node   `yaml:"pattern"`
}

// RuleFile is the top-level shape of a rules.yaml document.
type RuleFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRuleFile reads and parses path as a RuleFile.
func LoadRuleFile(path string) (*RuleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bzrx: reading %s: %w", path, err)
	}
	var rf RuleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("bzrx: parsing %s: %w", path, err)
	}
	return &rf, nil
}

// Find returns the rule named name, or an error if no such rule exists.
func (rf *RuleFile) Find(name string) (*Rule, error) {
	for i := range rf.Rules {
		if rf.Rules[i].Name == name {
			return &rf.Rules[i], nil
		}
	}
	return nil, fmt.Errorf("bzrx: no rule named %q", name)
}
