// Command bzrx is a diagnostic CLI over bzregex's byte-alphabet terms: load
// named rules from a YAML file, build them, pretty-print them, match
// stdin against them, or walk their successive derivatives.
package main

import (
	"os"

	"github.com/projectdiscovery/gologger"
)

func main() {
	if len(os.Args) < 2 {
		gologger.Fatal().Msgf("usage: bzrx <build|match|derive> [flags]")
	}

	sub := os.Args[1]
	// goflags, like stdlib flag, parses its owning process's os.Args; shift
	// the subcommand token off so each subcommand's FlagSet only sees its
	// own flags.
	os.Args = append([]string{os.Args[0]}, os.Args[2:]...)

	var err error
	switch sub {
	case "build":
		err = runBuild()
	case "match":
		err = runMatch()
	case "derive":
		err = runDerive()
	default:
		gologger.Fatal().Msgf("unknown subcommand %q (want build|match|derive)", sub)
	}

	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
}
