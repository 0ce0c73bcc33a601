package cmd

import (
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Run is the entry point for the CLI, kept outside package main so that it
// can be driven from tests.
func Run(args []string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := run(args); err != nil {
		log.Fatal().Err(err).Msg("trie-mcp")
	}
}

func run(args []string) error {
	// Make config path discoverable by sub-commands before flags are parsed.
	setConfigPath(extractConfigPath(args))

	opts := &Options{}
	var first string
	if len(args) > 0 {
		first = args[0]
	}
	opts.Init(first)

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	return err
}

// extractConfigPath finds the -f/--config option in the raw argument list so
// that the service can be configured before any sub-command executes.
func extractConfigPath(args []string) string {
	for i, a := range args {
		switch a {
		case "-f", "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		default:
			if strings.HasPrefix(a, "--config=") {
				return strings.TrimPrefix(a, "--config=")
			}
		}
	}
	return ""
}
