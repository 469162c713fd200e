package main

import (
	"context"
	"flag"
	"os"
	"path"

	"finledger/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// shell completion; exits here when invoked by the shell
	cmp := &complete.Command{
		Sub: map[string]*complete.Command{
			"holding": {Flags: map[string]complete.Predictor{
				"d":    predict.Nothing,
				"x":    predict.Nothing,
				"lots": predict.Nothing,
			}},
			"log":    {},
			"update": {Flags: map[string]complete.Predictor{"c": predict.Set{"EUR", "USD", "GBP", "CHF"}}},
			"topic":  {Args: predict.Set{"readme", "journal", "matching", "splits", "*"}},
			"assist": {},
		},
		Flags: map[string]complete.Predictor{
			"journal": predict.Files("*.jsonl"),
			"prices":  predict.Files("*.jsonl"),
			"matches": predict.Files("*.jsonl"),
		},
	}
	cmp.Complete("pfl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
