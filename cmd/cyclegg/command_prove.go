package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/aditya-giri/cyclegg/internal/config"
	"github.com/aditya-giri/cyclegg/internal/definitions"
	"github.com/aditya-giri/cyclegg/pkg/prover"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/ryanuber/columnize"
)

// ProveCommand implements cli.Command for "cyclegg prove <file>": load a
// definitions file and attempt every theorem it declares, printing a
// VALID/INVALID/UNKNOWN table (spec.md §6 "Output surface").
type ProveCommand struct{}

func (c *ProveCommand) Synopsis() string { return "Prove every theorem in a definitions file" }

func (c *ProveCommand) Help() string {
	return `Usage: cyclegg prove [options] <definitions-file>

  Loads a definitions file (datatypes, function rewrites, and theorems)
  and attempts to prove each declared theorem.

Options:
  -max-split-depth=2    Cap on nested case-split depth per variable.
  -log-level=warn       Log verbosity (trace, debug, info, warn, error).
  -save-graphs          Dump each saturated goal's e-graph to ./target.
`
}

func (c *ProveCommand) Run(args []string) int {
	flags := flag.NewFlagSet("prove", flag.ContinueOnError)
	maxSplitDepth := flags.Int("max-split-depth", 2, "maximum case-split depth")
	logLevel := flags.String("log-level", "warn", "log level")
	saveGraphs := flags.Bool("save-graphs", false, "dump e-graphs to ./target")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, c.Help())
		return 1
	}

	src, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", flags.Arg(0), err)
		return 1
	}

	defs, err := definitions.Parse(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing %s: %v\n", flags.Arg(0), err)
		return 1
	}
	if len(defs.Conjectures) == 0 {
		fmt.Fprintln(os.Stderr, "no theorems declared")
		return 1
	}

	logger := hclog.New(&hclog.LoggerOptions{Name: "cyclegg", Level: hclog.LevelFromString(*logLevel)})
	cfg := config.Default()
	cfg.MaxSplitDepth = *maxSplitDepth
	cfg.LogLevel = *logLevel
	cfg.SaveGraphs = *saveGraphs
	cfg.Logger = logger
	if *saveGraphs {
		cfg.Dumper = newDotDumper("target", logger)
	}

	rows := []string{"Theorem | Result | Elapsed"}
	allValid := true
	for _, conj := range defs.Conjectures {
		start := time.Now()
		goal := prover.Top(conj.Name, conj.LHS, conj.RHS, conj.Params, defs.Env, defs.Global, defs.Rewrites, cfg)
		outcome := prover.Prove(goal)

		if outcome != prover.Valid {
			allValid = false
		}
		rows = append(rows, fmt.Sprintf("%s | %s | finished %s", conj.Name, colorOutcome(outcome), humanize.Time(start)))
	}
	fmt.Println(columnize.SimpleFormat(rows))

	if !allValid {
		return 1
	}
	return 0
}

func colorOutcome(o prover.Outcome) string {
	switch o {
	case prover.Valid:
		return color.GreenString(o.String())
	case prover.Invalid:
		return color.RedString(o.String())
	default:
		return color.YellowString(o.String())
	}
}
