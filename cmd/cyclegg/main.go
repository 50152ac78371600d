// Command cyclegg is the CLI front end for the prover: it loads a
// definitions file, runs each declared theorem, and reports VALID,
// INVALID, or UNKNOWN for each. Grounded on hashicorp-nomad/command's
// cli.Command dispatch pattern (a cli.CLI with a name->factory map).
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
)

// Version is stamped at build time via -ldflags; defaults to "dev".
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	c := cli.NewCLI("cyclegg", Version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"prove":   func() (cli.Command, error) { return &ProveCommand{}, nil },
		"version": func() (cli.Command, error) { return &VersionCommand{Version: Version}, nil },
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitStatus
}
