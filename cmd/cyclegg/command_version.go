package main

import "fmt"

// VersionCommand implements cli.Command for "cyclegg version".
type VersionCommand struct {
	Version string
}

func (c *VersionCommand) Help() string { return "Print the cyclegg version." }

func (c *VersionCommand) Synopsis() string { return "Print the cyclegg version" }

func (c *VersionCommand) Run(_ []string) int {
	fmt.Printf("cyclegg %s\n", c.Version)
	return 0
}
