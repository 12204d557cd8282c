package versioncmd

import (
	"github.com/rentahuman/rentahuman-go/internal/cmd/base"
	"github.com/rentahuman/rentahuman-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the CLI version"
}

func (c *Command) Help() string {
	return "Usage: rentahuman version\n\n  Print the CLI version.\n"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
