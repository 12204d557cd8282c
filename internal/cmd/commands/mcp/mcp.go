package mcp

import (
	"fmt"

	"github.com/rentahuman/rentahuman-go/internal/cmd/base"
	"github.com/rentahuman/rentahuman-go/internal/version"
	"github.com/rentahuman/rentahuman-go/pkg/tools/mcptools"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Serve the tool catalog over MCP on stdin/stdout"
}

func (c *Command) Help() string {
	return `Usage: rentahuman mcp

  Run a Model Context Protocol server over stdin/stdout exposing every
  marketplace tool (search, bookings, bounties, conversations). Point an
  MCP-capable agent runtime at this command to let it hire humans.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	return c.FlagSet("mcp")
}

func (c *Command) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cl, err := c.Client()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if !cl.HasAPIKey() {
		c.Log.Warn("no API key configured; write tools will be rejected by the API")
	}

	srv := mcptools.NewServer(cl, version.Version)
	c.Log.Info("serving MCP over stdio", "version", version.Version)
	if err := mcptools.ServeStdio(srv); err != nil {
		c.UI.Error(fmt.Sprintf("mcp server exited: %v", err))
		return 1
	}
	return 0
}
