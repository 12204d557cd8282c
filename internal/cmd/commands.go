package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/rentahuman/rentahuman-go/internal/cmd/base"
	"github.com/rentahuman/rentahuman-go/internal/cmd/commands/booking"
	"github.com/rentahuman/rentahuman-go/internal/cmd/commands/bounty"
	"github.com/rentahuman/rentahuman-go/internal/cmd/commands/mcp"
	"github.com/rentahuman/rentahuman-go/internal/cmd/commands/search"
	"github.com/rentahuman/rentahuman-go/internal/cmd/commands/skills"
	"github.com/rentahuman/rentahuman-go/internal/cmd/commands/versioncmd"
)

// Commands is the CLI subcommand registry, populated by initCommands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	newBase := func() *base.Command {
		return &base.Command{Log: log, UI: ui}
	}

	Commands = map[string]cli.CommandFactory{
		"search": func() (cli.Command, error) {
			return &search.Command{Command: newBase()}, nil
		},
		"skills": func() (cli.Command, error) {
			return &skills.Command{Command: newBase()}, nil
		},
		"booking": func() (cli.Command, error) {
			return &booking.Command{Command: newBase()}, nil
		},
		"bounty": func() (cli.Command, error) {
			return &bounty.Command{Command: newBase()}, nil
		},
		"mcp": func() (cli.Command, error) {
			return &mcp.Command{Command: newBase()}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: newBase()}, nil
		},
	}
}
