package search

import (
	"context"
	"fmt"

	"github.com/rentahuman/rentahuman-go/internal/cmd/base"
	"github.com/rentahuman/rentahuman-go/pkg/client"
)

type Command struct {
	*base.Command

	flagSkill   string
	flagMinRate float64
	flagMaxRate float64
	flagName    string
	flagLimit   int
}

func (c *Command) Synopsis() string {
	return "Search for humans available for hire"
}

func (c *Command) Help() string {
	return `Usage: rentahuman search [options]

  Search marketplace humans by skill, hourly rate range, or name, and
  print a one-line summary per match. Works without an API key.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := c.FlagSet("search")
	f.StringVar(&c.flagSkill, "skill", "", "Skill to search for, e.g. 'Photography'.")
	f.Float64Var(&c.flagMinRate, "min-rate", 0, "Minimum hourly rate in USD.")
	f.Float64Var(&c.flagMaxRate, "max-rate", 0, "Maximum hourly rate in USD.")
	f.StringVar(&c.flagName, "name", "", "Filter by name (case-insensitive).")
	f.IntVar(&c.flagLimit, "limit", 0, "Maximum results (1-500).")
	return f
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

	humans, err := cl.SearchHumans(context.Background(), client.SearchOptions{
		Skill:   c.flagSkill,
		MinRate: c.flagMinRate,
		MaxRate: c.flagMaxRate,
		Name:    c.flagName,
		Limit:   c.flagLimit,
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if len(humans) == 0 {
		c.UI.Output("No humans found matching your criteria.")
		return 0
	}
	c.UI.Output(fmt.Sprintf("Found %d human(s):", len(humans)))
	for _, h := range humans {
		c.UI.Output("  - " + h.Summary())
	}
	return 0
}
