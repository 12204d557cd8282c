package skills

import (
	"context"
	"fmt"
	"strings"

	"github.com/rentahuman/rentahuman-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "List skills humans offer on the marketplace"
}

func (c *Command) Help() string {
	return `Usage: rentahuman skills

  Print every skill currently offered on the marketplace.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	return c.FlagSet("skills")
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

	skills, err := cl.ListSkills(context.Background())
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if len(skills) == 0 {
		c.UI.Output("No skills found.")
		return 0
	}
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	c.UI.Output("Available skills: " + strings.Join(names, ", "))
	return 0
}
