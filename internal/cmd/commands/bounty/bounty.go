package bounty

import (
	"context"
	"fmt"
	"strings"

	"github.com/rentahuman/rentahuman-go/internal/cmd/base"
	"github.com/rentahuman/rentahuman-go/pkg/client"
	"github.com/rentahuman/rentahuman-go/pkg/models"
)

type Command struct {
	*base.Command

	flagID          string
	flagLimit       int
	flagTitle       string
	flagDescription string
	flagPrice       float64
	flagPriceType   string
	flagHours       float64
	flagSkills      string
	flagLocation    string
	flagApplication string
}

func (c *Command) Synopsis() string {
	return "Post, show, or list bounties and manage applications"
}

func (c *Command) Help() string {
	return `Usage: rentahuman bounty [mode] [options]

  Modes:
    post          Post a bounty: -title, -description, -price, and
                  optionally -price-type, -hours, -skills, -location.
    show          Show one bounty by -id.
    list          List open bounties (default mode; a bare -id implies
                  show).
    applications  List applications for the bounty given by -id.
    accept        Accept an application: -id and -application.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := c.FlagSet("bounty")
	f.StringVar(&c.flagID, "id", "", "Bounty ID.")
	f.IntVar(&c.flagLimit, "limit", 0, "Maximum results.")
	f.StringVar(&c.flagTitle, "title", "", "Task title (post).")
	f.StringVar(&c.flagDescription, "description", "", "Detailed description of what needs to be done (post).")
	f.Float64Var(&c.flagPrice, "price", 0, "Price in USD (post).")
	f.StringVar(&c.flagPriceType, "price-type", "", "Price type: fixed or hourly (post).")
	f.Float64Var(&c.flagHours, "hours", 0, "Estimated hours to complete (post).")
	f.StringVar(&c.flagSkills, "skills", "", "Required skills, comma-separated (post).")
	f.StringVar(&c.flagLocation, "location", "", "Required location, city or region (post).")
	f.StringVar(&c.flagApplication, "application", "", "Application ID to accept (accept).")
	return f
}

func (c *Command) Run(args []string) int {
	mode := ""
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		mode = args[0]
		args = args[1:]
	}

	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if mode == "" {
		if c.flagID != "" {
			mode = "show"
		} else {
			mode = "list"
		}
	}

	cl, err := c.Client()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	ctx := context.Background()

	switch mode {
	case "post":
		return c.post(ctx, cl)
	case "show":
		return c.show(ctx, cl)
	case "list":
		return c.list(ctx, cl)
	case "applications":
		return c.applications(ctx, cl)
	case "accept":
		return c.accept(ctx, cl)
	default:
		c.UI.Error(fmt.Sprintf("unknown mode %q (expected post, show, list, applications, or accept)", mode))
		return 1
	}
}

func (c *Command) post(ctx context.Context, cl *client.Client) int {
	var skills []string
	for _, s := range strings.Split(c.flagSkills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	bounty, err := cl.CreateBounty(ctx, models.BountyCreate{
		Title:          c.flagTitle,
		Description:    c.flagDescription,
		Price:          c.flagPrice,
		PriceType:      c.flagPriceType,
		EstimatedHours: c.flagHours,
		Skills:         skills,
		Location:       c.flagLocation,
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	c.UI.Output("Bounty posted!")
	c.UI.Output(fmt.Sprintf("  ID: %s", bounty.ID))
	c.UI.Output(fmt.Sprintf("  Title: %s", bounty.Title))
	c.UI.Output(fmt.Sprintf("  Price: $%g", bounty.Price))
	c.UI.Output(fmt.Sprintf("  Status: %s", bounty.Status))
	return 0
}

func (c *Command) show(ctx context.Context, cl *client.Client) int {
	if c.flagID == "" {
		c.UI.Error("show requires -id")
		return 1
	}
	b, err := cl.GetBounty(ctx, c.flagID)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	c.UI.Output(fmt.Sprintf("Bounty %s: %s", b.ID, b.Title))
	c.UI.Output(fmt.Sprintf("  Description: %s", b.Description))
	c.UI.Output(fmt.Sprintf("  Price: $%g (%s)", b.Price, b.PriceType))
	c.UI.Output(fmt.Sprintf("  Status: %s", b.Status))
	c.UI.Output(fmt.Sprintf("  Applications: %d", b.ApplicationCount))
	return 0
}

func (c *Command) list(ctx context.Context, cl *client.Client) int {
	bounties, err := cl.ListBounties(ctx, c.flagLimit)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if len(bounties) == 0 {
		c.UI.Output("No bounties found.")
		return 0
	}
	c.UI.Output(fmt.Sprintf("%d bounty(ies):", len(bounties)))
	for _, b := range bounties {
		c.UI.Output(fmt.Sprintf("  - %s: %s ($%g) [%s]", b.ID, b.Title, b.Price, b.Status))
	}
	return 0
}

func (c *Command) applications(ctx context.Context, cl *client.Client) int {
	if c.flagID == "" {
		c.UI.Error("applications requires -id")
		return 1
	}
	apps, err := cl.GetBountyApplications(ctx, c.flagID)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if len(apps) == 0 {
		c.UI.Output("No applications yet.")
		return 0
	}
	c.UI.Output(fmt.Sprintf("%d application(s):", len(apps)))
	for _, a := range apps {
		c.UI.Output(fmt.Sprintf("  - %s (%s): $%g/hr [%s]", a.HumanName, a.HumanID, a.Rate, a.Status))
	}
	return 0
}

func (c *Command) accept(ctx context.Context, cl *client.Client) int {
	if c.flagID == "" || c.flagApplication == "" {
		c.UI.Error("accept requires -id and -application")
		return 1
	}
	result, err := cl.AcceptApplication(ctx, c.flagID, c.flagApplication)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	message := result.Message
	if message == "" {
		message = "Human has been hired."
	}
	c.UI.Output("Application accepted! " + message)
	return 0
}
