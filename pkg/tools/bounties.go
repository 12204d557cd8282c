package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/rentahuman/rentahuman-go/pkg/models"
)

func createBountyTool(api API) Tool {
	type bountyArgs struct {
		Title          string   `mapstructure:"title"`
		Description    string   `mapstructure:"description"`
		Price          float64  `mapstructure:"price"`
		EstimatedHours float64  `mapstructure:"estimated_hours"`
		Skills         []string `mapstructure:"skills"`
		Location       string   `mapstructure:"location"`
	}

	return Tool{
		Name: "create_bounty",
		Description: "Post a task bounty on rentahuman.ai for humans to apply to. " +
			"Describe what needs to be done, set a price, and optionally specify " +
			"required skills and location. Humans will apply and you can review them.",
		Params: []Param{
			{Name: "title", Type: ParamString, Description: "Task title", Required: true},
			{Name: "description", Type: ParamString, Description: "Detailed description of what needs to be done", Required: true},
			{Name: "price", Type: ParamNumber, Description: "Fixed price in USD", Required: true},
			{Name: "estimated_hours", Type: ParamNumber, Description: "Estimated hours to complete"},
			{Name: "skills", Type: ParamStringArray, Description: "Required skills"},
			{Name: "location", Type: ParamString, Description: "Required location (city/region)"},
		},
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			var a bountyArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			bounty, err := api.CreateBounty(ctx, models.BountyCreate{
				Title:          a.Title,
				Description:    a.Description,
				Price:          a.Price,
				EstimatedHours: a.EstimatedHours,
				Skills:         a.Skills,
				Location:       a.Location,
			})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Bounty posted!\n  ID: %s\n  Title: %s\n  Price: $%s\n  Status: %s",
				bounty.ID, bounty.Title, formatMoney(bounty.Price), bounty.Status), nil
		},
	}
}

func getBountyTool(api API) Tool {
	type bountyArgs struct {
		BountyID string `mapstructure:"bounty_id"`
	}

	return Tool{
		Name:        "get_bounty",
		Description: "Get details of a specific bounty by ID.",
		Params: []Param{
			{Name: "bounty_id", Type: ParamString, Description: "The bounty ID", Required: true},
		},
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			var a bountyArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			b, err := api.GetBounty(ctx, a.BountyID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf(
				"Bounty %s: %s\n  Description: %s\n  Price: $%s (%s)\n  Status: %s\n  Applications: %d",
				b.ID, b.Title, b.Description, formatMoney(b.Price), b.PriceType, b.Status, b.ApplicationCount), nil
		},
	}
}

func getBountyApplicationsTool(api API) Tool {
	type applicationsArgs struct {
		BountyID string `mapstructure:"bounty_id"`
	}

	return Tool{
		Name:        "get_bounty_applications",
		Description: "View all applications from humans for a specific bounty. Use this to review candidates.",
		Params: []Param{
			{Name: "bounty_id", Type: ParamString, Description: "The bounty ID", Required: true},
		},
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			var a applicationsArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			apps, err := api.GetBountyApplications(ctx, a.BountyID)
			if err != nil {
				return "", err
			}
			if len(apps) == 0 {
				return "No applications yet.", nil
			}
			lines := []string{fmt.Sprintf("%d application(s):", len(apps))}
			for _, app := range apps {
				message := app.Message
				// Truncate on runes so a multi-byte character is never split.
				if runes := []rune(message); len(runes) > 80 {
					message = string(runes[:80]) + "..."
				}
				lines = append(lines, fmt.Sprintf("  - %s (%s): $%s/hr | %s",
					app.HumanName, app.HumanID, formatMoney(app.Rate), message))
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}

func acceptApplicationTool(api API) Tool {
	type acceptArgs struct {
		BountyID      string `mapstructure:"bounty_id"`
		ApplicationID string `mapstructure:"application_id"`
	}

	return Tool{
		Name:        "accept_application",
		Description: "Accept a specific application for a bounty. This hires the human for the task.",
		Params: []Param{
			{Name: "bounty_id", Type: ParamString, Description: "The bounty ID", Required: true},
			{Name: "application_id", Type: ParamString, Description: "The application ID to accept", Required: true},
		},
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			var a acceptArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			result, err := api.AcceptApplication(ctx, a.BountyID, a.ApplicationID)
			if err != nil {
				return "", err
			}
			message := result.Message
			if message == "" {
				message = "Human has been hired."
			}
			return "Application accepted! " + message, nil
		},
	}
}
