package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/rentahuman/rentahuman-go/pkg/client"
	"github.com/rentahuman/rentahuman-go/pkg/models"
)

const defaultSearchLimit = 10

func searchHumansTool(api API) Tool {
	type searchArgs struct {
		Skill   string  `mapstructure:"skill"`
		MaxRate float64 `mapstructure:"max_rate"`
		MinRate float64 `mapstructure:"min_rate"`
		Name    string  `mapstructure:"name"`
		Limit   int     `mapstructure:"limit"`
	}

	return Tool{
		Name: "search_humans",
		Description: "Search for humans available for hire on rentahuman.ai. " +
			"Filter by skill (e.g. 'Photography', 'Packages', 'In-Person Meetings'), " +
			"hourly rate range, or name. Returns a list of matching human profiles.",
		Params: []Param{
			{Name: "skill", Type: ParamString, Description: "Skill to search for (e.g. 'Photography', 'Packages', 'Meetings')"},
			{Name: "max_rate", Type: ParamNumber, Description: "Maximum hourly rate in USD"},
			{Name: "min_rate", Type: ParamNumber, Description: "Minimum hourly rate in USD"},
			{Name: "name", Type: ParamString, Description: "Filter by name (case-insensitive)"},
			{Name: "limit", Type: ParamInteger, Description: "Max results to return (1-500)"},
		},
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			var a searchArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			if a.Limit == 0 {
				a.Limit = defaultSearchLimit
			}
			humans, err := api.SearchHumans(ctx, client.SearchOptions{
				Skill:   a.Skill,
				MinRate: a.MinRate,
				MaxRate: a.MaxRate,
				Name:    a.Name,
				Limit:   a.Limit,
			})
			if err != nil {
				return "", err
			}
			if len(humans) == 0 {
				return "No humans found matching your criteria.", nil
			}
			lines := []string{fmt.Sprintf("Found %d human(s):", len(humans))}
			for _, h := range humans {
				lines = append(lines, "  - "+h.Summary())
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}

func getHumanProfileTool(api API) Tool {
	type profileArgs struct {
		HumanID string `mapstructure:"human_id"`
	}

	return Tool{
		Name: "get_human_profile",
		Description: "Get full profile for a specific human on rentahuman.ai, " +
			"including skills, availability, rate, location, and crypto wallets.",
		Params: []Param{
			{Name: "human_id", Type: ParamString, Description: "The human's ID", Required: true},
		},
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			var a profileArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			h, err := api.GetHuman(ctx, a.HumanID)
			if err != nil {
				return "", err
			}
			return formatProfile(h), nil
		},
	}
}

func formatProfile(h *models.Human) string {
	parts := []string{"Name: " + h.Name, "ID: " + h.ID}
	if h.Location != "" {
		parts = append(parts, "Location: "+h.Location)
	}
	if h.Rate > 0 {
		parts = append(parts, fmt.Sprintf("Rate: $%s/hr", formatMoney(h.Rate)))
	}
	if len(h.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(h.Skills, ", "))
	}
	if h.Bio != "" {
		parts = append(parts, "Bio: "+h.Bio)
	}
	if h.Availability != "" {
		parts = append(parts, "Availability: "+h.Availability)
	}
	if h.Rating > 0 {
		parts = append(parts, fmt.Sprintf("Rating: %.1f", h.Rating))
	}
	if h.CompletedTasks > 0 {
		parts = append(parts, fmt.Sprintf("Completed tasks: %d", h.CompletedTasks))
	}
	return strings.Join(parts, "\n")
}

func getReviewsTool(api API) Tool {
	type reviewArgs struct {
		HumanID string `mapstructure:"human_id"`
	}

	return Tool{
		Name:        "get_reviews",
		Description: "Get reviews and ratings for a specific human. Useful for evaluating reliability before booking.",
		Params: []Param{
			{Name: "human_id", Type: ParamString, Description: "The human's ID", Required: true},
		},
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			var a reviewArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			reviews, err := api.GetReviews(ctx, a.HumanID)
			if err != nil {
				return "", err
			}
			if len(reviews) == 0 {
				return "No reviews found for this human.", nil
			}
			lines := []string{fmt.Sprintf("%d review(s):", len(reviews))}
			for _, r := range reviews {
				comment := r.Comment
				if comment == "" {
					comment = "No comment"
				}
				lines = append(lines, fmt.Sprintf("  - %s/5: %s", formatMoney(r.Rating), comment))
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}

func listSkillsTool(api API) Tool {
	return Tool{
		Name:        "list_skills",
		Description: "Get all available skills that humans offer on rentahuman.ai. Useful for discovering what tasks humans can do.",
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			skills, err := api.ListSkills(ctx)
			if err != nil {
				return "", err
			}
			if len(skills) == 0 {
				return "No skills found.", nil
			}
			names := make([]string, 0, len(skills))
			for _, s := range skills {
				names = append(names, s.Name)
			}
			return "Available skills: " + strings.Join(names, ", "), nil
		},
	}
}
