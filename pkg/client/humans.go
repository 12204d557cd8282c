package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rentahuman/rentahuman-go/pkg/models"
)

// SearchOptions filters a human search. Zero-value fields are omitted from
// the query entirely.
type SearchOptions struct {
	Skill   string  // skill name, e.g. "Packages", "Photography"
	MinRate float64 // minimum hourly rate in USD
	MaxRate float64 // maximum hourly rate in USD
	Name    string  // case-insensitive name filter
	Limit   int     // max results, clamped to [1, 500]; 0 selects the default of 20
	Offset  int     // pagination offset, floored at 0
}

// SearchHumans searches for available humans. No API key required.
func (c *Client) SearchHumans(ctx context.Context, opts SearchOptions) ([]models.Human, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(searchLimit(opts.Limit)))
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}
	query.Set("offset", strconv.Itoa(offset))
	if opts.Skill != "" {
		query.Set("skill", opts.Skill)
	}
	if opts.MinRate > 0 {
		query.Set("minRate", formatFloat(opts.MinRate))
	}
	if opts.MaxRate > 0 {
		query.Set("maxRate", formatFloat(opts.MaxRate))
	}
	if opts.Name != "" {
		query.Set("name", opts.Name)
	}

	body, err := c.get(ctx, "/humans", query)
	if err != nil {
		return nil, err
	}

	var humans []models.Human
	if err := json.Unmarshal(c.unwrap(body, "humans"), &humans); err != nil {
		return nil, fmt.Errorf("failed to parse humans response: %w", err)
	}
	return humans, nil
}

// GetHuman returns the full profile for a specific human.
func (c *Client) GetHuman(ctx context.Context, humanID string) (*models.Human, error) {
	humanID, err := sanitizePathParam("human id", humanID)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/humans/"+humanID, nil)
	if err != nil {
		return nil, err
	}

	var human models.Human
	if err := json.Unmarshal(c.unwrap(body, "human"), &human); err != nil {
		return nil, fmt.Errorf("failed to parse human response: %w", err)
	}
	return &human, nil
}

// ListSkills returns all skills offered on the platform. The endpoint may
// return bare skill names or full skill objects; both decode.
func (c *Client) ListSkills(ctx context.Context) ([]models.Skill, error) {
	body, err := c.get(ctx, "/skills", nil)
	if err != nil {
		return nil, err
	}

	var skills models.SkillList
	if err := json.Unmarshal(c.unwrap(body, "skills"), &skills); err != nil {
		return nil, fmt.Errorf("failed to parse skills response: %w", err)
	}
	return skills, nil
}

// GetReviews returns reviews and ratings for a human.
func (c *Client) GetReviews(ctx context.Context, humanID string) ([]models.Review, error) {
	humanID, err := sanitizePathParam("human id", humanID)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/humans/"+humanID+"/reviews", nil)
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := json.Unmarshal(c.unwrap(body, "reviews"), &reviews); err != nil {
		return nil, fmt.Errorf("failed to parse reviews response: %w", err)
	}
	return reviews, nil
}
