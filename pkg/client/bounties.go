package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rentahuman/rentahuman-go/pkg/models"
)

// CreateBounty posts a task bounty for humans to apply to. Requires an API
// key.
func (c *Client) CreateBounty(ctx context.Context, bounty models.BountyCreate) (*models.Bounty, error) {
	if bounty.AgentType == "" {
		bounty.AgentType = c.agentID
	}
	if bounty.PriceType == "" {
		bounty.PriceType = models.PriceTypeFixed
	}
	if err := bounty.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bounty request: %w", err)
	}

	body, err := c.post(ctx, "/bounties", bounty)
	if err != nil {
		return nil, err
	}

	var created models.Bounty
	if err := json.Unmarshal(c.unwrap(body, "bounty"), &created); err != nil {
		return nil, fmt.Errorf("failed to parse bounty response: %w", err)
	}
	return &created, nil
}

// GetBounty returns bounty details by id.
func (c *Client) GetBounty(ctx context.Context, bountyID string) (*models.Bounty, error) {
	bountyID, err := sanitizePathParam("bounty id", bountyID)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/bounties/"+bountyID, nil)
	if err != nil {
		return nil, err
	}

	var bounty models.Bounty
	if err := json.Unmarshal(c.unwrap(body, "bounty"), &bounty); err != nil {
		return nil, fmt.Errorf("failed to parse bounty response: %w", err)
	}
	return &bounty, nil
}

// ListBounties lists open bounties. A limit of 0 selects the default page
// size.
func (c *Client) ListBounties(ctx context.Context, limit int) ([]models.Bounty, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(searchLimit(limit)))

	body, err := c.get(ctx, "/bounties", query)
	if err != nil {
		return nil, err
	}

	var bounties []models.Bounty
	if err := json.Unmarshal(c.unwrap(body, "bounties"), &bounties); err != nil {
		return nil, fmt.Errorf("failed to parse bounties response: %w", err)
	}
	return bounties, nil
}

// UpdateBounty applies a partial update to a bounty, e.g. closing it. Only
// the provided fields are sent.
func (c *Client) UpdateBounty(ctx context.Context, bountyID string, updates map[string]any) (*models.Bounty, error) {
	bountyID, err := sanitizePathParam("bounty id", bountyID)
	if err != nil {
		return nil, err
	}

	body, err := c.patch(ctx, "/bounties/"+bountyID, updates)
	if err != nil {
		return nil, err
	}

	var bounty models.Bounty
	if err := json.Unmarshal(c.unwrap(body, "bounty"), &bounty); err != nil {
		return nil, fmt.Errorf("failed to parse bounty response: %w", err)
	}
	return &bounty, nil
}

// GetBountyApplications returns the applications humans have submitted for a
// bounty.
func (c *Client) GetBountyApplications(ctx context.Context, bountyID string) ([]models.BountyApplication, error) {
	bountyID, err := sanitizePathParam("bounty id", bountyID)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/bounties/"+bountyID+"/applications", nil)
	if err != nil {
		return nil, err
	}

	var applications []models.BountyApplication
	if err := json.Unmarshal(c.unwrap(body, "applications"), &applications); err != nil {
		return nil, fmt.Errorf("failed to parse applications response: %w", err)
	}
	return applications, nil
}

// AcceptApplication accepts a bounty application, hiring that human. This is
// a side-effecting call against the bounty; the application value itself is
// never mutated locally.
func (c *Client) AcceptApplication(ctx context.Context, bountyID, applicationID string) (*models.AcceptResult, error) {
	bountyID, err := sanitizePathParam("bounty id", bountyID)
	if err != nil {
		return nil, err
	}
	applicationID, err = sanitizePathParam("application id", applicationID)
	if err != nil {
		return nil, err
	}

	body, err := c.post(ctx, "/bounties/"+bountyID+"/applications/"+applicationID+"/accept", nil)
	if err != nil {
		return nil, err
	}

	var result models.AcceptResult
	if len(body) > 0 {
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("failed to parse accept response: %w", err)
		}
	}
	return &result, nil
}
