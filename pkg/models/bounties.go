package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Bounty price types.
const (
	PriceTypeFixed  = "fixed"
	PriceTypeHourly = "hourly"
)

// Bounty statuses observed from the API.
const (
	BountyStatusOpen   = "open"
	BountyStatusClosed = "closed"
)

// Bounty is an open task posting that humans apply to.
type Bounty struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	AgentType        string   `json:"agentType,omitempty"`
	EstimatedHours   float64  `json:"estimatedHours,omitempty"`
	PriceType        string   `json:"priceType,omitempty"`
	Price            float64  `json:"price"`
	Skills           []string `json:"skills,omitempty"`
	Location         string   `json:"location,omitempty"`
	Status           string   `json:"status,omitempty"`
	ApplicationCount int      `json:"applicationCount,omitempty"`
	CreatedAt        string   `json:"createdAt,omitempty"`
}

// BountyCreate is the request body for POST /bounties.
type BountyCreate struct {
	AgentType      string   `json:"agentType,omitempty"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	EstimatedHours float64  `json:"estimatedHours,omitempty"`
	PriceType      string   `json:"priceType,omitempty"`
	Price          float64  `json:"price"`
	Skills         []string `json:"skills,omitempty"`
	Location       string   `json:"location,omitempty"`
}

// Validate checks required fields before the request goes on the wire.
func (b BountyCreate) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Required),
		validation.Field(&b.Description, validation.Required),
		validation.Field(&b.Price, validation.Min(0.0)),
		validation.Field(&b.PriceType, validation.In(PriceTypeFixed, PriceTypeHourly)),
	)
}

// BountyApplication is a human's bid on a bounty. Read-only: accepting an
// application is a call against the bounty, not a mutation of this value.
type BountyApplication struct {
	ID        string  `json:"id"`
	BountyID  string  `json:"bountyId"`
	HumanID   string  `json:"humanId"`
	HumanName string  `json:"humanName,omitempty"`
	Message   string  `json:"message,omitempty"`
	Rate      float64 `json:"rate,omitempty"`
	Status    string  `json:"status,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

// AcceptResult is the response from accepting a bounty application.
type AcceptResult struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
}
