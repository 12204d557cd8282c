// Package tools exposes the rentahuman.ai client operations as a catalog of
// named, schema-described tools that return plain-text results for agent
// consumption. The catalog is framework-neutral; adapters (such as the MCP
// binding in the mcptools subpackage) translate it into their own tool
// representation.
package tools

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"github.com/rentahuman/rentahuman-go/pkg/client"
	"github.com/rentahuman/rentahuman-go/pkg/models"
)

// API is the subset of the client surface the tools call. *client.Client
// satisfies it; tests substitute a fake.
type API interface {
	SearchHumans(ctx context.Context, opts client.SearchOptions) ([]models.Human, error)
	GetHuman(ctx context.Context, humanID string) (*models.Human, error)
	GetReviews(ctx context.Context, humanID string) ([]models.Review, error)
	ListSkills(ctx context.Context) ([]models.Skill, error)

	CreateBooking(ctx context.Context, booking models.BookingCreate) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListBookings(ctx context.Context, opts client.ListBookingsOptions) ([]models.Booking, error)

	CreateBounty(ctx context.Context, bounty models.BountyCreate) (*models.Bounty, error)
	GetBounty(ctx context.Context, bountyID string) (*models.Bounty, error)
	GetBountyApplications(ctx context.Context, bountyID string) ([]models.BountyApplication, error)
	AcceptApplication(ctx context.Context, bountyID, applicationID string) (*models.AcceptResult, error)

	StartConversation(ctx context.Context, humanID, subject, message string) (*models.Conversation, error)
	SendMessage(ctx context.Context, conversationID, message string) (*models.Message, error)
	GetConversation(ctx context.Context, conversationID string) (*models.Conversation, error)
	ListConversations(ctx context.Context, limit int) ([]models.Conversation, error)
}

// ParamType is the JSON-schema style type of a tool parameter.
type ParamType string

const (
	ParamString      ParamType = "string"
	ParamNumber      ParamType = "number"
	ParamInteger     ParamType = "integer"
	ParamStringArray ParamType = "array"
)

// Param describes one named argument a tool accepts.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
}

// RunFunc executes a tool against loosely-typed arguments (as an agent
// framework delivers them) and returns human-readable text.
type RunFunc func(ctx context.Context, args map[string]any) (string, error)

// Tool is one callable operation in the catalog.
type Tool struct {
	Name        string
	Description string
	Params      []Param
	Run         RunFunc
}

// Catalog returns every tool, bound to the given API.
func Catalog(api API) []Tool {
	var all []Tool
	all = append(all, SearchTools(api)...)
	all = append(all, BookingTools(api)...)
	all = append(all, BountyTools(api)...)
	all = append(all, ConversationTools(api)...)
	return all
}

// SearchTools returns the discovery tools. These work without an API key.
func SearchTools(api API) []Tool {
	return []Tool{
		searchHumansTool(api),
		getHumanProfileTool(api),
		getReviewsTool(api),
		listSkillsTool(api),
	}
}

// BookingTools returns the booking tools.
func BookingTools(api API) []Tool {
	return []Tool{
		createBookingTool(api),
		getBookingTool(api),
		listBookingsTool(api),
	}
}

// BountyTools returns the bounty tools.
func BountyTools(api API) []Tool {
	return []Tool{
		createBountyTool(api),
		getBountyTool(api),
		getBountyApplicationsTool(api),
		acceptApplicationTool(api),
	}
}

// ConversationTools returns the direct-messaging tools.
func ConversationTools(api API) []Tool {
	return []Tool{
		startConversationTool(api),
		sendMessageTool(api),
		getConversationTool(api),
		listConversationsTool(api),
	}
}

// decodeArgs maps framework-delivered arguments onto a typed struct. Weak
// typing tolerates numbers arriving as strings and integers as floats.
func decodeArgs(args map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// formatMoney renders an amount the way it reads best in text output:
// no trailing zeros, no scientific notation.
func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
