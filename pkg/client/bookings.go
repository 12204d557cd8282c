package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rentahuman/rentahuman-go/pkg/models"
)

// CreateBooking books a human for a task. Requires an API key. The booking
// id and status come back from the server; the client never invents them.
func (c *Client) CreateBooking(ctx context.Context, booking models.BookingCreate) (*models.Booking, error) {
	if booking.AgentID == "" {
		booking.AgentID = c.agentID
	}
	if err := booking.Validate(); err != nil {
		return nil, fmt.Errorf("invalid booking request: %w", err)
	}

	body, err := c.post(ctx, "/bookings", booking)
	if err != nil {
		return nil, err
	}

	var created models.Booking
	if err := json.Unmarshal(c.unwrap(body, "booking"), &created); err != nil {
		return nil, fmt.Errorf("failed to parse booking response: %w", err)
	}
	return &created, nil
}

// GetBooking returns booking details by id.
func (c *Client) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	bookingID, err := sanitizePathParam("booking id", bookingID)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/bookings/"+bookingID, nil)
	if err != nil {
		return nil, err
	}

	var booking models.Booking
	if err := json.Unmarshal(c.unwrap(body, "booking"), &booking); err != nil {
		return nil, fmt.Errorf("failed to parse booking response: %w", err)
	}
	return &booking, nil
}

// ListBookingsOptions filters a booking list. Zero-value fields are omitted
// from the query.
type ListBookingsOptions struct {
	HumanID string
	AgentID string
	Status  string // pending, confirmed, in_progress, completed
	Limit   int
}

// ListBookings lists bookings with optional filters.
func (c *Client) ListBookings(ctx context.Context, opts ListBookingsOptions) ([]models.Booking, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(searchLimit(opts.Limit)))
	if opts.HumanID != "" {
		query.Set("humanId", opts.HumanID)
	}
	if opts.AgentID != "" {
		query.Set("agentId", opts.AgentID)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}

	body, err := c.get(ctx, "/bookings", query)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := json.Unmarshal(c.unwrap(body, "bookings"), &bookings); err != nil {
		return nil, fmt.Errorf("failed to parse bookings response: %w", err)
	}
	return bookings, nil
}
