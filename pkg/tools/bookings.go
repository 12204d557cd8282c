package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/rentahuman/rentahuman-go/pkg/client"
	"github.com/rentahuman/rentahuman-go/pkg/models"
)

func createBookingTool(api API) Tool {
	type bookingArgs struct {
		HumanID        string  `mapstructure:"human_id"`
		TaskTitle      string  `mapstructure:"task_title"`
		StartTime      string  `mapstructure:"start_time"`
		EstimatedHours float64 `mapstructure:"estimated_hours"`
		Description    string  `mapstructure:"description"`
	}

	return Tool{
		Name: "create_booking",
		Description: "Create a booking to hire a human for a specific task. " +
			"Requires the human's ID, a task title, start time (ISO 8601), and estimated hours. " +
			"Payment is handled via Stripe Connect escrow.",
		Params: []Param{
			{Name: "human_id", Type: ParamString, Description: "ID of the human to book", Required: true},
			{Name: "task_title", Type: ParamString, Description: "Brief title of the task", Required: true},
			{Name: "start_time", Type: ParamString, Description: "ISO 8601 datetime for when the task should start", Required: true},
			{Name: "estimated_hours", Type: ParamNumber, Description: "Estimated duration in hours", Required: true},
			{Name: "description", Type: ParamString, Description: "Detailed task description"},
		},
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			var a bookingArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			startTime, err := normalizeStartTime(a.StartTime)
			if err != nil {
				return "", err
			}
			booking, err := api.CreateBooking(ctx, models.BookingCreate{
				HumanID:        a.HumanID,
				TaskTitle:      a.TaskTitle,
				StartTime:      startTime,
				EstimatedHours: a.EstimatedHours,
				Description:    a.Description,
			})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Booking created!\n  ID: %s\n  Status: %s\n  Task: %s",
				booking.ID, booking.Status, booking.TaskTitle), nil
		},
	}
}

// normalizeStartTime accepts the loose datetime formats agents produce and
// converts them to RFC 3339 UTC, which is what the API expects.
func normalizeStartTime(value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("start_time is required")
	}
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return "", fmt.Errorf("unparseable start_time %q: %w", value, err)
	}
	return t.UTC().Format(time.RFC3339), nil
}

func getBookingTool(api API) Tool {
	type bookingArgs struct {
		BookingID string `mapstructure:"booking_id"`
	}

	return Tool{
		Name:        "get_booking",
		Description: "Get details and status of a booking by its ID.",
		Params: []Param{
			{Name: "booking_id", Type: ParamString, Description: "The booking ID", Required: true},
		},
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			var a bookingArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			b, err := api.GetBooking(ctx, a.BookingID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Booking %s: %s | Status: %s | Hours: %s",
				b.ID, b.TaskTitle, b.Status, formatMoney(b.EstimatedHours)), nil
		},
	}
}

func listBookingsTool(api API) Tool {
	type listArgs struct {
		Status string `mapstructure:"status"`
		Limit  int    `mapstructure:"limit"`
	}

	return Tool{
		Name:        "list_bookings",
		Description: "List your bookings, optionally filtered by status (pending, confirmed, in_progress, completed).",
		Params: []Param{
			{Name: "status", Type: ParamString, Description: "Filter by status: pending, confirmed, in_progress, completed"},
			{Name: "limit", Type: ParamInteger, Description: "Max results"},
		},
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			var a listArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			bookings, err := api.ListBookings(ctx, client.ListBookingsOptions{
				Status: a.Status,
				Limit:  a.Limit,
			})
			if err != nil {
				return "", err
			}
			if len(bookings) == 0 {
				return "No bookings found.", nil
			}
			lines := []string{fmt.Sprintf("%d booking(s):", len(bookings))}
			for _, b := range bookings {
				lines = append(lines, fmt.Sprintf("  - %s: %s [%s]", b.ID, b.TaskTitle, b.Status))
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}
