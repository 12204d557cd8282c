package booking

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
	flagStatus      string
	flagLimit       int
	flagHumanID     string
	flagTitle       string
	flagStart       string
	flagHours       float64
	flagDescription string
}

func (c *Command) Synopsis() string {
	return "Create, show, or list bookings"
}

func (c *Command) Help() string {
	return `Usage: rentahuman booking [mode] [options]

  Modes:
    create   Book a human: -human-id, -title, -start (RFC 3339), -hours,
             and optionally -description.
    show     Show one booking by -id.
    list     List your bookings, optionally filtered by -status (default
             mode; a bare -id implies show).

  All modes require an API key.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := c.FlagSet("booking")
	f.StringVar(&c.flagID, "id", "", "Booking ID to show.")
	f.StringVar(&c.flagStatus, "status", "", "Filter by status: pending, confirmed, in_progress, completed.")
	f.IntVar(&c.flagLimit, "limit", 0, "Maximum results.")
	f.StringVar(&c.flagHumanID, "human-id", "", "ID of the human to book (create).")
	f.StringVar(&c.flagTitle, "title", "", "Brief title of the task (create).")
	f.StringVar(&c.flagStart, "start", "", "Task start time, RFC 3339 (create).")
	f.Float64Var(&c.flagHours, "hours", 0, "Estimated duration in hours (create).")
	f.StringVar(&c.flagDescription, "description", "", "Detailed task description (create).")
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
	case "create":
		return c.create(ctx, cl)
	case "show":
		return c.show(ctx, cl)
	case "list":
		return c.list(ctx, cl)
	default:
		c.UI.Error(fmt.Sprintf("unknown mode %q (expected create, show, or list)", mode))
		return 1
	}
}

func (c *Command) create(ctx context.Context, cl *client.Client) int {
	booking, err := cl.CreateBooking(ctx, models.BookingCreate{
		HumanID:        c.flagHumanID,
		TaskTitle:      c.flagTitle,
		StartTime:      c.flagStart,
		EstimatedHours: c.flagHours,
		Description:    c.flagDescription,
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	c.UI.Output("Booking created!")
	c.UI.Output(fmt.Sprintf("  ID: %s", booking.ID))
	c.UI.Output(fmt.Sprintf("  Status: %s", booking.Status))
	c.UI.Output(fmt.Sprintf("  Task: %s", booking.TaskTitle))
	return 0
}

func (c *Command) show(ctx context.Context, cl *client.Client) int {
	if c.flagID == "" {
		c.UI.Error("show requires -id")
		return 1
	}
	b, err := cl.GetBooking(ctx, c.flagID)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	c.UI.Output(fmt.Sprintf("Booking %s: %s", b.ID, b.TaskTitle))
	c.UI.Output(fmt.Sprintf("  Status: %s", b.Status))
	c.UI.Output(fmt.Sprintf("  Start: %s", b.StartTime))
	c.UI.Output(fmt.Sprintf("  Hours: %g", b.EstimatedHours))
	return 0
}

func (c *Command) list(ctx context.Context, cl *client.Client) int {
	bookings, err := cl.ListBookings(ctx, client.ListBookingsOptions{
		Status: c.flagStatus,
		Limit:  c.flagLimit,
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if len(bookings) == 0 {
		c.UI.Output("No bookings found.")
		return 0
	}
	c.UI.Output(fmt.Sprintf("%d booking(s):", len(bookings)))
	for _, b := range bookings {
		c.UI.Output(fmt.Sprintf("  - %s: %s [%s]", b.ID, b.TaskTitle, b.Status))
	}
	return 0
}
