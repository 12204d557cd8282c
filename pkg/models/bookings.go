package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Booking statuses. Transitions are owned by the remote service; the client
// only observes them.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
)

// Booking is an agreed engagement between an agent and a human.
type Booking struct {
	ID             string  `json:"id"`
	HumanID        string  `json:"humanId"`
	AgentID        string  `json:"agentId,omitempty"`
	TaskTitle      string  `json:"taskTitle"`
	Status         string  `json:"status"`
	StartTime      string  `json:"startTime,omitempty"`
	EstimatedHours float64 `json:"estimatedHours,omitempty"`
	CreatedAt      string  `json:"createdAt,omitempty"`
}

// BookingCreate is the request body for POST /bookings. Unset optional
// fields are omitted from the payload rather than sent as null.
type BookingCreate struct {
	HumanID        string  `json:"humanId"`
	AgentID        string  `json:"agentId,omitempty"`
	TaskTitle      string  `json:"taskTitle"`
	StartTime      string  `json:"startTime"` // RFC 3339
	EstimatedHours float64 `json:"estimatedHours"`
	Description    string  `json:"description,omitempty"`
}

// Validate checks required fields before the request goes on the wire.
func (b BookingCreate) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.HumanID, validation.Required),
		validation.Field(&b.TaskTitle, validation.Required),
		validation.Field(&b.StartTime, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&b.EstimatedHours, validation.Required, validation.Min(0.0).Exclusive()),
	)
}
