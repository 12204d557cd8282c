package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mockHumanJSON = `{
	"id": "human_test_001",
	"name": "Alice",
	"location": "San Francisco",
	"rate": 45.0,
	"skills": ["Packages", "Meetings", "Errands"],
	"bio": "Reliable SF local. 5 years courier experience.",
	"rating": 4.8,
	"completedTasks": 127,
	"cryptoWallets": [{"chain": "ethereum", "address": "0xabc"}]
}`

func TestHumanRoundTrip(t *testing.T) {
	var h Human
	require.NoError(t, json.Unmarshal([]byte(mockHumanJSON), &h))

	assert.Equal(t, "human_test_001", h.ID)
	assert.Equal(t, "Alice", h.Name)
	assert.Equal(t, 45.0, h.Rate)
	assert.Equal(t, 127, h.CompletedTasks)
	require.Len(t, h.CryptoWallets, 1)
	assert.Equal(t, "ethereum", h.CryptoWallets[0].Chain)

	// Re-serializing reproduces the wire key set.
	out, err := json.Marshal(h)
	require.NoError(t, err)
	assert.ElementsMatch(t, jsonKeys(t, mockHumanJSON), jsonKeys(t, string(out)))
}

func TestBookingRoundTrip(t *testing.T) {
	payload := `{
		"id": "booking_001",
		"humanId": "human_test_001",
		"agentId": "rentahuman-go",
		"taskTitle": "Pick up package",
		"status": "pending",
		"startTime": "2026-02-10T14:00:00Z",
		"estimatedHours": 1.5
	}`

	var b Booking
	require.NoError(t, json.Unmarshal([]byte(payload), &b))
	assert.Equal(t, "booking_001", b.ID)
	assert.Equal(t, BookingStatusPending, b.Status)
	assert.Equal(t, 1.5, b.EstimatedHours)

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.ElementsMatch(t, jsonKeys(t, payload), jsonKeys(t, string(out)))
}

func TestConversationRoundTrip(t *testing.T) {
	payload := `{
		"id": "conv_001",
		"humanId": "human_test_001",
		"agentType": "rentahuman-go",
		"subject": "Package pickup",
		"messages": [
			{"id": "msg_001", "conversationId": "conv_001", "sender": "agent", "content": "Hi!"},
			{"id": "msg_002", "conversationId": "conv_001", "sender": "human", "content": "Sure!"}
		]
	}`

	var c Conversation
	require.NoError(t, json.Unmarshal([]byte(payload), &c))
	require.Len(t, c.Messages, 2)

	// Server-given message order is preserved.
	assert.Equal(t, "agent", c.Messages[0].Sender)
	assert.Equal(t, "human", c.Messages[1].Sender)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.ElementsMatch(t, jsonKeys(t, payload), jsonKeys(t, string(out)))
}

func TestHumanSummary(t *testing.T) {
	var h Human
	require.NoError(t, json.Unmarshal([]byte(mockHumanJSON), &h))

	s := h.Summary()
	assert.Contains(t, s, "Alice")
	assert.Contains(t, s, "human_test_001")
	assert.Contains(t, s, "$45/hr")
	assert.Contains(t, s, "Packages")
	assert.Contains(t, s, "rating: 4.8")
}

func TestHumanSummarySparseProfile(t *testing.T) {
	h := Human{ID: "h1", Name: "Carol"}
	assert.Equal(t, "Carol (h1)", h.Summary())
}

func TestSkillListDecoding(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    SkillList
		wantErr bool
	}{
		{
			name:    "bare strings",
			payload: `["Packages", "Photography"]`,
			want:    SkillList{{Name: "Packages"}, {Name: "Photography"}},
		},
		{
			name:    "objects",
			payload: `[{"name": "Packages", "category": "Errands"}]`,
			want:    SkillList{{Name: "Packages", Category: "Errands"}},
		},
		{
			name:    "empty",
			payload: `[]`,
			want:    SkillList{},
		},
		{
			name:    "malformed",
			payload: `[42]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got SkillList
			err := json.Unmarshal([]byte(tt.payload), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingCreateValidate(t *testing.T) {
	valid := BookingCreate{
		HumanID:        "human_test_001",
		TaskTitle:      "Pick up package",
		StartTime:      "2026-02-10T14:00:00Z",
		EstimatedHours: 1.5,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*BookingCreate)
	}{
		{"missing human id", func(b *BookingCreate) { b.HumanID = "" }},
		{"missing title", func(b *BookingCreate) { b.TaskTitle = "" }},
		{"bad start time", func(b *BookingCreate) { b.StartTime = "tomorrow-ish" }},
		{"zero hours", func(b *BookingCreate) { b.EstimatedHours = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			assert.Error(t, b.Validate())
		})
	}
}

func TestBountyCreateValidate(t *testing.T) {
	valid := BountyCreate{
		Title:       "Photograph storefront",
		Description: "Take 5 photos of 123 Broadway.",
		Price:       50.0,
		PriceType:   PriceTypeFixed,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*BountyCreate)
	}{
		{"missing title", func(b *BountyCreate) { b.Title = "" }},
		{"missing description", func(b *BountyCreate) { b.Description = "" }},
		{"negative price", func(b *BountyCreate) { b.Price = -1 }},
		{"bad price type", func(b *BountyCreate) { b.PriceType = "per-task" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			assert.Error(t, b.Validate())
		})
	}
}

func TestBookingCreateOmitsUnsetOptionals(t *testing.T) {
	b := BookingCreate{
		HumanID:        "h1",
		TaskTitle:      "test",
		StartTime:      "2026-01-01T00:00:00Z",
		EstimatedHours: 1,
	}
	out, err := json.Marshal(b)
	require.NoError(t, err)

	keys := jsonKeys(t, string(out))
	assert.NotContains(t, keys, "description")
	assert.NotContains(t, keys, "agentId")
}

func jsonKeys(t *testing.T, payload string) []string {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
