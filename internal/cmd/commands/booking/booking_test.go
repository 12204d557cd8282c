package booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentahuman/rentahuman-go/internal/cmd/base"
	"github.com/rentahuman/rentahuman-go/internal/config"
)

func newTestCommand(t *testing.T, handler http.HandlerFunc) (*Command, *cli.MockUi) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv(config.EnvBaseURL, server.URL)
	t.Setenv(config.EnvAPIKey, "rah_test_key_123")

	ui := cli.NewMockUi()
	return &Command{Command: &base.Command{Log: hclog.NewNullLogger(), UI: ui}}, ui
}

func TestBookingCreate(t *testing.T) {
	cmd, ui := newTestCommand(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "human_test_001", body["humanId"])
		assert.Equal(t, "Pick up package", body["taskTitle"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"booking": map[string]any{
				"id":        "booking_001",
				"taskTitle": "Pick up package",
				"status":    "pending",
			},
		})
	})

	code := cmd.Run([]string{
		"create",
		"-human-id=human_test_001",
		"-title=Pick up package",
		"-start=2026-02-10T14:00:00Z",
		"-hours=1.5",
	})

	require.Equal(t, 0, code, ui.ErrorWriter.String())
	out := ui.OutputWriter.String()
	assert.Contains(t, out, "Booking created!")
	assert.Contains(t, out, "ID: booking_001")
	assert.Contains(t, out, "Status: pending")
}

func TestBookingCreate_InvalidBeforeNetwork(t *testing.T) {
	cmd, ui := newTestCommand(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("server must not be reached for an invalid booking")
	})

	code := cmd.Run([]string{"create", "-human-id=human_test_001"})

	assert.Equal(t, 1, code)
	assert.NotEmpty(t, ui.ErrorWriter.String())
}

func TestBookingShow(t *testing.T) {
	cmd, ui := newTestCommand(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/booking_001", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"booking": map[string]any{
				"id":             "booking_001",
				"taskTitle":      "Pick up package",
				"status":         "pending",
				"startTime":      "2026-02-10T14:00:00Z",
				"estimatedHours": 1.5,
			},
		})
	})

	code := cmd.Run([]string{"show", "-id=booking_001"})

	require.Equal(t, 0, code, ui.ErrorWriter.String())
	out := ui.OutputWriter.String()
	assert.Contains(t, out, "Booking booking_001: Pick up package")
	assert.Contains(t, out, "Hours: 1.5")
}

func TestBookingList(t *testing.T) {
	cmd, ui := newTestCommand(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings", r.URL.Path)
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"bookings": []any{}})
	})

	code := cmd.Run([]string{"-status=pending"})

	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "No bookings found.")
}

func TestBookingUnknownMode(t *testing.T) {
	cmd, ui := newTestCommand(t, func(w http.ResponseWriter, r *http.Request) {})

	code := cmd.Run([]string{"cancel"})

	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "unknown mode")
}
