package mcptools

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentahuman/rentahuman-go/pkg/tools"
)

func TestBuildTool(t *testing.T) {
	tool := BuildTool(tools.Tool{
		Name:        "search_humans",
		Description: "Search for humans.",
		Params: []tools.Param{
			{Name: "skill", Type: tools.ParamString, Description: "Skill filter"},
			{Name: "max_rate", Type: tools.ParamNumber, Description: "Max hourly rate"},
			{Name: "limit", Type: tools.ParamInteger, Description: "Max results"},
			{Name: "skills", Type: tools.ParamStringArray, Description: "Required skills"},
			{Name: "human_id", Type: tools.ParamString, Description: "ID", Required: true},
		},
	})

	assert.Equal(t, "search_humans", tool.Name)
	assert.Equal(t, "Search for humans.", tool.Description)
	assert.Equal(t, []string{"human_id"}, tool.InputSchema.Required)

	for _, name := range []string{"skill", "max_rate", "limit", "skills", "human_id"} {
		assert.Contains(t, tool.InputSchema.Properties, name)
	}
}

func TestHandler(t *testing.T) {
	var gotArgs map[string]any
	handler := Handler(tools.Tool{
		Name: "echo",
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			gotArgs = args
			return "Found 2 human(s):", nil
		},
	})

	request := mcp.CallToolRequest{}
	request.Params.Name = "echo"
	request.Params.Arguments = map[string]any{"skill": "Photography"}

	result, err := handler(context.Background(), request)
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Equal(t, map[string]any{"skill": "Photography"}, gotArgs)

	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "Found 2 human(s):", text.Text)
}

func TestHandler_ErrorBecomesToolResult(t *testing.T) {
	handler := Handler(tools.Tool{
		Name: "failing",
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			return "", errors.New("api error (404): Human not found")
		},
	})

	result, err := handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err, "tool failures must not abort the protocol")
	require.True(t, result.IsError)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Human not found")
}

func TestNewServerRegistersCatalog(t *testing.T) {
	srv := NewServer(nil, "1.0.0")
	require.NotNil(t, srv)
}
