package tools

import (
	"context"
	"fmt"
	"strings"
)

func startConversationTool(api API) Tool {
	type startArgs struct {
		HumanID string `mapstructure:"human_id"`
		Subject string `mapstructure:"subject"`
		Message string `mapstructure:"message"`
	}

	return Tool{
		Name: "start_conversation",
		Description: "Start a direct conversation with a human on rentahuman.ai. " +
			"Use this to discuss task details, negotiate terms, or ask questions " +
			"before making a booking.",
		Params: []Param{
			{Name: "human_id", Type: ParamString, Description: "ID of the human to message", Required: true},
			{Name: "subject", Type: ParamString, Description: "Conversation subject line", Required: true},
			{Name: "message", Type: ParamString, Description: "Opening message", Required: true},
		},
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			var a startArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			convo, err := api.StartConversation(ctx, a.HumanID, a.Subject, a.Message)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Conversation started!\n  ID: %s\n  Subject: %s", convo.ID, convo.Subject), nil
		},
	}
}

func sendMessageTool(api API) Tool {
	type sendArgs struct {
		ConversationID string `mapstructure:"conversation_id"`
		Message        string `mapstructure:"message"`
	}

	return Tool{
		Name:        "send_message",
		Description: "Send a message in an existing conversation with a human.",
		Params: []Param{
			{Name: "conversation_id", Type: ParamString, Description: "The conversation ID", Required: true},
			{Name: "message", Type: ParamString, Description: "Message content", Required: true},
		},
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			var a sendArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			msg, err := api.SendMessage(ctx, a.ConversationID, a.Message)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Message sent (ID: %s)", msg.ID), nil
		},
	}
}

func getConversationTool(api API) Tool {
	type getArgs struct {
		ConversationID string `mapstructure:"conversation_id"`
	}

	return Tool{
		Name:        "get_conversation",
		Description: "Get a conversation and all messages in it.",
		Params: []Param{
			{Name: "conversation_id", Type: ParamString, Description: "The conversation ID", Required: true},
		},
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			var a getArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			convo, err := api.GetConversation(ctx, a.ConversationID)
			if err != nil {
				return "", err
			}
			lines := []string{fmt.Sprintf("Conversation: %s (ID: %s)", convo.Subject, convo.ID)}
			for _, m := range convo.Messages {
				lines = append(lines, fmt.Sprintf("  [%s]: %s", m.Sender, m.Content))
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}

func listConversationsTool(api API) Tool {
	type listArgs struct {
		Limit int `mapstructure:"limit"`
	}

	return Tool{
		Name:        "list_conversations",
		Description: "List all your conversations with humans.",
		Params: []Param{
			{Name: "limit", Type: ParamInteger, Description: "Max results"},
		},
		Run: func(ctx context.Context, args map[string]any) (string, error) {
			var a listArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			convos, err := api.ListConversations(ctx, a.Limit)
			if err != nil {
				return "", err
			}
			if len(convos) == 0 {
				return "No conversations.", nil
			}
			lines := []string{fmt.Sprintf("%d conversation(s):", len(convos))}
			for _, c := range convos {
				lines = append(lines, fmt.Sprintf("  - %s: %s", c.ID, c.Subject))
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}
