package models

// Message is a single message within a conversation. Ordering within a
// conversation is assigned by the server.
type Message struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId,omitempty"`
	Sender         string `json:"sender,omitempty"`
	Content        string `json:"content"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// Conversation is a message thread between an agent and a human.
type Conversation struct {
	ID        string    `json:"id"`
	HumanID   string    `json:"humanId"`
	AgentType string    `json:"agentType,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Messages  []Message `json:"messages,omitempty"`
	CreatedAt string    `json:"createdAt,omitempty"`
}
