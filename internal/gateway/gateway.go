package gateway

// Messenger is a chat surface the bot listens and replies on.
type Messenger interface {
	// Start runs the message loop until Stop is called.
	Start() error
	// Send pushes a message to a specific chat.
	Send(chatID string, text string) error
	// Stop shuts the gateway down.
	Stop() error
}
