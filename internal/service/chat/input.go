package chat

import "github.com/finchat/finchat-backend/internal/domain"

// SendMessageInput holds one raw user chat message. The message is
// passed to the parser as-is; an empty or nonsense message simply
// classifies as unknown.
type SendMessageInput struct {
	Message string
}

// SendMessageResult is the assistant's reply plus the intent the
// message was classified as.
type SendMessageResult struct {
	Response string
	Intent   domain.Intent
}
