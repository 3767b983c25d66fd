package types

import (
	"github.com/Nullkernel/AI-Chatbot/chatbot/sources/psql/models"
)

// Pointer fields distinguish an absent key from an empty string: a missing
// message is rejected, an empty one still runs the exchange.
type ChatRequest struct {
	Message   *string `json:"message" validate:"required"`
	SessionID string  `json:"session_id,omitempty"`
}

type ChatResponse struct {
	SessionID        string         `json:"session_id"`
	UserMessage      string         `json:"user_message"`
	AssistantMessage string         `json:"assistant_message"`
	Timestamp        models.ISOTime `json:"timestamp"`
}

type StatusCheckCreate struct {
	ClientName *string `json:"client_name" validate:"required"`
}

// MessageResponse is the generic {"message": ...} body used by the root
// probe and the session delete endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}
