package llm

import (
	"strings"

	"github.com/Nullkernel/AI-Chatbot/chatbot/sources/psql/models"
)

// contextWindow is the number of trailing history messages carried into the
// prompt, regardless of role distribution.
const contextWindow = 10

const historyHeader = "Previous conversation:"

// BuildPrompt frames the new user message with recent session history.
// With no history the raw message goes out unframed.
func BuildPrompt(history []models.ChatMessage, message string) string {
	if len(history) == 0 {
		return message
	}
	if len(history) > contextWindow {
		history = history[len(history)-contextWindow:]
	}

	var b strings.Builder
	b.WriteString(historyHeader)
	b.WriteString("\n")
	for i, msg := range history {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(label(msg.Role))
		b.WriteString(msg.Content)
	}
	b.WriteString("\n\nUser: ")
	b.WriteString(message)
	return b.String()
}

// label renders anything that is not a user message with the assistant
// prefix. Writes reject unknown roles, but rows that predate that
// constraint still render.
func label(role models.Role) string {
	if role == models.RoleUser {
		return "User: "
	}
	return "Assistant: "
}
