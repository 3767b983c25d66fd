package controllers

import (
	"context"
	"errors"

	"github.com/Nullkernel/AI-Chatbot/chatbot/services/llm"
	"github.com/Nullkernel/AI-Chatbot/chatbot/sources/psql/dao"
	"github.com/Nullkernel/AI-Chatbot/chatbot/sources/psql/models"
	"github.com/Nullkernel/AI-Chatbot/chatbot/utils/types"
)

// ErrAPIKeyMissing is the one configuration failure surfaced with a fixed
// message instead of the underlying error text.
var ErrAPIKeyMissing = errors.New("API key not configured")

type ChatController struct {
	sessions  *dao.SessionDAO
	messages  *dao.MessageDAO
	generator llm.Generator
	apiKey    string
}

func NewChatController(sessions *dao.SessionDAO, messages *dao.MessageDAO, generator llm.Generator, apiKey string) *ChatController {
	return &ChatController{
		sessions:  sessions,
		messages:  messages,
		generator: generator,
		apiKey:    apiKey,
	}
}

// Chat runs one exchange: resolve the session, build the prompt from
// history, call the provider, persist both sides atomically. The returned
// timestamp is the stored assistant message's timestamp.
func (c *ChatController) Chat(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
	// config check first so a misconfigured deployment persists nothing
	if c.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	message := ""
	if req.Message != nil {
		message = *req.Message
	}

	sessionID := req.SessionID
	if sessionID == "" {
		session, err := c.sessions.Create(ctx)
		if err != nil {
			return nil, err
		}
		sessionID = session.SessionID
	}
	// a caller-supplied id is trusted as-is; unknown ids just start with
	// empty history

	history, err := c.messages.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	prompt := llm.BuildPrompt(history, message)
	reply, err := c.generator.Generate(ctx, sessionID, prompt)
	if err != nil {
		return nil, err
	}

	_, assistantMsg, err := c.messages.SaveExchange(ctx, sessionID, message, reply)
	if err != nil {
		return nil, err
	}

	return &types.ChatResponse{
		SessionID:        sessionID,
		UserMessage:      message,
		AssistantMessage: reply,
		Timestamp:        assistantMsg.Timestamp,
	}, nil
}

func (c *ChatController) CreateSession(ctx context.Context) (*models.ChatSession, error) {
	return c.sessions.Create(ctx)
}

func (c *ChatController) ListSessions(ctx context.Context) ([]models.ChatSession, error) {
	return c.sessions.List(ctx)
}

func (c *ChatController) GetMessagesForSession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	return c.messages.ListBySession(ctx, sessionID)
}

// DeleteSession cascades to the session's messages and succeeds even when
// the session never existed.
func (c *ChatController) DeleteSession(ctx context.Context, sessionID string) error {
	return c.sessions.DeleteWithMessages(ctx, sessionID)
}
