package llm

import (
	"context"
	"fmt"

	"github.com/Nullkernel/AI-Chatbot/chatbot/utils/logging"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// Fixed for the process lifetime; not configurable per request.
const (
	systemPrompt = "You are a helpful AI assistant. Provide clear, concise, and friendly responses. Remember the conversation context and refer to previous messages when relevant."
	modelName    = "claude-sonnet-4-5-20250929"
)

// Generator is the one outbound capability the orchestrator needs. Tests
// substitute a stub.
type Generator interface {
	Generate(ctx context.Context, sessionID, prompt string) (string, error)
}

type Client struct {
	llm *openai.LLM
}

// NewClient talks to an OpenAI-compatible chat-completions endpoint. An
// empty baseURL keeps the provider default.
func NewClient(apiKey, baseURL string) (*Client, error) {
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(modelName),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	client, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Client{llm: client}, nil
}

func (c *Client) Generate(ctx context.Context, sessionID, prompt string) (string, error) {
	defer logging.LogDuration(ctx, "llm_generate")()

	content := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}
	resp, err := c.llm.GenerateContent(ctx, content)
	if err != nil {
		logging.ErrorLogger.Error("llm provider call failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return "", fmt.Errorf("llm provider: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm provider: empty response")
	}
	return resp.Choices[0].Content, nil
}
