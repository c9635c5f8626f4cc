package predictor

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const openaiDefaultModel = "gpt-4o"

// OpenAIPredictor answers questions with a single chat completion.
type OpenAIPredictor struct {
	client *openai.Client
	model  string
}

func NewOpenAIPredictor(apiKey, baseURL, model string) *OpenAIPredictor {
	cfg := openai.DefaultConfig(strings.TrimSpace(apiKey))
	if v := strings.TrimSpace(baseURL); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}

	m := strings.TrimSpace(model)
	if m == "" {
		m = openaiDefaultModel
	}

	return &OpenAIPredictor{
		client: openai.NewClientWithConfig(cfg),
		model:  m,
	}
}

func (p *OpenAIPredictor) Name() string {
	return "openai"
}

func (p *OpenAIPredictor) Answer(ctx context.Context, question string) (string, error) {
	if p == nil || p.client == nil {
		return "", errors.New("predictor: openai: nil client")
	}
	if ctx == nil {
		return "", errors.New("predictor: openai: nil context")
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("predictor: openai: empty choices")
	}

	return resp.Choices[0].Message.Content, nil
}
