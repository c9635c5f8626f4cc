package predictor

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	claudeDefaultModel     = "claude-sonnet-4-5-20250929"
	claudeMaxAnswerTokens  = 1024
	anthropicVersionHeader = "2023-06-01"
)

// ClaudePredictor answers questions with a single Claude text completion.
type ClaudePredictor struct {
	client *anthropic.Client
	model  string
}

func NewClaudePredictor(apiKey, baseURL, model string) *ClaudePredictor {
	opts := make([]option.RequestOption, 0, 3)
	if v := strings.TrimSpace(apiKey); v != "" {
		opts = append(opts, option.WithAPIKey(v))
	}
	if v := strings.TrimSpace(baseURL); v != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(v, "/")))
	}
	opts = append(opts, option.WithHeader("anthropic-version", anthropicVersionHeader))

	m := strings.TrimSpace(model)
	if m == "" {
		m = claudeDefaultModel
	}

	client := anthropic.NewClient(opts...)
	return &ClaudePredictor{
		client: &client,
		model:  m,
	}
}

func (p *ClaudePredictor) Name() string {
	return "claude"
}

func (p *ClaudePredictor) Answer(ctx context.Context, question string) (string, error) {
	if p == nil || p.client == nil {
		return "", errors.New("predictor: claude: nil client")
	}
	if ctx == nil {
		return "", errors.New("predictor: claude: nil context")
	}

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: claudeMaxAnswerTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(question)),
		},
	})
	if err != nil {
		return "", err
	}
	if msg == nil {
		return "", errors.New("predictor: claude: empty response")
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type != "text" {
			continue
		}
		sb.WriteString(block.AsText().Text)
	}
	return sb.String(), nil
}
