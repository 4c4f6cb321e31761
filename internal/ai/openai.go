package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	planSystemPrompt = "You are an expert personal trainer. Reply with a single JSON object and nothing else."
	chatSystemPrompt = "You are an expert personal trainer and exercise physiologist. Answer concisely and professionally."
)

// Options configures the OpenAI-compatible gateway.
type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
}

// chatCompleter is the part of the go-openai client the gateway relies on.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIGateway drives any OpenAI-compatible chat completion endpoint,
// Gemini's included.
type OpenAIGateway struct {
	client      chatCompleter
	model       string
	maxTokens   int
	temperature float32
	logger      *zap.Logger
}

// NewOpenAIGateway builds a gateway from opts.
func NewOpenAIGateway(opts Options, logger *zap.Logger) *OpenAIGateway {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(opts.BaseURL, "/")
	}
	return newOpenAIGateway(openai.NewClientWithConfig(cfg), opts, logger)
}

func newOpenAIGateway(client chatCompleter, opts Options, logger *zap.Logger) *OpenAIGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenAIGateway{
		client:      client,
		model:       opts.Model,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		logger:      logger.Named("ai"),
	}
}

func (g *OpenAIGateway) GeneratePlan(ctx context.Context, req PlanRequest) (*Plan, error) {
	prompt := fmt.Sprintf(
		"Create a detailed workout plan for a client with the goal of %q.\n"+
			"Fitness Level: %s.\n"+
			"Frequency: %d days per week.\n"+
			"Available Equipment: %s.\n\n"+
			"Return the response as a JSON object containing a title for the plan and a list of exercises "+
			"for one representative workout session, shaped as "+
			`{"title": string, "exercises": [{"name": string, "sets": string, "reps": string, "obs": string}]}.`,
		req.Goal, req.Level, req.DaysPerWeek, req.Equipment,
	)

	content, err := g.complete(ctx, planSystemPrompt, prompt, true)
	if err != nil {
		return nil, err
	}

	var plan Plan
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &plan); err != nil {
		g.logger.Warn("plan response is not valid JSON", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(plan.Exercises) == 0 {
		return nil, fmt.Errorf("%w: no exercises", ErrMalformedResponse)
	}
	return &plan, nil
}

func (g *OpenAIGateway) Ask(ctx context.Context, question string) (string, error) {
	return g.complete(ctx, chatSystemPrompt, question, false)
}

func (g *OpenAIGateway) complete(ctx context.Context, system, user string, jsonMode bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		g.logger.Error("chat completion failed", zap.String("model", g.model), zap.Error(err))
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

// stripCodeFence removes a ```json fence some models wrap JSON replies in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
