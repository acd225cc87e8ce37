package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/model"
)

type AnthropicClient struct {
	client      *anthropic.Client
	model       anthropic.Model
	temperature float64
	maxTokens   int64
	timeout     time.Duration
}

func NewAnthropicClient(apiKey string, temperature float64, maxTokens int, timeout time.Duration) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:      &client,
		model:       anthropic.ModelClaude3_5HaikuLatest,
		temperature: temperature,
		maxTokens:   int64(maxTokens),
		timeout:     timeout,
	}
}

func (c *AnthropicClient) AnalyzeTrends(ctx context.Context, input AnalysisInput) (*model.TrendReport, error) {
	content, err := c.complete(ctx, buildAnalysisPrompt(input), c.temperature)
	if err != nil {
		return nil, err
	}
	return parseTrendReport(content)
}

func (c *AnthropicClient) PlanContent(ctx context.Context, trend model.TopTrend) (model.ContentPlan, error) {
	content, err := c.complete(ctx, buildPlanPrompt(trend), planTemperature)
	if err != nil {
		return nil, err
	}
	return parseContentPlan(content)
}

func (c *AnthropicClient) GenerateScript(ctx context.Context, input ScriptInput) (string, error) {
	return c.complete(ctx, buildScriptPrompt(input), scriptTemperature)
}

func (c *AnthropicClient) complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}

	return resp.Content[0].Text, nil
}
