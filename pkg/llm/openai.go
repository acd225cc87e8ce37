package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/model"
)

// Planning and script calls run hotter than the configured analysis temperature.
const (
	planTemperature   = 0.8
	scriptTemperature = 0.8
)

type OpenAIClient struct {
	client      *openai.Client
	model       openai.ChatModel
	temperature float64
	maxTokens   int64
	timeout     time.Duration
}

func NewOpenAIClient(apiKey, modelName string, temperature float64, maxTokens int, timeout time.Duration) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	if modelName == "" {
		modelName = openai.ChatModelGPT4
	}
	return &OpenAIClient{
		client:      &client,
		model:       openai.ChatModel(modelName),
		temperature: temperature,
		maxTokens:   int64(maxTokens),
		timeout:     timeout,
	}
}

func (c *OpenAIClient) AnalyzeTrends(ctx context.Context, input AnalysisInput) (*model.TrendReport, error) {
	content, err := c.complete(ctx, buildAnalysisPrompt(input), c.temperature)
	if err != nil {
		return nil, err
	}
	return parseTrendReport(content)
}

func (c *OpenAIClient) PlanContent(ctx context.Context, trend model.TopTrend) (model.ContentPlan, error) {
	content, err := c.complete(ctx, buildPlanPrompt(trend), planTemperature)
	if err != nil {
		return nil, err
	}
	return parseContentPlan(content)
}

func (c *OpenAIClient) GenerateScript(ctx context.Context, input ScriptInput) (string, error) {
	return c.complete(ctx, buildScriptPrompt(input), scriptTemperature)
}

// complete runs one chat completion under the configured deadline.
func (c *OpenAIClient) complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(c.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return resp.Choices[0].Message.Content, nil
}
