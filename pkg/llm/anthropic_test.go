package llm

import (
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/go-playground/assert/v2"
)

func TestNewAnthropicClient(t *testing.T) {
	c := NewAnthropicClient("test-key", 0.7, 4000, 30*time.Second)

	// Pin the model to a constant the SDK actually ships.
	assert.Equal(t, anthropic.ModelClaude3_5HaikuLatest, c.model)
	assert.Equal(t, int64(4000), c.maxTokens)
	assert.Equal(t, 0.7, c.temperature)
}
