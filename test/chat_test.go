package test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inercia/go-llm-openai/pkg/llm"
)

func TestChatBasicFunctionality(t *testing.T) {
	t.Parallel()

	client := createTestClient(t)
	defer func() { _ = client.Close() }()

	skipIfNoProvider(t, client)

	ctx := context.Background()

	t.Run("simple_question", func(t *testing.T) {
		responseText, err := client.Chat(ctx, "What is 2+2? Answer with just the number.")
		require.NoError(t, err, "Chat should succeed")
		require.NotEmpty(t, responseText, "Response text should not be empty")

		t.Logf("Question: What is 2+2? -> Answer: %s", responseText)
		assert.Contains(t, responseText, "4", "Response should contain the answer 4")
	})

	t.Run("explicit_model", func(t *testing.T) {
		model := client.GetModelInfo().Name
		responseText, err := client.ChatWithModel(ctx, "Reply with the single word PONG.", model)
		require.NoError(t, err)
		assert.Contains(t, strings.ToUpper(responseText), "PONG")
	})

	t.Run("unknown_model_is_a_provider_error", func(t *testing.T) {
		_, err := client.ChatWithModel(ctx, "hello", "definitely-not-a-model")
		require.Error(t, err)
		assert.True(t, llm.IsKind(err, llm.KindProvider), "got %v", err)
		assert.NotEmpty(t, client.LastError())
	})
}

func TestChatTimeout(t *testing.T) {
	t.Parallel()

	client := createTestClientWithTimeout(t, time.Millisecond)
	defer func() { _ = client.Close() }()

	skipIfNoProvider(t, client)

	_, err := client.Chat(context.Background(), "Write a long story about a lighthouse.")
	require.Error(t, err)
	assert.True(t, llm.IsKind(err, llm.KindTransport), "got %v", err)
}
