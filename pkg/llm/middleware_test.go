package llm_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inercia/go-llm-openai/pkg/llm"
	"github.com/inercia/go-llm-openai/pkg/providers/mock"
)

// logLines decodes every JSON log record written to buf
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestWithLogging_PassesThroughAndLogs(t *testing.T) {
	t.Parallel()

	m, err := mock.NewClient("test-model", "mock")
	require.NoError(t, err)
	m.WithChatResponse("hello").
		WithError(llm.KindProvider, "invalid_api_key", "bad key")

	var buf bytes.Buffer
	client := llm.WithLogging(m, newLogger(&buf))
	ctx := context.Background()

	_, err = client.Chat(ctx, "hi")
	require.Error(t, err)
	assert.True(t, llm.IsKind(err, llm.KindProvider))

	out, err := client.Chat(ctx, "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	vector, err := client.CreateEmbeddingArray(ctx, "hello", "model-x")
	require.NoError(t, err)
	assert.Len(t, vector, 4)

	records := logLines(t, &buf)
	require.Len(t, records, 3)

	assert.Equal(t, "WARN", records[0]["level"])
	assert.Equal(t, "chat", records[0]["op"])
	assert.Equal(t, "provider", records[0]["kind"])
	assert.Equal(t, "mock", records[0]["provider"])

	assert.Equal(t, "DEBUG", records[1]["level"])
	assert.Equal(t, "chat", records[1]["op"])

	assert.Equal(t, "create_embedding", records[2]["op"])
	assert.EqualValues(t, 4, records[2]["dimensions"])

	assert.Equal(t, m.GetModelInfo(), client.GetModelInfo())
	assert.Equal(t, m.LastError(), client.LastError())
}

func TestClientWithMiddleware_Order(t *testing.T) {
	t.Parallel()

	m, err := mock.NewClient("test-model", "mock")
	require.NoError(t, err)

	var order []string
	tag := func(name string) llm.Middleware {
		return func(next llm.Client) llm.Client {
			return &taggedClient{Client: next, before: func() { order = append(order, name) }}
		}
	}

	client := llm.ClientWithMiddleware(m, tag("outer"), tag("inner"))
	_, err = client.Chat(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)

	var buf bytes.Buffer
	logged := llm.ClientWithMiddleware(m, llm.LoggingMiddleware(newLogger(&buf)))
	_, err = logged.GenerateImage(context.Background(), "a cat", 1, "256x256")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "generate_image")
}

type taggedClient struct {
	llm.Client
	before func()
}

func (c *taggedClient) Chat(ctx context.Context, prompt string) (string, error) {
	c.before()
	return c.Client.Chat(ctx, prompt)
}
