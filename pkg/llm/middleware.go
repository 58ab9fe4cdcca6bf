package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Middleware decorates a Client with extra behaviour
type Middleware func(Client) Client

// ClientWithMiddleware wraps client with the given middleware. The first
// middleware in the list is the outermost one.
func ClientWithMiddleware(client Client, chain ...Middleware) Client {
	for i := len(chain) - 1; i >= 0; i-- {
		client = chain[i](client)
	}
	return client
}

// LoggingMiddleware returns a Middleware that logs every operation to logger
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(client Client) Client {
		return WithLogging(client, logger)
	}
}

// WithLogging wraps client so each operation logs its duration and, on
// failure, the error kind. A nil logger uses slog.Default().
func WithLogging(client Client, logger *slog.Logger) Client {
	if logger == nil {
		logger = slog.Default()
	}
	info := client.GetModelInfo()
	return &loggingClient{
		Client: client,
		logger: logger.With("provider", info.Provider, "model", info.Name),
	}
}

type loggingClient struct {
	Client
	logger *slog.Logger
}

func (l *loggingClient) log(ctx context.Context, op string, start time.Time, err error, attrs ...any) {
	attrs = append(attrs, "op", op, "duration", time.Since(start))
	if err == nil {
		l.logger.DebugContext(ctx, "llm call succeeded", attrs...)
		return
	}

	kind := "unknown"
	var llmErr *Error
	if errors.As(err, &llmErr) {
		kind = string(llmErr.Kind)
		if llmErr.StatusCode != 0 {
			attrs = append(attrs, "status", llmErr.StatusCode)
		}
	}
	attrs = append(attrs, "kind", kind, "error", err)
	l.logger.WarnContext(ctx, "llm call failed", attrs...)
}

func (l *loggingClient) Chat(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	out, err := l.Client.Chat(ctx, prompt)
	l.log(ctx, "chat", start, err, "prompt_len", len(prompt))
	return out, err
}

func (l *loggingClient) ChatWithModel(ctx context.Context, prompt, model string) (string, error) {
	start := time.Now()
	out, err := l.Client.ChatWithModel(ctx, prompt, model)
	l.log(ctx, "chat", start, err, "prompt_len", len(prompt), "request_model", model)
	return out, err
}

func (l *loggingClient) GenerateImage(ctx context.Context, prompt string, n int, size string) (string, error) {
	start := time.Now()
	out, err := l.Client.GenerateImage(ctx, prompt, n, size)
	l.log(ctx, "generate_image", start, err, "n", n, "size", size)
	return out, err
}

func (l *loggingClient) TranscribeAudio(ctx context.Context, path string) (string, error) {
	start := time.Now()
	out, err := l.Client.TranscribeAudio(ctx, path)
	l.log(ctx, "transcribe_audio", start, err, "path", path)
	return out, err
}

func (l *loggingClient) TranslateAudio(ctx context.Context, path string) (string, error) {
	start := time.Now()
	out, err := l.Client.TranslateAudio(ctx, path)
	l.log(ctx, "translate_audio", start, err, "path", path)
	return out, err
}

func (l *loggingClient) CreateEmbeddingArray(ctx context.Context, input, model string) ([]float32, error) {
	start := time.Now()
	out, err := l.Client.CreateEmbeddingArray(ctx, input, model)
	l.log(ctx, "create_embedding", start, err, "request_model", model, "dimensions", len(out))
	return out, err
}
