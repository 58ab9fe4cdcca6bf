// Client interfaces
package llm

import "context"

// ChatCompleter sends single-prompt chat completions
type ChatCompleter interface {
	// Chat sends prompt with the client's default model and returns the reply text
	Chat(ctx context.Context, prompt string) (string, error)

	// ChatWithModel sends prompt with an explicit model and returns the reply text
	ChatWithModel(ctx context.Context, prompt, model string) (string, error)
}

// ImageGenerator creates images from a text prompt
type ImageGenerator interface {
	// GenerateImage returns the provider's result array as raw JSON text
	GenerateImage(ctx context.Context, prompt string, n int, size string) (string, error)
}

// AudioProcessor turns audio files into text
type AudioProcessor interface {
	TranscribeAudio(ctx context.Context, path string) (string, error)
	TranslateAudio(ctx context.Context, path string) (string, error)
}

// Embedder creates embedding vectors
type Embedder interface {
	CreateEmbeddingArray(ctx context.Context, input, model string) ([]float32, error)
}

// Client defines the core interface that all LLM clients must implement
type Client interface {
	ChatCompleter
	ImageGenerator
	AudioProcessor
	Embedder

	// LastError returns the description of the most recent failure, or ""
	LastError() string

	// GetModelInfo returns information about the model being used
	GetModelInfo() ModelInfo

	// Close cleans up any resources used by the client
	Close() error
}
