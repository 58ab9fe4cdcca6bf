// Configuration types and environment loading
package llm

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultProvider       = "openai"
	DefaultOpenAIModel    = "gpt-3.5-turbo"
	DefaultEmbeddingModel = "text-embedding-ada-002"
	DefaultAudioModel     = "whisper-1"
)

const DefaultOpenAIBaseURL = "https://api.openai.com/v1"

const DefaultTimeout = 30 * time.Second

// ClientConfig holds configuration for creating LLM clients
type ClientConfig struct {
	Provider       string            `json:"provider"` // openai, mock
	Model          string            `json:"model"`
	EmbeddingModel string            `json:"embedding_model,omitempty"`
	APIKey         string            `json:"api_key,omitempty"`
	BaseURL        string            `json:"base_url,omitempty"`
	Timeout        time.Duration     `json:"timeout,omitempty"`
	Extra          map[string]string `json:"extra,omitempty"` // Provider-specific configs
}

// parseTimeoutFromEnv parses timeout from environment variable with fallback to default
func parseTimeoutFromEnv(envVar string, defaultTimeout time.Duration) time.Duration {
	if timeoutStr := os.Getenv(envVar); timeoutStr != "" {
		if timeoutSecs, err := strconv.Atoi(timeoutStr); err == nil && timeoutSecs > 0 {
			return time.Duration(timeoutSecs) * time.Second
		}
	}
	return defaultTimeout
}

// LoadEnvFiles loads KEY=value pairs from the given dotenv files into the
// process environment. Variables already set are left alone. With no
// arguments it loads ".env" from the working directory. Missing files are
// ignored so callers can list optional overrides.
func LoadEnvFiles(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// GetLLMFromEnv builds a ClientConfig from OPENAI_* environment variables.
// Without an API key it returns a mock configuration so callers and tests
// can detect that no real provider is available.
func GetLLMFromEnv() ClientConfig {
	apiKey := os.Getenv("OPENAI_API_KEY")
	baseURL := os.Getenv("OPENAI_BASE_URL")

	model := DefaultOpenAIModel
	if customModel := os.Getenv("OPENAI_MODEL"); customModel != "" {
		model = customModel
	} else if customModel := os.Getenv("MODEL"); customModel != "" {
		model = customModel
	}

	embeddingModel := DefaultEmbeddingModel
	if customModel := os.Getenv("OPENAI_EMBEDDING_MODEL"); customModel != "" {
		embeddingModel = customModel
	}

	timeout := parseTimeoutFromEnv("OPENAI_TIMEOUT", DefaultTimeout)

	// Custom OpenAI-compatible endpoints may not require a real key
	if apiKey == "" && baseURL != "" {
		apiKey = "dummy"
	}

	if apiKey == "" {
		return ClientConfig{
			Provider: "mock",
			Model:    "no-provider",
			Timeout:  timeout,
		}
	}

	return ClientConfig{
		Provider:       DefaultProvider,
		Model:          model,
		EmbeddingModel: embeddingModel,
		APIKey:         apiKey,
		BaseURL:        baseURL,
		Timeout:        timeout,
	}
}
