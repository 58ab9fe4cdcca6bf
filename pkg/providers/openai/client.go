package openai

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/inercia/go-llm-openai/pkg/llm"
)

const (
	// DefaultModel is used by Chat when no model is configured
	DefaultModel = llm.DefaultOpenAIModel
	// DefaultAudioModel is sent with transcription and translation uploads
	DefaultAudioModel = llm.DefaultAudioModel
	// DefaultEmbeddingModel is used by Embed when no model is configured
	DefaultEmbeddingModel = llm.DefaultEmbeddingModel
)

// Image sizes accepted by the generation endpoint. Other values are passed
// through and rejected by the provider, not by this client.
const (
	ImageSize256  = openai.CreateImageSize256x256
	ImageSize512  = openai.CreateImageSize512x512
	ImageSize1024 = openai.CreateImageSize1024x1024
)

// HTTPDoer executes HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a handle holding the API key, base URL, timeout and the last
// error. All methods are safe for concurrent use.
type Client struct {
	mu             sync.RWMutex
	apiKey         string
	baseURL        string
	timeout        time.Duration
	model          string
	embeddingModel string
	audioModel     string
	lastErr        string

	httpClient HTTPDoer
	logger     *slog.Logger
}

// settings is an immutable copy of the handle state used for one call
type settings struct {
	apiKey         string
	baseURL        string
	timeout        time.Duration
	model          string
	embeddingModel string
	audioModel     string
}

// Option customizes a Client at construction time
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for every request
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		if doer != nil {
			c.httpClient = doer
		}
	}
}

// WithLogger sets the logger used for request tracing. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBaseURL overrides the API base URL
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = normalizeBaseURL(url) }
}

// WithTimeout overrides the default per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithModel sets the model used by Chat
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithEmbeddingModel sets the model used by Embed
func WithEmbeddingModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.embeddingModel = model
		}
	}
}

// WithAudioModel sets the model sent with audio uploads
func WithAudioModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.audioModel = model
		}
	}
}

// New creates a client that is not yet initialized. Network operations fail
// with a configuration error until Init is called with a non-empty key.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:        llm.DefaultOpenAIBaseURL,
		timeout:        llm.DefaultTimeout,
		model:          DefaultModel,
		embeddingModel: DefaultEmbeddingModel,
		audioModel:     DefaultAudioModel,
		httpClient:     http.DefaultClient,
		logger:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClient creates an initialized OpenAI client from config
func NewClient(config llm.ClientConfig, opts ...Option) (*Client, error) {
	if config.APIKey == "" {
		return nil, &llm.Error{
			Kind:    llm.KindConfiguration,
			Code:    "missing_api_key",
			Message: "API key is required for OpenAI",
			Type:    "authentication_error",
		}
	}

	base := []Option{
		WithModel(config.Model),
		WithEmbeddingModel(config.EmbeddingModel),
		WithTimeout(config.Timeout),
	}
	if config.BaseURL != "" {
		base = append(base, WithBaseURL(config.BaseURL))
	}
	if model := config.Extra["audio_model"]; model != "" {
		base = append(base, WithAudioModel(model))
	}

	c := New(append(base, opts...)...)
	c.Init(config.APIKey)
	return c, nil
}

// Init stores apiKey. An empty key is ignored. Calling Init again replaces
// the key and clears the last error.
func (c *Client) Init(apiKey string) {
	if apiKey == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = apiKey
	c.lastErr = ""
}

// SetBaseURL overrides the base URL for subsequent calls. The URL is not validated.
func (c *Client) SetBaseURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = normalizeBaseURL(url)
}

// SetTimeout overrides the default timeout for subsequent calls. A
// non-positive value restores llm.DefaultTimeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = llm.DefaultTimeout
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = timeout
}

// Close forgets the API key and the last error. Operations fail with a
// configuration error until Init is called again.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = ""
	c.lastErr = ""
	return nil
}

// LastError returns the description of the most recent failed call, or ""
func (c *Client) LastError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// GetModelInfo returns information about the model being used
func (c *Client) GetModelInfo() llm.ModelInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return llm.ModelInfo{
		Name:               c.model,
		Provider:           "openai",
		EmbeddingModel:     c.embeddingModel,
		SupportsChat:       true,
		SupportsImages:     true,
		SupportsAudio:      true,
		SupportsEmbeddings: true,
		SupportsStreaming:  false,
	}
}

// settings snapshots the handle, failing when no key is set
func (c *Client) settings() (settings, *llm.Error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.apiKey == "" {
		return settings{}, llm.NewConfigError("not_initialized", "client is not initialized: call Init with an API key")
	}
	return settings{
		apiKey:         c.apiKey,
		baseURL:        c.baseURL,
		timeout:        c.timeout,
		model:          c.model,
		embeddingModel: c.embeddingModel,
		audioModel:     c.audioModel,
	}, nil
}

// fail records err as the last error and returns it
func (c *Client) fail(err *llm.Error) error {
	c.mu.Lock()
	c.lastErr = err.Error()
	c.mu.Unlock()
	return err
}

func normalizeBaseURL(url string) string {
	return strings.TrimRight(url, "/")
}

var _ llm.Client = (*Client)(nil)
