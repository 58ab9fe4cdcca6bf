package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/inercia/go-llm-openai/pkg/llm"
)

// Call records one operation made against the mock
type Call struct {
	Op     string
	Prompt string
	Model  string
	Path   string
	N      int
	Size   string
}

// Client implements the llm.Client interface for testing
type Client struct {
	mu sync.Mutex

	modelInfo         llm.ModelInfo
	chatResponses     []string
	chatIndex         int
	embeddings        [][]float32
	embeddingIndex    int
	imageURLs         []string
	transcript        string
	errors            []error
	errorIndex        int
	callLog           []Call
	latencySimulation time.Duration
	lastErr           string
	closed            bool
}

// NewClient creates a new mock LLM client for testing
func NewClient(modelName, provider string) (*Client, error) {
	return &Client{
		modelInfo: llm.ModelInfo{
			Name:               modelName,
			Provider:           provider,
			SupportsChat:       true,
			SupportsImages:     true,
			SupportsAudio:      true,
			SupportsEmbeddings: true,
		},
	}, nil
}

// begin logs the call, waits for the simulated latency and pops a queued error
func (m *Client) begin(ctx context.Context, call Call) error {
	m.mu.Lock()
	m.callLog = append(m.callLog, call)
	latency := m.latencySimulation
	closed := m.closed
	m.mu.Unlock()

	if closed {
		return m.fail(llm.NewConfigError("not_initialized", "mock client is closed"))
	}

	if latency > 0 {
		select {
		case <-time.After(latency):
		case <-ctx.Done():
			return m.fail(llm.NewTransportError(ctx.Err()))
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.errorIndex < len(m.errors) {
		err := m.errors[m.errorIndex]
		m.errorIndex++
		m.lastErr = err.Error()
		return err
	}
	return nil
}

func (m *Client) fail(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastErr = err.Error()
	return err
}

// Chat returns the next scripted reply, or an echo of the prompt
func (m *Client) Chat(ctx context.Context, prompt string) (string, error) {
	return m.ChatWithModel(ctx, prompt, m.modelInfo.Name)
}

// ChatWithModel returns the next scripted reply, or an echo of the prompt
func (m *Client) ChatWithModel(ctx context.Context, prompt, model string) (string, error) {
	if err := m.begin(ctx, Call{Op: "chat", Prompt: prompt, Model: model}); err != nil {
		return "", err
	}
	if prompt == "" {
		return "", m.fail(llm.NewConfigError("missing_prompt", "prompt is required"))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.chatIndex < len(m.chatResponses) {
		resp := m.chatResponses[m.chatIndex]
		m.chatIndex++
		return resp, nil
	}
	return fmt.Sprintf("Mock response to: %s", prompt), nil
}

// GenerateImage returns the scripted URLs encoded as the provider's data array
func (m *Client) GenerateImage(ctx context.Context, prompt string, n int, size string) (string, error) {
	if err := m.begin(ctx, Call{Op: "generate_image", Prompt: prompt, N: n, Size: size}); err != nil {
		return "", err
	}

	m.mu.Lock()
	urls := m.imageURLs
	m.mu.Unlock()
	if len(urls) == 0 {
		for i := 0; i < n; i++ {
			urls = append(urls, fmt.Sprintf("https://mock.invalid/images/%d.png", i+1))
		}
	}

	type item struct {
		URL string `json:"url"`
	}
	items := make([]item, 0, len(urls))
	for _, u := range urls {
		items = append(items, item{URL: u})
	}
	out, err := json.Marshal(items)
	if err != nil {
		return "", m.fail(llm.NewParseError("encode mock images", nil, err))
	}
	return string(out), nil
}

// TranscribeAudio checks the file exists and returns the scripted transcript
func (m *Client) TranscribeAudio(ctx context.Context, path string) (string, error) {
	return m.audio(ctx, "transcribe_audio", path)
}

// TranslateAudio checks the file exists and returns the scripted transcript
func (m *Client) TranslateAudio(ctx context.Context, path string) (string, error) {
	return m.audio(ctx, "translate_audio", path)
}

func (m *Client) audio(ctx context.Context, op, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", m.fail(llm.NewIOError(path, err))
	}
	if err := m.begin(ctx, Call{Op: op, Path: path}); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transcript, nil
}

// CreateEmbeddingArray returns the next scripted vector, or a small
// deterministic vector derived from the input
func (m *Client) CreateEmbeddingArray(ctx context.Context, input, model string) ([]float32, error) {
	if err := m.begin(ctx, Call{Op: "create_embedding", Prompt: input, Model: model}); err != nil {
		return nil, err
	}
	if input == "" || model == "" {
		return nil, m.fail(llm.NewConfigError("missing_input", "embedding input and model are required"))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.embeddingIndex < len(m.embeddings) {
		vector := append([]float32(nil), m.embeddings[m.embeddingIndex]...)
		m.embeddingIndex++
		return vector, nil
	}

	vector := make([]float32, 4)
	for i, r := range input {
		vector[i%len(vector)] += float32(r) / 1000
	}
	return vector, nil
}

// LastError returns the description of the most recent failure, or ""
func (m *Client) LastError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// GetModelInfo returns the mock model information
func (m *Client) GetModelInfo() llm.ModelInfo {
	return m.modelInfo
}

// Close marks the client closed; later calls fail with a configuration error
func (m *Client) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helper methods

// WithChatResponse queues a reply for the next Chat call
func (m *Client) WithChatResponse(content string) *Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chatResponses = append(m.chatResponses, content)
	return m
}

// WithEmbedding queues a vector for the next CreateEmbeddingArray call
func (m *Client) WithEmbedding(vector []float32) *Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.embeddings = append(m.embeddings, vector)
	return m
}

// WithImageURLs sets the URLs returned by GenerateImage
func (m *Client) WithImageURLs(urls ...string) *Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.imageURLs = urls
	return m
}

// WithTranscript sets the text returned by the audio operations
func (m *Client) WithTranscript(text string) *Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transcript = text
	return m
}

// AddError queues an error for the next call of any operation
func (m *Client) AddError(err error) *Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, err)
	return m
}

// WithError queues an *llm.Error of the given kind
func (m *Client) WithError(kind llm.ErrorKind, code, message string) *Client {
	return m.AddError(&llm.Error{
		Kind:    kind,
		Code:    code,
		Message: message,
		Type:    "mock_error",
	})
}

// WithLatency configures simulated latency for requests
func (m *Client) WithLatency(duration time.Duration) *Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latencySimulation = duration
	return m
}

// GetCallLog returns all calls made to this mock client
func (m *Client) GetCallLog() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.callLog))
	copy(out, m.callLog)
	return out
}

// GetLastCall returns the most recent call made to this mock client
func (m *Client) GetLastCall() *Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.callLog) == 0 {
		return nil
	}
	call := m.callLog[len(m.callLog)-1]
	return &call
}

// Reset clears scripted responses, errors and the call log
func (m *Client) Reset() *Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chatResponses = nil
	m.chatIndex = 0
	m.embeddings = nil
	m.embeddingIndex = 0
	m.imageURLs = nil
	m.transcript = ""
	m.errors = nil
	m.errorIndex = 0
	m.callLog = nil
	m.lastErr = ""
	return m
}

var _ llm.Client = (*Client)(nil)
