// Core request and response types
package llm

import (
	"bytes"
	"encoding/json"
)

// MessageRole identifies the author of a chat message
type MessageRole string

// RoleUser is the only role this client sends
const RoleUser MessageRole = "user"

// Message is a single chat message as sent on the wire
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// NewTextMessage creates a message with the given role and text
func NewTextMessage(role MessageRole, text string) Message {
	return Message{Role: role, Content: text}
}

// ChatRequest represents a chat completion request body
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// NewUserChatRequest builds a request holding exactly one user message
func NewUserChatRequest(prompt, model string) ChatRequest {
	return ChatRequest{
		Model:    model,
		Messages: []Message{NewTextMessage(RoleUser, prompt)},
	}
}

// ImageRequest represents an image generation request body
type ImageRequest struct {
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

// EmbeddingRequest represents an embeddings request body. Field order is
// part of the wire contract: input first, then model.
type EmbeddingRequest struct {
	Input string `json:"input"`
	Model string `json:"model"`
}

// marshalBody encodes v without HTML escaping so prompts round-trip verbatim
func marshalBody(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Body returns the JSON encoding of the chat request
func (r ChatRequest) Body() ([]byte, error) {
	return marshalBody(r)
}

// Body returns the JSON encoding of the image request
func (r ImageRequest) Body() ([]byte, error) {
	return marshalBody(r)
}

// Body returns the JSON encoding of the embedding request
func (r EmbeddingRequest) Body() ([]byte, error) {
	return marshalBody(r)
}

// HTTPResponse is the raw result of a transport round trip
type HTTPResponse struct {
	Body       []byte
	StatusCode int
}

// IsSuccess reports whether the status code is 2xx
func (r *HTTPResponse) IsSuccess() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}
