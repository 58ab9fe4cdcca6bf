// Model information and capabilities
package llm

// ModelInfo contains information about the model
type ModelInfo struct {
	Name               string `json:"name"`
	Provider           string `json:"provider"`
	EmbeddingModel     string `json:"embedding_model,omitempty"`
	SupportsChat       bool   `json:"supports_chat"`
	SupportsImages     bool   `json:"supports_images"`
	SupportsAudio      bool   `json:"supports_audio"`
	SupportsEmbeddings bool   `json:"supports_embeddings"`
	SupportsStreaming  bool   `json:"supports_streaming"`
}
