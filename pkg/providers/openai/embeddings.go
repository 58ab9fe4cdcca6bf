package openai

import (
	"context"
	"encoding/json"

	"github.com/sashabaranov/go-openai"

	"github.com/inercia/go-llm-openai/pkg/llm"
)

const embeddingsPath = "/embeddings"

// CreateEmbeddingJSON returns the embeddings request body for input and
// model, {"input":...,"model":...}. It performs no network call.
func CreateEmbeddingJSON(input, model string) (string, error) {
	body, err := embeddingBody(input, model)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func embeddingBody(input, model string) ([]byte, *llm.Error) {
	if input == "" {
		return nil, llm.NewConfigError("missing_input", "embedding input is required")
	}
	if model == "" {
		return nil, llm.NewConfigError("missing_model", "model is required")
	}
	body, err := llm.EmbeddingRequest{Input: input, Model: model}.Body()
	if err != nil {
		return nil, llm.NewConfigError("invalid_request", err.Error())
	}
	return body, nil
}

// Embed creates an embedding for input with the client's embedding model
func (c *Client) Embed(ctx context.Context, input string) ([]float32, error) {
	s, cfgErr := c.settings()
	if cfgErr != nil {
		return nil, c.fail(cfgErr)
	}
	return c.embed(ctx, s, input, s.embeddingModel)
}

// CreateEmbeddingArray posts input to the embeddings endpoint and returns
// data[0].embedding. The vector length is len of the returned slice.
func (c *Client) CreateEmbeddingArray(ctx context.Context, input, model string) ([]float32, error) {
	s, cfgErr := c.settings()
	if cfgErr != nil {
		return nil, c.fail(cfgErr)
	}
	return c.embed(ctx, s, input, model)
}

func (c *Client) embed(ctx context.Context, s settings, input, model string) ([]float32, error) {
	body, bodyErr := embeddingBody(input, model)
	if bodyErr != nil {
		return nil, c.fail(bodyErr)
	}

	resp, reqErr := c.post(ctx, s, embeddingsPath, body, contentTypeJSON)
	if reqErr != nil {
		return nil, c.fail(reqErr)
	}

	var decoded openai.EmbeddingResponse
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return nil, c.fail(llm.NewParseError("decode embedding response", resp.Body, err))
	}
	if len(decoded.Data) == 0 {
		return nil, c.fail(llm.NewParseError("embedding response has no data", resp.Body, nil))
	}
	vector := decoded.Data[0].Embedding
	if len(vector) == 0 {
		return nil, c.fail(llm.NewParseError("first embedding is empty", resp.Body, nil))
	}
	return vector, nil
}
