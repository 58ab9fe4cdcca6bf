package openai

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/sashabaranov/go-openai"

	"github.com/inercia/go-llm-openai/pkg/llm"
)

const imageGenerationsPath = "/images/generations"

// GenerateImage asks for n images of the given size and returns the
// response's "data" array as raw JSON text, e.g. [{"url":"https://..."}].
// n and size are sent as given; the provider validates them.
func (c *Client) GenerateImage(ctx context.Context, prompt string, n int, size string) (string, error) {
	raw, err := c.generateImage(ctx, prompt, n, size)
	if err != nil {
		return "", err
	}

	var decoded struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", c.fail(llm.NewParseError("decode image response", raw, err))
	}
	data := bytes.TrimSpace(decoded.Data)
	if len(data) == 0 || data[0] != '[' {
		return "", c.fail(llm.NewParseError("image response has no data array", raw, nil))
	}
	return string(data), nil
}

// GenerateImageURLs is like GenerateImage but decodes the result and returns
// the image URLs in order
func (c *Client) GenerateImageURLs(ctx context.Context, prompt string, n int, size string) ([]string, error) {
	raw, err := c.generateImage(ctx, prompt, n, size)
	if err != nil {
		return nil, err
	}

	var decoded openai.ImageResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, c.fail(llm.NewParseError("decode image response", raw, err))
	}

	urls := make([]string, 0, len(decoded.Data))
	for _, item := range decoded.Data {
		if item.URL != "" {
			urls = append(urls, item.URL)
		}
	}
	if len(urls) == 0 {
		return nil, c.fail(llm.NewParseError("image response has no URLs", raw, nil))
	}
	return urls, nil
}

func (c *Client) generateImage(ctx context.Context, prompt string, n int, size string) ([]byte, error) {
	s, cfgErr := c.settings()
	if cfgErr != nil {
		return nil, c.fail(cfgErr)
	}
	if prompt == "" {
		return nil, c.fail(llm.NewConfigError("missing_prompt", "prompt is required"))
	}

	body, err := llm.ImageRequest{Prompt: prompt, N: n, Size: size}.Body()
	if err != nil {
		return nil, c.fail(llm.NewConfigError("invalid_request", err.Error()))
	}

	resp, reqErr := c.post(ctx, s, imageGenerationsPath, body, contentTypeJSON)
	if reqErr != nil {
		return nil, c.fail(reqErr)
	}
	return resp.Body, nil
}
