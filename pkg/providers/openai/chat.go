package openai

import (
	"context"
	"encoding/json"

	"github.com/inercia/go-llm-openai/pkg/llm"
)

const chatCompletionsPath = "/chat/completions"

// chatResponse holds only the fields read from a chat completion. Content is
// a pointer so a missing or null content is told apart from an empty reply.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// BuildChatRequestBody returns the JSON body sent for prompt and model: one
// user message, no other parameters
func BuildChatRequestBody(prompt, model string) ([]byte, error) {
	return llm.NewUserChatRequest(prompt, model).Body()
}

// Chat sends prompt using the client's default model
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	s, cfgErr := c.settings()
	if cfgErr != nil {
		return "", c.fail(cfgErr)
	}
	return c.chat(ctx, s, prompt, s.model)
}

// ChatWithModel sends prompt as a single user message to model and returns
// the content of the first choice
func (c *Client) ChatWithModel(ctx context.Context, prompt, model string) (string, error) {
	s, cfgErr := c.settings()
	if cfgErr != nil {
		return "", c.fail(cfgErr)
	}
	return c.chat(ctx, s, prompt, model)
}

func (c *Client) chat(ctx context.Context, s settings, prompt, model string) (string, error) {
	if prompt == "" {
		return "", c.fail(llm.NewConfigError("missing_prompt", "prompt is required"))
	}
	if model == "" {
		return "", c.fail(llm.NewConfigError("missing_model", "model is required"))
	}

	body, err := BuildChatRequestBody(prompt, model)
	if err != nil {
		return "", c.fail(llm.NewConfigError("invalid_request", err.Error()))
	}

	resp, reqErr := c.post(ctx, s, chatCompletionsPath, body, contentTypeJSON)
	if reqErr != nil {
		return "", c.fail(reqErr)
	}

	var decoded chatResponse
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return "", c.fail(llm.NewParseError("decode chat completion", resp.Body, err))
	}
	if len(decoded.Choices) == 0 {
		return "", c.fail(llm.NewParseError("chat completion has no choices", resp.Body, nil))
	}
	content := decoded.Choices[0].Message.Content
	if content == nil {
		return "", c.fail(llm.NewParseError("first choice has no message content", resp.Body, nil))
	}
	return *content, nil
}
