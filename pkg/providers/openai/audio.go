package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sashabaranov/go-openai"

	"github.com/inercia/go-llm-openai/pkg/llm"
)

const (
	audioTranscriptionsPath = "/audio/transcriptions"
	audioTranslationsPath   = "/audio/translations"
)

// audioCall is the go-openai method that uploads the form for one endpoint
type audioCall func(*openai.Client, context.Context, openai.AudioRequest) (openai.AudioResponse, error)

// TranscribeAudio uploads the audio file at path and returns its transcript
func (c *Client) TranscribeAudio(ctx context.Context, path string) (string, error) {
	return c.audio(ctx, audioTranscriptionsPath, (*openai.Client).CreateTranscription, path)
}

// TranslateAudio uploads the audio file at path and returns an English translation
func (c *Client) TranslateAudio(ctx context.Context, path string) (string, error) {
	return c.audio(ctx, audioTranslationsPath, (*openai.Client).CreateTranslation, path)
}

// sdkClient returns a go-openai client bound to the handle's key and base
// URL that sends through rec
func sdkClient(s settings, rec *recorder) *openai.Client {
	config := openai.DefaultConfig(s.apiKey)
	config.BaseURL = s.baseURL
	config.HTTPClient = rec
	return openai.NewClientWithConfig(config)
}

// audio reads the file before any network traffic so a bad path is reported
// as an io error, never as a transport error
func (c *Client) audio(ctx context.Context, endpoint string, call audioCall, path string) (string, error) {
	s, cfgErr := c.settings()
	if cfgErr != nil {
		return "", c.fail(cfgErr)
	}
	if path == "" {
		return "", c.fail(llm.NewConfigError("missing_file", "audio file path is required"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", c.fail(llm.NewIOError(path, err))
	}

	ctx, cancel := withTimeout(ctx, s, 0)
	defer cancel()

	rec := c.newRecorder()
	_, err = call(sdkClient(s, rec), ctx, openai.AudioRequest{
		Model:    s.audioModel,
		FilePath: filepath.Base(path),
		Reader:   bytes.NewReader(data),
	})

	resp := rec.resp
	if resp == nil {
		if err == nil {
			return "", c.fail(llm.NewParseError("audio request returned no response", nil, nil))
		}
		return "", c.fail(llm.NewTransportError(err))
	}
	if provErr := c.checkProvider(endpoint, resp); provErr != nil {
		return "", c.fail(provErr)
	}
	if err != nil {
		return "", c.fail(llm.NewParseError("decode audio response", resp.Body, err))
	}

	// go-openai leaves Text empty for both a missing and a null field
	var decoded struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return "", c.fail(llm.NewParseError("decode audio response", resp.Body, err))
	}
	if decoded.Text == nil {
		return "", c.fail(llm.NewParseError("audio response has no text", resp.Body, nil))
	}
	return *decoded.Text, nil
}
