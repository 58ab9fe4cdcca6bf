package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"

	"github.com/inercia/go-llm-openai/pkg/llm"
)

const contentTypeJSON = "application/json"

// maxErrorBodyInMessage bounds how much of an unparseable error body ends up in Error()
const maxErrorBodyInMessage = 512

// RequestWithStatus performs a raw request against url, which must be fully
// qualified. body may be nil. A zero timeout uses the configured default.
// Any HTTP response is returned with its status code, uninterpreted; an
// error is returned only when no response was obtained.
func (c *Client) RequestWithStatus(ctx context.Context, method, url string, body []byte, timeout time.Duration) (*llm.HTTPResponse, error) {
	s, cfgErr := c.settings()
	if cfgErr != nil {
		return nil, c.fail(cfgErr)
	}
	resp, err := c.roundTrip(ctx, s, method, url, body, contentTypeJSON, timeout)
	if err != nil {
		return nil, c.fail(err)
	}
	return resp, nil
}

// recorder is the HTTPDoer every request goes through, whether built here or
// by the go-openai SDK. It logs each round trip under a fresh request id and
// keeps the fully read response.
type recorder struct {
	next   HTTPDoer
	logger *slog.Logger
	resp   *llm.HTTPResponse
}

func (c *Client) newRecorder() *recorder {
	return &recorder{next: c.httpClient, logger: c.logger}
}

func (r *recorder) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	log := r.logger.With("request_id", uuid.NewString(), "method", req.Method, "url", req.URL.String())
	start := time.Now()

	resp, err := r.next.Do(req)
	if err != nil {
		log.DebugContext(ctx, "openai request failed", "error", err, "duration", time.Since(start))
		return nil, err
	}

	raw, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		log.DebugContext(ctx, "openai response read failed", "error", err, "status", resp.StatusCode)
		return nil, fmt.Errorf("read response body: %w", err)
	}

	log.DebugContext(ctx, "openai round trip",
		"status", resp.StatusCode,
		"bytes", len(raw),
		"duration", time.Since(start))

	r.resp = &llm.HTTPResponse{Body: raw, StatusCode: resp.StatusCode}
	resp.Body = io.NopCloser(bytes.NewReader(raw))
	return resp, nil
}

// withTimeout bounds ctx by timeout, or by the configured default when timeout is zero
func withTimeout(ctx context.Context, s settings, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = s.timeout
	}
	return context.WithTimeout(ctx, timeout)
}

// roundTrip sends one request and reads the whole body
func (c *Client) roundTrip(ctx context.Context, s settings, method, url string, body []byte, contentType string, timeout time.Duration) (*llm.HTTPResponse, *llm.Error) {
	ctx, cancel := withTimeout(ctx, s, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, llm.NewTransportError(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	rec := c.newRecorder()
	if _, err := rec.Do(req); err != nil {
		return nil, llm.NewTransportError(fmt.Errorf("%s %s: %w", method, url, err))
	}
	return rec.resp, nil
}

// post sends body to path under the base URL and rejects provider errors
func (c *Client) post(ctx context.Context, s settings, path string, body []byte, contentType string) (*llm.HTTPResponse, *llm.Error) {
	resp, err := c.roundTrip(ctx, s, http.MethodPost, s.baseURL+path, body, contentType, 0)
	if err != nil {
		return nil, err
	}
	if provErr := c.checkProvider(path, resp); provErr != nil {
		return nil, provErr
	}
	return resp, nil
}

// checkProvider logs and returns the provider error carried by resp, if any
func (c *Client) checkProvider(path string, resp *llm.HTTPResponse) *llm.Error {
	provErr := providerError(resp)
	if provErr == nil {
		return nil
	}
	c.logger.Warn("openai provider error",
		"path", path,
		"status", provErr.StatusCode,
		"code", provErr.Code,
		"message", provErr.Message)
	return provErr
}

// providerError returns a provider error when resp has a non-2xx status or
// carries a non-null "error" member, and nil otherwise
func providerError(resp *llm.HTTPResponse) *llm.Error {
	var fields map[string]json.RawMessage
	var envelope json.RawMessage
	if json.Unmarshal(resp.Body, &fields) == nil {
		if raw, ok := fields["error"]; ok && !isJSONNull(raw) {
			envelope = raw
		}
	}

	if resp.IsSuccess() && envelope == nil {
		return nil
	}

	err := &llm.Error{
		Kind:       llm.KindProvider,
		Code:       "http_error",
		Type:       "api_error",
		StatusCode: resp.StatusCode,
		Body:       string(resp.Body),
	}

	if envelope != nil {
		apiErr := decodeAPIError(envelope)
		apiErr.HTTPStatusCode = resp.StatusCode
		if apiErr.Type != "" {
			err.Type = apiErr.Type
		}
		if code := codeString(apiErr.Code); code != "" {
			err.Code = code
		}
		err.Message = apiErr.Message
		if err.Message == "" {
			err.Message = envelopeSummary(apiErr.Type, codeString(apiErr.Code))
		}
		err.Err = apiErr
		return err
	}

	err.Message = http.StatusText(resp.StatusCode)
	if err.Message == "" {
		err.Message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	if len(resp.Body) > 0 {
		snippet := resp.Body
		if len(snippet) > maxErrorBodyInMessage {
			snippet = snippet[:maxErrorBodyInMessage]
		}
		err.Message = fmt.Sprintf("%s: %s", err.Message, bytes.TrimSpace(snippet))
	}
	return err
}

// decodeAPIError decodes the "error" member. go-openai rejects envelopes
// without a message, so those fall back to a field-by-field decode, and a
// bare string becomes the message.
func decodeAPIError(raw json.RawMessage) *openai.APIError {
	apiErr := &openai.APIError{}
	if json.Unmarshal(raw, apiErr) == nil {
		return apiErr
	}
	apiErr = &openai.APIError{}

	var loose struct {
		Message json.RawMessage `json:"message"`
		Type    string          `json:"type"`
		Code    any             `json:"code"`
	}
	if json.Unmarshal(raw, &loose) == nil {
		apiErr.Type = loose.Type
		apiErr.Code = loose.Code
		_ = json.Unmarshal(loose.Message, &apiErr.Message)
		return apiErr
	}

	var text string
	if json.Unmarshal(raw, &text) == nil {
		apiErr.Message = text
	}
	return apiErr
}

// codeString renders an APIError code, which may be a string or a number
func codeString(code any) string {
	switch v := code.(type) {
	case string:
		return v
	case int:
		if v != 0 {
			return strconv.Itoa(v)
		}
	case float64:
		if v != 0 {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func envelopeSummary(errType, code string) string {
	var parts []string
	for _, p := range []string{errType, code} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "provider returned an error without a message"
	}
	return strings.Join(parts, ": ")
}

func isJSONNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
