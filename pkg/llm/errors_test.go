package llm

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "configuration",
			err:  NewConfigError("not_initialized", "client is not initialized"),
			want: "configuration error: client is not initialized",
		},
		{
			name: "provider with status",
			err:  &Error{Kind: KindProvider, Message: "invalid api key", StatusCode: 401},
			want: "provider error (status 401): invalid api key",
		},
		{
			name: "parse with cause",
			err:  NewParseError("missing choices", nil, errors.New("boom")),
			want: "parse error: missing choices: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_KindMatching(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("dial tcp: %w", errors.New("connection refused"))
	err := fmt.Errorf("chat: %w", NewTransportError(cause))

	assert.True(t, IsKind(err, KindTransport))
	assert.False(t, IsKind(err, KindProvider))
	assert.True(t, errors.Is(err, &Error{Kind: KindTransport}))
	assert.False(t, errors.Is(err, &Error{Kind: KindParse}))
	assert.False(t, IsKind(errors.New("plain"), KindTransport))

	var llmErr *Error
	require.True(t, errors.As(err, &llmErr))
	assert.Equal(t, "transport_error", llmErr.Code)
	assert.ErrorIs(t, llmErr, cause)
}

func TestError_IOErrorUnwrapsToOSError(t *testing.T) {
	t.Parallel()

	_, statErr := os.Stat("/definitely/not/here.mp3")
	err := NewIOError("/definitely/not/here.mp3", statErr)

	assert.Equal(t, KindIO, err.Kind)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "/definitely/not/here.mp3")
}
