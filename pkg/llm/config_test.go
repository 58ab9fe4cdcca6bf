package llm

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearOpenAIEnv blanks every variable GetLLMFromEnv reads
func clearOpenAIEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL", "MODEL",
		"OPENAI_EMBEDDING_MODEL", "OPENAI_TIMEOUT",
	} {
		t.Setenv(name, "")
	}
}

func TestGetLLMFromEnv(t *testing.T) {
	t.Run("no key falls back to mock", func(t *testing.T) {
		clearOpenAIEnv(t)

		config := GetLLMFromEnv()
		assert.Equal(t, "mock", config.Provider)
		assert.Equal(t, "no-provider", config.Model)
		assert.Equal(t, DefaultTimeout, config.Timeout)
	})

	t.Run("api key selects openai with defaults", func(t *testing.T) {
		clearOpenAIEnv(t)
		t.Setenv("OPENAI_API_KEY", "sk-test")

		config := GetLLMFromEnv()
		assert.Equal(t, "openai", config.Provider)
		assert.Equal(t, "sk-test", config.APIKey)
		assert.Equal(t, DefaultOpenAIModel, config.Model)
		assert.Equal(t, DefaultEmbeddingModel, config.EmbeddingModel)
		assert.Empty(t, config.BaseURL)
	})

	t.Run("overrides", func(t *testing.T) {
		clearOpenAIEnv(t)
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
		t.Setenv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small")
		t.Setenv("OPENAI_TIMEOUT", "5")

		config := GetLLMFromEnv()
		assert.Equal(t, "gpt-4o-mini", config.Model)
		assert.Equal(t, "text-embedding-3-small", config.EmbeddingModel)
		assert.Equal(t, 5*time.Second, config.Timeout)
	})

	t.Run("invalid timeout keeps default", func(t *testing.T) {
		clearOpenAIEnv(t)
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("OPENAI_TIMEOUT", "soon")

		assert.Equal(t, DefaultTimeout, GetLLMFromEnv().Timeout)
	})

	t.Run("custom endpoint without key", func(t *testing.T) {
		clearOpenAIEnv(t)
		t.Setenv("OPENAI_BASE_URL", "http://localhost:8080/v1")

		config := GetLLMFromEnv()
		assert.Equal(t, "openai", config.Provider)
		assert.Equal(t, "dummy", config.APIKey)
		assert.Equal(t, "http://localhost:8080/v1", config.BaseURL)
	})
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GO_LLM_OPENAI_TEST_VAR=from-file\n"), 0o600))

	t.Setenv("GO_LLM_OPENAI_TEST_VAR", "")
	require.NoError(t, os.Unsetenv("GO_LLM_OPENAI_TEST_VAR"))

	require.NoError(t, LoadEnvFiles(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("GO_LLM_OPENAI_TEST_VAR"))

	t.Run("existing variables win", func(t *testing.T) {
		t.Setenv("GO_LLM_OPENAI_TEST_VAR", "from-env")
		require.NoError(t, LoadEnvFiles(path))
		assert.Equal(t, "from-env", os.Getenv("GO_LLM_OPENAI_TEST_VAR"))
	})
}
