package test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/inercia/go-llm-openai/pkg/factory"
	"github.com/inercia/go-llm-openai/pkg/llm"
)

// envConfig loads an optional .env file and reads the OPENAI_* variables
func envConfig(t *testing.T) llm.ClientConfig {
	t.Helper()
	require.NoError(t, llm.LoadEnvFiles("../.env", ".env"))
	return llm.GetLLMFromEnv()
}

// createTestClient creates a client using environment configuration
func createTestClient(t *testing.T) llm.Client {
	t.Helper()

	config := envConfig(t)
	client, err := factory.New().CreateClient(config)
	require.NoError(t, err, "Failed to create LLM client")
	require.NotNil(t, client, "Client should not be nil")

	info := client.GetModelInfo()
	t.Logf("Using %s provider with model %s", info.Provider, info.Name)

	return client
}

// createTestClientWithTimeout creates a client with custom timeout
func createTestClientWithTimeout(t *testing.T, timeout time.Duration) llm.Client {
	t.Helper()

	config := envConfig(t)
	config.Timeout = timeout

	client, err := factory.New().CreateClient(config)
	require.NoError(t, err, "Failed to create LLM client with timeout")
	require.NotNil(t, client, "Client should not be nil")

	return client
}

// skipIfNoProvider skips the test if no real provider is configured
func skipIfNoProvider(t *testing.T, client llm.Client) {
	t.Helper()

	info := client.GetModelInfo()
	if info.Provider == "mock" && info.Name == "no-provider" {
		t.Skip("No LLM provider available - set OPENAI_API_KEY (and optionally OPENAI_BASE_URL)")
	}
}
