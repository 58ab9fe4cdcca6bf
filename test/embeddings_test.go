package test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddings(t *testing.T) {
	t.Parallel()

	client := createTestClient(t)
	defer func() { _ = client.Close() }()

	skipIfNoProvider(t, client)

	model := client.GetModelInfo().EmbeddingModel
	require.NotEmpty(t, model)

	first, err := client.CreateEmbeddingArray(context.Background(), "The quick brown fox", model)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := client.CreateEmbeddingArray(context.Background(), "A completely different sentence", model)
	require.NoError(t, err)
	assert.Len(t, second, len(first), "embeddings from one model share a dimension")

	t.Logf("Embedding model %s returned %d dimensions", model, len(first))
}
