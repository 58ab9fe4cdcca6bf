// Package mock provides a mock client implementation for testing go-llm-openai applications.
//
// This package implements the llm.Client interface with configurable responses
// and errors, so code built on the OpenAI client can be tested without network
// access.
//
// Features:
// - Queued chat replies and embedding vectors
// - Fixed image URLs and audio transcripts
// - Queued errors of any llm.ErrorKind
// - Latency simulation honouring context cancellation
// - Call logging for assertions
package mock
