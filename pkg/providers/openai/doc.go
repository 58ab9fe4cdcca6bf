// Package openai provides a thin client for the OpenAI HTTP API.
//
// Each operation is one synchronous round trip: build a JSON (or multipart)
// body, send it with bearer authentication, decode the one field the caller
// wants. There is no retrying, streaming or caching.
//
// Operations:
// - Chat / ChatWithModel: /chat/completions, returns choices[0].message.content
// - GenerateImage: /images/generations, returns the raw "data" array as JSON text
// - TranscribeAudio / TranslateAudio: multipart upload via go-openai, returns the "text" field
// - CreateEmbeddingArray / Embed: /embeddings, returns data[0].embedding
// - CreateEmbeddingJSON: builds the embeddings request body without sending it
// - RequestWithStatus: raw request returning the body and status code
//
// A Client must be initialized with an API key (Init or NewClient) before any
// network operation. Failures are returned as *llm.Error values tagged with a
// kind, and the last failure message is also kept for LastError.
package openai
