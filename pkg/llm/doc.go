// Package llm provides the provider-agnostic types shared by the go-llm-openai clients.
//
// The main components include:
//
// - Client interface: chat, image generation, audio and embedding operations
// - Configuration: ClientConfig plus environment and dotenv loading
// - Error handling: a single Error type tagged with an ErrorKind
// - Middleware: wrappers such as WithLogging that decorate any Client
//
// Provider implementations are located in separate packages under /pkg/providers/
// to maintain clean separation of concerns and avoid import cycles.
package llm
