// Package factory builds llm.Client values from an llm.ClientConfig.
//
// Providers register a constructor under a name. The openai and mock
// providers are registered when this package is imported.
//
// Example usage:
//
//	import (
//	    "github.com/inercia/go-llm-openai/pkg/factory"
//	    "github.com/inercia/go-llm-openai/pkg/llm"
//	)
//
//	client, err := factory.New().CreateClient(llm.GetLLMFromEnv())
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//	reply, err := client.Chat(ctx, "Hello!")
package factory
