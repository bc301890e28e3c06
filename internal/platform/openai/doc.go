// Package openai implements generation.Generator on top of the OpenAI chat
// completions API using github.com/sashabaranov/go-openai.
//
// The system instruction and rendered prompt are sent as a system message
// followed by a user message. A configured base URL points the client at any
// OpenAI-compatible gateway.
package openai
