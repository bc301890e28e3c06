// Package generation defines the boundary between the documentation service
// and external AI/LLM providers.
//
// The Generator interface is implemented by provider adapters under
// internal/platform (OpenAI and Gemini). Normalize wraps any adapter so
// that every failure leaving this package is a *domain.Error of kind
// provider or unexpected, and that an empty completion is never reported as
// a success.
package generation
