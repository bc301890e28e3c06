// Package gemini provides an implementation of the generation.Generator
// interface backed by Google's Gemini API through google.golang.org/genai.
//
// The adapter sends the system instruction and the rendered prompt as a
// single GenerateContent call with the configured temperature and output
// token limit, bounded by the configured timeout. Responses are reduced to
// their text parts; SDK, transport and safety failures are translated to
// provider errors wrapping the generation sentinels, so the rest of the
// application never sees genai types.
package gemini
