// Package llm provides text-generation clients used to produce farming advice.
// It supports OpenAI, Anthropic and Google Gemini behind a single Client
// interface, and the clean-up applied to raw model output before decoding.
package llm
