// Package openai implements the ai interfaces against OpenAI-compatible
// APIs (OpenAI, Ollama, LocalAI, vLLM) via langchaingo.
//
// The package serves two concerns: text embeddings for the document
// index and chat completion for conversational replies. Both accept the
// shared ai.Config and default to a local Ollama-style host.
package openai
