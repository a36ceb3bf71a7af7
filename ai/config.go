// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for AI service providers.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	EmbeddingHost string

	// CompletionHost is the base URL for the text-completion service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	CompletionHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "embeddinggemma", "text-embedding-3-small"
	EmbeddingModel string

	// CompletionModel is the model identifier to use for conversational replies.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	CompletionModel string

	// EnableCompletion controls whether the text-completion collaborator
	// is created at all. When false the conversational strategy uses only
	// its offline canned-response path.
	EnableCompletion bool

	// EmbedTimeout bounds a single embedding call.
	// Default: 10s
	EmbedTimeout time.Duration

	// CompleteTimeout bounds a single completion call.
	// Default: 10s
	CompleteTimeout time.Duration

	// WebSearchTimeout bounds a single external-source search call.
	// Default: 5s
	WebSearchTimeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithCompletionHost sets the completion service host URL.
func WithCompletionHost(host string) ConfigOption {
	return func(c *Config) {
		c.CompletionHost = host
	}
}

// WithHost sets both embedding and completion hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.CompletionHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithCompletionModel sets the completion model identifier.
func WithCompletionModel(model string) ConfigOption {
	return func(c *Config) {
		c.CompletionModel = model
	}
}

// WithCompletion enables or disables the text-completion collaborator.
func WithCompletion(enabled bool) ConfigOption {
	return func(c *Config) {
		c.EnableCompletion = enabled
	}
}

// WithTimeouts sets the collaborator call timeouts. Zero values keep defaults.
func WithTimeouts(embed, complete, webSearch time.Duration) ConfigOption {
	return func(c *Config) {
		if embed > 0 {
			c.EmbedTimeout = embed
		}
		if complete > 0 {
			c.CompleteTimeout = complete
		}
		if webSearch > 0 {
			c.WebSearchTimeout = webSearch
		}
	}
}

// DefaultConfig returns a Config with sensible defaults for local OpenAI-compatible services.
// By default, both embedding and completion use the same host and completion
// is disabled so the engine is fully usable offline.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		EmbeddingHost:    defaultHost,
		CompletionHost:   defaultHost,
		EmbeddingModel:   "embeddinggemma",
		CompletionModel:  "qwen2.5:3b",
		EnableCompletion: false,
		EmbedTimeout:     10 * time.Second,
		CompleteTimeout:  10 * time.Second,
		WebSearchTimeout: 5 * time.Second,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434/v1"),
//	    ai.WithEmbeddingModel("text-embedding-3-small"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is required
// by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.EmbeddingHost != "" && !strings.HasSuffix(c.EmbeddingHost, "/v1") {
		c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/") + "/v1"
	}
	if c.CompletionHost != "" && !strings.HasSuffix(c.CompletionHost, "/v1") {
		c.CompletionHost = strings.TrimSuffix(c.CompletionHost, "/") + "/v1"
	}
	if c.EmbedTimeout <= 0 {
		c.EmbedTimeout = 10 * time.Second
	}
	if c.CompleteTimeout <= 0 {
		c.CompleteTimeout = 10 * time.Second
	}
	if c.WebSearchTimeout <= 0 {
		c.WebSearchTimeout = 5 * time.Second
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("ai config: EmbeddingHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.EnableCompletion {
		if c.CompletionHost == "" {
			return errors.New("ai config: CompletionHost is required when completion is enabled")
		}
		if c.CompletionModel == "" {
			return errors.New("ai config: CompletionModel is required when completion is enabled")
		}
	}
	return nil
}
