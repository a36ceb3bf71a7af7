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


package strategy

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/civicmind/ai"
	"github.com/poiesic/civicmind/core"
)

const defaultCompleteTimeout = 10 * time.Second

// civicPersona frames generated replies around Chennai civic matters.
const civicPersona = `You are CivicMind, a helpful civic assistant for Chennai residents.
You specialize in Chennai civic services, municipal procedures, and government information.
Keep responses friendly, informative, and focused on civic matters.
If asked about specific civic procedures or contacts, suggest the user ask for those specifically
so you can provide accurate information from your specialized modules.`

// ConversationalStrategy handles chit-chat and anything no other
// strategy claims. It is total: a configured completer generates the
// reply, and on any completion failure (or without a completer) the
// ordered intent rules pick a canned reply, so Lookup always returns
// Found and never Empty or Failed.
type ConversationalStrategy struct {
	completer       ai.Completer
	completeTimeout time.Duration
	logger          *slog.Logger
}

// ConversationalOption configures a ConversationalStrategy.
type ConversationalOption func(*ConversationalStrategy) error

// WithCompleter sets the text-completion collaborator. A nil completer
// means canned replies only.
func WithCompleter(completer ai.Completer) ConversationalOption {
	return func(s *ConversationalStrategy) error {
		s.completer = completer
		return nil
	}
}

// WithCompleteTimeout overrides the completion timeout.
func WithCompleteTimeout(timeout time.Duration) ConversationalOption {
	return func(s *ConversationalStrategy) error {
		if timeout > 0 {
			s.completeTimeout = timeout
		}
		return nil
	}
}

// WithConversationalLogger sets a custom logger.
func WithConversationalLogger(logger *slog.Logger) ConversationalOption {
	return func(s *ConversationalStrategy) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger.With("component", "conversational-strategy")
		return nil
	}
}

// NewConversationalStrategy creates the conversational strategy.
func NewConversationalStrategy(opts ...ConversationalOption) (*ConversationalStrategy, error) {
	s := &ConversationalStrategy{
		completeTimeout: defaultCompleteTimeout,
		logger:          slog.Default().With("component", "conversational-strategy"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *ConversationalStrategy) Kind() core.StrategyKind { return core.StrategyConversational }

// Available is always true: the canned table needs no collaborator.
func (s *ConversationalStrategy) Available() bool { return true }

func (s *ConversationalStrategy) Lookup(ctx context.Context, query string) core.StrategyResult {
	if s.completer != nil {
		completeCtx, cancel := context.WithTimeout(ctx, s.completeTimeout)
		defer cancel()

		text, err := s.completer.Complete(completeCtx, civicPersona, query)
		if err == nil && text != "" {
			return core.FoundResult(core.Conversational{
				Text:   text,
				Method: core.MethodGenerated,
			})
		}
		if err != nil {
			s.logger.Warn("completion failed, using canned reply", "err", err)
		}
	}

	intent := classifyIntent(query)
	return core.FoundResult(core.Conversational{
		Text:   cannedResponses[intent],
		Method: core.MethodCanned,
		Intent: intent,
	})
}
