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

// Package answer assembles caller-facing answers. The assembler asks
// the router for a strategy, dispatches to it, falls back to the
// conversational strategy when the pick is unavailable or produces
// nothing usable, and renders the structured result into attributed
// prose. Answer never returns an error to its caller.
package answer

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/poiesic/civicmind/core"
	"github.com/poiesic/civicmind/router"
	"github.com/poiesic/civicmind/strategy"
)

const apologyText = "I'm sorry, I ran into a problem while preparing that answer. " +
	"Please try rephrasing your question or ask about a specific civic service."

// Assembler dispatches queries to answering strategies and renders
// their results. It is immutable after construction and safe for
// concurrent use.
type Assembler struct {
	router     *router.Router
	strategies map[core.StrategyKind]strategy.Strategy
	logger     *slog.Logger
}

// Option configures an Assembler.
type Option func(*Assembler) error

// WithLogger sets the logger used by the assembler.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) error {
		a.logger = logger
		return nil
	}
}

// New creates an Assembler over the given router and strategies. The
// conversational strategy must be present: it terminates the fallback
// chain, and without it the assembler could not keep Answer total.
func New(r *router.Router, strategies []strategy.Strategy, opts ...Option) (*Assembler, error) {
	if r == nil {
		return nil, ErrRouterRequired
	}

	a := &Assembler{
		router:     r,
		strategies: make(map[core.StrategyKind]strategy.Strategy, len(strategies)),
		logger:     slog.Default(),
	}
	for _, s := range strategies {
		a.strategies[s.Kind()] = s
	}
	if _, ok := a.strategies[core.StrategyConversational]; !ok {
		return nil, ErrConversationalRequired
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	a.logger = a.logger.With("component", "assembler")

	return a, nil
}

// Answer resolves a query into an attributed answer. It never returns
// an error: unavailable strategies, failed lookups, empty results and
// formatting failures all degrade through the fallback chain instead.
func (a *Assembler) Answer(ctx context.Context, query string) core.Answer {
	score := a.router.Classify(query)
	a.logger.Debug("query routed", "strategy", score.Winner, "confidence", score.Confidence)

	answer := core.Answer{
		Strategy:          score.Winner,
		Confidence:        score.Confidence,
		MatchedSignatures: score.WinningSignatures(),
		Timestamp:         time.Now(),
	}

	result, ok := a.dispatch(ctx, score.Winner, query)
	if !ok {
		result = a.strategies[core.StrategyConversational].Lookup(ctx, query)
		answer.Strategy = core.StrategyFallback
	}

	answer.Text = a.render(result)
	return answer
}

// dispatch runs the routed strategy. The boolean reports whether the
// result is usable; false sends the query to the conversational fallback.
func (a *Assembler) dispatch(ctx context.Context, kind core.StrategyKind, query string) (core.StrategyResult, bool) {
	s, ok := a.strategies[kind]
	if !ok || !s.Available() {
		a.logger.Warn("routed strategy unavailable", "strategy", kind)
		return core.StrategyResult{}, false
	}

	result := s.Lookup(ctx, query)
	switch result.Status {
	case core.ResultFound:
		return result, true
	case core.ResultFailed:
		a.logger.Warn("strategy failed", "strategy", kind, "reason", result.Reason)
		return core.StrategyResult{}, false
	default:
		a.logger.Debug("strategy found nothing", "strategy", kind)
		return core.StrategyResult{}, false
	}
}

// render formats a found result, recovering any formatting failure
// into the generic apology so Answer stays total.
func (a *Assembler) render(result core.StrategyResult) (text string) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("formatting panicked", "kind", result.Kind, "panic", r)
			text = apologyText
		}
	}()

	text, err := formatResult(result)
	if err != nil {
		a.logger.Error("formatting failed", "kind", result.Kind, "error", err)
		return apologyText
	}
	return text
}

// Availability reports, per routable strategy, whether its backing
// knowledge is serving. Strategies not wired into the assembler report
// false.
func (a *Assembler) Availability() map[core.StrategyKind]bool {
	status := make(map[core.StrategyKind]bool, len(core.Strategies()))
	for _, kind := range core.Strategies() {
		s, ok := a.strategies[kind]
		status[kind] = ok && s.Available()
	}
	return status
}

// ExplainRouting renders the router's verdict for a query as a short
// human-readable report of scores, matched signatures and the winner.
func (a *Assembler) ExplainRouting(query string) string {
	score := a.router.Classify(query)

	var b strings.Builder
	fmt.Fprintf(&b, "query: %q\n", query)
	for _, kind := range a.router.Priority() {
		fmt.Fprintf(&b, "  %s: %d", kind, score.Scores[kind])
		if matched := score.Matched[kind]; len(matched) > 0 {
			sorted := append([]string(nil), matched...)
			sort.Strings(sorted)
			fmt.Fprintf(&b, " (%s)", strings.Join(sorted, ", "))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "winner: %s (confidence %.2f)", score.Winner, score.Confidence)
	return b.String()
}
