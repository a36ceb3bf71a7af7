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


// Package router scores queries against per-strategy signature sets and
// picks the answering strategy. Classification is pure string matching:
// no I/O, no randomness, identical input always yields identical output.
package router

import (
	"fmt"
	"strings"

	"github.com/poiesic/civicmind/core"
)

// Router classifies queries. Immutable after construction and safe for
// concurrent use.
type Router struct {
	signatures []SignatureSet
	priority   []core.StrategyKind
}

// Option configures a Router.
type Option func(*Router) error

// WithPriority sets the tie-break order for equal nonzero scores.
// The order must be a permutation of all strategy kinds.
// Default is Cache > Document > Graph > Conversational.
func WithPriority(order ...core.StrategyKind) Option {
	return func(r *Router) error {
		all := core.Strategies()
		if len(order) != len(all) {
			return fmt.Errorf("%w: got %d strategies, want %d", ErrInvalidPriority, len(order), len(all))
		}
		seen := make(map[core.StrategyKind]bool, len(order))
		for _, kind := range order {
			if seen[kind] {
				return fmt.Errorf("%w: duplicate strategy %s", ErrInvalidPriority, kind)
			}
			seen[kind] = true
		}
		for _, kind := range all {
			if !seen[kind] {
				return fmt.Errorf("%w: missing strategy %s", ErrInvalidPriority, kind)
			}
		}
		r.priority = order
		return nil
	}
}

// WithSignatures replaces the built-in signature sets.
func WithSignatures(signatures []SignatureSet) Option {
	return func(r *Router) error {
		if len(signatures) == 0 {
			return ErrNoSignatures
		}
		r.signatures = signatures
		return nil
	}
}

// New creates a Router with the default signatures and priority order.
func New(opts ...Option) (*Router, error) {
	r := &Router{
		signatures: DefaultSignatures(),
		priority:   core.Strategies(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Classify scores the query against every signature set and returns the
// full verdict.
//
// Keywords match case-insensitively by substring and score 1; patterns
// score 2. The strictly highest total wins; equal nonzero totals fall
// to the configured priority order. When nothing matches at all the
// query routes to the conversational strategy with confidence 0, so
// every query gets exactly one strategy.
func (r *Router) Classify(query string) core.RoutingScore {
	lower := strings.ToLower(query)

	score := core.RoutingScore{
		Scores:  make(map[core.StrategyKind]int, len(r.signatures)),
		Matched: make(map[core.StrategyKind][]string, len(r.signatures)),
	}

	total := 0
	for _, set := range r.signatures {
		points := 0
		for _, keyword := range set.Keywords {
			if strings.Contains(lower, keyword) {
				points++
				score.Matched[set.Strategy] = append(score.Matched[set.Strategy], "keyword: "+keyword)
			}
		}
		for _, pattern := range set.Patterns {
			if pattern.MatchString(lower) {
				points += 2
				score.Matched[set.Strategy] = append(score.Matched[set.Strategy], "pattern: "+pattern.String())
			}
		}
		score.Scores[set.Strategy] = points
		total += points
	}

	if total == 0 {
		score.Winner = core.StrategyConversational
		score.Confidence = 0
		return score
	}

	best := -1
	for _, kind := range r.priority {
		if points, ok := score.Scores[kind]; ok && points > best {
			best = points
			score.Winner = kind
		}
	}
	score.Confidence = float64(best) / float64(total)
	return score
}

// Priority returns the configured tie-break order.
func (r *Router) Priority() []core.StrategyKind {
	return r.priority
}
