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


// Package strategy implements the four answering strategies behind one
// uniform lookup interface: cache, graph, document, and conversational.
// Strategies never format text for the user; they return structured
// results that the answer package renders.
package strategy

import (
	"context"

	"github.com/poiesic/civicmind/core"
)

// Strategy is one answering strategy. Implementations are immutable
// after construction and safe for concurrent use.
type Strategy interface {
	// Kind identifies the strategy.
	Kind() core.StrategyKind

	// Available reports whether the strategy can serve lookups at all.
	// A strategy whose backing partition failed to load reports false.
	Available() bool

	// Lookup resolves the query. The result is Empty when the strategy
	// has nothing for this query, Failed when resolution broke, and
	// Found otherwise. Lookup never panics and never blocks beyond the
	// strategy's configured timeouts.
	Lookup(ctx context.Context, query string) core.StrategyResult
}
