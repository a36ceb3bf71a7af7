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


// Package ai provides abstractions for the external collaborators used
// by CivicMind.
//
// The engine core never talks to a network service directly; it depends
// on three interfaces defined here:
//
//   - Embedder: text -> fixed-length vector, treated as a pure function
//   - Completer: system-framed text completion for conversational replies
//   - WebSearcher: ranked external-source results for a query
//
// Provider aggregates the three for convenient initialization. Completer
// and WebSearcher are optional: a nil value means the collaborator is
// absent and the engine must use its complete offline answer path.
//
// # Implementation Packages
//
//   - ai/openai: embeddings and completion via OpenAI-compatible APIs
//   - ai/offline: deterministic offline web-source results
//   - ai/mock: test doubles with injectable behavior
//
// Public constructors (openai.NewProvider and friends) return interface
// types to enforce abstraction. Mock constructors return concrete types
// so tests can inject behavior and assert call counts.
package ai
