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


// Package knowledge provides the read-only knowledge store backing all
// answering strategies.
//
// The store holds three independent partitions, each loaded once from a
// snapshot at construction:
//
//   - cache: flat key/value tables of contacts and quick facts
//   - graph: the labeled relationship graph of departments, services,
//     issues, and procedures, with referential integrity enforced at load
//   - documents: paragraph-aligned chunks of source documents with
//     precomputed embeddings
//
// Partitions fail independently. A snapshot that is missing or invalid
// degrades only its own partition; lookups against a failed partition
// return ErrPartitionUnavailable and the rest of the store still serves.
// After a successful load everything is immutable, so concurrent reads
// need no synchronization.
package knowledge
