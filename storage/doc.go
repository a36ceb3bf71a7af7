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


// Package storage provides the storage abstraction layer for civicmind.
//
// This package defines the repository interface that decouples the document
// index from its storage implementation. The BadgerDB backend in the badger
// subpackage is the production implementation; tests use the same backend in
// in-memory mode.
//
// # Constructor Return Type Pattern
//
// Public constructors return interfaces to enforce abstraction:
//
//	repo, err := badger.NewChunkRepository(backend)  // returns storage.ChunkRepository
//
// This keeps consumers decoupled from BadgerDB specifics and lets tests swap
// in alternative implementations without modification.
//
// # Serialization
//
// Chunks are serialized with a varint-based MUS encoding (see serialization.go).
// Embedding vectors are stored alongside chunk text, so a rebuilt index can
// reuse embeddings for unchanged content instead of recomputing them.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific timeout
// requirements.
package storage
