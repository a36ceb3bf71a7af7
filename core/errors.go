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


package core

import "errors"

// Domain validation errors
var (
	// ErrEmptyChunk indicates a chunk with no text body.
	ErrEmptyChunk = errors.New("chunk text cannot be empty")

	// ErrEmptyChunkSource indicates a chunk without a source document name.
	ErrEmptyChunkSource = errors.New("chunk source cannot be empty")

	// ErrEmptyNodeID indicates a graph node without an identifier.
	ErrEmptyNodeID = errors.New("graph node id cannot be empty")

	// ErrInvalidNodeKind indicates an unknown graph node kind.
	ErrInvalidNodeKind = errors.New("invalid graph node kind")

	// ErrInvalidRelation indicates an unknown edge relation label.
	ErrInvalidRelation = errors.New("invalid edge relation label")

	// ErrDanglingEdge indicates an edge endpoint that references no known node.
	ErrDanglingEdge = errors.New("edge references nonexistent node")
)
