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

import "fmt"

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - Source must not be empty
//
// NOT validated:
//   - Vector (can be empty until the embedding pass runs)
//   - ID (0 means "derive from content" at index time)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrEmptyChunk)
	}
	if chunk.Text == "" {
		return ErrEmptyChunk
	}
	if chunk.Source == "" {
		return ErrEmptyChunkSource
	}
	return nil
}

// ValidateNode validates a GraphNode according to domain rules.
func ValidateNode(node *GraphNode) error {
	if node == nil || node.ID == "" {
		return ErrEmptyNodeID
	}
	switch node.Kind {
	case NodeDepartment, NodeService, NodeIssue, NodeProcedure:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidNodeKind, node.Kind)
	}
}

// ValidateRelation validates an edge relation label.
func ValidateRelation(label RelationLabel) error {
	switch label {
	case RelationManagedBy, RelationRelatesTo, RelationHandledBy, RelationProcedure:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRelation, label)
	}
}
