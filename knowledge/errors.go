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


package knowledge

import (
	"errors"
	"fmt"
)

var (
	// ErrEmbedderRequired indicates the document partition was loaded
	// without an embedder.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrPartitionUnavailable indicates a partition failed to load and
	// cannot serve lookups.
	ErrPartitionUnavailable = errors.New("partition unavailable")

	// ErrSnapshotMissing indicates a snapshot file or directory was not
	// found at the configured path.
	ErrSnapshotMissing = errors.New("snapshot missing")

	// ErrUnknownNode indicates a graph lookup referenced a node ID that
	// doesn't exist.
	ErrUnknownNode = errors.New("unknown graph node")
)

// LoadError records the failure of a single partition. Partitions load
// independently, so one LoadError never implies anything about the
// other partitions.
type LoadError struct {
	Partition string
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("partition %s: %v", e.Partition, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
