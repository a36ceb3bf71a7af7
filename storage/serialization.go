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


package storage

import (
	"fmt"
	"math"

	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/civicmind/core"
)

// Chunk wire format (MUS encoding, varint-based):
//
//	id      varint uint64
//	source  varint length + raw bytes
//	ordinal varint int
//	text    varint length + raw bytes
//	vector  varint length + per-element varint uint32 (IEEE 754 bits)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	v, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: id: %w", ErrSerializationFailed, err)
	}
	return core.ID(v), nil
}

// MarshalChunk serializes a Chunk to bytes.
func MarshalChunk(chunk *core.Chunk) []byte {
	size := varint.Uint64.Size(uint64(chunk.ID)) +
		sizeString(chunk.Source) +
		varint.Int.Size(chunk.Ordinal) +
		sizeString(chunk.Text) +
		sizeVector(chunk.Vector)

	buf := make([]byte, size)
	n := varint.Uint64.Marshal(uint64(chunk.ID), buf)
	n += marshalString(chunk.Source, buf[n:])
	n += varint.Int.Marshal(chunk.Ordinal, buf[n:])
	n += marshalString(chunk.Text, buf[n:])
	marshalVector(chunk.Vector, buf[n:])
	return buf
}

// UnmarshalChunk deserializes a Chunk from bytes.
func UnmarshalChunk(data []byte) (*core.Chunk, error) {
	chunk := &core.Chunk{}

	id, n, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: chunk id: %w", ErrSerializationFailed, err)
	}
	chunk.ID = core.ID(id)

	source, m, err := unmarshalString(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: chunk source: %w", ErrSerializationFailed, err)
	}
	chunk.Source = source
	n += m

	ordinal, m, err := varint.Int.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: chunk ordinal: %w", ErrSerializationFailed, err)
	}
	chunk.Ordinal = ordinal
	n += m

	text, m, err := unmarshalString(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: chunk text: %w", ErrSerializationFailed, err)
	}
	chunk.Text = text
	n += m

	vector, _, err := unmarshalVector(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: chunk vector: %w", ErrSerializationFailed, err)
	}
	chunk.Vector = vector

	return chunk, nil
}

func sizeString(s string) int {
	return varint.Int.Size(len(s)) + len(s)
}

func marshalString(s string, bs []byte) int {
	n := varint.Int.Marshal(len(s), bs)
	n += copy(bs[n:], s)
	return n
}

func unmarshalString(bs []byte) (string, int, error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return "", 0, err
	}
	if length < 0 || n+length > len(bs) {
		return "", 0, ErrTruncatedData
	}
	return string(bs[n : n+length]), n + length, nil
}

func sizeVector(v []float32) int {
	size := varint.Int.Size(len(v))
	for _, f := range v {
		size += varint.Uint32.Size(math.Float32bits(f))
	}
	return size
}

func marshalVector(v []float32, bs []byte) int {
	n := varint.Int.Marshal(len(v), bs)
	for _, f := range v {
		n += varint.Uint32.Marshal(math.Float32bits(f), bs[n:])
	}
	return n
}

func unmarshalVector(bs []byte) ([]float32, int, error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, 0, err
	}
	if length < 0 {
		return nil, 0, ErrTruncatedData
	}
	if length == 0 {
		return nil, n, nil
	}
	vector := make([]float32, length)
	for i := 0; i < length; i++ {
		bits, m, err := varint.Uint32.Unmarshal(bs[n:])
		if err != nil {
			return nil, 0, err
		}
		vector[i] = math.Float32frombits(bits)
		n += m
	}
	return vector, n, nil
}
