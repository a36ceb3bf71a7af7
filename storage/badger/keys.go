package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/civicmind/core"
)

// Key prefixes for different data types
const (
	chunkPrefix       = "civchnk"
	chunkSourcePrefix = "civchnks"
)

// makeChunkKey generates a key for a chunk by ID.
func makeChunkKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", chunkPrefix, id))
}

// makeChunkSourceKey generates a composite key for the source index.
// Format: prefix:source\x00ordinal
// The NUL byte terminates the source so "water" does not match "watershed",
// and the ordinal is BigEndian so lexicographic iteration follows chunk order.
func makeChunkSourceKey(source string, ordinal int) []byte {
	prefix := chunkSourcePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + len(source) + 1 + 8
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	offset += copy(buf[offset:], source)
	buf[offset] = 0
	offset++
	binary.BigEndian.PutUint64(buf[offset:], uint64(ordinal))
	return buf
}

// makePartialChunkSourceKey generates a partial key for iterating one source.
// Format: prefix:source\x00
func makePartialChunkSourceKey(source string) []byte {
	prefix := chunkSourcePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + len(source) + 1
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	offset += copy(buf[offset:], source)
	buf[offset] = 0
	return buf
}
