// SPDX-License-Identifier: EPL-2.0

// Package byteview provides bounds-aware big-endian reads over a byte slice
// that is fully resident in memory.
package byteview

import (
	"bytes"
	"encoding/binary"
)

// View is a read-only window over a complete buffer. Offsets are absolute.
type View []byte

func (v View) Len() int { return len(v) }

// Has reports whether n bytes starting at offset are inside the view.
func (v View) Has(offset, n int) bool {
	return offset >= 0 && n >= 0 && offset <= len(v) && n <= len(v)-offset
}

func (v View) Uint8(offset int) uint8 { return v[offset] }

func (v View) Uint16(offset int) uint16 {
	return binary.BigEndian.Uint16(v[offset : offset+2])
}

func (v View) Uint32(offset int) uint32 {
	return binary.BigEndian.Uint32(v[offset : offset+4])
}

// Slice returns the n bytes at offset. The result aliases the view.
func (v View) Slice(offset, n int) []byte {
	return v[offset : offset+n : offset+n]
}

// HasSeq reports whether seq is found at offset. Out of range is a miss.
func (v View) HasSeq(offset int, seq []byte) bool {
	if !v.Has(offset, len(seq)) {
		return false
	}

	return bytes.Equal(v[offset:offset+len(seq)], seq)
}

// IndexSeq locates the first occurrence of seq lying entirely within the
// length bytes starting at offset. It returns the absolute offset, or -1.
func (v View) IndexSeq(seq []byte, offset, length int) int {
	if length <= 0 || offset < 0 || offset >= len(v) {
		return -1
	}

	end := min(offset+length, len(v))
	i := bytes.Index(v[offset:end], seq)
	if i < 0 {
		return -1
	}

	return offset + i
}
