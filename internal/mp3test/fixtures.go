// SPDX-License-Identifier: EPL-2.0

// Package mp3test builds synthetic MPEG audio and ID3v2 byte sequences for
// tests. It does not import the parsing packages to avoid cycles.
package mp3test

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// MPEG header bit patterns, as they appear in the second header octet.
const (
	Version25 byte = 0b00
	Version2  byte = 0b10
	Version1  byte = 0b11

	Layer3 byte = 0b01
	Layer2 byte = 0b10
	Layer1 byte = 0b11
)

// Channel mode bit patterns.
const (
	Stereo      byte = 0b00
	JointStereo byte = 0b01
	DualChannel byte = 0b10
	Mono        byte = 0b11
)

// Header describes a 4-byte MPEG audio frame header to build.
type Header struct {
	Version      byte
	Layer        byte
	Unprotected  bool
	BitrateIndex byte
	SamplingRate byte
	Padded       bool
	Private      bool
	ChannelMode  byte
}

// V1L3 returns a 128 kbps, 44.1 kHz, joint stereo MPEG-1 Layer III header.
func V1L3() Header {
	return Header{
		Version:      Version1,
		Layer:        Layer3,
		Unprotected:  true,
		BitrateIndex: 0b1001,
		SamplingRate: 0b00,
		ChannelMode:  JointStereo,
	}
}

// Bytes encodes h.
func (h Header) Bytes() []byte {
	b := []byte{0xFF, 0xE0, 0, 0}
	b[1] |= h.Version<<3 | h.Layer<<1
	if h.Unprotected {
		b[1] |= 1
	}

	b[2] = h.BitrateIndex<<4 | h.SamplingRate<<2
	if h.Padded {
		b[2] |= 0b10
	}
	if h.Private {
		b[2] |= 1
	}

	b[3] = h.ChannelMode << 6

	return b
}

// Frame returns a frame of exactly length bytes starting with h. The body is
// zero filled.
func (h Header) Frame(length int) []byte {
	out := make([]byte, length)
	copy(out, h.Bytes())
	return out
}

// XingFrame returns a frame of length bytes carrying identifier ("Xing" or
// "Info") at xingOffset, followed by the flags word and the fields listed.
func (h Header) XingFrame(length, xingOffset int, identifier string, flags uint32, fields ...[]byte) []byte {
	out := h.Frame(length)
	pos := xingOffset
	pos += copy(out[pos:], identifier)
	binary.BigEndian.PutUint32(out[pos:], flags)
	pos += 4
	for _, f := range fields {
		pos += copy(out[pos:], f)
	}
	return out
}

// Uint32 returns v as four big-endian octets.
func Uint32(v uint32) []byte {
	return binary.BigEndian.AppendUint32(nil, v)
}

// Synchsafe spreads the low 28 bits of v over four 7-bit groups.
func Synchsafe(v uint32) uint32 {
	return v&0x7F |
		(v>>7&0x7F)<<8 |
		(v>>14&0x7F)<<16 |
		(v>>21&0x7F)<<24
}

// UCS2 encodes s as little-endian UTF-16 prefixed with a byte order mark.
func UCS2(s string) []byte {
	out := []byte{0xFF, 0xFE}
	for _, u := range utf16.Encode([]rune(s)) {
		out = binary.LittleEndian.AppendUint16(out, u)
	}
	return out
}

// UCS2BE encodes s as big-endian UTF-16 prefixed with a byte order mark.
func UCS2BE(s string) []byte {
	out := []byte{0xFE, 0xFF}
	for _, u := range utf16.Encode([]rune(s)) {
		out = binary.BigEndian.AppendUint16(out, u)
	}
	return out
}

// Content concatenates parts into frame content octets. Strings are taken
// byte by byte, ints and bytes are single octets, byte slices are copied.
func Content(parts ...any) []byte {
	var out []byte
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			out = append(out, v...)
		case []byte:
			out = append(out, v...)
		case byte:
			out = append(out, v)
		case int:
			out = append(out, byte(v))
		default:
			panic(fmt.Sprintf("mp3test: unsupported content part %T", p))
		}
	}
	return out
}

// ID3Frame returns an ID3v2.3 frame: the 10-byte header followed by content.
func ID3Frame(id string, parts ...any) []byte {
	content := Content(parts...)
	out := make([]byte, 0, 10+len(content))
	out = append(out, id[:4]...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(content)))
	out = append(out, 0, 0)
	return append(out, content...)
}

// ID3Tag returns a tag header for the given version and flags followed by
// frames and padding zero bytes.
func ID3Tag(major, flags byte, padding int, frames ...[]byte) []byte {
	size := padding
	for _, f := range frames {
		size += len(f)
	}

	out := []byte{'I', 'D', '3', major, 0, flags}
	out = binary.BigEndian.AppendUint32(out, Synchsafe(uint32(size)))
	for _, f := range frames {
		out = append(out, f...)
	}
	return append(out, make([]byte, padding)...)
}

// At returns b preceded by offset zero bytes.
func At(offset int, b []byte) []byte {
	return append(make([]byte, offset), b...)
}

// Concat joins byte slices.
func Concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
