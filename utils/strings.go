// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/ik5/mp3parser/internal/byteview"
)

// Encoding is the text encoding octet that prefixes ID3v2.3 string fields.
type Encoding byte

const (
	EncodingISO  Encoding = 0 // ISO-8859-1
	EncodingUCS2 Encoding = 1 // UCS-2, optionally BOM prefixed
)

// NotFound is returned by the terminator searches on a miss.
const NotFound = -1

var (
	isoTerminator  = []byte{0}
	ucs2Terminator = []byte{0, 0}
)

// IsUCS2 reports whether strings in this encoding are two bytes per unit.
// Every value other than 1 is read as ISO-8859-1.
func (e Encoding) IsUCS2() bool { return e == EncodingUCS2 }

// TerminatorSize is the width of the null terminator for e.
func (e Encoding) TerminatorSize() int {
	if e.IsUCS2() {
		return 2
	}
	return 1
}

func (e Encoding) String() string {
	if e.IsUCS2() {
		return "UCS-2"
	}
	return "ISO-8859-1"
}

// window clamps [offset, offset+length) to buf.
func window(buf []byte, offset, length int) []byte {
	if offset < 0 || offset >= len(buf) || length <= 0 {
		return nil
	}

	end := min(offset+length, len(buf))
	return buf[offset:end]
}

// DecodeISO reads length bytes at offset as ISO-8859-1, one code point per
// byte.
func DecodeISO(buf []byte, offset, length int) string {
	b := window(buf, offset, length)
	if len(b) == 0 {
		return ""
	}

	// every octet maps to a code point, so decoding cannot fail
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)

	return string(out)
}

// DecodeUCS2 reads length bytes at offset as 16-bit code units. A leading
// byte order mark selects the byte order and is dropped; without one the
// units are little endian. A trailing odd byte is not part of any unit and
// is dropped. ID3v2.3 mandates UCS-2, so input stays within the Basic
// Multilingual Plane, where UTF-16 and UCS-2 decode alike.
func DecodeUCS2(buf []byte, offset, length int) string {
	b := window(buf, offset, length)
	b = b[:len(b)&^1]
	if len(b) == 0 {
		return ""
	}

	out, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}

	return string(out)
}

// Decode reads length bytes at offset in encoding enc.
func Decode(buf []byte, offset, length int, enc Encoding) string {
	if enc.IsUCS2() {
		return DecodeUCS2(buf, offset, length)
	}
	return DecodeISO(buf, offset, length)
}

// FindTerminatorISO returns the absolute offset of the first zero byte in
// the length bytes at offset, or NotFound.
func FindTerminatorISO(buf []byte, offset, length int) int {
	return byteview.View(buf).IndexSeq(isoTerminator, offset, length)
}

// FindTerminatorUCS2 returns the absolute offset of the first pair of zero
// bytes in the length bytes at offset, or NotFound. A pair found at an odd
// distance from offset is the tail of a code unit followed by the real
// terminator, so the result is moved forward by one.
func FindTerminatorUCS2(buf []byte, offset, length int) int {
	trm := byteview.View(buf).IndexSeq(ucs2Terminator, offset, length)
	if trm == NotFound {
		return NotFound
	}

	if (trm-offset)%2 != 0 {
		trm++
	}

	return trm
}

// FindTerminator dispatches on enc.
func FindTerminator(buf []byte, offset, length int, enc Encoding) int {
	if enc.IsUCS2() {
		return FindTerminatorUCS2(buf, offset, length)
	}
	return FindTerminatorISO(buf, offset, length)
}

// DecodeTerminated decodes at most length bytes at offset, stopping at the
// first terminator for enc. It also returns the number of source bytes the
// string occupied, terminator excluded.
func DecodeTerminated(buf []byte, offset, length int, enc Encoding) (string, int) {
	n := length
	if trm := FindTerminator(buf, offset, length, enc); trm != NotFound {
		n = trm - offset
	}

	return Decode(buf, offset, n, enc), max(n, 0)
}
