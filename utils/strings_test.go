// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"testing"

	"github.com/ik5/mp3parser/internal/mp3test"
)

func TestDecodeISO(t *testing.T) {
	t.Parallel()

	buf := []byte{'x', 'C', 'a', 'f', 0xE9, 'x'}

	if got := DecodeISO(buf, 1, 4); got != "Café" {
		t.Errorf("DecodeISO() = %q, want %q", got, "Café")
	}

	if got := DecodeISO(buf, 1, 0); got != "" {
		t.Errorf("DecodeISO() with zero length = %q, want empty", got)
	}

	if got := DecodeISO([]byte{0x80, 0xFF}, 0, 2); got != "\u0080ÿ" {
		t.Errorf("DecodeISO() upper half = %q, want %q", got, "\u0080ÿ")
	}

	if got := DecodeISO(buf, 4, 10); got != "éx" {
		t.Errorf("DecodeISO() past end = %q, want %q", got, "éx")
	}
}

func TestDecodeUCS2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  []byte
		want string
	}{
		{name: "little endian with BOM", buf: mp3test.UCS2("πρώτο"), want: "πρώτο"},
		{name: "big endian with BOM", buf: mp3test.UCS2BE("δεύτερο"), want: "δεύτερο"},
		{name: "no BOM defaults to little endian", buf: []byte{'a', 0, 'b', 0}, want: "ab"},
		{name: "BOM only", buf: []byte{0xFF, 0xFE}, want: ""},
		{name: "odd trailing byte dropped", buf: []byte{0xFF, 0xFE, 'A', 0, 'B'}, want: "A"},
		{name: "single byte", buf: []byte{'A'}, want: ""},
		{name: "empty", buf: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DecodeUCS2(tt.buf, 0, len(tt.buf)); got != tt.want {
				t.Errorf("DecodeUCS2() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindTerminatorISO(t *testing.T) {
	t.Parallel()

	buf := []byte{'a', 'b', 0, 'c', 0}

	if got := FindTerminatorISO(buf, 0, len(buf)); got != 2 {
		t.Errorf("FindTerminatorISO() = %d, want 2", got)
	}

	if got := FindTerminatorISO(buf, 3, 2); got != 4 {
		t.Errorf("FindTerminatorISO() from 3 = %d, want 4", got)
	}

	if got := FindTerminatorISO(buf, 0, 2); got != NotFound {
		t.Errorf("FindTerminatorISO() short window = %d, want NotFound", got)
	}
}

func TestFindTerminatorUCS2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		buf    []byte
		offset int
		want   int
	}{
		{
			// 'a' 00 | 00 00: the first zero pair starts at an odd position
			name: "realigned to even boundary",
			buf:  []byte{'a', 0, 0, 0},
			want: 2,
		},
		{
			name: "aligned",
			buf:  []byte{0xC0, 0x03, 0, 0, 'x', 0},
			want: 2,
		},
		{
			name:   "relative to offset",
			buf:    []byte{9, 'a', 0, 0, 0},
			offset: 1,
			want:   3,
		},
		{
			name: "missing",
			buf:  []byte{'a', 0, 'b', 0},
			want: NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FindTerminatorUCS2(tt.buf, tt.offset, len(tt.buf)-tt.offset)
			if got != tt.want {
				t.Errorf("FindTerminatorUCS2() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDecodeTerminated(t *testing.T) {
	t.Parallel()

	t.Run("iso with terminator", func(t *testing.T) {
		t.Parallel()

		buf := mp3test.Content("image/png", 0, "rest")
		s, n := DecodeTerminated(buf, 0, len(buf), EncodingISO)
		if s != "image/png" || n != 9 {
			t.Errorf("DecodeTerminated() = (%q, %d), want (%q, 9)", s, n, "image/png")
		}
	})

	t.Run("iso without terminator", func(t *testing.T) {
		t.Parallel()

		buf := []byte("plain")
		s, n := DecodeTerminated(buf, 0, len(buf), EncodingISO)
		if s != "plain" || n != 5 {
			t.Errorf("DecodeTerminated() = (%q, %d), want (%q, 5)", s, n, "plain")
		}
	})

	t.Run("ucs2 keeps source byte count", func(t *testing.T) {
		t.Parallel()

		buf := mp3test.Content(mp3test.UCS2("é"), 0, 0, "tail")
		s, n := DecodeTerminated(buf, 0, len(buf), EncodingUCS2)
		if s != "é" || n != 4 {
			t.Errorf("DecodeTerminated() = (%q, %d), want (%q, 4)", s, n, "é")
		}
	})
}

func TestEncoding(t *testing.T) {
	t.Parallel()

	if EncodingISO.TerminatorSize() != 1 || EncodingUCS2.TerminatorSize() != 2 {
		t.Error("TerminatorSize() mismatch")
	}

	if Encoding(3).IsUCS2() {
		t.Error("Encoding(3).IsUCS2() = true, want false")
	}

	if EncodingUCS2.String() != "UCS-2" {
		t.Errorf("EncodingUCS2.String() = %q", EncodingUCS2.String())
	}
}
