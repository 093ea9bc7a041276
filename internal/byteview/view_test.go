// SPDX-License-Identifier: EPL-2.0

package byteview

import "testing"

func TestView_Has(t *testing.T) {
	t.Parallel()

	v := View(make([]byte, 10))

	tests := []struct {
		name   string
		offset int
		n      int
		want   bool
	}{
		{name: "whole", offset: 0, n: 10, want: true},
		{name: "empty at end", offset: 10, n: 0, want: true},
		{name: "one past end", offset: 7, n: 4, want: false},
		{name: "negative offset", offset: -1, n: 1, want: false},
		{name: "negative length", offset: 0, n: -1, want: false},
		{name: "offset past end", offset: 11, n: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := v.Has(tt.offset, tt.n); got != tt.want {
				t.Errorf("Has(%d, %d) = %v, want %v", tt.offset, tt.n, got, tt.want)
			}
		})
	}
}

func TestView_BigEndian(t *testing.T) {
	t.Parallel()

	v := View{0x01, 0x02, 0x03, 0x04, 0x05}

	if got := v.Uint8(4); got != 0x05 {
		t.Errorf("Uint8(4) = %#x, want 0x05", got)
	}

	if got := v.Uint16(1); got != 0x0203 {
		t.Errorf("Uint16(1) = %#x, want 0x0203", got)
	}

	if got := v.Uint32(1); got != 0x02030405 {
		t.Errorf("Uint32(1) = %#x, want 0x02030405", got)
	}
}

func TestView_SliceAliases(t *testing.T) {
	t.Parallel()

	buf := []byte{1, 2, 3, 4}
	s := View(buf).Slice(1, 2)
	buf[1] = 9

	if s[0] != 9 {
		t.Errorf("Slice() does not alias the buffer: got %d, want 9", s[0])
	}

	if cap(s) != 2 {
		t.Errorf("cap(Slice()) = %d, want 2", cap(s))
	}
}

func TestView_IndexSeq(t *testing.T) {
	t.Parallel()

	v := View{'a', 0, 'b', 0, 0, 'c'}

	tests := []struct {
		name   string
		seq    []byte
		offset int
		length int
		want   int
	}{
		{name: "single zero", seq: []byte{0}, offset: 0, length: 6, want: 1},
		{name: "single zero after offset", seq: []byte{0}, offset: 2, length: 4, want: 3},
		{name: "double zero", seq: []byte{0, 0}, offset: 0, length: 6, want: 3},
		{name: "window too short", seq: []byte{0, 0}, offset: 0, length: 4, want: -1},
		{name: "zero length", seq: []byte{0}, offset: 0, length: 0, want: -1},
		{name: "negative length", seq: []byte{0}, offset: 0, length: -3, want: -1},
		{name: "clamped to view", seq: []byte{'c'}, offset: 4, length: 100, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := v.IndexSeq(tt.seq, tt.offset, tt.length); got != tt.want {
				t.Errorf("IndexSeq() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestView_HasSeq(t *testing.T) {
	t.Parallel()

	v := View("..Xing")

	if !v.HasSeq(2, []byte("Xing")) {
		t.Error("HasSeq(2, Xing) = false, want true")
	}

	if v.HasSeq(3, []byte("Xing")) {
		t.Error("HasSeq(3, Xing) = true, want false for out of range")
	}
}
