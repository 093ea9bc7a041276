// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/ik5/mp3parser/internal/mp3test"
	"github.com/ik5/mp3parser/section"
)

// v1l3At48k is 128 kbps at 48 kHz: frames are exactly 384 bytes long.
func v1l3At48k() mp3test.Header {
	h := mp3test.V1L3()
	h.SamplingRate = 0b01
	return h
}

func TestReadXingTag(t *testing.T) {
	t.Parallel()

	toc := make([]byte, XingTOCSize)
	for i := range toc {
		toc[i] = byte(i)
	}

	flags := XingFramesFlag | XingBytesFlag | XingTOCFlag | XingQualityFlag
	frame := v1l3At48k().XingFrame(384, 36, IdentifierXing, flags,
		mp3test.Uint32(1000), mp3test.Uint32(384000), toc, mp3test.Uint32(57))
	buf := mp3test.At(5, frame)

	tag, err := ReadXingTag(buf, 5)
	if err != nil {
		t.Fatalf("ReadXingTag() error = %v", err)
	}

	want := section.Info{Type: section.Xing, Offset: 5, ByteLength: 384}
	if tag.Info != want {
		t.Errorf("Info = %+v, want %+v", tag.Info, want)
	}
	if tag.Identifier != IdentifierXing || !tag.IsVBR() {
		t.Errorf("Identifier = %q, IsVBR() = %v", tag.Identifier, tag.IsVBR())
	}
	if tag.NextFrameOffset != 389 {
		t.Errorf("NextFrameOffset = %d, want 389", tag.NextFrameOffset)
	}
	if tag.Flags != flags {
		t.Errorf("Flags = %#x, want %#x", tag.Flags, flags)
	}
	if !tag.HasFrames || tag.Frames != 1000 {
		t.Errorf("Frames = (%v, %d), want (true, 1000)", tag.HasFrames, tag.Frames)
	}
	if !tag.HasBytes || tag.Bytes != 384000 {
		t.Errorf("Bytes = (%v, %d), want (true, 384000)", tag.HasBytes, tag.Bytes)
	}
	if !bytes.Equal(tag.TOC, toc) {
		t.Errorf("TOC = %v, want %v", tag.TOC, toc)
	}
	if !tag.HasQuality || tag.Quality != 57 {
		t.Errorf("Quality = (%v, %d), want (true, 57)", tag.HasQuality, tag.Quality)
	}

	d, ok := tag.Duration()
	if !ok || d != 24*time.Second {
		t.Errorf("Duration() = (%v, %v), want (24s, true)", d, ok)
	}
}

func TestReadXingTag_Info(t *testing.T) {
	t.Parallel()

	mono := v1l3At48k()
	mono.ChannelMode = mp3test.Mono

	buf := mono.XingFrame(384, 21, IdentifierInfo, 0)

	tag, err := ReadXingTag(buf, 0)
	if err != nil {
		t.Fatalf("ReadXingTag() error = %v", err)
	}
	if tag.Identifier != IdentifierInfo || tag.IsVBR() {
		t.Errorf("Identifier = %q, IsVBR() = %v, want Info and false", tag.Identifier, tag.IsVBR())
	}
	if tag.HasFrames || tag.TOC != nil {
		t.Error("optional fields present with zero flags")
	}
	if _, ok := tag.Duration(); ok {
		t.Error("Duration() ok = true without frame count")
	}
}

func TestReadXingTag_TruncatedFields(t *testing.T) {
	t.Parallel()

	frame := v1l3At48k().XingFrame(384, 36, IdentifierXing, XingFramesFlag|XingBytesFlag,
		mp3test.Uint32(10), mp3test.Uint32(20))
	// identifier, flags, frames and half of bytes
	buf := frame[:36+4+4+4+2]

	tag, err := ReadXingTag(buf, 0)
	if err != nil {
		t.Fatalf("ReadXingTag() error = %v", err)
	}
	if !tag.HasFrames || tag.Frames != 10 {
		t.Errorf("Frames = (%v, %d), want (true, 10)", tag.HasFrames, tag.Frames)
	}
	if tag.HasBytes {
		t.Error("HasBytes = true for a truncated field")
	}
}

func TestReadXingTag_Rejections(t *testing.T) {
	t.Parallel()

	free := v1l3At48k()
	free.BitrateIndex = 0

	tests := []struct {
		name    string
		buf     []byte
		wantErr error
	}{
		{name: "plain audio frame", buf: v1l3At48k().Frame(384), wantErr: ErrNotXing},
		{name: "identifier at wrong offset", buf: v1l3At48k().XingFrame(384, 21, IdentifierXing, 0), wantErr: ErrNotXing},
		{name: "buffer too short for identifier", buf: v1l3At48k().Frame(38), wantErr: ErrNotXing},
		{name: "no header", buf: make([]byte, 384), wantErr: ErrNoFrameSync},
		{name: "free bitrate", buf: free.XingFrame(384, 36, IdentifierXing, 0), wantErr: ErrFreeBitrate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := ReadXingTag(tt.buf, 0); !errors.Is(err, tt.wantErr) {
				t.Errorf("ReadXingTag() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
