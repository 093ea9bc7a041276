// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"time"

	"github.com/ik5/mp3parser/internal/byteview"
	"github.com/ik5/mp3parser/section"
)

// Identifiers of a Xing/LAME tag. Encoders write "Xing" for VBR streams and
// "Info" for CBR ones.
const (
	IdentifierXing = "Xing"
	IdentifierInfo = "Info"
)

// Xing flags, telling which optional fields follow the identifier.
const (
	XingFramesFlag  uint32 = 0x0001
	XingBytesFlag   uint32 = 0x0002
	XingTOCFlag     uint32 = 0x0004
	XingQualityFlag uint32 = 0x0008
)

// XingTOCSize is the size of the seek table.
const XingTOCSize = 100

// XingTag is a Xing/LAME header: a frame with a valid header whose side
// information area carries VBR metadata instead of audio.
type XingTag struct {
	section.Info

	Header          FrameHeader
	Identifier      string
	NextFrameOffset int

	Flags uint32

	HasFrames bool
	Frames    uint32

	HasBytes bool
	Bytes    uint32

	// TOC is the 100-entry seek table. It aliases the buffer passed to
	// ReadXingTag and is nil when absent.
	TOC []byte

	HasQuality bool
	Quality    uint32
}

// ReadXingTag reads the Xing tag starting at offset of buf.
func ReadXingTag(buf []byte, offset int) (*XingTag, error) {
	h, err := ReadFrameHeader(buf, offset)
	if err != nil {
		return nil, err
	}

	pos := offset + h.XingOffset()
	id := xingIdentifierAt(buf, pos)
	if id == "" {
		return nil, ErrNotXing
	}

	length, err := h.FrameLength()
	if err != nil {
		return nil, err
	}

	tag := &XingTag{
		Info: section.Info{
			Type:       section.Xing,
			Offset:     offset,
			ByteLength: length,
		},
		Header:          *h,
		Identifier:      id,
		NextFrameOffset: offset + length,
	}

	tag.readFields(byteview.View(buf), pos+len(id))

	return tag, nil
}

// readFields decodes the flags word and the optional fields after it. A
// field that does not fit in the buffer ends the decoding.
func (t *XingTag) readFields(v byteview.View, pos int) {
	if !v.Has(pos, 4) {
		return
	}
	t.Flags = v.Uint32(pos)
	pos += 4

	if t.Flags&XingFramesFlag != 0 {
		if !v.Has(pos, 4) {
			return
		}
		t.HasFrames, t.Frames = true, v.Uint32(pos)
		pos += 4
	}

	if t.Flags&XingBytesFlag != 0 {
		if !v.Has(pos, 4) {
			return
		}
		t.HasBytes, t.Bytes = true, v.Uint32(pos)
		pos += 4
	}

	if t.Flags&XingTOCFlag != 0 {
		if !v.Has(pos, XingTOCSize) {
			return
		}
		t.TOC = v.Slice(pos, XingTOCSize)
		pos += XingTOCSize
	}

	if t.Flags&XingQualityFlag != 0 {
		if !v.Has(pos, 4) {
			return
		}
		t.HasQuality, t.Quality = true, v.Uint32(pos)
	}
}

// IsVBR reports whether the encoder marked the stream as variable bitrate.
func (t *XingTag) IsVBR() bool { return t.Identifier == IdentifierXing }

// Duration estimates the stream's playing time from the frame count. The
// second result is false when the tag carries no frame count.
func (t *XingTag) Duration() (time.Duration, bool) {
	if !t.HasFrames {
		return 0, false
	}

	samples := float64(t.Frames) * float64(t.Header.SampleLength())
	return time.Duration(samples / float64(t.Header.SamplingRate) * float64(time.Second)), true
}
