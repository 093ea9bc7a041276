// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"time"

	"github.com/ik5/mp3parser/internal/byteview"
	"github.com/ik5/mp3parser/section"
)

var (
	seqXing = []byte(IdentifierXing)
	seqInfo = []byte(IdentifierInfo)
)

// Frame describes an MPEG audio frame: its header and the byte range it
// spans. The audio payload is not decoded.
type Frame struct {
	section.Info

	Header          FrameHeader
	SampleLength    int
	NextFrameOffset int
}

// ReadFrame reads the frame starting at offset of buf.
//
// Frame sync patterns also occur inside audio data, so a lone valid header
// is weak evidence. With requireNextFrameHeader set, a valid header must
// also start right after this frame.
//
// A header followed by a Xing or Info identifier at the side-information
// offset is a VBR header rather than audio and fails with ErrXingFrame.
func ReadFrame(buf []byte, offset int, requireNextFrameHeader bool) (*Frame, error) {
	h, err := ReadFrameHeader(buf, offset)
	if err != nil {
		return nil, err
	}

	length, err := h.FrameLength()
	if err != nil {
		return nil, err
	}

	if xingIdentifierAt(buf, offset+h.XingOffset()) != "" {
		return nil, ErrXingFrame
	}

	frm := &Frame{
		Info: section.Info{
			Type:       section.Frame,
			Offset:     offset,
			ByteLength: length,
		},
		Header:          *h,
		SampleLength:    h.SampleLength(),
		NextFrameOffset: offset + length,
	}

	if requireNextFrameHeader {
		if _, err := ReadFrameHeader(buf, frm.NextFrameOffset); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoNextFrame, err)
		}
	}

	return frm, nil
}

// Duration is the playing time of the frame.
func (f *Frame) Duration() time.Duration {
	return time.Duration(f.SampleLength) * time.Second / time.Duration(f.Header.SamplingRate)
}

// xingIdentifierAt returns "Xing" or "Info" when found at offset, or "".
func xingIdentifierAt(buf []byte, offset int) string {
	v := byteview.View(buf)

	switch {
	case v.HasSeq(offset, seqXing):
		return IdentifierXing
	case v.HasSeq(offset, seqInfo):
		return IdentifierInfo
	default:
		return ""
	}
}
