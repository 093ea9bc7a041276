// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"github.com/ik5/mp3parser/internal/byteview"
	"github.com/ik5/mp3parser/section"
)

// HeaderSize is the length of an MPEG audio frame header.
const HeaderSize = 4

// FrameHeader is the decoded 4-byte header of an MPEG audio frame.
//
// The header is laid out as AAAAAAAA AAABBCCD EEEEFFGH IIJJKLMM:
//   - A: frame sync, all bits set
//   - B: MPEG audio version, C: layer, D: protection bit (0 = CRC follows)
//   - E: bitrate index, F: sampling rate index, G: padding, H: private bit
//   - I: channel mode, J: mode extension, K: copyright, L: original, M: emphasis
type FrameHeader struct {
	section.Info

	Version     Version
	Layer       Layer
	IsProtected bool

	BitrateIndex byte
	// Bitrate in kbps, or BitrateFree.
	Bitrate int

	SamplingRateIndex byte
	// SamplingRate in Hz.
	SamplingRate int

	IsPadded   bool
	PrivateBit bool

	ChannelMode   ChannelMode
	ModeExtension byte
	Copyright     bool
	Original      bool
	Emphasis      byte
}

// ReadFrameHeader decodes the frame header at offset of buf. Any field that
// cannot belong to a valid header makes the call fail, so callers use it to
// probe whether a frame starts at exactly this offset.
//
// More than HeaderSize bytes must remain past offset: a header in the last
// four bytes of the buffer is rejected with ErrShortBuffer.
func ReadFrameHeader(buf []byte, offset int) (*FrameHeader, error) {
	if offset < 0 {
		return nil, ErrInvalidOffset
	}

	v := byteview.View(buf)
	if v.Len()-offset <= HeaderSize {
		return nil, ErrShortBuffer
	}

	b1 := v.Uint8(offset)
	b2 := v.Uint8(offset + 1)
	b3 := v.Uint8(offset + 2)
	b4 := v.Uint8(offset + 3)

	if b1 != 0xFF || b2&0xE0 != 0xE0 {
		return nil, ErrNoFrameSync
	}

	h := &FrameHeader{
		Info: section.Info{
			Type:       section.FrameHeader,
			Offset:     offset,
			ByteLength: HeaderSize,
		},
		Version:     Version(b2 >> 3 & 0b11),
		Layer:       Layer(b2 >> 1 & 0b11),
		IsProtected: b2&1 == 0,
	}

	if h.Version == VersionReserved {
		return nil, ErrReservedVersion
	}
	if h.Layer == LayerReserved {
		return nil, ErrReservedLayer
	}

	h.BitrateIndex = b3 >> 4
	h.Bitrate = Bitrate(h.Version, h.Layer, h.BitrateIndex)
	if h.Bitrate == BitrateBad {
		return nil, ErrBadBitrate
	}

	h.SamplingRateIndex = b3 >> 2 & 0b11
	h.SamplingRate = SamplingRate(h.Version, h.SamplingRateIndex)
	if h.SamplingRate == SamplingRateReserved {
		return nil, ErrReservedSamplingRate
	}

	h.IsPadded = b3&0b10 != 0
	h.PrivateBit = b3&1 != 0

	h.ChannelMode = ChannelMode(b4 >> 6)
	h.ModeExtension = b4 >> 4 & 0b11
	h.Copyright = b4&0b1000 != 0
	h.Original = b4&0b100 != 0
	h.Emphasis = b4 & 0b11

	return h, nil
}

// SampleLength is the number of samples per frame.
func (h *FrameHeader) SampleLength() int {
	return SampleLength(h.Version, h.Layer)
}

// Padding is the number of padding bytes the frame carries.
func (h *FrameHeader) Padding() int {
	if !h.IsPadded {
		return 0
	}
	return PaddingSize(h.Layer)
}

// FrameLength derives the byte length of the frame this header starts.
func (h *FrameHeader) FrameLength() (int, error) {
	if h.Bitrate == BitrateFree {
		return 0, ErrFreeBitrate
	}

	// sample lengths are multiples of 8, so this is an exact floor
	return h.SampleLength()/8*h.Bitrate*1000/h.SamplingRate + h.Padding(), nil
}

// XingOffset is where a Xing/Info identifier would sit relative to the
// start of the frame.
func (h *FrameHeader) XingOffset() int {
	return XingOffset(h.Version, h.ChannelMode)
}
