// SPDX-License-Identifier: EPL-2.0

package mp3parser

import (
	"github.com/ik5/mp3parser/formats/id3v2"
	"github.com/ik5/mp3parser/formats/mp3"
)

// ReadFrameHeader reads the frame header at offset. See mp3.ReadFrameHeader.
func ReadFrameHeader(buf []byte, offset int) (*mp3.FrameHeader, error) {
	return mp3.ReadFrameHeader(buf, offset)
}

// ReadFrame reads the frame at offset. See mp3.ReadFrame.
func ReadFrame(buf []byte, offset int, requireNextFrameHeader bool) (*mp3.Frame, error) {
	return mp3.ReadFrame(buf, offset, requireNextFrameHeader)
}

// ReadID3v2Tag reads the ID3v2 tag at offset. See id3v2.ReadTag.
func ReadID3v2Tag(buf []byte, offset int) (*id3v2.Tag, error) {
	return id3v2.ReadTag(buf, offset)
}

// ReadXingTag reads the Xing tag at offset. See mp3.ReadXingTag.
func ReadXingTag(buf []byte, offset int) (*mp3.XingTag, error) {
	return mp3.ReadXingTag(buf, offset)
}
