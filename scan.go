// SPDX-License-Identifier: EPL-2.0

package mp3parser

import (
	"iter"

	"github.com/ik5/mp3parser/formats/id3v2"
	"github.com/ik5/mp3parser/formats/mp3"
	"github.com/ik5/mp3parser/section"
)

// probe tries to read one kind of section at offset.
type probe func(buf []byte, offset int) (section.Section, error)

// leadingProbes are tried in order at every offset by ReadTags.
var leadingProbes = []probe{
	func(buf []byte, offset int) (section.Section, error) { return id3v2.ReadTag(buf, offset) },
	func(buf []byte, offset int) (section.Section, error) { return mp3.ReadXingTag(buf, offset) },
	func(buf []byte, offset int) (section.Section, error) { return mp3.ReadFrame(buf, offset, false) },
}

// probeAt returns the first section any of the leading probes reads at
// offset, or nil.
func probeAt(buf []byte, offset int) section.Section {
	for _, p := range leadingProbes {
		s, err := p(buf, offset)
		if err == nil {
			return s
		}
	}
	return nil
}

// ReadTags returns every section found from offset up to and including the
// first audio frame: typically an ID3v2 tag, a Xing tag and that frame.
//
// Each offset is probed for an ID3v2 tag, then a Xing tag, then a frame.
// A match is recorded and probing resumes right after it. When nothing
// matches, the next byte is tried. Scanning ends at the first frame or at
// the end of buf, so the last section is a *mp3.Frame unless buf holds
// none.
func ReadTags(buf []byte, offset int) ([]section.Section, error) {
	if offset < 0 {
		return nil, ErrInvalidOffset
	}

	var sections []section.Section
	for offset < len(buf) {
		s := probeAt(buf, offset)
		if s == nil {
			offset++
			continue
		}

		sections = append(sections, s)
		info := s.Describe()
		if info.Type == section.Frame {
			break
		}
		offset = info.End()
	}

	return sections, nil
}

// ReadLastFrame returns the last frame of buf. See ReadLastFrameFrom.
func ReadLastFrame(buf []byte, requireNextFrameHeader bool) (*mp3.Frame, error) {
	return ReadLastFrameFrom(buf, len(buf)-1, requireNextFrameHeader)
}

// ReadLastFrameFrom searches backwards from offset down to the start of buf
// and returns the first frame found. Only offsets holding 0xFF, the first
// octet of a frame sync, are tried.
//
// With requireNextFrameHeader set, the frame must be followed by a valid
// header, which usually makes the result the second to last frame.
//
// An offset of 0 means the first byte only, not the end of buf. Use
// ReadLastFrame to search the whole buffer. Offsets past the end start from
// the last byte.
func ReadLastFrameFrom(buf []byte, offset int, requireNextFrameHeader bool) (*mp3.Frame, error) {
	if offset < 0 && len(buf) > 0 {
		return nil, ErrInvalidOffset
	}

	for offset = min(offset, len(buf)-1); offset >= 0; offset-- {
		if buf[offset] != 0xFF {
			continue
		}

		if frm, err := mp3.ReadFrame(buf, offset, requireNextFrameHeader); err == nil {
			return frm, nil
		}
	}

	return nil, ErrNoFrame
}

// Frames yields consecutive frames starting with the one at offset, each
// found at the previous frame's NextFrameOffset. It stops at the first
// offset that does not hold a frame.
func Frames(buf []byte, offset int) iter.Seq[*mp3.Frame] {
	return func(yield func(*mp3.Frame) bool) {
		for offset >= 0 {
			frm, err := mp3.ReadFrame(buf, offset, false)
			if err != nil || !yield(frm) {
				return
			}
			offset = frm.NextFrameOffset
		}
	}
}
