// SPDX-License-Identifier: EPL-2.0

package id3v2

import (
	"github.com/ik5/mp3parser/internal/byteview"
	"github.com/ik5/mp3parser/section"
	"github.com/ik5/mp3parser/utils"
)

// TagHeaderSize is the length of the ID3v2 tag header.
const TagHeaderSize = 10

var seqID3 = []byte("ID3")

// TagHeader is laid out as IIIVVFSSSS: "ID3", major version and revision, a
// flags octet (abc00000) and the tag size as a synchsafe integer.
type TagHeader struct {
	MajorVersion  byte
	MinorRevision byte

	FlagsOctet        byte
	Unsynchronisation bool
	ExtendedHeader    bool
	Experimental      bool

	// Size excludes the header but includes an extended header and
	// padding.
	Size int
}

// Tag is an ID3v2 tag and the frames read from it.
type Tag struct {
	section.Info

	Header TagHeader
	Frames []Frame
}

// ReadTag reads the ID3v2 tag starting at offset of buf.
//
// Frames are only read from v2.3 tags. Other versions return the header
// with no frames. Reading stops at the end of the tag, at padding (a frame
// ID of four zero bytes), or at the first frame that cannot be read.
//
// Extended headers are not processed: frames are expected right after the
// tag header.
func ReadTag(buf []byte, offset int) (*Tag, error) {
	if offset < 0 {
		return nil, ErrInvalidOffset
	}

	v := byteview.View(buf)
	if v.Len()-offset < TagHeaderSize {
		return nil, ErrShortBuffer
	}

	if !v.HasSeq(offset, seqID3) {
		return nil, ErrNotID3v2
	}

	flags := v.Uint8(offset + 5)
	tag := &Tag{
		Header: TagHeader{
			MajorVersion:      v.Uint8(offset + 3),
			MinorRevision:     v.Uint8(offset + 4),
			FlagsOctet:        flags,
			Unsynchronisation: flags&0x80 != 0,
			ExtendedHeader:    flags&0x40 != 0,
			Experimental:      flags&0x20 != 0,
			Size:              int(utils.Unsynchsafe(v.Uint32(offset + 6))),
		},
		Frames: []Frame{},
	}

	tag.Info = section.Info{
		Type:       section.ID3v2,
		Offset:     offset,
		ByteLength: tag.Header.Size + TagHeaderSize,
	}

	if tag.Header.MajorVersion != 3 {
		return tag, nil
	}

	tagEnd := tag.End()
	for pos := offset + TagHeaderSize; pos < tagEnd; {
		if !v.Has(pos, 4) || v.Uint32(pos) == 0 {
			break
		}

		frm, err := readFrame(v, pos, 0)
		if err != nil {
			break
		}

		tag.Frames = append(tag.Frames, *frm)
		pos += frm.ByteLength()
	}

	return tag, nil
}

// Lookup returns the frames with the given ID in tag order.
func (t *Tag) Lookup(id string) []Frame {
	var out []Frame
	for _, f := range t.Frames {
		if f.Header.ID == id {
			out = append(out, f)
		}
	}
	return out
}

// Frame returns the first frame with the given ID.
func (t *Tag) Frame(id string) (*Frame, bool) {
	for i := range t.Frames {
		if t.Frames[i].Header.ID == id {
			return &t.Frames[i], true
		}
	}
	return nil, false
}
