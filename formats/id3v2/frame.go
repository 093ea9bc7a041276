// SPDX-License-Identifier: EPL-2.0

package id3v2

import (
	"strings"

	"github.com/ik5/mp3parser/internal/byteview"
	"github.com/ik5/mp3parser/utils"
)

// FrameHeaderSize is the length of an ID3v2.3 frame header.
const FrameHeaderSize = 10

// MaxChapterDepth bounds how deeply CHAP frames nested in CHAP frames are
// decoded. Chapters below the limit keep their times and offsets but not
// their sub-frames.
const MaxChapterDepth = 4

// FrameHeader is laid out as IIIISSSSFF: a four character ID, the content
// size as a plain big-endian integer, and two flag octets.
type FrameHeader struct {
	ID          string
	Size        int
	FlagsOctet1 byte
	FlagsOctet2 byte
}

// Frame status flags (first octet) and format flags (second octet).
const (
	FlagTagAlterPreservation  byte = 0x80
	FlagFileAlterPreservation byte = 0x40
	FlagReadOnly              byte = 0x20

	FlagCompression      byte = 0x80
	FlagEncryption       byte = 0x40
	FlagGroupingIdentity byte = 0x20
)

func (h FrameHeader) DiscardOnTagAlter() bool  { return h.FlagsOctet1&FlagTagAlterPreservation != 0 }
func (h FrameHeader) DiscardOnFileAlter() bool { return h.FlagsOctet1&FlagFileAlterPreservation != 0 }
func (h FrameHeader) ReadOnly() bool           { return h.FlagsOctet1&FlagReadOnly != 0 }
func (h FrameHeader) Compressed() bool         { return h.FlagsOctet2&FlagCompression != 0 }
func (h FrameHeader) Encrypted() bool          { return h.FlagsOctet2&FlagEncryption != 0 }
func (h FrameHeader) GroupingIdentity() bool   { return h.FlagsOctet2&FlagGroupingIdentity != 0 }

// Frame is one ID3v2.3 frame.
type Frame struct {
	Header FrameHeader
	// Offset of the frame header in the buffer.
	Offset int
	// Name is the descriptive name of the ID, "" when unknown.
	Name string
	// Content is nil for unknown IDs and for frames of size zero.
	Content Content
}

// ReadFrame reads the ID3v2.3 frame whose header starts at offset of buf.
// The content is decoded according to the frame ID. Content that is too
// short for its layout yields a partially filled value, not an error.
func ReadFrame(buf []byte, offset int) (*Frame, error) {
	if offset < 0 {
		return nil, ErrInvalidOffset
	}
	return readFrame(byteview.View(buf), offset, 0)
}

func readFrame(v byteview.View, offset, depth int) (*Frame, error) {
	if !v.Has(offset, FrameHeaderSize) {
		return nil, ErrShortBuffer
	}

	frm := &Frame{
		Header: FrameHeader{
			ID:          utils.DecodeISO(v, offset, 4),
			Size:        int(v.Uint32(offset + 4)),
			FlagsOctet1: v.Uint8(offset + 8),
			FlagsOctet2: v.Uint8(offset + 9),
		},
		Offset: offset,
	}
	frm.Name = FrameName(frm.Header.ID)

	if frm.Header.Size < 1 {
		return frm, nil
	}

	contentOffset := offset + FrameHeaderSize
	if !v.Has(contentOffset, frm.Header.Size) {
		return nil, ErrFrameTruncated
	}

	frm.Content = decodeContent(contentKindOf(frm.Header.ID), v, contentOffset, frm.Header.Size, depth)

	return frm, nil
}

// ByteLength is the size of the frame including its header.
func (f *Frame) ByteLength() int { return FrameHeaderSize + f.Header.Size }

// Text returns the value of text-bearing content: text, user text, URL,
// user URL, comment and terms of use frames. ok is false otherwise.
func (f *Frame) Text() (s string, ok bool) {
	switch c := f.Content.(type) {
	case *TextContent:
		return c.Value, true
	case *UserTextContent:
		return c.Value, true
	case *URLContent:
		return c.URL, true
	case *UserURLContent:
		return c.URL, true
	case *CommentContent:
		return c.Text, true
	case *TermsOfUseContent:
		return c.Text, true
	default:
		return "", false
	}
}

// contentKind enumerates the content decoders.
type contentKind int

const (
	kindUnknown contentKind = iota
	kindText
	kindUserText
	kindURL
	kindUserURL
	kindComment
	kindUniqueFileID
	kindInvolvedPeople
	kindTermsOfUse
	kindPrivate
	kindPlayCounter
	kindPopularimeter
	kindPicture
	kindChapter
)

// contentKindOf resolves a frame ID to its decoder. Exact IDs win over the
// T and W prefix families.
func contentKindOf(id string) contentKind {
	switch id {
	case "TXXX":
		return kindUserText
	case "WXXX":
		return kindUserURL
	case "COMM", "USLT":
		return kindComment
	case "UFID":
		return kindUniqueFileID
	case "IPLS":
		return kindInvolvedPeople
	case "USER":
		return kindTermsOfUse
	case "PRIV":
		return kindPrivate
	case "PCNT":
		return kindPlayCounter
	case "POPM":
		return kindPopularimeter
	case "APIC":
		return kindPicture
	case "CHAP":
		return kindChapter
	}

	switch {
	case strings.HasPrefix(id, "T"):
		return kindText
	case strings.HasPrefix(id, "W"):
		return kindURL
	default:
		return kindUnknown
	}
}

func decodeContent(kind contentKind, v byteview.View, offset, length, depth int) Content {
	switch kind {
	case kindText:
		return readText(v, offset, length)
	case kindUserText:
		return readUserText(v, offset, length)
	case kindURL:
		return readURL(v, offset, length)
	case kindUserURL:
		return readUserURL(v, offset, length)
	case kindComment:
		return readComment(v, offset, length)
	case kindUniqueFileID:
		return readUniqueFileID(v, offset, length)
	case kindInvolvedPeople:
		return readInvolvedPeople(v, offset, length)
	case kindTermsOfUse:
		return readTermsOfUse(v, offset, length)
	case kindPrivate:
		return readPrivate(v, offset, length)
	case kindPlayCounter:
		return readPlayCounter(v, offset, length)
	case kindPopularimeter:
		return readPopularimeter(v, offset, length)
	case kindPicture:
		return readPicture(v, offset, length)
	case kindChapter:
		return readChapter(v, offset, length, depth)
	default:
		return nil
	}
}
