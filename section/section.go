// SPDX-License-Identifier: EPL-2.0

// Package section describes the typed byte ranges the readers recognise in
// an MPEG audio buffer.
package section

// Type discriminates the kinds of section.
type Type int

const (
	FrameHeader Type = iota + 1
	Frame
	Xing
	ID3v2
)

func (t Type) String() string {
	switch t {
	case FrameHeader:
		return "frameHeader"
	case Frame:
		return "frame"
	case Xing:
		return "Xing"
	case ID3v2:
		return "ID3v2"
	default:
		return "unknown"
	}
}

// Info locates a section within the buffer it was read from.
type Info struct {
	Type       Type
	Offset     int
	ByteLength int
}

// Describe returns i. Types embedding Info satisfy Section through it.
func (i Info) Describe() Info { return i }

// End is the offset of the first byte after the section.
func (i Info) End() int { return i.Offset + i.ByteLength }

// Section is any description produced by a reader.
type Section interface {
	Describe() Info
}
