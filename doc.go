// SPDX-License-Identifier: EPL-2.0

// Package mp3parser describes the structure of MPEG audio files: the tags
// in front of the audio, the audio frames and the last frame of the stream.
//
// Every function works on a buffer that holds the complete file and an
// offset into it. Nothing is read from disk or the network and the buffer is
// never modified, so concurrent calls over the same buffer are safe.
//
// # Supported Sections
//
// The package recognises three kinds of sections, each described by a
// type embedding section.Info (its type, offset and byte length):
//   - ID3v2 tags, with their v2.3 frames decoded (formats/id3v2)
//   - Xing and Info VBR headers (formats/mp3)
//   - MPEG 1, 2 and 2.5 audio frames of layers I, II and III (formats/mp3)
//
// # Quick Start
//
// Read the sections in front of the audio and the last frame of the file:
//
//	buf, _ := os.ReadFile("song.mp3")
//
//	sections, _ := mp3parser.ReadTags(buf, 0)
//	for _, s := range sections {
//	    switch s := s.(type) {
//	    case *id3v2.Tag:
//	        // metadata frames
//	    case *mp3.XingTag:
//	        // frame count, byte count, seek table
//	    case *mp3.Frame:
//	        // the first audio frame, always last in the list
//	    }
//	}
//
//	last, err := mp3parser.ReadLastFrame(buf, false)
//	if errors.Is(err, mp3parser.ErrNoFrame) {
//	    // not an MPEG audio stream
//	}
//
// # Reading at an Offset
//
// ReadFrameHeader, ReadFrame, ReadID3v2Tag and ReadXingTag read a single
// section at a known offset. They forward to the format packages so that a
// single import is enough for most callers.
//
// # Absence Is Not Exceptional
//
// MPEG audio has no index: sections are found by trying offsets. Every
// reader therefore returns a sentinel error, never a panic, when the bytes
// at an offset are not what it looks for. ReadTags relies on this to probe
// offsets speculatively. Negative offsets are the only caller mistake and
// are reported with ErrInvalidOffset.
//
// # Memory
//
// Binary fields of the returned descriptions (picture data, private frame
// data, the Xing seek table) are sub-slices of the buffer, not copies. They
// stay valid as long as the buffer is not modified.
//
// See the individual subpackages for more detailed documentation.
package mp3parser
