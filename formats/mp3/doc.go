// SPDX-License-Identifier: EPL-2.0

// Package mp3 reads MPEG audio frame headers, frames and Xing/LAME headers
// from a buffer holding a complete MP3 file.
//
// Every reader takes the buffer and an absolute offset and either returns a
// fresh description of what starts at exactly that offset, or an error
// saying why nothing does. The errors are ordinary: scanners probe offsets
// speculatively and most probes fail.
//
// # Frame Headers
//
// ReadFrameHeader decodes the 4-byte header into version, layer, bitrate,
// sampling rate, padding and channel mode. All MPEG 1, 2 and 2.5 versions
// and Layers I, II and III are supported:
//
//	h, err := mp3.ReadFrameHeader(buf, offset)
//	if err != nil {
//	    // no frame starts at offset
//	}
//	fmt.Println(h.Version, h.Layer, h.Bitrate, h.SamplingRate, h.ChannelMode)
//
// # Frames
//
// ReadFrame adds the frame's byte length and the offset of the next frame.
// Passing requireNextFrameHeader makes the read succeed only if another
// valid header follows, which weeds out sync patterns found inside audio
// data:
//
//	frame, err := mp3.ReadFrame(buf, offset, true)
//	next := frame.NextFrameOffset
//
// # Xing / LAME Tags
//
// VBR encoders write a first frame whose side information holds a "Xing"
// (or "Info") identifier followed by the frame count, byte count, seek
// table and quality indicator. ReadXingTag reads it, and ReadFrame refuses
// it:
//
//	tag, err := mp3.ReadXingTag(buf, offset)
//	if d, ok := tag.Duration(); ok {
//	    fmt.Println("length:", d)
//	}
//
// # Memory
//
// Descriptions copy out scalar fields. XingTag.TOC is a sub-slice of the
// input buffer and is only valid while the buffer is unchanged.
//
// # Limitations
//
//   - Free format streams are recognised by ReadFrameHeader but ReadFrame
//     and ReadXingTag cannot size them and return ErrFreeBitrate
//   - Audio data is never decoded
package mp3
