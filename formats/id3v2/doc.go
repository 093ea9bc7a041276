// SPDX-License-Identifier: EPL-2.0

// Package id3v2 reads ID3v2.3 tags and their frames from a buffer holding a
// complete MP3 file.
//
// # Tags
//
// ReadTag decodes the 10-byte tag header and every frame up to the end of
// the tag or the start of its padding:
//
//	tag, err := id3v2.ReadTag(buf, 0)
//	if err != nil {
//	    // no ID3v2 tag at offset 0
//	}
//	for _, frame := range tag.Frames {
//	    if text, ok := frame.Text(); ok {
//	        fmt.Println(frame.Name, text)
//	    }
//	}
//
// Only version 2.3 frames are read. Tags of other versions are returned with
// their header and an empty frame list. Extended headers are not processed.
//
// # Frames
//
// Each frame's content is decoded into a concrete type selected by the frame
// ID (see Content). Supported frames:
//   - Text information (T***, TXXX) and URL links (W***, WXXX)
//   - Comments and unsynchronised lyrics (COMM, USLT)
//   - Unique file identifier (UFID) and private data (PRIV)
//   - Involved people list (IPLS) and terms of use (USER)
//   - Play counter (PCNT) and popularimeter (POPM)
//   - Attached picture (APIC)
//   - Chapters (CHAP), including their nested frames
//
// Frames with other IDs keep their header and a nil Content. Content shorter
// than its layout needs is returned partially filled.
//
// # Text Encodings
//
// Strings are ISO-8859-1 (encoding octet 0) or UCS-2 (encoding octet 1,
// optionally prefixed with a byte order mark). Decoded strings are UTF-8.
//
// # Memory
//
// Binary fields (picture data, private data, unique file identifiers) are
// sub-slices of the buffer passed in, not copies. Copy them if the buffer is
// going to be modified or reused.
//
// # Limitations
//
//   - Compressed and encrypted frames are not inflated or decrypted
//   - Unsynchronisation is reported, not reversed
//   - PCNT and POPM counters wider than 32 bits are not supported
package id3v2
