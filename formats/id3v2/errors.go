// SPDX-License-Identifier: EPL-2.0

package id3v2

import "errors"

var (
	ErrInvalidOffset  = errors.New("offset must not be negative")
	ErrShortBuffer    = errors.New("not enough bytes for an ID3v2 header")
	ErrNotID3v2       = errors.New("no ID3 identifier")
	ErrFrameTruncated = errors.New("frame content runs past the end of the buffer")
)
