// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	ErrInvalidOffset        = errors.New("offset must not be negative")
	ErrShortBuffer          = errors.New("not enough bytes for a frame header")
	ErrNoFrameSync          = errors.New("no frame sync")
	ErrReservedVersion      = errors.New("reserved MPEG audio version")
	ErrReservedLayer        = errors.New("reserved layer description")
	ErrBadBitrate           = errors.New("bad bitrate index")
	ErrReservedSamplingRate = errors.New("reserved sampling rate")
	ErrFreeBitrate          = errors.New("free format bitrate has no derivable frame length")
	ErrXingFrame            = errors.New("frame carries a Xing/Info identifier")
	ErrNoNextFrame          = errors.New("no valid frame header follows the frame")
	ErrNotXing              = errors.New("no Xing/Info identifier")
)
