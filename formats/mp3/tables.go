// SPDX-License-Identifier: EPL-2.0

package mp3

// Version is the MPEG audio version ID, valued as its 2-bit header code.
type Version byte

const (
	Version25       Version = 0b00
	VersionReserved Version = 0b01
	Version2        Version = 0b10
	Version1        Version = 0b11
)

func (v Version) String() string {
	switch v {
	case Version25:
		return "MPEG Version 2.5 (unofficial)"
	case Version2:
		return "MPEG Version 2 (ISO/IEC 13818-3)"
	case Version1:
		return "MPEG Version 1 (ISO/IEC 11172-3)"
	default:
		return "reserved"
	}
}

// Layer is the layer description, valued as its 2-bit header code.
type Layer byte

const (
	LayerReserved Layer = 0b00
	Layer3        Layer = 0b01
	Layer2        Layer = 0b10
	Layer1        Layer = 0b11
)

func (l Layer) String() string {
	switch l {
	case Layer1:
		return "Layer I"
	case Layer2:
		return "Layer II"
	case Layer3:
		return "Layer III"
	default:
		return "reserved"
	}
}

// ChannelMode is the 2-bit channel mode code.
type ChannelMode byte

const (
	Stereo      ChannelMode = 0b00
	JointStereo ChannelMode = 0b01
	DualChannel ChannelMode = 0b10
	Mono        ChannelMode = 0b11
)

func (c ChannelMode) String() string {
	switch c {
	case Stereo:
		return "Stereo"
	case JointStereo:
		return "Joint stereo (Stereo)"
	case DualChannel:
		return "Dual channel (Stereo)"
	default:
		return "Single channel (Mono)"
	}
}

// IsMono reports whether the frame carries a single channel.
func (c ChannelMode) IsMono() bool { return c == Mono }

// Sentinels stored in the lookup tables. They are never zero so that a
// missing check cannot pass for a real rate.
const (
	BitrateFree          = -1
	BitrateBad           = -2
	SamplingRateReserved = -1
)

const (
	free = BitrateFree
	bad  = BitrateBad
)

var (
	bitratesV1L1 = [16]int{free, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, bad}
	bitratesV1L2 = [16]int{free, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, bad}
	bitratesV1L3 = [16]int{free, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, bad}
	bitratesV2L1 = [16]int{free, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, bad}
	// MPEG 2 and 2.5 share one table for Layers II and III
	bitratesV2L2 = [16]int{free, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, bad}
)

// bitrateLUT is indexed by [Version][Layer]. Reserved rows are nil.
var bitrateLUT = [4][4]*[16]int{
	Version25: {Layer3: &bitratesV2L2, Layer2: &bitratesV2L2, Layer1: &bitratesV2L1},
	Version2:  {Layer3: &bitratesV2L2, Layer2: &bitratesV2L2, Layer1: &bitratesV2L1},
	Version1:  {Layer3: &bitratesV1L3, Layer2: &bitratesV1L2, Layer1: &bitratesV1L1},
}

// samplingRateLUT is indexed by [Version][code].
var samplingRateLUT = [4][4]int{
	Version25:       {11025, 12000, 8000, SamplingRateReserved},
	VersionReserved: {SamplingRateReserved, SamplingRateReserved, SamplingRateReserved, SamplingRateReserved},
	Version2:        {22050, 24000, 16000, SamplingRateReserved},
	Version1:        {44100, 48000, 32000, SamplingRateReserved},
}

// sampleLengthLUT is the number of samples per frame, indexed by
// [Version][Layer].
var sampleLengthLUT = [4][4]int{
	Version25: {Layer3: 576, Layer2: 1152, Layer1: 384},
	Version2:  {Layer3: 576, Layer2: 1152, Layer1: 384},
	Version1:  {Layer3: 1152, Layer2: 1152, Layer1: 384},
}

// Bitrate looks up the bitrate in kbps. The result may be BitrateFree or
// BitrateBad; reserved versions and layers yield BitrateBad.
func Bitrate(v Version, l Layer, index byte) int {
	row := bitrateLUT[v&0b11][l&0b11]
	if row == nil {
		return BitrateBad
	}
	return row[index&0x0F]
}

// SamplingRate looks up the sampling rate in Hz, or SamplingRateReserved.
func SamplingRate(v Version, code byte) int {
	return samplingRateLUT[v&0b11][code&0b11]
}

// SampleLength is the number of samples a frame of v and l encodes, or 0
// for reserved combinations.
func SampleLength(v Version, l Layer) int {
	return sampleLengthLUT[v&0b11][l&0b11]
}

// PaddingSize is the length of the padding slot: 4 bytes for Layer I, 1
// otherwise.
func PaddingSize(l Layer) int {
	if l == Layer1 {
		return 4
	}
	return 1
}

// XingOffset is the distance from the start of a frame to where a Xing or
// Info identifier would sit: past the header and the side information.
func XingOffset(v Version, mode ChannelMode) int {
	if v == Version1 {
		if mode.IsMono() {
			return 21
		}
		return 36
	}

	if mode.IsMono() {
		return 13
	}
	return 21
}
