// SPDX-License-Identifier: EPL-2.0

package utils

// Unsynchsafe packs the low seven bits of each octet of v into a 28-bit
// integer. ID3v2 stores its sizes this way so they never contain a frame
// sync pattern.
func Unsynchsafe(v uint32) uint32 {
	return v&0x7F |
		(v>>8&0x7F)<<7 |
		(v>>16&0x7F)<<14 |
		(v>>24&0x7F)<<21
}
