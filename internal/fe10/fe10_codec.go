package fe10

import "encoding/binary"

// limbOffset and limbWidth describe the (e, width) pairs from spec.md
// §3: e = (0,26,51,77,102,128,153,179,204,230), alternating 26/25-bit
// widths, except the last limb which absorbs the remaining width up
// to bit 256 so that FromBytes consumes every input bit; the excess
// above 25 bits in limb 9 is folded back in by the first Carry call.
var limbOffset = [10]int{0, 26, 51, 77, 102, 128, 153, 179, 204, 230}
var limbWidth = [10]int{26, 25, 26, 25, 26, 25, 26, 25, 26, 26}

func extractBits(w *[4]uint64, lo, width int) uint64 {
	wordIdx := lo / 64
	bitIdx := uint(lo % 64)
	v := w[wordIdx] >> bitIdx
	if bitIdx+uint(width) > 64 && wordIdx+1 < len(w) {
		v |= w[wordIdx+1] << (64 - bitIdx)
	}
	return v & (uint64(1)<<uint(width) - 1)
}

// FromBytes decodes a 32-byte little-endian integer into the 10-limb
// 2^26/2^25 radix. Per spec.md §6, values are accepted unreduced and
// no bit is clamped: all 256 input bits are consumed, with the excess
// above p folded in by the first Carry call.
func FromBytes(s *[32]byte) *FE10 {
	var w [4]uint64
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(s[i*8 : i*8+8])
	}

	var h FE10
	for i := range h {
		h[i] = extractBits(&w, limbOffset[i], limbWidth[i])
	}
	return h.Carry()
}
