package protocol

import "math/bits"

// ComputeParity reports whether the parity bit must be set for word.
// The sensor uses even parity over the full 16-bit frame, so the bit is
// set when the low 15 bits contain an odd number of ones.
func ComputeParity(word uint16) bool {
	return bits.OnesCount16(word&^ParityBit)%2 == 1
}

// VerifyParity reports whether frame satisfies even parity across all
// 16 bits, including the parity bit itself.
func VerifyParity(frame uint16) bool {
	return bits.OnesCount16(frame)%2 == 0
}
