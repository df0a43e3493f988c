package protocol

import "encoding/binary"

// ReadCommand builds the command frame that requests a read of the
// register at addr.
func ReadCommand(addr uint16) uint16 {
	return withParity(ReadBit | addr&AddressMask)
}

// WriteCommand builds the command frame that announces a write to the
// register at addr. The value itself follows in a separate data frame.
func WriteCommand(addr uint16) uint16 {
	return withParity(addr & AddressMask)
}

// DataFrame builds the frame carrying a 14-bit register value during
// the second transaction of a write sequence. The value is masked to
// 14 bits; its parity is computed independently of the command frame's.
func DataFrame(value uint16) uint16 {
	return withParity(value & DataMask)
}

// withParity sets the parity bit on frame when the low 15 bits require it.
func withParity(frame uint16) uint16 {
	if ComputeParity(frame) {
		return ParityBit | frame
	}
	return frame
}

// ParseResponse validates a response frame and extracts its 14-bit
// payload. It returns ErrParity when the frame fails the even-parity
// check, and ErrSensor when the sensor's error flag (bit 14) is set.
// A response must never be trusted before this validation passes.
func ParseResponse(frame uint16) (uint16, error) {
	if !VerifyParity(frame) {
		return 0, ErrParity
	}
	if frame&ErrorFlagBit != 0 {
		return 0, ErrSensor
	}
	return frame & DataMask, nil
}

// PutFrame stores frame into dst in wire order (big-endian).
// dst must be at least FrameSize bytes.
func PutFrame(dst []byte, frame uint16) {
	binary.BigEndian.PutUint16(dst, frame)
}

// Frame reads a frame from src in wire order (big-endian).
// src must be at least FrameSize bytes.
func Frame(src []byte) uint16 {
	return binary.BigEndian.Uint16(src)
}
