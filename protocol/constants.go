package protocol

// Frame layout constants. Bit positions are shared by the AS5047D and
// AS5048A; only the register addresses differ between the two chips.
const (
	// ParityBit is the even-parity bit (bit 15) of every frame.
	ParityBit = 0x8000

	// ReadBit marks a command frame as a read access (bit 14).
	ReadBit = 0x4000

	// ErrorFlagBit is set by the sensor in a response frame (bit 14) when
	// it rejected the previous command.
	ErrorFlagBit = 0x4000

	// DataMask selects the 14-bit payload of a frame (bits 13-0).
	DataMask = 0x3FFF

	// AddressMask selects the 14-bit register address of a command frame.
	AddressMask = 0x3FFF

	// Nop is the no-operation command used to clock a pending response
	// out of the sensor.
	Nop = 0x0000

	// FrameSize is the size of one frame on the wire in bytes.
	FrameSize = 2
)
