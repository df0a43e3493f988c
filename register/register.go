package register

// Register is a 14-bit register address on the sensor.
type Register uint16

// RegisterNone marks a register that a chip variant does not provide.
// The value lies outside the 14-bit address space.
const RegisterNone Register = 0xFFFF

// Addr returns the 14-bit address as encoded into a command frame.
func (r Register) Addr() uint16 {
	return uint16(r) & 0x3FFF
}

// Valid reports whether the variant provides this register.
func (r Register) Valid() bool {
	return r != RegisterNone
}

// DiagLayout gives the bit positions of the named flags inside the
// diagnostics/AGC register. The two variants place the flags
// differently; the AGC value is the low 8 bits on both.
type DiagLayout struct {
	FieldTooStrong uint
	FieldTooWeak   uint
	CordicOverflow uint
	OffsetCompDone uint
}

// Map describes one chip variant: its register assignments, diagnostics
// flag layout and full-scale angle count. Registers the variant does
// not provide are RegisterNone.
type Map struct {
	// Name is the chip marking, e.g. "AS5047D".
	Name string

	// AngleMax is the full-scale count of the angle register. Degree
	// conversion divides by this value. The two variants disagree
	// (0x4000 vs 0x3FFF); the value must match the concrete chip or
	// results shift by a fraction of a degree.
	AngleMax uint16

	// ErrorFlag latches sensor-side command faults; reading it clears
	// the latch.
	ErrorFlag Register

	// Programming controls OTP programming. The driver exposes the
	// register but does not sequence OTP burns.
	Programming Register

	// ZeroPositionMSB and ZeroPositionLSB hold the programmed zero
	// position, split 8 + 6 bits.
	ZeroPositionMSB Register
	ZeroPositionLSB Register

	// Settings1 and Settings2 are the interface configuration
	// registers of the AS5047D.
	Settings1 Register
	Settings2 Register

	// Diagnostics carries the diagnostic flags and the AGC value.
	Diagnostics Register

	// Magnitude is the 14-bit CORDIC magnitude.
	Magnitude Register

	// Angle is the 14-bit measured angle. On the AS5047D this is the
	// dynamically compensated angle; AngleUncompensated is the raw
	// CORDIC angle.
	Angle              Register
	AngleUncompensated Register

	// Diag is the variant's diagnostics flag layout.
	Diag DiagLayout
}

// AS5047D is the register map of the AMS AS5047D.
var AS5047D = Map{
	Name:               "AS5047D",
	AngleMax:           0x4000,
	ErrorFlag:          0x0001,
	Programming:        0x0003,
	ZeroPositionMSB:    0x0016,
	ZeroPositionLSB:    0x0017,
	Settings1:          0x0018,
	Settings2:          0x0019,
	Diagnostics:        0x3FFC,
	Magnitude:          0x3FFD,
	Angle:              0x3FFF,
	AngleUncompensated: 0x3FFE,
	Diag: DiagLayout{
		FieldTooWeak:   11,
		FieldTooStrong: 10,
		CordicOverflow: 9,
		OffsetCompDone: 8,
	},
}

// AS5048A is the register map of the AMS AS5048A.
var AS5048A = Map{
	Name:               "AS5048A",
	AngleMax:           0x3FFF,
	ErrorFlag:          0x0001,
	Programming:        0x0003,
	ZeroPositionMSB:    0x0016,
	ZeroPositionLSB:    0x0017,
	Settings1:          RegisterNone,
	Settings2:          RegisterNone,
	Diagnostics:        0x3FFD,
	Magnitude:          0x3FFE,
	Angle:              0x3FFF,
	AngleUncompensated: RegisterNone,
	Diag: DiagLayout{
		FieldTooStrong: 13,
		FieldTooWeak:   12,
		CordicOverflow: 11,
		OffsetCompDone: 10,
	},
}
