package register

// bit reports whether bit n of v is set.
func bit(v uint16, n uint) bool {
	return v&(1<<n) != 0
}

// setBit returns v with bit n set or cleared.
func setBit(v uint16, n uint, on bool) uint16 {
	if on {
		return v | 1<<n
	}
	return v &^ (1 << n)
}

// field extracts the width-bit field at shift from v.
func field(v uint16, shift, width uint) uint16 {
	return v >> shift & (1<<width - 1)
}

// setField returns v with the width-bit field at shift replaced by val.
// Bits outside the field are preserved; val is masked to the field width.
func setField(v uint16, shift, width uint, val uint16) uint16 {
	mask := (uint16(1)<<width - 1) << shift
	return v&^mask | val<<shift&mask
}

// ErrorFlags is a view of the error-flag register. Reading the register
// clears the sensor's internal error latch.
type ErrorFlags uint16

// ParityError reports a parity error detected by the sensor in a
// received frame (bit 2).
func (f ErrorFlags) ParityError() bool { return bit(uint16(f), 2) }

// InvalidCommand reports a read or write of an invalid register
// address (bit 1).
func (f ErrorFlags) InvalidCommand() bool { return bit(uint16(f), 1) }

// FramingError reports that the sensor detected a non-compliant SPI
// frame (bit 0).
func (f ErrorFlags) FramingError() bool { return bit(uint16(f), 0) }

// Any reports whether any error flag is latched.
func (f ErrorFlags) Any() bool { return f&0x0007 != 0 }

// Programming is a view of the OTP programming control register.
// The driver exposes the register but does not sequence OTP burns.
type Programming uint16

// ProgramVerify must be set for verifying programmed OTP content (bit 6).
func (p Programming) ProgramVerify() bool { return bit(uint16(p), 6) }

// SetProgramVerify returns p with the program-verify bit updated.
func (p Programming) SetProgramVerify(on bool) Programming {
	return Programming(setBit(uint16(p), 6, on))
}

// ProgramOTP starts an OTP programming cycle (bit 3).
func (p Programming) ProgramOTP() bool { return bit(uint16(p), 3) }

// SetProgramOTP returns p with the program-start bit updated.
func (p Programming) SetProgramOTP(on bool) Programming {
	return Programming(setBit(uint16(p), 3, on))
}

// OTPRefresh reloads the non-volatile memory with the programmed OTP
// content (bit 2).
func (p Programming) OTPRefresh() bool { return bit(uint16(p), 2) }

// SetOTPRefresh returns p with the refresh bit updated.
func (p Programming) SetOTPRefresh(on bool) Programming {
	return Programming(setBit(uint16(p), 2, on))
}

// ProgramEnable enables programming the OTP memory (bit 0).
func (p Programming) ProgramEnable() bool { return bit(uint16(p), 0) }

// SetProgramEnable returns p with the enable bit updated.
func (p Programming) SetProgramEnable(on bool) Programming {
	return Programming(setBit(uint16(p), 0, on))
}

// ZeroPositionMSB holds the 8 most significant bits of the programmed
// zero position (bits 7-0).
type ZeroPositionMSB uint16

// Value returns the MSB half of the zero position.
func (z ZeroPositionMSB) Value() uint16 { return field(uint16(z), 0, 8) }

// SetValue returns z with the MSB half replaced.
func (z ZeroPositionMSB) SetValue(v uint16) ZeroPositionMSB {
	return ZeroPositionMSB(setField(uint16(z), 0, 8, v))
}

// ZeroPositionLSB holds the 6 least significant bits of the programmed
// zero position (bits 5-0) together with the two comp-error-enable
// flags (bits 7 and 6).
type ZeroPositionLSB uint16

// Value returns the LSB half of the zero position.
func (z ZeroPositionLSB) Value() uint16 { return field(uint16(z), 0, 6) }

// SetValue returns z with the LSB half replaced. The enable flags are
// untouched.
func (z ZeroPositionLSB) SetValue(v uint16) ZeroPositionLSB {
	return ZeroPositionLSB(setField(uint16(z), 0, 6, v))
}

// CompHighErrorEnable reports whether a too-weak field contributes to
// the error flag (bit 7).
func (z ZeroPositionLSB) CompHighErrorEnable() bool { return bit(uint16(z), 7) }

// SetCompHighErrorEnable returns z with the enable bit updated.
func (z ZeroPositionLSB) SetCompHighErrorEnable(on bool) ZeroPositionLSB {
	return ZeroPositionLSB(setBit(uint16(z), 7, on))
}

// CompLowErrorEnable reports whether a too-strong field contributes to
// the error flag (bit 6).
func (z ZeroPositionLSB) CompLowErrorEnable() bool { return bit(uint16(z), 6) }

// SetCompLowErrorEnable returns z with the enable bit updated.
func (z ZeroPositionLSB) SetCompLowErrorEnable(on bool) ZeroPositionLSB {
	return ZeroPositionLSB(setBit(uint16(z), 6, on))
}

// Settings1 is a view of the first AS5047D settings register.
type Settings1 uint16

// PWMEnabled reports whether the PWM output is enabled (bit 7).
func (s Settings1) PWMEnabled() bool { return bit(uint16(s), 7) }

// SetPWMEnabled returns s with the PWM enable updated.
func (s Settings1) SetPWMEnabled(on bool) Settings1 {
	return Settings1(setBit(uint16(s), 7, on))
}

// DataSelect selects what the angle register reads back: false for the
// compensated angle, true for the raw CORDIC angle (bit 6).
func (s Settings1) DataSelect() bool { return bit(uint16(s), 6) }

// SetDataSelect returns s with the data-select bit updated.
func (s Settings1) SetDataSelect(on bool) Settings1 {
	return Settings1(setBit(uint16(s), 6, on))
}

// ABIBinary selects binary instead of decimal ABI pulses per revolution
// (bit 5).
func (s Settings1) ABIBinary() bool { return bit(uint16(s), 5) }

// SetABIBinary returns s with the ABI resolution base updated.
func (s Settings1) SetABIBinary(on bool) Settings1 {
	return Settings1(setBit(uint16(s), 5, on))
}

// DAECDisabled reports whether dynamic angle error compensation is
// switched off (bit 4).
func (s Settings1) DAECDisabled() bool { return bit(uint16(s), 4) }

// SetDAECDisabled returns s with the compensation switch updated.
func (s Settings1) SetDAECDisabled(on bool) Settings1 {
	return Settings1(setBit(uint16(s), 4, on))
}

// UVWOutput selects UVW operation with I as PWM instead of ABI with W
// as PWM (bit 3).
func (s Settings1) UVWOutput() bool { return bit(uint16(s), 3) }

// SetUVWOutput returns s with the output selection updated.
func (s Settings1) SetUVWOutput(on bool) Settings1 {
	return Settings1(setBit(uint16(s), 3, on))
}

// Direction is the rotation direction bit (bit 2).
func (s Settings1) Direction() bool { return bit(uint16(s), 2) }

// SetDirection returns s with the direction bit updated.
func (s Settings1) SetDirection(on bool) Settings1 {
	return Settings1(setBit(uint16(s), 2, on))
}

// Settings2 is a view of the second AS5047D settings register.
type Settings2 uint16

// ABIResolution is the ABI resolution code (bits 7-5).
func (s Settings2) ABIResolution() uint16 { return field(uint16(s), 5, 3) }

// SetABIResolution returns s with the resolution code replaced.
func (s Settings2) SetABIResolution(v uint16) Settings2 {
	return Settings2(setField(uint16(s), 5, 3, v))
}

// Hysteresis is the hysteresis setting (bits 4-3).
func (s Settings2) Hysteresis() uint16 { return field(uint16(s), 3, 2) }

// SetHysteresis returns s with the hysteresis setting replaced.
func (s Settings2) SetHysteresis(v uint16) Settings2 {
	return Settings2(setField(uint16(s), 3, 2, v))
}

// UVWPolePairs is the UVW pole pair code, 0 meaning one pair (bits 2-0).
func (s Settings2) UVWPolePairs() uint16 { return field(uint16(s), 0, 3) }

// SetUVWPolePairs returns s with the pole pair code replaced.
func (s Settings2) SetUVWPolePairs(v uint16) Settings2 {
	return Settings2(setField(uint16(s), 0, 3, v))
}
