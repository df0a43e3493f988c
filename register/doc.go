// Package register describes the register space of the AMS AS5047D and
// AS5048A magnetic rotary position sensors.
//
// # Register Maps
//
// The two supported chips expose near-identical functionality at partly
// different addresses, with different diagnostics layouts and full-scale
// angle counts. A Map value captures everything that is variant-specific,
// so the rest of the driver stays generic:
//
//	AS5047D                          AS5048A
//	0x0001  ERRFL                    0x0001  Clear Error Flag
//	0x0003  PROG                     0x0003  Programming Control
//	0x0016  ZPOSM                    0x0016  OTP Zero Position High
//	0x0017  ZPOSL                    0x0017  OTP Zero Position Low
//	0x0018  SETTINGS1                -
//	0x0019  SETTINGS2                -
//	0x3FFC  DIAAGC                   -
//	0x3FFD  MAG                      0x3FFD  Diagnostics + AGC
//	0x3FFE  ANGLEUNC                 0x3FFE  Magnitude
//	0x3FFF  ANGLECOM                 0x3FFF  Angle
//
// Registers a variant does not provide are RegisterNone in its Map.
//
// # Bitfield Views
//
// Each register with internal structure has a uint16-backed view type with
// pure accessors (ErrorFlags, Programming, ZeroPositionMSB, ZeroPositionLSB,
// Settings1, Settings2, Diagnostics). Setters return a new value and never
// disturb bits outside the addressed field:
//
//	z := register.ZeroPositionLSB(raw)
//	z = z.SetValue(0x34) // comp-error-enable bits at 7 and 6 untouched
//
// # Diagnostics
//
// Diagnostics wraps a raw diagnostics/AGC read together with the owning
// variant's flag layout. IsValid is the single authoritative predicate for
// whether angle and magnitude readings taken in the same diagnostic window
// can be trusted.
package register
