package register

// Diagnostics is a read-only view of the diagnostics/AGC register,
// decoded through the owning variant's flag layout. Build a fresh value
// from every read; a Diagnostics is never updated in place.
type Diagnostics struct {
	raw    uint16
	layout DiagLayout
}

// NewDiagnostics decodes raw using the given variant layout.
func NewDiagnostics(raw uint16, layout DiagLayout) Diagnostics {
	return Diagnostics{raw: raw, layout: layout}
}

// Raw returns the raw register value.
func (d Diagnostics) Raw() uint16 { return d.raw }

// FieldTooStrong reports a magnetic field above the recommended range.
// The sensor may still work but accuracy suffers; AGC reads 0.
func (d Diagnostics) FieldTooStrong() bool {
	return bit(d.raw, d.layout.FieldTooStrong)
}

// FieldTooWeak reports a magnetic field below the recommended range.
// The sensor may still work but accuracy suffers; AGC reads 255.
func (d Diagnostics) FieldTooWeak() bool {
	return bit(d.raw, d.layout.FieldTooWeak)
}

// CordicOverflow reports an overflow in the internal angle computation.
// Angle and magnitude data are invalid while the flag is set.
func (d Diagnostics) CordicOverflow() bool {
	return bit(d.raw, d.layout.CordicOverflow)
}

// OffsetCompensationFinished reports that the internal offset
// compensation settled after power-up. Once set, the flag stays set.
func (d Diagnostics) OffsetCompensationFinished() bool {
	return bit(d.raw, d.layout.OffsetCompDone)
}

// AGC returns the automatic gain control value: 0 for a very strong
// field (magnet close), 255 for a very weak one (magnet far). Typical
// readings sit between 60 and 200.
func (d Diagnostics) AGC() uint8 {
	return uint8(d.raw)
}

// FieldStrengthOK reports a field that is neither too strong nor too
// weak.
func (d Diagnostics) FieldStrengthOK() bool {
	return !d.FieldTooStrong() && !d.FieldTooWeak()
}

// IsValid reports whether angle and magnitude readings taken in the
// same diagnostic window can be trusted: no CORDIC overflow and field
// strength in range. The registers are read in separate operations, so
// the predicate is advisory, not transactional.
func (d Diagnostics) IsValid() bool {
	return !d.CordicOverflow() && d.FieldStrengthOK()
}
