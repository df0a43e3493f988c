package sensor

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/spi"

	"github.com/rotarysense/go-as504x/register"
)

// Sensor is a handle to one AS504x device. It owns its SPI connection
// exclusively for its lifetime; operations are synchronous and must not
// be issued concurrently.
type Sensor struct {
	c      spi.Conn
	m      register.Map
	config Config
}

// New creates a Sensor over an established SPI connection.
//
// Example:
//
//	dev := sensor.New(conn, register.AS5048A,
//	    sensor.WithLogger(myLogger),
//	)
func New(c spi.Conn, m register.Map, opts ...Option) *Sensor {
	if c == nil {
		panic("conn cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Sensor{c: c, m: m, config: cfg}
}

// NewSPI connects a Sensor on the given SPI port using the sensor's bus
// parameters: mode 1 (CPOL=0, CPHA=1), 8-bit words, 10 MHz unless
// lowered with WithBusSpeed.
func NewSPI(p spi.Port, m register.Map, opts ...Option) (*Sensor, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c, err := p.Connect(cfg.BusSpeed, spi.Mode1, 8)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", m.Name, err)
	}

	return &Sensor{c: c, m: m, config: cfg}, nil
}

// Variant returns the register map the Sensor was created with.
func (s *Sensor) Variant() register.Map {
	return s.m
}

// String implements conn.Resource.
func (s *Sensor) String() string {
	return fmt.Sprintf("%s{%s}", s.m.Name, s.c)
}

// Halt implements conn.Resource. The sensor has no power-down command
// over SPI, so Halt only marks the handle released.
func (s *Sensor) Halt() error {
	return nil
}

var _ conn.Resource = (*Sensor)(nil)

// Angle returns the 14-bit angular position, 0-16383 across one turn.
// On the AS5047D this is the dynamically compensated angle.
func (s *Sensor) Angle() (uint16, error) {
	return s.ReadRegister(s.m.Angle)
}

// AngleDegrees returns the angular position in whole degrees, 0-359.
// The conversion uses the variant's full-scale count and rounds down.
func (s *Sensor) AngleDegrees() (uint16, error) {
	angle, err := s.Angle()
	if err != nil {
		return 0, err
	}
	return uint16(uint32(angle) * 360 / uint32(s.m.AngleMax)), nil
}

// AngleUncompensated returns the measured angle without dynamic angle
// error compensation. Only the AS5047D provides the register; other
// variants return ErrUnsupported.
func (s *Sensor) AngleUncompensated() (uint16, error) {
	if !s.m.AngleUncompensated.Valid() {
		return 0, fmt.Errorf("%s: uncompensated angle: %w", s.m.Name, ErrUnsupported)
	}
	return s.ReadRegister(s.m.AngleUncompensated)
}

// Magnitude returns the 14-bit CORDIC magnitude. Useful for checking
// magnet presence and strength.
func (s *Sensor) Magnitude() (uint16, error) {
	return s.ReadRegister(s.m.Magnitude)
}

// Diagnostics reads the diagnostics/AGC register. Check IsValid on the
// result before trusting angle or magnitude readings taken in the same
// window.
func (s *Sensor) Diagnostics() (register.Diagnostics, error) {
	raw, err := s.ReadRegister(s.m.Diagnostics)
	if err != nil {
		return register.Diagnostics{}, err
	}
	return register.NewDiagnostics(raw, s.m.Diag), nil
}

// ClearErrorFlag reads the error-flag register, which resets the
// sensor's error latch, and returns the flags that were latched. The
// documented recovery for protocol.ErrSensor is ClearErrorFlag followed
// by one retry of the failed operation; the driver itself never
// retries.
func (s *Sensor) ClearErrorFlag() (register.ErrorFlags, error) {
	raw, err := s.ReadRegister(s.m.ErrorFlag)
	if err != nil {
		return 0, err
	}
	return register.ErrorFlags(raw), nil
}

// ZeroPosition returns the programmed 14-bit zero position, composed
// from the 8-bit MSB and 6-bit LSB half-registers.
func (s *Sensor) ZeroPosition() (uint16, error) {
	msbRaw, err := s.ReadRegister(s.m.ZeroPositionMSB)
	if err != nil {
		return 0, fmt.Errorf("zero position MSB: %w", err)
	}
	lsbRaw, err := s.ReadRegister(s.m.ZeroPositionLSB)
	if err != nil {
		return 0, fmt.Errorf("zero position LSB: %w", err)
	}

	msb := register.ZeroPositionMSB(msbRaw).Value()
	lsb := register.ZeroPositionLSB(lsbRaw).Value()
	return msb<<6 | lsb, nil
}

// CompErrorEnables returns the two compensation-error-enable flags that
// share the zero position LSB register: high enables the too-weak field
// contribution to the error flag, low the too-strong one.
func (s *Sensor) CompErrorEnables() (high, low bool, err error) {
	raw, err := s.ReadRegister(s.m.ZeroPositionLSB)
	if err != nil {
		return false, false, fmt.Errorf("zero position LSB: %w", err)
	}
	v := register.ZeroPositionLSB(raw)
	return v.CompHighErrorEnable(), v.CompLowErrorEnable(), nil
}

// SetZeroPosition programs a 14-bit zero position. Both half-registers
// are updated with read-modify-write sequences so the comp-error-enable
// bits sharing the LSB register keep their values. The update is not
// atomic: a failure between the two writes leaves the halves
// inconsistent.
func (s *Sensor) SetZeroPosition(value uint16) error {
	value &= 0x3FFF
	lsb := value & 0x3F
	msb := value >> 6

	err := s.ModifyRegister(s.m.ZeroPositionLSB, func(v uint16) uint16 {
		return uint16(register.ZeroPositionLSB(v).SetValue(lsb))
	})
	if err != nil {
		return fmt.Errorf("zero position LSB: %w", err)
	}

	err = s.ModifyRegister(s.m.ZeroPositionMSB, func(v uint16) uint16 {
		return uint16(register.ZeroPositionMSB(v).SetValue(msb))
	})
	if err != nil {
		return fmt.Errorf("zero position MSB: %w", err)
	}

	s.logInfo("zero position programmed", "value", fmt.Sprintf("0x%04X", value))
	return nil
}

// Settings1 reads the first settings register. Only the AS5047D
// provides it.
func (s *Sensor) Settings1() (register.Settings1, error) {
	if !s.m.Settings1.Valid() {
		return 0, fmt.Errorf("%s: settings 1: %w", s.m.Name, ErrUnsupported)
	}
	raw, err := s.ReadRegister(s.m.Settings1)
	if err != nil {
		return 0, err
	}
	return register.Settings1(raw), nil
}

// SetSettings1 writes the first settings register. Only the AS5047D
// provides it.
func (s *Sensor) SetSettings1(v register.Settings1) error {
	if !s.m.Settings1.Valid() {
		return fmt.Errorf("%s: settings 1: %w", s.m.Name, ErrUnsupported)
	}
	return s.WriteRegister(s.m.Settings1, uint16(v))
}

// Settings2 reads the second settings register. Only the AS5047D
// provides it.
func (s *Sensor) Settings2() (register.Settings2, error) {
	if !s.m.Settings2.Valid() {
		return 0, fmt.Errorf("%s: settings 2: %w", s.m.Name, ErrUnsupported)
	}
	raw, err := s.ReadRegister(s.m.Settings2)
	if err != nil {
		return 0, err
	}
	return register.Settings2(raw), nil
}

// SetSettings2 writes the second settings register. Only the AS5047D
// provides it.
func (s *Sensor) SetSettings2(v register.Settings2) error {
	if !s.m.Settings2.Valid() {
		return fmt.Errorf("%s: settings 2: %w", s.m.Name, ErrUnsupported)
	}
	return s.WriteRegister(s.m.Settings2, uint16(v))
}

// logDebug logs a debug message if a logger is configured.
func (s *Sensor) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (s *Sensor) logInfo(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (s *Sensor) logError(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Error(msg, keysAndValues...)
	}
}
