package sensor_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/spi"

	"github.com/rotarysense/go-as504x/protocol"
	"github.com/rotarysense/go-as504x/register"
	"github.com/rotarysense/go-as504x/sensor"
)

// transaction is one expected chip-select cycle: the frame the driver
// must transmit and the frame the mock answers with.
type transaction struct {
	tx []byte
	rx []byte
}

// mockConn replays a scripted list of transactions and fails the test
// on any deviation from the expected transmit frames.
type mockConn struct {
	t     *testing.T
	want  []transaction
	idx   int
	errAt int   // transaction index to fail at, -1 to disable
	err   error // transport error injected at errAt
}

func newMockConn(t *testing.T, want ...transaction) *mockConn {
	return &mockConn{t: t, want: want, errAt: -1}
}

func (m *mockConn) Tx(w, r []byte) error {
	defer func() { m.idx++ }()

	if m.idx == m.errAt {
		return m.err
	}
	require.Less(m.t, m.idx, len(m.want), "unexpected transaction")

	tr := m.want[m.idx]
	assert.Equal(m.t, tr.tx, w, "transaction %d transmit frame", m.idx)
	copy(r, tr.rx)
	return nil
}

func (m *mockConn) String() string { return "mock" }

func (m *mockConn) Duplex() conn.Duplex { return conn.Full }

func (m *mockConn) TxPackets([]spi.Packet) error {
	return errors.New("TxPackets not supported")
}

// done asserts that every scripted transaction was consumed.
func (m *mockConn) done() {
	assert.Equal(m.t, len(m.want), m.idx, "transactions consumed")
}

// withParity mirrors the device's even-parity rule for building
// expected frames.
func withParity(frame uint16) uint16 {
	if protocol.ComputeParity(frame) {
		return frame | protocol.ParityBit
	}
	return frame
}

func frameBytes(frame uint16) []byte {
	b := make([]byte, protocol.FrameSize)
	binary.BigEndian.PutUint16(b, frame)
	return b
}

func readCommand(addr uint16) []byte {
	return frameBytes(withParity(protocol.ReadBit | addr))
}

func writeCommand(addr uint16) []byte {
	return frameBytes(withParity(addr))
}

func dataFrame(value uint16) []byte {
	return frameBytes(withParity(value & protocol.DataMask))
}

// response builds a device response frame with correct parity.
func response(data uint16, errFlag bool) []byte {
	frame := data & protocol.DataMask
	if errFlag {
		frame |= protocol.ErrorFlagBit
	}
	return frameBytes(withParity(frame))
}

var nop = []byte{0x00, 0x00}

// ignored is the throwaway response to a command transaction.
var ignored = []byte{0x00, 0x00}

// readSeq expects the two-transaction read of addr answering value.
func readSeq(addr, value uint16) []transaction {
	return []transaction{
		{tx: readCommand(addr), rx: ignored},
		{tx: nop, rx: response(value, false)},
	}
}

// writeSeq expects the three-transaction write of value to addr; old is
// the stale register content clocked out during the data phase.
func writeSeq(addr, value, old uint16) []transaction {
	return []transaction{
		{tx: writeCommand(addr), rx: ignored},
		{tx: dataFrame(value), rx: response(old, false)},
		{tx: nop, rx: response(value, false)},
	}
}

func concat(seqs ...[]transaction) []transaction {
	var all []transaction
	for _, s := range seqs {
		all = append(all, s...)
	}
	return all
}

func TestAngle(t *testing.T) {
	m := newMockConn(t, readSeq(0x3FFF, 0x1234)...)
	dev := sensor.New(m, register.AS5047D)

	angle, err := dev.Angle()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), angle)
	m.done()
}

func TestSequentialAngleReads(t *testing.T) {
	values := []uint16{0x0000, 0x1000, 0x2000, 0x3000}

	var seqs [][]transaction
	for _, v := range values {
		seqs = append(seqs, readSeq(0x3FFF, v))
	}
	m := newMockConn(t, concat(seqs...)...)
	dev := sensor.New(m, register.AS5048A)

	for _, want := range values {
		angle, err := dev.Angle()
		require.NoError(t, err)
		assert.Equal(t, want, angle)
	}
	m.done()
}

func TestAngleDegrees(t *testing.T) {
	tests := []struct {
		name    string
		variant register.Map
		raw     uint16
		want    uint16
	}{
		{
			name:    "zero",
			variant: register.AS5047D,
			raw:     0x0000,
			want:    0,
		},
		{
			name:    "AS5047D top of range rounds down",
			variant: register.AS5047D,
			raw:     0x3FFF, // AngleMax-1
			want:    359,
		},
		{
			name:    "AS5047D half turn",
			variant: register.AS5047D,
			raw:     0x2000,
			want:    180,
		},
		{
			name:    "AS5048A top of range rounds down",
			variant: register.AS5048A,
			raw:     0x3FFE, // AngleMax-1
			want:    359,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockConn(t, readSeq(tt.variant.Angle.Addr(), tt.raw)...)
			dev := sensor.New(m, tt.variant)

			deg, err := dev.AngleDegrees()
			require.NoError(t, err)
			assert.Equal(t, tt.want, deg)
			m.done()
		})
	}
}

func TestAngleUncompensated(t *testing.T) {
	m := newMockConn(t, readSeq(0x3FFE, 0x0FED)...)
	dev := sensor.New(m, register.AS5047D)

	angle, err := dev.AngleUncompensated()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0FED), angle)
	m.done()
}

func TestAngleUncompensatedUnsupported(t *testing.T) {
	m := newMockConn(t) // no transactions allowed
	dev := sensor.New(m, register.AS5048A)

	_, err := dev.AngleUncompensated()
	require.ErrorIs(t, err, sensor.ErrUnsupported)
	m.done()
}

func TestMagnitude(t *testing.T) {
	m := newMockConn(t, readSeq(0x3FFE, 0x0ABC)...)
	dev := sensor.New(m, register.AS5048A)

	mag, err := dev.Magnitude()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0ABC), mag)
	m.done()
}

func TestDiagnostics(t *testing.T) {
	m := newMockConn(t, readSeq(0x3FFD, 0x0480)...)
	dev := sensor.New(m, register.AS5048A)

	diag, err := dev.Diagnostics()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0480), diag.Raw())
	assert.True(t, diag.OffsetCompensationFinished())
	assert.Equal(t, uint8(128), diag.AGC())
	assert.True(t, diag.IsValid())
	m.done()
}

func TestClearErrorFlag(t *testing.T) {
	m := newMockConn(t, readSeq(0x0001, 0x0002)...)
	dev := sensor.New(m, register.AS5047D)

	flags, err := dev.ClearErrorFlag()
	require.NoError(t, err)
	assert.True(t, flags.InvalidCommand())
	assert.False(t, flags.ParityError())
	assert.False(t, flags.FramingError())
	assert.True(t, flags.Any())
	m.done()
}

func TestParityError(t *testing.T) {
	m := newMockConn(t,
		transaction{tx: readCommand(0x3FFF), rx: ignored},
		transaction{tx: nop, rx: []byte{0xC0, 0x01}}, // odd population count
	)
	dev := sensor.New(m, register.AS5048A)

	_, err := dev.Angle()
	require.ErrorIs(t, err, protocol.ErrParity)
	m.done()
}

func TestSensorErrorFlag(t *testing.T) {
	m := newMockConn(t,
		transaction{tx: readCommand(0x3FFF), rx: ignored},
		transaction{tx: nop, rx: response(0x0000, true)},
	)
	dev := sensor.New(m, register.AS5048A)

	_, err := dev.Angle()
	require.ErrorIs(t, err, protocol.ErrSensor)
	m.done()
}

func TestTransportErrorAbortsRead(t *testing.T) {
	cause := errors.New("bus gone")
	m := newMockConn(t)
	m.errAt = 0
	m.err = cause

	dev := sensor.New(m, register.AS5047D)

	_, err := dev.Angle()
	require.Error(t, err)
	assert.True(t, sensor.IsTransportError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, m.idx, "sequence must abort after the failing transaction")
}

func TestTransportErrorAbortsWriteMidSequence(t *testing.T) {
	cause := errors.New("bus gone")
	m := newMockConn(t, transaction{tx: writeCommand(0x0018), rx: ignored})
	m.errAt = 1
	m.err = cause

	dev := sensor.New(m, register.AS5047D)

	err := dev.SetSettings1(register.Settings1(0x0004))
	require.Error(t, err)
	assert.True(t, sensor.IsTransportError(err))
	assert.Equal(t, 2, m.idx, "no NOP verify after a failed data phase")
}

func TestWriteRegister(t *testing.T) {
	m := newMockConn(t, writeSeq(0x0018, 0x0004, 0x0000)...)
	dev := sensor.New(m, register.AS5047D)

	err := dev.WriteRegister(register.AS5047D.Settings1, 0x0004)
	require.NoError(t, err)
	m.done()
}

func TestWriteRegisterVerifyRejected(t *testing.T) {
	m := newMockConn(t,
		transaction{tx: writeCommand(0x0018), rx: ignored},
		transaction{tx: dataFrame(0x0004), rx: ignored},
		transaction{tx: nop, rx: response(0x0000, true)},
	)
	dev := sensor.New(m, register.AS5047D)

	err := dev.WriteRegister(register.AS5047D.Settings1, 0x0004)
	require.ErrorIs(t, err, protocol.ErrSensor)
	m.done()
}

func TestZeroPosition(t *testing.T) {
	// LSB register carries both enable bits; they must not leak into
	// the composed value.
	m := newMockConn(t, concat(
		readSeq(0x0016, 0x0048),
		readSeq(0x0017, 0x00F4),
	)...)
	dev := sensor.New(m, register.AS5047D)

	pos, err := dev.ZeroPosition()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), pos)
	m.done()
}

func TestSetZeroPosition(t *testing.T) {
	// Both halves are read-modify-write; the enable bits preset in the
	// LSB register (0x00C0) must survive.
	m := newMockConn(t, concat(
		readSeq(0x0017, 0x00C0),
		writeSeq(0x0017, 0x00F4, 0x00C0),
		readSeq(0x0016, 0x0000),
		writeSeq(0x0016, 0x0048, 0x0000),
	)...)
	dev := sensor.New(m, register.AS5047D)

	require.NoError(t, dev.SetZeroPosition(0x1234))
	m.done()
}

func TestCompErrorEnables(t *testing.T) {
	m := newMockConn(t, readSeq(0x0017, 0x00B4)...)
	dev := sensor.New(m, register.AS5048A)

	high, low, err := dev.CompErrorEnables()
	require.NoError(t, err)
	assert.True(t, high)
	assert.False(t, low)
	m.done()
}

func TestSettingsUnsupported(t *testing.T) {
	m := newMockConn(t)
	dev := sensor.New(m, register.AS5048A)

	_, err := dev.Settings1()
	require.ErrorIs(t, err, sensor.ErrUnsupported)

	err = dev.SetSettings2(register.Settings2(0))
	require.ErrorIs(t, err, sensor.ErrUnsupported)
	m.done()
}

func TestString(t *testing.T) {
	dev := sensor.New(newMockConn(t), register.AS5047D)
	assert.Equal(t, "AS5047D{mock}", dev.String())
	assert.NoError(t, dev.Halt())
}
