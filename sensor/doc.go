// Package sensor provides the driver for AMS AS5047D and AS5048A magnetic
// rotary position sensors over SPI.
//
// # Overview
//
// A Sensor wraps one SPI connection and executes the sensor's
// command/response protocol: multi-transaction read and write sequences,
// parity generation and checking, and error-flag validation. Register
// addresses, the diagnostics layout and the full-scale angle count come
// from a register.Map, one per chip variant, so the same engine drives
// both chips.
//
// # Basic Usage
//
//	port, err := spireg.Open("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	dev, err := sensor.NewSPI(port, register.AS5047D)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	deg, err := dev.AngleDegrees()
//
// An already-connected spi.Conn can be wrapped directly with New, which
// is also the entry point for tests and custom transports.
//
// # Transport Contract
//
// Each spi.Conn.Tx call is one transaction: chip select asserted for
// exactly one two-byte full-duplex exchange, then released. The sensor
// requires a minimum chip-select idle time between transactions (350 ns
// on the AS5048A); the transport is expected to honor it, the driver
// does not insert delays.
//
// # Error Handling
//
// Operations fail with exactly one of:
//   - *TransportError: the SPI exchange itself failed
//   - protocol.ErrParity: a response frame arrived corrupted
//   - protocol.ErrSensor: the sensor rejected a previous command
//
// The driver never retries. For protocol.ErrSensor the documented
// recovery is to read the error flags once and retry the operation:
//
//	angle, err := dev.Angle()
//	if errors.Is(err, protocol.ErrSensor) {
//	    if _, cerr := dev.ClearErrorFlag(); cerr == nil {
//	        angle, err = dev.Angle()
//	    }
//	}
//
// # Concurrency
//
// A Sensor owns its connection exclusively and performs no internal
// locking. Operations are synchronous and must not be issued
// concurrently; callers sharing a bus must serialize at the transport
// level (periph's spi.Port does this per connection).
//
// # Logging
//
// Pass a Logger via WithLogger to observe frame traffic and operation
// outcomes. Integration with any logging framework:
//
//	type SlogLogger struct{ L *slog.Logger }
//
//	func (l SlogLogger) Debug(msg string, kv ...interface{}) { l.L.Debug(msg, kv...) }
//	func (l SlogLogger) Info(msg string, kv ...interface{})  { l.L.Info(msg, kv...) }
//	func (l SlogLogger) Error(msg string, kv ...interface{}) { l.L.Error(msg, kv...) }
//
//	dev := sensor.New(conn, register.AS5048A, sensor.WithLogger(SlogLogger{slog.Default()}))
package sensor
