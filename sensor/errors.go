package sensor

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when an operation targets a register the
// configured chip variant does not provide.
var ErrUnsupported = errors.New("register not available on this variant")

// TransportError wraps a failure of the underlying SPI exchange. The
// in-progress transaction sequence was aborted; the sensor's shift
// register state is unspecified until the next successful read.
type TransportError struct {
	// Err is the error reported by the transport.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

// Unwrap returns the transport's own error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err is, or wraps, a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
