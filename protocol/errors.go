package protocol

import "errors"

var (
	// ErrParity is returned when a response frame fails the even-parity
	// check. The frame was corrupted on the link; the caller should
	// retry the whole operation, not just the final transaction.
	ErrParity = errors.New("response frame failed parity check")

	// ErrSensor is returned when the sensor set the error flag in a
	// response frame, meaning it rejected the previous command. The
	// caller must clear the error flag before retrying.
	ErrSensor = errors.New("sensor error flag set")
)
