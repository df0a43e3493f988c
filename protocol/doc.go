// Package protocol implements the SPI command/response framing used by the
// AMS AS5047D and AS5048A magnetic rotary position sensors.
//
// # Frame Format
//
// Every exchange with the sensor is a single 16-bit frame, transmitted most
// significant byte first:
//
//	Command:  [PARITY(1)][READ(1)][ADDRESS(14)]
//	Data:     [PARITY(1)][  0(1) ][DATA(14)]
//	Response: [PARITY(1)][ EF(1) ][DATA(14)]
//
// Where:
//   - PARITY = bit 15, set so the total number of one-bits in the frame is even
//   - READ = bit 14 of a command frame, set for read access, clear for write
//   - EF = bit 14 of a response frame, set by the sensor when it rejected the
//     previous command
//   - ADDRESS/DATA = bits 13-0
//
// # Transaction Sequences
//
// Responses are shifted out one transaction after the command that requested
// them, so every logical operation spans multiple chip-select cycles:
//
//	Read:  (1) read command, response discarded
//	       (2) NOP, response carries the register value
//	Write: (1) write command, response discarded
//	       (2) data frame, response is the old register value (not validated)
//	       (3) NOP, response confirms the write passed validation
//
// # Frame Builders
//
// Use the builder functions to create outgoing frames with correct parity:
//
//	cmd := protocol.ReadCommand(addr)
//	cmd := protocol.WriteCommand(addr)
//	data := protocol.DataFrame(value)
//
// # Response Validation
//
// Use ParseResponse to validate a received frame and extract its payload:
//
//	payload, err := protocol.ParseResponse(frame)
//	if errors.Is(err, protocol.ErrParity) {
//	    // link corruption, retry the whole operation
//	}
//	if errors.Is(err, protocol.ErrSensor) {
//	    // sensor rejected a command, clear the error flag before retrying
//	}
//
// # Reference
//
// For complete protocol details, see the AMS AS5047D and AS5048A datasheets,
// section "SPI Interface".
package protocol
