package sensor

import (
	"fmt"

	"github.com/rotarysense/go-as504x/protocol"
	"github.com/rotarysense/go-as504x/register"
)

// ReadRegister executes the two-transaction read sequence for reg: the
// read command, whose response belongs to whatever came before and is
// discarded, then a NOP whose response carries the register value. The
// returned value is the 14-bit payload after parity and error-flag
// validation.
func (s *Sensor) ReadRegister(reg register.Register) (uint16, error) {
	addr := reg.Addr()
	cmd := protocol.ReadCommand(addr)
	s.logDebug("read register", "addr", fmt.Sprintf("0x%04X", addr), "cmd", fmt.Sprintf("0x%04X", cmd))

	if _, err := s.transfer(cmd); err != nil {
		return 0, err
	}
	resp, err := s.transfer(protocol.Nop)
	if err != nil {
		return 0, err
	}

	payload, err := protocol.ParseResponse(resp)
	if err != nil {
		s.logError("response rejected", "addr", fmt.Sprintf("0x%04X", addr), "frame", fmt.Sprintf("0x%04X", resp), "err", err)
		return 0, fmt.Errorf("read 0x%04X: %w", addr, err)
	}

	s.logDebug("register value", "addr", fmt.Sprintf("0x%04X", addr), "value", fmt.Sprintf("0x%04X", payload))
	return payload, nil
}

// WriteRegister executes the three-transaction write sequence for reg:
// the write command, the 14-bit data frame (the sensor answers with the
// old register value, which is not validated), then a NOP whose
// response confirms the write passed parity and error-flag checks.
func (s *Sensor) WriteRegister(reg register.Register, value uint16) error {
	addr := reg.Addr()
	s.logDebug("write register", "addr", fmt.Sprintf("0x%04X", addr), "value", fmt.Sprintf("0x%04X", value))

	if _, err := s.transfer(protocol.WriteCommand(addr)); err != nil {
		return err
	}
	if _, err := s.transfer(protocol.DataFrame(value)); err != nil {
		return err
	}
	resp, err := s.transfer(protocol.Nop)
	if err != nil {
		return err
	}

	if _, err := protocol.ParseResponse(resp); err != nil {
		s.logError("write rejected", "addr", fmt.Sprintf("0x%04X", addr), "frame", fmt.Sprintf("0x%04X", resp), "err", err)
		return fmt.Errorf("write 0x%04X: %w", addr, err)
	}
	return nil
}

// ModifyRegister reads reg, applies f to the value and writes the
// result back. The two device accesses are not atomic: any failure
// aborts the sequence and leaves the register unspecified.
func (s *Sensor) ModifyRegister(reg register.Register, f func(uint16) uint16) error {
	value, err := s.ReadRegister(reg)
	if err != nil {
		return err
	}
	return s.WriteRegister(reg, f(value))
}

// transfer performs one transaction: a single full-duplex two-byte
// exchange with chip select asserted for exactly that exchange. Frames
// travel most significant byte first.
func (s *Sensor) transfer(frame uint16) (uint16, error) {
	var tx, rx [protocol.FrameSize]byte
	protocol.PutFrame(tx[:], frame)

	if err := s.c.Tx(tx[:], rx[:]); err != nil {
		return 0, &TransportError{Err: err}
	}
	return protocol.Frame(rx[:]), nil
}
