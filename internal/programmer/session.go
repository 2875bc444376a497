package programmer

import (
	"github.com/AndersBNielsen/firestarter-app/internal/database"
	"github.com/AndersBNielsen/firestarter-app/internal/protocol"
)

// ReadVoltage streams voltage measurements for the given state (VPE, VPP or
// VCC), invoking sample once per DATA event and acknowledging each. The
// stream ends when the device sends anything other than DATA, or when
// sample returns false; either way the connection is closed on return.
func (p *Programmer) ReadVoltage(state int, sample func(measurement string) bool) error {
	conn, err := p.Connect(protocol.NewEnvelope(state))
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.WriteString("OK"); err != nil {
		return err
	}

	for {
		resp, err := p.WaitForResponse(conn)
		if err != nil {
			return err
		}
		if resp.Kind != protocol.KindData {
			if resp.Kind == protocol.KindOK {
				return nil
			}
			return respError("voltage read", resp)
		}
		if !sample(resp.Message) {
			return nil
		}
		if err := conn.WriteString("OK"); err != nil {
			return err
		}
	}
}

// FirmwareVersion asks the programmer for its firmware version. Returns the
// major.minor.patch string and the port the device answered on.
func (p *Programmer) FirmwareVersion() (version, port string, err error) {
	conn, err := p.Connect(protocol.NewEnvelope(protocol.StateVersion))
	if err != nil {
		return "", "", err
	}
	defer conn.Close()

	if err := conn.WriteString("OK"); err != nil {
		return "", "", err
	}
	resp, err := p.WaitForResponse(conn)
	if err != nil {
		return "", "", err
	}
	if resp.Kind != protocol.KindOK {
		return "", "", respError("version check", resp)
	}
	return resp.Message, conn.Name(), nil
}

// PushConfig sends voltage-calibration values to the device. Zero values are
// omitted from the envelope and leave the device setting untouched. Returns
// the device's acknowledgment message.
func (p *Programmer) PushConfig(vcc float64, r1, r2 int) (string, error) {
	env := protocol.NewEnvelope(protocol.StateConfig)
	if vcc != 0 {
		env.Set("vcc", vcc)
	}
	if r1 != 0 {
		env.Set("r1", r1)
	}
	if r2 != 0 {
		env.Set("r2", r2)
	}

	conn, err := p.Connect(env)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	if err := conn.WriteString("OK\n"); err != nil {
		return "", err
	}
	resp, err := p.WaitForResponse(conn)
	if err != nil {
		return "", err
	}
	if resp.Kind != protocol.KindOK {
		return "", respError("config", resp)
	}
	return resp.Message, nil
}

// Erase clears an electrically erasable chip. Returns the device's final
// message.
func (p *Programmer) Erase(chip *database.EPROM) (string, error) {
	return p.simpleChipOp(protocol.StateErase, "erase", chip)
}

// BlankCheck verifies the chip reads back as all-ones. Returns the device's
// final message.
func (p *Programmer) BlankCheck(chip *database.EPROM) (string, error) {
	return p.simpleChipOp(protocol.StateCheckBlank, "blank check", chip)
}

func (p *Programmer) simpleChipOp(state int, op string, chip *database.EPROM) (string, error) {
	fields, err := chip.CommandFields()
	if err != nil {
		return "", err
	}
	conn, err := p.Connect(protocol.NewEnvelope(state).Merge(fields))
	if err != nil {
		return "", err
	}
	defer conn.Close()

	if err := conn.WriteString("OK"); err != nil {
		return "", err
	}
	resp, err := p.WaitForResponse(conn)
	if err != nil {
		return "", err
	}
	if resp.Kind != protocol.KindOK {
		return "", respError(op, resp)
	}
	return resp.Message, nil
}
