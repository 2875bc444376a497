package programmer

import (
	"fmt"
	"io"
	"time"

	"github.com/AndersBNielsen/firestarter-app/internal/database"
	"github.com/AndersBNielsen/firestarter-app/internal/protocol"
)

// ReadChip reads the chip's full contents into out, one 256-byte block per
// DATA event, acknowledging each block with OK. The device signals the end
// of the transfer with a bare OK. Any output already written stays written
// if the transfer aborts partway. Returns the byte count and total duration.
func (p *Programmer) ReadChip(chip *database.EPROM, out io.Writer) (int, time.Duration, error) {
	fields, err := chip.CommandFields()
	if err != nil {
		return 0, 0, err
	}
	env := protocol.NewEnvelope(protocol.StateRead).Merge(fields)

	conn, err := p.Connect(env)
	if err != nil {
		return 0, 0, err
	}
	defer conn.Close()

	start := time.Now()
	if err := conn.WriteString("OK"); err != nil {
		return 0, 0, err
	}
	if err := conn.Flush(); err != nil {
		return 0, 0, err
	}

	bytesRead := 0
	for {
		resp, err := p.WaitForResponse(conn)
		if err != nil {
			return bytesRead, time.Since(start), err
		}
		switch resp.Kind {
		case protocol.KindData:
			n := chip.MemorySize - bytesRead
			if n > protocol.BlockSize || n <= 0 {
				n = protocol.BlockSize
			}
			block, err := conn.ReadBlock(n)
			if err != nil {
				return bytesRead, time.Since(start), err
			}
			if _, err := out.Write(block); err != nil {
				return bytesRead, time.Since(start), fmt.Errorf("failed to write output: %w", err)
			}
			bytesRead += len(block)
			p.reportProgress(bytesRead, len(block), chip.MemorySize, start)
			if err := conn.WriteString("OK\n"); err != nil {
				return bytesRead, time.Since(start), err
			}
			if err := conn.Flush(); err != nil {
				return bytesRead, time.Since(start), err
			}
		case protocol.KindOK:
			return bytesRead, time.Since(start), nil
		default:
			return bytesRead, time.Since(start), respError("read", resp)
		}
	}
}
