package programmer

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/AndersBNielsen/firestarter-app/internal/database"
	"github.com/AndersBNielsen/firestarter-app/internal/protocol"
)

// WriteChip streams src to the chip in 256-byte blocks, each framed by a
// 2-byte big-endian length prefix and acknowledged by the device before the
// next block goes out. A zero-length prefix marks end of stream; it is
// skipped when the cumulative byte count reaches the declared memory size
// first, which the firmware treats as completion on its own.
//
// A source size that disagrees with the chip's memory size is warned about
// but not rejected; the device gets the final say.
func (p *Programmer) WriteChip(chip *database.EPROM, src io.Reader, fileSize int, address *int) (int, time.Duration, error) {
	if fileSize != chip.MemorySize {
		fmt.Printf("The file size (%d) does not match the memory size (%d)\n", fileSize, chip.MemorySize)
	}

	fields, err := chip.CommandFields()
	if err != nil {
		return 0, 0, err
	}
	env := protocol.NewEnvelope(protocol.StateWrite).Merge(fields)
	if address != nil {
		env.Set("address", *address)
	}

	conn, err := p.Connect(env)
	if err != nil {
		return 0, 0, err
	}
	defer conn.Close()

	start := time.Now()
	bytesSent := 0
	buf := make([]byte, protocol.BlockSize)
	var prefix [2]byte

	for {
		n, rerr := io.ReadFull(src, buf)
		if rerr == io.EOF {
			// source exhausted: zero-length prefix is the end-of-stream
			// marker, then one final acknowledgment from the device
			binary.BigEndian.PutUint16(prefix[:], 0)
			if _, err := conn.Write(prefix[:]); err != nil {
				return bytesSent, time.Since(start), err
			}
			if err := conn.Flush(); err != nil {
				return bytesSent, time.Since(start), err
			}
			resp, err := p.WaitForResponse(conn)
			if err != nil {
				return bytesSent, time.Since(start), err
			}
			if resp.Kind == protocol.KindError || resp.Kind == protocol.KindTimeout {
				return bytesSent, time.Since(start), respError("write", resp)
			}
			fmt.Println(resp.Message)
			return bytesSent, time.Since(start), nil
		}
		if rerr != nil && rerr != io.ErrUnexpectedEOF {
			return bytesSent, time.Since(start), fmt.Errorf("failed to read source: %w", rerr)
		}

		binary.BigEndian.PutUint16(prefix[:], uint16(n))
		if _, err := conn.Write(prefix[:]); err != nil {
			return bytesSent, time.Since(start), err
		}
		if _, err := conn.Write(buf[:n]); err != nil {
			return bytesSent, time.Since(start), err
		}
		if err := conn.Flush(); err != nil {
			return bytesSent, time.Since(start), err
		}

		resp, err := p.WaitForResponse(conn)
		if err != nil {
			return bytesSent, time.Since(start), err
		}
		switch resp.Kind {
		case protocol.KindOK:
			bytesSent += n
			p.reportProgress(bytesSent, n, fileSize, start)
		default:
			return bytesSent, time.Since(start), respError("write", resp)
		}

		if bytesSent == chip.MemorySize {
			return bytesSent, time.Since(start), nil
		}
	}
}
