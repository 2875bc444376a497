package serialport

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

const (
	// BaudRate is fixed by the programmer firmware.
	BaudRate = 115200

	// SettleDelay is how long to wait after opening a port before writing.
	// The Arduino resets when the port is opened and needs time to boot.
	SettleDelay = 2 * time.Second

	// ReadTimeout bounds a single read. Aggregating partial reads into a
	// full response is the wait loop's job.
	ReadTimeout = time.Second

	// blockDeadline bounds how long a bulk payload read may stall.
	blockDeadline = 5 * time.Second
)

// ConnectionError wraps a transport open, read or write failure.
type ConnectionError struct {
	Op   string
	Port string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("serial %s on %s: %v", e.Op, e.Port, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Wire is the raw byte stream beneath a Connection. go.bug.st's serial.Port
// satisfies it; tests inject a scripted implementation.
type Wire interface {
	io.ReadWriteCloser
	Drain() error
}

// Connection is an open serial link to the programmer, owned exclusively by
// one command invocation. Reads are line-oriented with a per-read timeout;
// bytes received past a newline are kept for the next read so that bulk
// payload bytes following a DATA line are never lost.
type Connection struct {
	wire     Wire
	name     string
	leftover []byte
}

// Open opens the named port at the fixed baud rate. The caller must allow
// SettleDelay to pass before the first write.
func Open(portName string) (*Connection, error) {
	mode := &serial.Mode{
		BaudRate: BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, &ConnectionError{Op: "open", Port: portName, Err: err}
	}
	if err := port.SetReadTimeout(ReadTimeout); err != nil {
		port.Close()
		return nil, &ConnectionError{Op: "configure", Port: portName, Err: err}
	}
	return NewConnection(port, portName), nil
}

// NewConnection wraps an already-open wire. Exposed for tests.
func NewConnection(wire Wire, name string) *Connection {
	return &Connection{wire: wire, name: name}
}

// Name returns the port name this connection is bound to.
func (c *Connection) Name() string { return c.name }

// ReadLine reads until a newline, returning whatever arrived once a single
// read times out or the call has run for ReadTimeout overall. The overall
// bound keeps a device streaming bytes without newlines from stalling the
// caller's own deadline checks. An empty result with nil error means the
// read timed out with nothing buffered.
func (c *Connection) ReadLine() ([]byte, error) {
	if i := bytes.IndexByte(c.leftover, '\n'); i >= 0 {
		line := c.leftover[:i+1]
		c.leftover = c.leftover[i+1:]
		return line, nil
	}
	line := c.leftover
	c.leftover = nil

	deadline := time.Now().Add(ReadTimeout)
	buf := make([]byte, 128)
	for {
		n, err := c.wire.Read(buf)
		if err != nil {
			return line, &ConnectionError{Op: "read", Port: c.name, Err: err}
		}
		if n == 0 {
			// per-read timeout expired
			return line, nil
		}
		chunk := buf[:n]
		if i := bytes.IndexByte(chunk, '\n'); i >= 0 {
			line = append(line, chunk[:i+1]...)
			c.leftover = append(c.leftover, chunk[i+1:]...)
			return line, nil
		}
		line = append(line, chunk...)
		if time.Now().After(deadline) {
			return line, nil
		}
	}
}

// ReadBlock reads exactly n raw payload bytes, failing if the stream stalls
// past the block deadline.
func (c *Connection) ReadBlock(n int) ([]byte, error) {
	block := make([]byte, 0, n)
	if len(c.leftover) > 0 {
		take := min(n, len(c.leftover))
		block = append(block, c.leftover[:take]...)
		c.leftover = c.leftover[take:]
	}

	deadline := time.Now().Add(blockDeadline)
	buf := make([]byte, n)
	for len(block) < n {
		got, err := c.wire.Read(buf[:n-len(block)])
		if err != nil {
			return nil, &ConnectionError{Op: "read", Port: c.name, Err: err}
		}
		if got == 0 {
			if time.Now().After(deadline) {
				return nil, &ConnectionError{Op: "read", Port: c.name, Err: fmt.Errorf("stalled after %d of %d payload bytes", len(block), n)}
			}
			continue
		}
		block = append(block, buf[:got]...)
	}
	return block, nil
}

// Write sends raw bytes to the programmer.
func (c *Connection) Write(p []byte) (int, error) {
	n, err := c.wire.Write(p)
	if err != nil {
		return n, &ConnectionError{Op: "write", Port: c.name, Err: err}
	}
	return n, nil
}

// WriteString sends an ASCII string to the programmer.
func (c *Connection) WriteString(s string) error {
	_, err := c.Write([]byte(s))
	return err
}

// Flush blocks until all written bytes have left the output buffer.
func (c *Connection) Flush() error {
	if err := c.wire.Drain(); err != nil {
		return &ConnectionError{Op: "flush", Port: c.name, Err: err}
	}
	return nil
}

// Close releases the port.
func (c *Connection) Close() error {
	return c.wire.Close()
}
