package serialport

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

// scriptWire feeds reads from a fixed script, one entry per Read call.
// An empty entry simulates a read timeout.
type scriptWire struct {
	script  [][]byte
	idx     int
	written bytes.Buffer
	readErr error
}

func (w *scriptWire) Read(p []byte) (int, error) {
	if w.readErr != nil {
		return 0, w.readErr
	}
	if w.idx >= len(w.script) {
		return 0, nil
	}
	chunk := w.script[w.idx]
	w.idx++
	return copy(p, chunk), nil
}

func (w *scriptWire) Write(p []byte) (int, error) { return w.written.Write(p) }
func (w *scriptWire) Drain() error                { return nil }
func (w *scriptWire) Close() error                { return nil }

func TestReadLineKeepsPayloadBytes(t *testing.T) {
	// a DATA line and the first payload bytes arrive in one read
	wire := &scriptWire{script: [][]byte{
		[]byte("DATA: block\n\x01\x02\x03"),
		{0x04},
	}}
	conn := NewConnection(wire, "mock")

	line, err := conn.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine() error = %v", err)
	}
	if string(line) != "DATA: block\n" {
		t.Fatalf("ReadLine() = %q", line)
	}

	block, err := conn.ReadBlock(4)
	if err != nil {
		t.Fatalf("ReadBlock() error = %v", err)
	}
	if !bytes.Equal(block, []byte{1, 2, 3, 4}) {
		t.Errorf("ReadBlock() = %v, want payload bytes after the newline", block)
	}
}

func TestReadLineSpansReads(t *testing.T) {
	wire := &scriptWire{script: [][]byte{
		[]byte("OK: par"),
		[]byte("tial\nnext"),
	}}
	conn := NewConnection(wire, "mock")

	line, err := conn.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine() error = %v", err)
	}
	if string(line) != "OK: partial\n" {
		t.Errorf("ReadLine() = %q", line)
	}
}

func TestReadLineTimeoutReturnsPartial(t *testing.T) {
	wire := &scriptWire{script: [][]byte{[]byte("no newline")}}
	conn := NewConnection(wire, "mock")

	line, err := conn.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine() error = %v", err)
	}
	if string(line) != "no newline" {
		t.Errorf("ReadLine() = %q, want the partial data", line)
	}
}

// trickleWire delivers one printable byte per read, endlessly, with no
// newline. Simulates a crash-looping device spamming the line.
type trickleWire struct{}

func (w *trickleWire) Read(p []byte) (int, error)  { p[0] = '.'; return 1, nil }
func (w *trickleWire) Write(p []byte) (int, error) { return len(p), nil }
func (w *trickleWire) Drain() error                { return nil }
func (w *trickleWire) Close() error                { return nil }

func TestReadLineBoundsNewlineFreeStream(t *testing.T) {
	conn := NewConnection(&trickleWire{}, "mock")

	start := time.Now()
	line, err := conn.ReadLine()
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("ReadLine() error = %v", err)
	}
	if len(line) == 0 {
		t.Error("ReadLine() returned nothing, want the partial data")
	}
	if elapsed > 3*ReadTimeout {
		t.Errorf("ReadLine() ran for %v, want it bounded near %v", elapsed, ReadTimeout)
	}
}

func TestReadLineWrapsTransportError(t *testing.T) {
	wire := &scriptWire{readErr: errors.New("device unplugged")}
	conn := NewConnection(wire, "mock")

	_, err := conn.ReadLine()
	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("ReadLine() error = %v, want *ConnectionError", err)
	}
	if connErr.Port != "mock" || connErr.Op != "read" {
		t.Errorf("unexpected error detail: %v", connErr)
	}
}
