package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestHexDump(t *testing.T) {
	var buf bytes.Buffer
	data := append([]byte("EPROM"), 0x00, 0xff)
	HexDump(&buf, data)

	out := buf.String()
	if !strings.HasPrefix(out, "0000  ") {
		t.Errorf("missing offset column: %q", out)
	}
	if !strings.Contains(out, "45 50 52 4f 4d 00 ff") {
		t.Errorf("missing hex bytes: %q", out)
	}
	if !strings.Contains(out, "|EPROM..|") {
		t.Errorf("missing ASCII column: %q", out)
	}
}

func TestHexDumpMultipleRows(t *testing.T) {
	var buf bytes.Buffer
	HexDump(&buf, make([]byte, 17))
	lines := strings.Count(buf.String(), "\n")
	if lines != 2 {
		t.Errorf("17 bytes should dump as 2 rows, got %d", lines)
	}
	if !strings.Contains(buf.String(), "0010  ") {
		t.Error("second row offset missing")
	}
}
