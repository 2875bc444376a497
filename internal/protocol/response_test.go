package protocol

import "testing"

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		wantKind Kind
		wantMsg  string
		wantOK   bool
	}{
		{
			name:     "plain OK",
			raw:      []byte("OK: Ready\n"),
			wantKind: KindOK,
			wantMsg:  "Ready",
			wantOK:   true,
		},
		{
			name:     "noise before tag",
			raw:      []byte("garbage text ERROR: bad state\r\n"),
			wantKind: KindError,
			wantMsg:  "bad state",
			wantOK:   true,
		},
		{
			name:     "last occurrence wins",
			raw:      []byte("OK: echoed OK: actual message"),
			wantKind: KindOK,
			wantMsg:  "actual message",
			wantOK:   true,
		},
		{
			name:     "control bytes filtered",
			raw:      []byte{0x00, 0x1b, 'O', 'K', ':', ' ', 0x7f, 'v', '1', 0x01},
			wantKind: KindOK,
			wantMsg:  "v1",
			wantOK:   true,
		},
		{
			name:     "data tag",
			raw:      []byte("DATA: 256 bytes follow"),
			wantKind: KindData,
			wantMsg:  "256 bytes follow",
			wantOK:   true,
		},
		{
			name:     "warn tag",
			raw:      []byte("WARN: voltage out of range"),
			wantKind: KindWarn,
			wantMsg:  "voltage out of range",
			wantOK:   true,
		},
		{
			name:     "info tag",
			raw:      []byte("INFO: setting up pins"),
			wantKind: KindInfo,
			wantMsg:  "setting up pins",
			wantOK:   true,
		},
		{
			name:   "untagged line",
			raw:    []byte("hello world"),
			wantOK: false,
		},
		{
			name:   "empty line",
			raw:    []byte("\r\n"),
			wantOK: false,
		},
		{
			name:   "only control bytes",
			raw:    []byte{0x00, 0x01, 0xff, 0x0a},
			wantOK: false,
		},
		{
			name:     "message trimmed",
			raw:      []byte("OK:   spaced out   "),
			wantKind: KindOK,
			wantMsg:  "spaced out",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, ok := ParseLine(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseLine() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if resp.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", resp.Kind, tt.wantKind)
			}
			if resp.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMsg)
			}
		})
	}
}

func TestFilterPrintable(t *testing.T) {
	in := []byte{0x1f, 'a', 0x7f, 'b', ' ', 0x80, 'c', 0x0d, 0x0a}
	got := FilterPrintable(in)
	if got != "ab c" {
		t.Errorf("FilterPrintable() = %q, want %q", got, "ab c")
	}
	for _, c := range []byte(got) {
		if c < 32 || c > 126 {
			t.Errorf("unprintable byte 0x%02x survived filtering", c)
		}
	}
}

func TestEnvelopeMarshal(t *testing.T) {
	env := NewEnvelope(StateConfig).Set("vcc", 5.0)
	data, err := env.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if data[len(data)-1] != '\n' {
		t.Error("marshaled envelope is not newline terminated")
	}
	line := string(data[:len(data)-1])
	if line != `{"state":14,"vcc":5}` {
		t.Errorf("unexpected wire form: %s", line)
	}
}

func TestEnvelopeMerge(t *testing.T) {
	env := NewEnvelope(StateRead).Merge(map[string]any{"memory-size": 8192})
	if env["state"] != StateRead {
		t.Error("merge dropped the state field")
	}
	if env["memory-size"] != 8192 {
		t.Error("merge dropped the chip fields")
	}
}
