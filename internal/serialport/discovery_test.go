package serialport

import (
	"reflect"
	"testing"

	"go.bug.st/serial/enumerator"
)

func TestCandidates(t *testing.T) {
	details := []*enumerator.PortDetails{
		{Name: "/dev/ttyS0", IsUSB: false},
		{Name: "/dev/ttyACM0", IsUSB: true, VID: "2341", PID: "0043"},
		{Name: "/dev/ttyUSB0", IsUSB: true, VID: "0403", PID: "6001"},
		{Name: "/dev/ttyUSB1", IsUSB: true, VID: "1a86", Product: "CH340 serial"},
		{Name: "/dev/ttyUSB2", IsUSB: true, VID: "ffff", Product: "FTDI FT232R"},
	}

	tests := []struct {
		name       string
		remembered string
		want       []string
	}{
		{
			name: "no remembered port",
			want: []string{"/dev/ttyACM0", "/dev/ttyUSB0", "/dev/ttyUSB2"},
		},
		{
			name:       "remembered port first without duplicate",
			remembered: "/dev/ttyUSB0",
			want:       []string{"/dev/ttyUSB0", "/dev/ttyACM0", "/dev/ttyUSB2"},
		},
		{
			name:       "remembered port not enumerated",
			remembered: "/dev/ttyACM9",
			want:       []string{"/dev/ttyACM9", "/dev/ttyACM0", "/dev/ttyUSB0", "/dev/ttyUSB2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := candidates(tt.remembered, details)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("candidates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCandidatesEmpty(t *testing.T) {
	if got := candidates("", nil); got != nil {
		t.Errorf("candidates with nothing to try = %v, want nil", got)
	}
}
