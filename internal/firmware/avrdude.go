package firmware

import (
	"fmt"
	"os/exec"

	"github.com/AndersBNielsen/firestarter-app/internal/config"
)

// Avrdude invokes the external avrdude utility to flash the programmer's
// own firmware. The flashing logic lives entirely in avrdude; this wrapper
// only builds invocations and relays their status.
type Avrdude struct {
	Path         string // avrdude binary; resolved from PATH when empty
	PartNo       string
	ProgrammerID string
	BaudRate     int
	Port         string
}

// NewAvrdude configures an avrdude invocation for the Arduino UNO the
// programmer shield sits on.
func NewAvrdude(path, port string) (*Avrdude, error) {
	if path == "" {
		resolved, err := exec.LookPath("avrdude")
		if err != nil {
			return nil, fmt.Errorf("avrdude not found in PATH, provide --avrdude-path: %w", err)
		}
		path = resolved
	}
	return &Avrdude{
		Path:         path,
		PartNo:       "ATmega328P",
		ProgrammerID: "arduino",
		BaudRate:     115200,
		Port:         port,
	}, nil
}

// TestConnection probes whether avrdude can talk to the board on the
// configured port.
func (a *Avrdude) TestConnection() error {
	return a.run()
}

// Flash writes the firmware image at path to the board.
func (a *Avrdude) Flash(firmwarePath string) error {
	return a.run("-U", fmt.Sprintf("flash:w:%s:i", firmwarePath))
}

func (a *Avrdude) run(extra ...string) error {
	args := []string{
		"-p", a.PartNo,
		"-c", a.ProgrammerID,
		"-b", fmt.Sprint(a.BaudRate),
		"-P", a.Port,
	}
	args = append(args, extra...)

	config.Debugf("running %s %v", a.Path, args)
	out, err := exec.Command(a.Path, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("avrdude failed: %w\n%s", err, out)
	}
	return nil
}
