package commands

import (
	"fmt"

	"github.com/AndersBNielsen/firestarter-app/internal/config"
	"github.com/AndersBNielsen/firestarter-app/internal/programmer"
	"github.com/AndersBNielsen/firestarter-app/internal/tui"
)

// Voltage streams live measurements for one of the programmer's voltage
// rails (VPE, VPP or VCC) into an interactive readout.
func Voltage(settings *config.Settings, state int, label string) error {
	fmt.Printf("Reading %s voltage\n", label)
	p := programmer.New(settings)
	return tui.MonitorVoltage(label+" voltage", func(sample func(string) bool) error {
		return p.ReadVoltage(state, sample)
	})
}
