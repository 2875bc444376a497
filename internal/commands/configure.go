package commands

import (
	"fmt"

	"github.com/AndersBNielsen/firestarter-app/internal/config"
	"github.com/AndersBNielsen/firestarter-app/internal/programmer"
)

// Configure pushes voltage-calibration values to the programmer. Zero
// values leave the corresponding device setting untouched, so running with
// no flags just reads the current configuration back.
func Configure(settings *config.Settings, vcc float64, r1, r2 int) error {
	p := programmer.New(settings)

	fmt.Println("Reading configuration")
	msg, err := p.PushConfig(vcc, r1, r2)
	if err != nil {
		return err
	}
	fmt.Printf("Config: %s\n", msg)
	return nil
}
