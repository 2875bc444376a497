package commands

import (
	"fmt"
	"os"

	"github.com/AndersBNielsen/firestarter-app/internal/config"
	"github.com/AndersBNielsen/firestarter-app/internal/database"
	"github.com/AndersBNielsen/firestarter-app/internal/programmer"
	"github.com/AndersBNielsen/firestarter-app/internal/tui"
)

// Read dumps a chip's contents to a local file. Pass outputFile as "" to
// default to NAME.bin. Output written before a mid-transfer failure is kept.
func Read(settings *config.Settings, name, outputFile string) error {
	chip, err := database.Get(name)
	if err != nil {
		return err
	}
	if outputFile == "" {
		outputFile = chip.Name + ".bin"
	}

	fmt.Printf("Reading chip: %s\n", chip.Name)
	fmt.Printf("Output will be saved to: %s\n", outputFile)

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	view := tui.NewTransferView()
	p := programmer.New(settings, programmer.WithProgressCallback(view.Callback()))

	n, elapsed, err := p.ReadChip(chip, out)
	view.Done()
	if err != nil {
		return err
	}

	fmt.Printf("Received %d bytes in %.2f seconds\n", n, elapsed.Seconds())
	return nil
}
