package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/AndersBNielsen/firestarter-app/internal/config"
	"github.com/AndersBNielsen/firestarter-app/internal/database"
	"github.com/AndersBNielsen/firestarter-app/internal/programmer"
	"github.com/AndersBNielsen/firestarter-app/internal/tui"
)

// Write programs a binary file into a chip. address may be empty, decimal or
// 0x-prefixed hex.
func Write(settings *config.Settings, name, inputFile, address string) error {
	chip, err := database.Get(name)
	if err != nil {
		return err
	}

	var addr *int
	if address != "" {
		parsed, err := strconv.ParseInt(address, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid start address %q: %w", address, err)
		}
		a := int(parsed)
		addr = &a
	}

	f, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return err
	}

	fmt.Printf("Writing to chip: %s\n", chip.Name)
	fmt.Printf("Reading from input file: %s\n", inputFile)

	view := tui.NewTransferView()
	p := programmer.New(settings, programmer.WithProgressCallback(view.Callback()))

	n, elapsed, err := p.WriteChip(chip, f, int(stat.Size()), addr)
	view.Done()
	if err != nil {
		return err
	}

	fmt.Printf("Sent %d bytes in %.2f seconds\n", n, elapsed.Seconds())
	return nil
}
