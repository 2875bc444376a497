package commands

import (
	"fmt"

	"github.com/AndersBNielsen/firestarter-app/internal/database"
	"github.com/AndersBNielsen/firestarter-app/internal/tui"
)

// ListEproms prints every chip in the database, optionally only the
// verified ones.
func ListEproms(verifiedOnly bool) {
	if verifiedOnly {
		fmt.Println("Verified EPROMs in the database.")
	}
	for _, chip := range database.List(verifiedOnly) {
		fmt.Println(summaryLine(chip))
	}
}

// SearchEproms prints every chip whose name matches text.
func SearchEproms(text string) {
	fmt.Printf("Searching for: %s\n", text)
	for _, chip := range database.Search(text) {
		fmt.Println(summaryLine(chip))
	}
}

func summaryLine(chip *database.EPROM) string {
	styles := tui.DefaultStyles()
	name := styles.Highlight.Render(fmt.Sprintf("%-10s", chip.Name))
	detail := fmt.Sprintf("%6d bytes  %2d pins  %s", chip.MemorySize, chip.PinCount, chip.Manufacturer)
	if !chip.Verified {
		return name + detail + styles.Warning.Render("  -- not verified --")
	}
	return name + detail
}

// Info prints the full parameter set for one chip.
func Info(name string) error {
	chip, err := database.Get(name)
	if err != nil {
		return err
	}

	styles := tui.DefaultStyles()
	row := func(label string, value any) {
		fmt.Printf("%s%v\n", styles.Label.Render(label), value)
	}

	title := "Eprom Info"
	if !chip.Verified {
		title += styles.Warning.Render("  -- NOT VERIFIED --")
	}
	fmt.Println(title)

	row("Name:", chip.Name)
	row("Manufacturer:", chip.Manufacturer)
	row("Number of pins:", chip.PinCount)
	row("Memory size:", fmt.Sprintf("%#x", chip.MemorySize))
	switch chip.Type {
	case database.TypeEPROM:
		row("Type:", "EPROM")
		row("Can be erased:", chip.CanErase)
		if chip.HasChipID {
			row("Chip ID:", fmt.Sprintf("%#x", chip.ChipID))
		}
		row("VPP:", chip.VPP)
	case database.TypeSRAM:
		row("Type:", "SRAM")
	}
	row("Pulse delay:", fmt.Sprintf("%dµS", chip.PulseDelay))
	return nil
}
