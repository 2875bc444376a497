package commands

import (
	"fmt"

	"github.com/AndersBNielsen/firestarter-app/internal/config"
	"github.com/AndersBNielsen/firestarter-app/internal/database"
	"github.com/AndersBNielsen/firestarter-app/internal/programmer"
)

// Erase clears an electrically erasable chip.
func Erase(settings *config.Settings, name string) error {
	chip, err := database.Get(name)
	if err != nil {
		return err
	}
	if !chip.CanErase {
		return fmt.Errorf("%s cannot be erased electrically", chip.Name)
	}

	fmt.Printf("Erasing chip: %s\n", chip.Name)
	p := programmer.New(settings)
	msg, err := p.Erase(chip)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

// BlankCheck verifies a chip is empty.
func BlankCheck(settings *config.Settings, name string) error {
	chip, err := database.Get(name)
	if err != nil {
		return err
	}

	fmt.Printf("Blank checking chip: %s\n", chip.Name)
	p := programmer.New(settings)
	msg, err := p.BlankCheck(chip)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
