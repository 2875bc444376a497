package commands

import (
	"fmt"
	"os"

	"github.com/AndersBNielsen/firestarter-app/internal/util"
)

// Inspect hex dumps a local chip image. No device connection involved.
func Inspect(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	fmt.Printf("%s: %d bytes\n\n", path, len(data))
	util.HexDump(os.Stdout, data)
	return nil
}
