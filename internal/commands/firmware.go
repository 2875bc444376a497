package commands

import (
	"fmt"

	"github.com/AndersBNielsen/firestarter-app/internal/config"
	"github.com/AndersBNielsen/firestarter-app/internal/firmware"
	"github.com/AndersBNielsen/firestarter-app/internal/programmer"
)

// Firmware checks the programmer's firmware version against the latest
// release and optionally installs the update through avrdude.
func Firmware(settings *config.Settings, install bool, avrdudePath string) error {
	p := programmer.New(settings)

	fmt.Println("Reading version")
	version, port, err := p.FirmwareVersion()
	if err != nil {
		return err
	}
	fmt.Printf("Firmware version: %s\n", version)

	client := firmware.NewReleaseClient()
	release, err := client.Latest()
	if err != nil {
		return fmt.Errorf("failed to check the latest release: %w", err)
	}

	cmp, err := firmware.CompareVersions(version, release.Version)
	if err != nil {
		return err
	}
	if cmp >= 0 {
		fmt.Println("You have the latest version")
		return nil
	}

	fmt.Printf("New version available: %s\n", release.Version)
	if !install {
		return nil
	}
	return installFirmware(settings, client, release, avrdudePath, port)
}

func installFirmware(settings *config.Settings, client *firmware.ReleaseClient, release *firmware.Release, avrdudePath, port string) error {
	fromFlag := avrdudePath != ""
	if avrdudePath == "" {
		avrdudePath = settings.AvrdudePath
	}

	a, err := firmware.NewAvrdude(avrdudePath, port)
	if err != nil {
		return err
	}
	if err := a.TestConnection(); err != nil {
		return fmt.Errorf("error connecting to programmer at port %s: %w", port, err)
	}
	fmt.Printf("Found programmer at port: %s\n", port)

	fmt.Println("Downloading firmware...")
	dir, err := config.HomeDir()
	if err != nil {
		return err
	}
	path, err := client.Download(release.DownloadURL, dir)
	if err != nil {
		return err
	}
	fmt.Println("Firmware downloaded")

	fmt.Println("Installing firmware")
	if err := a.Flash(path); err != nil {
		return err
	}
	fmt.Println("Firmware updated")

	if fromFlag {
		settings.AvrdudePath = a.Path
		if err := settings.Save(); err != nil {
			config.Debugf("failed to persist avrdude path: %v", err)
		}
	}
	return nil
}
