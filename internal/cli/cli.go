package cli

import (
	"github.com/AndersBNielsen/firestarter-app/internal/commands"
	"github.com/AndersBNielsen/firestarter-app/internal/config"
	"github.com/AndersBNielsen/firestarter-app/internal/protocol"
)

// CLI is the root command structure for firestarter.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose debug output"`

	Read       ReadCmd       `cmd:"" help:"Read the content of an EPROM to a file."`
	Write      WriteCmd      `cmd:"" help:"Write a binary file to an EPROM."`
	Erase      EraseCmd      `cmd:"" help:"Erase an electrically erasable chip."`
	BlankCheck BlankCheckCmd `cmd:"" name:"blank-check" help:"Check that a chip is blank."`

	Vpe VpeCmd `cmd:"" help:"Read the VPE voltage."`
	Vpp VppCmd `cmd:"" help:"Read the VPP voltage."`
	Vcc VccCmd `cmd:"" help:"Read the VCC voltage."`

	Fw     FwCmd     `cmd:"" help:"Check the programmer firmware version."`
	Config ConfigCmd `cmd:"" help:"Read or set programmer configuration values."`

	List    ListCmd    `cmd:"" help:"List all EPROMs in the database."`
	Search  SearchCmd  `cmd:"" help:"Search for EPROMs in the database."`
	Info    InfoCmd    `cmd:"" help:"Show EPROM details."`
	Inspect InspectCmd `cmd:"" help:"Hex dump a local chip image."`
}

func settings(globals *CLI) (*config.Settings, error) {
	config.Verbose = globals.Verbose
	return config.LoadDefault()
}

type ReadCmd struct {
	Eprom      string `arg:"" help:"The name of the EPROM."`
	OutputFile string `arg:"" optional:"" help:"Output file name, defaults to NAME.bin."`
}

func (c *ReadCmd) Run(globals *CLI) error {
	s, err := settings(globals)
	if err != nil {
		return err
	}
	return commands.Read(s, c.Eprom, c.OutputFile)
}

type WriteCmd struct {
	Eprom     string `arg:"" help:"The name of the EPROM."`
	InputFile string `arg:"" help:"Input file name."`
	Address   string `short:"a" help:"Write start address in dec/hex."`
}

func (c *WriteCmd) Run(globals *CLI) error {
	s, err := settings(globals)
	if err != nil {
		return err
	}
	return commands.Write(s, c.Eprom, c.InputFile, c.Address)
}

type EraseCmd struct {
	Eprom string `arg:"" help:"The name of the EPROM."`
}

func (c *EraseCmd) Run(globals *CLI) error {
	s, err := settings(globals)
	if err != nil {
		return err
	}
	return commands.Erase(s, c.Eprom)
}

type BlankCheckCmd struct {
	Eprom string `arg:"" help:"The name of the EPROM."`
}

func (c *BlankCheckCmd) Run(globals *CLI) error {
	s, err := settings(globals)
	if err != nil {
		return err
	}
	return commands.BlankCheck(s, c.Eprom)
}

type VpeCmd struct{}

func (c *VpeCmd) Run(globals *CLI) error {
	s, err := settings(globals)
	if err != nil {
		return err
	}
	return commands.Voltage(s, protocol.StateReadVPE, "VPE")
}

type VppCmd struct{}

func (c *VppCmd) Run(globals *CLI) error {
	s, err := settings(globals)
	if err != nil {
		return err
	}
	return commands.Voltage(s, protocol.StateReadVPP, "VPP")
}

type VccCmd struct{}

func (c *VccCmd) Run(globals *CLI) error {
	s, err := settings(globals)
	if err != nil {
		return err
	}
	return commands.Voltage(s, protocol.StateReadVCC, "VCC")
}

type FwCmd struct {
	Install     bool   `short:"i" help:"Install the latest firmware if the device is behind."`
	AvrdudePath string `help:"Full path to avrdude, if it is not on PATH."`
}

func (c *FwCmd) Run(globals *CLI) error {
	s, err := settings(globals)
	if err != nil {
		return err
	}
	return commands.Firmware(s, c.Install, c.AvrdudePath)
}

type ConfigCmd struct {
	Vcc float64 `help:"Set the Arduino VCC voltage."`
	R16 int     `name:"r1" help:"Set R16 resistance, the resistor connected to VPE."`
	R14 int     `name:"r2" help:"Set R14/R15 resistance, the resistors connected to GND."`
}

func (c *ConfigCmd) Run(globals *CLI) error {
	s, err := settings(globals)
	if err != nil {
		return err
	}
	return commands.Configure(s, c.Vcc, c.R16, c.R14)
}

type ListCmd struct {
	Verified bool `help:"Only show verified EPROMs."`
}

func (c *ListCmd) Run(globals *CLI) error {
	config.Verbose = globals.Verbose
	commands.ListEproms(c.Verified)
	return nil
}

type SearchCmd struct {
	Text string `arg:"" help:"Text to search for."`
}

func (c *SearchCmd) Run(globals *CLI) error {
	config.Verbose = globals.Verbose
	commands.SearchEproms(c.Text)
	return nil
}

type InfoCmd struct {
	Eprom string `arg:"" help:"EPROM name."`
}

func (c *InfoCmd) Run(globals *CLI) error {
	config.Verbose = globals.Verbose
	return commands.Info(c.Eprom)
}

type InspectCmd struct {
	File string `arg:"" help:"Chip image to dump."`
}

func (c *InspectCmd) Run(globals *CLI) error {
	config.Verbose = globals.Verbose
	return commands.Inspect(c.File)
}
