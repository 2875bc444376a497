package main

import (
	"github.com/alecthomas/kong"

	"github.com/AndersBNielsen/firestarter-app/internal/cli"
)

func main() {
	var c cli.CLI
	ctx := kong.Parse(&c,
		kong.Name("firestarter"),
		kong.Description("EPROM programmer for the Arduino UNO and the Relatively-Universal-ROM-Programmer shield."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&c))
}
