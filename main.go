package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BeerStyles/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("beerstyles"), kong.Description("BeerStyles stores beer style guidelines in a graph database."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
