package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"github.com/vega-rt/vega/scene"
)

// List the built-in scenes that can be rendered.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Description"})
	for _, builtin := range scene.Builtins {
		table.Append([]string{builtin.Name, builtin.Description})
	}
	table.Render()
	return nil
}
