package main

import (
	"os"

	"github.com/urfave/cli"
	"github.com/vega-rt/vega/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "vega"
	app.Usage = "render scenes using recursive ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a PNG file",
			Description: `
Build the selected scene, construct a BVH over its primitives and trace one
ray bundle per pixel on a pool of workers. The finished frame is written
out as a PNG image.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "basic",
					Usage: "name of the built-in scene to render",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 1,
					Usage: "samples per pixel; values above 1 enable jittered sampling",
				},
				cli.IntFlag{
					Name:  "bounces",
					Value: 10,
					Usage: "max recursive bounces per ray",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers; 0 selects one per CPU",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "base seed for jittered sampling",
				},
				cli.StringFlag{
					Name:  "split-policy",
					Value: "sah",
					Usage: "BVH split policy (sah or basic)",
				},
				cli.StringFlag{
					Name:  "mesh",
					Usage: "wavefront OBJ mesh to add to the scene",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "PNG or JPEG image texture applied to the scene floor",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	app.Run(os.Args)
}
