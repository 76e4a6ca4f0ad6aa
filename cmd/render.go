package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"
	"github.com/vega-rt/vega/renderer"
	"github.com/vega-rt/vega/scene"
	"github.com/vega-rt/vega/tracer"
)

// Render a built-in scene to a PNG file.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)
	logHostInfo()

	name := ctx.String("scene")
	build, exists := scene.Lookup(name)
	if !exists {
		return fmt.Errorf("unknown scene %q; run the scenes command for the available ones", name)
	}

	policy, err := parseSplitPolicy(ctx.String("split-policy"))
	if err != nil {
		return err
	}

	opt, err := frameOptions(
		ctx.Int("width"), ctx.Int("height"),
		ctx.Int("spp"), ctx.Int("bounces"), ctx.Int("workers"),
		ctx.Int64("seed"), policy,
	)
	if err != nil {
		return err
	}

	sc := build(opt.FrameW, opt.FrameH)
	if texPath := ctx.String("texture"); texPath != "" {
		if err = applyFloorTexture(sc, texPath); err != nil {
			return err
		}
	}
	if meshPath := ctx.String("mesh"); meshPath != "" {
		if err = addMesh(sc, meshPath); err != nil {
			return err
		}
	}

	logger.Noticef("rendering scene %q at %dx%d, %d spp", name, opt.FrameW, opt.FrameH, opt.SamplesPerPixel)
	frame, stats, err := renderer.Render(sc, opt)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if err = writePNG(frame, out); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", out)

	printStats(stats)
	return nil
}

// Validate the raw flag values and assemble the renderer options. Flag
// values arrive as signed ints; negative values must be rejected here
// since they would wrap when converted to the unsigned option fields.
func frameOptions(width, height, spp, bounces, workers int, seed int64, policy tracer.SplitPolicy) (renderer.Options, error) {
	switch {
	case width <= 0 || height <= 0:
		return renderer.Options{}, fmt.Errorf("frame dims must be > 0; got %dx%d", width, height)
	case spp <= 0:
		return renderer.Options{}, fmt.Errorf("samples per pixel must be > 0; got %d", spp)
	case bounces < 0:
		return renderer.Options{}, fmt.Errorf("bounce limit must be >= 0; got %d", bounces)
	}

	return renderer.Options{
		FrameW:          uint32(width),
		FrameH:          uint32(height),
		SamplesPerPixel: uint32(spp),
		NumBounces:      uint32(bounces),
		NumWorkers:      workers,
		Seed:            seed,
		SplitPolicy:     policy,
	}, nil
}

// Replace the base texture of the scene floor material with an image
// texture. Built-in scenes register their floor as the first primitive.
func applyFloorTexture(sc *scene.Scene, path string) error {
	tex, err := scene.LoadTexture(path)
	if err != nil {
		return err
	}
	if len(sc.Primitives) == 0 {
		return fmt.Errorf("scene has no floor primitive to texture")
	}
	retexture(sc.Primitives[0].Material, tex)
	return nil
}

// Point every phong layer of the material at the given texture.
func retexture(mat *scene.Material, tex *scene.Texture) {
	switch mat.Type {
	case scene.PhongMaterial:
		mat.Texture = tex
	case scene.CompositeMaterial:
		for _, part := range mat.Parts {
			retexture(part.Material, tex)
		}
	}
}

// Load an OBJ mesh into the scene with a partly mirrored phong material.
func addMesh(sc *scene.Scene, path string) error {
	material := scene.NewComposite(
		scene.MaterialPart{Material: scene.NewReflective(), Weight: 0.6},
		scene.MaterialPart{Material: scene.NewPhong(scene.NewFlatTexture(scene.RGB(1, 0, 0)), 0.2, 0.8, 1.0), Weight: 0.4},
	)
	prims, err := scene.LoadWavefront(path, material)
	if err != nil {
		return err
	}
	for _, prim := range prims {
		sc.AddPrimitive(prim)
	}
	return nil
}

func writePNG(frame *renderer.Frame, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, frame.RGBA())
}

func printStats(stats *renderer.FrameStats) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Workers", "Columns", "Primary rays", "Index build", "Total"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.Columns),
		fmt.Sprintf("%d", stats.PrimaryRays),
		stats.IndexBuildTime.String(),
		stats.RenderTime.String(),
	})
	table.Render()
}

func parseSplitPolicy(name string) (tracer.SplitPolicy, error) {
	switch name {
	case "", "sah":
		return tracer.SAHSplit, nil
	case "basic":
		return tracer.BasicSplit, nil
	}
	return 0, fmt.Errorf("unknown split policy %q; supported: sah, basic", name)
}

// Report host details at info level; best effort only.
func logHostInfo() {
	if info, err := cpu.Info(); err == nil && len(info) > 0 {
		logger.Infof("host cpu: %s (%d cores)", info[0].ModelName, len(info))
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		logger.Infof("host memory: %d MB total, %d MB available", vm.Total/(1<<20), vm.Available/(1<<20))
	}
}
