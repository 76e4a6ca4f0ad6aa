package renderer

import (
	"image"

	"github.com/vega-rt/vega/scene"
)

// A rendered frame: a width x height grid of saturated colors. Pixels are
// stored in row-major order.
type Frame struct {
	Width  uint32
	Height uint32
	Pix    []scene.Color
}

func newFrame(width, height uint32) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]scene.Color, width*height),
	}
}

// Get the color at pixel (x, y).
func (f *Frame) At(x, y uint32) scene.Color {
	return f.Pix[y*f.Width+x]
}

// Place a completed column of row colors at its column index.
func (f *Frame) setColumn(x uint32, colors []scene.Color) {
	for y, c := range colors {
		f.Pix[uint32(y)*f.Width+x] = c
	}
}

// Convert the frame to an 8 bit per channel RGBA image.
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(f.Width), int(f.Height)))
	for y := uint32(0); y < f.Height; y++ {
		for x := uint32(0); x < f.Width; x++ {
			r, g, b, a := f.At(x, y).RGBA8()
			off := img.PixOffset(int(x), int(y))
			img.Pix[off+0] = r
			img.Pix[off+1] = g
			img.Pix[off+2] = b
			img.Pix[off+3] = a
		}
	}
	return img
}
