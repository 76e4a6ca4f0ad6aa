package scene

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	"github.com/vega-rt/vega/asset"
)

type TextureType uint8

const (
	FlatTexture TextureType = iota
	ImageTexture
)

// Textures larger than this along either dimension get downscaled at load
// time. Keeps texel lookups cache friendly for large source images.
const maxTextureDim = 2048

// A texture supplies the base surface color for a primitive as a function
// of its UV coordinates. Textures are immutable after creation and safe
// for concurrent sampling.
type Texture struct {
	Type TextureType

	// Flat texture color.
	Color Color

	// Image texture raster.
	img *image.RGBA
}

// Create a texture with a single flat color.
func NewFlatTexture(color Color) *Texture {
	return &Texture{
		Type:  FlatTexture,
		Color: color,
	}
}

// Create a texture backed by a raster image.
func NewImageTexture(img image.Image) *Texture {
	return &Texture{
		Type: ImageTexture,
		img:  normalizeRaster(img),
	}
}

// Load an image texture from a local or remote PNG or JPEG file.
func LoadTexture(path string) (*Texture, error) {
	f, err := asset.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %v", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: could not decode %q: %v", path, err)
	}

	return NewImageTexture(img), nil
}

// Sample the texture at the given UV coordinates. UV coordinates outside
// [0, 1) wrap around. V grows from the bottom of the image.
func (t *Texture) Sample(u, v float32) Color {
	if t.Type == FlatTexture {
		return t.Color
	}

	u = wrap(u)
	v = wrap(v)

	b := t.img.Bounds()
	x := b.Min.X + int(u*float32(b.Dx()-1))
	y := b.Min.Y + int((1.0-v)*float32(b.Dy()-1))
	c := t.img.RGBAAt(x, y)
	return RGBA(
		float32(c.R)/255.0,
		float32(c.G)/255.0,
		float32(c.B)/255.0,
		float32(c.A)/255.0,
	)
}

// Convert the decoded image to RGBA and downscale it if it exceeds the
// texture dimension limit.
func normalizeRaster(img image.Image) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxTextureDim || h > maxTextureDim {
		scale := float32(maxTextureDim) / float32(w)
		if h > w {
			scale = float32(maxTextureDim) / float32(h)
		}
		w = int(float32(w) * scale)
		h = int(float32(h) * scale)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func wrap(x float32) float32 {
	x = x - float32(int(x))
	if x < 0 {
		x += 1.0
	}
	return x
}
