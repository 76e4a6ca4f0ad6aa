package scene

// An RGBA color with float channels. Channel values are saturated into
// [0, 1] at construction so that recursive color sums cannot overflow
// downstream arithmetic.
type Color struct {
	R, G, B, A float32
}

// Create an opaque color from its RGB channels.
func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1.0)
}

// Create a color from its RGBA channels. Each channel is clamped to [0, 1].
func RGBA(r, g, b, a float32) Color {
	return Color{
		R: clamp(r, 0, 1),
		G: clamp(g, 0, 1),
		B: clamp(b, 0, 1),
		A: clamp(a, 0, 1),
	}
}

// Create an opaque gray color.
func Grayscale(v float32) Color {
	return RGB(v, v, v)
}

// Add two colors channel-wise.
func (c Color) Add(c2 Color) Color {
	return RGBA(c.R+c2.R, c.G+c2.G, c.B+c2.B, c.A+c2.A)
}

// Multiply two colors channel-wise.
func (c Color) Mul(c2 Color) Color {
	return RGBA(c.R*c2.R, c.G*c2.G, c.B*c2.B, c.A*c2.A)
}

// Scale all channels by s.
func (c Color) Scale(s float32) Color {
	return RGBA(c.R*s, c.G*s, c.B*s, c.A*s)
}

// Convert to 8 bit per channel RGBA.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return uint8(c.R * 255.0), uint8(c.G * 255.0), uint8(c.B * 255.0), uint8(c.A * 255.0)
}

func clamp(x, low, high float32) float32 {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}
