package model

import "fmt"

// Color represents an RGB color with components in the 0–1 range,
// matching the float triples emitted by the extraction collaborator.
type Color struct {
	R, G, B float64
}

// ColorFromPacked unpacks a 0xRRGGBB integer into a Color. Text spans
// carry their color in this packed form.
func ColorFromPacked(packed uint32) Color {
	return Color{
		R: float64((packed>>16)&0xFF) / 255.0,
		G: float64((packed>>8)&0xFF) / 255.0,
		B: float64(packed&0xFF) / 255.0,
	}
}

// Hex returns the color as a #RRGGBB string
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r8(), c.g8(), c.b8())
}

// RGB returns the color as 0–255 components
func (c Color) RGB() (r, g, b uint8) {
	return c.r8(), c.g8(), c.b8()
}

func (c Color) r8() uint8 { return clampToUint8(c.R) }
func (c Color) g8() uint8 { return clampToUint8(c.G) }
func (c Color) b8() uint8 { return clampToUint8(c.B) }

func clampToUint8(f float64) uint8 {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return uint8(f*255 + 0.5)
}
