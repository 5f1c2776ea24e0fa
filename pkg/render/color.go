// pkg/render/color.go
package render

import "image/color"

// FieldColors holds all the color definitions needed to render the static field background.
type FieldColors struct {
	BackgroundColor color.RGBA
	PathColor       color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// EntityColors — палитра динамических сущностей по имени типа.
type EntityColors struct {
	Balloons    map[string]color.RGBA
	Towers      map[string]color.RGBA
	Stroke      color.RGBA
	Range       color.RGBA
	RangeDenied color.RGBA
	SlowTint    color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds a fixed amount to every channel, saturating at 255.
func LightenColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+amount)),
		G: uint8(min(255, int(c.G)+amount)),
		B: uint8(min(255, int(c.B)+amount)),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha scaled by a in [0,1].
// Цвета в ebiten премультиплицированы, поэтому масштабируются все каналы.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a <= 0 {
		return color.RGBA{}
	}
	if a >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// Readable picks the text color that stands out on fill.
func Readable(fill color.RGBA, dark, light color.RGBA) color.RGBA {
	if (int(fill.R)+int(fill.G)+int(fill.B))/3 > 128 {
		return dark
	}
	return light
}
