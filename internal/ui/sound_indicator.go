// internal/ui/sound_indicator.go
package ui

import (
	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SoundIndicator — буква "S", перечёркнутая при выключенном звуке. Клик переключает.
type SoundIndicator struct {
	X, Y float32
	Size float32
}

// NewSoundIndicator создает новый индикатор звука.
func NewSoundIndicator(x, y, size float32) *SoundIndicator {
	return &SoundIndicator{X: x, Y: y, Size: size}
}

// Draw отрисовывает индикатор.
func (i *SoundIndicator) Draw(screen *ebiten.Image, enabled bool) {
	clr := config.TextLightColor
	if !enabled {
		clr = config.DisabledColor
	}
	render.DrawTextCentered(screen, "S", int(i.X), int(i.Y)+4, clr)

	// Если звук выключен, рисуем перечеркивающую линию
	if !enabled {
		half := i.Size / 2
		vector.StrokeLine(screen, i.X-half, i.Y+half, i.X+half, i.Y-half, config.StrokeWidth, config.LivesColor, true)
	}
}

func (i *SoundIndicator) IsClicked(x, y int) bool {
	return inCircle(x, y, i.X, i.Y, i.Size)
}
