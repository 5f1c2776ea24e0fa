// internal/ui/lives_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LivesCols          = 10
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 4.0
)

// LivesIndicator отображает жизни игрока строкой кружков, по десятой части каждый.
type LivesIndicator struct {
	X, Y float32
}

// NewLivesIndicator создает новый индикатор жизней.
func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Filled — сколько кружков закрашено: округление вверх, пока жив хоть один.
func (i *LivesIndicator) Filled(lives, maxLives int) int {
	if lives <= 0 || maxLives <= 0 {
		return 0
	}
	if lives >= maxLives {
		return LivesCols
	}
	return (lives*LivesCols + maxLives - 1) / maxLives
}

// Draw рисует индикатор жизней и число рядом.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	filled := i.Filled(lives, maxLives)
	half := LivesCols / 2
	for j := 0; j < LivesCols; j++ {
		x := i.X + LivesCircleRadius + float32(j)*(LivesCircleRadius*2+LivesCircleSpacing)

		var clr color.RGBA
		switch {
		case j >= filled:
			clr = color.RGBA{0, 0, 0, 255} // Пустые ячейки - черные
		case filled <= half:
			clr = config.LivesColor // меньше половины — всё красное
		default:
			clr = color.RGBA{70, 130, 230, 255}
		}
		vector.DrawFilledCircle(screen, x, i.Y, LivesCircleRadius, clr, true)
		vector.StrokeCircle(screen, x, i.Y, LivesCircleRadius, 1, color.White, true)
	}

	label := fmt.Sprintf("%d", lives)
	textX := int(i.X + LivesCols*(LivesCircleRadius*2+LivesCircleSpacing) + 4)
	render.DrawText(screen, label, textX, int(i.Y)+4, config.LivesColor)
}
