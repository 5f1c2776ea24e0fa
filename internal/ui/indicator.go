// internal/ui/indicator.go
package ui

import (
	"image/color"
	"time"

	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	readyColor  = color.RGBA{60, 200, 90, 255}
	activeColor = color.RGBA{200, 160, 40, 255}
)

// StateIndicator — круглая кнопка запуска волны. Зелёная, когда можно
// начать следующую волну, жёлтая, пока волна идёт.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, waveActive bool) {
	scale := pulse(time.Since(i.LastClickTime).Seconds())
	currentRadius := i.Radius * float32(scale)

	fill, label := readyColor, "GO"
	if waveActive {
		fill, label = activeColor, "..."
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, fill, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, config.StrokeWidth, color.White, true)
	render.DrawTextCentered(screen, label, int(i.X), int(i.Y)+4, render.Readable(fill, config.TextDarkColor, config.TextLightColor))
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicator) IsClicked(x, y int) bool {
	return inCircle(x, y, i.X, i.Y, i.Radius)
}

// HandleClick запускает анимацию; запуск волны делает вызывающий код.
func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
