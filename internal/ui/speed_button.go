// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton — кнопка скорости x1/x2/x4, цвет по текущему состоянию.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	Speeds        []float64
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, speeds []float64, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		Speeds:      speeds,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	scale := pulse(time.Since(b.LastClickTime).Seconds())
	triangleSize := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// Левый треугольник
	left := [][2]float32{{b.X - width, b.Y - height/2}, {b.X, b.Y}, {b.X - width, b.Y + height/2}}
	fillPolygon(screen, clr, left...)
	strokePolygon(screen, 1, color.White, left...)

	// Правый треугольник
	right := [][2]float32{{b.X - width + offset, b.Y - height/2}, {b.X + offset, b.Y}, {b.X - width + offset, b.Y + height/2}}
	fillPolygon(screen, clr, right...)
	strokePolygon(screen, 1, color.White, right...)
}

// IsClicked использует круг для определения попадания, так как форма сложная
func (b *SpeedButton) IsClicked(x, y int) bool {
	return inCircle(x, y, b.X, b.Y, b.Size*1.5)
}

// Sync выставляет состояние по множителю из движка.
func (b *SpeedButton) Sync(speed float64) {
	for i, s := range b.Speeds {
		if s == speed {
			b.CurrentState = i
			return
		}
	}
}

// Click отмечает нажатие для анимации.
func (b *SpeedButton) Click() {
	b.LastClickTime = time.Now()
}
