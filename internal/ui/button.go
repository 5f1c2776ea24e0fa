// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	Enabled    bool
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Accent     color.RGBA // полоска слева, нулевой цвет — без неё
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		Enabled:    true,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHover,
	}
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked — клик засчитывается только по включённой кнопке.
func (b *Button) IsClicked(x, y int) bool {
	return b.Enabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	bg := b.BgColor
	switch {
	case !b.Enabled:
		bg = config.DisabledColor
	case b.Contains(cursorX, cursorY):
		bg = b.HoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, render.DarkenColor(bg), false)
	if b.Accent.A != 0 {
		vector.DrawFilledRect(screen, x, y, 4, h, b.Accent, false)
	}

	// basicfont: базовая линия примерно на 4 px ниже центра
	cx := b.Rect.Min.X + b.Rect.Dx()/2
	cy := b.Rect.Min.Y + b.Rect.Dy()/2 + 4
	render.DrawTextCentered(screen, b.Text, cx, cy, b.TextColor)
}
