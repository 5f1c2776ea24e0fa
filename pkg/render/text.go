// pkg/render/text.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace — моноширинный шрифт 7x13, не требует файлов ассетов.
var DefaultFace font.Face = basicfont.Face7x13

// DrawText draws s with its baseline at (x, y).
func DrawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(dst, s, DefaultFace, x, y, clr)
}

// DrawTextCentered centers s horizontally on cx.
func DrawTextCentered(dst *ebiten.Image, s string, cx, y int, clr color.Color) {
	w := TextWidth(s)
	text.Draw(dst, s, DefaultFace, cx-w/2, y, clr)
}

// DrawTextOutlined рисует текст с обводкой толщиной thickness пикселей.
func DrawTextOutlined(dst *ebiten.Image, s string, cx, y, thickness int, clr, outline color.Color) {
	x := cx - TextWidth(s)/2
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(dst, s, DefaultFace, x+dx, y+dy, outline)
		}
	}
	text.Draw(dst, s, DefaultFace, x, y, clr)
}

// TextWidth returns the advance width of s in the default face.
func TextWidth(s string) int {
	b := text.BoundString(DefaultFace, s)
	return b.Max.X - b.Min.X
}
