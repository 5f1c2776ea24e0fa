// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	BossColor        color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		BossColor:        config.LivesColor,
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label — подпись индикатора: "Wave XII / 30", до первой волны "Wave - / 30".
func (i *WaveIndicator) Label(wave, total int) string {
	roman := toRoman(wave)
	if roman == "" {
		roman = "-"
	}
	return fmt.Sprintf("Wave %s / %d", roman, total)
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, total int) {
	textColor := i.Color
	if wave > 0 && wave%10 == 0 {
		textColor = i.BossColor // каждая десятая волна
	}
	render.DrawTextOutlined(screen, i.Label(wave, total), i.X, i.Y, i.OutlineThickness, textColor, i.OutlineColor)
}
