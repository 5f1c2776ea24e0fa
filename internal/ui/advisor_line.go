// internal/ui/advisor_line.go
package ui

import (
	"image"
	"strings"

	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// AdvisorLine — кнопка «спросить совет» и последний ответ советника.
type AdvisorLine struct {
	X, Y       int
	Width      int
	MaxLines   int
	Message    string
	Consulting bool
	Enabled    bool
	Button     *Button
}

func NewAdvisorLine(x, y, width int) *AdvisorLine {
	btn := NewButton(image.Rect(x, y, x+width, y+28), "Ask strategist (A)")
	return &AdvisorLine{
		X:        x,
		Y:        y,
		Width:    width,
		MaxLines: 4,
		Enabled:  true,
		Button:   btn,
	}
}

// IsClicked — кнопка неактивна, пока ждём ответа или советник выключен.
func (a *AdvisorLine) IsClicked(x, y int) bool {
	return a.Button.IsClicked(x, y)
}

func (a *AdvisorLine) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	a.Button.Enabled = a.Enabled && !a.Consulting
	a.Button.Draw(screen, cursorX, cursorY)

	msg := a.Message
	if !a.Enabled {
		msg = "Strategist disabled."
	}
	y := a.Y + 28 + config.TextLineHeight
	for _, line := range wrapText(msg, a.Width/config.TextCharWidth, a.MaxLines) {
		render.DrawText(screen, line, a.X, y, config.TextLightColor)
		y += config.TextLineHeight
	}
}

// wrapText режет текст по словам на строки не длиннее width символов.
// Лишние строки отбрасываются, последняя получает многоточие.
func wrapText(s string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(s) {
		for len(word) > width {
			if current.Len() > 0 {
				lines = append(lines, current.String())
				current.Reset()
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case current.Len() == 0:
			current.WriteString(word)
		case current.Len()+1+len(word) <= width:
			current.WriteByte(' ')
			current.WriteString(word)
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := lines[maxLines-1]
		if width > 3 && len(last) > width-3 {
			last = last[:width-3]
		}
		lines[maxLines-1] = last + "..."
	}
	return lines
}
